package middleware

import (
	"bytes"
	"context"
	"io"
	"strconv"
	"time"

	"cryptopay-gateway/internal/core/domain"
	"cryptopay-gateway/internal/core/ports"
	"cryptopay-gateway/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const (
	maxTimestampDrift = 60 * time.Second
	// nonceTTL covers the drift window on both sides of now.
	nonceTTL = 2 * maxTimestampDrift
)

type signedHeaders struct {
	accessKey string
	signature string
	nonce     string
	timestamp int64
}

// readSignedHeaders requires all four auth headers and a timestamp within
// maxTimestampDrift of now.
func readSignedHeaders(c *gin.Context, now time.Time) (signedHeaders, error) {
	h := signedHeaders{
		accessKey: c.GetHeader(HeaderAccessKey),
		signature: c.GetHeader(HeaderSignature),
		nonce:     c.GetHeader(HeaderNonce),
	}
	raw := c.GetHeader(HeaderTimestamp)
	if h.accessKey == "" || h.signature == "" || h.nonce == "" || raw == "" {
		return h, apperror.ErrInvalidAccessKey()
	}

	ts, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return h, apperror.ErrTimestampExpired()
	}
	drift := now.Sub(time.Unix(ts, 0))
	if drift < 0 {
		drift = -drift
	}
	if drift > maxTimestampDrift {
		return h, apperror.ErrTimestampExpired()
	}
	h.timestamp = ts
	return h, nil
}

func activeMerchant(ctx context.Context, repo ports.MerchantRepository, accessKey string, log zerolog.Logger) (*domain.Merchant, error) {
	merchant, err := repo.GetByAccessKey(ctx, accessKey)
	if err != nil {
		log.Error().Err(err).Msg("merchant lookup failed")
		return nil, apperror.InternalError(err)
	}
	if merchant == nil {
		return nil, apperror.ErrInvalidAccessKey()
	}
	if !merchant.IsActive() {
		return nil, apperror.ErrMerchantSuspended()
	}
	return merchant, nil
}

// HMACAuth authenticates the merchant deposit API. Checks run cheapest
// first: headers and timestamp, merchant lookup, nonce, then the signature
// over METHOD|PATH|TIMESTAMP|NONCE|BODY. A nonce store outage lets the
// request through; the signature is still enforced.
func HMACAuth(
	merchantRepo ports.MerchantRepository,
	encSvc ports.EncryptionService,
	sigSvc ports.SignatureService,
	nonceStore ports.NonceStore,
	log zerolog.Logger,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		h, err := readSignedHeaders(c, time.Now())
		if err != nil {
			abort(c, err)
			return
		}

		merchant, err := activeMerchant(ctx, merchantRepo, h.accessKey, log)
		if err != nil {
			abort(c, err)
			return
		}
		mlog := log.With().Str("merchant_id", merchant.ID.String()).Logger()

		fresh, err := nonceStore.CheckAndSet(ctx, merchant.ID.String(), h.nonce, nonceTTL)
		switch {
		case err != nil:
			mlog.Warn().Err(err).Msg("nonce store unavailable, skipping replay check")
		case !fresh:
			mlog.Warn().Str("nonce", h.nonce).Msg("replayed nonce rejected")
			abort(c, apperror.ErrNonceUsed())
			return
		}

		secretKey, err := encSvc.Decrypt(merchant.SecretKeyEnc)
		if err != nil {
			mlog.Error().Err(err).Msg("decrypt merchant secret key")
			abort(c, apperror.InternalError(err))
			return
		}

		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			abort(c, apperror.Validation("cannot read request body"))
			return
		}
		c.Request.Body = io.NopCloser(bytes.NewReader(body))

		canonical := sigSvc.BuildCanonicalString(c.Request.Method, c.Request.URL.Path, h.timestamp, h.nonce, string(body))
		if !sigSvc.Verify(secretKey, canonical, h.signature) {
			mlog.Warn().Str("path", c.Request.URL.Path).Msg("invalid request signature")
			abort(c, apperror.ErrInvalidSignature())
			return
		}

		c.Set(CtxMerchantID, merchant.ID)
		c.Set(CtxAccessKey, merchant.AccessKey)
		c.Set(CtxMerchantKey, merchant)
		c.Next()
	}
}
