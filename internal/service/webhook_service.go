package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"sync"
	"time"

	"cryptopay-gateway/internal/core/domain"
	"cryptopay-gateway/internal/core/ports"
	"cryptopay-gateway/pkg/logger"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog"
)

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// WebhookEnvelope is the JSON body posted to a merchant's webhook_url.
// Signature is the hex HMAC-SHA256 of the marshalled Data under the
// merchant's secret key; it is also sent as X-Signature.
type WebhookEnvelope struct {
	EventType string          `json:"event_type"`
	Data      json.RawMessage `json:"data"`
	Signature string          `json:"signature"`
	Timestamp int64           `json:"timestamp"`
}

// WebhookDispatcher delivers signed webhooks in the background, retrying
// with exponential backoff until Shutdown cancels the remaining attempts.
type WebhookDispatcher struct {
	encSvc     ports.EncryptionService
	sigSvc     ports.SignatureService
	httpClient HTTPClient
	maxRetries uint64
	newBackOff func() backoff.BackOff
	log        zerolog.Logger

	ctx    context.Context
	cancel context.CancelFunc

	mu     sync.Mutex
	closed bool
	wg     sync.WaitGroup
}

func NewWebhookDispatcher(
	encSvc ports.EncryptionService,
	sigSvc ports.SignatureService,
	httpClient HTTPClient,
	maxRetries uint64,
	log zerolog.Logger,
) *WebhookDispatcher {
	ctx, cancel := context.WithCancel(context.Background())
	return &WebhookDispatcher{
		encSvc:     encSvc,
		sigSvc:     sigSvc,
		httpClient: httpClient,
		maxRetries: maxRetries,
		newBackOff: defaultWebhookBackOff,
		log:        logger.Component(log, "webhook"),
		ctx:        ctx,
		cancel:     cancel,
	}
}

func defaultWebhookBackOff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 2 * time.Second
	b.MaxInterval = 2 * time.Minute
	b.MaxElapsedTime = 15 * time.Minute
	return b
}

// Dispatch signs data and posts it asynchronously. Merchants without a
// webhook URL are skipped.
func (d *WebhookDispatcher) Dispatch(merchant *domain.Merchant, eventType string, reference string, data any) {
	if merchant == nil || merchant.WebhookURL == nil || *merchant.WebhookURL == "" {
		return
	}
	log := d.log.With().Str("merchant_id", merchant.ID.String()).Str("event", eventType).Str("reference", reference).Logger()

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		log.Warn().Msg("dispatcher shut down, webhook dropped")
		return
	}

	raw, err := json.Marshal(data)
	if err != nil {
		log.Error().Err(err).Msg("marshal webhook data")
		return
	}
	secret, err := d.encSvc.Decrypt(merchant.SecretKeyEnc)
	if err != nil {
		log.Error().Err(err).Msg("decrypt merchant secret for webhook")
		return
	}

	env := WebhookEnvelope{
		EventType: eventType,
		Data:      raw,
		Signature: d.sigSvc.Sign(secret, string(raw)),
		Timestamp: time.Now().Unix(),
	}
	body, err := json.Marshal(env)
	if err != nil {
		log.Error().Err(err).Msg("marshal webhook envelope")
		return
	}

	url := *merchant.WebhookURL
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		d.deliver(url, env, body, log)
	}()
}

// Wait blocks until every in-flight delivery has finished.
func (d *WebhookDispatcher) Wait() {
	d.wg.Wait()
}

// Shutdown stops accepting deliveries and waits for the in-flight ones.
// When ctx ends first, pending retries and open requests are cancelled and
// ctx.Err() is returned once their goroutines have exited.
func (d *WebhookDispatcher) Shutdown(ctx context.Context) error {
	d.mu.Lock()
	d.closed = true
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	defer d.cancel()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		d.cancel()
		<-done
		return ctx.Err()
	}
}

func (d *WebhookDispatcher) deliver(url string, env WebhookEnvelope, body []byte, log zerolog.Logger) {
	attempt := 0
	op := func() error {
		attempt++
		req, err := http.NewRequestWithContext(d.ctx, http.MethodPost, url, bytes.NewReader(body))
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Signature", env.Signature)
		req.Header.Set("X-Event-Type", env.EventType)
		req.Header.Set("X-Timestamp", strconv.FormatInt(env.Timestamp, 10))

		resp, err := d.httpClient.Do(req)
		if err != nil {
			return err
		}
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4<<10))
		resp.Body.Close()

		switch {
		case resp.StatusCode >= 200 && resp.StatusCode < 300:
			return nil
		case resp.StatusCode >= 400 && resp.StatusCode < 500 && resp.StatusCode != http.StatusTooManyRequests:
			return backoff.Permanent(fmt.Errorf("webhook rejected with status %d", resp.StatusCode))
		default:
			return fmt.Errorf("webhook returned status %d", resp.StatusCode)
		}
	}
	notify := func(err error, wait time.Duration) {
		log.Warn().Err(err).Int("attempt", attempt).Dur("retry_in", wait).Msg("webhook delivery failed")
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(d.newBackOff(), d.maxRetries), d.ctx)
	if err := backoff.RetryNotify(op, policy, notify); err != nil {
		log.Error().Err(err).Int("attempts", attempt).Msg("webhook delivery abandoned")
		return
	}
	log.Info().Int("attempt", attempt).Msg("webhook delivered")
}
