package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/url"
	"strings"
	"time"

	"cryptopay-gateway/internal/core/domain"
	"cryptopay-gateway/internal/core/ports"
	"cryptopay-gateway/pkg/apperror"
	"cryptopay-gateway/pkg/logger"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const minPasswordLength = 8

// AuthServiceImpl implements ports.AuthService.
type AuthServiceImpl struct {
	merchantRepo ports.MerchantRepository
	hashSvc      ports.HashService
	encSvc       ports.EncryptionService
	tokenSvc     ports.TokenService
	log          zerolog.Logger
}

func NewAuthService(
	merchantRepo ports.MerchantRepository,
	hashSvc ports.HashService,
	encSvc ports.EncryptionService,
	tokenSvc ports.TokenService,
	log zerolog.Logger,
) *AuthServiceImpl {
	return &AuthServiceImpl{
		merchantRepo: merchantRepo,
		hashSvc:      hashSvc,
		encSvc:       encSvc,
		tokenSvc:     tokenSvc,
		log:          logger.Component(log, "auth_service"),
	}
}

// Register creates a merchant account with a zero balance.
// Returns the access_key and secret_key (plaintext shown only once).
func (s *AuthServiceImpl) Register(ctx context.Context, req ports.RegisterRequest) (*ports.RegisterResponse, error) {
	if err := validateRegistration(req); err != nil {
		return nil, err
	}

	existing, err := s.merchantRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("check username: %w", err))
	}
	if existing != nil {
		return nil, apperror.ErrUsernameExists()
	}

	merchant, secretKey, err := s.newAccount(req.Username, req.Password, req.MerchantName, domain.RoleMerchant)
	if err != nil {
		return nil, err
	}
	merchant.WebhookURL = req.WebhookURL

	if err := s.merchantRepo.Create(ctx, merchant); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("create merchant: %w", err))
	}

	s.log.Info().Str("merchant_id", merchant.ID.String()).Msg("merchant registered")

	return &ports.RegisterResponse{
		MerchantID: merchant.ID,
		AccessKey:  merchant.AccessKey,
		SecretKey:  secretKey,
	}, nil
}

// Login validates credentials and returns a JWT carrying the account role.
func (s *AuthServiceImpl) Login(ctx context.Context, username, password string) (string, time.Time, error) {
	merchant, err := s.merchantRepo.GetByUsername(ctx, username)
	if err != nil {
		return "", time.Time{}, apperror.ErrDatabaseError(fmt.Errorf("find merchant: %w", err))
	}
	if merchant == nil {
		return "", time.Time{}, apperror.ErrInvalidCredentials()
	}

	valid, err := s.hashSvc.Verify(password, merchant.PasswordHash)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("verify password: %w", err))
	}
	if !valid {
		return "", time.Time{}, apperror.ErrInvalidCredentials()
	}

	if !merchant.IsActive() {
		return "", time.Time{}, apperror.ErrMerchantSuspended()
	}

	role := merchant.Role
	if role == "" {
		role = domain.RoleMerchant
	}
	token, expiry, err := s.tokenSvc.Generate(merchant.ID, merchant.AccessKey, role)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("generate token: %w", err))
	}

	return token, expiry, nil
}

// EnsureAdmin creates the operator account on first start. An existing admin
// with the same username is left untouched; a merchant holding the username
// is an error.
func (s *AuthServiceImpl) EnsureAdmin(ctx context.Context, username, password string) error {
	existing, err := s.merchantRepo.GetByUsername(ctx, username)
	if err != nil {
		return apperror.ErrDatabaseError(fmt.Errorf("find admin: %w", err))
	}
	if existing != nil {
		if existing.IsAdmin() {
			return nil
		}
		return apperror.ErrUsernameExists()
	}
	if len(password) < minPasswordLength {
		return apperror.Validation(fmt.Sprintf("admin password must be at least %d characters", minPasswordLength))
	}

	admin, _, err := s.newAccount(username, password, "Platform Admin", domain.RoleAdmin)
	if err != nil {
		return err
	}
	if err := s.merchantRepo.Create(ctx, admin); err != nil {
		return apperror.ErrDatabaseError(fmt.Errorf("create admin: %w", err))
	}

	s.log.Info().Str("username", username).Msg("admin account bootstrapped")
	return nil
}

// newAccount builds an account with fresh keys. The secret key is returned
// in plaintext alongside the merchant holding its encrypted form.
func (s *AuthServiceImpl) newAccount(username, password, name string, role domain.Role) (*domain.Merchant, string, error) {
	accessKey, err := generateRandomHex(32)
	if err != nil {
		return nil, "", apperror.InternalError(fmt.Errorf("generate access key: %w", err))
	}
	secretKey, err := generateRandomHex(32)
	if err != nil {
		return nil, "", apperror.InternalError(fmt.Errorf("generate secret key: %w", err))
	}

	passwordHash, err := s.hashSvc.Hash(password)
	if err != nil {
		return nil, "", apperror.InternalError(fmt.Errorf("hash password: %w", err))
	}
	secretKeyEnc, err := s.encSvc.Encrypt(secretKey)
	if err != nil {
		return nil, "", apperror.ErrEncryptionFailure(fmt.Errorf("encrypt secret key: %w", err))
	}

	now := time.Now().UTC()
	return &domain.Merchant{
		ID:           uuid.New(),
		Username:     username,
		PasswordHash: passwordHash,
		MerchantName: name,
		Role:         role,
		AccessKey:    accessKey,
		SecretKeyEnc: secretKeyEnc,
		TotalAmt:     decimal.Zero,
		Status:       domain.MerchantStatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, secretKey, nil
}

func validateRegistration(req ports.RegisterRequest) error {
	if strings.TrimSpace(req.Username) == "" {
		return apperror.Validation("username is required")
	}
	if len(req.Password) < minPasswordLength {
		return apperror.Validation(fmt.Sprintf("password must be at least %d characters", minPasswordLength))
	}
	return validateWebhookURL(req.WebhookURL)
}

// validateWebhookURL accepts nil or empty (no webhook) and absolute http(s) URLs.
func validateWebhookURL(raw *string) error {
	if raw == nil || *raw == "" {
		return nil
	}
	u, err := url.ParseRequestURI(*raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return apperror.Validation("webhook_url must be an absolute http(s) URL")
	}
	return nil
}

// generateRandomHex generates a random hex string of n bytes.
func generateRandomHex(n int) (string, error) {
	bytes := make([]byte, n)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}
