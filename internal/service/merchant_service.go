package service

import (
	"context"
	"fmt"

	"cryptopay-gateway/internal/core/ports"
	"cryptopay-gateway/pkg/apperror"
	"cryptopay-gateway/pkg/logger"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// MerchantServiceImpl implements ports.MerchantManagementService.
type MerchantServiceImpl struct {
	merchantRepo ports.MerchantRepository
	encSvc       ports.EncryptionService
	log          zerolog.Logger
}

// NewMerchantService creates a new merchant management service.
func NewMerchantService(
	merchantRepo ports.MerchantRepository,
	encSvc ports.EncryptionService,
	log zerolog.Logger,
) *MerchantServiceImpl {
	return &MerchantServiceImpl{
		merchantRepo: merchantRepo,
		encSvc:       encSvc,
		log:          logger.Component(log, "merchant_service"),
	}
}

func (s *MerchantServiceImpl) GetProfile(ctx context.Context, merchantID uuid.UUID) (*ports.MerchantProfile, error) {
	merchant, err := s.merchantRepo.GetByID(ctx, merchantID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("get merchant: %w", err))
	}
	if merchant == nil {
		return nil, apperror.ErrNotFound("merchant")
	}

	return &ports.MerchantProfile{
		ID:           merchant.ID,
		Username:     merchant.Username,
		MerchantName: merchant.MerchantName,
		Role:         merchant.Role,
		AccessKey:    merchant.AccessKey,
		WebhookURL:   merchant.WebhookURL,
		Balance:      merchant.TotalAmt,
		Status:       merchant.Status,
		CreatedAt:    merchant.CreatedAt,
	}, nil
}

// UpdateWebhookURL replaces the webhook endpoint. An empty URL clears it.
func (s *MerchantServiceImpl) UpdateWebhookURL(ctx context.Context, merchantID uuid.UUID, webhookURL *string) error {
	if err := validateWebhookURL(webhookURL); err != nil {
		return err
	}
	if webhookURL != nil && *webhookURL == "" {
		webhookURL = nil
	}

	found, err := s.merchantRepo.UpdateWebhookURL(ctx, merchantID, webhookURL)
	if err != nil {
		return apperror.ErrDatabaseError(err)
	}
	if !found {
		return apperror.ErrNotFound("merchant")
	}
	return nil
}

// RotateKeys issues a fresh access/secret key pair. The old pair stops
// working immediately; the new secret is returned once in plaintext.
func (s *MerchantServiceImpl) RotateKeys(ctx context.Context, merchantID uuid.UUID) (*ports.RotateKeysResponse, error) {
	accessKey, err := generateRandomHex(32)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("generate access key: %w", err))
	}
	secretKey, err := generateRandomHex(32)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("generate secret key: %w", err))
	}
	secretKeyEnc, err := s.encSvc.Encrypt(secretKey)
	if err != nil {
		return nil, apperror.ErrEncryptionFailure(fmt.Errorf("encrypt secret key: %w", err))
	}

	found, err := s.merchantRepo.UpdateKeys(ctx, merchantID, accessKey, secretKeyEnc)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	if !found {
		return nil, apperror.ErrNotFound("merchant")
	}

	s.log.Info().Str("merchant_id", merchantID.String()).Msg("api keys rotated")
	return &ports.RotateKeysResponse{AccessKey: accessKey, SecretKey: secretKey}, nil
}
