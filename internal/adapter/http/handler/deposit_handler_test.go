package handler

import (
	"context"
	"net/http"
	"testing"
	"time"

	"cryptopay-gateway/internal/adapter/http/middleware"
	"cryptopay-gateway/internal/core/domain"
	"cryptopay-gateway/internal/core/ports"
	"cryptopay-gateway/internal/core/ports/mocks"
	"cryptopay-gateway/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func testDeposit(merchantID uuid.UUID) *domain.Transaction {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	ref := "order-1"
	return &domain.Transaction{
		ID:            uuid.New(),
		TransactionID: "dep_abc",
		MerchantID:    merchantID,
		ReferenceID:   &ref,
		Amount:        decimal.RequireFromString("25.5"),
		Currency:      domain.CurrencyUSDTTRC20,
		WalletAddress: "T0123456789abcdef0123456789abcdef0",
		Status:        domain.TransactionStatusInitiated,
		ExpiresAt:     now.Add(10 * time.Minute),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func TestDepositHandler_Initiate_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockSvc := mocks.NewMockDepositService(ctrl)
	h := NewDepositHandler(mockSvc)

	merchantID := uuid.New()
	tx := testDeposit(merchantID)
	ref := "order-1"
	mockSvc.EXPECT().InitiateTransaction(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req ports.InitiateDepositRequest) (*domain.Transaction, error) {
			assert.Equal(t, merchantID, req.MerchantID)
			assert.True(t, decimal.RequireFromString("25.5").Equal(req.Amount))
			assert.Equal(t, domain.CurrencyUSDTTRC20, req.Currency)
			assert.Equal(t, &ref, req.ReferenceID)
			return tx, nil
		})

	c, w := newTestContext(http.MethodPost, "/api/v1/deposits",
		map[string]any{"amount": "25.5", "currency": "USDT-TRC20", "reference_id": ref}, &merchantID)
	h.Initiate(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, "dep_abc", data["transaction_id"])
	assert.Equal(t, "initiated", data["status"])
	assert.Equal(t, "25.5", data["amount"])
	assert.Equal(t, "TRON", data["network"])
	assert.Equal(t, tx.WalletAddress, data["wallet_address"])
	assert.NotContains(t, data, "wallet_secret_enc")
	assert.Equal(t, "dep_abc", c.GetString(middleware.CtxAuditResource))
}

func TestDepositHandler_Initiate_Errors(t *testing.T) {
	merchantID := uuid.New()

	t.Run("no merchant in context", func(t *testing.T) {
		h := NewDepositHandler(mocks.NewMockDepositService(gomock.NewController(t)))
		c, w := newTestContext(http.MethodPost, "/", map[string]any{"amount": 1, "currency": "USDT-TRC20"}, nil)
		h.Initiate(c)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("missing currency", func(t *testing.T) {
		h := NewDepositHandler(mocks.NewMockDepositService(gomock.NewController(t)))
		c, w := newTestContext(http.MethodPost, "/", map[string]any{"amount": 1}, &merchantID)
		h.Initiate(c)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("service validation", func(t *testing.T) {
		mockSvc := mocks.NewMockDepositService(gomock.NewController(t))
		mockSvc.EXPECT().InitiateTransaction(gomock.Any(), gomock.Any()).Return(nil, apperror.ErrInvalidAmount())
		c, w := newTestContext(http.MethodPost, "/", map[string]any{"amount": 0, "currency": "USDT-TRC20"}, &merchantID)
		NewDepositHandler(mockSvc).Initiate(c)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, apperror.CodeValidation, decodeErrorCode(t, w))
	})
}

func TestDepositHandler_Confirm(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockSvc := mocks.NewMockDepositService(ctrl)
	h := NewDepositHandler(mockSvc)

	merchantID := uuid.New()
	tx := testDeposit(merchantID)
	tx.Status = domain.TransactionStatusPending
	mockSvc.EXPECT().ConfirmDeposit(gomock.Any(), merchantID, tx.WalletAddress).Return(tx, nil)
	mockSvc.EXPECT().ConfirmDeposit(gomock.Any(), merchantID, "Tgone").
		Return(nil, apperror.ErrInvalidState("deposit is already success"))

	c, w := newTestContext(http.MethodPost, "/", map[string]any{"wallet_address": tx.WalletAddress}, &merchantID)
	h.Confirm(c)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pending", decodeData(t, w)["status"])

	c, w = newTestContext(http.MethodPost, "/", map[string]any{"wallet_address": "Tgone"}, &merchantID)
	h.Confirm(c)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, apperror.CodeInvalidState, decodeErrorCode(t, w))
}

func TestDepositHandler_GetStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockSvc := mocks.NewMockDepositService(ctrl)
	h := NewDepositHandler(mockSvc)

	merchantID := uuid.New()
	tx := testDeposit(merchantID)
	mockSvc.EXPECT().GetTransactionStatus(gomock.Any(), merchantID, "dep_abc").Return(&ports.DepositStatus{
		Transaction: tx,
		Status:      domain.TransactionStatusFailed,
		Monitor:     ports.MonitorSnapshot{TransactionID: "dep_abc"},
	}, nil)
	mockSvc.EXPECT().GetTransactionStatus(gomock.Any(), merchantID, "dep_missing").Return(nil, apperror.ErrNotFound("transaction"))

	c, w := newTestContext(http.MethodGet, "/api/v1/deposits/dep_abc", nil, &merchantID)
	c.Params = gin.Params{{Key: "transaction_id", Value: "dep_abc"}}
	h.GetStatus(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, "failed", data["status"])
	monitor := data["monitor"].(map[string]any)
	assert.Equal(t, false, monitor["active"])

	c, w = newTestContext(http.MethodGet, "/api/v1/deposits/dep_missing", nil, &merchantID)
	c.Params = gin.Params{{Key: "transaction_id", Value: "dep_missing"}}
	h.GetStatus(c)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
