package handler

import (
	"cryptopay-gateway/internal/adapter/http/dto"
	"cryptopay-gateway/internal/adapter/http/middleware"
	"cryptopay-gateway/internal/core/domain"
	"cryptopay-gateway/internal/core/ports"
	"cryptopay-gateway/pkg/apperror"
	"cryptopay-gateway/pkg/response"

	"github.com/gin-gonic/gin"
)

// DepositHandler handles the HMAC-signed deposit endpoints.
type DepositHandler struct {
	depositSvc ports.DepositService
}

// NewDepositHandler creates a new DepositHandler.
func NewDepositHandler(depositSvc ports.DepositService) *DepositHandler {
	return &DepositHandler{depositSvc: depositSvc}
}

// Initiate handles POST /api/v1/deposits.
func (h *DepositHandler) Initiate(c *gin.Context) {
	merchantID, ok := merchantIDFrom(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidAccessKey())
		return
	}

	var req dto.InitiateDepositRequest
	if !bindJSON(c, &req) {
		return
	}

	tx, err := h.depositSvc.InitiateTransaction(c.Request.Context(), ports.InitiateDepositRequest{
		MerchantID:  merchantID,
		Amount:      req.Amount,
		Currency:    domain.Currency(req.Currency),
		ReferenceID: req.ReferenceID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Set(middleware.CtxAuditResource, tx.TransactionID)
	response.Created(c, dto.NewDepositResponse(tx, tx.Status))
}

// Confirm handles POST /api/v1/deposits/confirm.
func (h *DepositHandler) Confirm(c *gin.Context) {
	merchantID, ok := merchantIDFrom(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidAccessKey())
		return
	}

	var req dto.ConfirmDepositRequest
	if !bindJSON(c, &req) {
		return
	}

	tx, err := h.depositSvc.ConfirmDeposit(c.Request.Context(), merchantID, req.WalletAddress)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Set(middleware.CtxAuditResource, tx.TransactionID)
	response.OK(c, dto.NewDepositResponse(tx, tx.Status))
}

// GetStatus handles GET /api/v1/deposits/:transaction_id.
func (h *DepositHandler) GetStatus(c *gin.Context) {
	merchantID, ok := merchantIDFrom(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidAccessKey())
		return
	}

	st, err := h.depositSvc.GetTransactionStatus(c.Request.Context(), merchantID, c.Param("transaction_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.NewDepositStatusResponse(st))
}
