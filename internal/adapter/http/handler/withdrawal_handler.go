package handler

import (
	"cryptopay-gateway/internal/adapter/http/dto"
	"cryptopay-gateway/internal/adapter/http/middleware"
	"cryptopay-gateway/internal/core/domain"
	"cryptopay-gateway/internal/core/ports"
	"cryptopay-gateway/pkg/apperror"
	"cryptopay-gateway/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// WithdrawalHandler handles merchant withdrawal requests and admin resolution.
type WithdrawalHandler struct {
	withdrawalSvc ports.WithdrawalService
}

// NewWithdrawalHandler creates a new WithdrawalHandler.
func NewWithdrawalHandler(withdrawalSvc ports.WithdrawalService) *WithdrawalHandler {
	return &WithdrawalHandler{withdrawalSvc: withdrawalSvc}
}

// Request handles POST /api/v1/withdrawals.
func (h *WithdrawalHandler) Request(c *gin.Context) {
	merchantID, ok := merchantIDFrom(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.WithdrawalRequest
	if !bindJSON(c, &req) {
		return
	}
	feeID, err := uuid.Parse(req.FeeSettingID)
	if err != nil {
		response.Error(c, apperror.Validation("fee_setting_id must be a UUID"))
		return
	}

	w, err := h.withdrawalSvc.RequestWithdrawal(c.Request.Context(), ports.WithdrawalRequest{
		MerchantID:   merchantID,
		Amount:       req.Amount,
		FeeSettingID: feeID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Set(middleware.CtxAuditResource, w.ID.String())
	response.Created(c, dto.NewWithdrawalResponse(w))
}

// ListOwn handles GET /api/v1/withdrawals.
func (h *WithdrawalHandler) ListOwn(c *gin.Context) {
	merchantID, ok := merchantIDFrom(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}
	h.list(c, &merchantID)
}

// ListAll handles GET /api/v1/admin/withdrawals.
func (h *WithdrawalHandler) ListAll(c *gin.Context) {
	var merchantID *uuid.UUID
	if raw := c.Query("merchant_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			response.Error(c, apperror.Validation("merchant_id must be a UUID"))
			return
		}
		merchantID = &id
	}
	h.list(c, merchantID)
}

func (h *WithdrawalHandler) list(c *gin.Context, merchantID *uuid.UUID) {
	page, pageSize := pagination(c)
	params := ports.WithdrawalListParams{MerchantID: merchantID, Page: page, PageSize: pageSize}
	if s := c.Query("status"); s != "" {
		status := domain.WithdrawalStatus(s)
		params.Status = &status
	}

	ws, total, err := h.withdrawalSvc.ListWithdrawals(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.WithdrawalResponse, 0, len(ws))
	for i := range ws {
		items = append(items, dto.NewWithdrawalResponse(&ws[i]))
	}
	response.Page(c, items, page, pageSize, total)
}

// Resolve handles PATCH /api/v1/admin/withdrawals/:id?action=approve|reject.
func (h *WithdrawalHandler) Resolve(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("withdrawal id must be a UUID"))
		return
	}
	action, err := domain.ParseWithdrawalAction(c.Query("action"))
	if err != nil {
		response.Error(c, apperror.Validation("action must be approve or reject"))
		return
	}

	w, err := h.withdrawalSvc.ResolveWithdrawal(c.Request.Context(), id, action)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Set(middleware.CtxAuditResource, w.ID.String())
	response.OK(c, dto.NewWithdrawalResponse(w))
}

// Cancel handles POST /api/v1/withdrawals/:id/cancel.
func (h *WithdrawalHandler) Cancel(c *gin.Context) {
	merchantID, ok := merchantIDFrom(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("withdrawal id must be a UUID"))
		return
	}

	w, err := h.withdrawalSvc.CancelWithdrawal(c.Request.Context(), merchantID, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Set(middleware.CtxAuditResource, w.ID.String())
	response.OK(c, dto.NewWithdrawalResponse(w))
}
