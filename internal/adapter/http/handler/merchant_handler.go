package handler

import (
	"cryptopay-gateway/internal/adapter/http/dto"
	"cryptopay-gateway/internal/adapter/http/middleware"
	"cryptopay-gateway/internal/core/ports"
	"cryptopay-gateway/pkg/apperror"
	"cryptopay-gateway/pkg/response"

	"github.com/gin-gonic/gin"
)

// MerchantHandler handles merchant self-service endpoints.
type MerchantHandler struct {
	merchantSvc ports.MerchantManagementService
}

// NewMerchantHandler creates a new merchant handler.
func NewMerchantHandler(merchantSvc ports.MerchantManagementService) *MerchantHandler {
	return &MerchantHandler{merchantSvc: merchantSvc}
}

// GetProfile handles GET /api/v1/merchants/me.
func (h *MerchantHandler) GetProfile(c *gin.Context) {
	merchantID, ok := merchantIDFrom(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	profile, err := h.merchantSvc.GetProfile(c.Request.Context(), merchantID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.NewMerchantProfileResponse(profile))
}

// UpdateWebhookURL handles PUT /api/v1/merchants/me/webhook.
func (h *MerchantHandler) UpdateWebhookURL(c *gin.Context) {
	merchantID, ok := merchantIDFrom(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.UpdateWebhookRequest
	if !bindJSON(c, &req) {
		return
	}

	var url *string
	if req.WebhookURL != "" {
		url = &req.WebhookURL
	}
	if err := h.merchantSvc.UpdateWebhookURL(c.Request.Context(), merchantID, url); err != nil {
		response.Error(c, err)
		return
	}

	c.Set(middleware.CtxAuditResource, merchantID.String())
	response.OK(c, gin.H{"webhook_url": url})
}

// RotateKeys handles POST /api/v1/merchants/me/rotate-keys.
func (h *MerchantHandler) RotateKeys(c *gin.Context) {
	merchantID, ok := merchantIDFrom(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	keys, err := h.merchantSvc.RotateKeys(c.Request.Context(), merchantID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Set(middleware.CtxAuditResource, merchantID.String())
	response.OK(c, dto.RotateKeysResponse{AccessKey: keys.AccessKey, SecretKey: keys.SecretKey})
}
