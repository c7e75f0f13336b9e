package handler

import (
	"time"

	"cryptopay-gateway/internal/adapter/http/dto"
	"cryptopay-gateway/internal/adapter/http/middleware"
	"cryptopay-gateway/internal/core/ports"
	"cryptopay-gateway/pkg/response"

	"github.com/gin-gonic/gin"
)

// AuthHandler serves the unauthenticated account endpoints.
type AuthHandler struct {
	authSvc ports.AuthService
}

func NewAuthHandler(authSvc ports.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

// Register handles POST /api/v1/auth/register. The secret key in the reply
// is never retrievable again; rotate-keys issues a new pair.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	creds, err := h.authSvc.Register(c.Request.Context(), ports.RegisterRequest{
		Username:     req.Username,
		Password:     req.Password,
		MerchantName: req.MerchantName,
		WebhookURL:   req.WebhookURL,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	merchantID := creds.MerchantID.String()
	c.Set(middleware.CtxAuditResource, merchantID)
	response.Created(c, dto.RegisterResponse{
		MerchantID: merchantID,
		AccessKey:  creds.AccessKey,
		SecretKey:  creds.SecretKey,
	})
}

// Login handles POST /api/v1/auth/login for merchants and operators alike;
// the role travels inside the token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	token, expiry, err := h.authSvc.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.LoginResponse{
		Token:     token,
		TokenType: "Bearer",
		Expiry:    expiry.Unix(),
		ExpiresAt: expiry.UTC().Format(time.RFC3339),
	})
}
