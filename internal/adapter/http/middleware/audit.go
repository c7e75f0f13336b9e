package middleware

import (
	"encoding/json"
	"net/http"
	"time"

	"cryptopay-gateway/internal/core/domain"
	"cryptopay-gateway/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CtxAuditResource lets a handler name the record it created or changed.
const CtxAuditResource = "audit_resource_id"

type auditRoute struct {
	action       domain.AuditAction
	resourceType string
}

// auditedRoutes is keyed by method and registered route pattern.
var auditedRoutes = map[string]auditRoute{
	"POST /api/v1/auth/register":                 {domain.AuditActionRegister, "merchant"},
	"POST /api/v1/auth/login":                    {domain.AuditActionLogin, "session"},
	"POST /api/v1/deposits":                      {domain.AuditActionDepositInitiate, "transaction"},
	"POST /api/v1/deposits/confirm":              {domain.AuditActionDepositConfirm, "transaction"},
	"POST /api/v1/withdrawals":                   {domain.AuditActionWithdrawalRequest, "withdrawal"},
	"PATCH /api/v1/admin/withdrawals/:id":        {domain.AuditActionWithdrawalResolve, "withdrawal"},
	"POST /api/v1/admin/fees":                    {domain.AuditActionFeeCreate, "fee_setting"},
	"POST /api/v1/withdrawals/:id/cancel":        {domain.AuditActionWithdrawalCancel, "withdrawal"},
	"PATCH /api/v1/admin/merchants/:id/approve":  {domain.AuditActionMerchantApprove, "merchant"},
	"PATCH /api/v1/admin/merchants/:id/block":    {domain.AuditActionMerchantBlock, "merchant"},
	"PATCH /api/v1/admin/notifications/:id/read": {domain.AuditActionNotificationRead, "notification"},
	"PUT /api/v1/merchants/me/webhook":           {domain.AuditActionUpdateWebhook, "merchant"},
	"POST /api/v1/merchants/me/rotate-keys":      {domain.AuditActionRotateKeys, "merchant"},
}

// AuditLog records successful writes on audited routes. The entry is handed
// to the audit service after the handler ran; persistence is asynchronous.
func AuditLog(auditSvc ports.AuditService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		status := c.Writer.Status()
		if status < http.StatusOK || status >= http.StatusMultipleChoices {
			return
		}
		route, ok := auditedRoutes[c.Request.Method+" "+c.FullPath()]
		if !ok {
			return
		}

		var merchantID *uuid.UUID
		if mid, exists := c.Get(CtxMerchantID); exists {
			if id, ok := mid.(uuid.UUID); ok {
				merchantID = &id
			}
		}

		details, _ := json.Marshal(map[string]any{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     status,
			"request_id": c.GetString(CtxRequestID),
		})

		auditSvc.Log(c.Request.Context(), &domain.AuditLog{
			ID:           uuid.New(),
			MerchantID:   merchantID,
			Action:       route.action,
			ResourceType: route.resourceType,
			ResourceID:   c.GetString(CtxAuditResource),
			IPAddress:    c.ClientIP(),
			Details:      string(details),
			CreatedAt:    time.Now().UTC(),
		})
	}
}
