package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditAction represents the type of audited action.
type AuditAction string

const (
	AuditActionRegister          AuditAction = "REGISTER"
	AuditActionLogin             AuditAction = "LOGIN"
	AuditActionDepositInitiate   AuditAction = "DEPOSIT_INITIATE"
	AuditActionDepositConfirm    AuditAction = "DEPOSIT_CONFIRM"
	AuditActionWithdrawalRequest AuditAction = "WITHDRAWAL_REQUEST"
	AuditActionWithdrawalResolve AuditAction = "WITHDRAWAL_RESOLVE"
	AuditActionFeeCreate         AuditAction = "FEE_CREATE"
	AuditActionUpdateWebhook     AuditAction = "UPDATE_WEBHOOK"
	AuditActionRotateKeys        AuditAction = "ROTATE_KEYS"
	AuditActionWithdrawalCancel  AuditAction = "WITHDRAWAL_CANCEL"
	AuditActionMerchantApprove   AuditAction = "MERCHANT_APPROVE"
	AuditActionMerchantBlock     AuditAction = "MERCHANT_BLOCK"
	AuditActionNotificationRead  AuditAction = "NOTIFICATION_READ"
)

// AuditLog records a single state-changing API call.
type AuditLog struct {
	ID           uuid.UUID   `json:"id"`
	MerchantID   *uuid.UUID  `json:"merchant_id,omitempty"`
	Action       AuditAction `json:"action"`
	ResourceType string      `json:"resource_type"`
	ResourceID   string      `json:"resource_id,omitempty"`
	Details      string      `json:"details,omitempty"` // JSON string
	IPAddress    string      `json:"ip_address"`
	CreatedAt    time.Time   `json:"created_at"`
}
