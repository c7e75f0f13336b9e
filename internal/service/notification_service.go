package service

import (
	"context"
	"fmt"
	"time"

	"cryptopay-gateway/internal/core/domain"
	"cryptopay-gateway/internal/core/ports"
	"cryptopay-gateway/pkg/logger"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const notificationWriteTimeout = 5 * time.Second

// Webhook event types.
const (
	EventDepositUpdate    = "DEPOSIT_UPDATE"
	EventWithdrawalUpdate = "WITHDRAWAL_UPDATE"
)

// DepositWebhookData is the data block of a DEPOSIT_UPDATE webhook.
type DepositWebhookData struct {
	TransactionID string          `json:"transaction_id"`
	ReferenceID   string          `json:"reference_id,omitempty"`
	Status        string          `json:"status"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	WalletAddress string          `json:"wallet_address"`
	Reason        string          `json:"reason,omitempty"`
}

// WithdrawalWebhookData is the data block of a WITHDRAWAL_UPDATE webhook.
type WithdrawalWebhookData struct {
	WithdrawalID string          `json:"withdrawal_id"`
	Status       string          `json:"status"`
	Amount       decimal.Decimal `json:"amount"`
	FeeAmount    decimal.Decimal `json:"fee_amount"`
	NetAmount    decimal.Decimal `json:"net_amount"`
}

// webhookSender is the part of WebhookDispatcher the notifier uses.
type webhookSender interface {
	Dispatch(merchant *domain.Merchant, eventType string, reference string, data any)
}

// NotificationService implements ports.Notifier. Every event is stored for
// the admin feed and forwarded to the merchant's webhook. Failures are
// logged and swallowed; the ledger change they describe is already committed.
type NotificationService struct {
	repo     ports.NotificationRepository
	webhooks webhookSender
	log      zerolog.Logger
}

func NewNotificationService(repo ports.NotificationRepository, webhooks webhookSender, log zerolog.Logger) *NotificationService {
	return &NotificationService{
		repo:     repo,
		webhooks: webhooks,
		log:      logger.Component(log, "notifier"),
	}
}

func (s *NotificationService) OnDepositSuccess(ctx context.Context, tx *domain.Transaction, merchant *domain.Merchant) {
	s.store(ctx, &domain.Notification{
		Type:       domain.NotificationDepositSuccess,
		Title:      "Deposit confirmed",
		Message:    fmt.Sprintf("Deposit %s of %s %s credited to %s", tx.TransactionID, tx.Amount, tx.Currency, merchant.MerchantName),
		MerchantID: tx.MerchantID,
		Reference:  tx.TransactionID,
		Amount:     tx.Amount,
		Currency:   currencyPtr(tx.Currency),
		Priority:   domain.PriorityNormal,
	})
	s.webhooks.Dispatch(merchant, EventDepositUpdate, tx.TransactionID, depositData(tx))
}

func (s *NotificationService) OnDepositFailed(ctx context.Context, tx *domain.Transaction, merchant *domain.Merchant) {
	priority := domain.PriorityLow
	title := "Deposit expired"
	if tx.Status == domain.TransactionStatusAPIFailed {
		priority = domain.PriorityHigh
		title = "Deposit check failed"
	}
	s.store(ctx, &domain.Notification{
		Type:       domain.NotificationDepositFailed,
		Title:      title,
		Message:    fmt.Sprintf("Deposit %s of %s %s ended as %s", tx.TransactionID, tx.Amount, tx.Currency, tx.Status),
		MerchantID: tx.MerchantID,
		Reference:  tx.TransactionID,
		Amount:     tx.Amount,
		Currency:   currencyPtr(tx.Currency),
		Priority:   priority,
	})
	s.webhooks.Dispatch(merchant, EventDepositUpdate, tx.TransactionID, depositData(tx))
}

func (s *NotificationService) OnWithdrawalRequested(ctx context.Context, w *domain.Withdrawal, merchant *domain.Merchant) {
	s.store(ctx, &domain.Notification{
		Type:       domain.NotificationWithdrawalRequested,
		Title:      "Withdrawal awaiting approval",
		Message:    fmt.Sprintf("%s requested a withdrawal of %s (fee %s, net %s)", merchant.MerchantName, w.Amount, w.FeeAmount, w.NetAmount),
		MerchantID: w.MerchantID,
		Reference:  w.ID.String(),
		Amount:     w.Amount,
		Priority:   domain.PriorityHigh,
	})
	s.webhooks.Dispatch(merchant, EventWithdrawalUpdate, w.ID.String(), withdrawalData(w))
}

func (s *NotificationService) OnWithdrawalResolved(ctx context.Context, w *domain.Withdrawal, merchant *domain.Merchant) {
	typ, title := domain.NotificationWithdrawalApproved, "Withdrawal approved"
	switch w.Status {
	case domain.WithdrawalStatusRejected:
		typ, title = domain.NotificationWithdrawalRejected, "Withdrawal rejected"
	case domain.WithdrawalStatusCancelled:
		typ, title = domain.NotificationWithdrawalCancelled, "Withdrawal cancelled by merchant"
	}
	s.store(ctx, &domain.Notification{
		Type:       typ,
		Title:      title,
		Message:    fmt.Sprintf("Withdrawal %s of %s for %s is %s", w.ID, w.Amount, merchant.MerchantName, w.Status),
		MerchantID: w.MerchantID,
		Reference:  w.ID.String(),
		Amount:     w.Amount,
		Priority:   domain.PriorityNormal,
	})
	s.webhooks.Dispatch(merchant, EventWithdrawalUpdate, w.ID.String(), withdrawalData(w))
}

// store writes on a context detached from the caller, so a finished HTTP
// request does not drop the record.
func (s *NotificationService) store(ctx context.Context, n *domain.Notification) {
	n.ID = uuid.New()
	n.CreatedAt = time.Now().UTC()

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), notificationWriteTimeout)
	defer cancel()
	if err := s.repo.Create(ctx, n); err != nil {
		s.log.Error().Err(err).Str("type", string(n.Type)).Str("reference", n.Reference).Msg("store notification")
	}
}

func depositData(tx *domain.Transaction) DepositWebhookData {
	d := DepositWebhookData{
		TransactionID: tx.TransactionID,
		Status:        string(tx.Status),
		Amount:        tx.Amount,
		Currency:      string(tx.Currency),
		WalletAddress: tx.WalletAddress,
	}
	if tx.ReferenceID != nil {
		d.ReferenceID = *tx.ReferenceID
	}
	if tx.FailureReason != nil {
		d.Reason = *tx.FailureReason
	}
	return d
}

func withdrawalData(w *domain.Withdrawal) WithdrawalWebhookData {
	return WithdrawalWebhookData{
		WithdrawalID: w.ID.String(),
		Status:       string(w.Status),
		Amount:       w.Amount,
		FeeAmount:    w.FeeAmount,
		NetAmount:    w.NetAmount,
	}
}

func currencyPtr(c domain.Currency) *string {
	s := string(c)
	return &s
}
