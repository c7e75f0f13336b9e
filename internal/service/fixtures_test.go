package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"cryptopay-gateway/internal/adapter/storage/memory"
	"cryptopay-gateway/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var testEpoch = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

// testLedger wires the in-memory store behind the real services.
type testLedger struct {
	store       *memory.Store
	merchants   *memory.MerchantRepo
	deposits    *memory.TransactionRepo
	withdrawals *memory.WithdrawalRepo
	fees        *memory.FeeSettingRepo
	notes       *memory.NotificationRepo
	notifier    *recordingNotifier
	clock       *clockwork.FakeClock
	settler     *SettlementService
}

func newTestLedger(t *testing.T) *testLedger {
	t.Helper()
	store := memory.NewStore()
	l := &testLedger{
		store:       store,
		merchants:   memory.NewMerchantRepo(store),
		deposits:    memory.NewTransactionRepo(store),
		withdrawals: memory.NewWithdrawalRepo(store),
		fees:        memory.NewFeeSettingRepo(store),
		notes:       memory.NewNotificationRepo(store),
		notifier:    &recordingNotifier{},
		clock:       clockwork.NewFakeClockAt(testEpoch),
	}
	l.settler = NewSettlementService(l.merchants, l.deposits, store, l.notifier, l.clock, zerolog.Nop())
	return l
}

func (l *testLedger) seedMerchant(t *testing.T, balance int64) *domain.Merchant {
	t.Helper()
	id := uuid.New()
	m := &domain.Merchant{
		ID:           id,
		Username:     "merchant-" + id.String()[:8],
		MerchantName: "Shop " + id.String()[:4],
		Role:         domain.RoleMerchant,
		AccessKey:    "ak-" + id.String(),
		TotalAmt:     decimal.NewFromInt(balance),
		Status:       domain.MerchantStatusActive,
		CreatedAt:    l.clock.Now(),
		UpdatedAt:    l.clock.Now(),
	}
	require.NoError(t, l.merchants.Create(context.Background(), m))
	return m
}

// seedDeposit stores an initiated deposit created now that expires after ttl.
// A negative ttl produces a deposit that is already overdue.
func (l *testLedger) seedDeposit(t *testing.T, merchantID uuid.UUID, amount int64, ttl time.Duration) *domain.Transaction {
	t.Helper()
	now := l.clock.Now()
	id := uuid.New()
	tx := &domain.Transaction{
		ID:            id,
		TransactionID: id.String()[:24],
		MerchantID:    merchantID,
		Amount:        decimal.NewFromInt(amount),
		Currency:      domain.CurrencyUSDTTRC20,
		WalletAddress: "T" + id.String()[:8],
		Status:        domain.TransactionStatusInitiated,
		ExpiresAt:     now.Add(ttl),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	require.NoError(t, l.deposits.Create(context.Background(), tx))
	return tx
}

func (l *testLedger) balance(t *testing.T, merchantID uuid.UUID) decimal.Decimal {
	t.Helper()
	m, err := l.merchants.GetByID(context.Background(), merchantID)
	require.NoError(t, err)
	require.NotNil(t, m)
	return m.TotalAmt
}

func (l *testLedger) status(t *testing.T, transactionID string) domain.TransactionStatus {
	t.Helper()
	tx, err := l.deposits.GetByTransactionID(context.Background(), transactionID)
	require.NoError(t, err)
	require.NotNil(t, tx)
	return tx.Status
}

// recordingNotifier implements ports.Notifier and keeps every event.
type recordingNotifier struct {
	mu     sync.Mutex
	events []string
}

func (n *recordingNotifier) add(event, ref string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, event+":"+ref)
}

func (n *recordingNotifier) OnDepositSuccess(_ context.Context, tx *domain.Transaction, _ *domain.Merchant) {
	n.add("deposit_success", tx.TransactionID)
}

func (n *recordingNotifier) OnDepositFailed(_ context.Context, tx *domain.Transaction, _ *domain.Merchant) {
	n.add("deposit_failed", tx.TransactionID)
}

func (n *recordingNotifier) OnWithdrawalRequested(_ context.Context, w *domain.Withdrawal, _ *domain.Merchant) {
	n.add("withdrawal_requested", w.ID.String())
}

func (n *recordingNotifier) OnWithdrawalResolved(_ context.Context, w *domain.Withdrawal, _ *domain.Merchant) {
	n.add("withdrawal_"+string(w.Status), w.ID.String())
}

func (n *recordingNotifier) all() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.events...)
}

// stubOracle answers CheckPayment with a programmable function.
type stubOracle struct {
	mu     sync.Mutex
	calls  int
	answer func(wallet string) (bool, error)
}

func (o *stubOracle) CheckPayment(_ context.Context, wallet string, _ decimal.Decimal, _ domain.Currency) (bool, error) {
	o.mu.Lock()
	o.calls++
	answer := o.answer
	o.mu.Unlock()
	return answer(wallet)
}

func (o *stubOracle) callCount() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.calls
}

func oracleReturns(found bool, err error) *stubOracle {
	return &stubOracle{answer: func(string) (bool, error) { return found, err }}
}
