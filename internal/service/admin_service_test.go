package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"cryptopay-gateway/internal/core/domain"
	"cryptopay-gateway/internal/core/ports"
	"cryptopay-gateway/internal/core/ports/mocks"
	"cryptopay-gateway/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func (l *testLedger) adminService() *AdminServiceImpl {
	return NewAdminService(l.merchants, l.deposits, l.withdrawals, l.notes, l.clock, zerolog.Nop())
}

func (l *testLedger) seedAdmin(t *testing.T) *domain.Merchant {
	t.Helper()
	m := &domain.Merchant{
		ID:        uuid.New(),
		Username:  "ops",
		Role:      domain.RoleAdmin,
		AccessKey: "ak-ops",
		Status:    domain.MerchantStatusActive,
		CreatedAt: l.clock.Now(),
	}
	require.NoError(t, l.merchants.Create(context.Background(), m))
	return m
}

func (l *testLedger) seedWithdrawal(t *testing.T, merchantID uuid.UUID, amount int64, status domain.WithdrawalStatus) {
	t.Helper()
	w := &domain.Withdrawal{
		ID:         uuid.New(),
		MerchantID: merchantID,
		Amount:     decimal.NewFromInt(amount),
		Status:     status,
		CreatedAt:  l.clock.Now(),
	}
	require.NoError(t, l.withdrawals.Create(context.Background(), nil, w))
}

func TestAdminService_SetMerchantStatus(t *testing.T) {
	l := newTestLedger(t)
	svc := l.adminService()
	ctx := context.Background()
	m := l.seedMerchant(t, 0)
	admin := l.seedAdmin(t)

	_, err := svc.SetMerchantStatus(ctx, m.ID, domain.MerchantActionApprove)
	requireAppCode(t, err, apperror.CodeAlreadyProcessed)

	blocked, err := svc.SetMerchantStatus(ctx, m.ID, domain.MerchantActionBlock)
	require.NoError(t, err)
	assert.Equal(t, domain.MerchantStatusSuspended, blocked.Status)

	_, err = svc.SetMerchantStatus(ctx, m.ID, domain.MerchantActionBlock)
	requireAppCode(t, err, apperror.CodeAlreadyProcessed)

	stored, err := l.merchants.GetByID(ctx, m.ID)
	require.NoError(t, err)
	assert.False(t, stored.IsActive())

	approved, err := svc.SetMerchantStatus(ctx, m.ID, domain.MerchantActionApprove)
	require.NoError(t, err)
	assert.True(t, approved.IsActive())

	_, err = svc.SetMerchantStatus(ctx, admin.ID, domain.MerchantActionBlock)
	requireAppCode(t, err, apperror.CodeNotFound)
	_, err = svc.SetMerchantStatus(ctx, uuid.New(), domain.MerchantActionBlock)
	requireAppCode(t, err, apperror.CodeNotFound)
	_, err = svc.SetMerchantStatus(ctx, m.ID, "delete")
	requireAppCode(t, err, apperror.CodeValidation)
}

func TestAdminService_SetMerchantStatus_LostRace(t *testing.T) {
	ctrl := gomock.NewController(t)
	merchantRepo := mocks.NewMockMerchantRepository(ctrl)
	l := newTestLedger(t)
	svc := NewAdminService(merchantRepo, l.deposits, l.withdrawals, l.notes, l.clock, zerolog.Nop())
	ctx := context.Background()
	m := &domain.Merchant{ID: uuid.New(), Role: domain.RoleMerchant, Status: domain.MerchantStatusActive}

	merchantRepo.EXPECT().GetByID(ctx, m.ID).Return(m, nil)
	merchantRepo.EXPECT().UpdateStatus(ctx, m.ID, domain.MerchantStatusSuspended).Return(false, nil)
	_, err := svc.SetMerchantStatus(ctx, m.ID, domain.MerchantActionBlock)
	requireAppCode(t, err, apperror.CodeAlreadyProcessed)

	merchantRepo.EXPECT().GetByID(ctx, m.ID).Return(m, nil)
	merchantRepo.EXPECT().UpdateStatus(ctx, m.ID, domain.MerchantStatusSuspended).Return(false, errors.New("db down"))
	_, err = svc.SetMerchantStatus(ctx, m.ID, domain.MerchantActionBlock)
	requireAppCode(t, err, apperror.CodeInternal)
}

func TestAdminService_MerchantDirectory(t *testing.T) {
	l := newTestLedger(t)
	svc := l.adminService()
	ctx := context.Background()
	a := l.seedMerchant(t, 10)
	l.clock.Advance(time.Second)
	b := l.seedMerchant(t, 20)
	admin := l.seedAdmin(t)
	l.seedDeposit(t, a.ID, 100, time.Minute)
	l.seedDeposit(t, b.ID, 200, time.Minute)

	list, total, err := svc.ListMerchants(ctx, ports.MerchantListParams{})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	require.Len(t, list, 2)
	assert.Equal(t, b.ID, list[0].ID, "newest first")

	bad := domain.MerchantStatus("approved")
	_, _, err = svc.ListMerchants(ctx, ports.MerchantListParams{Status: &bad})
	requireAppCode(t, err, apperror.CodeValidation)

	got, err := svc.GetMerchant(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, a.Username, got.Username)
	_, err = svc.GetMerchant(ctx, admin.ID)
	requireAppCode(t, err, apperror.CodeNotFound)

	txns, total, err := svc.ListMerchantTransactions(ctx, a.ID, 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Equal(t, a.ID, txns[0].MerchantID)
	_, _, err = svc.ListMerchantTransactions(ctx, uuid.New(), 1, 10)
	requireAppCode(t, err, apperror.CodeNotFound)
}

func TestAdminService_Notifications(t *testing.T) {
	l := newTestLedger(t)
	svc := l.adminService()
	ctx := context.Background()
	id := uuid.New()
	require.NoError(t, l.notes.Create(ctx, &domain.Notification{ID: id, Type: domain.NotificationWithdrawalRequested, CreatedAt: l.clock.Now()}))

	sum, err := svc.NotificationSummary(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, sum.ActionRequired)

	require.NoError(t, svc.MarkNotificationRead(ctx, id))
	requireAppCode(t, svc.MarkNotificationRead(ctx, uuid.New()), apperror.CodeNotFound)

	sum, err = svc.NotificationSummary(ctx)
	require.NoError(t, err)
	assert.Zero(t, sum.Unread)
	assert.Zero(t, sum.ActionRequired)

	unread, _, err := l.notes.List(ctx, ports.NotificationListParams{UnreadOnly: true})
	require.NoError(t, err)
	assert.Empty(t, unread)
}

func TestAdminService_Stats(t *testing.T) {
	l := newTestLedger(t)
	svc := l.adminService()
	ctx := context.Background()
	a := l.seedMerchant(t, 500)
	b := l.seedMerchant(t, 250)
	l.seedAdmin(t)

	paid := l.seedDeposit(t, a.ID, 700, time.Minute)
	_, applied, err := l.settler.Confirm(ctx, paid.TransactionID)
	require.NoError(t, err)
	require.True(t, applied)
	l.seedDeposit(t, a.ID, 50, time.Minute)
	l.seedDeposit(t, a.ID, 30, -time.Second)
	l.seedDeposit(t, b.ID, 90, time.Minute)
	l.seedWithdrawal(t, a.ID, 200, domain.WithdrawalStatusApproved)
	l.seedWithdrawal(t, a.ID, 60, domain.WithdrawalStatusPending)
	l.seedWithdrawal(t, b.ID, 40, domain.WithdrawalStatusPending)

	st, err := svc.MerchantStats(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, a.ID, st.MerchantID)
	assert.EqualValues(t, 3, st.Deposits.Total.Count)
	assert.True(t, decimal.NewFromInt(700).Equal(st.LifetimeEarnings))
	assert.True(t, decimal.NewFromInt(30).Equal(st.Deposits.Failed.Amount), "overdue deposit counts as failed")
	assert.True(t, decimal.NewFromInt(50).Equal(st.Deposits.Pending.Amount))
	assert.True(t, decimal.NewFromInt(200).Equal(st.LifetimeWithdrawals))
	assert.True(t, decimal.NewFromInt(1200).Equal(st.CurrentBalance))

	_, err = svc.MerchantStats(ctx, uuid.New())
	requireAppCode(t, err, apperror.CodeNotFound)

	all, total, err := svc.AllMerchantStats(ctx, 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Len(t, all, 2)

	p, err := svc.PlatformStats(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, p.Merchants)
	assert.True(t, decimal.NewFromInt(700).Equal(p.TotalDeposits))
	assert.True(t, decimal.NewFromInt(30).Equal(p.TotalFailedDeposits))
	assert.True(t, decimal.NewFromInt(200).Equal(p.TotalWithdrawals))
	assert.True(t, decimal.NewFromInt(100).Equal(p.TotalPendingWithdrawals))
	assert.True(t, decimal.NewFromInt(1450).Equal(p.TotalCurrentBalance))
}

func TestAdminService_PlatformStats_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	merchantRepo := mocks.NewMockMerchantRepository(ctrl)
	l := newTestLedger(t)
	svc := NewAdminService(merchantRepo, l.deposits, l.withdrawals, l.notes, l.clock, zerolog.Nop())

	merchantRepo.EXPECT().Totals(gomock.Any()).Return(nil, errors.New("db down"))
	_, err := svc.PlatformStats(context.Background())
	requireAppCode(t, err, apperror.CodeInternal)
}
