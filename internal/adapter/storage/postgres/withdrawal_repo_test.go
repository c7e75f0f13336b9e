package postgres

import (
	"context"
	"testing"
	"time"

	"cryptopay-gateway/internal/core/domain"
	"cryptopay-gateway/internal/core/ports"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWithdrawal() *domain.Withdrawal {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &domain.Withdrawal{
		ID:           uuid.New(),
		MerchantID:   uuid.New(),
		Amount:       decimal.NewFromInt(400),
		FeeSettingID: uuid.New(),
		FeeAmount:    decimal.NewFromInt(20),
		NetAmount:    decimal.NewFromInt(380),
		Status:       domain.WithdrawalStatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func withdrawalCols() []string {
	return []string{"id", "merchant_id", "amount", "fee_setting_id", "fee_amount", "net_amount",
		"status", "resolved_at", "created_at", "updated_at"}
}

func withdrawalRow(w *domain.Withdrawal) *pgxmock.Rows {
	return pgxmock.NewRows(withdrawalCols()).AddRow(
		w.ID, w.MerchantID, w.Amount.String(), w.FeeSettingID, w.FeeAmount.String(), w.NetAmount.String(),
		w.Status, w.ResolvedAt, w.CreatedAt, w.UpdatedAt,
	)
}

func TestWithdrawalRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWithdrawalRepo(mock)
	w := newTestWithdrawal()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO withdrawals").
		WithArgs(w.ID, w.MerchantID, w.Amount, w.FeeSettingID, w.FeeAmount, w.NetAmount,
			w.Status, w.ResolvedAt, w.CreatedAt, w.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	dbTx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	require.NoError(t, repo.Create(context.Background(), dbTx, w))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithdrawalRepo_GetByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWithdrawalRepo(mock)
	w := newTestWithdrawal()

	mock.ExpectQuery("SELECT .+ FROM withdrawals WHERE id").
		WithArgs(w.ID).
		WillReturnRows(withdrawalRow(w))

	got, err := repo.GetByID(context.Background(), w.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, decimal.NewFromInt(380).Equal(got.NetAmount))
	assert.Equal(t, domain.WithdrawalStatusPending, got.Status)
}

func TestWithdrawalRepo_Resolve(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWithdrawalRepo(mock)
	w := newTestWithdrawal()
	at := time.Now().UTC()

	resolved := *w
	resolved.Status = domain.WithdrawalStatusRejected
	resolved.ResolvedAt = &at

	mock.ExpectQuery(`UPDATE withdrawals SET status = \$1.+WHERE id = \$3 AND status = \$4`).
		WithArgs(domain.WithdrawalStatusRejected, at, w.ID, domain.WithdrawalStatusPending).
		WillReturnRows(withdrawalRow(&resolved))

	got, err := repo.Resolve(context.Background(), nil, w.ID, domain.WithdrawalStatusRejected, at)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, domain.WithdrawalStatusRejected, got.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithdrawalRepo_Resolve_NotPending(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWithdrawalRepo(mock)

	mock.ExpectQuery("UPDATE withdrawals").
		WithArgs(domain.WithdrawalStatusApproved, pgxmock.AnyArg(), pgxmock.AnyArg(), domain.WithdrawalStatusPending).
		WillReturnRows(pgxmock.NewRows(withdrawalCols()))

	got, err := repo.Resolve(context.Background(), nil, uuid.New(), domain.WithdrawalStatusApproved, time.Now())
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestWithdrawalRepo_List_AllMerchants(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWithdrawalRepo(mock)
	w := newTestWithdrawal()
	status := domain.WithdrawalStatusPending

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM withdrawals WHERE status = \$1`).
		WithArgs(status).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(1)))
	mock.ExpectQuery("SELECT .+ FROM withdrawals WHERE status = .+ LIMIT").
		WithArgs(status, 20, 0).
		WillReturnRows(withdrawalRow(w))

	list, total, err := repo.List(context.Background(), ports.WithdrawalListParams{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, list, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithdrawalRepo_Stats(t *testing.T) {
	mock := newMockPool(t)
	merchantID := uuid.New()
	mock.ExpectQuery(`SELECT COUNT\(\*\) FILTER \(WHERE TRUE\).+FROM withdrawals WHERE merchant_id = \$5`).
		WithArgs(domain.WithdrawalStatusApproved, domain.WithdrawalStatusRejected,
			domain.WithdrawalStatusCancelled, domain.WithdrawalStatusPending, merchantID).
		WillReturnRows(pgxmock.NewRows([]string{"tc", "ta", "ac", "aa", "rc", "ra", "cc", "ca", "pc", "pa"}).
			AddRow(int64(5), "900", int64(2), "400", int64(1), "100", int64(1), "150", int64(1), "250"))

	got, err := NewWithdrawalRepo(mock).Stats(context.Background(), &merchantID)
	require.NoError(t, err)
	assert.EqualValues(t, 5, got.Total.Count)
	assert.Equal(t, "400", got.Approved.Amount.String())
	assert.EqualValues(t, 1, got.Cancelled.Count)
	assert.Equal(t, "250", got.Pending.Amount.String())
}
