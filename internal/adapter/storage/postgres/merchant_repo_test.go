package postgres

import (
	"context"
	"errors"
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

// newMockPool returns a pgxmock pool whose expectations are checked when the
// test ends.
func newMockPool(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		mock.Close()
	})
	return mock
}

func strPtr(s string) *string { return &s }

func newTestMerchant() *domain.Merchant {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &domain.Merchant{
		ID:           uuid.New(),
		Username:     "tron_shop",
		PasswordHash: "$argon2id$v=19$m=65536,t=1,p=4$c2FsdA$aGFzaA",
		MerchantName: "Tron Shop",
		Role:         domain.RoleMerchant,
		AccessKey:    "ak_" + uuid.NewString()[:16],
		SecretKeyEnc: "b64-nonce-and-ciphertext",
		WebhookURL:   strPtr("https://tron.example.com/cpg"),
		TotalAmt:     decimal.RequireFromString("1000.25"),
		Status:       domain.MerchantStatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func merchantCols() []string {
	return []string{"id", "username", "password_hash", "merchant_name", "role", "access_key", "secret_key_enc",
		"webhook_url", "total_amt", "status", "created_at", "updated_at"}
}

func merchantRow(m *domain.Merchant) *pgxmock.Rows {
	return pgxmock.NewRows(merchantCols()).AddRow(
		m.ID, m.Username, m.PasswordHash, m.MerchantName, m.Role,
		m.AccessKey, m.SecretKeyEnc, m.WebhookURL, m.TotalAmt.String(), m.Status,
		m.CreatedAt, m.UpdatedAt,
	)
}

func TestMerchantRepo_Create(t *testing.T) {
	mock := newMockPool(t)
	m := newTestMerchant()

	mock.ExpectExec("INSERT INTO merchants").
		WithArgs(m.ID, m.Username, m.PasswordHash, m.MerchantName, m.Role,
			m.AccessKey, m.SecretKeyEnc, m.WebhookURL, m.TotalAmt, m.Status,
			m.CreatedAt, m.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, NewMerchantRepo(mock).Create(context.Background(), m))
}

func TestMerchantRepo_Lookups(t *testing.T) {
	m := newTestMerchant()

	lookups := []struct {
		name  string
		where string
		arg   any
		call  func(*MerchantRepo) (*domain.Merchant, error)
	}{
		{"by id", "id", m.ID, func(r *MerchantRepo) (*domain.Merchant, error) {
			return r.GetByID(context.Background(), m.ID)
		}},
		{"by access key", "access_key", m.AccessKey, func(r *MerchantRepo) (*domain.Merchant, error) {
			return r.GetByAccessKey(context.Background(), m.AccessKey)
		}},
		{"by username", "username", m.Username, func(r *MerchantRepo) (*domain.Merchant, error) {
			return r.GetByUsername(context.Background(), m.Username)
		}},
	}

	for _, tt := range lookups {
		t.Run(tt.name, func(t *testing.T) {
			mock := newMockPool(t)
			mock.ExpectQuery("SELECT .+ FROM merchants WHERE " + tt.where + " = ").
				WithArgs(tt.arg).
				WillReturnRows(merchantRow(m))

			got, err := tt.call(NewMerchantRepo(mock))
			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, m.ID, got.ID)
			assert.Equal(t, domain.RoleMerchant, got.Role)
			assert.Equal(t, m.WebhookURL, got.WebhookURL)
			assert.True(t, m.TotalAmt.Equal(got.TotalAmt), "balance %s", got.TotalAmt)
		})

		t.Run(tt.name+" missing", func(t *testing.T) {
			mock := newMockPool(t)
			mock.ExpectQuery("SELECT .+ FROM merchants WHERE " + tt.where + " = ").
				WithArgs(tt.arg).
				WillReturnRows(pgxmock.NewRows(merchantCols()))

			got, err := tt.call(NewMerchantRepo(mock))
			assert.NoError(t, err)
			assert.Nil(t, got)
		})
	}
}

func TestMerchantRepo_AdjustBalance(t *testing.T) {
	tests := []struct {
		name     string
		delta    int64
		returned []string
		want     int64
		check    func(*testing.T, error)
	}{
		{"credit", 500, []string{"1500"}, 1500, nil},
		{"debit to zero", -1000, []string{"0"}, 0, nil},
		{"overdraw", -2000, nil, 0, func(t *testing.T, err error) {
			assert.ErrorIs(t, err, domain.ErrInsufficientBalance)
		}},
		{"credit unknown merchant", 10, nil, 0, func(t *testing.T, err error) {
			assert.False(t, errors.Is(err, domain.ErrInsufficientBalance))
			assert.ErrorContains(t, err, "not found")
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := newMockPool(t)
			id := uuid.New()
			delta := decimal.NewFromInt(tt.delta)

			rows := pgxmock.NewRows([]string{"total_amt"})
			for _, r := range tt.returned {
				rows.AddRow(r)
			}
			mock.ExpectQuery(`UPDATE merchants SET total_amt = total_amt \+ \$1.+total_amt \+ \$1 >= 0`).
				WithArgs(delta, id).
				WillReturnRows(rows)

			balance, err := NewMerchantRepo(mock).AdjustBalance(context.Background(), nil, id, delta)
			if tt.check != nil {
				require.Error(t, err)
				tt.check(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, decimal.NewFromInt(tt.want).Equal(balance))
		})
	}
}

func TestMerchantRepo_AdjustBalance_InsideTx(t *testing.T) {
	mock := newMockPool(t)
	id := uuid.New()
	delta := decimal.RequireFromString("12.5")

	mock.ExpectBegin()
	mock.ExpectQuery("UPDATE merchants SET total_amt").
		WithArgs(delta, id).
		WillReturnRows(pgxmock.NewRows([]string{"total_amt"}).AddRow("12.5"))
	mock.ExpectCommit()

	ctx := context.Background()
	tx, err := mock.Begin(ctx)
	require.NoError(t, err)

	balance, err := NewMerchantRepo(mock).AdjustBalance(ctx, tx, id, delta)
	require.NoError(t, err)
	assert.Equal(t, "12.5", balance.String())
	require.NoError(t, tx.Commit(ctx))
}

func TestMerchantRepo_TargetedUpdates(t *testing.T) {
	id := uuid.New()
	hook := strPtr("https://shop.example.com/hooks")

	t.Run("webhook set and clear", func(t *testing.T) {
		mock := newMockPool(t)
		mock.ExpectExec("UPDATE merchants SET webhook_url").
			WithArgs(hook, id).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectExec("UPDATE merchants SET webhook_url").
			WithArgs((*string)(nil), id).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		repo := NewMerchantRepo(mock)
		ok, err := repo.UpdateWebhookURL(context.Background(), id, hook)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = repo.UpdateWebhookURL(context.Background(), id, nil)
		require.NoError(t, err)
		assert.False(t, ok, "no row for unknown merchant")
	})

	t.Run("keys rotated", func(t *testing.T) {
		mock := newMockPool(t)
		mock.ExpectExec("UPDATE merchants SET access_key").
			WithArgs("ak_new", "enc_new", id).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		ok, err := NewMerchantRepo(mock).UpdateKeys(context.Background(), id, "ak_new", "enc_new")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("key collision", func(t *testing.T) {
		mock := newMockPool(t)
		mock.ExpectExec("UPDATE merchants SET access_key").
			WithArgs("ak_dup", "enc_dup", id).
			WillReturnError(errors.New("duplicate key value violates unique constraint"))

		_, err := NewMerchantRepo(mock).UpdateKeys(context.Background(), id, "ak_dup", "enc_dup")
		assert.ErrorContains(t, err, "update keys")
	})
}

func TestMerchantRepo_UpdateStatus(t *testing.T) {
	id := uuid.New()
	mock := newMockPool(t)
	mock.ExpectExec(`UPDATE merchants SET status = \$1, updated_at = NOW\(\)\s+WHERE id = \$2 AND role = \$3 AND status <> \$1`).
		WithArgs(domain.MerchantStatusSuspended, id, domain.RoleMerchant).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec("UPDATE merchants SET status").
		WithArgs(domain.MerchantStatusSuspended, id, domain.RoleMerchant).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	repo := NewMerchantRepo(mock)
	ok, err := repo.UpdateStatus(context.Background(), id, domain.MerchantStatusSuspended)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.UpdateStatus(context.Background(), id, domain.MerchantStatusSuspended)
	require.NoError(t, err)
	assert.False(t, ok, "already suspended")
}

func TestMerchantRepo_List_ByStatus(t *testing.T) {
	mock := newMockPool(t)
	m := newTestMerchant()
	status := domain.MerchantStatusActive

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM merchants WHERE role = \$1 AND status = \$2`).
		WithArgs(domain.RoleMerchant, status).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(21)))
	mock.ExpectQuery(`SELECT .+ FROM merchants WHERE role = \$1 AND status = \$2\s+ORDER BY created_at DESC LIMIT \$3 OFFSET \$4`).
		WithArgs(domain.RoleMerchant, status, 20, 20).
		WillReturnRows(merchantRow(m))

	list, total, err := NewMerchantRepo(mock).List(context.Background(), ports.MerchantListParams{Status: &status, Page: 2})
	require.NoError(t, err)
	assert.EqualValues(t, 21, total)
	require.Len(t, list, 1)
	assert.Equal(t, m.ID, list[0].ID)
}

func TestMerchantRepo_Totals(t *testing.T) {
	mock := newMockPool(t)
	mock.ExpectQuery(`SELECT COUNT\(\*\), COALESCE\(SUM\(total_amt\), 0\) FROM merchants WHERE role = \$1`).
		WithArgs(domain.RoleMerchant).
		WillReturnRows(pgxmock.NewRows([]string{"count", "sum"}).AddRow(int64(3), "2500.5"))

	got, err := NewMerchantRepo(mock).Totals(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 3, got.Count)
	assert.Equal(t, "2500.5", got.Balance.String())
}
