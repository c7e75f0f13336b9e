package integration

import (
	"net/http"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type withdrawalView struct {
	ID        string          `json:"id"`
	Amount    decimal.Decimal `json:"amount"`
	FeeAmount decimal.Decimal `json:"fee_amount"`
	NetAmount decimal.Decimal `json:"net_amount"`
	Status    string          `json:"status"`
}

func (a *testApp) requestWithdrawal(t *testing.T, m merchantCreds, amount, feeID string) *http.Response {
	t.Helper()
	return a.bearer(t, m.Token, http.MethodPost, "/api/v1/withdrawals", map[string]string{
		"amount":         amount,
		"fee_setting_id": feeID,
	})
}

func TestIntegration_WithdrawalReserveAndResolve(t *testing.T) {
	for _, action := range []string{"reject", "approve"} {
		t.Run(action, func(t *testing.T) {
			app := newTestApp(t)
			admin := app.adminToken(t)
			m := app.register(t, "shop_"+action)
			app.fund(t, m, "1000")
			fee := app.createFee(t, admin, "percentage", "5")

			resp := app.requestWithdrawal(t, m, "400", fee)
			require.Equal(t, http.StatusCreated, resp.StatusCode)
			w := decode[withdrawalView](t, resp).Data
			assert.Equal(t, "pending", w.Status)
			assert.True(t, decimal.NewFromInt(20).Equal(w.FeeAmount))
			assert.True(t, decimal.NewFromInt(380).Equal(w.NetAmount))
			assert.True(t, decimal.NewFromInt(600).Equal(app.balance(t, m)))

			resp = app.bearer(t, admin, http.MethodPatch, "/api/v1/admin/withdrawals/"+w.ID+"?action="+action, nil)
			require.Equal(t, http.StatusOK, resp.StatusCode)
			resolved := decode[withdrawalView](t, resp).Data

			want := decimal.NewFromInt(600)
			wantStatus := "approved"
			if action == "reject" {
				want = decimal.NewFromInt(1000)
				wantStatus = "rejected"
			}
			assert.Equal(t, wantStatus, resolved.Status)
			assert.True(t, want.Equal(app.balance(t, m)))

			again := app.bearer(t, admin, http.MethodPatch, "/api/v1/admin/withdrawals/"+w.ID+"?action=reject", nil)
			assert.Equal(t, http.StatusConflict, again.StatusCode)
			assert.Equal(t, "STATE_002", decode[any](t, again).ErrorCode)
			assert.True(t, want.Equal(app.balance(t, m)))
		})
	}
}

func TestIntegration_WithdrawalRejections(t *testing.T) {
	app := newTestApp(t)
	admin := app.adminToken(t)
	m := app.register(t, "shop_poor")
	app.fund(t, m, "100")
	flat := app.createFee(t, admin, "flat", "50")

	tests := []struct {
		name   string
		amount string
		feeID  string
		status int
		code   string
	}{
		{"over balance", "101", flat, http.StatusPaymentRequired, "BAL_001"},
		{"fee consumes amount", "50", flat, http.StatusBadRequest, "VAL_001"},
		{"unknown fee", "10", "6f1c1d7e-2a3b-4c5d-8e9f-0a1b2c3d4e5f", http.StatusNotFound, "NF_001"},
		{"malformed fee id", "10", "nope", http.StatusBadRequest, "VAL_001"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := app.requestWithdrawal(t, m, tt.amount, tt.feeID)
			assert.Equal(t, tt.status, resp.StatusCode)
			assert.Equal(t, tt.code, decode[any](t, resp).ErrorCode)
		})
	}
	assert.True(t, decimal.NewFromInt(100).Equal(app.balance(t, m)))
}

func TestIntegration_AdminFeedsRecordActivity(t *testing.T) {
	app := newTestApp(t)
	admin := app.adminToken(t)
	m := app.register(t, "shop_feed")
	app.fund(t, m, "50")
	fee := app.createFee(t, admin, "flat", "1")

	resp := app.requestWithdrawal(t, m, "10", fee)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = app.bearer(t, admin, http.MethodGet, "/api/v1/admin/notifications", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	notes := decode[struct {
		Items []struct {
			Type string `json:"type"`
		} `json:"items"`
	}](t, resp).Data
	var types []string
	for _, n := range notes.Items {
		types = append(types, n.Type)
	}
	assert.ElementsMatch(t, []string{"DEPOSIT_SUCCESS", "WITHDRAWAL_REQUESTED"}, types)

	// Audit entries are written after the response.
	require.Eventually(t, func() bool {
		resp := app.bearer(t, admin, http.MethodGet, "/api/v1/admin/audit-logs?action=WITHDRAWAL_REQUEST", nil)
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return false
		}
		return decode[struct {
			Total int64 `json:"total"`
		}](t, resp).Data.Total == 1
	}, 3*time.Second, 50*time.Millisecond)
}

func TestIntegration_ConcurrentWithdrawalsNeverOverdraw(t *testing.T) {
	app := newTestApp(t)
	admin := app.adminToken(t)
	m := app.register(t, "shop_race")
	app.fund(t, m, "100")
	fee := app.createFee(t, admin, "flat", "0")

	const requests = 15
	var created, short atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < requests; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resp := app.requestWithdrawal(t, m, "10", fee)
			defer resp.Body.Close()
			switch resp.StatusCode {
			case http.StatusCreated:
				created.Add(1)
			case http.StatusPaymentRequired:
				short.Add(1)
			default:
				t.Errorf("unexpected status %d", resp.StatusCode)
			}
		}()
	}
	wg.Wait()

	assert.EqualValues(t, 10, created.Load())
	assert.EqualValues(t, 5, short.Load())
	assert.True(t, app.balance(t, m).IsZero())
}

func TestIntegration_ConcurrentResolveOnce(t *testing.T) {
	app := newTestApp(t)
	admin := app.adminToken(t)
	m := app.register(t, "shop_resolve")
	app.fund(t, m, "100")
	fee := app.createFee(t, admin, "flat", "2")

	resp := app.requestWithdrawal(t, m, "40", fee)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	w := decode[withdrawalView](t, resp).Data

	var ok, conflict atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resp := app.bearer(t, admin, http.MethodPatch, "/api/v1/admin/withdrawals/"+w.ID+"?action=reject", nil)
			defer resp.Body.Close()
			switch resp.StatusCode {
			case http.StatusOK:
				ok.Add(1)
			case http.StatusConflict:
				conflict.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.EqualValues(t, 1, ok.Load())
	assert.EqualValues(t, 9, conflict.Load())
	assert.True(t, decimal.NewFromInt(100).Equal(app.balance(t, m)))
}

// A deposit raced by merchant confirmations and the monitor's own timer is
// credited exactly once.
func TestIntegration_ConcurrentConfirmCreditsOnce(t *testing.T) {
	app := newTestApp(t)
	m := app.register(t, "shop_once")

	d := app.initiateDeposit(t, m, "50", "once")
	app.oracle.markPaid(d.WalletAddress)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resp := app.signed(t, m, http.MethodPost, "/api/v1/deposits/confirm", map[string]string{"wallet_address": d.WalletAddress})
			defer resp.Body.Close()
			if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusConflict {
				t.Errorf("unexpected status %d", resp.StatusCode)
			}
		}()
	}
	app.clock.Advance(confirmDelay)
	wg.Wait()

	app.eventuallyDepositStatus(t, m, d.TransactionID, "success")
	assert.True(t, decimal.NewFromInt(50).Equal(app.balance(t, m)))

	require.Eventually(t, func() bool { return len(app.hooks.received()) >= 1 }, 3*time.Second, 10*time.Millisecond)
	time.Sleep(50 * time.Millisecond)
	assert.Len(t, app.hooks.received(), 1)
}
