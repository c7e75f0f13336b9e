package integration

import (
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type summaryView struct {
	Total          int64 `json:"total"`
	Unread         int64 `json:"unread"`
	ActionRequired int64 `json:"action_required"`
}

func (a *testApp) notificationSummary(t *testing.T, admin string) summaryView {
	t.Helper()
	resp := a.bearer(t, admin, http.MethodGet, "/api/v1/admin/notifications/summary", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	return decode[summaryView](t, resp).Data
}

func TestIntegration_MerchantCancelsWithdrawal(t *testing.T) {
	app := newTestApp(t)
	admin := app.adminToken(t)
	m := app.register(t, "shop_cancel")
	app.fund(t, m, "500")
	fee := app.createFee(t, admin, "flat", "1")

	resp := app.requestWithdrawal(t, m, "100", fee)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	w := decode[withdrawalView](t, resp).Data
	assert.True(t, decimal.NewFromInt(400).Equal(app.balance(t, m)))

	resp = app.bearer(t, m.Token, http.MethodPost, "/api/v1/withdrawals/"+w.ID+"/cancel", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "cancelled", decode[withdrawalView](t, resp).Data.Status)
	assert.True(t, decimal.NewFromInt(500).Equal(app.balance(t, m)))

	resp = app.bearer(t, admin, http.MethodPatch, "/api/v1/admin/withdrawals/"+w.ID+"?action=approve", nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "STATE_002", decode[any](t, resp).ErrorCode)

	other := app.register(t, "shop_other")
	resp = app.bearer(t, other.Token, http.MethodPost, "/api/v1/withdrawals/"+w.ID+"/cancel", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestIntegration_AdminNotificationInbox(t *testing.T) {
	app := newTestApp(t)
	admin := app.adminToken(t)
	m := app.register(t, "shop_inbox")
	app.fund(t, m, "50")
	fee := app.createFee(t, admin, "flat", "1")

	resp := app.requestWithdrawal(t, m, "10", fee)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	sum := app.notificationSummary(t, admin)
	assert.EqualValues(t, 2, sum.Total)
	assert.EqualValues(t, 2, sum.Unread)
	assert.EqualValues(t, 1, sum.ActionRequired)

	resp = app.bearer(t, admin, http.MethodGet, "/api/v1/admin/notifications?type=WITHDRAWAL_REQUESTED&unread=true", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	inbox := decode[struct {
		Items []struct {
			ID     string `json:"id"`
			IsRead bool   `json:"is_read"`
		} `json:"items"`
	}](t, resp).Data.Items
	require.Len(t, inbox, 1)
	assert.False(t, inbox[0].IsRead)

	resp = app.bearer(t, admin, http.MethodPatch, "/api/v1/admin/notifications/"+inbox[0].ID+"/read", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	sum = app.notificationSummary(t, admin)
	assert.EqualValues(t, 1, sum.Unread)
	assert.Zero(t, sum.ActionRequired)

	resp = app.bearer(t, admin, http.MethodPatch, "/api/v1/admin/notifications/"+inbox[0].ID+"/read", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode, "marking twice is harmless")
	resp.Body.Close()
}

func TestIntegration_AdminBlocksAndApprovesMerchant(t *testing.T) {
	app := newTestApp(t)
	admin := app.adminToken(t)
	m := app.register(t, "shop_blocked")
	app.fund(t, m, "300")
	fee := app.createFee(t, admin, "flat", "1")

	resp := app.bearer(t, admin, http.MethodPatch, "/api/v1/admin/merchants/"+m.ID+"/block", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "SUSPENDED", decode[struct {
		Status string `json:"status"`
	}](t, resp).Data.Status)

	resp = app.bearer(t, admin, http.MethodPatch, "/api/v1/admin/merchants/"+m.ID+"/block", nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()

	// Every credential path is closed while suspended.
	resp = app.signed(t, m, http.MethodGet, "/api/v1/deposits/any", nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "AUTH_004", decode[any](t, resp).ErrorCode)
	resp = app.requestWithdrawal(t, m, "10", fee)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "AUTH_004", decode[any](t, resp).ErrorCode)
	resp = app.post(t, "/api/v1/auth/login", map[string]string{"username": "shop_blocked", "password": testPassword})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	resp = app.bearer(t, admin, http.MethodGet, "/api/v1/admin/merchants?status=SUSPENDED", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 1, decode[struct {
		Total int64 `json:"total"`
	}](t, resp).Data.Total)

	resp = app.bearer(t, admin, http.MethodPatch, "/api/v1/admin/merchants/"+m.ID+"/approve", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
	resp = app.requestWithdrawal(t, m, "10", fee)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = app.bearer(t, admin, http.MethodGet, "/api/v1/admin/stats/merchants/"+m.ID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	st := decode[struct {
		LifetimeEarnings decimal.Decimal `json:"lifetime_earnings"`
		CurrentBalance   decimal.Decimal `json:"current_balance"`
	}](t, resp).Data
	assert.True(t, decimal.NewFromInt(300).Equal(st.LifetimeEarnings))
	assert.True(t, decimal.NewFromInt(290).Equal(st.CurrentBalance))

	resp = app.bearer(t, admin, http.MethodGet, "/api/v1/admin/merchants/"+m.ID+"/transactions", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 1, decode[struct {
		Total int64 `json:"total"`
	}](t, resp).Data.Total)
}
