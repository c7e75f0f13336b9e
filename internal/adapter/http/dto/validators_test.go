package dto

import (
	"testing"
	"time"

	"cryptopay-gateway/internal/core/domain"
	"cryptopay-gateway/internal/core/ports"

	"github.com/gin-gonic/gin/binding"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- SanitizeStruct tests ---

func TestSanitizeStruct_TrimsWhitespace(t *testing.T) {
	req := RegisterRequest{
		Username:     "  alice  ",
		Password:     "  pass1234  ",
		MerchantName: " My Shop ",
	}
	SanitizeStruct(&req)

	assert.Equal(t, "alice", req.Username)
	assert.Equal(t, "My Shop", req.MerchantName)
	// Passwords are compared byte for byte.
	assert.Equal(t, "  pass1234  ", req.Password)
}

func TestSanitizeStruct_EscapesHTML(t *testing.T) {
	req := RegisterRequest{MerchantName: "shop <script>alert('x')</script>"}
	SanitizeStruct(&req)

	assert.Contains(t, req.MerchantName, "&lt;script&gt;")
	assert.NotContains(t, req.MerchantName, "<script>")
}

func TestSanitizeStruct_HandlesPointerString(t *testing.T) {
	ref := "  order-42  "
	req := InitiateDepositRequest{Currency: " USDT-TRC20 ", ReferenceID: &ref}
	SanitizeStruct(&req)

	assert.Equal(t, "USDT-TRC20", req.Currency)
	assert.Equal(t, "order-42", *req.ReferenceID)
}

func TestSanitizeStruct_NilPointerIsNoOp(t *testing.T) {
	req := RegisterRequest{Username: "carol", WebhookURL: nil}
	SanitizeStruct(&req)
	assert.Nil(t, req.WebhookURL)
}

func TestSanitizeStruct_NonPointerIsNoOp(t *testing.T) {
	s := "hello"
	SanitizeStruct(s) // should not panic
}

// Trimming runs before validation, so padded ids pass the safe_id rule.
func TestTrimStruct_ThenValidate(t *testing.T) {
	ref := " order-42 "
	req := InitiateDepositRequest{Amount: decimal.NewFromInt(5), Currency: " USDT-TRC20 ", ReferenceID: &ref}
	require.Error(t, binding.Validator.ValidateStruct(&req))

	TrimStruct(&req)
	require.NoError(t, binding.Validator.ValidateStruct(&req))
	assert.Equal(t, "order-42", *req.ReferenceID)

	name := RegisterRequest{MerchantName: "A & B"}
	TrimStruct(&name)
	assert.Equal(t, "A & B", name.MerchantName, "escaping is left to SanitizeStruct")
}

// --- Custom Validator tests ---

func TestSafeIDPattern(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"ref-001", true},
		{"REF_002", true},
		{"a.b.c", true},
		{"TQ5f9b1f7d4c3a2b1e0f9a8b7c6d5e4f3a2b", true},
		{"0x52908400098527886E0F7030069857D2E4169EE7", true},
		{"ref 001", false},
		{"ref<001>", false},
		{"ref;DROP", false},
		{"", false},
		{"ref\n001", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, safeIDPattern.MatchString(tt.in), "%q", tt.in)
	}
}

func TestBindingRules(t *testing.T) {
	badURL := "javascript:alert(1)"
	goodURL := "https://shop.example.com/hook"
	badRef := "order 1"

	tests := []struct {
		name  string
		req   any
		valid bool
	}{
		{"register ok", &RegisterRequest{Username: "shop_1", Password: "longenough", MerchantName: "Shop", WebhookURL: &goodURL}, true},
		{"register bad url", &RegisterRequest{Username: "shop_1", Password: "longenough", MerchantName: "Shop", WebhookURL: &badURL}, false},
		{"register short password", &RegisterRequest{Username: "shop_1", Password: "short", MerchantName: "Shop"}, false},
		{"deposit ok", &InitiateDepositRequest{Amount: decimal.NewFromInt(5), Currency: "USDT-TRC20"}, true},
		{"deposit erc20", &InitiateDepositRequest{Amount: decimal.NewFromInt(5), Currency: "USDT-ERC20"}, true},
		{"deposit unknown rail", &InitiateDepositRequest{Amount: decimal.NewFromInt(5), Currency: "DOGE"}, false},
		{"deposit rail case sensitive", &InitiateDepositRequest{Amount: decimal.NewFromInt(5), Currency: "usdt-trc20"}, false},
		{"deposit bad reference", &InitiateDepositRequest{Currency: "USDT-TRC20", ReferenceID: &badRef}, false},
		{"confirm missing wallet", &ConfirmDepositRequest{}, false},
		{"withdrawal bad fee id", &WithdrawalRequest{FeeSettingID: "not-a-uuid"}, false},
		{"withdrawal ok", &WithdrawalRequest{FeeSettingID: uuid.NewString()}, true},
		{"fee unknown type", &FeeSettingRequest{Name: "x", FeeType: "tiered"}, false},
		{"fee ok", &FeeSettingRequest{Name: "x", FeeType: "flat"}, true},
		{"webhook clear", &UpdateWebhookRequest{WebhookURL: ""}, true},
		{"webhook relative", &UpdateWebhookRequest{WebhookURL: "/hooks"}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := binding.Validator.ValidateStruct(tc.req)
			if tc.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

// --- Mapping tests ---

func TestNewDepositStatusResponse(t *testing.T) {
	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	tx := &domain.Transaction{
		TransactionID: "dep_1",
		Amount:        decimal.RequireFromString("12.50"),
		Currency:      domain.CurrencyUSDTERC20,
		WalletAddress: "0xabc",
		Status:        domain.TransactionStatusInitiated,
		ExpiresAt:     created.Add(10 * time.Minute),
		CreatedAt:     created,
	}

	resp := NewDepositStatusResponse(&ports.DepositStatus{
		Transaction: tx,
		Status:      domain.TransactionStatusFailed,
		Monitor:     ports.MonitorSnapshot{Active: true, Phase: "awaiting_expiry", StartedAt: created, Elapsed: 90 * time.Second, Remaining: 510 * time.Second},
	})

	assert.Equal(t, "failed", resp.Status)
	assert.Equal(t, "ETHEREUM", resp.Network)
	assert.Equal(t, 12, resp.Confirmations)
	assert.Equal(t, "2026-03-01T12:10:00Z", resp.ExpiresAt)
	require.NotNil(t, resp.Monitor.StartedAt)
	assert.EqualValues(t, 90, resp.Monitor.ElapsedSeconds)
	assert.EqualValues(t, 510, resp.Monitor.RemainingSeconds)
}
