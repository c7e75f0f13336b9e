package integration

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"cryptopay-gateway/internal/adapter/blockchain"
	httpHandler "cryptopay-gateway/internal/adapter/http/handler"
	"cryptopay-gateway/internal/adapter/storage/memory"
	redisStorage "cryptopay-gateway/internal/adapter/storage/redis"
	"cryptopay-gateway/internal/core/domain"
	"cryptopay-gateway/internal/core/ports"
	"cryptopay-gateway/internal/service"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// testApp wires the full gateway: real HTTP layer, middleware, services and
// monitor on the in-memory ledger and miniredis. Deposit timers run on a fake
// clock; the oracle is scripted per wallet.

const (
	testAESKey    = "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef"
	adminUsername = "operator"
	adminPassword = "OperatorPass123!"
	testPassword  = "StrongPass123!"

	confirmDelay = 45 * time.Second
	expiryWindow = 10 * time.Minute
)

type testApp struct {
	server   *httptest.Server
	clock    *clockwork.FakeClock
	oracle   *scriptedOracle
	monitor  *service.Monitor
	hooks    *webhookSink
	deposits *memory.TransactionRepo
}

type merchantCreds struct {
	ID        string
	AccessKey string
	SecretKey string
	Token     string
}

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	ctx := context.Background()
	log := zerolog.Nop()

	mr := miniredis.RunT(t)
	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})

	store := memory.NewStore()
	merchants := memory.NewMerchantRepo(store)
	deposits := memory.NewTransactionRepo(store)
	notifications := memory.NewNotificationRepo(store)
	fees := memory.NewFeeSettingRepo(store)
	withdrawals := memory.NewWithdrawalRepo(store)

	encSvc, err := service.NewAESEncryptionService(testAESKey)
	require.NoError(t, err)
	sigSvc := service.NewHMACSignatureService()
	hashSvc := service.NewArgon2HashServiceWithParams(service.Argon2Params{Time: 1, Memory: 1024, Threads: 1, KeyLen: 32, SaltLen: 16})
	tokenSvc := service.NewJWTTokenService("test-jwt-secret-key-32bytes!!", 24*time.Hour, "test-issuer")

	clock := clockwork.NewFakeClockAt(time.Now())
	oracle := newScriptedOracle()
	hooks := newWebhookSink(t)

	dispatcher := service.NewWebhookDispatcher(encSvc, sigSvc, &http.Client{Timeout: 5 * time.Second}, 0, log)
	notifier := service.NewNotificationService(notifications, dispatcher, log)
	settler := service.NewSettlementService(merchants, deposits, store, notifier, clock, log)
	monitor := service.NewMonitor(deposits, settler, oracle, clock, service.MonitorOptions{
		ConfirmDelay:  confirmDelay,
		SweepInterval: 2 * time.Minute,
		OracleTimeout: 5 * time.Second,
	}, log)

	authSvc := service.NewAuthService(merchants, hashSvc, encSvc, tokenSvc, log)
	require.NoError(t, authSvc.EnsureAdmin(ctx, adminUsername, adminPassword))
	auditSvc := service.NewAuditService(memory.NewAuditRepo(store), log)

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		AuthSvc: authSvc,
		DepositSvc: service.NewDepositService(
			deposits, redisStorage.NewDepositRefCache(rdb, time.Hour), blockchain.NewLocalWallets(),
			encSvc, monitor, clock, expiryWindow, log,
		),
		WithdrawalSvc:  service.NewWithdrawalService(merchants, withdrawals, fees, store, notifier, clock, log),
		FeeSvc:         service.NewFeeService(fees),
		ReportingSvc:   service.NewReportingService(merchants, deposits, notifications),
		AdminSvc:       service.NewAdminService(merchants, deposits, withdrawals, notifications, clock, log),
		Monitor:        monitor,
		MerchantSvc:    service.NewMerchantService(merchants, encSvc, log),
		MerchantRepo:   merchants,
		EncSvc:         encSvc,
		SigSvc:         sigSvc,
		NonceStore:     redisStorage.NewNonceStore(rdb),
		TokenSvc:       tokenSvc,
		RateLimiter:    redisStorage.NewRateLimitStore(rdb),
		HealthCheckers: []ports.HealthChecker{store, redisStorage.NewHealthCheck(rdb)},
		AuditSvc:       auditSvc,
		Logger:         log,
	})

	require.NoError(t, monitor.Start(ctx))
	server := httptest.NewServer(router)

	t.Cleanup(func() {
		server.Close()
		monitor.Stop()
		auditSvc.Wait()
		_ = dispatcher.Shutdown(context.Background())
		_ = rdb.Close()
	})

	return &testApp{server: server, clock: clock, oracle: oracle, monitor: monitor, hooks: hooks, deposits: deposits}
}

// --- scripted collaborators ---

type scriptedOracle struct {
	mu    sync.Mutex
	paid  map[string]bool
	err   error
	calls int
}

func newScriptedOracle() *scriptedOracle {
	return &scriptedOracle{paid: make(map[string]bool)}
}

func (o *scriptedOracle) CheckPayment(_ context.Context, wallet string, _ decimal.Decimal, _ domain.Currency) (bool, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.calls++
	if o.err != nil {
		return false, o.err
	}
	return o.paid[wallet], nil
}

func (o *scriptedOracle) markPaid(wallet string) {
	o.mu.Lock()
	o.paid[wallet] = true
	o.mu.Unlock()
}

func (o *scriptedOracle) failWith(err error) {
	o.mu.Lock()
	o.err = err
	o.mu.Unlock()
}

// webhookSink records every webhook envelope posted to it.
type webhookSink struct {
	server *httptest.Server
	mu     sync.Mutex
	events []service.WebhookEnvelope
	sigs   []string
}

func newWebhookSink(t *testing.T) *webhookSink {
	t.Helper()
	s := &webhookSink{}
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var env service.WebhookEnvelope
		if err := json.NewDecoder(r.Body).Decode(&env); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		s.mu.Lock()
		s.events = append(s.events, env)
		s.sigs = append(s.sigs, r.Header.Get("X-Signature"))
		s.mu.Unlock()
		w.WriteHeader(http.StatusNoContent)
	}))
	t.Cleanup(s.server.Close)
	return s
}

func (s *webhookSink) received() []service.WebhookEnvelope {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]service.WebhookEnvelope(nil), s.events...)
}

// --- HTTP helpers ---

type envelope[T any] struct {
	Data      T      `json:"data"`
	ErrorCode string `json:"error_code"`
	RequestID string `json:"request_id"`
}

func decode[T any](t *testing.T, resp *http.Response) envelope[T] {
	t.Helper()
	defer resp.Body.Close()
	var out envelope[T]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func encode(t *testing.T, body any) []byte {
	t.Helper()
	if body == nil {
		return nil
	}
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	return raw
}

func (a *testApp) do(t *testing.T, req *http.Request) *http.Response {
	t.Helper()
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func (a *testApp) post(t *testing.T, path string, body any) *http.Response {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost, a.server.URL+path, bytes.NewReader(encode(t, body)))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	return a.do(t, req)
}

// bearer sends a dashboard request authenticated with a JWT.
func (a *testApp) bearer(t *testing.T, token, method, path string, body any) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, a.server.URL+path, bytes.NewReader(encode(t, body)))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	return a.do(t, req)
}

// signed sends a merchant API request with a fresh nonce.
func (a *testApp) signed(t *testing.T, m merchantCreds, method, path string, body any) *http.Response {
	t.Helper()
	return a.do(t, a.signedRequest(t, m, method, path, body, uuid.NewString()))
}

// signedRequest builds a request carrying HMAC headers computed over
// METHOD|PATH|TIMESTAMP|NONCE|BODY.
func (a *testApp) signedRequest(t *testing.T, m merchantCreds, method, path string, body any, nonce string) *http.Request {
	t.Helper()
	raw := encode(t, body)
	ts := strconv.FormatInt(time.Now().Unix(), 10)

	urlPath := path
	if i := strings.IndexByte(path, '?'); i >= 0 {
		urlPath = path[:i]
	}
	mac := hmac.New(sha256.New, []byte(m.SecretKey))
	mac.Write([]byte(strings.Join([]string{method, urlPath, ts, nonce, string(raw)}, "|")))

	req, err := http.NewRequest(method, a.server.URL+path, bytes.NewReader(raw))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Merchant-Access-Key", m.AccessKey)
	req.Header.Set("X-Timestamp", ts)
	req.Header.Set("X-Nonce", nonce)
	req.Header.Set("X-Signature", hex.EncodeToString(mac.Sum(nil)))
	return req
}

func (a *testApp) login(t *testing.T, username, password string) string {
	t.Helper()
	resp := a.post(t, "/api/v1/auth/login", map[string]string{"username": username, "password": password})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	return decode[struct {
		Token string `json:"token"`
	}](t, resp).Data.Token
}

func (a *testApp) adminToken(t *testing.T) string {
	t.Helper()
	return a.login(t, adminUsername, adminPassword)
}

// register creates a merchant whose webhooks go to the app's sink.
func (a *testApp) register(t *testing.T, username string) merchantCreds {
	t.Helper()
	resp := a.post(t, "/api/v1/auth/register", map[string]string{
		"username":      username,
		"password":      testPassword,
		"merchant_name": "Shop " + username,
		"webhook_url":   a.hooks.server.URL + "/hooks",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	reg := decode[struct {
		MerchantID string `json:"merchant_id"`
		AccessKey  string `json:"access_key"`
		SecretKey  string `json:"secret_key"`
	}](t, resp).Data

	return merchantCreds{
		ID:        reg.MerchantID,
		AccessKey: reg.AccessKey,
		SecretKey: reg.SecretKey,
		Token:     a.login(t, username, testPassword),
	}
}

type depositView struct {
	TransactionID string          `json:"transaction_id"`
	WalletAddress string          `json:"wallet_address"`
	Amount        decimal.Decimal `json:"amount"`
	Status        string          `json:"status"`
	FailureReason *string         `json:"failure_reason"`
	Monitor       struct {
		Active           bool   `json:"active"`
		Phase            string `json:"phase"`
		RemainingSeconds int64  `json:"remaining_seconds"`
	} `json:"monitor"`
}

func (a *testApp) initiateDeposit(t *testing.T, m merchantCreds, amount, ref string) depositView {
	t.Helper()
	resp := a.signed(t, m, http.MethodPost, "/api/v1/deposits", map[string]string{
		"amount":       amount,
		"currency":     string(domain.CurrencyUSDTTRC20),
		"reference_id": ref,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	return decode[depositView](t, resp).Data
}

func (a *testApp) depositStatus(t *testing.T, m merchantCreds, transactionID string) depositView {
	t.Helper()
	resp := a.signed(t, m, http.MethodGet, "/api/v1/deposits/"+transactionID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	return decode[depositView](t, resp).Data
}

// eventuallyDepositStatus polls the ledger, then checks the API agrees.
// Polling through HTTP would eat into the deposits rate limit.
func (a *testApp) eventuallyDepositStatus(t *testing.T, m merchantCreds, transactionID, want string) {
	t.Helper()
	require.Eventually(t, func() bool {
		tx, err := a.deposits.GetByTransactionID(context.Background(), transactionID)
		return err == nil && tx != nil && string(tx.Status) == want
	}, 3*time.Second, 10*time.Millisecond, "deposit %s never reached %s", transactionID, want)
	require.Equal(t, want, a.depositStatus(t, m, transactionID).Status)
}

func (a *testApp) balance(t *testing.T, m merchantCreds) decimal.Decimal {
	t.Helper()
	resp := a.bearer(t, m.Token, http.MethodGet, "/api/v1/merchants/me/balance", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	return decode[struct {
		Balance decimal.Decimal `json:"balance"`
	}](t, resp).Data.Balance
}

// fund credits a merchant through a paid, merchant-confirmed deposit.
func (a *testApp) fund(t *testing.T, m merchantCreds, amount string) {
	t.Helper()
	d := a.initiateDeposit(t, m, amount, "fund-"+uuid.NewString()[:8])
	a.oracle.markPaid(d.WalletAddress)
	resp := a.signed(t, m, http.MethodPost, "/api/v1/deposits/confirm", map[string]string{"wallet_address": d.WalletAddress})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
	a.eventuallyDepositStatus(t, m, d.TransactionID, "success")
}

func (a *testApp) createFee(t *testing.T, adminToken, feeType, value string) string {
	t.Helper()
	resp := a.bearer(t, adminToken, http.MethodPost, "/api/v1/admin/fees", map[string]string{
		"name":     fmt.Sprintf("%s %s", feeType, value),
		"fee_type": feeType,
		"value":    value,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	return decode[struct {
		ID string `json:"id"`
	}](t, resp).Data.ID
}
