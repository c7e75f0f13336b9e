// Package blockchain adapts the external payment-detection and wallet
// services behind ports.ConfirmationOracle and ports.WalletGenerator.
package blockchain

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"cryptopay-gateway/internal/core/domain"
	"cryptopay-gateway/pkg/logger"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// HTTPClient is satisfied by *http.Client.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

const maxResponseBytes = 64 << 10

// Client talks to the blockchain API. It implements both the confirmation
// oracle and the wallet generator.
type Client struct {
	baseURL  string
	apiKey   string
	http     HTTPClient
	fallback *LocalWallets
	log      zerolog.Logger
}

// NewClient creates a blockchain API client. Wallet generation falls back to
// LocalWallets when the API cannot provide one.
func NewClient(baseURL, apiKey string, timeout time.Duration, log zerolog.Logger) *Client {
	return NewClientWithHTTP(baseURL, apiKey, &http.Client{Timeout: timeout}, log)
}

func NewClientWithHTTP(baseURL, apiKey string, httpClient HTTPClient, log zerolog.Logger) *Client {
	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		apiKey:   apiKey,
		http:     httpClient,
		fallback: NewLocalWallets(),
		log:      logger.Component(log, "blockchain_client"),
	}
}

type checkResponse struct {
	Found *bool `json:"found"`
}

// CheckPayment asks whether amount of currency has reached wallet.
// Transport failures and non-2xx answers are errors. A 2xx body without a
// boolean "found" field is treated as not found.
func (c *Client) CheckPayment(ctx context.Context, wallet string, amount decimal.Decimal, currency domain.Currency) (bool, error) {
	q := url.Values{}
	q.Set("wallet", wallet)
	q.Set("amount", amount.String())
	q.Set("currency", string(currency))

	body, err := c.get(ctx, "/check?"+q.Encode())
	if err != nil {
		return false, fmt.Errorf("oracle check: %w", err)
	}

	var resp checkResponse
	if err := json.Unmarshal(body, &resp); err != nil || resp.Found == nil {
		c.log.Warn().Str("wallet", wallet).Msg("unrecognised oracle response, treating as not found")
		return false, nil
	}
	return *resp.Found, nil
}

type walletResponse struct {
	Address    string `json:"address"`
	PrivateKey string `json:"privateKey"`
}

// GenerateWallet requests a fresh deposit address from the API.
func (c *Client) GenerateWallet(ctx context.Context, currency domain.Currency) (*domain.DepositWallet, error) {
	if !currency.IsValid() {
		return nil, fmt.Errorf("unsupported currency %q", currency)
	}

	body, err := c.get(ctx, "/wallet?type="+url.QueryEscape(string(currency)))
	if err == nil {
		var resp walletResponse
		if jerr := json.Unmarshal(body, &resp); jerr == nil && resp.Address != "" && resp.PrivateKey != "" {
			return &domain.DepositWallet{Address: resp.Address, Secret: resp.PrivateKey}, nil
		}
		err = fmt.Errorf("malformed wallet response")
	}

	c.log.Warn().Err(err).Str("currency", string(currency)).Msg("wallet API unavailable, generating locally")
	return c.fallback.GenerateWallet(ctx, currency)
}

func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return body, nil
}
