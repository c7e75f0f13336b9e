package memory

import (
	"context"
	"fmt"
	"time"

	"cryptopay-gateway/internal/core/domain"
	"cryptopay-gateway/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// MerchantRepo implements ports.MerchantRepository.
type MerchantRepo struct {
	s *Store
}

func NewMerchantRepo(s *Store) *MerchantRepo {
	return &MerchantRepo{s: s}
}

func (r *MerchantRepo) Create(ctx context.Context, m *domain.Merchant) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, existing := range r.s.merchants {
		if existing.Username == m.Username {
			return fmt.Errorf("insert merchant: username %q already exists", m.Username)
		}
		if existing.AccessKey == m.AccessKey {
			return fmt.Errorf("insert merchant: duplicate access key")
		}
	}
	if _, ok := r.s.merchants[m.ID]; ok {
		return fmt.Errorf("insert merchant: duplicate id %s", m.ID)
	}
	cp := *m
	r.s.merchants[m.ID] = &cp
	return nil
}

func (r *MerchantRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Merchant, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.find(func(m *domain.Merchant) bool { return m.ID == id }), nil
}

func (r *MerchantRepo) GetByAccessKey(ctx context.Context, accessKey string) (*domain.Merchant, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.find(func(m *domain.Merchant) bool { return m.AccessKey == accessKey }), nil
}

func (r *MerchantRepo) GetByUsername(ctx context.Context, username string) (*domain.Merchant, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.find(func(m *domain.Merchant) bool { return m.Username == username }), nil
}

func (r *MerchantRepo) find(match func(*domain.Merchant) bool) *domain.Merchant {
	for _, m := range r.s.merchants {
		if match(m) {
			cp := *m
			return &cp
		}
	}
	return nil
}

// AdjustBalance checks and applies the delta under the store lock, mirroring
// the guarded UPDATE of the postgres adapter.
func (r *MerchantRepo) AdjustBalance(ctx context.Context, tx pgx.Tx, merchantID uuid.UUID, delta decimal.Decimal) (decimal.Decimal, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	m, ok := r.s.merchants[merchantID]
	if !ok {
		return decimal.Zero, fmt.Errorf("adjust balance: merchant %s not found", merchantID)
	}
	next := m.TotalAmt.Add(delta)
	if next.IsNegative() {
		return decimal.Zero, domain.ErrInsufficientBalance
	}

	prevAmt, prevUpdated := m.TotalAmt, m.UpdatedAt
	m.TotalAmt = next
	m.UpdatedAt = time.Now().UTC()
	r.s.record(tx, func() {
		m.TotalAmt = prevAmt
		m.UpdatedAt = prevUpdated
	})
	return next, nil
}

func (r *MerchantRepo) UpdateWebhookURL(ctx context.Context, merchantID uuid.UUID, webhookURL *string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	m, ok := r.s.merchants[merchantID]
	if !ok {
		return false, nil
	}
	if webhookURL != nil {
		u := *webhookURL
		webhookURL = &u
	}
	m.WebhookURL = webhookURL
	m.UpdatedAt = time.Now().UTC()
	return true, nil
}

func (r *MerchantRepo) UpdateKeys(ctx context.Context, merchantID uuid.UUID, accessKey, secretKeyEnc string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	m, ok := r.s.merchants[merchantID]
	if !ok {
		return false, nil
	}
	for id, other := range r.s.merchants {
		if id != merchantID && other.AccessKey == accessKey {
			return false, fmt.Errorf("update keys: duplicate access key")
		}
	}
	m.AccessKey = accessKey
	m.SecretKeyEnc = secretKeyEnc
	m.UpdatedAt = time.Now().UTC()
	return true, nil
}

func (r *MerchantRepo) UpdateStatus(ctx context.Context, merchantID uuid.UUID, status domain.MerchantStatus) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	m, ok := r.s.merchants[merchantID]
	if !ok || m.IsAdmin() || m.Status == status {
		return false, nil
	}
	m.Status = status
	m.UpdatedAt = time.Now().UTC()
	return true, nil
}

func (r *MerchantRepo) List(ctx context.Context, params ports.MerchantListParams) ([]domain.Merchant, int64, error) {
	r.s.mu.Lock()
	var out []domain.Merchant
	for _, m := range r.s.merchants {
		if m.IsAdmin() {
			continue
		}
		if params.Status != nil && m.Status != *params.Status {
			continue
		}
		out = append(out, *m)
	}
	r.s.mu.Unlock()

	page, total := paginate(out, func(a, b domain.Merchant) bool { return a.CreatedAt.After(b.CreatedAt) }, params.Page, params.PageSize)
	return page, total, nil
}

func (r *MerchantRepo) Totals(ctx context.Context) (*domain.MerchantTotals, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := &domain.MerchantTotals{Balance: decimal.Zero}
	for _, m := range r.s.merchants {
		if m.IsAdmin() {
			continue
		}
		out.Count++
		out.Balance = out.Balance.Add(m.TotalAmt)
	}
	return out, nil
}
