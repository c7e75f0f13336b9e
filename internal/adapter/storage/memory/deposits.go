package memory

import (
	"context"
	"fmt"
	"time"

	"cryptopay-gateway/internal/core/domain"
	"cryptopay-gateway/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// TransactionRepo implements ports.TransactionRepository.
type TransactionRepo struct {
	s *Store
}

func NewTransactionRepo(s *Store) *TransactionRepo {
	return &TransactionRepo{s: s}
}

// Create enforces the same uniqueness as the SQL schema: transaction id,
// and (merchant, reference) when a reference is given.
func (r *TransactionRepo) Create(ctx context.Context, t *domain.Transaction) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.deposits[t.TransactionID]; ok {
		return fmt.Errorf("insert deposit: duplicate transaction_id %s", t.TransactionID)
	}
	if t.ReferenceID != nil {
		for _, d := range r.s.deposits {
			if d.MerchantID == t.MerchantID && d.ReferenceID != nil && *d.ReferenceID == *t.ReferenceID {
				return fmt.Errorf("insert deposit: duplicate reference_id %s", *t.ReferenceID)
			}
		}
	}
	cp := *t
	r.s.deposits[t.TransactionID] = &cp
	return nil
}

func (r *TransactionRepo) GetByTransactionID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if d, ok := r.s.deposits[transactionID]; ok {
		cp := *d
		return &cp, nil
	}
	return nil, nil
}

func (r *TransactionRepo) GetByWalletAddress(ctx context.Context, merchantID uuid.UUID, walletAddress string) (*domain.Transaction, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var latest *domain.Transaction
	for _, d := range r.s.deposits {
		if d.MerchantID != merchantID || d.WalletAddress != walletAddress {
			continue
		}
		if latest == nil || d.CreatedAt.After(latest.CreatedAt) {
			latest = d
		}
	}
	if latest == nil {
		return nil, nil
	}
	cp := *latest
	return &cp, nil
}

func (r *TransactionRepo) GetByReference(ctx context.Context, merchantID uuid.UUID, referenceID string) (*domain.Transaction, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, d := range r.s.deposits {
		if d.MerchantID == merchantID && d.ReferenceID != nil && *d.ReferenceID == referenceID {
			cp := *d
			return &cp, nil
		}
	}
	return nil, nil
}

// Transition is the compare-and-set on status. The guard is evaluated and
// the write applied under one lock acquisition.
func (r *TransactionRepo) Transition(ctx context.Context, tx pgx.Tx, t domain.StatusTransition) (*domain.Transaction, error) {
	if len(domain.TransitionSources(t.To)) == 0 {
		return nil, domain.ErrInvalidTransition
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	d, ok := r.s.deposits[t.TransactionID]
	if !ok {
		return nil, nil
	}
	prev := *d
	if err := d.Transition(t.To, t.At, t.Reason); err != nil {
		return nil, nil
	}
	r.s.record(tx, func() { *d = prev })

	cp := *d
	return &cp, nil
}

func (r *TransactionRepo) ListNonTerminal(ctx context.Context) ([]domain.Transaction, error) {
	out := r.collect(func(d *domain.Transaction) bool { return !d.IsTerminal() })
	sortBy(out, func(a, b domain.Transaction) bool { return a.CreatedAt.Before(b.CreatedAt) })
	return out, nil
}

func (r *TransactionRepo) ListOverdue(ctx context.Context, now time.Time) ([]domain.Transaction, error) {
	out := r.collect(func(d *domain.Transaction) bool { return !d.IsTerminal() && d.IsExpired(now) })
	sortBy(out, func(a, b domain.Transaction) bool { return a.ExpiresAt.Before(b.ExpiresAt) })
	return out, nil
}

func (r *TransactionRepo) List(ctx context.Context, params ports.TransactionListParams) ([]domain.Transaction, int64, error) {
	out := r.collect(func(d *domain.Transaction) bool {
		if d.MerchantID != params.MerchantID {
			return false
		}
		if params.Status != nil && d.Status != *params.Status {
			return false
		}
		return params.Currency == nil || d.Currency == *params.Currency
	})
	page, total := paginate(out, func(a, b domain.Transaction) bool { return a.CreatedAt.After(b.CreatedAt) }, params.Page, params.PageSize)
	return page, total, nil
}

func (r *TransactionRepo) Stats(ctx context.Context, merchantID *uuid.UUID, now time.Time) (*domain.DepositStats, error) {
	rows := r.collect(func(d *domain.Transaction) bool { return merchantID == nil || d.MerchantID == *merchantID })

	out := &domain.DepositStats{}
	for i := range rows {
		d := &rows[i]
		out.Total.Add(d.Amount)
		switch st := d.EffectiveStatus(now); {
		case st == domain.TransactionStatusSuccess:
			out.Successful.Add(d.Amount)
		case st.IsTerminal():
			out.Failed.Add(d.Amount)
		default:
			out.Pending.Add(d.Amount)
		}
	}
	return out, nil
}

func (r *TransactionRepo) collect(match func(*domain.Transaction) bool) []domain.Transaction {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var out []domain.Transaction
	for _, d := range r.s.deposits {
		if match(d) {
			out = append(out, *d)
		}
	}
	return out
}
