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

// WithdrawalRepo implements ports.WithdrawalRepository.
type WithdrawalRepo struct {
	s *Store
}

func NewWithdrawalRepo(s *Store) *WithdrawalRepo {
	return &WithdrawalRepo{s: s}
}

func (r *WithdrawalRepo) Create(ctx context.Context, tx pgx.Tx, w *domain.Withdrawal) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.withdrawals[w.ID]; ok {
		return fmt.Errorf("insert withdrawal: duplicate id %s", w.ID)
	}
	cp := *w
	r.s.withdrawals[w.ID] = &cp
	r.s.record(tx, func() { delete(r.s.withdrawals, w.ID) })
	return nil
}

func (r *WithdrawalRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Withdrawal, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if w, ok := r.s.withdrawals[id]; ok {
		cp := *w
		return &cp, nil
	}
	return nil, nil
}

// Resolve applies only while the withdrawal is still pending.
func (r *WithdrawalRepo) Resolve(ctx context.Context, tx pgx.Tx, id uuid.UUID, status domain.WithdrawalStatus, at time.Time) (*domain.Withdrawal, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	w, ok := r.s.withdrawals[id]
	if !ok || !w.IsPending() {
		return nil, nil
	}
	prev := *w
	w.Status = status
	w.ResolvedAt = &at
	w.UpdatedAt = at
	r.s.record(tx, func() { *w = prev })

	cp := *w
	return &cp, nil
}

func (r *WithdrawalRepo) List(ctx context.Context, params ports.WithdrawalListParams) ([]domain.Withdrawal, int64, error) {
	r.s.mu.Lock()
	var out []domain.Withdrawal
	for _, w := range r.s.withdrawals {
		if params.MerchantID != nil && w.MerchantID != *params.MerchantID {
			continue
		}
		if params.Status != nil && w.Status != *params.Status {
			continue
		}
		out = append(out, *w)
	}
	r.s.mu.Unlock()

	page, total := paginate(out, func(a, b domain.Withdrawal) bool { return a.CreatedAt.After(b.CreatedAt) }, params.Page, params.PageSize)
	return page, total, nil
}

func (r *WithdrawalRepo) Stats(ctx context.Context, merchantID *uuid.UUID) (*domain.WithdrawalStats, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := &domain.WithdrawalStats{}
	for _, w := range r.s.withdrawals {
		if merchantID != nil && w.MerchantID != *merchantID {
			continue
		}
		out.Total.Add(w.Amount)
		switch w.Status {
		case domain.WithdrawalStatusApproved:
			out.Approved.Add(w.Amount)
		case domain.WithdrawalStatusRejected:
			out.Rejected.Add(w.Amount)
		case domain.WithdrawalStatusCancelled:
			out.Cancelled.Add(w.Amount)
		case domain.WithdrawalStatusPending:
			out.Pending.Add(w.Amount)
		}
	}
	return out, nil
}
