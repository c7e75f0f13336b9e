package memory

import (
	"context"
	"fmt"

	"cryptopay-gateway/internal/core/domain"

	"github.com/google/uuid"
)

// FeeSettingRepo implements ports.FeeSettingRepository.
type FeeSettingRepo struct {
	s *Store
}

func NewFeeSettingRepo(s *Store) *FeeSettingRepo {
	return &FeeSettingRepo{s: s}
}

func (r *FeeSettingRepo) Create(ctx context.Context, f *domain.FeeSetting) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.fees[f.ID]; ok {
		return fmt.Errorf("insert fee setting: duplicate id %s", f.ID)
	}
	cp := *f
	r.s.fees[f.ID] = &cp
	return nil
}

func (r *FeeSettingRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.FeeSetting, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if f, ok := r.s.fees[id]; ok {
		cp := *f
		return &cp, nil
	}
	return nil, nil
}

func (r *FeeSettingRepo) List(ctx context.Context) ([]domain.FeeSetting, error) {
	r.s.mu.Lock()
	out := make([]domain.FeeSetting, 0, len(r.s.fees))
	for _, f := range r.s.fees {
		out = append(out, *f)
	}
	r.s.mu.Unlock()

	sortBy(out, func(a, b domain.FeeSetting) bool { return a.CreatedAt.Before(b.CreatedAt) })
	return out, nil
}
