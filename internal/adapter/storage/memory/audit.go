package memory

import (
	"context"

	"cryptopay-gateway/internal/core/domain"
	"cryptopay-gateway/internal/core/ports"
)

// AuditRepo implements ports.AuditRepository.
type AuditRepo struct {
	s *Store
}

func NewAuditRepo(s *Store) *AuditRepo {
	return &AuditRepo{s: s}
}

func (r *AuditRepo) Create(ctx context.Context, entry *domain.AuditLog) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *entry
	r.s.audits = append(r.s.audits, &cp)
	return nil
}

func (r *AuditRepo) List(ctx context.Context, params ports.AuditListParams) ([]domain.AuditLog, int64, error) {
	r.s.mu.Lock()
	var out []domain.AuditLog
	for _, e := range r.s.audits {
		if params.MerchantID != nil && (e.MerchantID == nil || *e.MerchantID != *params.MerchantID) {
			continue
		}
		if params.Action != nil && e.Action != *params.Action {
			continue
		}
		out = append(out, *e)
	}
	r.s.mu.Unlock()

	page, total := paginate(out, func(a, b domain.AuditLog) bool { return a.CreatedAt.After(b.CreatedAt) }, params.Page, params.PageSize)
	return page, total, nil
}
