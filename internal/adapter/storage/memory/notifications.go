package memory

import (
	"context"

	"cryptopay-gateway/internal/core/domain"
	"cryptopay-gateway/internal/core/ports"

	"github.com/google/uuid"
)

// NotificationRepo implements ports.NotificationRepository.
type NotificationRepo struct {
	s *Store
}

func NewNotificationRepo(s *Store) *NotificationRepo {
	return &NotificationRepo{s: s}
}

func (r *NotificationRepo) Create(ctx context.Context, n *domain.Notification) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *n
	r.s.notifications = append(r.s.notifications, &cp)
	return nil
}

func (r *NotificationRepo) List(ctx context.Context, params ports.NotificationListParams) ([]domain.Notification, int64, error) {
	r.s.mu.Lock()
	var out []domain.Notification
	for _, n := range r.s.notifications {
		if params.Type != nil && n.Type != *params.Type {
			continue
		}
		if params.UnreadOnly && n.IsRead {
			continue
		}
		out = append(out, *n)
	}
	r.s.mu.Unlock()

	page, total := paginate(out, func(a, b domain.Notification) bool { return a.CreatedAt.After(b.CreatedAt) }, params.Page, params.PageSize)
	return page, total, nil
}

func (r *NotificationRepo) MarkRead(ctx context.Context, id uuid.UUID) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, n := range r.s.notifications {
		if n.ID == id {
			n.IsRead = true
			return true, nil
		}
	}
	return false, nil
}

func (r *NotificationRepo) Summary(ctx context.Context) (*domain.NotificationSummary, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := &domain.NotificationSummary{}
	for _, n := range r.s.notifications {
		out.Total++
		if !n.IsRead {
			out.Unread++
			if n.Type.RequiresAction() {
				out.ActionRequired++
			}
		}
		if n.Type.IsDeposit() {
			out.Deposits++
		} else {
			out.Withdrawals++
		}
		if out.LastAt == nil || n.CreatedAt.After(*out.LastAt) {
			at := n.CreatedAt
			out.LastAt = &at
		}
	}
	return out, nil
}
