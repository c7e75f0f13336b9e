package service

import (
	"context"
	"sync"
	"time"

	"cryptopay-gateway/internal/core/domain"
	"cryptopay-gateway/internal/core/ports"
	"cryptopay-gateway/pkg/apperror"
	"cryptopay-gateway/pkg/logger"

	"github.com/rs/zerolog"
)

const auditWriteTimeout = 5 * time.Second

// AuditService writes audit entries in the background. Every entry is also
// logged, so a nil repository still leaves a trail in the logs.
type AuditService struct {
	repo ports.AuditRepository
	log  zerolog.Logger
	wg   sync.WaitGroup
}

func NewAuditService(repo ports.AuditRepository, log zerolog.Logger) *AuditService {
	return &AuditService{repo: repo, log: logger.Component(log, "audit")}
}

// Log records an audit entry asynchronously (fire-and-forget).
func (s *AuditService) Log(ctx context.Context, entry *domain.AuditLog) {
	ev := s.log.Info().
		Str("action", string(entry.Action)).
		Str("resource_type", entry.ResourceType).
		Str("resource_id", entry.ResourceID).
		Str("ip", entry.IPAddress)
	if entry.MerchantID != nil {
		ev = ev.Str("merchant_id", entry.MerchantID.String())
	}
	ev.Msg("audit")

	if s.repo == nil {
		return
	}
	ctx = context.WithoutCancel(ctx)
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ctx, cancel := context.WithTimeout(ctx, auditWriteTimeout)
		defer cancel()
		if err := s.repo.Create(ctx, entry); err != nil {
			s.log.Warn().Err(err).Str("action", string(entry.Action)).Msg("failed to persist audit log")
		}
	}()
}

// List returns stored audit entries for the admin console.
func (s *AuditService) List(ctx context.Context, params ports.AuditListParams) ([]domain.AuditLog, int64, error) {
	if s.repo == nil {
		return nil, 0, nil
	}
	out, total, err := s.repo.List(ctx, params)
	if err != nil {
		return nil, 0, apperror.ErrDatabaseError(err)
	}
	return out, total, nil
}

// Wait blocks until pending writes have finished.
func (s *AuditService) Wait() {
	s.wg.Wait()
}
