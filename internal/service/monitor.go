package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"cryptopay-gateway/internal/core/domain"
	"cryptopay-gateway/internal/core/ports"
	"cryptopay-gateway/pkg/logger"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
)

// Monitor phases reported by Status.
const (
	PhaseAwaitingConfirmation = "awaiting_confirmation"
	PhaseChecking             = "checking"
	PhaseAwaitingExpiry       = "awaiting_expiry"
	PhaseExpiring             = "expiring"
)

// settleTimeout bounds a settlement started by a timer. Settlements run on a
// context detached from shutdown so a decided outcome is still persisted.
const settleTimeout = 30 * time.Second

// MonitorOptions configures deposit timers.
type MonitorOptions struct {
	ConfirmDelay  time.Duration
	SweepInterval time.Duration
	OracleTimeout time.Duration
}

// Monitor implements ports.TransactionMonitor. Its bookkeeping is only a
// schedule: every outcome goes through the Settler's conditional write, so
// the monitor may fire late, twice, or race a merchant call without harm.
type Monitor struct {
	txRepo  ports.TransactionRepository
	settler ports.Settler
	oracle  ports.ConfirmationOracle
	clock   clockwork.Clock
	opts    MonitorOptions
	log     zerolog.Logger

	ctx    context.Context
	cancel context.CancelFunc

	mu      sync.Mutex
	watches map[string]*watch
	closed  bool
	wg      sync.WaitGroup

	stopSweep chan struct{}
	sweepOnce sync.Once
}

type watch struct {
	startedAt time.Time
	expiresAt time.Time
	phase     string
	confirm   clockwork.Timer
	expiry    clockwork.Timer
}

func NewMonitor(
	txRepo ports.TransactionRepository,
	settler ports.Settler,
	oracle ports.ConfirmationOracle,
	clock clockwork.Clock,
	opts MonitorOptions,
	log zerolog.Logger,
) *Monitor {
	ctx, cancel := context.WithCancel(context.Background())
	return &Monitor{
		txRepo:    txRepo,
		settler:   settler,
		oracle:    oracle,
		clock:     clock,
		opts:      opts,
		log:       logger.Component(log, "monitor"),
		ctx:       ctx,
		cancel:    cancel,
		watches:   make(map[string]*watch),
		stopSweep: make(chan struct{}),
	}
}

// Start re-arms timers for every non-terminal deposit and starts the
// periodic sweep.
func (m *Monitor) Start(ctx context.Context) error {
	if _, err := m.Recover(ctx); err != nil {
		return err
	}

	if !m.enter() {
		return nil
	}
	ticker := m.clock.NewTicker(m.opts.SweepInterval)
	go func() {
		defer m.wg.Done()
		defer ticker.Stop()
		for {
			select {
			case <-ticker.Chan():
				if _, err := m.Sweep(m.ctx); err != nil {
					m.log.Error().Err(err).Msg("sweep failed")
				}
			case <-m.stopSweep:
				return
			}
		}
	}()
	return nil
}

// Stop cancels all timers and waits for in-flight handlers.
func (m *Monitor) Stop() {
	m.sweepOnce.Do(func() { close(m.stopSweep) })

	m.mu.Lock()
	m.closed = true
	for id, w := range m.watches {
		w.stopTimers()
		delete(m.watches, id)
	}
	m.mu.Unlock()

	m.cancel()
	m.wg.Wait()
}

// Recover schedules every non-terminal deposit in the ledger. Deposits that
// expired while the process was down are failed right away.
func (m *Monitor) Recover(ctx context.Context) (int, error) {
	pending, err := m.txRepo.ListNonTerminal(ctx)
	if err != nil {
		return 0, err
	}
	for i := range pending {
		m.Schedule(&pending[i])
	}
	m.log.Info().Int("count", len(pending)).Msg("monitor recovered deposits")
	return len(pending), nil
}

// Sweep forces every overdue non-terminal deposit to failed. It is the
// backstop for lost timers.
func (m *Monitor) Sweep(ctx context.Context) (int, error) {
	overdue, err := m.txRepo.ListOverdue(ctx, m.clock.Now())
	if err != nil {
		return 0, err
	}
	for _, tx := range overdue {
		m.expire(tx.TransactionID)
	}
	if len(overdue) > 0 {
		m.log.Info().Int("count", len(overdue)).Msg("sweep expired overdue deposits")
	}
	return len(overdue), nil
}

// Schedule arms the confirmation check and the expiry timer relative to the
// time the deposit has left. When less than the confirmation delay remains,
// as after a restart late in the window, the oracle is asked right away.
// Scheduling an already tracked deposit is a no-op.
func (m *Monitor) Schedule(tx *domain.Transaction) {
	if tx == nil || tx.IsTerminal() {
		return
	}
	id := tx.TransactionID
	now := m.clock.Now()
	remaining := tx.ExpiresAt.Sub(now)

	if remaining <= 0 {
		m.spawn(func() { m.expire(id) })
		return
	}

	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return
	}
	if _, ok := m.watches[id]; ok {
		m.mu.Unlock()
		return
	}

	w := &watch{startedAt: tx.CreatedAt, expiresAt: tx.ExpiresAt, phase: PhaseChecking}
	if w.startedAt.IsZero() || w.startedAt.After(now) {
		w.startedAt = now
	}
	checkNow := m.opts.ConfirmDelay >= remaining
	if !checkNow {
		w.phase = PhaseAwaitingConfirmation
		w.confirm = m.clock.AfterFunc(m.opts.ConfirmDelay, m.guarded(func() { m.onConfirmTimer(id) }))
	}
	w.expiry = m.clock.AfterFunc(remaining, m.guarded(func() { m.onExpiryTimer(id) }))
	m.watches[id] = w
	m.mu.Unlock()

	m.log.Debug().Str("tx_id", id).Dur("remaining", remaining).Bool("check_now", checkNow).Msg("deposit scheduled")
	if checkNow && !m.spawn(func() { m.check(id) }) {
		m.leaveChecking(id)
	}
}

// Expedite runs the confirmation check now unless one is already running.
func (m *Monitor) Expedite(transactionID string) {
	m.mu.Lock()
	w, ok := m.watches[transactionID]
	if !ok || w.phase == PhaseChecking || w.phase == PhaseExpiring {
		m.mu.Unlock()
		return
	}
	if w.confirm != nil {
		w.confirm.Stop()
		w.confirm = nil
	}
	w.phase = PhaseChecking
	m.mu.Unlock()

	if !m.spawn(func() { m.check(transactionID) }) {
		m.leaveChecking(transactionID)
	}
}

// Status reports the in-memory view of a deposit.
func (m *Monitor) Status(transactionID string) ports.MonitorSnapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	snap := ports.MonitorSnapshot{TransactionID: transactionID}
	w, ok := m.watches[transactionID]
	if !ok {
		return snap
	}
	now := m.clock.Now()
	snap.Active = true
	snap.Phase = w.phase
	snap.StartedAt = w.startedAt
	snap.Elapsed = now.Sub(w.startedAt)
	if rem := w.expiresAt.Sub(now); rem > 0 {
		snap.Remaining = rem
	}
	return snap
}

// Active returns the ids of tracked deposits, sorted.
func (m *Monitor) Active() []string {
	m.mu.Lock()
	ids := make([]string, 0, len(m.watches))
	for id := range m.watches {
		ids = append(ids, id)
	}
	m.mu.Unlock()
	sort.Strings(ids)
	return ids
}

func (m *Monitor) onConfirmTimer(id string) {
	m.mu.Lock()
	w, ok := m.watches[id]
	if !ok || w.phase == PhaseChecking || w.phase == PhaseExpiring {
		m.mu.Unlock()
		return
	}
	w.confirm = nil
	w.phase = PhaseChecking
	m.mu.Unlock()

	m.check(id)
}

func (m *Monitor) onExpiryTimer(id string) {
	m.mu.Lock()
	w, ok := m.watches[id]
	if !ok {
		m.mu.Unlock()
		return
	}
	if w.confirm != nil {
		w.confirm.Stop()
		w.confirm = nil
	}
	w.phase = PhaseExpiring
	m.mu.Unlock()

	m.expire(id)
}

// check asks the oracle once and settles on a definite answer.
func (m *Monitor) check(id string) {
	log := m.log.With().Str("tx_id", id).Logger()

	tx, err := m.txRepo.GetByTransactionID(m.ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("load deposit for check")
		m.leaveChecking(id)
		return
	}
	if tx == nil || tx.IsTerminal() {
		m.forget(id)
		return
	}
	if tx.IsExpired(m.clock.Now()) {
		m.expire(id)
		return
	}

	octx, cancel := context.WithTimeout(m.ctx, m.opts.OracleTimeout)
	found, err := m.oracle.CheckPayment(octx, tx.WalletAddress, tx.Amount, tx.Currency)
	cancel()

	if err != nil {
		if m.ctx.Err() != nil {
			// Shutting down; recovery re-checks after restart.
			return
		}
		log.Warn().Err(err).Msg("oracle check failed")
		m.settle(id, func(ctx context.Context) (*domain.Transaction, bool, error) {
			return m.settler.Fail(ctx, id, domain.TransactionStatusAPIFailed, domain.FailureReasonOracle+err.Error())
		})
		return
	}
	if !found {
		log.Debug().Msg("payment not detected, waiting for expiry")
		m.leaveChecking(id)
		return
	}

	m.settle(id, func(ctx context.Context) (*domain.Transaction, bool, error) {
		return m.settler.Confirm(ctx, id)
	})
}

func (m *Monitor) expire(id string) {
	m.settle(id, func(ctx context.Context) (*domain.Transaction, bool, error) {
		return m.settler.Fail(ctx, id, domain.TransactionStatusFailed, domain.FailureReasonExpired)
	})
}

// settle runs a settler call and updates the schedule from its outcome.
func (m *Monitor) settle(id string, fn func(ctx context.Context) (*domain.Transaction, bool, error)) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(m.ctx), settleTimeout)
	defer cancel()

	tx, applied, err := fn(ctx)
	if err != nil {
		// The expiry timer or the sweep retries.
		m.log.Error().Err(err).Str("tx_id", id).Msg("settlement failed")
		m.leaveChecking(id)
		return
	}
	if tx.IsTerminal() {
		m.log.Debug().Str("tx_id", id).Str("status", string(tx.Status)).Bool("applied", applied).Msg("deposit finished")
		m.forget(id)
		return
	}
	// A confirmation lost the expiry guard before the failure was written.
	if tx.IsExpired(m.clock.Now()) {
		m.expire(id)
		return
	}
	m.leaveChecking(id)
}

// leaveChecking moves a deposit whose check ended without an outcome back to
// waiting for expiry. A deposit the expiry timer already claimed stays
// expiring.
func (m *Monitor) leaveChecking(id string) {
	m.mu.Lock()
	if w, ok := m.watches[id]; ok && w.phase == PhaseChecking {
		w.phase = PhaseAwaitingExpiry
	}
	m.mu.Unlock()
}

func (m *Monitor) forget(id string) {
	m.mu.Lock()
	if w, ok := m.watches[id]; ok {
		w.stopTimers()
		delete(m.watches, id)
	}
	m.mu.Unlock()
}

// enter registers a handler with the wait group unless the monitor stopped.
func (m *Monitor) enter() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return false
	}
	m.wg.Add(1)
	return true
}

func (m *Monitor) guarded(fn func()) func() {
	return func() {
		if !m.enter() {
			return
		}
		defer m.wg.Done()
		fn()
	}
}

func (m *Monitor) spawn(fn func()) bool {
	if !m.enter() {
		return false
	}
	go func() {
		defer m.wg.Done()
		fn()
	}()
	return true
}

func (w *watch) stopTimers() {
	if w.confirm != nil {
		w.confirm.Stop()
	}
	if w.expiry != nil {
		w.expiry.Stop()
	}
}
