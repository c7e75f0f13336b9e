package blockchain

import (
	"context"
	"errors"
	"math/rand/v2"
	"sync"

	"cryptopay-gateway/internal/core/domain"
	"cryptopay-gateway/pkg/logger"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// ErrSimulatedOutage is returned by the simulator on a drawn API error.
var ErrSimulatedOutage = errors.New("simulated oracle outage")

// Simulator is a randomised confirmation oracle for local runs and demos.
// Each check first draws an error with errorRate, then a detection with
// successRate.
type Simulator struct {
	successRate float64
	errorRate   float64

	mu  sync.Mutex
	rnd *rand.Rand
	log zerolog.Logger
}

// NewSimulator creates a simulator. seed makes draws reproducible.
func NewSimulator(successRate, errorRate float64, seed uint64, log zerolog.Logger) *Simulator {
	return &Simulator{
		successRate: successRate,
		errorRate:   errorRate,
		rnd:         rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		log:         logger.Component(log, "oracle_simulator"),
	}
}

func (s *Simulator) CheckPayment(ctx context.Context, wallet string, amount decimal.Decimal, currency domain.Currency) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	s.mu.Lock()
	errDraw, okDraw := s.rnd.Float64(), s.rnd.Float64()
	s.mu.Unlock()

	if errDraw < s.errorRate {
		s.log.Debug().Str("wallet", wallet).Msg("simulated oracle error")
		return false, ErrSimulatedOutage
	}
	found := okDraw < s.successRate
	s.log.Debug().
		Str("wallet", wallet).
		Str("amount", amount.String()).
		Str("currency", string(currency)).
		Bool("found", found).
		Msg("simulated payment check")
	return found, nil
}
