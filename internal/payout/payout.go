package payout

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/masterbruh1993/mining-trade-finance-sub001/internal/config"
	"github.com/masterbruh1993/mining-trade-finance-sub001/internal/domain"
)

// Engine is the contract-advance surface the sweeper drives.
type Engine interface {
	FindDue(ctx context.Context, now time.Time, limit uint32) ([]domain.Contract, error)
	Advance(ctx context.Context, c *domain.Contract, now time.Time) (int, error)
}

var inflightContracts sync.Map

// Service periodically advances every contract with an elapsed cadence
// boundary. The advance itself is idempotent per boundary, so the in-flight
// guard only avoids wasted work when a sweep overlaps the previous one.
type Service struct {
	engine        Engine
	limit         uint32
	workerPool    WorkerPoolI
	sweepInterval time.Duration
}

func New(cfg *config.Config, engine Engine) *Service {
	return &Service{
		engine:        engine,
		limit:         1000,
		workerPool:    NewWorkerPool(10),
		sweepInterval: cfg.PayoutSweepInterval,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Payout sweeper started")
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping payout sweeper")
			return
		case <-ticker.C:
			s.sweep(ctx, time.Now())
		}
	}
}

func (s *Service) sweep(ctx context.Context, now time.Time) {
	contracts, err := s.engine.FindDue(ctx, now, s.limit)
	if err != nil {
		zap.L().Error("Failed to fetch due contracts", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, contract := range contracts {
		contract := contract

		if _, loaded := inflightContracts.LoadOrStore(contract.ID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer inflightContracts.Delete(contract.ID)
				return s.advance(ctx, contract, now)
			})
			if err != nil {
				inflightContracts.Delete(contract.ID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error advancing contracts", zap.Error(err))
	}
}

func (s *Service) advance(ctx context.Context, contract domain.Contract, now time.Time) error {
	credited, err := s.engine.Advance(ctx, &contract, now)
	if err != nil {
		zap.L().Error("Failed to advance contract",
			zap.Int("contractID", contract.ID),
			zap.Error(err),
		)
		return err
	}
	if credited > 0 {
		zap.L().Info("Contract payouts credited",
			zap.Int("contractID", contract.ID),
			zap.Int("boundaries", credited),
			zap.String("status", string(contract.Status)),
		)
	}
	return nil
}
