package payout

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/masterbruh1993/mining-trade-finance-sub001/internal/config"
	"github.com/masterbruh1993/mining-trade-finance-sub001/internal/domain"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func NewMock(t *testing.T) (*Service, *MockEngine) {
	cfg := &config.Config{PayoutSweepInterval: time.Minute}
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	engine := NewMockEngine(ctrl)
	service := New(cfg, engine)
	return service, engine
}

func TestService_Start(t *testing.T) {
	service, _ := NewMock(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go service.Start(ctx)
	time.Sleep(20 * time.Millisecond)
	cancel()
}

func TestService_sweep(t *testing.T) {
	now := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		mockFindDue   func(ctx context.Context, now time.Time, limit uint32) ([]domain.Contract, error)
		mockAddTask   func(ctx context.Context, task Task) error
		contractCount int
		advanceCount  int
	}{
		{
			name: "advances every due contract",
			mockFindDue: func(ctx context.Context, now time.Time, limit uint32) ([]domain.Contract, error) {
				return []domain.Contract{
					{ID: 1, UserID: 1, Status: domain.ContractActive},
					{ID: 2, UserID: 2, Status: domain.ContractActive},
				}, nil
			},
			mockAddTask: func(ctx context.Context, task Task) error {
				return task()
			},
			contractCount: 2,
			advanceCount:  2,
		},
		{
			name: "fetch failure skips the sweep",
			mockFindDue: func(ctx context.Context, now time.Time, limit uint32) ([]domain.Contract, error) {
				return nil, fmt.Errorf("failed to fetch due contracts")
			},
			contractCount: 0,
			advanceCount:  0,
		},
		{
			name: "worker pool rejection releases the in-flight slot",
			mockFindDue: func(ctx context.Context, now time.Time, limit uint32) ([]domain.Contract, error) {
				return []domain.Contract{
					{ID: 3, UserID: 1, Status: domain.ContractActive},
				}, nil
			},
			mockAddTask: func(ctx context.Context, task Task) error {
				return errors.New("failed to add task to worker pool")
			},
			contractCount: 1,
			advanceCount:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			engine := NewMockEngine(ctrl)
			workerPool := NewMockWorkerPoolI(ctrl)

			engine.EXPECT().
				FindDue(gomock.Any(), now, uint32(1000)).
				DoAndReturn(tt.mockFindDue).
				Times(1)
			if tt.contractCount > 0 {
				workerPool.EXPECT().
					AddTask(gomock.Any(), gomock.Any()).
					DoAndReturn(tt.mockAddTask).
					Times(tt.contractCount)
			}
			if tt.advanceCount > 0 {
				engine.EXPECT().
					Advance(gomock.Any(), gomock.Any(), now).
					Return(1, nil).
					Times(tt.advanceCount)
			}

			service := &Service{
				engine:     engine,
				workerPool: workerPool,
				limit:      1000,
			}

			logger := zap.NewExample()
			zap.ReplaceGlobals(logger)

			service.sweep(context.Background(), now)

			_, stillInflight := inflightContracts.Load(3)
			assert.False(t, stillInflight)
		})
	}
}

func TestService_sweepSkipsInflightContract(t *testing.T) {
	now := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	engine := NewMockEngine(ctrl)
	workerPool := NewMockWorkerPoolI(ctrl)

	inflightContracts.Store(42, struct{}{})
	defer inflightContracts.Delete(42)

	engine.EXPECT().
		FindDue(gomock.Any(), now, uint32(1000)).
		Return([]domain.Contract{{ID: 42, UserID: 1, Status: domain.ContractActive}}, nil).
		Times(1)

	service := &Service{
		engine:     engine,
		workerPool: workerPool,
		limit:      1000,
	}

	service.sweep(context.Background(), now)
}

func TestService_advance(t *testing.T) {
	now := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)
	contract := domain.Contract{ID: 42, UserID: 1, Status: domain.ContractActive}

	tests := []struct {
		name        string
		credited    int
		advanceErr  error
		expectError bool
	}{
		{
			name:     "boundaries credited",
			credited: 2,
		},
		{
			name:     "nothing due yet",
			credited: 0,
		},
		{
			name:        "advance failure surfaces",
			advanceErr:  errors.New("database error"),
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, engine := NewMock(t)

			engine.EXPECT().
				Advance(gomock.Any(), gomock.Any(), now).
				Return(tt.credited, tt.advanceErr).
				Times(1)

			err := service.advance(context.Background(), contract, now)

			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
