package adminservice

import (
	"context"
	"errors"
	"testing"

	"github.com/masterbruh1993/mining-trade-finance-sub001/internal/domain"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockUserRepo, *MockContractRepo, *MockWithdrawalRepo, *MockWalletRepo, *MockAuditRepo) {
	ctrl := gomock.NewController(t)
	userRepo := NewMockUserRepo(ctrl)
	contractRepo := NewMockContractRepo(ctrl)
	withdrawalRepo := NewMockWithdrawalRepo(ctrl)
	walletRepo := NewMockWalletRepo(ctrl)
	auditRepo := NewMockAuditRepo(ctrl)
	service := New(userRepo, contractRepo, withdrawalRepo, walletRepo, auditRepo)
	defer ctrl.Finish()
	return service, userRepo, contractRepo, withdrawalRepo, walletRepo, auditRepo
}

func TestGetSummary(t *testing.T) {
	service, userRepo, contractRepo, withdrawalRepo, walletRepo, _ := NewMock(t)

	t.Run("Aggregates the platform snapshot", func(t *testing.T) {
		userRepo.EXPECT().Count(gomock.Any()).Return(150, nil)
		contractRepo.EXPECT().PlatformStats(gomock.Any()).Return(40, 980000.0, 12, nil)
		withdrawalRepo.EXPECT().CountByStatus(gomock.Any(), domain.WithdrawalPending).Return(7, nil)
		walletRepo.EXPECT().SumAllTransactions(gomock.Any(), domain.TxPayout, domain.TxCompleted).Return(310500.25, nil)

		summary, err := service.GetSummary(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, &Summary{
			Users:              150,
			ActiveContracts:    40,
			PrincipalInForce:   980000,
			CompletedContracts: 12,
			PendingWithdrawals: 7,
			TotalPaidOut:       310500.25,
		}, summary)
	})

	t.Run("User count failure", func(t *testing.T) {
		userRepo.EXPECT().Count(gomock.Any()).Return(0, errors.New("db error"))

		_, err := service.GetSummary(context.Background())
		assert.Error(t, err)
	})

	t.Run("Stats failure", func(t *testing.T) {
		userRepo.EXPECT().Count(gomock.Any()).Return(150, nil)
		contractRepo.EXPECT().PlatformStats(gomock.Any()).Return(0, 0.0, 0, errors.New("db error"))

		_, err := service.GetSummary(context.Background())
		assert.Error(t, err)
	})
}

func TestGetAuditLog(t *testing.T) {
	service, _, _, _, _, auditRepo := NewMock(t)

	tests := []struct {
		name          string
		limit         uint32
		expectedLimit uint32
	}{
		{"Zero limit defaults", 0, 100},
		{"Oversized limit clamps", 1000, 100},
		{"In-range limit passes through", 50, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auditRepo.EXPECT().ListAudit(gomock.Any(), tt.expectedLimit).Return([]domain.AuditEntry{{ID: 1}}, nil)

			entries, err := service.GetAuditLog(context.Background(), tt.limit)
			assert.NoError(t, err)
			assert.Len(t, entries, 1)
		})
	}
}
