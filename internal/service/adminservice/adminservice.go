package adminservice

import (
	"context"

	"go.uber.org/zap"

	"github.com/masterbruh1993/mining-trade-finance-sub001/internal/domain"
)

type UserRepo interface {
	Count(ctx context.Context) (int, error)
}

type ContractRepo interface {
	PlatformStats(ctx context.Context) (int, float64, int, error)
}

type WithdrawalRepo interface {
	CountByStatus(ctx context.Context, status domain.WithdrawalStatus) (int, error)
}

type WalletRepo interface {
	SumAllTransactions(ctx context.Context, txType domain.TransactionType, status domain.TransactionStatus) (float64, error)
}

type AuditRepo interface {
	ListAudit(ctx context.Context, limit uint32) ([]domain.AuditEntry, error)
}

// Summary is the read-side platform snapshot for the admin dashboard.
type Summary struct {
	Users              int
	ActiveContracts    int
	PrincipalInForce   float64
	CompletedContracts int
	PendingWithdrawals int
	TotalPaidOut       float64
}

type Service struct {
	userRepo       UserRepo
	contractRepo   ContractRepo
	withdrawalRepo WithdrawalRepo
	walletRepo     WalletRepo
	auditRepo      AuditRepo
}

func New(userRepo UserRepo, contractRepo ContractRepo, withdrawalRepo WithdrawalRepo, walletRepo WalletRepo, auditRepo AuditRepo) *Service {
	return &Service{
		userRepo:       userRepo,
		contractRepo:   contractRepo,
		withdrawalRepo: withdrawalRepo,
		walletRepo:     walletRepo,
		auditRepo:      auditRepo,
	}
}

func (s *Service) GetSummary(ctx context.Context) (*Summary, error) {
	users, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	active, principal, completed, err := s.contractRepo.PlatformStats(ctx)
	if err != nil {
		return nil, err
	}
	pending, err := s.withdrawalRepo.CountByStatus(ctx, domain.WithdrawalPending)
	if err != nil {
		return nil, err
	}
	paidOut, err := s.walletRepo.SumAllTransactions(ctx, domain.TxPayout, domain.TxCompleted)
	if err != nil {
		return nil, err
	}

	return &Summary{
		Users:              users,
		ActiveContracts:    active,
		PrincipalInForce:   principal,
		CompletedContracts: completed,
		PendingWithdrawals: pending,
		TotalPaidOut:       paidOut,
	}, nil
}

func (s *Service) GetAuditLog(ctx context.Context, limit uint32) ([]domain.AuditEntry, error) {
	if limit == 0 || limit > 500 {
		limit = 100
	}
	entries, err := s.auditRepo.ListAudit(ctx, limit)
	if err != nil {
		zap.L().Error("failed to fetch audit log", zap.Error(err))
		return nil, err
	}
	return entries, nil
}
