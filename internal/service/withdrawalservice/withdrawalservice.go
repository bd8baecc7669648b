package withdrawalservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/masterbruh1993/mining-trade-finance-sub001/internal/domain"
	"github.com/masterbruh1993/mining-trade-finance-sub001/internal/pg"
	"github.com/masterbruh1993/mining-trade-finance-sub001/internal/service/encashmentservice"
	"github.com/masterbruh1993/mining-trade-finance-sub001/pkg/validate"
)

type WithdrawalRepo interface {
	Create(ctx context.Context, wr *domain.WithdrawalRequest) (*domain.WithdrawalRequest, error)
	GetByID(ctx context.Context, id int) (*domain.WithdrawalRequest, error)
	FindByUserID(ctx context.Context, userID int) ([]domain.WithdrawalRequest, error)
	FindByStatus(ctx context.Context, status domain.WithdrawalStatus) ([]domain.WithdrawalRequest, error)
	HasPendingOn(ctx context.Context, userID int, kind domain.WalletKind, day time.Time) (bool, error)
	MarkResolved(ctx context.Context, id int, status domain.WithdrawalStatus, adminID int, remarks string, processedAt time.Time) (bool, error)
}

type WalletRepo interface {
	GetWallet(ctx context.Context, userID int, kind domain.WalletKind) (*domain.Wallet, error)
	Debit(ctx context.Context, userID int, kind domain.WalletKind, amount float64) (*domain.Wallet, error)
	CreateTransaction(ctx context.Context, tx *domain.Transaction) (*domain.Transaction, error)
}

type ConfigRepo interface {
	GetConfig(ctx context.Context, kind domain.WalletKind) (*domain.EncashmentConfig, error)
}

type Notifier interface {
	WithdrawalResolved(ctx context.Context, wr *domain.WithdrawalRequest)
}

// ResolveAction is the admin decision on a pending request.
type ResolveAction string

const (
	ActionPaid   ResolveAction = "paid"
	ActionCancel ResolveAction = "cancel"
	ActionReject ResolveAction = "reject"
)

var (
	ErrWindowClosed        = errors.New("encashment window is closed")
	ErrBelowMinimum        = errors.New("amount is below the minimum withdrawal")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrDailyLimit          = errors.New("withdrawal already submitted today")
	ErrInvalidWalletKind   = errors.New("invalid wallet kind")
	ErrInvalidMethod       = errors.New("invalid payout method")
	ErrInvalidAccount      = errors.New("invalid account details")
	ErrNotFound            = errors.New("withdrawal request not found")
	ErrAlreadyResolved     = errors.New("withdrawal request already resolved")
	ErrInvalidAction       = errors.New("invalid resolve action")
)

// Limits holds the wallet-kind-specific minimums and the fee rate.
type Limits struct {
	MinCredit  float64
	MinPassive float64
	FeePct     float64
}

func (l Limits) minFor(kind domain.WalletKind) float64 {
	switch kind {
	case domain.CreditWallet:
		return l.MinCredit
	case domain.PassiveWallet:
		return l.MinPassive
	}
	return 0
}

type Service struct {
	withdrawalRepo WithdrawalRepo
	walletRepo     WalletRepo
	configRepo     ConfigRepo
	txManager      pg.TXManager
	notifier       Notifier
	limits         Limits
}

func New(withdrawalRepo WithdrawalRepo, walletRepo WalletRepo, configRepo ConfigRepo, txManager pg.TXManager, limits Limits) *Service {
	return &Service{
		withdrawalRepo: withdrawalRepo,
		walletRepo:     walletRepo,
		configRepo:     configRepo,
		txManager:      txManager,
		limits:         limits,
	}
}

func (s *Service) SetNotifier(n Notifier) {
	s.notifier = n
}

// Submit checks, in order: window policy, minimum, balance, daily limit. The
// wallet is not debited here; funds leave the ledger at resolution.
func (s *Service) Submit(ctx context.Context, userID int, kind domain.WalletKind, amount float64, method domain.PayoutMethod, accountDetails string, now time.Time) (*domain.WithdrawalRequest, error) {
	if !kind.Valid() {
		return nil, ErrInvalidWalletKind
	}
	if !method.Valid() {
		return nil, ErrInvalidMethod
	}
	if method == domain.MethodBankCard && !validate.IsLuhn(accountDetails) {
		return nil, ErrInvalidAccount
	}

	cfg, err := s.configRepo.GetConfig(ctx, kind)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, encashmentservice.ErrConfigNotFound
	}
	if allowed, reason := encashmentservice.Evaluate(cfg, now); !allowed {
		return nil, fmt.Errorf("%w: %s", ErrWindowClosed, reason)
	}

	if amount < s.limits.minFor(kind) {
		return nil, ErrBelowMinimum
	}

	wallet, err := s.walletRepo.GetWallet(ctx, userID, kind)
	if err != nil {
		return nil, err
	}
	if wallet == nil || wallet.Balance < amount {
		return nil, ErrInsufficientBalance
	}

	taken, err := s.withdrawalRepo.HasPendingOn(ctx, userID, kind, now)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrDailyLimit
	}

	fee := decimal.NewFromFloat(amount).
		Mul(decimal.NewFromFloat(s.limits.FeePct)).
		Div(decimal.NewFromInt(100)).
		Round(2)
	net := decimal.NewFromFloat(amount).Sub(fee)
	feeF, _ := fee.Float64()
	netF, _ := net.Float64()

	request := &domain.WithdrawalRequest{
		UserID:         userID,
		WalletKind:     kind,
		Amount:         amount,
		Fee:            feeF,
		NetAmount:      netF,
		Method:         method,
		AccountDetails: accountDetails,
		Status:         domain.WithdrawalPending,
		RequestedAt:    now,
	}
	created, err := s.withdrawalRepo.Create(ctx, request)
	if err != nil {
		// A concurrent submit can win the daily slot between the check and
		// the insert; the partial unique index turns that race into an error.
		zap.L().Error("failed to create withdrawal request", zap.Error(err))
		return nil, err
	}

	zap.L().Info("withdrawal submitted",
		zap.Int("userID", userID),
		zap.String("walletKind", string(kind)),
		zap.Float64("amount", amount),
	)
	return created, nil
}

// Resolve finalizes a pending request. Paying debits the wallet inside the
// same transaction, re-checking the balance; cancel and reject leave the
// ledger untouched and free the daily slot.
func (s *Service) Resolve(ctx context.Context, requestID int, action ResolveAction, adminID int, remarks string, now time.Time) (*domain.WithdrawalRequest, error) {
	request, err := s.withdrawalRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, ErrNotFound
	}

	var status domain.WithdrawalStatus
	switch action {
	case ActionPaid:
		status = domain.WithdrawalCompleted
	case ActionCancel:
		status = domain.WithdrawalCancelled
	case ActionReject:
		status = domain.WithdrawalRejected
	default:
		return nil, ErrInvalidAction
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		ok, err := s.withdrawalRepo.MarkResolved(ctx, requestID, status, adminID, remarks, now)
		if err != nil {
			return err
		}
		if !ok {
			return ErrAlreadyResolved
		}

		if action != ActionPaid {
			return nil
		}

		wallet, err := s.walletRepo.Debit(ctx, request.UserID, request.WalletKind, request.Amount)
		if err != nil {
			return err
		}
		if wallet == nil {
			return ErrInsufficientBalance
		}

		_, err = s.walletRepo.CreateTransaction(ctx, &domain.Transaction{
			UserID:      request.UserID,
			WalletKind:  request.WalletKind,
			Type:        domain.TxWithdrawal,
			Status:      domain.TxCompleted,
			Amount:      request.Amount,
			Reference:   uuid.NewString(),
			Description: fmt.Sprintf("withdrawal via %s", request.Method),
		})
		return err
	})
	if err != nil {
		if !errors.Is(err, ErrAlreadyResolved) && !errors.Is(err, ErrInsufficientBalance) {
			zap.L().Error("failed to resolve withdrawal", zap.Error(err))
		}
		return nil, err
	}

	request.Status = status
	request.Remarks = remarks
	request.ProcessedBy = &adminID
	request.ProcessedAt = &now

	if s.notifier != nil {
		s.notifier.WithdrawalResolved(ctx, request)
	}

	zap.L().Info("withdrawal resolved",
		zap.Int("requestID", requestID),
		zap.String("status", string(status)),
		zap.Int("adminID", adminID),
	)
	return request, nil
}

func (s *Service) GetWithdrawals(ctx context.Context, userID int) ([]domain.WithdrawalRequest, error) {
	requests, err := s.withdrawalRepo.FindByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to fetch withdrawals", zap.Error(err))
		return nil, err
	}
	return requests, nil
}

func (s *Service) ListByStatus(ctx context.Context, status domain.WithdrawalStatus) ([]domain.WithdrawalRequest, error) {
	requests, err := s.withdrawalRepo.FindByStatus(ctx, status)
	if err != nil {
		zap.L().Error("failed to list withdrawals", zap.Error(err))
		return nil, err
	}
	return requests, nil
}
