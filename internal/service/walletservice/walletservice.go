package walletservice

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/masterbruh1993/mining-trade-finance-sub001/internal/domain"
	"github.com/masterbruh1993/mining-trade-finance-sub001/internal/pg"
	"go.uber.org/zap"
)

type WalletRepo interface {
	CreateWallets(ctx context.Context, userID int) error
	GetWallet(ctx context.Context, userID int, kind domain.WalletKind) (*domain.Wallet, error)
	GetWallets(ctx context.Context, userID int) ([]domain.Wallet, error)
	Credit(ctx context.Context, userID int, kind domain.WalletKind, amount float64) (*domain.Wallet, error)
	Debit(ctx context.Context, userID int, kind domain.WalletKind, amount float64) (*domain.Wallet, error)
	CreateTransaction(ctx context.Context, tx *domain.Transaction) (*domain.Transaction, error)
	GetTransactionByID(ctx context.Context, id int) (*domain.Transaction, error)
	GetTransactionsByUserID(ctx context.Context, userID int) ([]domain.Transaction, error)
	FindTransactions(ctx context.Context, userID int, txType domain.TransactionType) ([]domain.Transaction, error)
	UpdateTransactionStatus(ctx context.Context, id int, from, to domain.TransactionStatus) (bool, error)
	CountTransactions(ctx context.Context, userID int, txType domain.TransactionType, status domain.TransactionStatus) (int, error)
}

type UserRepo interface {
	FindByID(ctx context.Context, userID int) (*domain.User, error)
}

var (
	ErrInvalidAmount   = errors.New("invalid amount")
	ErrDepositNotFound = errors.New("deposit not found")
	ErrAlreadyResolved = errors.New("deposit already resolved")
)

type Service struct {
	walletRepo       WalletRepo
	userRepo         UserRepo
	txManager        pg.TXManager
	referralBonusPct float64
}

func New(walletRepo WalletRepo, userRepo UserRepo, txManager pg.TXManager, referralBonusPct float64) *Service {
	return &Service{
		walletRepo:       walletRepo,
		userRepo:         userRepo,
		txManager:        txManager,
		referralBonusPct: referralBonusPct,
	}
}

func (s *Service) CreateWallets(ctx context.Context, userID int) error {
	if err := s.walletRepo.CreateWallets(ctx, userID); err != nil {
		zap.L().Error("failed to create wallets", zap.Error(err))
		return err
	}
	return nil
}

func (s *Service) GetWallets(ctx context.Context, userID int) ([]domain.Wallet, error) {
	wallets, err := s.walletRepo.GetWallets(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get wallets", zap.Error(err))
		return nil, err
	}
	return wallets, nil
}

func (s *Service) GetTransactions(ctx context.Context, userID int) ([]domain.Transaction, error) {
	txs, err := s.walletRepo.GetTransactionsByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to fetch transactions", zap.Error(err))
		return nil, err
	}
	return txs, nil
}

// SubmitDeposit records a pending deposit awaiting admin review of the
// payment receipt.
func (s *Service) SubmitDeposit(ctx context.Context, userID int, amount float64, receiptRef string) (*domain.Transaction, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if receiptRef == "" {
		receiptRef = uuid.NewString()
	}

	tx := &domain.Transaction{
		UserID:      userID,
		WalletKind:  domain.CreditWallet,
		Type:        domain.TxDeposit,
		Status:      domain.TxPending,
		Amount:      amount,
		Reference:   receiptRef,
		Description: "deposit awaiting approval",
	}
	created, err := s.walletRepo.CreateTransaction(ctx, tx)
	if err != nil {
		zap.L().Error("failed to create deposit transaction", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (s *Service) GetDeposits(ctx context.Context, userID int) ([]domain.Transaction, error) {
	return s.walletRepo.FindTransactions(ctx, userID, domain.TxDeposit)
}

// ApproveDeposit is the "approved deposit of amount X for owner Y" intake:
// it finalizes the pending transaction and credits the Credit wallet in one
// transaction. The referee's first approved deposit also pays the referral
// bonus.
func (s *Service) ApproveDeposit(ctx context.Context, depositID, adminID int) (*domain.Wallet, error) {
	deposit, err := s.walletRepo.GetTransactionByID(ctx, depositID)
	if err != nil {
		return nil, err
	}
	if deposit == nil || deposit.Type != domain.TxDeposit {
		return nil, ErrDepositNotFound
	}

	var wallet *domain.Wallet
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		ok, err := s.walletRepo.UpdateTransactionStatus(ctx, depositID, domain.TxPending, domain.TxCompleted)
		if err != nil {
			return err
		}
		if !ok {
			return ErrAlreadyResolved
		}

		wallet, err = s.walletRepo.Credit(ctx, deposit.UserID, domain.CreditWallet, deposit.Amount)
		if err != nil {
			return err
		}

		return s.creditReferralBonus(ctx, deposit)
	})
	if err != nil {
		if !errors.Is(err, ErrAlreadyResolved) {
			zap.L().Error("failed to approve deposit", zap.Error(err))
		}
		return nil, err
	}

	zap.L().Info("deposit approved",
		zap.Int("depositID", depositID),
		zap.Int("adminID", adminID),
		zap.Float64("amount", deposit.Amount),
	)
	return wallet, nil
}

func (s *Service) RejectDeposit(ctx context.Context, depositID, adminID int) error {
	deposit, err := s.walletRepo.GetTransactionByID(ctx, depositID)
	if err != nil {
		return err
	}
	if deposit == nil || deposit.Type != domain.TxDeposit {
		return ErrDepositNotFound
	}

	ok, err := s.walletRepo.UpdateTransactionStatus(ctx, depositID, domain.TxPending, domain.TxFailed)
	if err != nil {
		return err
	}
	if !ok {
		return ErrAlreadyResolved
	}

	zap.L().Info("deposit rejected", zap.Int("depositID", depositID), zap.Int("adminID", adminID))
	return nil
}

func (s *Service) creditReferralBonus(ctx context.Context, deposit *domain.Transaction) error {
	if s.referralBonusPct <= 0 {
		return nil
	}

	user, err := s.userRepo.FindByID(ctx, deposit.UserID)
	if err != nil {
		return err
	}
	if user == nil || user.ReferrerID == nil {
		return nil
	}

	completed, err := s.walletRepo.CountTransactions(ctx, deposit.UserID, domain.TxDeposit, domain.TxCompleted)
	if err != nil {
		return err
	}
	// Bonus fires on the first approved deposit only; the deposit being
	// approved is already counted here.
	if completed != 1 {
		return nil
	}

	bonus := deposit.Amount * s.referralBonusPct / 100
	if _, err := s.walletRepo.Credit(ctx, *user.ReferrerID, domain.PassiveWallet, bonus); err != nil {
		return err
	}
	_, err = s.walletRepo.CreateTransaction(ctx, &domain.Transaction{
		UserID:      *user.ReferrerID,
		WalletKind:  domain.PassiveWallet,
		Type:        domain.TxReferral,
		Status:      domain.TxCompleted,
		Amount:      bonus,
		Reference:   uuid.NewString(),
		Description: fmt.Sprintf("referral bonus for %s", user.Login),
	})
	return err
}
