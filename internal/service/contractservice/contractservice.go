package contractservice

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
)

type ContractRepo interface {
	Create(ctx context.Context, c *domain.Contract) (*domain.Contract, error)
	GetByID(ctx context.Context, id int) (*domain.Contract, error)
	FindByUserID(ctx context.Context, userID int) ([]domain.Contract, error)
	FindDue(ctx context.Context, now time.Time, limit uint32) ([]domain.Contract, error)
	InsertPayout(ctx context.Context, contractID, boundaryIndex int, amount float64) (bool, error)
	ApplyPayout(ctx context.Context, contractID, paidBoundaries int, totalPaidOut float64, status domain.ContractStatus) (bool, error)
	Void(ctx context.Context, contractID int, reason string) (bool, error)
	SummaryByUser(ctx context.Context, userID int) (int, float64, int, error)
}

type WalletRepo interface {
	Debit(ctx context.Context, userID int, kind domain.WalletKind, amount float64) (*domain.Wallet, error)
	Credit(ctx context.Context, userID int, kind domain.WalletKind, amount float64) (*domain.Wallet, error)
	CreateTransaction(ctx context.Context, tx *domain.Transaction) (*domain.Transaction, error)
	SumTransactions(ctx context.Context, userID int, txType domain.TransactionType, status domain.TransactionStatus) (float64, error)
}

type AuditRepo interface {
	CreateAudit(ctx context.Context, entry *domain.AuditEntry) error
}

type Notifier interface {
	ContractCompleted(ctx context.Context, c *domain.Contract)
}

// Plan holds the fixed investment terms every contract is created with.
type Plan struct {
	MinAmount    float64
	MaxAmount    float64
	Multiple     float64
	DurationDays int
	CadenceDays  int
}

func (p Plan) boundaries() int {
	return p.DurationDays / p.CadenceDays
}

// Validate rejects plan terms that cannot produce a full payout schedule.
// The duration must be a whole number of cadences or the final boundary
// would not land on maturity.
func (p Plan) Validate() error {
	if p.MinAmount <= 0 || p.MaxAmount < p.MinAmount {
		return fmt.Errorf("investment range %.2f..%.2f is invalid", p.MinAmount, p.MaxAmount)
	}
	if p.Multiple <= 1 {
		return fmt.Errorf("return multiple %.2f must exceed 1", p.Multiple)
	}
	if p.DurationDays <= 0 || p.CadenceDays <= 0 {
		return fmt.Errorf("duration %d and cadence %d must be positive", p.DurationDays, p.CadenceDays)
	}
	if p.DurationDays%p.CadenceDays != 0 {
		return fmt.Errorf("duration %d days is not a whole number of %d-day cadences", p.DurationDays, p.CadenceDays)
	}
	return nil
}

var (
	ErrInvalidAmount     = errors.New("investment amount out of range")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrContractNotFound  = errors.New("contract not found")
	ErrContractNotActive = errors.New("contract is not active")
)

type Service struct {
	contractRepo ContractRepo
	walletRepo   WalletRepo
	auditRepo    AuditRepo
	txManager    pg.TXManager
	notifier     Notifier
	plan         Plan
}

func New(contractRepo ContractRepo, walletRepo WalletRepo, auditRepo AuditRepo, txManager pg.TXManager, plan Plan) *Service {
	return &Service{
		contractRepo: contractRepo,
		walletRepo:   walletRepo,
		auditRepo:    auditRepo,
		txManager:    txManager,
		plan:         plan,
	}
}

func (s *Service) SetNotifier(n Notifier) {
	s.notifier = n
}

// Activate debits the Credit wallet and creates an active contract in one
// database transaction.
func (s *Service) Activate(ctx context.Context, userID int, amount float64, now time.Time) (*domain.Contract, *domain.Wallet, error) {
	if amount < s.plan.MinAmount || amount > s.plan.MaxAmount {
		return nil, nil, ErrInvalidAmount
	}

	contract := &domain.Contract{
		UserID:         userID,
		Principal:      amount,
		ReturnMultiple: s.plan.Multiple,
		CadenceDays:    s.plan.CadenceDays,
		Boundaries:     s.plan.boundaries(),
		Status:         domain.ContractActive,
		StartAt:        now,
		MaturityAt:     now.AddDate(0, 0, s.plan.DurationDays),
	}

	var wallet *domain.Wallet
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		wallet, err = s.walletRepo.Debit(ctx, userID, domain.CreditWallet, amount)
		if err != nil {
			return err
		}
		if wallet == nil {
			return ErrInsufficientFunds
		}

		if _, err = s.walletRepo.CreateTransaction(ctx, &domain.Transaction{
			UserID:      userID,
			WalletKind:  domain.CreditWallet,
			Type:        domain.TxActivation,
			Status:      domain.TxCompleted,
			Amount:      amount,
			Reference:   uuid.NewString(),
			Description: "contract activation",
		}); err != nil {
			return err
		}

		_, err = s.contractRepo.Create(ctx, contract)
		return err
	})
	if err != nil {
		if !errors.Is(err, ErrInsufficientFunds) {
			zap.L().Error("failed to activate contract", zap.Error(err))
		}
		return nil, nil, err
	}

	zap.L().Info("contract activated",
		zap.Int("userID", userID),
		zap.Int("contractID", contract.ID),
		zap.Float64("principal", amount),
	)
	return contract, wallet, nil
}

// BoundaryAt returns the wall-clock time of the i-th cadence boundary
// (1-based).
func BoundaryAt(c *domain.Contract, i int) time.Time {
	return c.StartAt.AddDate(0, 0, i*c.CadenceDays)
}

// ProfitShare returns the profit credited at the i-th boundary. Shares are
// computed in decimal and the rounding remainder is folded into the final
// boundary, so the lifetime sum equals principal * (multiple - 1) exactly.
func ProfitShare(c *domain.Contract, i int) float64 {
	total := decimal.NewFromFloat(c.Principal).
		Mul(decimal.NewFromFloat(c.ReturnMultiple).Sub(decimal.NewFromInt(1)))
	n := decimal.NewFromInt(int64(c.Boundaries))
	per := total.Div(n).Truncate(2)
	if i == c.Boundaries {
		last := total.Sub(per.Mul(decimal.NewFromInt(int64(c.Boundaries - 1))))
		f, _ := last.Float64()
		return f
	}
	f, _ := per.Float64()
	return f
}

// NextPayoutAt returns the next unpaid boundary time, or zero when the
// contract has no further payouts.
func NextPayoutAt(c *domain.Contract) time.Time {
	if c.Status != domain.ContractActive || c.PaidBoundaries >= c.Boundaries {
		return time.Time{}
	}
	return BoundaryAt(c, c.PaidBoundaries+1)
}

// Advance credits every cadence boundary that has elapsed by now, each in its
// own database transaction keyed by (contract, boundary index), so repeated
// or overlapping runs cannot double-credit. The final boundary also returns
// the principal and completes the contract.
func (s *Service) Advance(ctx context.Context, c *domain.Contract, now time.Time) (int, error) {
	if c.Status != domain.ContractActive {
		return 0, ErrContractNotActive
	}

	credited := 0
	for i := c.PaidBoundaries + 1; i <= c.Boundaries && !BoundaryAt(c, i).After(now); i++ {
		if err := s.advanceBoundary(ctx, c, i); err != nil {
			return credited, err
		}
		credited++
	}

	if c.Status == domain.ContractCompleted && s.notifier != nil {
		s.notifier.ContractCompleted(ctx, c)
	}
	return credited, nil
}

func (s *Service) advanceBoundary(ctx context.Context, c *domain.Contract, i int) error {
	share := ProfitShare(c, i)
	final := i == c.Boundaries

	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		inserted, err := s.contractRepo.InsertPayout(ctx, c.ID, i, share)
		if err != nil {
			return err
		}

		payout := share
		if final {
			payout += c.Principal
		}

		// A duplicate boundary row means another run already credited the
		// wallet; only the contract counters are brought forward.
		if inserted {
			if _, err := s.walletRepo.Credit(ctx, c.UserID, domain.PassiveWallet, share); err != nil {
				return err
			}
			if _, err := s.walletRepo.CreateTransaction(ctx, &domain.Transaction{
				UserID:      c.UserID,
				WalletKind:  domain.PassiveWallet,
				Type:        domain.TxPayout,
				Status:      domain.TxCompleted,
				Amount:      share,
				Reference:   uuid.NewString(),
				Description: fmt.Sprintf("contract %d payout %d/%d", c.ID, i, c.Boundaries),
			}); err != nil {
				return err
			}

			if final {
				if _, err := s.walletRepo.Credit(ctx, c.UserID, domain.PassiveWallet, c.Principal); err != nil {
					return err
				}
				if _, err := s.walletRepo.CreateTransaction(ctx, &domain.Transaction{
					UserID:      c.UserID,
					WalletKind:  domain.PassiveWallet,
					Type:        domain.TxPayout,
					Status:      domain.TxCompleted,
					Amount:      c.Principal,
					Reference:   uuid.NewString(),
					Description: fmt.Sprintf("contract %d principal return", c.ID),
				}); err != nil {
					return err
				}
			}
		}

		status := c.Status
		if final {
			status = domain.ContractCompleted
		}
		applied, err := s.contractRepo.ApplyPayout(ctx, c.ID, i, c.TotalPaidOut+payout, status)
		if err != nil {
			return err
		}
		// The contract left ACTIVE under us (a concurrent void). Roll the
		// credit back and stop the run.
		if !applied {
			return ErrContractNotActive
		}

		c.PaidBoundaries = i
		c.TotalPaidOut += payout
		c.Status = status
		return nil
	})
}

// FindDue exposes the sweep query for the payout poller.
func (s *Service) FindDue(ctx context.Context, now time.Time, limit uint32) ([]domain.Contract, error) {
	return s.contractRepo.FindDue(ctx, now, limit)
}

// Void terminates an active contract. Payouts already credited stay in the
// ledger.
func (s *Service) Void(ctx context.Context, contractID, adminID int, reason string) error {
	contract, err := s.contractRepo.GetByID(ctx, contractID)
	if err != nil {
		return err
	}
	if contract == nil {
		return ErrContractNotFound
	}

	ok, err := s.contractRepo.Void(ctx, contractID, reason)
	if err != nil {
		return err
	}
	if !ok {
		return ErrContractNotActive
	}

	if err := s.auditRepo.CreateAudit(ctx, &domain.AuditEntry{
		ActorID:  adminID,
		Action:   "contract.void",
		OldValue: string(contract.Status),
		NewValue: fmt.Sprintf("%s: %s", domain.ContractVoided, reason),
	}); err != nil {
		zap.L().Error("failed to write void audit entry", zap.Error(err))
	}

	zap.L().Info("contract voided",
		zap.Int("contractID", contractID),
		zap.Int("adminID", adminID),
		zap.String("reason", reason),
	)
	return nil
}

type Summary struct {
	ActiveCount     int
	ActivePrincipal float64
	CompletedCount  int
	TotalPayouts    float64
}

func (s *Service) GetContracts(ctx context.Context, userID int) ([]domain.Contract, error) {
	contracts, err := s.contractRepo.FindByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to fetch contracts", zap.Error(err))
		return nil, err
	}
	return contracts, nil
}

func (s *Service) GetSummary(ctx context.Context, userID int) (*Summary, error) {
	active, principal, completed, err := s.contractRepo.SummaryByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	payouts, err := s.walletRepo.SumTransactions(ctx, userID, domain.TxPayout, domain.TxCompleted)
	if err != nil {
		return nil, err
	}
	return &Summary{
		ActiveCount:     active,
		ActivePrincipal: principal,
		CompletedCount:  completed,
		TotalPayouts:    payouts,
	}, nil
}
