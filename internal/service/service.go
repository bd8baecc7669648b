package service

import (
	"fmt"

	"github.com/masterbruh1993/mining-trade-finance-sub001/internal/config"
	"github.com/masterbruh1993/mining-trade-finance-sub001/internal/pg"
	"github.com/masterbruh1993/mining-trade-finance-sub001/internal/repo"
	"github.com/masterbruh1993/mining-trade-finance-sub001/internal/service/adminservice"
	"github.com/masterbruh1993/mining-trade-finance-sub001/internal/service/authservice"
	"github.com/masterbruh1993/mining-trade-finance-sub001/internal/service/contractservice"
	"github.com/masterbruh1993/mining-trade-finance-sub001/internal/service/encashmentservice"
	"github.com/masterbruh1993/mining-trade-finance-sub001/internal/service/walletservice"
	"github.com/masterbruh1993/mining-trade-finance-sub001/internal/service/withdrawalservice"
	pkgauth "github.com/masterbruh1993/mining-trade-finance-sub001/pkg/auth"
)

type Services struct {
	AuthService       *authservice.Service
	WalletService     *walletservice.Service
	ContractService   *contractservice.Service
	EncashmentService *encashmentservice.Service
	WithdrawalService *withdrawalservice.Service
	AdminService      *adminservice.Service
}

func New(cfg *config.Config, repos *repo.Repositories, txManager pg.TXManager, jwtService pkgauth.JWTServiceInterface) (*Services, error) {
	plan := contractservice.Plan{
		MinAmount:    cfg.InvestmentMin,
		MaxAmount:    cfg.InvestmentMax,
		Multiple:     cfg.ReturnMultiple,
		DurationDays: cfg.ContractDurationDays,
		CadenceDays:  cfg.PayoutCadenceDays,
	}
	if err := plan.Validate(); err != nil {
		return nil, fmt.Errorf("investment plan: %w", err)
	}

	walletService := walletservice.New(repos.WalletRepo, repos.UserRepo, txManager, cfg.ReferralBonusPct)
	contractService := contractservice.New(repos.ContractRepo, repos.WalletRepo, repos.EncashmentRepo, txManager, plan)
	encashmentService := encashmentservice.New(repos.EncashmentRepo)
	withdrawalService := withdrawalservice.New(repos.WithdrawalRepo, repos.WalletRepo, repos.EncashmentRepo, txManager, withdrawalservice.Limits{
		MinCredit:  cfg.WithdrawMinCredit,
		MinPassive: cfg.WithdrawMinPassive,
		FeePct:     cfg.WithdrawalFeePct,
	})
	adminService := adminservice.New(repos.UserRepo, repos.ContractRepo, repos.WithdrawalRepo, repos.WalletRepo, repos.EncashmentRepo)
	authService := authservice.New(repos.UserRepo, walletService, &pkgauth.HashService{}, jwtService, cfg.TokenTTL)

	return &Services{
		AuthService:       authService,
		WalletService:     walletService,
		ContractService:   contractService,
		EncashmentService: encashmentService,
		WithdrawalService: withdrawalService,
		AdminService:      adminService,
	}, nil
}
