package repo

import (
	"github.com/masterbruh1993/mining-trade-finance-sub001/internal/pg"
	contractrepo "github.com/masterbruh1993/mining-trade-finance-sub001/internal/repo/contract-repo"
	encashmentrepo "github.com/masterbruh1993/mining-trade-finance-sub001/internal/repo/encashment-repo"
	userrepo "github.com/masterbruh1993/mining-trade-finance-sub001/internal/repo/user-repo"
	walletrepo "github.com/masterbruh1993/mining-trade-finance-sub001/internal/repo/wallet-repo"
	withdrawalrepo "github.com/masterbruh1993/mining-trade-finance-sub001/internal/repo/withdrawal-repo"
)

type Repositories struct {
	UserRepo       *userrepo.Repository
	WalletRepo     *walletrepo.Repository
	ContractRepo   *contractrepo.Repository
	WithdrawalRepo *withdrawalrepo.Repository
	EncashmentRepo *encashmentrepo.Repository
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		UserRepo:       userrepo.New(conn),
		WalletRepo:     walletrepo.New(conn, txManager),
		ContractRepo:   contractrepo.New(conn, txManager),
		WithdrawalRepo: withdrawalrepo.New(conn),
		EncashmentRepo: encashmentrepo.New(conn),
	}
}
