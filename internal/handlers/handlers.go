package handlers

import (
	"net/http"

	_ "github.com/masterbruh1993/mining-trade-finance-sub001/docs"
	adminhandlers "github.com/masterbruh1993/mining-trade-finance-sub001/internal/handlers/admin"
	authhandlers "github.com/masterbruh1993/mining-trade-finance-sub001/internal/handlers/auth"
	contracthandlers "github.com/masterbruh1993/mining-trade-finance-sub001/internal/handlers/contract"
	encashmenthandlers "github.com/masterbruh1993/mining-trade-finance-sub001/internal/handlers/encashment"
	wallethandlers "github.com/masterbruh1993/mining-trade-finance-sub001/internal/handlers/wallet"
	withdrawalhandlers "github.com/masterbruh1993/mining-trade-finance-sub001/internal/handlers/withdrawal"
	"github.com/masterbruh1993/mining-trade-finance-sub001/internal/service"
	"github.com/masterbruh1993/mining-trade-finance-sub001/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type WalletHandler interface {
	GetWallets(w http.ResponseWriter, r *http.Request)
	GetTransactions(w http.ResponseWriter, r *http.Request)
	SubmitDeposit(w http.ResponseWriter, r *http.Request)
	GetDeposits(w http.ResponseWriter, r *http.Request)
}

type ContractHandler interface {
	Activate(w http.ResponseWriter, r *http.Request)
	GetContracts(w http.ResponseWriter, r *http.Request)
	GetSummary(w http.ResponseWriter, r *http.Request)
}

type WithdrawalHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	GetWithdrawals(w http.ResponseWriter, r *http.Request)
}

type EncashmentHandler interface {
	GetStatus(w http.ResponseWriter, r *http.Request)
}

type AdminHandler interface {
	ApproveDeposit(w http.ResponseWriter, r *http.Request)
	RejectDeposit(w http.ResponseWriter, r *http.Request)
	ListWithdrawals(w http.ResponseWriter, r *http.Request)
	ResolveWithdrawal(w http.ResponseWriter, r *http.Request)
	VoidContract(w http.ResponseWriter, r *http.Request)
	UpdateSchedule(w http.ResponseWriter, r *http.Request)
	ActivateOverride(w http.ResponseWriter, r *http.Request)
	DeactivateOverride(w http.ResponseWriter, r *http.Request)
	GetSummary(w http.ResponseWriter, r *http.Request)
	GetAuditLog(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler       AuthHandler
	WalletHandler     WalletHandler
	ContractHandler   ContractHandler
	WithdrawalHandler WithdrawalHandler
	EncashmentHandler EncashmentHandler
	AdminHandler      AdminHandler

	jwtService auth.JWTServiceInterface
}

func New(s *service.Services, jwtService auth.JWTServiceInterface) *Handlers {
	return &Handlers{
		AuthHandler:       authhandlers.New(s.AuthService),
		WalletHandler:     wallethandlers.New(s.WalletService),
		ContractHandler:   contracthandlers.New(s.ContractService),
		WithdrawalHandler: withdrawalhandlers.New(s.WithdrawalService),
		EncashmentHandler: encashmenthandlers.New(s.EncashmentService),
		AdminHandler: adminhandlers.New(
			s.WalletService,
			s.WithdrawalService,
			s.ContractService,
			s.EncashmentService,
			s.AdminService,
		),
		jwtService: jwtService,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api/user", func(r chi.Router) {
		r.Post("/register", h.AuthHandler.Register)
		r.Post("/login", h.AuthHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware(h.jwtService))
			r.Get("/wallets", h.WalletHandler.GetWallets)
			r.Get("/transactions", h.WalletHandler.GetTransactions)
			r.Route("/deposits", func(r chi.Router) {
				r.Post("/", h.WalletHandler.SubmitDeposit)
				r.Get("/", h.WalletHandler.GetDeposits)
			})
			r.Route("/contracts", func(r chi.Router) {
				r.Post("/", h.ContractHandler.Activate)
				r.Get("/", h.ContractHandler.GetContracts)
				r.Get("/summary", h.ContractHandler.GetSummary)
			})
			r.Route("/withdrawals", func(r chi.Router) {
				r.Post("/", h.WithdrawalHandler.Submit)
				r.Get("/", h.WithdrawalHandler.GetWithdrawals)
			})
			r.Get("/encashment/{kind}", h.EncashmentHandler.GetStatus)
		})
	})

	r.Route("/api/admin", func(r chi.Router) {
		r.Use(auth.Middleware(h.jwtService), auth.AdminOnly)
		r.Post("/deposits/{id}/approve", h.AdminHandler.ApproveDeposit)
		r.Post("/deposits/{id}/reject", h.AdminHandler.RejectDeposit)
		r.Get("/withdrawals", h.AdminHandler.ListWithdrawals)
		r.Post("/withdrawals/{id}/resolve", h.AdminHandler.ResolveWithdrawal)
		r.Post("/contracts/{id}/void", h.AdminHandler.VoidContract)
		r.Route("/encashment/{kind}", func(r chi.Router) {
			r.Put("/", h.AdminHandler.UpdateSchedule)
			r.Post("/override", h.AdminHandler.ActivateOverride)
			r.Delete("/override", h.AdminHandler.DeactivateOverride)
		})
		r.Get("/summary", h.AdminHandler.GetSummary)
		r.Get("/audit", h.AdminHandler.GetAuditLog)
	})

	return r
}
