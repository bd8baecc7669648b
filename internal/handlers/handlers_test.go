package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/masterbruh1993/mining-trade-finance-sub001/pkg/auth"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func newTestHandlers(ctrl *gomock.Controller) *Handlers {
	authHandler := NewMockAuthHandler(ctrl)
	walletHandler := NewMockWalletHandler(ctrl)
	contractHandler := NewMockContractHandler(ctrl)
	withdrawalHandler := NewMockWithdrawalHandler(ctrl)
	encashmentHandler := NewMockEncashmentHandler(ctrl)
	adminHandler := NewMockAdminHandler(ctrl)

	authHandler.EXPECT().Register(gomock.Any(), gomock.Any()).AnyTimes()
	authHandler.EXPECT().Login(gomock.Any(), gomock.Any()).AnyTimes()
	walletHandler.EXPECT().GetWallets(gomock.Any(), gomock.Any()).AnyTimes()
	walletHandler.EXPECT().GetTransactions(gomock.Any(), gomock.Any()).AnyTimes()
	walletHandler.EXPECT().SubmitDeposit(gomock.Any(), gomock.Any()).AnyTimes()
	walletHandler.EXPECT().GetDeposits(gomock.Any(), gomock.Any()).AnyTimes()
	contractHandler.EXPECT().Activate(gomock.Any(), gomock.Any()).AnyTimes()
	contractHandler.EXPECT().GetContracts(gomock.Any(), gomock.Any()).AnyTimes()
	contractHandler.EXPECT().GetSummary(gomock.Any(), gomock.Any()).AnyTimes()
	withdrawalHandler.EXPECT().Submit(gomock.Any(), gomock.Any()).AnyTimes()
	withdrawalHandler.EXPECT().GetWithdrawals(gomock.Any(), gomock.Any()).AnyTimes()
	encashmentHandler.EXPECT().GetStatus(gomock.Any(), gomock.Any()).AnyTimes()
	adminHandler.EXPECT().ApproveDeposit(gomock.Any(), gomock.Any()).AnyTimes()
	adminHandler.EXPECT().RejectDeposit(gomock.Any(), gomock.Any()).AnyTimes()
	adminHandler.EXPECT().ListWithdrawals(gomock.Any(), gomock.Any()).AnyTimes()
	adminHandler.EXPECT().ResolveWithdrawal(gomock.Any(), gomock.Any()).AnyTimes()
	adminHandler.EXPECT().VoidContract(gomock.Any(), gomock.Any()).AnyTimes()
	adminHandler.EXPECT().UpdateSchedule(gomock.Any(), gomock.Any()).AnyTimes()
	adminHandler.EXPECT().ActivateOverride(gomock.Any(), gomock.Any()).AnyTimes()
	adminHandler.EXPECT().DeactivateOverride(gomock.Any(), gomock.Any()).AnyTimes()
	adminHandler.EXPECT().GetSummary(gomock.Any(), gomock.Any()).AnyTimes()
	adminHandler.EXPECT().GetAuditLog(gomock.Any(), gomock.Any()).AnyTimes()

	return &Handlers{
		AuthHandler:       authHandler,
		WalletHandler:     walletHandler,
		ContractHandler:   contractHandler,
		WithdrawalHandler: withdrawalHandler,
		EncashmentHandler: encashmentHandler,
		AdminHandler:      adminHandler,
		jwtService:        auth.NewJWTService("test-secret"),
	}
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := newTestHandlers(ctrl)

	router := chi.NewRouter()
	h.InitRoutes(router)

	tests := []struct {
		method string
		url    string
		status int
	}{
		{"POST", "/api/user/register", http.StatusOK},
		{"POST", "/api/user/login", http.StatusOK},
		{"GET", "/api/user/wallets", http.StatusUnauthorized},
		{"GET", "/api/user/transactions", http.StatusUnauthorized},
		{"POST", "/api/user/deposits", http.StatusUnauthorized},
		{"GET", "/api/user/deposits", http.StatusUnauthorized},
		{"POST", "/api/user/contracts", http.StatusUnauthorized},
		{"GET", "/api/user/contracts", http.StatusUnauthorized},
		{"GET", "/api/user/contracts/summary", http.StatusUnauthorized},
		{"POST", "/api/user/withdrawals", http.StatusUnauthorized},
		{"GET", "/api/user/withdrawals", http.StatusUnauthorized},
		{"GET", "/api/user/encashment/CREDIT", http.StatusUnauthorized},
		{"GET", "/api/admin/summary", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestAdminRoutesRequireAdminRole(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := newTestHandlers(ctrl)
	jwtService := auth.NewJWTService("test-secret")

	router := chi.NewRouter()
	h.InitRoutes(router)

	userToken, err := jwtService.GenerateJWT(1, false, time.Now().Add(time.Hour))
	assert.NoError(t, err)
	adminToken, err := jwtService.GenerateJWT(2, true, time.Now().Add(time.Hour))
	assert.NoError(t, err)

	tests := []struct {
		name   string
		token  string
		status int
	}{
		{"Regular user is forbidden", userToken, http.StatusForbidden},
		{"Admin passes through", adminToken, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/api/admin/summary", nil)
			req.Header.Set("Authorization", "Bearer "+tt.token)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
