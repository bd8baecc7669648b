package contract

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/masterbruh1993/mining-trade-finance-sub001/internal/domain"
	"github.com/masterbruh1993/mining-trade-finance-sub001/internal/dto"
	"github.com/masterbruh1993/mining-trade-finance-sub001/internal/service/contractservice"
	"github.com/masterbruh1993/mining-trade-finance-sub001/pkg/auth"
	"github.com/masterbruh1993/mining-trade-finance-sub001/pkg/utils"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*ContractHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func authCtx(userID int) context.Context {
	return context.WithValue(context.Background(), auth.UserIDKey, userID)
}

func TestActivateHandler(t *testing.T) {
	handler, service := NewMock(t)
	start := time.Date(2026, 8, 24, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful activation",
			body: `{"amount":25000}`,
			prepareMock: func() {
				service.EXPECT().
					Activate(gomock.Any(), 1, 25000.0, gomock.Any()).
					Return(
						&domain.Contract{ID: 8, UserID: 1, Principal: 25000, StartAt: start, MaturityAt: start.AddDate(0, 0, 60)},
						&domain.Wallet{ID: 1, UserID: 1, Kind: domain.CreditWallet, Balance: 1200.50},
						nil,
					)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Amount out of range",
			body: `{"amount":500}`,
			prepareMock: func() {
				service.EXPECT().
					Activate(gomock.Any(), 1, 500.0, gomock.Any()).
					Return(nil, nil, contractservice.ErrInvalidAmount)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: contractservice.ErrInvalidAmount.Error(),
		},
		{
			name: "Insufficient funds",
			body: `{"amount":25000}`,
			prepareMock: func() {
				service.EXPECT().
					Activate(gomock.Any(), 1, 25000.0, gomock.Any()).
					Return(nil, nil, contractservice.ErrInsufficientFunds)
			},
			expectedCode:  http.StatusPaymentRequired,
			expectedError: contractservice.ErrInsufficientFunds.Error(),
		},
		{
			name:          "Invalid request body",
			body:          `{invalid json`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid request body",
		},
		{
			name: "Internal server error",
			body: `{"amount":25000}`,
			prepareMock: func() {
				service.EXPECT().
					Activate(gomock.Any(), 1, 25000.0, gomock.Any()).
					Return(nil, nil, errors.New("database error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodPost, "/contracts", bytes.NewReader([]byte(tt.body)))
			r = r.WithContext(authCtx(1))
			w := httptest.NewRecorder()

			handler.Activate(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(w.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Message)
			} else {
				var body dto.ActivateContractResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, 8, body.ContractID)
				assert.Equal(t, 1200.50, body.CreditBalance)
			}
		})
	}
}

func TestGetContractsHandler(t *testing.T) {
	handler, service := NewMock(t)
	start := time.Now().AddDate(0, 0, -6)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Contracts returned with schedule progress",
			prepareMock: func() {
				service.EXPECT().GetContracts(authCtx(1), 1).Return([]domain.Contract{
					{
						ID: 8, UserID: 1, Principal: 25000, ReturnMultiple: 4, CadenceDays: 3,
						Boundaries: 20, PaidBoundaries: 2, TotalPaidOut: 7500,
						Status: domain.ContractActive, StartAt: start, MaturityAt: start.AddDate(0, 0, 60),
					},
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "No contracts",
			prepareMock: func() {
				service.EXPECT().GetContracts(authCtx(1), 1).Return(nil, nil)
			},
			expectedCode: http.StatusNoContent,
		},
		{
			name: "Internal server error",
			prepareMock: func() {
				service.EXPECT().GetContracts(authCtx(1), 1).Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodGet, "/contracts", nil)
			r = r.WithContext(authCtx(1))
			w := httptest.NewRecorder()

			handler.GetContracts(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body []dto.ContractResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Len(t, body, 1)
				assert.Equal(t, 2, body[0].PaidBoundaries)
				assert.NotNil(t, body[0].NextPayoutAt)
				assert.Greater(t, body[0].DaysLeft, 0)
			}
		})
	}
}

func TestGetSummaryHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		expectedBody dto.ContractSummaryResponseDTO
	}{
		{
			name: "Summary returned",
			prepareMock: func() {
				service.EXPECT().GetSummary(authCtx(1), 1).Return(&contractservice.Summary{
					ActiveCount:     2,
					ActivePrincipal: 50000,
					CompletedCount:  1,
					TotalPayouts:    100000,
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: dto.ContractSummaryResponseDTO{
				ActiveContracts:    2,
				ActivePrincipal:    50000,
				CompletedContracts: 1,
				TotalPayouts:       100000,
			},
		},
		{
			name: "Internal server error",
			prepareMock: func() {
				service.EXPECT().GetSummary(authCtx(1), 1).Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodGet, "/contracts/summary", nil)
			r = r.WithContext(authCtx(1))
			w := httptest.NewRecorder()

			handler.GetSummary(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.ContractSummaryResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, tt.expectedBody, body)
			}
		})
	}
}
