package contract

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/masterbruh1993/mining-trade-finance-sub001/internal/domain"
	"github.com/masterbruh1993/mining-trade-finance-sub001/internal/dto"
	"github.com/masterbruh1993/mining-trade-finance-sub001/internal/service/contractservice"
	"github.com/masterbruh1993/mining-trade-finance-sub001/pkg/auth"
	"github.com/masterbruh1993/mining-trade-finance-sub001/pkg/utils"
)

type Service interface {
	Activate(ctx context.Context, userID int, amount float64, now time.Time) (*domain.Contract, *domain.Wallet, error)
	GetContracts(ctx context.Context, userID int) ([]domain.Contract, error)
	GetSummary(ctx context.Context, userID int) (*contractservice.Summary, error)
}

type ContractHandler struct {
	contractService Service
}

func New(contractService Service) *ContractHandler {
	return &ContractHandler{
		contractService: contractService,
	}
}

// Activate godoc
//
//	@Summary		Activate an investment contract
//	@Description	Debit the Credit wallet and start a fixed-term contract paying out on the cadence schedule.
//	@Tags			Contracts
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ActivateContractRequestDTO		true	"Activation payload"
//	@Success		200		{object}	dto.ActivateContractResponseDTO	"Created contract"
//	@Failure		400		{object}	utils.Response						"Amount out of range"
//	@Failure		401		{object}	utils.Response						"User not authorized"
//	@Failure		402		{object}	utils.Response						"Insufficient funds"
//	@Failure		500		{object}	utils.Response						"Internal server error"
//	@Router			/api/user/contracts [post]
func (h *ContractHandler) Activate(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.ActivateContractRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	contract, wallet, err := h.contractService.Activate(r.Context(), userID, req.Amount, time.Now())
	if err != nil {
		switch {
		case errors.Is(err, contractservice.ErrInvalidAmount):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, contractservice.ErrInsufficientFunds):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.ActivateContractResponseDTO{
		ContractID:    contract.ID,
		StartDate:     contract.StartAt,
		MaturityDate:  contract.MaturityAt,
		CreditBalance: wallet.Balance,
	})
}

// GetContracts godoc
//
//	@Summary		Get own contracts
//	@Description	List the authenticated user's contracts with schedule progress.
//	@Tags			Contracts
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.ContractResponseDTO	"Contracts"
//	@Success		204	{object}	utils.Response			"No contracts"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/user/contracts [get]
func (h *ContractHandler) GetContracts(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	contracts, err := h.contractService.GetContracts(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch contracts")
		return
	}
	if len(contracts) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No contracts found")
		return
	}

	now := time.Now()
	response := make([]dto.ContractResponseDTO, len(contracts))
	for i, c := range contracts {
		item := dto.ContractResponseDTO{
			ID:             c.ID,
			Principal:      c.Principal,
			ReturnMultiple: c.ReturnMultiple,
			Status:         string(c.Status),
			TotalPaidOut:   c.TotalPaidOut,
			PaidBoundaries: c.PaidBoundaries,
			Boundaries:     c.Boundaries,
			StartDate:      c.StartAt,
			MaturityDate:   c.MaturityAt,
		}
		if next := contractservice.NextPayoutAt(&c); !next.IsZero() {
			item.NextPayoutAt = &next
		}
		if c.Status == domain.ContractActive && c.MaturityAt.After(now) {
			item.DaysLeft = int(c.MaturityAt.Sub(now).Hours() / 24)
		}
		response[i] = item
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetSummary godoc
//
//	@Summary		Get contract summary
//	@Description	Aggregate view: active contracts, principal in force, completed contracts and total payouts received.
//	@Tags			Contracts
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.ContractSummaryResponseDTO	"Summary"
//	@Failure		401	{object}	utils.Response					"User not authorized"
//	@Failure		500	{object}	utils.Response					"Internal server error"
//	@Router			/api/user/contracts/summary [get]
func (h *ContractHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	summary, err := h.contractService.GetSummary(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.ContractSummaryResponseDTO{
		ActiveContracts:    summary.ActiveCount,
		ActivePrincipal:    summary.ActivePrincipal,
		CompletedContracts: summary.CompletedCount,
		TotalPayouts:       summary.TotalPayouts,
	})
}
