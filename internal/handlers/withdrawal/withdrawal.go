package withdrawal

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/masterbruh1993/mining-trade-finance-sub001/internal/domain"
	"github.com/masterbruh1993/mining-trade-finance-sub001/internal/dto"
	"github.com/masterbruh1993/mining-trade-finance-sub001/internal/service/withdrawalservice"
	"github.com/masterbruh1993/mining-trade-finance-sub001/pkg/auth"
	"github.com/masterbruh1993/mining-trade-finance-sub001/pkg/utils"
)

type Service interface {
	Submit(ctx context.Context, userID int, kind domain.WalletKind, amount float64, method domain.PayoutMethod, accountDetails string, now time.Time) (*domain.WithdrawalRequest, error)
	GetWithdrawals(ctx context.Context, userID int) ([]domain.WithdrawalRequest, error)
}

type WithdrawalHandler struct {
	withdrawalService Service
}

func New(withdrawalService Service) *WithdrawalHandler {
	return &WithdrawalHandler{
		withdrawalService: withdrawalService,
	}
}

func toResponseDTO(wr *domain.WithdrawalRequest) dto.WithdrawalResponseDTO {
	return dto.WithdrawalResponseDTO{
		ID:          wr.ID,
		WalletKind:  string(wr.WalletKind),
		Amount:      wr.Amount,
		Fee:         wr.Fee,
		NetAmount:   wr.NetAmount,
		Method:      string(wr.Method),
		Status:      string(wr.Status),
		Remarks:     wr.Remarks,
		RequestedAt: wr.RequestedAt,
		ProcessedAt: wr.ProcessedAt,
	}
}

// Submit godoc
//
//	@Summary		Submit a withdrawal request
//	@Description	Create a pending request after the encashment window, minimum, balance and daily-limit checks pass.
//	@Tags			Withdrawals
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.SubmitWithdrawalRequestDTO	true	"Withdrawal payload"
//	@Success		200		{object}	dto.WithdrawalResponseDTO		"Pending request"
//	@Failure		400		{object}	utils.Response					"Below minimum or malformed payload"
//	@Failure		401		{object}	utils.Response					"User not authorized"
//	@Failure		402		{object}	utils.Response					"Insufficient balance"
//	@Failure		403		{object}	utils.Response					"Encashment window closed"
//	@Failure		409		{object}	utils.Response					"Daily limit reached"
//	@Failure		422		{object}	utils.Response					"Invalid wallet kind, method or account"
//	@Failure		500		{object}	utils.Response					"Internal server error"
//	@Router			/api/user/withdrawals [post]
func (h *WithdrawalHandler) Submit(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.SubmitWithdrawalRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	request, err := h.withdrawalService.Submit(
		r.Context(),
		userID,
		domain.WalletKind(req.WalletKind),
		req.Amount,
		domain.PayoutMethod(req.Method),
		req.AccountDetails,
		time.Now(),
	)
	if err != nil {
		switch {
		case errors.Is(err, withdrawalservice.ErrWindowClosed):
			utils.RespondWithError(w, http.StatusForbidden, err.Error())
		case errors.Is(err, withdrawalservice.ErrBelowMinimum):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, withdrawalservice.ErrInsufficientBalance):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		case errors.Is(err, withdrawalservice.ErrDailyLimit):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, withdrawalservice.ErrInvalidWalletKind),
			errors.Is(err, withdrawalservice.ErrInvalidMethod),
			errors.Is(err, withdrawalservice.ErrInvalidAccount):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, toResponseDTO(request))
}

// GetWithdrawals godoc
//
//	@Summary		Get withdrawal history
//	@Description	List the authenticated user's withdrawal requests, newest first.
//	@Tags			Withdrawals
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.WithdrawalResponseDTO	"Requests"
//	@Success		204	{object}	utils.Response				"No requests"
//	@Failure		401	{object}	utils.Response				"User not authorized"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/api/user/withdrawals [get]
func (h *WithdrawalHandler) GetWithdrawals(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	requests, err := h.withdrawalService.GetWithdrawals(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch withdrawals")
		return
	}
	if len(requests) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "Withdrawals not found")
		return
	}

	response := make([]dto.WithdrawalResponseDTO, len(requests))
	for i := range requests {
		response[i] = toResponseDTO(&requests[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
