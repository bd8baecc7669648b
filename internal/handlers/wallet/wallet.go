package wallet

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/masterbruh1993/mining-trade-finance-sub001/internal/domain"
	"github.com/masterbruh1993/mining-trade-finance-sub001/internal/dto"
	"github.com/masterbruh1993/mining-trade-finance-sub001/internal/service/walletservice"
	"github.com/masterbruh1993/mining-trade-finance-sub001/pkg/auth"
	"github.com/masterbruh1993/mining-trade-finance-sub001/pkg/utils"
)

type Service interface {
	GetWallets(ctx context.Context, userID int) ([]domain.Wallet, error)
	GetTransactions(ctx context.Context, userID int) ([]domain.Transaction, error)
	SubmitDeposit(ctx context.Context, userID int, amount float64, receiptRef string) (*domain.Transaction, error)
	GetDeposits(ctx context.Context, userID int) ([]domain.Transaction, error)
}

type WalletHandler struct {
	walletService Service
}

func New(walletService Service) *WalletHandler {
	return &WalletHandler{
		walletService: walletService,
	}
}

// GetWallets godoc
//
//	@Summary		Get wallet balances
//	@Description	Retrieve the Credit and Passive wallet balances for the authenticated user.
//	@Tags			Wallets
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.WalletResponseDTO	"Wallet balances"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/user/wallets [get]
func (h *WalletHandler) GetWallets(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	wallets, err := h.walletService.GetWallets(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.WalletResponseDTO, len(wallets))
	for i, wl := range wallets {
		response[i] = dto.WalletResponseDTO{
			Kind:    string(wl.Kind),
			Balance: wl.Balance,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetTransactions godoc
//
//	@Summary		Get ledger history
//	@Description	List the authenticated user's transactions, newest first.
//	@Tags			Wallets
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.TransactionResponseDTO	"Transactions"
//	@Success		204	{object}	utils.Response				"No transactions"
//	@Failure		401	{object}	utils.Response				"User not authorized"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/api/user/transactions [get]
func (h *WalletHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	txs, err := h.walletService.GetTransactions(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch transactions")
		return
	}
	if len(txs) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No transactions found")
		return
	}

	response := make([]dto.TransactionResponseDTO, len(txs))
	for i, tx := range txs {
		response[i] = dto.TransactionResponseDTO{
			ID:          tx.ID,
			WalletKind:  string(tx.WalletKind),
			Type:        string(tx.Type),
			Status:      string(tx.Status),
			Amount:      tx.Amount,
			Reference:   tx.Reference,
			Description: tx.Description,
			CreatedAt:   tx.CreatedAt,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// SubmitDeposit godoc
//
//	@Summary		Submit a deposit for review
//	@Description	Record a pending deposit with the payment receipt reference; an admin approves or rejects it.
//	@Tags			Wallets
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.DepositRequestDTO	true	"Deposit payload"
//	@Success		200		{object}	dto.DepositResponseDTO	"Pending deposit"
//	@Failure		400		{object}	utils.Response			"Invalid amount"
//	@Failure		401		{object}	utils.Response			"User not authorized"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/user/deposits [post]
func (h *WalletHandler) SubmitDeposit(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.DepositRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	deposit, err := h.walletService.SubmitDeposit(r.Context(), userID, req.Amount, req.ReceiptRef)
	if err != nil {
		switch {
		case errors.Is(err, walletservice.ErrInvalidAmount):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.DepositResponseDTO{
		ID:     deposit.ID,
		Amount: deposit.Amount,
		Status: string(deposit.Status),
	})
}

// GetDeposits godoc
//
//	@Summary		Get deposit history
//	@Tags			Wallets
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.TransactionResponseDTO	"Deposits"
//	@Failure		401	{object}	utils.Response				"User not authorized"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/api/user/deposits [get]
func (h *WalletHandler) GetDeposits(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	deposits, err := h.walletService.GetDeposits(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch deposits")
		return
	}

	response := make([]dto.TransactionResponseDTO, len(deposits))
	for i, tx := range deposits {
		response[i] = dto.TransactionResponseDTO{
			ID:         tx.ID,
			WalletKind: string(tx.WalletKind),
			Type:       string(tx.Type),
			Status:     string(tx.Status),
			Amount:     tx.Amount,
			Reference:  tx.Reference,
			CreatedAt:  tx.CreatedAt,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
