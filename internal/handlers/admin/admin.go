package admin

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/masterbruh1993/mining-trade-finance-sub001/internal/domain"
	"github.com/masterbruh1993/mining-trade-finance-sub001/internal/dto"
	encashmenthandlers "github.com/masterbruh1993/mining-trade-finance-sub001/internal/handlers/encashment"
	"github.com/masterbruh1993/mining-trade-finance-sub001/internal/service/adminservice"
	"github.com/masterbruh1993/mining-trade-finance-sub001/internal/service/contractservice"
	"github.com/masterbruh1993/mining-trade-finance-sub001/internal/service/encashmentservice"
	"github.com/masterbruh1993/mining-trade-finance-sub001/internal/service/walletservice"
	"github.com/masterbruh1993/mining-trade-finance-sub001/internal/service/withdrawalservice"
	"github.com/masterbruh1993/mining-trade-finance-sub001/pkg/auth"
	"github.com/masterbruh1993/mining-trade-finance-sub001/pkg/utils"
)

type DepositService interface {
	ApproveDeposit(ctx context.Context, depositID, adminID int) (*domain.Wallet, error)
	RejectDeposit(ctx context.Context, depositID, adminID int) error
}

type WithdrawalService interface {
	ListByStatus(ctx context.Context, status domain.WithdrawalStatus) ([]domain.WithdrawalRequest, error)
	Resolve(ctx context.Context, requestID int, action withdrawalservice.ResolveAction, adminID int, remarks string, now time.Time) (*domain.WithdrawalRequest, error)
}

type ContractService interface {
	Void(ctx context.Context, contractID, adminID int, reason string) error
}

type EncashmentService interface {
	UpdateSchedule(ctx context.Context, actorID int, kind domain.WalletKind, startMinute, endMinute int, enabled bool, allowedDays []time.Weekday) (*domain.EncashmentConfig, error)
	ActivateOverride(ctx context.Context, actorID int, kind domain.WalletKind, duration time.Duration, now time.Time) (*domain.EncashmentConfig, error)
	DeactivateOverride(ctx context.Context, actorID int, kind domain.WalletKind) error
}

type OversightService interface {
	GetSummary(ctx context.Context) (*adminservice.Summary, error)
	GetAuditLog(ctx context.Context, limit uint32) ([]domain.AuditEntry, error)
}

type AdminHandler struct {
	depositService    DepositService
	withdrawalService WithdrawalService
	contractService   ContractService
	encashmentService EncashmentService
	oversightService  OversightService
}

func New(deposits DepositService, withdrawals WithdrawalService, contracts ContractService, encashment EncashmentService, oversight OversightService) *AdminHandler {
	return &AdminHandler{
		depositService:    deposits,
		withdrawalService: withdrawals,
		contractService:   contracts,
		encashmentService: encashment,
		oversightService:  oversight,
	}
}

func urlID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	return id, err == nil && id > 0
}

// ApproveDeposit godoc
//
//	@Summary		Approve a pending deposit
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int				true	"Deposit transaction ID"
//	@Success		200	{object}	utils.Response	"Deposit approved"
//	@Failure		404	{object}	utils.Response	"Deposit not found"
//	@Failure		409	{object}	utils.Response	"Already resolved"
//	@Router			/api/admin/deposits/{id}/approve [post]
func (h *AdminHandler) ApproveDeposit(w http.ResponseWriter, r *http.Request) {
	adminID := r.Context().Value(auth.UserIDKey).(int)
	id, ok := urlID(r)
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid deposit id")
		return
	}

	if _, err := h.depositService.ApproveDeposit(r.Context(), id, adminID); err != nil {
		switch {
		case errors.Is(err, walletservice.ErrDepositNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, walletservice.ErrAlreadyResolved):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "deposit approved"})
}

// RejectDeposit godoc
//
//	@Summary		Reject a pending deposit
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int				true	"Deposit transaction ID"
//	@Success		200	{object}	utils.Response	"Deposit rejected"
//	@Failure		404	{object}	utils.Response	"Deposit not found"
//	@Failure		409	{object}	utils.Response	"Already resolved"
//	@Router			/api/admin/deposits/{id}/reject [post]
func (h *AdminHandler) RejectDeposit(w http.ResponseWriter, r *http.Request) {
	adminID := r.Context().Value(auth.UserIDKey).(int)
	id, ok := urlID(r)
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid deposit id")
		return
	}

	if err := h.depositService.RejectDeposit(r.Context(), id, adminID); err != nil {
		switch {
		case errors.Is(err, walletservice.ErrDepositNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, walletservice.ErrAlreadyResolved):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "deposit rejected"})
}

// ListWithdrawals godoc
//
//	@Summary		List withdrawal requests
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			status	query		string	false	"Filter by status"	Enums(PENDING, COMPLETED, CANCELLED, REJECTED)
//	@Success		200		{array}		dto.WithdrawalResponseDTO
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/withdrawals [get]
func (h *AdminHandler) ListWithdrawals(w http.ResponseWriter, r *http.Request) {
	status := domain.WithdrawalStatus(r.URL.Query().Get("status"))

	requests, err := h.withdrawalService.ListByStatus(r.Context(), status)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to list withdrawals")
		return
	}

	response := make([]dto.WithdrawalResponseDTO, len(requests))
	for i, wr := range requests {
		response[i] = dto.WithdrawalResponseDTO{
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
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// ResolveWithdrawal godoc
//
//	@Summary		Resolve a pending withdrawal
//	@Description	Mark as paid (debits the wallet), cancel or reject the request.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int								true	"Request ID"
//	@Param			request	body		dto.ResolveWithdrawalRequestDTO	true	"Resolution payload"
//	@Success		200		{object}	dto.WithdrawalResponseDTO
//	@Failure		402		{object}	utils.Response	"Insufficient balance at resolve time"
//	@Failure		404		{object}	utils.Response	"Request not found"
//	@Failure		409		{object}	utils.Response	"Already resolved"
//	@Router			/api/admin/withdrawals/{id}/resolve [post]
func (h *AdminHandler) ResolveWithdrawal(w http.ResponseWriter, r *http.Request) {
	adminID := r.Context().Value(auth.UserIDKey).(int)
	id, ok := urlID(r)
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request id")
		return
	}

	var req dto.ResolveWithdrawalRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resolved, err := h.withdrawalService.Resolve(
		r.Context(), id, withdrawalservice.ResolveAction(req.Action), adminID, req.Remarks, time.Now(),
	)
	if err != nil {
		switch {
		case errors.Is(err, withdrawalservice.ErrNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, withdrawalservice.ErrAlreadyResolved):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, withdrawalservice.ErrInsufficientBalance):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		case errors.Is(err, withdrawalservice.ErrInvalidAction):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.WithdrawalResponseDTO{
		ID:          resolved.ID,
		WalletKind:  string(resolved.WalletKind),
		Amount:      resolved.Amount,
		Fee:         resolved.Fee,
		NetAmount:   resolved.NetAmount,
		Method:      string(resolved.Method),
		Status:      string(resolved.Status),
		Remarks:     resolved.Remarks,
		RequestedAt: resolved.RequestedAt,
		ProcessedAt: resolved.ProcessedAt,
	})
}

// VoidContract godoc
//
//	@Summary		Void an active contract
//	@Description	Terminate the contract; payouts already credited stay in the ledger.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"Contract ID"
//	@Param			request	body		dto.VoidContractRequestDTO	true	"Void payload"
//	@Success		200		{object}	utils.Response	"Contract voided"
//	@Failure		404		{object}	utils.Response	"Contract not found"
//	@Failure		409		{object}	utils.Response	"Contract not active"
//	@Router			/api/admin/contracts/{id}/void [post]
func (h *AdminHandler) VoidContract(w http.ResponseWriter, r *http.Request) {
	adminID := r.Context().Value(auth.UserIDKey).(int)
	id, ok := urlID(r)
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid contract id")
		return
	}

	var req dto.VoidContractRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.contractService.Void(r.Context(), id, adminID, req.Reason); err != nil {
		switch {
		case errors.Is(err, contractservice.ErrContractNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, contractservice.ErrContractNotActive):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "contract voided"})
}

// UpdateSchedule godoc
//
//	@Summary		Replace an encashment weekly schedule
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			kind	path		string						true	"Wallet kind"	Enums(CREDIT, PASSIVE)
//	@Param			request	body		dto.UpdateScheduleRequestDTO	true	"Schedule payload"
//	@Success		200		{object}	dto.EncashmentSettingsDTO
//	@Failure		422		{object}	utils.Response	"Invalid schedule"
//	@Router			/api/admin/encashment/{kind} [put]
func (h *AdminHandler) UpdateSchedule(w http.ResponseWriter, r *http.Request) {
	adminID := r.Context().Value(auth.UserIDKey).(int)
	kind := domain.WalletKind(chi.URLParam(r, "kind"))
	if !kind.Valid() {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "invalid wallet kind")
		return
	}

	var req dto.UpdateScheduleRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	startMinute, err := encashmentservice.ParseClock(req.StartTime)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	endMinute, err := encashmentservice.ParseClock(req.EndTime)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	days := make([]time.Weekday, len(req.AllowedDays))
	for i, d := range req.AllowedDays {
		days[i] = time.Weekday(d)
	}

	cfg, err := h.encashmentService.UpdateSchedule(r.Context(), adminID, kind, startMinute, endMinute, req.Enabled, days)
	if err != nil {
		switch {
		case errors.Is(err, encashmentservice.ErrInvalidSchedule):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, encashmentservice.ErrConfigNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, encashmenthandlers.SettingsDTO(cfg))
}

// ActivateOverride godoc
//
//	@Summary		Open withdrawals outside the weekly schedule
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			kind	path		string							true	"Wallet kind"	Enums(CREDIT, PASSIVE)
//	@Param			request	body		dto.ActivateOverrideRequestDTO	true	"Override payload"
//	@Success		200		{object}	dto.EncashmentSettingsDTO
//	@Failure		422		{object}	utils.Response	"Invalid duration"
//	@Router			/api/admin/encashment/{kind}/override [post]
func (h *AdminHandler) ActivateOverride(w http.ResponseWriter, r *http.Request) {
	adminID := r.Context().Value(auth.UserIDKey).(int)
	kind := domain.WalletKind(chi.URLParam(r, "kind"))
	if !kind.Valid() {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "invalid wallet kind")
		return
	}

	var req dto.ActivateOverrideRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var duration time.Duration
	switch req.Unit {
	case "minutes":
		duration = time.Duration(req.Duration) * time.Minute
	case "hours":
		duration = time.Duration(req.Duration) * time.Hour
	default:
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "unit must be minutes or hours")
		return
	}

	cfg, err := h.encashmentService.ActivateOverride(r.Context(), adminID, kind, duration, time.Now())
	if err != nil {
		switch {
		case errors.Is(err, encashmentservice.ErrInvalidDuration):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, encashmentservice.ErrConfigNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, encashmenthandlers.SettingsDTO(cfg))
}

// DeactivateOverride godoc
//
//	@Summary		Close an active encashment override
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			kind	path		string			true	"Wallet kind"	Enums(CREDIT, PASSIVE)
//	@Success		200		{object}	utils.Response	"Override deactivated"
//	@Router			/api/admin/encashment/{kind}/override [delete]
func (h *AdminHandler) DeactivateOverride(w http.ResponseWriter, r *http.Request) {
	adminID := r.Context().Value(auth.UserIDKey).(int)
	kind := domain.WalletKind(chi.URLParam(r, "kind"))
	if !kind.Valid() {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "invalid wallet kind")
		return
	}

	if err := h.encashmentService.DeactivateOverride(r.Context(), adminID, kind); err != nil {
		if errors.Is(err, encashmentservice.ErrConfigNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "override deactivated"})
}

// GetSummary godoc
//
//	@Summary		Platform summary
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.AdminSummaryResponseDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/summary [get]
func (h *AdminHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.oversightService.GetSummary(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.AdminSummaryResponseDTO{
		Users:              summary.Users,
		ActiveContracts:    summary.ActiveContracts,
		PrincipalInForce:   summary.PrincipalInForce,
		CompletedContracts: summary.CompletedContracts,
		PendingWithdrawals: summary.PendingWithdrawals,
		TotalPaidOut:       summary.TotalPaidOut,
	})
}

// GetAuditLog godoc
//
//	@Summary		Recent admin activity
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			limit	query		int	false	"Max entries (default 100)"
//	@Success		200		{array}		dto.AuditEntryResponseDTO
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/audit [get]
func (h *AdminHandler) GetAuditLog(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	entries, err := h.oversightService.GetAuditLog(r.Context(), uint32(limit))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.AuditEntryResponseDTO, len(entries))
	for i, e := range entries {
		response[i] = dto.AuditEntryResponseDTO{
			ID:        e.ID,
			ActorID:   e.ActorID,
			Action:    e.Action,
			OldValue:  e.OldValue,
			NewValue:  e.NewValue,
			CreatedAt: e.CreatedAt,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
