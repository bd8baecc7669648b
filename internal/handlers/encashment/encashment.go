package encashment

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/masterbruh1993/mining-trade-finance-sub001/internal/domain"
	"github.com/masterbruh1993/mining-trade-finance-sub001/internal/dto"
	"github.com/masterbruh1993/mining-trade-finance-sub001/internal/service/encashmentservice"
	"github.com/masterbruh1993/mining-trade-finance-sub001/pkg/utils"
)

type Service interface {
	Status(ctx context.Context, kind domain.WalletKind, now time.Time) (*domain.EncashmentConfig, bool, string, error)
}

type EncashmentHandler struct {
	encashmentService Service
}

func New(encashmentService Service) *EncashmentHandler {
	return &EncashmentHandler{
		encashmentService: encashmentService,
	}
}

// SettingsDTO builds the wire representation of a window config.
func SettingsDTO(cfg *domain.EncashmentConfig) dto.EncashmentSettingsDTO {
	days := make([]int, len(cfg.AllowedDays))
	for i, d := range cfg.AllowedDays {
		days[i] = int(d)
	}
	settings := dto.EncashmentSettingsDTO{
		Enabled:        cfg.Enabled,
		StartTime:      encashmentservice.FormatClock(cfg.StartMinute),
		EndTime:        encashmentservice.FormatClock(cfg.EndMinute),
		AllowedDays:    days,
		OverrideActive: cfg.OverrideActive,
	}
	if cfg.OverrideActive {
		settings.OverrideExpires = cfg.OverrideExpires.Format(time.RFC3339)
	}
	return settings
}

// GetStatus godoc
//
//	@Summary		Get encashment window status
//	@Description	Report whether withdrawals are currently allowed for the wallet kind, with the reason and the active settings. Safe to poll.
//	@Tags			Encashment
//	@Security		BearerAuth
//	@Produce		json
//	@Param			kind	path		string								true	"Wallet kind"	Enums(CREDIT, PASSIVE)
//	@Success		200		{object}	dto.EncashmentStatusResponseDTO	"Window status"
//	@Failure		401		{object}	utils.Response						"User not authorized"
//	@Failure		422		{object}	utils.Response						"Invalid wallet kind"
//	@Failure		500		{object}	utils.Response						"Internal server error"
//	@Router			/api/user/encashment/{kind} [get]
func (h *EncashmentHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	kind := domain.WalletKind(chi.URLParam(r, "kind"))
	if !kind.Valid() {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "invalid wallet kind")
		return
	}

	cfg, allowed, reason, err := h.encashmentService.Status(r.Context(), kind, time.Now())
	if err != nil {
		if errors.Is(err, encashmentservice.ErrConfigNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.EncashmentStatusResponseDTO{
		WalletKind: string(kind),
		IsAllowed:  allowed,
		Reason:     reason,
		Settings:   SettingsDTO(cfg),
	})
}
