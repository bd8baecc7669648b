package encashmentservice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/masterbruh1993/mining-trade-finance-sub001/internal/domain"
)

type Repo interface {
	GetConfig(ctx context.Context, kind domain.WalletKind) (*domain.EncashmentConfig, error)
	UpdateSchedule(ctx context.Context, cfg *domain.EncashmentConfig) (*domain.EncashmentConfig, error)
	SetOverride(ctx context.Context, kind domain.WalletKind, active bool, expires time.Time) error
	CreateAudit(ctx context.Context, entry *domain.AuditEntry) error
}

var (
	ErrConfigNotFound  = errors.New("encashment config not found")
	ErrInvalidSchedule = errors.New("invalid encashment schedule")
	ErrInvalidDuration = errors.New("invalid override duration")
)

const (
	ReasonOverride   = "override"
	ReasonDisabled   = "disabled"
	ReasonDayClosed  = "day not allowed"
	ReasonTimeClosed = "outside window hours"
	ReasonOpen       = "open"
)

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{repo: repo}
}

// Evaluate decides whether withdrawals are allowed under cfg at now. It is a
// pure function of its arguments; callers fetch the config and pass it in.
func Evaluate(cfg *domain.EncashmentConfig, now time.Time) (bool, string) {
	if cfg.OverrideActive && now.Before(cfg.OverrideExpires) {
		return true, ReasonOverride
	}
	if !cfg.Enabled {
		return false, ReasonDisabled
	}

	dayAllowed := false
	for _, d := range cfg.AllowedDays {
		if now.Weekday() == d {
			dayAllowed = true
			break
		}
	}
	if !dayAllowed {
		return false, ReasonDayClosed
	}

	minute := now.Hour()*60 + now.Minute()
	if minute < cfg.StartMinute || minute > cfg.EndMinute {
		return false, ReasonTimeClosed
	}
	return true, ReasonOpen
}

func (s *Service) GetConfig(ctx context.Context, kind domain.WalletKind) (*domain.EncashmentConfig, error) {
	cfg, err := s.repo.GetConfig(ctx, kind)
	if err != nil {
		zap.L().Error("failed to get encashment config", zap.Error(err))
		return nil, err
	}
	if cfg == nil {
		return nil, ErrConfigNotFound
	}
	return cfg, nil
}

// Status reports the current policy decision plus the settings it was made
// from.
func (s *Service) Status(ctx context.Context, kind domain.WalletKind, now time.Time) (*domain.EncashmentConfig, bool, string, error) {
	cfg, err := s.GetConfig(ctx, kind)
	if err != nil {
		return nil, false, "", err
	}
	allowed, reason := Evaluate(cfg, now)
	return cfg, allowed, reason, nil
}

func (s *Service) UpdateSchedule(ctx context.Context, actorID int, kind domain.WalletKind, startMinute, endMinute int, enabled bool, allowedDays []time.Weekday) (*domain.EncashmentConfig, error) {
	if startMinute < 0 || endMinute > 24*60-1 || startMinute >= endMinute {
		return nil, ErrInvalidSchedule
	}
	seen := map[time.Weekday]bool{}
	for _, d := range allowedDays {
		if d < time.Sunday || d > time.Saturday || seen[d] {
			return nil, ErrInvalidSchedule
		}
		seen[d] = true
	}

	old, err := s.GetConfig(ctx, kind)
	if err != nil {
		return nil, err
	}

	updated := &domain.EncashmentConfig{
		WalletKind:      kind,
		Enabled:         enabled,
		StartMinute:     startMinute,
		EndMinute:       endMinute,
		AllowedDays:     allowedDays,
		OverrideActive:  old.OverrideActive,
		OverrideExpires: old.OverrideExpires,
	}
	updated, err = s.repo.UpdateSchedule(ctx, updated)
	if err != nil {
		zap.L().Error("failed to update encashment schedule", zap.Error(err))
		return nil, err
	}

	s.audit(ctx, actorID, fmt.Sprintf("encashment.%s.schedule", kind), old, updated)
	return updated, nil
}

// ActivateOverride opens withdrawals for the wallet kind regardless of the
// weekly schedule until now + duration.
func (s *Service) ActivateOverride(ctx context.Context, actorID int, kind domain.WalletKind, duration time.Duration, now time.Time) (*domain.EncashmentConfig, error) {
	if duration <= 0 {
		return nil, ErrInvalidDuration
	}

	old, err := s.GetConfig(ctx, kind)
	if err != nil {
		return nil, err
	}

	expires := now.Add(duration)
	if err := s.repo.SetOverride(ctx, kind, true, expires); err != nil {
		zap.L().Error("failed to activate encashment override", zap.Error(err))
		return nil, err
	}

	updated := *old
	updated.OverrideActive = true
	updated.OverrideExpires = expires
	s.audit(ctx, actorID, fmt.Sprintf("encashment.%s.override.on", kind), old, &updated)

	zap.L().Info("encashment override activated",
		zap.String("walletKind", string(kind)),
		zap.Int("adminID", actorID),
		zap.Time("expires", expires),
	)
	return &updated, nil
}

func (s *Service) DeactivateOverride(ctx context.Context, actorID int, kind domain.WalletKind) error {
	old, err := s.GetConfig(ctx, kind)
	if err != nil {
		return err
	}

	if err := s.repo.SetOverride(ctx, kind, false, time.Unix(0, 0).UTC()); err != nil {
		zap.L().Error("failed to deactivate encashment override", zap.Error(err))
		return err
	}

	updated := *old
	updated.OverrideActive = false
	updated.OverrideExpires = time.Unix(0, 0).UTC()
	s.audit(ctx, actorID, fmt.Sprintf("encashment.%s.override.off", kind), old, &updated)

	zap.L().Info("encashment override deactivated",
		zap.String("walletKind", string(kind)),
		zap.Int("adminID", actorID),
	)
	return nil
}

func (s *Service) audit(ctx context.Context, actorID int, action string, old, updated *domain.EncashmentConfig) {
	oldJSON, _ := json.Marshal(old)
	newJSON, _ := json.Marshal(updated)
	err := s.repo.CreateAudit(ctx, &domain.AuditEntry{
		ActorID:  actorID,
		Action:   action,
		OldValue: string(oldJSON),
		NewValue: string(newJSON),
	})
	if err != nil {
		zap.L().Error("failed to write audit entry", zap.Error(err))
	}
}
