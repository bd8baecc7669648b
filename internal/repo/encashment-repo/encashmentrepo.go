package encashmentrepo

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/masterbruh1993/mining-trade-finance-sub001/internal/domain"
	"github.com/masterbruh1993/mining-trade-finance-sub001/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

// Allowed weekdays are stored as a bitmask with bit n set for time.Weekday(n).

func daysToMask(days []time.Weekday) int {
	mask := 0
	for _, d := range days {
		mask |= 1 << int(d)
	}
	return mask
}

func maskToDays(mask int) []time.Weekday {
	var days []time.Weekday
	for d := time.Sunday; d <= time.Saturday; d++ {
		if mask&(1<<int(d)) != 0 {
			days = append(days, d)
		}
	}
	return days
}

func (r *Repository) GetConfig(ctx context.Context, kind domain.WalletKind) (*domain.EncashmentConfig, error) {
	query := `
        SELECT id, wallet_kind, enabled, start_minute, end_minute, allowed_days,
               override_active, override_expires, updated_at
        FROM encashment_configs
        WHERE wallet_kind = $1
    `
	row := r.db.QueryRow(ctx, query, kind)
	var cfg domain.EncashmentConfig
	var mask int
	err := row.Scan(&cfg.ID, &cfg.WalletKind, &cfg.Enabled, &cfg.StartMinute, &cfg.EndMinute, &mask,
		&cfg.OverrideActive, &cfg.OverrideExpires, &cfg.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to get encashment config", zap.Error(err))
		return nil, err
	}
	cfg.AllowedDays = maskToDays(mask)
	return &cfg, nil
}

func (r *Repository) UpdateSchedule(ctx context.Context, cfg *domain.EncashmentConfig) (*domain.EncashmentConfig, error) {
	query := `
        UPDATE encashment_configs
        SET enabled = $1, start_minute = $2, end_minute = $3, allowed_days = $4, updated_at = NOW()
        WHERE wallet_kind = $5
        RETURNING id, updated_at
    `
	err := r.db.QueryRow(ctx, query,
		cfg.Enabled, cfg.StartMinute, cfg.EndMinute, daysToMask(cfg.AllowedDays), cfg.WalletKind,
	).Scan(&cfg.ID, &cfg.UpdatedAt)
	if err != nil {
		zap.L().Error("failed to update encashment schedule", zap.Error(err))
		return nil, err
	}
	return cfg, nil
}

func (r *Repository) SetOverride(ctx context.Context, kind domain.WalletKind, active bool, expires time.Time) error {
	query := `
        UPDATE encashment_configs
        SET override_active = $1, override_expires = $2, updated_at = NOW()
        WHERE wallet_kind = $3
    `
	_, err := r.db.Exec(ctx, query, active, expires, kind)
	if err != nil {
		zap.L().Error("failed to set encashment override", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) CreateAudit(ctx context.Context, entry *domain.AuditEntry) error {
	query := `
        INSERT INTO audit_log (actor_id, action, old_value, new_value)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query, entry.ActorID, entry.Action, entry.OldValue, entry.NewValue).
		Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		zap.L().Error("failed to create audit entry", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) ListAudit(ctx context.Context, limit uint32) ([]domain.AuditEntry, error) {
	query := `
        SELECT id, actor_id, action, old_value, new_value, created_at
        FROM audit_log
        ORDER BY created_at DESC
        LIMIT $1
    `
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		zap.L().Error("failed to fetch audit log", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var entries []domain.AuditEntry
	for rows.Next() {
		var e domain.AuditEntry
		if err := rows.Scan(&e.ID, &e.ActorID, &e.Action, &e.OldValue, &e.NewValue, &e.CreatedAt); err != nil {
			zap.L().Error("failed to scan audit row", zap.Error(err))
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}
