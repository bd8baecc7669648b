package encashmentrepo

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/masterbruh1993/mining-trade-finance-sub001/internal/domain"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()
	return repo, mockDB
}

func TestDayMask(t *testing.T) {
	tests := []struct {
		name string
		days []time.Weekday
		mask int
	}{
		{"Weekdays", []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday}, 62},
		{"Weekend", []time.Weekday{time.Sunday, time.Saturday}, 65},
		{"Empty", nil, 0},
		{"Single day", []time.Weekday{time.Wednesday}, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.mask, daysToMask(tt.days))
			assert.Equal(t, tt.days, maskToDays(tt.mask))
		})
	}
}

func TestRepository_GetConfig(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	query := regexp.QuoteMeta(`
        SELECT id, wallet_kind, enabled, start_minute, end_minute, allowed_days,
               override_active, override_expires, updated_at
        FROM encashment_configs
        WHERE wallet_kind = $1
    `)

	t.Run("Mask unpacks into weekdays", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(domain.CreditWallet).
			WillReturnRows(pgxmock.NewRows([]string{"id", "wallet_kind", "enabled", "start_minute", "end_minute",
				"allowed_days", "override_active", "override_expires", "updated_at"}).
				AddRow(1, domain.CreditWallet, true, 480, 1020, 62, false, time.Unix(0, 0).UTC(), now))

		cfg, err := repo.GetConfig(context.Background(), domain.CreditWallet)
		assert.NoError(t, err)
		assert.Equal(t, 480, cfg.StartMinute)
		assert.Equal(t, []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday}, cfg.AllowedDays)
	})

	t.Run("Missing config returns nil", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(domain.PassiveWallet).WillReturnError(pgx.ErrNoRows)

		cfg, err := repo.GetConfig(context.Background(), domain.PassiveWallet)
		assert.NoError(t, err)
		assert.Nil(t, cfg)
	})
}

func TestRepository_UpdateSchedule(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	cfg := &domain.EncashmentConfig{
		WalletKind:  domain.CreditWallet,
		Enabled:     true,
		StartMinute: 540,
		EndMinute:   960,
		AllowedDays: []time.Weekday{time.Monday, time.Wednesday},
	}

	mock.ExpectQuery(regexp.QuoteMeta(`
        UPDATE encashment_configs
        SET enabled = $1, start_minute = $2, end_minute = $3, allowed_days = $4, updated_at = NOW()
        WHERE wallet_kind = $5
        RETURNING id, updated_at
    `)).
		WithArgs(true, 540, 960, 10, domain.CreditWallet).
		WillReturnRows(pgxmock.NewRows([]string{"id", "updated_at"}).AddRow(1, now))

	updated, err := repo.UpdateSchedule(context.Background(), cfg)
	assert.NoError(t, err)
	assert.Equal(t, 1, updated.ID)
}

func TestRepository_SetOverride(t *testing.T) {
	repo, mock := NewMock(t)
	expires := time.Date(2026, 8, 29, 14, 0, 0, 0, time.UTC)

	mock.ExpectExec(regexp.QuoteMeta(`
        UPDATE encashment_configs
        SET override_active = $1, override_expires = $2, updated_at = NOW()
        WHERE wallet_kind = $3
    `)).
		WithArgs(true, expires, domain.PassiveWallet).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.SetOverride(context.Background(), domain.PassiveWallet, true, expires)
	assert.NoError(t, err)
}

func TestRepository_ListAudit(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(`
        SELECT id, actor_id, action, old_value, new_value, created_at
        FROM audit_log
        ORDER BY created_at DESC
        LIMIT $1
    `)).
		WithArgs(uint32(100)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "actor_id", "action", "old_value", "new_value", "created_at"}).
			AddRow(1, 2, "contract.void", "ACTIVE", "VOIDED: fraud", now))

	entries, err := repo.ListAudit(context.Background(), 100)
	assert.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.Equal(t, "contract.void", entries[0].Action)
}
