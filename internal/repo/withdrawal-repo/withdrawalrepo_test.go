package withdrawalrepo

import (
	"context"
	"errors"
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

var withdrawalColumns = []string{"id", "user_id", "wallet_kind", "amount", "fee", "net_amount", "method",
	"account_details", "status", "remarks", "processed_by", "processed_at", "requested_at"}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Date(2026, 8, 24, 10, 0, 0, 0, time.UTC)
	request := &domain.WithdrawalRequest{
		UserID:         1,
		WalletKind:     domain.CreditWallet,
		Amount:         500,
		Fee:            50,
		NetAmount:      450,
		Method:         domain.MethodGCash,
		AccountDetails: "09171234567",
		Status:         domain.WithdrawalPending,
		RequestedAt:    now,
	}

	t.Run("Successfully creates request", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`
        INSERT INTO withdrawal_requests (user_id, wallet_kind, amount, fee, net_amount, method, account_details, status, requested_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        RETURNING id
    `)).
			WithArgs(1, domain.CreditWallet, 500.0, 50.0, 450.0, domain.MethodGCash, "09171234567", domain.WithdrawalPending, now).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(5))

		result, err := repo.Create(context.Background(), request)
		assert.NoError(t, err)
		assert.Equal(t, 5, result.ID)
	})

	t.Run("Unique daily slot violation surfaces", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO withdrawal_requests`)).
			WithArgs(1, domain.CreditWallet, 500.0, 50.0, 450.0, domain.MethodGCash, "09171234567", domain.WithdrawalPending, now).
			WillReturnError(errors.New("duplicate key value violates unique constraint"))

		_, err := repo.Create(context.Background(), request)
		assert.Error(t, err)
	})
}

func TestRepository_GetByID(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Date(2026, 8, 24, 10, 0, 0, 0, time.UTC)
	query := regexp.QuoteMeta(`
        SELECT id, user_id, wallet_kind, amount, fee, net_amount, method, account_details,
               status, remarks, processed_by, processed_at, requested_at
        FROM withdrawal_requests
        WHERE id = $1
    `)

	t.Run("Existing request", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(5).
			WillReturnRows(pgxmock.NewRows(withdrawalColumns).
				AddRow(5, 1, domain.CreditWallet, 500.0, 50.0, 450.0, domain.MethodGCash,
					"09171234567", domain.WithdrawalPending, "", nil, nil, now))

		wr, err := repo.GetByID(context.Background(), 5)
		assert.NoError(t, err)
		assert.Equal(t, 450.0, wr.NetAmount)
		assert.Nil(t, wr.ProcessedBy)
	})

	t.Run("Missing request returns nil", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(99).WillReturnError(pgx.ErrNoRows)

		wr, err := repo.GetByID(context.Background(), 99)
		assert.NoError(t, err)
		assert.Nil(t, wr)
	})
}

func TestRepository_HasPendingOn(t *testing.T) {
	repo, mock := NewMock(t)
	day := time.Date(2026, 8, 24, 10, 0, 0, 0, time.UTC)
	query := regexp.QuoteMeta(`
        SELECT EXISTS (
            SELECT 1 FROM withdrawal_requests
            WHERE user_id = $1 AND wallet_kind = $2 AND status = 'PENDING'
              AND (requested_at AT TIME ZONE 'UTC')::date = $3::date
        )
    `)

	tests := []struct {
		name     string
		exists   bool
		expected bool
	}{
		{"Slot taken", true, true},
		{"Slot free", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock.ExpectQuery(query).
				WithArgs(1, domain.CreditWallet, day).
				WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(tt.exists))

			taken, err := repo.HasPendingOn(context.Background(), 1, domain.CreditWallet, day)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, taken)
		})
	}
}

func TestRepository_MarkResolved(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Date(2026, 8, 24, 11, 0, 0, 0, time.UTC)
	query := regexp.QuoteMeta(`
        UPDATE withdrawal_requests
        SET status = $1, remarks = $2, processed_by = $3, processed_at = $4
        WHERE id = $5 AND status = 'PENDING'
    `)

	t.Run("Pending request resolved", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(domain.WithdrawalCompleted, "sent via gcash", 2, now, 5).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		ok, err := repo.MarkResolved(context.Background(), 5, domain.WithdrawalCompleted, 2, "sent via gcash", now)
		assert.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("Second resolution is a no-op", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(domain.WithdrawalCompleted, "sent via gcash", 2, now, 5).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		ok, err := repo.MarkResolved(context.Background(), 5, domain.WithdrawalCompleted, 2, "sent via gcash", now)
		assert.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestRepository_FindByStatus(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Date(2026, 8, 24, 10, 0, 0, 0, time.UTC)

	t.Run("Filtered by status", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`WHERE status = $1`)).
			WithArgs(domain.WithdrawalPending).
			WillReturnRows(pgxmock.NewRows(withdrawalColumns).
				AddRow(5, 1, domain.CreditWallet, 500.0, 50.0, 450.0, domain.MethodGCash,
					"09171234567", domain.WithdrawalPending, "", nil, nil, now))

		requests, err := repo.FindByStatus(context.Background(), domain.WithdrawalPending)
		assert.NoError(t, err)
		assert.Len(t, requests, 1)
	})

	t.Run("Empty status lists all", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`FROM withdrawal_requests`)).
			WillReturnRows(pgxmock.NewRows(withdrawalColumns).
				AddRow(5, 1, domain.CreditWallet, 500.0, 50.0, 450.0, domain.MethodGCash,
					"09171234567", domain.WithdrawalPending, "", nil, nil, now).
				AddRow(6, 2, domain.PassiveWallet, 200.0, 20.0, 180.0, domain.MethodMaya,
					"09170000000", domain.WithdrawalCompleted, "", nil, nil, now))

		requests, err := repo.FindByStatus(context.Background(), "")
		assert.NoError(t, err)
		assert.Len(t, requests, 2)
	})
}

func TestRepository_CountByStatus(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM withdrawal_requests WHERE status = $1`)).
		WithArgs(domain.WithdrawalPending).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(7))

	count, err := repo.CountByStatus(context.Background(), domain.WithdrawalPending)
	assert.NoError(t, err)
	assert.Equal(t, 7, count)
}
