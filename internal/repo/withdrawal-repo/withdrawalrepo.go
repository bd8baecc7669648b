package withdrawalrepo

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

func (r *Repository) Create(ctx context.Context, wr *domain.WithdrawalRequest) (*domain.WithdrawalRequest, error) {
	query := `
        INSERT INTO withdrawal_requests (user_id, wallet_kind, amount, fee, net_amount, method, account_details, status, requested_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        RETURNING id
    `
	err := r.db.QueryRow(ctx, query,
		wr.UserID, wr.WalletKind, wr.Amount, wr.Fee, wr.NetAmount, wr.Method, wr.AccountDetails, wr.Status, wr.RequestedAt,
	).Scan(&wr.ID)
	if err != nil {
		zap.L().Error("can't save withdrawal request", zap.Error(err))
		return nil, err
	}
	return wr, nil
}

func (r *Repository) GetByID(ctx context.Context, id int) (*domain.WithdrawalRequest, error) {
	query := `
        SELECT id, user_id, wallet_kind, amount, fee, net_amount, method, account_details,
               status, remarks, processed_by, processed_at, requested_at
        FROM withdrawal_requests
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, id)
	var wr domain.WithdrawalRequest
	err := row.Scan(&wr.ID, &wr.UserID, &wr.WalletKind, &wr.Amount, &wr.Fee, &wr.NetAmount, &wr.Method,
		&wr.AccountDetails, &wr.Status, &wr.Remarks, &wr.ProcessedBy, &wr.ProcessedAt, &wr.RequestedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to get withdrawal request", zap.Error(err))
		return nil, err
	}
	return &wr, nil
}

func (r *Repository) FindByUserID(ctx context.Context, userID int) ([]domain.WithdrawalRequest, error) {
	query := `
        SELECT id, user_id, wallet_kind, amount, fee, net_amount, method, account_details,
               status, remarks, processed_by, processed_at, requested_at
        FROM withdrawal_requests
        WHERE user_id = $1
        ORDER BY requested_at DESC
    `
	return r.queryMany(ctx, query, userID)
}

// FindByStatus lists requests in the given status; an empty status lists all.
func (r *Repository) FindByStatus(ctx context.Context, status domain.WithdrawalStatus) ([]domain.WithdrawalRequest, error) {
	if status == "" {
		query := `
            SELECT id, user_id, wallet_kind, amount, fee, net_amount, method, account_details,
                   status, remarks, processed_by, processed_at, requested_at
            FROM withdrawal_requests
            ORDER BY requested_at DESC
        `
		return r.queryMany(ctx, query)
	}
	query := `
        SELECT id, user_id, wallet_kind, amount, fee, net_amount, method, account_details,
               status, remarks, processed_by, processed_at, requested_at
        FROM withdrawal_requests
        WHERE status = $1
        ORDER BY requested_at DESC
    `
	return r.queryMany(ctx, query, status)
}

func (r *Repository) queryMany(ctx context.Context, query string, args ...any) ([]domain.WithdrawalRequest, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("failed to fetch withdrawal requests", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var requests []domain.WithdrawalRequest
	for rows.Next() {
		var wr domain.WithdrawalRequest
		err := rows.Scan(&wr.ID, &wr.UserID, &wr.WalletKind, &wr.Amount, &wr.Fee, &wr.NetAmount, &wr.Method,
			&wr.AccountDetails, &wr.Status, &wr.Remarks, &wr.ProcessedBy, &wr.ProcessedAt, &wr.RequestedAt)
		if err != nil {
			zap.L().Error("failed to scan withdrawal row", zap.Error(err))
			return nil, err
		}
		requests = append(requests, wr)
	}
	return requests, nil
}

// HasPendingOn reports whether the user already holds the pending slot for the
// wallet kind on the given calendar day (UTC).
func (r *Repository) HasPendingOn(ctx context.Context, userID int, kind domain.WalletKind, day time.Time) (bool, error) {
	query := `
        SELECT EXISTS (
            SELECT 1 FROM withdrawal_requests
            WHERE user_id = $1 AND wallet_kind = $2 AND status = 'PENDING'
              AND (requested_at AT TIME ZONE 'UTC')::date = $3::date
        )
    `
	var exists bool
	err := r.db.QueryRow(ctx, query, userID, kind, day.UTC()).Scan(&exists)
	if err != nil {
		zap.L().Error("failed to check pending withdrawal", zap.Error(err))
		return false, err
	}
	return exists, nil
}

// MarkResolved finalizes a pending request. Returns false when the request was
// already resolved, so a second resolution cannot double-debit.
func (r *Repository) MarkResolved(ctx context.Context, id int, status domain.WithdrawalStatus, adminID int, remarks string, processedAt time.Time) (bool, error) {
	query := `
        UPDATE withdrawal_requests
        SET status = $1, remarks = $2, processed_by = $3, processed_at = $4
        WHERE id = $5 AND status = 'PENDING'
    `
	tag, err := r.db.Exec(ctx, query, status, remarks, adminID, processedAt, id)
	if err != nil {
		zap.L().Error("failed to resolve withdrawal request", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *Repository) CountByStatus(ctx context.Context, status domain.WithdrawalStatus) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT count(*) FROM withdrawal_requests WHERE status = $1`, status).Scan(&count)
	if err != nil {
		zap.L().Error("failed to count withdrawal requests", zap.Error(err))
		return 0, err
	}
	return count, nil
}
