package contractrepo

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/masterbruh1993/mining-trade-finance-sub001/internal/domain"
	"github.com/masterbruh1993/mining-trade-finance-sub001/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func (r *Repository) Create(ctx context.Context, c *domain.Contract) (*domain.Contract, error) {
	query := `
        INSERT INTO contracts (user_id, principal, return_multiple, cadence_days, boundaries, status, start_at, maturity_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id
    `
	err := r.db.QueryRow(ctx, query,
		c.UserID, c.Principal, c.ReturnMultiple, c.CadenceDays, c.Boundaries, c.Status, c.StartAt, c.MaturityAt,
	).Scan(&c.ID)
	if err != nil {
		zap.L().Error("failed to create contract", zap.Error(err))
		return nil, err
	}
	return c, nil
}

func (r *Repository) GetByID(ctx context.Context, id int) (*domain.Contract, error) {
	query := `
        SELECT id, user_id, principal, return_multiple, cadence_days, boundaries, paid_boundaries,
               total_paid_out, status, void_reason, start_at, maturity_at
        FROM contracts
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, id)
	var c domain.Contract
	err := row.Scan(&c.ID, &c.UserID, &c.Principal, &c.ReturnMultiple, &c.CadenceDays, &c.Boundaries,
		&c.PaidBoundaries, &c.TotalPaidOut, &c.Status, &c.VoidReason, &c.StartAt, &c.MaturityAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to get contract", zap.Error(err))
		return nil, err
	}
	return &c, nil
}

func (r *Repository) FindByUserID(ctx context.Context, userID int) ([]domain.Contract, error) {
	query := `
        SELECT id, user_id, principal, return_multiple, cadence_days, boundaries, paid_boundaries,
               total_paid_out, status, void_reason, start_at, maturity_at
        FROM contracts
        WHERE user_id = $1
        ORDER BY start_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("failed to fetch contracts", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var contracts []domain.Contract
	for rows.Next() {
		var c domain.Contract
		err := rows.Scan(&c.ID, &c.UserID, &c.Principal, &c.ReturnMultiple, &c.CadenceDays, &c.Boundaries,
			&c.PaidBoundaries, &c.TotalPaidOut, &c.Status, &c.VoidReason, &c.StartAt, &c.MaturityAt)
		if err != nil {
			zap.L().Error("failed to scan contract row", zap.Error(err))
			return nil, err
		}
		contracts = append(contracts, c)
	}
	return contracts, nil
}

// FindDue returns active contracts whose next unpaid cadence boundary has
// elapsed by now.
func (r *Repository) FindDue(ctx context.Context, now time.Time, limit uint32) ([]domain.Contract, error) {
	query := `
        SELECT id, user_id, principal, return_multiple, cadence_days, boundaries, paid_boundaries,
               total_paid_out, status, void_reason, start_at, maturity_at
        FROM contracts
        WHERE status = 'ACTIVE'
          AND start_at + make_interval(days => (paid_boundaries + 1) * cadence_days) <= $1
        ORDER BY start_at
        LIMIT $2
    `
	rows, err := r.db.Query(ctx, query, now, limit)
	if err != nil {
		zap.L().Error("failed to fetch due contracts", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var contracts []domain.Contract
	for rows.Next() {
		var c domain.Contract
		err := rows.Scan(&c.ID, &c.UserID, &c.Principal, &c.ReturnMultiple, &c.CadenceDays, &c.Boundaries,
			&c.PaidBoundaries, &c.TotalPaidOut, &c.Status, &c.VoidReason, &c.StartAt, &c.MaturityAt)
		if err != nil {
			zap.L().Error("failed to scan contract row", zap.Error(err))
			return nil, err
		}
		contracts = append(contracts, c)
	}
	return contracts, nil
}

// InsertPayout records one cadence-boundary payout. Returns false when the
// boundary was already recorded, which makes repeated crediting a no-op.
func (r *Repository) InsertPayout(ctx context.Context, contractID, boundaryIndex int, amount float64) (bool, error) {
	query := `
        INSERT INTO contract_payouts (contract_id, boundary_index, amount)
        VALUES ($1, $2, $3)
        ON CONFLICT (contract_id, boundary_index) DO NOTHING
    `
	tag, err := r.db.Exec(ctx, query, contractID, boundaryIndex, amount)
	if err != nil {
		zap.L().Error("failed to insert contract payout", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// ApplyPayout brings the paid counters of a still-active contract forward.
// Returns false when the row left ACTIVE concurrently, so a void committed
// mid-run is never overwritten.
func (r *Repository) ApplyPayout(ctx context.Context, contractID, paidBoundaries int, totalPaidOut float64, status domain.ContractStatus) (bool, error) {
	query := `
        UPDATE contracts
        SET paid_boundaries = $1, total_paid_out = $2, status = $3
        WHERE id = $4 AND status = $5
    `
	tag, err := r.db.Exec(ctx, query, paidBoundaries, totalPaidOut, status, contractID, domain.ContractActive)
	if err != nil {
		zap.L().Error("failed to apply contract payout", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// Void terminates an active contract. Returns false when the contract was not
// active, so terminal states stay terminal.
func (r *Repository) Void(ctx context.Context, contractID int, reason string) (bool, error) {
	query := `
        UPDATE contracts
        SET status = $1, void_reason = $2
        WHERE id = $3 AND status = $4
    `
	tag, err := r.db.Exec(ctx, query, domain.ContractVoided, reason, contractID, domain.ContractActive)
	if err != nil {
		zap.L().Error("failed to void contract", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *Repository) SummaryByUser(ctx context.Context, userID int) (activeCount int, activePrincipal float64, completedCount int, err error) {
	query := `
        SELECT count(*) FILTER (WHERE status = 'ACTIVE'),
               COALESCE(sum(principal) FILTER (WHERE status = 'ACTIVE'), 0),
               count(*) FILTER (WHERE status = 'COMPLETED')
        FROM contracts
        WHERE user_id = $1
    `
	err = r.db.QueryRow(ctx, query, userID).Scan(&activeCount, &activePrincipal, &completedCount)
	if err != nil {
		zap.L().Error("failed to get contract summary", zap.Error(err))
		return 0, 0, 0, err
	}
	return activeCount, activePrincipal, completedCount, nil
}

func (r *Repository) PlatformStats(ctx context.Context) (activeCount int, activePrincipal float64, completedCount int, err error) {
	query := `
        SELECT count(*) FILTER (WHERE status = 'ACTIVE'),
               COALESCE(sum(principal) FILTER (WHERE status = 'ACTIVE'), 0),
               count(*) FILTER (WHERE status = 'COMPLETED')
        FROM contracts
    `
	err = r.db.QueryRow(ctx, query).Scan(&activeCount, &activePrincipal, &completedCount)
	if err != nil {
		zap.L().Error("failed to get contract stats", zap.Error(err))
		return 0, 0, 0, err
	}
	return activeCount, activePrincipal, completedCount, nil
}
