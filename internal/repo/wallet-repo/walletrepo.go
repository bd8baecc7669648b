package walletrepo

import (
	"context"

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

// CreateWallets inserts a zero-balance wallet of each kind for the user.
func (r *Repository) CreateWallets(ctx context.Context, userID int) error {
	query := `
        INSERT INTO wallets (user_id, kind, balance)
        VALUES ($1, $2, 0), ($1, $3, 0)
    `
	_, err := r.db.Exec(ctx, query, userID, domain.CreditWallet, domain.PassiveWallet)
	if err != nil {
		zap.L().Error("failed to create wallets", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) GetWallet(ctx context.Context, userID int, kind domain.WalletKind) (*domain.Wallet, error) {
	query := `
        SELECT id, user_id, kind, balance
        FROM wallets
        WHERE user_id = $1 AND kind = $2
    `
	row := r.db.QueryRow(ctx, query, userID, kind)
	var wallet domain.Wallet
	err := row.Scan(&wallet.ID, &wallet.UserID, &wallet.Kind, &wallet.Balance)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to get wallet", zap.Error(err))
		return nil, err
	}
	return &wallet, nil
}

func (r *Repository) GetWallets(ctx context.Context, userID int) ([]domain.Wallet, error) {
	query := `
        SELECT id, user_id, kind, balance
        FROM wallets
        WHERE user_id = $1
        ORDER BY kind
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("failed to fetch wallets", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var wallets []domain.Wallet
	for rows.Next() {
		var w domain.Wallet
		if err := rows.Scan(&w.ID, &w.UserID, &w.Kind, &w.Balance); err != nil {
			zap.L().Error("failed to scan wallet row", zap.Error(err))
			return nil, err
		}
		wallets = append(wallets, w)
	}
	return wallets, nil
}

func (r *Repository) Credit(ctx context.Context, userID int, kind domain.WalletKind, amount float64) (*domain.Wallet, error) {
	query := `
        UPDATE wallets
        SET balance = balance + $1
        WHERE user_id = $2 AND kind = $3
        RETURNING id, user_id, kind, balance
    `
	row := r.db.QueryRow(ctx, query, amount, userID, kind)
	var wallet domain.Wallet
	err := row.Scan(&wallet.ID, &wallet.UserID, &wallet.Kind, &wallet.Balance)
	if err != nil {
		zap.L().Error("failed to credit wallet", zap.Error(err))
		return nil, err
	}
	return &wallet, nil
}

// Debit decrements the balance only when it covers the amount; returns nil
// when it does not, so concurrent debits cannot overdraw the wallet.
func (r *Repository) Debit(ctx context.Context, userID int, kind domain.WalletKind, amount float64) (*domain.Wallet, error) {
	query := `
        UPDATE wallets
        SET balance = balance - $1
        WHERE user_id = $2 AND kind = $3 AND balance >= $1
        RETURNING id, user_id, kind, balance
    `
	row := r.db.QueryRow(ctx, query, amount, userID, kind)
	var wallet domain.Wallet
	err := row.Scan(&wallet.ID, &wallet.UserID, &wallet.Kind, &wallet.Balance)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to debit wallet", zap.Error(err))
		return nil, err
	}
	return &wallet, nil
}

func (r *Repository) CreateTransaction(ctx context.Context, tx *domain.Transaction) (*domain.Transaction, error) {
	query := `
        INSERT INTO transactions (user_id, wallet_kind, type, status, amount, reference, description)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query, tx.UserID, tx.WalletKind, tx.Type, tx.Status, tx.Amount, tx.Reference, tx.Description).
		Scan(&tx.ID, &tx.CreatedAt)
	if err != nil {
		zap.L().Error("failed to create transaction", zap.Error(err))
		return nil, err
	}
	return tx, nil
}

func (r *Repository) GetTransactionByID(ctx context.Context, id int) (*domain.Transaction, error) {
	query := `
        SELECT id, user_id, wallet_kind, type, status, amount, reference, description, created_at
        FROM transactions
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, id)
	var tx domain.Transaction
	err := row.Scan(&tx.ID, &tx.UserID, &tx.WalletKind, &tx.Type, &tx.Status, &tx.Amount, &tx.Reference, &tx.Description, &tx.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to get transaction", zap.Error(err))
		return nil, err
	}
	return &tx, nil
}

func (r *Repository) GetTransactionsByUserID(ctx context.Context, userID int) ([]domain.Transaction, error) {
	query := `
        SELECT id, user_id, wallet_kind, type, status, amount, reference, description, created_at
        FROM transactions
        WHERE user_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("failed to fetch transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var txs []domain.Transaction
	for rows.Next() {
		var tx domain.Transaction
		err := rows.Scan(&tx.ID, &tx.UserID, &tx.WalletKind, &tx.Type, &tx.Status, &tx.Amount, &tx.Reference, &tx.Description, &tx.CreatedAt)
		if err != nil {
			zap.L().Error("failed to scan transaction row", zap.Error(err))
			return nil, err
		}
		txs = append(txs, tx)
	}
	return txs, nil
}

func (r *Repository) FindTransactions(ctx context.Context, userID int, txType domain.TransactionType) ([]domain.Transaction, error) {
	query := `
        SELECT id, user_id, wallet_kind, type, status, amount, reference, description, created_at
        FROM transactions
        WHERE user_id = $1 AND type = $2
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID, txType)
	if err != nil {
		zap.L().Error("failed to fetch transactions by type", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var txs []domain.Transaction
	for rows.Next() {
		var tx domain.Transaction
		err := rows.Scan(&tx.ID, &tx.UserID, &tx.WalletKind, &tx.Type, &tx.Status, &tx.Amount, &tx.Reference, &tx.Description, &tx.CreatedAt)
		if err != nil {
			zap.L().Error("failed to scan transaction row", zap.Error(err))
			return nil, err
		}
		txs = append(txs, tx)
	}
	return txs, nil
}

// UpdateTransactionStatus finalizes a pending transaction. Returns false when
// the transaction was not in the expected status, so a second resolution of
// the same deposit is a no-op.
func (r *Repository) UpdateTransactionStatus(ctx context.Context, id int, from, to domain.TransactionStatus) (bool, error) {
	query := `
        UPDATE transactions
        SET status = $1
        WHERE id = $2 AND status = $3
    `
	tag, err := r.db.Exec(ctx, query, to, id, from)
	if err != nil {
		zap.L().Error("failed to update transaction status", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *Repository) SumTransactions(ctx context.Context, userID int, txType domain.TransactionType, status domain.TransactionStatus) (float64, error) {
	query := `
        SELECT COALESCE(sum(amount), 0)
        FROM transactions
        WHERE user_id = $1 AND type = $2 AND status = $3
    `
	var sum float64
	err := r.db.QueryRow(ctx, query, userID, txType, status).Scan(&sum)
	if err != nil {
		zap.L().Error("failed to sum transactions", zap.Error(err))
		return 0, err
	}
	return sum, nil
}

func (r *Repository) SumAllTransactions(ctx context.Context, txType domain.TransactionType, status domain.TransactionStatus) (float64, error) {
	query := `
        SELECT COALESCE(sum(amount), 0)
        FROM transactions
        WHERE type = $1 AND status = $2
    `
	var sum float64
	err := r.db.QueryRow(ctx, query, txType, status).Scan(&sum)
	if err != nil {
		zap.L().Error("failed to sum transactions", zap.Error(err))
		return 0, err
	}
	return sum, nil
}

func (r *Repository) CountTransactions(ctx context.Context, userID int, txType domain.TransactionType, status domain.TransactionStatus) (int, error) {
	query := `
        SELECT count(*)
        FROM transactions
        WHERE user_id = $1 AND type = $2 AND status = $3
    `
	var count int
	err := r.db.QueryRow(ctx, query, userID, txType, status).Scan(&count)
	if err != nil {
		zap.L().Error("failed to count transactions", zap.Error(err))
		return 0, err
	}
	return count, nil
}
