package userrepo

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

var userColumns = []string{"id", "login", "password_hash", "is_admin", "referrer_id", "created_at"}

func TestRepository_FindByLogin(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	query := regexp.QuoteMeta(`
        SELECT id, login, password_hash, is_admin, referrer_id, created_at
        FROM users
        WHERE login = $1
    `)

	t.Run("Existing user", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs("miner").
			WillReturnRows(pgxmock.NewRows(userColumns).AddRow(1, "miner", "hash", false, nil, now))

		user, err := repo.FindByLogin(context.Background(), "miner")
		assert.NoError(t, err)
		assert.Equal(t, 1, user.ID)
		assert.Nil(t, user.ReferrerID)
	})

	t.Run("Unknown login returns nil", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs("ghost").WillReturnError(pgx.ErrNoRows)

		user, err := repo.FindByLogin(context.Background(), "ghost")
		assert.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs("miner").WillReturnError(errors.New("database error"))

		_, err := repo.FindByLogin(context.Background(), "miner")
		assert.Error(t, err)
	})
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	referrerID := 7
	query := regexp.QuoteMeta(`
        INSERT INTO users (login, password_hash, referrer_id)
        VALUES ($1, $2, $3)
        RETURNING id, created_at
    `)

	t.Run("Creates user with referrer", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs("referee", "hash", &referrerID).
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(2, now))

		user, err := repo.Create(context.Background(), &domain.User{Login: "referee", PasswordHash: "hash", ReferrerID: &referrerID})
		assert.NoError(t, err)
		assert.Equal(t, 2, user.ID)
	})

	t.Run("Duplicate login surfaces", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs("referee", "hash", &referrerID).
			WillReturnError(errors.New("duplicate key value violates unique constraint"))

		_, err := repo.Create(context.Background(), &domain.User{Login: "referee", PasswordHash: "hash", ReferrerID: &referrerID})
		assert.Error(t, err)
	})
}

func TestRepository_Count(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM users`)).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(150))

	count, err := repo.Count(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 150, count)
}
