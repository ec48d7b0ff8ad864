package postgresql

import (
	"context"
	"errors"

	"github.com/akademika/hris-backend-go/internal/domain/auth"
	"github.com/akademika/hris-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type accountRepositoryImpl struct {
	db *database.DB
}

func NewAccountRepository(db *database.DB) auth.Repository {
	return &accountRepositoryImpl{db: db}
}

const accountColumns = `
	id, employee_id, email, password_hash, role, is_active, last_login_at,
	created_at, updated_at, deleted_at
`

func scanAccount(row pgx.Row) (*auth.Account, error) {
	var acc auth.Account
	err := row.Scan(
		&acc.ID, &acc.EmployeeID, &acc.Email, &acc.PasswordHash, &acc.Role, &acc.IsActive, &acc.LastLoginAt,
		&acc.CreatedAt, &acc.UpdatedAt, &acc.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, auth.ErrAccountNotFound
		}
		return nil, err
	}
	return &acc, nil
}

func (r *accountRepositoryImpl) GetByID(ctx context.Context, id string) (*auth.Account, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1 AND deleted_at IS NULL`
	return scanAccount(q.QueryRow(ctx, query, id))
}

func (r *accountRepositoryImpl) GetByEmail(ctx context.Context, email string) (*auth.Account, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + accountColumns + ` FROM accounts WHERE LOWER(email) = LOWER($1) AND deleted_at IS NULL`
	return scanAccount(q.QueryRow(ctx, query, email))
}

func (r *accountRepositoryImpl) Create(ctx context.Context, acc *auth.Account) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO accounts (
			id, employee_id, email, password_hash, role, is_active, last_login_at,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := q.Exec(ctx, query,
		acc.ID, acc.EmployeeID, acc.Email, acc.PasswordHash, acc.Role, acc.IsActive, acc.LastLoginAt,
		acc.CreatedAt, acc.UpdatedAt,
	)
	return err
}

func (r *accountRepositoryImpl) UpdateLastLogin(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE accounts SET last_login_at = NOW(), updated_at = NOW() WHERE id = $1 AND deleted_at IS NULL`
	tag, err := q.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() != 1 {
		return auth.ErrAccountNotFound
	}
	return nil
}
