package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/akademika/hris-backend-go/internal/domain/leave"
	"github.com/akademika/hris-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type leaveBalanceRepositoryImpl struct {
	db *database.DB
}

func NewLeaveBalanceRepository(db *database.DB) leave.BalanceRepository {
	return &leaveBalanceRepositoryImpl{db: db}
}

const leaveBalanceColumns = `
	id, employee_id, year, annual_quota, balance, used,
	carried_forward, carried_forward_expiry_date, expired_balance,
	created_at, updated_at
`

func scanLeaveBalance(row pgx.Row) (*leave.Balance, error) {
	var b leave.Balance
	err := row.Scan(
		&b.ID, &b.EmployeeID, &b.Year, &b.AnnualQuota, &b.Balance, &b.Used,
		&b.CarriedForward, &b.CarriedForwardExpiryDate, &b.ExpiredBalance,
		&b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, leave.ErrBalanceNotFound
		}
		return nil, err
	}
	return &b, nil
}

func (r *leaveBalanceRepositoryImpl) GetByEmployeeAndYear(ctx context.Context, employeeID string, year int) (*leave.Balance, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + leaveBalanceColumns + ` FROM leave_balances WHERE employee_id = $1 AND year = $2`
	return scanLeaveBalance(q.QueryRow(ctx, query, employeeID, year))
}

func (r *leaveBalanceRepositoryImpl) ListExpirable(ctx context.Context, cutoff time.Time) ([]*leave.Balance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveBalanceColumns + `
		FROM leave_balances
		WHERE carried_forward > 0 AND carried_forward_expiry_date <= $1
		ORDER BY employee_id
	`
	rows, err := q.Query(ctx, query, cutoff)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectLeaveBalances(rows)
}

func (r *leaveBalanceRepositoryImpl) ListByYear(ctx context.Context, year int) ([]*leave.Balance, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + leaveBalanceColumns + ` FROM leave_balances WHERE year = $1 ORDER BY employee_id`
	rows, err := q.Query(ctx, query, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectLeaveBalances(rows)
}

func collectLeaveBalances(rows pgx.Rows) ([]*leave.Balance, error) {
	balances := make([]*leave.Balance, 0)
	for rows.Next() {
		b, err := scanLeaveBalance(rows)
		if err != nil {
			return nil, err
		}
		balances = append(balances, b)
	}
	return balances, nil
}

func (r *leaveBalanceRepositoryImpl) Create(ctx context.Context, b *leave.Balance) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_balances (
			id, employee_id, year, annual_quota, balance, used,
			carried_forward, carried_forward_expiry_date, expired_balance,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := q.Exec(ctx, query,
		b.ID, b.EmployeeID, b.Year, b.AnnualQuota, b.Balance, b.Used,
		b.CarriedForward, b.CarriedForwardExpiryDate, b.ExpiredBalance,
		b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return leave.ErrBalanceAlreadyExists
		}
		return err
	}
	return nil
}

func (r *leaveBalanceRepositoryImpl) Update(ctx context.Context, b *leave.Balance) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_balances
		SET annual_quota = $2, balance = $3, used = $4,
			carried_forward = $5, carried_forward_expiry_date = $6, expired_balance = $7,
			updated_at = $8
		WHERE id = $1
	`
	tag, err := q.Exec(ctx, query,
		b.ID, b.AnnualQuota, b.Balance, b.Used,
		b.CarriedForward, b.CarriedForwardExpiryDate, b.ExpiredBalance,
		b.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() != 1 {
		return leave.ErrBalanceNotFound
	}
	return nil
}
