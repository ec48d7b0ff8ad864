package postgresql

import (
	"context"
	"time"

	"github.com/akademika/hris-backend-go/internal/domain/employee"
	"github.com/akademika/hris-backend-go/internal/pkg/database"
)

type historyRepositoryImpl struct {
	db *database.DB
}

func NewHistoryRepository(db *database.DB) employee.HistoryRepository {
	return &historyRepositoryImpl{db: db}
}

func (r *historyRepositoryImpl) AppendContract(ctx context.Context, row *employee.ContractHistory) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO contract_histories (id, employee_id, contract_type, start_date, end_date, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := q.Exec(ctx, query, row.ID, row.EmployeeID, row.ContractType, row.StartDate, row.EndDate, row.Notes, row.CreatedAt)
	return err
}

func (r *historyRepositoryImpl) AppendSalary(ctx context.Context, row *employee.SalaryHistory) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO salary_histories (id, employee_id, amount, start_date, end_date, reason, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := q.Exec(ctx, query, row.ID, row.EmployeeID, row.Amount, row.StartDate, row.EndDate, row.Reason, row.CreatedAt)
	return err
}

func (r *historyRepositoryImpl) AppendJob(ctx context.Context, row *employee.JobHistory) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO job_histories (id, employee_id, department_id, position_id, start_date, end_date, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := q.Exec(ctx, query, row.ID, row.EmployeeID, row.DepartmentID, row.PositionID, row.StartDate, row.EndDate, row.Notes, row.CreatedAt)
	return err
}

func (r *historyRepositoryImpl) CloseCurrentContract(ctx context.Context, employeeID string, endDate time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE contract_histories SET end_date = $2 WHERE employee_id = $1 AND end_date IS NULL`
	_, err := q.Exec(ctx, query, employeeID, endDate)
	return err
}

func (r *historyRepositoryImpl) CloseCurrentSalary(ctx context.Context, employeeID string, endDate time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE salary_histories SET end_date = $2 WHERE employee_id = $1 AND end_date IS NULL`
	_, err := q.Exec(ctx, query, employeeID, endDate)
	return err
}

func (r *historyRepositoryImpl) CloseCurrentJob(ctx context.Context, employeeID string, endDate time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE job_histories SET end_date = $2 WHERE employee_id = $1 AND end_date IS NULL`
	_, err := q.Exec(ctx, query, employeeID, endDate)
	return err
}

func (r *historyRepositoryImpl) ListContracts(ctx context.Context, employeeID string) ([]*employee.ContractHistory, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, contract_type, start_date, end_date, notes, created_at
		FROM contract_histories
		WHERE employee_id = $1
		ORDER BY start_date DESC
	`
	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]*employee.ContractHistory, 0)
	for rows.Next() {
		var row employee.ContractHistory
		if err := rows.Scan(&row.ID, &row.EmployeeID, &row.ContractType, &row.StartDate, &row.EndDate, &row.Notes, &row.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, &row)
	}
	return result, nil
}

func (r *historyRepositoryImpl) ListSalaries(ctx context.Context, employeeID string) ([]*employee.SalaryHistory, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, amount, start_date, end_date, reason, created_at
		FROM salary_histories
		WHERE employee_id = $1
		ORDER BY start_date DESC
	`
	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]*employee.SalaryHistory, 0)
	for rows.Next() {
		var row employee.SalaryHistory
		if err := rows.Scan(&row.ID, &row.EmployeeID, &row.Amount, &row.StartDate, &row.EndDate, &row.Reason, &row.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, &row)
	}
	return result, nil
}

func (r *historyRepositoryImpl) ListJobs(ctx context.Context, employeeID string) ([]*employee.JobHistory, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, department_id, position_id, start_date, end_date, notes, created_at
		FROM job_histories
		WHERE employee_id = $1
		ORDER BY start_date DESC
	`
	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]*employee.JobHistory, 0)
	for rows.Next() {
		var row employee.JobHistory
		if err := rows.Scan(&row.ID, &row.EmployeeID, &row.DepartmentID, &row.PositionID, &row.StartDate, &row.EndDate, &row.Notes, &row.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, &row)
	}
	return result, nil
}
