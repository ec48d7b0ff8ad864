package postgresql

import (
	"context"
	"errors"

	"github.com/akademika/hris-backend-go/internal/domain/employee"
	"github.com/akademika/hris-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.Repository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `
	id, account_id, department_id, position_id, approver_id,
	employee_code, full_name, email, phone_number,
	hire_date, resignation_date, employment_status,
	created_at, updated_at, deleted_at
`

func scanEmployee(row pgx.Row) (*employee.Employee, error) {
	var emp employee.Employee
	err := row.Scan(
		&emp.ID, &emp.AccountID, &emp.DepartmentID, &emp.PositionID, &emp.ApproverID,
		&emp.EmployeeCode, &emp.FullName, &emp.Email, &emp.PhoneNumber,
		&emp.HireDate, &emp.ResignationDate, &emp.EmploymentStatus,
		&emp.CreatedAt, &emp.UpdatedAt, &emp.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, employee.ErrEmployeeNotFound
		}
		return nil, err
	}
	return &emp, nil
}

func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (*employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1 AND deleted_at IS NULL`
	return scanEmployee(q.QueryRow(ctx, query, id))
}

func (r *employeeRepositoryImpl) GetByIDs(ctx context.Context, ids []string) ([]*employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = ANY($1) AND deleted_at IS NULL`
	rows, err := q.Query(ctx, query, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	employees := make([]*employee.Employee, 0)
	for rows.Next() {
		var emp employee.Employee
		if err := rows.Scan(
			&emp.ID, &emp.AccountID, &emp.DepartmentID, &emp.PositionID, &emp.ApproverID,
			&emp.EmployeeCode, &emp.FullName, &emp.Email, &emp.PhoneNumber,
			&emp.HireDate, &emp.ResignationDate, &emp.EmploymentStatus,
			&emp.CreatedAt, &emp.UpdatedAt, &emp.DeletedAt,
		); err != nil {
			return nil, err
		}
		employees = append(employees, &emp)
	}

	return employees, nil
}

func (r *employeeRepositoryImpl) GetByAccountID(ctx context.Context, accountID string) (*employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE account_id = $1 AND deleted_at IS NULL`
	return scanEmployee(q.QueryRow(ctx, query, accountID))
}

func (r *employeeRepositoryImpl) Create(ctx context.Context, emp *employee.Employee) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (
			id, account_id, department_id, position_id, approver_id,
			employee_code, full_name, email, phone_number,
			hire_date, resignation_date, employment_status,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`
	_, err := q.Exec(ctx, query,
		emp.ID, emp.AccountID, emp.DepartmentID, emp.PositionID, emp.ApproverID,
		emp.EmployeeCode, emp.FullName, emp.Email, emp.PhoneNumber,
		emp.HireDate, emp.ResignationDate, emp.EmploymentStatus,
		emp.CreatedAt, emp.UpdatedAt,
	)
	return err
}

func (r *employeeRepositoryImpl) Update(ctx context.Context, emp *employee.Employee) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET department_id = $2, position_id = $3, approver_id = $4,
			full_name = $5, email = $6, phone_number = $7,
			resignation_date = $8, employment_status = $9, updated_at = $10
		WHERE id = $1 AND deleted_at IS NULL
	`
	tag, err := q.Exec(ctx, query,
		emp.ID, emp.DepartmentID, emp.PositionID, emp.ApproverID,
		emp.FullName, emp.Email, emp.PhoneNumber,
		emp.ResignationDate, emp.EmploymentStatus, emp.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() != 1 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

type departmentRepositoryImpl struct {
	db *database.DB
}

func NewDepartmentRepository(db *database.DB) employee.DepartmentRepository {
	return &departmentRepositoryImpl{db: db}
}

func (r *departmentRepositoryImpl) GetByID(ctx context.Context, id string) (*employee.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, parent_id, head_id, created_at, updated_at, deleted_at
		FROM departments
		WHERE id = $1 AND deleted_at IS NULL
	`
	var dept employee.Department
	err := q.QueryRow(ctx, query, id).Scan(
		&dept.ID, &dept.Name, &dept.ParentID, &dept.HeadID,
		&dept.CreatedAt, &dept.UpdatedAt, &dept.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, employee.ErrDepartmentNotFound
		}
		return nil, err
	}
	return &dept, nil
}

type positionRepositoryImpl struct {
	db *database.DB
}

func NewPositionRepository(db *database.DB) employee.PositionRepository {
	return &positionRepositoryImpl{db: db}
}

func (r *positionRepositoryImpl) GetByID(ctx context.Context, id string) (*employee.Position, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, level, created_at, updated_at, deleted_at
		FROM positions
		WHERE id = $1 AND deleted_at IS NULL
	`
	var pos employee.Position
	err := q.QueryRow(ctx, query, id).Scan(
		&pos.ID, &pos.Name, &pos.Level,
		&pos.CreatedAt, &pos.UpdatedAt, &pos.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, employee.ErrPositionNotFound
		}
		return nil, err
	}
	return &pos, nil
}
