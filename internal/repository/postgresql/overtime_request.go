package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/akademika/hris-backend-go/internal/domain/approval"
	"github.com/akademika/hris-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type overtimeRequestRepositoryImpl struct {
	db *database.DB
}

func NewOvertimeRequestRepository(db *database.DB) approval.OvertimeRepository {
	return &overtimeRequestRepositoryImpl{db: db}
}

const overtimeRequestColumns = `
	id, employee_id, date, estimated_hours, actual_minutes, reason, status,
	supervisor_id, supervisor_acted_at, supervisor_note,
	hr_id, hr_acted_at, hr_note,
	created_at, updated_at, deleted_at
`

func scanOvertimeRequest(row pgx.Row) (*approval.OvertimeRequest, error) {
	var req approval.OvertimeRequest
	err := row.Scan(
		&req.ID, &req.EmployeeID, &req.Date, &req.EstimatedHours, &req.ActualMinutes, &req.Reason, &req.Status,
		&req.SupervisorID, &req.SupervisorActedAt, &req.SupervisorNote,
		&req.HRID, &req.HRActedAt, &req.HRNote,
		&req.CreatedAt, &req.UpdatedAt, &req.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, approval.ErrRequestNotFound
		}
		return nil, err
	}
	return &req, nil
}

func (r *overtimeRequestRepositoryImpl) GetByID(ctx context.Context, id string) (*approval.OvertimeRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + overtimeRequestColumns + ` FROM overtime_requests WHERE id = $1 AND deleted_at IS NULL`
	return scanOvertimeRequest(q.QueryRow(ctx, query, id))
}

func (r *overtimeRequestRepositoryImpl) GetActiveByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*approval.OvertimeRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + overtimeRequestColumns + `
		FROM overtime_requests
		WHERE employee_id = $1 AND date = $2
			AND status IN ('pending_supervisor', 'pending_hr', 'approved')
			AND deleted_at IS NULL
		ORDER BY created_at DESC
		LIMIT 1
	`
	return scanOvertimeRequest(q.QueryRow(ctx, query, employeeID, date))
}

func (r *overtimeRequestRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]*approval.OvertimeRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + overtimeRequestColumns + `
		FROM overtime_requests
		WHERE employee_id = $1 AND deleted_at IS NULL
		ORDER BY date DESC
	`
	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectOvertimeRequests(rows)
}

func (r *overtimeRequestRepositoryImpl) ListByStatus(ctx context.Context, status approval.RequestStatus) ([]*approval.OvertimeRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + overtimeRequestColumns + `
		FROM overtime_requests
		WHERE status = $1 AND deleted_at IS NULL
		ORDER BY created_at ASC
	`
	rows, err := q.Query(ctx, query, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectOvertimeRequests(rows)
}

func collectOvertimeRequests(rows pgx.Rows) ([]*approval.OvertimeRequest, error) {
	requests := make([]*approval.OvertimeRequest, 0)
	for rows.Next() {
		req, err := scanOvertimeRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}
	return requests, nil
}

func (r *overtimeRequestRepositoryImpl) Create(ctx context.Context, req *approval.OvertimeRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO overtime_requests (
			id, employee_id, date, estimated_hours, actual_minutes, reason, status,
			supervisor_id, supervisor_acted_at, supervisor_note,
			hr_id, hr_acted_at, hr_note,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`
	_, err := q.Exec(ctx, query,
		req.ID, req.EmployeeID, req.Date, req.EstimatedHours, req.ActualMinutes, req.Reason, req.Status,
		req.SupervisorID, req.SupervisorActedAt, req.SupervisorNote,
		req.HRID, req.HRActedAt, req.HRNote,
		req.CreatedAt, req.UpdatedAt,
	)
	return err
}

func (r *overtimeRequestRepositoryImpl) UpdateStatus(ctx context.Context, req *approval.OvertimeRequest, expected approval.RequestStatus) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE overtime_requests
		SET status = $3,
			supervisor_id = $4, supervisor_acted_at = $5, supervisor_note = $6,
			hr_id = $7, hr_acted_at = $8, hr_note = $9,
			updated_at = $10
		WHERE id = $1 AND status = $2 AND deleted_at IS NULL
	`
	tag, err := q.Exec(ctx, query,
		req.ID, expected, req.Status,
		req.SupervisorID, req.SupervisorActedAt, req.SupervisorNote,
		req.HRID, req.HRActedAt, req.HRNote,
		req.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() != 1 {
		return approval.ErrInvalidTransition
	}
	return nil
}

func (r *overtimeRequestRepositoryImpl) UpdateActualDuration(ctx context.Context, id string, actualMinutes int) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE overtime_requests
		SET actual_minutes = $2, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
	`
	tag, err := q.Exec(ctx, query, id, actualMinutes)
	if err != nil {
		return err
	}
	if tag.RowsAffected() != 1 {
		return approval.ErrRequestNotFound
	}
	return nil
}
