package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/akademika/hris-backend-go/internal/domain/approval"
	"github.com/akademika/hris-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type wfhRequestRepositoryImpl struct {
	db *database.DB
}

func NewWFHRequestRepository(db *database.DB) approval.WFHRepository {
	return &wfhRequestRepositoryImpl{db: db}
}

const wfhRequestColumns = `
	id, employee_id, date, reason, status,
	supervisor_id, supervisor_acted_at, supervisor_note,
	hr_id, hr_acted_at, hr_note,
	created_at, updated_at, deleted_at
`

func scanWFHRequest(row pgx.Row) (*approval.WFHRequest, error) {
	var req approval.WFHRequest
	err := row.Scan(
		&req.ID, &req.EmployeeID, &req.Date, &req.Reason, &req.Status,
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

func (r *wfhRequestRepositoryImpl) GetByID(ctx context.Context, id string) (*approval.WFHRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + wfhRequestColumns + ` FROM wfh_requests WHERE id = $1 AND deleted_at IS NULL`
	return scanWFHRequest(q.QueryRow(ctx, query, id))
}

func (r *wfhRequestRepositoryImpl) GetActiveByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*approval.WFHRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + wfhRequestColumns + `
		FROM wfh_requests
		WHERE employee_id = $1 AND date = $2
			AND status IN ('pending_supervisor', 'pending_hr', 'approved')
			AND deleted_at IS NULL
		ORDER BY created_at DESC
		LIMIT 1
	`
	return scanWFHRequest(q.QueryRow(ctx, query, employeeID, date))
}

func (r *wfhRequestRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]*approval.WFHRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + wfhRequestColumns + `
		FROM wfh_requests
		WHERE employee_id = $1 AND deleted_at IS NULL
		ORDER BY date DESC
	`
	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectWFHRequests(rows)
}

func (r *wfhRequestRepositoryImpl) ListByStatus(ctx context.Context, status approval.RequestStatus) ([]*approval.WFHRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + wfhRequestColumns + `
		FROM wfh_requests
		WHERE status = $1 AND deleted_at IS NULL
		ORDER BY created_at ASC
	`
	rows, err := q.Query(ctx, query, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectWFHRequests(rows)
}

func collectWFHRequests(rows pgx.Rows) ([]*approval.WFHRequest, error) {
	requests := make([]*approval.WFHRequest, 0)
	for rows.Next() {
		req, err := scanWFHRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}
	return requests, nil
}

func (r *wfhRequestRepositoryImpl) Create(ctx context.Context, req *approval.WFHRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO wfh_requests (
			id, employee_id, date, reason, status,
			supervisor_id, supervisor_acted_at, supervisor_note,
			hr_id, hr_acted_at, hr_note,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`
	_, err := q.Exec(ctx, query,
		req.ID, req.EmployeeID, req.Date, req.Reason, req.Status,
		req.SupervisorID, req.SupervisorActedAt, req.SupervisorNote,
		req.HRID, req.HRActedAt, req.HRNote,
		req.CreatedAt, req.UpdatedAt,
	)
	return err
}

func (r *wfhRequestRepositoryImpl) UpdateStatus(ctx context.Context, req *approval.WFHRequest, expected approval.RequestStatus) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE wfh_requests
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
