package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/akademika/hris-backend-go/internal/domain/leave"
	"github.com/akademika/hris-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type leaveRequestRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.RequestRepository {
	return &leaveRequestRepositoryImpl{db: db}
}

const leaveRequestColumns = `
	id, employee_id, type, start_date, end_date, total_days, reason, status,
	current_approver_id, approved_by, approved_at, rejected_by, rejection_reason,
	created_at, updated_at, deleted_at
`

func scanLeaveRequest(row pgx.Row) (*leave.Request, error) {
	var req leave.Request
	err := row.Scan(
		&req.ID, &req.EmployeeID, &req.Type, &req.StartDate, &req.EndDate, &req.TotalDays, &req.Reason, &req.Status,
		&req.CurrentApproverID, &req.ApprovedBy, &req.ApprovedAt, &req.RejectedBy, &req.RejectionReason,
		&req.CreatedAt, &req.UpdatedAt, &req.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, leave.ErrRequestNotFound
		}
		return nil, err
	}
	return &req, nil
}

func (r *leaveRequestRepositoryImpl) GetByID(ctx context.Context, id string) (*leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + leaveRequestColumns + ` FROM leave_requests WHERE id = $1 AND deleted_at IS NULL`
	return scanLeaveRequest(q.QueryRow(ctx, query, id))
}

func (r *leaveRequestRepositoryImpl) HasOverlapping(ctx context.Context, employeeID string, start, end time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM leave_requests
			WHERE employee_id = $1
				AND status IN ('pending', 'approved')
				AND start_date <= $3 AND end_date >= $2
				AND deleted_at IS NULL
		)
	`
	var exists bool
	if err := q.QueryRow(ctx, query, employeeID, start, end).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *leaveRequestRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]*leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveRequestColumns + `
		FROM leave_requests
		WHERE employee_id = $1 AND deleted_at IS NULL
		ORDER BY start_date DESC
	`
	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectLeaveRequests(rows)
}

func (r *leaveRequestRepositoryImpl) ListByApprover(ctx context.Context, approverID string) ([]*leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveRequestColumns + `
		FROM leave_requests
		WHERE current_approver_id = $1 AND status = 'pending' AND deleted_at IS NULL
		ORDER BY created_at ASC
	`
	rows, err := q.Query(ctx, query, approverID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectLeaveRequests(rows)
}

func collectLeaveRequests(rows pgx.Rows) ([]*leave.Request, error) {
	requests := make([]*leave.Request, 0)
	for rows.Next() {
		req, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}
	return requests, nil
}

func (r *leaveRequestRepositoryImpl) Create(ctx context.Context, req *leave.Request) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (
			id, employee_id, type, start_date, end_date, total_days, reason, status,
			current_approver_id, approved_by, approved_at, rejected_by, rejection_reason,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`
	_, err := q.Exec(ctx, query,
		req.ID, req.EmployeeID, req.Type, req.StartDate, req.EndDate, req.TotalDays, req.Reason, req.Status,
		req.CurrentApproverID, req.ApprovedBy, req.ApprovedAt, req.RejectedBy, req.RejectionReason,
		req.CreatedAt, req.UpdatedAt,
	)
	return err
}

func (r *leaveRequestRepositoryImpl) UpdateStatus(ctx context.Context, req *leave.Request, expected leave.RequestStatus) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests
		SET status = $3, current_approver_id = $4,
			approved_by = $5, approved_at = $6, rejected_by = $7, rejection_reason = $8,
			updated_at = $9
		WHERE id = $1 AND status = $2 AND deleted_at IS NULL
	`
	tag, err := q.Exec(ctx, query,
		req.ID, expected, req.Status, req.CurrentApproverID,
		req.ApprovedBy, req.ApprovedAt, req.RejectedBy, req.RejectionReason,
		req.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() != 1 {
		return leave.ErrInvalidTransition
	}
	return nil
}

func (r *leaveRequestRepositoryImpl) SoftDelete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE leave_requests SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`
	tag, err := q.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() != 1 {
		return leave.ErrRequestNotFound
	}
	return nil
}
