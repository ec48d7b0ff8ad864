package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/akademika/hris-backend-go/internal/domain/attendance"
	"github.com/akademika/hris-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.Repository {
	return &attendanceRepositoryImpl{db: db}
}

const attendanceColumns = `
	id, employee_id, date,
	clock_in_at, clock_in_lat, clock_in_long, clock_in_photo_url, clock_in_device_id, is_remote,
	clock_out_at, clock_out_lat, clock_out_long, clock_out_photo_url,
	scheduled_start, scheduled_end, is_overnight, required_work_minutes, break_minutes,
	late_tolerance_minutes, early_leave_tolerance_minutes,
	late_deduction_per_minute, late_deduction_max,
	early_leave_deduction_per_minute, early_leave_deduction_max,
	underwork_deduction_per_minute, underwork_deduction_max, overtime_allowed,
	is_late, late_minutes, late_deduction,
	is_early_leave, early_leave_minutes, early_leave_deduction,
	is_overtime, overtime_minutes, actual_work_minutes,
	underwork_minutes, underwork_deduction, status,
	notes, created_at, updated_at, deleted_at
`

func scanAttendance(row pgx.Row) (*attendance.Record, error) {
	var rec attendance.Record
	err := row.Scan(
		&rec.ID, &rec.EmployeeID, &rec.Date,
		&rec.ClockInAt, &rec.ClockInLat, &rec.ClockInLong, &rec.ClockInPhotoURL, &rec.ClockInDeviceID, &rec.IsRemote,
		&rec.ClockOutAt, &rec.ClockOutLat, &rec.ClockOutLong, &rec.ClockOutPhotoURL,
		&rec.Snapshot.ScheduledStart, &rec.Snapshot.ScheduledEnd, &rec.Snapshot.IsOvernight,
		&rec.Snapshot.RequiredWorkMinutes, &rec.Snapshot.BreakMinutes,
		&rec.Snapshot.LateToleranceMinutes, &rec.Snapshot.EarlyLeaveToleranceMinutes,
		&rec.Snapshot.LateDeductionPerMinute, &rec.Snapshot.LateDeductionMax,
		&rec.Snapshot.EarlyLeaveDeductionPerMinute, &rec.Snapshot.EarlyLeaveDeductionMax,
		&rec.Snapshot.UnderworkDeductionPerMinute, &rec.Snapshot.UnderworkDeductionMax, &rec.Snapshot.OvertimeAllowed,
		&rec.Derived.IsLate, &rec.Derived.LateMinutes, &rec.Derived.LateDeduction,
		&rec.Derived.IsEarlyLeave, &rec.Derived.EarlyLeaveMinutes, &rec.Derived.EarlyLeaveDeduction,
		&rec.Derived.IsOvertime, &rec.Derived.OvertimeMinutes, &rec.Derived.ActualWorkMinutes,
		&rec.Derived.UnderworkMinutes, &rec.Derived.UnderworkDeduction, &rec.Derived.Status,
		&rec.Notes, &rec.CreatedAt, &rec.UpdatedAt, &rec.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, attendance.ErrRecordNotFound
		}
		return nil, err
	}
	return &rec, nil
}

func (r *attendanceRepositoryImpl) GetByID(ctx context.Context, id string) (*attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + attendanceColumns + ` FROM attendance_records WHERE id = $1 AND deleted_at IS NULL`
	return scanAttendance(q.QueryRow(ctx, query, id))
}

func (r *attendanceRepositoryImpl) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records
		WHERE employee_id = $1 AND date = $2 AND deleted_at IS NULL
	`
	return scanAttendance(q.QueryRow(ctx, query, employeeID, date))
}

func (r *attendanceRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string, from, to time.Time) ([]*attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records
		WHERE employee_id = $1 AND date >= $2 AND date <= $3 AND deleted_at IS NULL
		ORDER BY date DESC
	`
	rows, err := q.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]*attendance.Record, 0)
	for rows.Next() {
		rec, err := scanAttendance(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

func (r *attendanceRepositoryImpl) Create(ctx context.Context, rec *attendance.Record) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_records (
			id, employee_id, date,
			clock_in_at, clock_in_lat, clock_in_long, clock_in_photo_url, clock_in_device_id, is_remote,
			clock_out_at, clock_out_lat, clock_out_long, clock_out_photo_url,
			scheduled_start, scheduled_end, is_overnight, required_work_minutes, break_minutes,
			late_tolerance_minutes, early_leave_tolerance_minutes,
			late_deduction_per_minute, late_deduction_max,
			early_leave_deduction_per_minute, early_leave_deduction_max,
			underwork_deduction_per_minute, underwork_deduction_max, overtime_allowed,
			is_late, late_minutes, late_deduction,
			is_early_leave, early_leave_minutes, early_leave_deduction,
			is_overtime, overtime_minutes, actual_work_minutes,
			underwork_minutes, underwork_deduction, status,
			notes, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
			$11, $12, $13, $14, $15, $16, $17, $18, $19, $20,
			$21, $22, $23, $24, $25, $26, $27, $28, $29, $30,
			$31, $32, $33, $34, $35, $36, $37, $38, $39, $40,
			$41, $42
		)
	`
	_, err := q.Exec(ctx, query,
		rec.ID, rec.EmployeeID, rec.Date,
		rec.ClockInAt, rec.ClockInLat, rec.ClockInLong, rec.ClockInPhotoURL, rec.ClockInDeviceID, rec.IsRemote,
		rec.ClockOutAt, rec.ClockOutLat, rec.ClockOutLong, rec.ClockOutPhotoURL,
		rec.Snapshot.ScheduledStart, rec.Snapshot.ScheduledEnd, rec.Snapshot.IsOvernight,
		rec.Snapshot.RequiredWorkMinutes, rec.Snapshot.BreakMinutes,
		rec.Snapshot.LateToleranceMinutes, rec.Snapshot.EarlyLeaveToleranceMinutes,
		rec.Snapshot.LateDeductionPerMinute, rec.Snapshot.LateDeductionMax,
		rec.Snapshot.EarlyLeaveDeductionPerMinute, rec.Snapshot.EarlyLeaveDeductionMax,
		rec.Snapshot.UnderworkDeductionPerMinute, rec.Snapshot.UnderworkDeductionMax, rec.Snapshot.OvertimeAllowed,
		rec.Derived.IsLate, rec.Derived.LateMinutes, rec.Derived.LateDeduction,
		rec.Derived.IsEarlyLeave, rec.Derived.EarlyLeaveMinutes, rec.Derived.EarlyLeaveDeduction,
		rec.Derived.IsOvertime, rec.Derived.OvertimeMinutes, rec.Derived.ActualWorkMinutes,
		rec.Derived.UnderworkMinutes, rec.Derived.UnderworkDeduction, rec.Derived.Status,
		rec.Notes, rec.CreatedAt, rec.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return attendance.ErrAlreadyClockedIn
		}
		return err
	}
	return nil
}

func (r *attendanceRepositoryImpl) Update(ctx context.Context, rec *attendance.Record) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance_records
		SET clock_out_at = $2, clock_out_lat = $3, clock_out_long = $4, clock_out_photo_url = $5,
			is_late = $6, late_minutes = $7, late_deduction = $8,
			is_early_leave = $9, early_leave_minutes = $10, early_leave_deduction = $11,
			is_overtime = $12, overtime_minutes = $13, actual_work_minutes = $14,
			underwork_minutes = $15, underwork_deduction = $16, status = $17,
			notes = $18, updated_at = $19
		WHERE id = $1 AND deleted_at IS NULL
	`
	tag, err := q.Exec(ctx, query,
		rec.ID,
		rec.ClockOutAt, rec.ClockOutLat, rec.ClockOutLong, rec.ClockOutPhotoURL,
		rec.Derived.IsLate, rec.Derived.LateMinutes, rec.Derived.LateDeduction,
		rec.Derived.IsEarlyLeave, rec.Derived.EarlyLeaveMinutes, rec.Derived.EarlyLeaveDeduction,
		rec.Derived.IsOvertime, rec.Derived.OvertimeMinutes, rec.Derived.ActualWorkMinutes,
		rec.Derived.UnderworkMinutes, rec.Derived.UnderworkDeduction, rec.Derived.Status,
		rec.Notes, rec.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() != 1 {
		return attendance.ErrRecordNotFound
	}
	return nil
}

func (r *attendanceRepositoryImpl) SoftDelete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE attendance_records SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`
	tag, err := q.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() != 1 {
		return attendance.ErrRecordNotFound
	}
	return nil
}
