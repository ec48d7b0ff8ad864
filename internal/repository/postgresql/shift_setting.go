package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/akademika/hris-backend-go/internal/domain/shift"
	"github.com/akademika/hris-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type shiftSettingRepositoryImpl struct {
	db *database.DB
}

func NewShiftSettingRepository(db *database.DB) shift.SettingRepository {
	return &shiftSettingRepositoryImpl{db: db}
}

const shiftSettingColumns = `
	id, employee_id, shift_pattern_id, effective_from, effective_to, notes,
	created_at, updated_at, deleted_at
`

func scanShiftSetting(row pgx.Row) (*shift.EmployeeShiftSetting, error) {
	var s shift.EmployeeShiftSetting
	err := row.Scan(
		&s.ID, &s.EmployeeID, &s.ShiftPatternID, &s.EffectiveFrom, &s.EffectiveTo, &s.Notes,
		&s.CreatedAt, &s.UpdatedAt, &s.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shift.ErrShiftSettingNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *shiftSettingRepositoryImpl) GetActiveOn(ctx context.Context, employeeID string, date time.Time) (*shift.EmployeeShiftSetting, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + shiftSettingColumns + `
		FROM employee_shift_settings
		WHERE employee_id = $1
			AND effective_from <= $2
			AND (effective_to IS NULL OR effective_to >= $2)
			AND deleted_at IS NULL
		ORDER BY effective_from DESC
		LIMIT 1
	`
	return scanShiftSetting(q.QueryRow(ctx, query, employeeID, date))
}

func (r *shiftSettingRepositoryImpl) GetOpenSetting(ctx context.Context, employeeID string) (*shift.EmployeeShiftSetting, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + shiftSettingColumns + `
		FROM employee_shift_settings
		WHERE employee_id = $1 AND effective_to IS NULL AND deleted_at IS NULL
		ORDER BY effective_from DESC
		LIMIT 1
	`
	return scanShiftSetting(q.QueryRow(ctx, query, employeeID))
}

func (r *shiftSettingRepositoryImpl) Create(ctx context.Context, setting *shift.EmployeeShiftSetting) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employee_shift_settings (
			id, employee_id, shift_pattern_id, effective_from, effective_to, notes,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := q.Exec(ctx, query,
		setting.ID, setting.EmployeeID, setting.ShiftPatternID,
		setting.EffectiveFrom, setting.EffectiveTo, setting.Notes,
		setting.CreatedAt, setting.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23P01" {
			return shift.ErrOverlappingShiftSetting
		}
		return err
	}
	return nil
}

func (r *shiftSettingRepositoryImpl) CloseSetting(ctx context.Context, settingID string, effectiveTo time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employee_shift_settings
		SET effective_to = $2, updated_at = NOW()
		WHERE id = $1 AND effective_to IS NULL AND deleted_at IS NULL
	`
	tag, err := q.Exec(ctx, query, settingID, effectiveTo)
	if err != nil {
		return err
	}
	if tag.RowsAffected() != 1 {
		return shift.ErrShiftSettingNotFound
	}
	return nil
}

type shiftScheduleRepositoryImpl struct {
	db *database.DB
}

func NewShiftScheduleRepository(db *database.DB) shift.OverrideRepository {
	return &shiftScheduleRepositoryImpl{db: db}
}

const shiftScheduleColumns = `
	id, employee_id, date, working_hours_rule_id,
	wfh_allowed, overtime_allowed, attendance_mandatory, notes,
	created_at, updated_at, deleted_at
`

func (r *shiftScheduleRepositoryImpl) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*shift.EmployeeShiftSchedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + shiftScheduleColumns + `
		FROM employee_shift_schedules
		WHERE employee_id = $1 AND date = $2 AND deleted_at IS NULL
	`
	var s shift.EmployeeShiftSchedule
	err := q.QueryRow(ctx, query, employeeID, date).Scan(
		&s.ID, &s.EmployeeID, &s.Date, &s.WorkingHoursRuleID,
		&s.WFHAllowed, &s.OvertimeAllowed, &s.AttendanceMandatory, &s.Notes,
		&s.CreatedAt, &s.UpdatedAt, &s.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shift.ErrScheduleOverrideNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *shiftScheduleRepositoryImpl) Create(ctx context.Context, override *shift.EmployeeShiftSchedule) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employee_shift_schedules (
			id, employee_id, date, working_hours_rule_id,
			wfh_allowed, overtime_allowed, attendance_mandatory, notes,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := q.Exec(ctx, query,
		override.ID, override.EmployeeID, override.Date, override.WorkingHoursRuleID,
		override.WFHAllowed, override.OvertimeAllowed, override.AttendanceMandatory, override.Notes,
		override.CreatedAt, override.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return shift.ErrScheduleOverrideExists
		}
		return err
	}
	return nil
}

func (r *shiftScheduleRepositoryImpl) SoftDelete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE employee_shift_schedules SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`
	tag, err := q.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() != 1 {
		return shift.ErrScheduleOverrideNotFound
	}
	return nil
}
