package postgresql

import (
	"context"
	"errors"

	"github.com/akademika/hris-backend-go/internal/domain/shift"
	"github.com/akademika/hris-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type shiftPatternRepositoryImpl struct {
	db *database.DB
}

func NewShiftPatternRepository(db *database.DB) shift.PatternRepository {
	return &shiftPatternRepositoryImpl{db: db}
}

const shiftPatternColumns = `
	id, name, shift_package_id, late_tolerance_minutes, early_leave_tolerance_minutes,
	late_deduction_per_minute, late_deduction_max,
	early_leave_deduction_per_minute, early_leave_deduction_max,
	underwork_deduction_per_minute, underwork_deduction_max,
	overtime_allowed, wfh_allowed, attendance_mandatory,
	override_national_holiday, override_company_holiday, override_collective_leave, override_weekly_off,
	is_active, created_at, updated_at, deleted_at
`

func scanShiftPattern(row pgx.Row) (*shift.ShiftPattern, error) {
	var p shift.ShiftPattern
	err := row.Scan(
		&p.ID, &p.Name, &p.ShiftPackageID, &p.LateToleranceMinutes, &p.EarlyLeaveToleranceMinutes,
		&p.LateDeductionPerMinute, &p.LateDeductionMax,
		&p.EarlyLeaveDeductionPerMinute, &p.EarlyLeaveDeductionMax,
		&p.UnderworkDeductionPerMinute, &p.UnderworkDeductionMax,
		&p.OvertimeAllowed, &p.WFHAllowed, &p.AttendanceMandatory,
		&p.OverrideNationalHoliday, &p.OverrideCompanyHoliday, &p.OverrideCollectiveLeave, &p.OverrideWeeklyOff,
		&p.IsActive, &p.CreatedAt, &p.UpdatedAt, &p.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shift.ErrShiftPatternNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *shiftPatternRepositoryImpl) GetByID(ctx context.Context, id string) (*shift.ShiftPattern, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + shiftPatternColumns + ` FROM shift_patterns WHERE id = $1 AND deleted_at IS NULL`
	return scanShiftPattern(q.QueryRow(ctx, query, id))
}

func (r *shiftPatternRepositoryImpl) List(ctx context.Context) ([]*shift.ShiftPattern, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + shiftPatternColumns + ` FROM shift_patterns WHERE deleted_at IS NULL ORDER BY name`
	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	patterns := make([]*shift.ShiftPattern, 0)
	for rows.Next() {
		var p shift.ShiftPattern
		if err := rows.Scan(
			&p.ID, &p.Name, &p.ShiftPackageID, &p.LateToleranceMinutes, &p.EarlyLeaveToleranceMinutes,
			&p.LateDeductionPerMinute, &p.LateDeductionMax,
			&p.EarlyLeaveDeductionPerMinute, &p.EarlyLeaveDeductionMax,
			&p.UnderworkDeductionPerMinute, &p.UnderworkDeductionMax,
			&p.OvertimeAllowed, &p.WFHAllowed, &p.AttendanceMandatory,
			&p.OverrideNationalHoliday, &p.OverrideCompanyHoliday, &p.OverrideCollectiveLeave, &p.OverrideWeeklyOff,
			&p.IsActive, &p.CreatedAt, &p.UpdatedAt, &p.DeletedAt,
		); err != nil {
			return nil, err
		}
		patterns = append(patterns, &p)
	}
	return patterns, nil
}

func (r *shiftPatternRepositoryImpl) Create(ctx context.Context, pattern *shift.ShiftPattern) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO shift_patterns (
			id, name, shift_package_id, late_tolerance_minutes, early_leave_tolerance_minutes,
			late_deduction_per_minute, late_deduction_max,
			early_leave_deduction_per_minute, early_leave_deduction_max,
			underwork_deduction_per_minute, underwork_deduction_max,
			overtime_allowed, wfh_allowed, attendance_mandatory,
			override_national_holiday, override_company_holiday, override_collective_leave, override_weekly_off,
			is_active, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)
	`
	_, err := q.Exec(ctx, query,
		pattern.ID, pattern.Name, pattern.ShiftPackageID, pattern.LateToleranceMinutes, pattern.EarlyLeaveToleranceMinutes,
		pattern.LateDeductionPerMinute, pattern.LateDeductionMax,
		pattern.EarlyLeaveDeductionPerMinute, pattern.EarlyLeaveDeductionMax,
		pattern.UnderworkDeductionPerMinute, pattern.UnderworkDeductionMax,
		pattern.OvertimeAllowed, pattern.WFHAllowed, pattern.AttendanceMandatory,
		pattern.OverrideNationalHoliday, pattern.OverrideCompanyHoliday, pattern.OverrideCollectiveLeave, pattern.OverrideWeeklyOff,
		pattern.IsActive, pattern.CreatedAt, pattern.UpdatedAt,
	)
	return err
}

func (r *shiftPatternRepositoryImpl) Update(ctx context.Context, pattern *shift.ShiftPattern) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE shift_patterns
		SET name = $2, shift_package_id = $3, late_tolerance_minutes = $4, early_leave_tolerance_minutes = $5,
			late_deduction_per_minute = $6, late_deduction_max = $7,
			early_leave_deduction_per_minute = $8, early_leave_deduction_max = $9,
			underwork_deduction_per_minute = $10, underwork_deduction_max = $11,
			overtime_allowed = $12, wfh_allowed = $13, attendance_mandatory = $14,
			override_national_holiday = $15, override_company_holiday = $16,
			override_collective_leave = $17, override_weekly_off = $18,
			is_active = $19, updated_at = $20
		WHERE id = $1 AND deleted_at IS NULL
	`
	tag, err := q.Exec(ctx, query,
		pattern.ID, pattern.Name, pattern.ShiftPackageID, pattern.LateToleranceMinutes, pattern.EarlyLeaveToleranceMinutes,
		pattern.LateDeductionPerMinute, pattern.LateDeductionMax,
		pattern.EarlyLeaveDeductionPerMinute, pattern.EarlyLeaveDeductionMax,
		pattern.UnderworkDeductionPerMinute, pattern.UnderworkDeductionMax,
		pattern.OvertimeAllowed, pattern.WFHAllowed, pattern.AttendanceMandatory,
		pattern.OverrideNationalHoliday, pattern.OverrideCompanyHoliday, pattern.OverrideCollectiveLeave, pattern.OverrideWeeklyOff,
		pattern.IsActive, pattern.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() != 1 {
		return shift.ErrShiftPatternNotFound
	}
	return nil
}
