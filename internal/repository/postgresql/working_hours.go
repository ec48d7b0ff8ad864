package postgresql

import (
	"context"
	"errors"

	"github.com/akademika/hris-backend-go/internal/domain/shift"
	"github.com/akademika/hris-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type workingHoursRepositoryImpl struct {
	db *database.DB
}

func NewWorkingHoursRepository(db *database.DB) shift.WorkingHoursRepository {
	return &workingHoursRepositoryImpl{db: db}
}

const workingHoursColumns = `
	id, code, name, start_time, end_time, is_overnight,
	required_work_minutes, break_minutes, created_at, updated_at, deleted_at
`

func (r *workingHoursRepositoryImpl) GetByID(ctx context.Context, id string) (*shift.WorkingHoursRule, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + workingHoursColumns + ` FROM working_hours_rules WHERE id = $1 AND deleted_at IS NULL`
	var rule shift.WorkingHoursRule
	err := q.QueryRow(ctx, query, id).Scan(
		&rule.ID, &rule.Code, &rule.Name, &rule.StartTime, &rule.EndTime, &rule.IsOvernight,
		&rule.RequiredWorkMinutes, &rule.BreakMinutes, &rule.CreatedAt, &rule.UpdatedAt, &rule.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shift.ErrWorkingHoursRuleNotFound
		}
		return nil, err
	}
	return &rule, nil
}

func (r *workingHoursRepositoryImpl) List(ctx context.Context) ([]*shift.WorkingHoursRule, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + workingHoursColumns + ` FROM working_hours_rules WHERE deleted_at IS NULL ORDER BY code`
	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	rules := make([]*shift.WorkingHoursRule, 0)
	for rows.Next() {
		var rule shift.WorkingHoursRule
		if err := rows.Scan(
			&rule.ID, &rule.Code, &rule.Name, &rule.StartTime, &rule.EndTime, &rule.IsOvernight,
			&rule.RequiredWorkMinutes, &rule.BreakMinutes, &rule.CreatedAt, &rule.UpdatedAt, &rule.DeletedAt,
		); err != nil {
			return nil, err
		}
		rules = append(rules, &rule)
	}
	return rules, nil
}

func (r *workingHoursRepositoryImpl) Create(ctx context.Context, rule *shift.WorkingHoursRule) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO working_hours_rules (
			id, code, name, start_time, end_time, is_overnight,
			required_work_minutes, break_minutes, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := q.Exec(ctx, query,
		rule.ID, rule.Code, rule.Name, rule.StartTime, rule.EndTime, rule.IsOvernight,
		rule.RequiredWorkMinutes, rule.BreakMinutes, rule.CreatedAt, rule.UpdatedAt,
	)
	return err
}

type shiftPackageRepositoryImpl struct {
	db *database.DB
}

func NewShiftPackageRepository(db *database.DB) shift.PackageRepository {
	return &shiftPackageRepositoryImpl{db: db}
}

func (r *shiftPackageRepositoryImpl) GetByID(ctx context.Context, id string) (*shift.ShiftPackage, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, monday_rule_id, tuesday_rule_id, wednesday_rule_id,
			   thursday_rule_id, friday_rule_id, saturday_rule_id, sunday_rule_id,
			   created_at, updated_at, deleted_at
		FROM shift_packages
		WHERE id = $1 AND deleted_at IS NULL
	`
	var pkg shift.ShiftPackage
	err := q.QueryRow(ctx, query, id).Scan(
		&pkg.ID, &pkg.Name, &pkg.MondayID, &pkg.TuesdayID, &pkg.WednesdayID,
		&pkg.ThursdayID, &pkg.FridayID, &pkg.SaturdayID, &pkg.SundayID,
		&pkg.CreatedAt, &pkg.UpdatedAt, &pkg.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shift.ErrShiftPackageNotFound
		}
		return nil, err
	}
	return &pkg, nil
}

func (r *shiftPackageRepositoryImpl) Create(ctx context.Context, pkg *shift.ShiftPackage) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO shift_packages (
			id, name, monday_rule_id, tuesday_rule_id, wednesday_rule_id,
			thursday_rule_id, friday_rule_id, saturday_rule_id, sunday_rule_id,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := q.Exec(ctx, query,
		pkg.ID, pkg.Name, pkg.MondayID, pkg.TuesdayID, pkg.WednesdayID,
		pkg.ThursdayID, pkg.FridayID, pkg.SaturdayID, pkg.SundayID,
		pkg.CreatedAt, pkg.UpdatedAt,
	)
	return err
}
