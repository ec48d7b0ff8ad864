package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/akademika/hris-backend-go/internal/domain/holiday"
	"github.com/akademika/hris-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type holidayRepositoryImpl struct {
	db *database.DB
}

func NewHolidayRepository(db *database.DB) holiday.Repository {
	return &holidayRepositoryImpl{db: db}
}

const holidayColumns = `
	id, name, date, type, is_active, repeat_annually, description,
	created_at, updated_at, deleted_at
`

func scanHoliday(row pgx.Row) (*holiday.Holiday, error) {
	var h holiday.Holiday
	err := row.Scan(
		&h.ID, &h.Name, &h.Date, &h.Type, &h.IsActive, &h.RepeatAnnually, &h.Description,
		&h.CreatedAt, &h.UpdatedAt, &h.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, holiday.ErrHolidayNotFound
		}
		return nil, err
	}
	return &h, nil
}

func (r *holidayRepositoryImpl) GetByID(ctx context.Context, id string) (*holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + holidayColumns + ` FROM holidays WHERE id = $1 AND deleted_at IS NULL`
	return scanHoliday(q.QueryRow(ctx, query, id))
}

func (r *holidayRepositoryImpl) GetByDate(ctx context.Context, date time.Time) (*holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + holidayColumns + ` FROM holidays WHERE date = $1 AND deleted_at IS NULL`
	return scanHoliday(q.QueryRow(ctx, query, date))
}

func (r *holidayRepositoryImpl) ListActive(ctx context.Context) ([]*holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + holidayColumns + ` FROM holidays WHERE is_active = TRUE AND deleted_at IS NULL ORDER BY date`
	return r.list(ctx, q, query)
}

func (r *holidayRepositoryImpl) ListByYear(ctx context.Context, year int) ([]*holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + holidayColumns + `
		FROM holidays
		WHERE deleted_at IS NULL
		  AND (EXTRACT(YEAR FROM date) = $1 OR (repeat_annually AND EXTRACT(YEAR FROM date) < $1))
		ORDER BY date
	`
	return r.list(ctx, q, query, year)
}

func (r *holidayRepositoryImpl) list(ctx context.Context, q database.Querier, query string, args ...interface{}) ([]*holiday.Holiday, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	holidays := make([]*holiday.Holiday, 0)
	for rows.Next() {
		var h holiday.Holiday
		if err := rows.Scan(
			&h.ID, &h.Name, &h.Date, &h.Type, &h.IsActive, &h.RepeatAnnually, &h.Description,
			&h.CreatedAt, &h.UpdatedAt, &h.DeletedAt,
		); err != nil {
			return nil, err
		}
		holidays = append(holidays, &h)
	}
	return holidays, nil
}

func (r *holidayRepositoryImpl) Create(ctx context.Context, h *holiday.Holiday) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO holidays (id, name, date, type, is_active, repeat_annually, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := q.Exec(ctx, query, h.ID, h.Name, h.Date, h.Type, h.IsActive, h.RepeatAnnually, h.Description, h.CreatedAt, h.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return holiday.ErrHolidayDateExists
		}
		return err
	}
	return nil
}

func (r *holidayRepositoryImpl) Update(ctx context.Context, h *holiday.Holiday) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE holidays
		SET name = $2, date = $3, type = $4, is_active = $5, repeat_annually = $6, description = $7, updated_at = $8
		WHERE id = $1 AND deleted_at IS NULL
	`
	tag, err := q.Exec(ctx, query, h.ID, h.Name, h.Date, h.Type, h.IsActive, h.RepeatAnnually, h.Description, h.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return holiday.ErrHolidayDateExists
		}
		return err
	}
	if tag.RowsAffected() != 1 {
		return holiday.ErrHolidayNotFound
	}
	return nil
}

func (r *holidayRepositoryImpl) SoftDelete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE holidays SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`
	tag, err := q.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() != 1 {
		return holiday.ErrHolidayNotFound
	}
	return nil
}
