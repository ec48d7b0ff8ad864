package holiday

import (
	"context"
	"testing"
	"time"

	"github.com/akademika/hris-backend-go/internal/domain/holiday"
	"github.com/akademika/hris-backend-go/internal/pkg/clock"
	"github.com/akademika/hris-backend-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHolidayFixture() (holiday.Service, *memory.HolidayRepository) {
	repo := memory.NewHolidayRepository()
	return NewHolidayService(repo, clock.At("2025-01-02", "08:00")), repo
}

func TestCreateHoliday(t *testing.T) {
	svc, _ := newHolidayFixture()

	h, err := svc.Create(context.Background(), &holiday.CreateHolidayRequest{
		Name: "Independence Day",
		Date: "2025-08-17",
		Type: "national",
	})
	require.NoError(t, err)

	assert.True(t, h.IsActive, "new holidays start active")
	assert.Equal(t, holiday.TypeNational, h.Type)
	assert.Equal(t, "2025-08-17", h.Date.Format(time.DateOnly))
}

func TestCreateHolidayDuplicateDate(t *testing.T) {
	svc, _ := newHolidayFixture()

	req := &holiday.CreateHolidayRequest{Name: "Company Day", Date: "2025-08-17", Type: "company"}
	_, err := svc.Create(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, holiday.ErrHolidayDateExists)
}

func TestCreateHolidayInvalidType(t *testing.T) {
	svc, _ := newHolidayFixture()

	_, err := svc.Create(context.Background(), &holiday.CreateHolidayRequest{
		Name: "Weekend", Date: "2025-08-17", Type: "weekend",
	})
	assert.Error(t, err)
}

func TestIsHolidayRepeatAnnually(t *testing.T) {
	svc, _ := newHolidayFixture()
	ctx := context.Background()

	_, err := svc.Create(ctx, &holiday.CreateHolidayRequest{
		Name: "New Year", Date: "2020-01-01", Type: "national", RepeatAnnually: true,
	})
	require.NoError(t, err)

	h, err := svc.IsHoliday(ctx, time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.NotNil(t, h)
	assert.Equal(t, "New Year", h.Name)

	h, err = svc.IsHoliday(ctx, time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Nil(t, h)
}

func TestIsHolidayIgnoresInactive(t *testing.T) {
	svc, repo := newHolidayFixture()
	ctx := context.Background()

	h, err := svc.Create(ctx, &holiday.CreateHolidayRequest{
		Name: "Townhall", Date: "2025-05-02", Type: "company",
	})
	require.NoError(t, err)

	inactive := false
	_, err = svc.Update(ctx, h.ID, &holiday.UpdateHolidayRequest{IsActive: &inactive})
	require.NoError(t, err)

	got, err := svc.IsHoliday(ctx, time.Date(2025, 5, 2, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Nil(t, got)

	// The row itself still exists.
	_, err = repo.GetByID(ctx, h.ID)
	assert.NoError(t, err)
}

func TestUpdateHolidayDateCollision(t *testing.T) {
	svc, _ := newHolidayFixture()
	ctx := context.Background()

	_, err := svc.Create(ctx, &holiday.CreateHolidayRequest{Name: "A", Date: "2025-05-01", Type: "national"})
	require.NoError(t, err)
	b, err := svc.Create(ctx, &holiday.CreateHolidayRequest{Name: "B", Date: "2025-05-02", Type: "company"})
	require.NoError(t, err)

	collide := "2025-05-01"
	_, err = svc.Update(ctx, b.ID, &holiday.UpdateHolidayRequest{Date: &collide})
	assert.ErrorIs(t, err, holiday.ErrHolidayDateExists)
}

func TestDeleteHoliday(t *testing.T) {
	svc, _ := newHolidayFixture()
	ctx := context.Background()

	h, err := svc.Create(ctx, &holiday.CreateHolidayRequest{Name: "A", Date: "2025-05-01", Type: "national"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, h.ID))

	_, err = svc.GetByID(ctx, h.ID)
	assert.ErrorIs(t, err, holiday.ErrHolidayNotFound)

	got, err := svc.IsHoliday(ctx, time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Nil(t, got, "deleted holidays no longer force days off")

	assert.ErrorIs(t, svc.Delete(ctx, h.ID), holiday.ErrHolidayNotFound)
}

func TestListByYearIncludesRepeating(t *testing.T) {
	svc, _ := newHolidayFixture()
	ctx := context.Background()

	_, err := svc.Create(ctx, &holiday.CreateHolidayRequest{
		Name: "New Year", Date: "2020-01-01", Type: "national", RepeatAnnually: true,
	})
	require.NoError(t, err)
	_, err = svc.Create(ctx, &holiday.CreateHolidayRequest{
		Name: "One Off", Date: "2024-03-03", Type: "company",
	})
	require.NoError(t, err)
	_, err = svc.Create(ctx, &holiday.CreateHolidayRequest{
		Name: "This Year", Date: "2025-06-06", Type: "company",
	})
	require.NoError(t, err)

	list, err := svc.ListByYear(ctx, 2025)
	require.NoError(t, err)

	names := make([]string, 0, len(list))
	for _, h := range list {
		names = append(names, h.Name)
	}
	assert.ElementsMatch(t, []string{"New Year", "This Year"}, names)
}
