package holiday

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestHolidayMatches(t *testing.T) {
	h := &Holiday{Name: "Independence Day", Date: date(2025, 8, 17), IsActive: true}

	assert.True(t, h.Matches(date(2025, 8, 17)))
	assert.False(t, h.Matches(date(2025, 8, 18)))
	assert.False(t, h.Matches(date(2026, 8, 17)), "non-repeating holidays stay in their year")

	h.RepeatAnnually = true
	assert.True(t, h.Matches(date(2026, 8, 17)))
	assert.True(t, h.Matches(date(2030, 8, 17)))
	assert.False(t, h.Matches(date(2024, 8, 17)), "repetition only applies after the defining year")

	h.IsActive = false
	assert.False(t, h.Matches(date(2025, 8, 17)))
}

func TestTypeIsValid(t *testing.T) {
	assert.True(t, TypeNational.IsValid())
	assert.True(t, TypeCompany.IsValid())
	assert.True(t, TypeCollectiveLeave.IsValid())
	assert.False(t, Type("weekend").IsValid())
}
