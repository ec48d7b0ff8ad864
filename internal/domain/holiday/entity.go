package holiday

import "time"

type Type string

const (
	TypeNational        Type = "national"
	TypeCompany         Type = "company"
	TypeCollectiveLeave Type = "collective_leave"
)

func (t Type) IsValid() bool {
	switch t {
	case TypeNational, TypeCompany, TypeCollectiveLeave:
		return true
	}
	return false
}

type Holiday struct {
	ID             string
	Name           string
	Date           time.Time
	Type           Type
	IsActive       bool
	RepeatAnnually bool
	Description    *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      *time.Time
}

// Matches reports whether the holiday covers the given date.
// Repeat-annually holidays match on month and day of any year at or
// after the year they were defined for.
func (h *Holiday) Matches(date time.Time) bool {
	if !h.IsActive {
		return false
	}
	if h.Date.Year() == date.Year() && h.Date.Month() == date.Month() && h.Date.Day() == date.Day() {
		return true
	}
	if h.RepeatAnnually && date.Year() > h.Date.Year() {
		return h.Date.Month() == date.Month() && h.Date.Day() == date.Day()
	}
	return false
}
