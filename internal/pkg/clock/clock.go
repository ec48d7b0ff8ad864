// Package clock provides an injectable time source so calendar-sensitive
// logic (holiday checks, expiry sweeps, retroactivity) stays deterministic
// under test.
package clock

import "time"

type Clock interface {
	Now() time.Time
}

// System is the wall clock.
type System struct{}

func (System) Now() time.Time {
	return time.Now()
}

// Fixed always reports the same instant.
type Fixed struct {
	T time.Time
}

func (f Fixed) Now() time.Time {
	return f.T
}

// At builds a Fixed clock from a date string ("2006-01-02") plus an
// optional clock time ("15:04"). Panics on malformed input, so it is
// only suitable for tests and seed tooling.
func At(date string, clockTime string) Fixed {
	layout := "2006-01-02"
	value := date
	if clockTime != "" {
		layout = "2006-01-02 15:04"
		value = date + " " + clockTime
	}
	t, err := time.Parse(layout, value)
	if err != nil {
		panic(err)
	}
	return Fixed{T: t}
}

// DateOf truncates t to midnight UTC, the canonical form for
// per-day keys such as attendance dates and holiday dates.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
