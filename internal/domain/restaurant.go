package domain

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// Restaurant represents a venue owning a pool of tables and
// defining the operating hours every reservation must fit into
type Restaurant struct {
	ID          int64
	Name        string
	OpeningTime types.TimeString
	ClosingTime types.TimeString
	TotalTables int
	CreatedAt   time.Time
}

// IsOvernight returns true if the closing time is numerically earlier
// than the opening time, i.e. the operating window spans midnight
// (e.g. 22:00 - 02:00)
func (r *Restaurant) IsOvernight() bool {
	return r.ClosingTime.Minutes() < r.OpeningTime.Minutes()
}

// IsClosedAllDay returns true for the degenerate opening == closing case.
// По соглашению такое заведение считается закрытым весь день,
// любые кандидаты на бронирование отклоняются.
func (r *Restaurant) IsClosedAllDay() bool {
	return r.OpeningTime.Minutes() == r.ClosingTime.Minutes()
}

// ContainsTime reports whether a minute-of-day point lies within the
// operating window. For overnight hours the window wraps past midnight.
func (r *Restaurant) ContainsTime(minuteOfDay int) bool {
	open := r.OpeningTime.Minutes()
	close := r.ClosingTime.Minutes()

	if close < open {
		return minuteOfDay >= open || minuteOfDay <= close
	}
	return minuteOfDay >= open && minuteOfDay <= close
}

// ContainsInterval reports whether a candidate reservation interval fits
// the operating window: both the start and the end (taken modulo 1440
// for this check only) must pass ContainsTime. An interval whose nominal
// end runs past midnight is admissible only for overnight-style hours.
func (r *Restaurant) ContainsInterval(iv TimeInterval) bool {
	if r.IsClosedAllDay() {
		return false
	}
	if iv.CrossesMidnight() && !r.IsOvernight() {
		return false
	}
	return r.ContainsTime(iv.Start) && r.ContainsTime(iv.End%MinutesPerDay)
}
