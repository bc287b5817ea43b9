package domain

import "github.com/m04kA/SMC-ReservationService/pkg/types"

// TimeInterval is a half-open [Start, End) range in minutes since midnight.
// End may exceed 1440 when a reservation nominally runs past midnight;
// overlap comparison always works on the unwrapped values.
type TimeInterval struct {
	Start int
	End   int
}

// NewTimeInterval builds the occupancy interval for a window starting at
// start and lasting durationMinutes. No clamping is applied to the end.
func NewTimeInterval(start types.TimeString, durationMinutes int) TimeInterval {
	s := start.Minutes()
	return TimeInterval{Start: s, End: s + durationMinutes}
}

// Overlaps reports whether two half-open intervals intersect.
// Strict inequalities: back-to-back intervals (one ending exactly when
// the other starts) do NOT overlap.
func (i TimeInterval) Overlaps(other TimeInterval) bool {
	return i.Start < other.End && other.Start < i.End
}

// CrossesMidnight reports whether the interval nominally extends past 24:00
func (i TimeInterval) CrossesMidnight() bool {
	return i.End > MinutesPerDay
}

// IsEmpty reports whether the interval has zero (or negative) length.
// An empty interval never overlaps anything.
func (i TimeInterval) IsEmpty() bool {
	return i.End <= i.Start
}

// StartClock returns the start as "HH:MM"
func (i TimeInterval) StartClock() types.TimeString {
	return types.NewTimeStringFromMinutes(i.Start)
}

// EndClock returns the end as "HH:MM", reduced modulo 1440.
// Callers needing overflow detection must use CrossesMidnight.
func (i TimeInterval) EndClock() types.TimeString {
	return types.NewTimeStringFromMinutes(i.End)
}

// HasOverlap проверяет, пересекается ли кандидат хотя бы с одним
// активным бронированием из списка. Отмененные бронирования
// не учитываются независимо от их времени.
func HasOverlap(candidate TimeInterval, reservations []*Reservation) bool {
	for _, res := range reservations {
		if !res.IsActive() {
			continue
		}
		if candidate.Overlaps(res.Interval()) {
			return true
		}
	}
	return false
}
