package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReservation_StatusPredicates(t *testing.T) {
	tests := []struct {
		status         ReservationStatus
		active         bool
		cancelled      bool
		canBeCancelled bool
		canBeUpdated   bool
	}{
		{StatusPending, true, false, true, true},
		{StatusConfirmed, true, false, true, true},
		{StatusCompleted, true, false, false, false},
		{StatusCancelled, false, true, false, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			r := &Reservation{Status: tt.status}
			assert.Equal(t, tt.active, r.IsActive())
			assert.Equal(t, tt.cancelled, r.IsCancelled())
			assert.Equal(t, tt.canBeCancelled, r.CanBeCancelled())
			assert.Equal(t, tt.canBeUpdated, r.CanBeUpdated())
		})
	}
}

func TestStatusLists_CoverAllStatuses(t *testing.T) {
	// Каждый допустимый статус строго в одном из двух списков,
	// и принадлежность согласована с IsActive
	all := append(append([]ReservationStatus{}, ActiveStatuses...), InactiveStatuses...)
	assert.Len(t, all, 4)

	for _, s := range all {
		assert.True(t, IsValidStatus(s))
	}

	for _, s := range ActiveStatuses {
		assert.True(t, (&Reservation{Status: s}).IsActive())
		assert.NotContains(t, InactiveStatuses, s)
	}
	for _, s := range InactiveStatuses {
		assert.False(t, (&Reservation{Status: s}).IsActive())
	}
}

func TestIsValidStatus(t *testing.T) {
	assert.True(t, IsValidStatus(StatusPending))
	assert.False(t, IsValidStatus("unknown"))
	assert.False(t, IsValidStatus(""))
}
