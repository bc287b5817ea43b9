package domain

import "github.com/m04kA/SMC-ReservationService/pkg/types"

// AvailableSlot represents a candidate start time at which at least one
// suitable table is free. Slots with no free tables are never emitted.
type AvailableSlot struct {
	StartTime         types.TimeString
	AvailableTableIDs []int64
}

// HasTables returns true if the slot offers at least one free table
func (s *AvailableSlot) HasTables() bool {
	return len(s.AvailableTableIDs) > 0
}
