package domain

import "time"

// Table represents a bookable table with fixed capacity,
// belonging to exactly one restaurant
type Table struct {
	ID           int64
	RestaurantID int64
	TableNumber  string // уникален в рамках ресторана
	Capacity     int
	CreatedAt    time.Time
}

// Fits returns true if the table can seat the given party
func (t *Table) Fits(partySize int) bool {
	return t.Capacity >= partySize
}
