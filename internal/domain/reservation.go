package domain

import (
	"math"
	"time"

	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// ReservationStatus represents the status of a table reservation
type ReservationStatus string

const (
	StatusPending   ReservationStatus = "pending"
	StatusConfirmed ReservationStatus = "confirmed"
	StatusCompleted ReservationStatus = "completed"
	StatusCancelled ReservationStatus = "cancelled"
)

// IsValidStatus проверяет, что статус входит в список допустимых
func IsValidStatus(s ReservationStatus) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// Reservation represents a booking of one table for a time window on a date
type Reservation struct {
	ID            int64
	RestaurantID  int64 // денормализовано, должно совпадать с Table.RestaurantID
	TableID       int64
	CustomerName  string
	CustomerPhone string
	PartySize     int
	// Дата без компонента времени
	ReservationDate time.Time
	StartTime       types.TimeString
	DurationHours   float64
	Status          ReservationStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the reservation counts toward table occupancy
func (r *Reservation) IsActive() bool {
	return r.Status != StatusCancelled
}

// IsCancelled returns true if the reservation has been cancelled
func (r *Reservation) IsCancelled() bool {
	return r.Status == StatusCancelled
}

// CanBeCancelled returns true if the reservation can be cancelled
func (r *Reservation) CanBeCancelled() bool {
	return r.Status == StatusPending || r.Status == StatusConfirmed
}

// CanBeUpdated returns true if the reservation can be updated
func (r *Reservation) CanBeUpdated() bool {
	return r.Status == StatusPending || r.Status == StatusConfirmed
}

// DurationMinutes returns the reservation duration in whole minutes
func (r *Reservation) DurationMinutes() int {
	return DurationToMinutes(r.DurationHours)
}

// Interval returns the half-open occupancy interval of the reservation.
// The end is NOT reduced modulo 1440: a reservation pushed past midnight
// keeps its unwrapped end so that overlap comparison stays correct.
func (r *Reservation) Interval() TimeInterval {
	return NewTimeInterval(r.StartTime, r.DurationMinutes())
}

// DurationToMinutes конвертирует длительность в часах (возможно дробную)
// в целое количество минут с округлением
func DurationToMinutes(durationHours float64) int {
	return int(math.Round(durationHours * 60))
}
