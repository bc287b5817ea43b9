package models

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// UpdateReservationRequest запрос на изменение бронирования.
// Каждое поле опционально: nil означает "не менять".
type UpdateReservationRequest struct {
	TableID         *int64
	CustomerName    *string
	CustomerPhone   *string
	PartySize       *int
	ReservationDate *time.Time
	StartTime       *types.TimeString
	DurationHours   *float64
	Status          *string
}

// ReservationResponse модель бронирования для ответа
type ReservationResponse struct {
	ID              int64
	RestaurantID    int64
	TableID         int64
	CustomerName    string
	CustomerPhone   string
	PartySize       int
	ReservationDate time.Time
	StartTime       types.TimeString
	DurationHours   float64
	Status          string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// ReservationListResponse список бронирований
type ReservationListResponse struct {
	Reservations []ReservationResponse
}

// FromDomainReservation конвертирует domain.Reservation в response модель
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	return &ReservationResponse{
		ID:              r.ID,
		RestaurantID:    r.RestaurantID,
		TableID:         r.TableID,
		CustomerName:    r.CustomerName,
		CustomerPhone:   r.CustomerPhone,
		PartySize:       r.PartySize,
		ReservationDate: r.ReservationDate,
		StartTime:       r.StartTime,
		DurationHours:   r.DurationHours,
		Status:          string(r.Status),
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

// FromDomainReservationList конвертирует список бронирований
func FromDomainReservationList(reservations []*domain.Reservation) *ReservationListResponse {
	result := make([]ReservationResponse, len(reservations))
	for i, r := range reservations {
		result[i] = *FromDomainReservation(r)
	}
	return &ReservationListResponse{Reservations: result}
}

// ToDomainPatch конвертирует запрос в domain.ReservationPatch
func (r *UpdateReservationRequest) ToDomainPatch() (domain.ReservationPatch, error) {
	patch := domain.ReservationPatch{
		TableID:         r.TableID,
		CustomerName:    r.CustomerName,
		CustomerPhone:   r.CustomerPhone,
		PartySize:       r.PartySize,
		ReservationDate: r.ReservationDate,
		StartTime:       r.StartTime,
		DurationHours:   r.DurationHours,
	}

	if r.Status != nil {
		status := domain.ReservationStatus(*r.Status)
		if !domain.IsValidStatus(status) {
			return domain.ReservationPatch{}, ErrInvalidStatus
		}
		patch.Status = &status
	}

	return patch, nil
}
