package update_reservation

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/internal/service/reservations/models"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// UpdateReservationRequest HTTP request model.
// Все поля опциональны, отсутствующие не изменяются.
type UpdateReservationRequest struct {
	TableID       *int64   `json:"tableId,omitempty"`
	CustomerName  *string  `json:"customerName,omitempty"`
	CustomerPhone *string  `json:"customerPhone,omitempty"`
	PartySize     *int     `json:"partySize,omitempty"`
	Date          *string  `json:"date,omitempty"`      // "2026-09-15"
	StartTime     *string  `json:"startTime,omitempty"` // "19:00"
	DurationHours *float64 `json:"durationHours,omitempty"`
	Status        *string  `json:"status,omitempty"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID            int64   `json:"id"`
	RestaurantID  int64   `json:"restaurantId"`
	TableID       int64   `json:"tableId"`
	CustomerName  string  `json:"customerName"`
	CustomerPhone string  `json:"customerPhone"`
	PartySize     int     `json:"partySize"`
	Date          string  `json:"date"`
	StartTime     string  `json:"startTime"`
	DurationHours float64 `json:"durationHours"`
	Status        string  `json:"status"`
	CreatedAt     string  `json:"createdAt"`
	UpdatedAt     string  `json:"updatedAt"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateReservationRequest) ToServiceRequest() (*models.UpdateReservationRequest, error) {
	req := &models.UpdateReservationRequest{
		TableID:       r.TableID,
		CustomerName:  r.CustomerName,
		CustomerPhone: r.CustomerPhone,
		PartySize:     r.PartySize,
		DurationHours: r.DurationHours,
		Status:        r.Status,
	}

	if r.Date != nil {
		date, err := time.Parse(domain.DateFormat, *r.Date)
		if err != nil {
			return nil, err
		}
		req.ReservationDate = &date
	}

	if r.StartTime != nil {
		startTime, err := types.NewTimeStringFromString(*r.StartTime)
		if err != nil {
			return nil, err
		}
		req.StartTime = &startTime
	}

	return req, nil
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.ReservationResponse) *ReservationResponse {
	return &ReservationResponse{
		ID:            resp.ID,
		RestaurantID:  resp.RestaurantID,
		TableID:       resp.TableID,
		CustomerName:  resp.CustomerName,
		CustomerPhone: resp.CustomerPhone,
		PartySize:     resp.PartySize,
		Date:          resp.ReservationDate.Format(domain.DateFormat),
		StartTime:     resp.StartTime.String(),
		DurationHours: resp.DurationHours,
		Status:        resp.Status,
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     resp.UpdatedAt.Format(time.RFC3339),
	}
}
