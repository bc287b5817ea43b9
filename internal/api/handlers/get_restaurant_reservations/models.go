package get_restaurant_reservations

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/internal/service/reservations/models"
)

// ReservationsResponse HTTP response model
type ReservationsResponse struct {
	RestaurantID int64                 `json:"restaurantId"`
	Date         string                `json:"date"`
	Reservations []ReservationResponse `json:"reservations"`
}

// ReservationResponse модель бронирования в списке
type ReservationResponse struct {
	ID            int64   `json:"id"`
	TableID       int64   `json:"tableId"`
	CustomerName  string  `json:"customerName"`
	CustomerPhone string  `json:"customerPhone"`
	PartySize     int     `json:"partySize"`
	StartTime     string  `json:"startTime"`
	DurationHours float64 `json:"durationHours"`
	Status        string  `json:"status"`
	CreatedAt     string  `json:"createdAt"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(restaurantID int64, date time.Time, resp *models.ReservationListResponse) *ReservationsResponse {
	reservations := make([]ReservationResponse, len(resp.Reservations))
	for i, r := range resp.Reservations {
		reservations[i] = ReservationResponse{
			ID:            r.ID,
			TableID:       r.TableID,
			CustomerName:  r.CustomerName,
			CustomerPhone: r.CustomerPhone,
			PartySize:     r.PartySize,
			StartTime:     r.StartTime.String(),
			DurationHours: r.DurationHours,
			Status:        r.Status,
			CreatedAt:     r.CreatedAt.Format(time.RFC3339),
		}
	}

	return &ReservationsResponse{
		RestaurantID: restaurantID,
		Date:         date.Format(domain.DateFormat),
		Reservations: reservations,
	}
}
