package get_tables

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/service/restaurants/models"
)

// TablesResponse HTTP response model
type TablesResponse struct {
	RestaurantID int64           `json:"restaurantId"`
	Tables       []TableResponse `json:"tables"`
}

// TableResponse модель столика
type TableResponse struct {
	ID          int64  `json:"id"`
	TableNumber string `json:"tableNumber"`
	Capacity    int    `json:"capacity"`
	CreatedAt   string `json:"createdAt"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(restaurantID int64, tables []models.TableResponse) *TablesResponse {
	result := make([]TableResponse, len(tables))
	for i, t := range tables {
		result[i] = TableResponse{
			ID:          t.ID,
			TableNumber: t.TableNumber,
			Capacity:    t.Capacity,
			CreatedAt:   t.CreatedAt.Format(time.RFC3339),
		}
	}

	return &TablesResponse{
		RestaurantID: restaurantID,
		Tables:       result,
	}
}
