package get_restaurant

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/service/restaurants/models"
)

// RestaurantResponse HTTP response model
type RestaurantResponse struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	OpeningTime string          `json:"openingTime"`
	ClosingTime string          `json:"closingTime"`
	TotalTables int             `json:"totalTables"`
	CreatedAt   string          `json:"createdAt"`
	Tables      []TableResponse `json:"tables"`
}

// TableResponse модель столика в составе ресторана
type TableResponse struct {
	ID          int64  `json:"id"`
	TableNumber string `json:"tableNumber"`
	Capacity    int    `json:"capacity"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.RestaurantWithTablesResponse) *RestaurantResponse {
	tables := make([]TableResponse, len(resp.Tables))
	for i, t := range resp.Tables {
		tables[i] = TableResponse{
			ID:          t.ID,
			TableNumber: t.TableNumber,
			Capacity:    t.Capacity,
		}
	}

	return &RestaurantResponse{
		ID:          resp.Restaurant.ID,
		Name:        resp.Restaurant.Name,
		OpeningTime: resp.Restaurant.OpeningTime.String(),
		ClosingTime: resp.Restaurant.ClosingTime.String(),
		TotalTables: resp.Restaurant.TotalTables,
		CreatedAt:   resp.Restaurant.CreatedAt.Format(time.RFC3339),
		Tables:      tables,
	}
}
