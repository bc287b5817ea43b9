package create_table

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/service/restaurants/models"
)

// CreateTableRequest HTTP request model
type CreateTableRequest struct {
	TableNumber string `json:"tableNumber"`
	Capacity    int    `json:"capacity"`
}

// TableResponse HTTP response model
type TableResponse struct {
	ID           int64  `json:"id"`
	RestaurantID int64  `json:"restaurantId"`
	TableNumber  string `json:"tableNumber"`
	Capacity     int    `json:"capacity"`
	CreatedAt    string `json:"createdAt"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateTableRequest) ToServiceRequest(restaurantID int64) *models.CreateTableRequest {
	return &models.CreateTableRequest{
		RestaurantID: restaurantID,
		TableNumber:  r.TableNumber,
		Capacity:     r.Capacity,
	}
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.TableResponse) *TableResponse {
	return &TableResponse{
		ID:           resp.ID,
		RestaurantID: resp.RestaurantID,
		TableNumber:  resp.TableNumber,
		Capacity:     resp.Capacity,
		CreatedAt:    resp.CreatedAt.Format(time.RFC3339),
	}
}
