package create_restaurant

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/service/restaurants/models"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// CreateRestaurantRequest HTTP request model
type CreateRestaurantRequest struct {
	Name        string `json:"name"`
	OpeningTime string `json:"openingTime"` // "10:00"
	ClosingTime string `json:"closingTime"` // "22:00"
}

// RestaurantResponse HTTP response model
type RestaurantResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	OpeningTime string `json:"openingTime"`
	ClosingTime string `json:"closingTime"`
	TotalTables int    `json:"totalTables"`
	CreatedAt   string `json:"createdAt"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateRestaurantRequest) ToServiceRequest() (*models.CreateRestaurantRequest, error) {
	openingTime, err := types.NewTimeStringFromString(r.OpeningTime)
	if err != nil {
		return nil, err
	}

	closingTime, err := types.NewTimeStringFromString(r.ClosingTime)
	if err != nil {
		return nil, err
	}

	return &models.CreateRestaurantRequest{
		Name:        r.Name,
		OpeningTime: openingTime,
		ClosingTime: closingTime,
	}, nil
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.RestaurantResponse) *RestaurantResponse {
	return &RestaurantResponse{
		ID:          resp.ID,
		Name:        resp.Name,
		OpeningTime: resp.OpeningTime.String(),
		ClosingTime: resp.ClosingTime.String(),
		TotalTables: resp.TotalTables,
		CreatedAt:   resp.CreatedAt.Format(time.RFC3339),
	}
}
