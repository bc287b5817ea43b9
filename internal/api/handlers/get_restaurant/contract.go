package get_restaurant

import (
	"context"

	"github.com/m04kA/SMC-ReservationService/internal/service/restaurants/models"
)

type RestaurantService interface {
	GetRestaurant(ctx context.Context, id int64) (*models.RestaurantWithTablesResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
