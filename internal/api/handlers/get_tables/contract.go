package get_tables

import (
	"context"

	"github.com/m04kA/SMC-ReservationService/internal/service/restaurants/models"
)

type RestaurantService interface {
	GetTables(ctx context.Context, restaurantID int64) ([]models.TableResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
