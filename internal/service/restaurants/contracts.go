package restaurants

import (
	"context"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// RestaurantRepository интерфейс репозитория ресторанов
type RestaurantRepository interface {
	Create(ctx context.Context, restaurant *domain.Restaurant) (*domain.Restaurant, error)
	GetByID(ctx context.Context, id int64) (*domain.Restaurant, error)
	UpdateTotalTables(ctx context.Context, id int64, count int) error
}

// TableRepository интерфейс репозитория столиков
type TableRepository interface {
	Create(ctx context.Context, table *domain.Table) (*domain.Table, error)
	GetByRestaurantID(ctx context.Context, restaurantID int64) ([]*domain.Table, error)
	GetByRestaurantAndNumber(ctx context.Context, restaurantID int64, tableNumber string) (*domain.Table, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
