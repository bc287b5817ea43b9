package create_reservation

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	RestaurantID  int64            // ID ресторана
	TableID       int64            // ID столика
	CustomerName  string           // Имя гостя
	CustomerPhone string           // Телефон гостя
	PartySize     int              // Размер компании
	Date          time.Time        // Дата бронирования (без времени)
	StartTime     types.TimeString // Время начала (например, "19:00")
	DurationHours float64          // Длительность в часах (возможно дробная)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID            int64
	RestaurantID  int64
	TableID       int64
	CustomerName  string
	CustomerPhone string
	PartySize     int
	Date          time.Time
	StartTime     types.TimeString
	DurationHours float64
	Status        string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
