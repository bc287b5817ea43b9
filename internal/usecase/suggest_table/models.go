package suggest_table

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// Request модель запроса подбора столика
type Request struct {
	RestaurantID  int64            // ID ресторана
	Date          time.Time        // Дата бронирования
	StartTime     types.TimeString // Время начала
	PartySize     int              // Размер компании
	DurationHours float64          // Длительность в часах
}

// Response модель ответа с подобранным столиком
type Response struct {
	TableID     int64
	TableNumber string
	Capacity    int
}
