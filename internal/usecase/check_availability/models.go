package check_availability

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// Request модель запроса проверки доступности столика
type Request struct {
	TableID       int64            // ID столика
	Date          time.Time        // Дата бронирования
	StartTime     types.TimeString // Время начала
	DurationHours float64          // Длительность в часах
}

// Response модель ответа проверки доступности
type Response struct {
	TableID   int64
	Available bool
}
