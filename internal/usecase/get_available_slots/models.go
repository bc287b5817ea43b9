package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// Request модель запроса доступных слотов
type Request struct {
	RestaurantID  int64     // ID ресторана
	Date          time.Time // Дата бронирования
	PartySize     int       // Размер компании
	DurationHours float64   // Длительность в часах, по умолчанию 2 часа
}

// Response модель ответа со списком доступных слотов
type Response struct {
	RestaurantID int64
	Date         time.Time
	PartySize    int
	Slots        []domain.AvailableSlot
}
