package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-ReservationService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	RestaurantID int64           `json:"restaurantId"`
	Date         string          `json:"date"`
	PartySize    int             `json:"partySize"`
	Slots        []AvailableSlot `json:"slots"`
}

// AvailableSlot модель временного слота
type AvailableSlot struct {
	StartTime         string  `json:"startTime"`
	AvailableTableIDs []int64 `json:"availableTableIds"`
}

// ToUseCaseRequest создает запрос use case из параметров запроса
func ToUseCaseRequest(restaurantID int64, dateStr string, partySize int, durationHours float64) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		RestaurantID:  restaurantID,
		Date:          date,
		PartySize:     partySize,
		DurationHours: durationHours,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			StartTime:         slot.StartTime.String(),
			AvailableTableIDs: slot.AvailableTableIDs,
		}
	}

	return &AvailableSlotsResponse{
		RestaurantID: resp.RestaurantID,
		Date:         resp.Date.Format(domain.DateFormat),
		PartySize:    resp.PartySize,
		Slots:        slots,
	}
}
