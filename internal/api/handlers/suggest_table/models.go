package suggest_table

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	suggestTable "github.com/m04kA/SMC-ReservationService/internal/usecase/suggest_table"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// SuggestedTableResponse HTTP response model
type SuggestedTableResponse struct {
	TableID     int64  `json:"tableId"`
	TableNumber string `json:"tableNumber"`
	Capacity    int    `json:"capacity"`
}

// ToUseCaseRequest создает запрос use case из параметров запроса
func ToUseCaseRequest(restaurantID int64, dateStr, startTimeStr string, partySize int, durationHours float64) (*suggestTable.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(startTimeStr)
	if err != nil {
		return nil, err
	}

	if durationHours == 0 {
		durationHours = domain.DefaultDurationHours
	}

	return &suggestTable.Request{
		RestaurantID:  restaurantID,
		Date:          date,
		StartTime:     startTime,
		PartySize:     partySize,
		DurationHours: durationHours,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *suggestTable.Response) *SuggestedTableResponse {
	return &SuggestedTableResponse{
		TableID:     resp.TableID,
		TableNumber: resp.TableNumber,
		Capacity:    resp.Capacity,
	}
}
