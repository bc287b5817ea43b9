package check_availability

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	checkAvailability "github.com/m04kA/SMC-ReservationService/internal/usecase/check_availability"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	TableID   int64  `json:"tableId"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	Available bool   `json:"available"`
}

// ToUseCaseRequest создает запрос use case из параметров запроса
func ToUseCaseRequest(tableID int64, dateStr, startTimeStr string, durationHours float64) (*checkAvailability.Request, error) {
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

	return &checkAvailability.Request{
		TableID:       tableID,
		Date:          date,
		StartTime:     startTime,
		DurationHours: durationHours,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkAvailability.Response, dateStr, startTimeStr string) *AvailabilityResponse {
	return &AvailabilityResponse{
		TableID:   resp.TableID,
		Date:      dateStr,
		StartTime: startTimeStr,
		Available: resp.Available,
	}
}
