package check_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/internal/infra/storage/table"
)

// UseCase usecase проверки доступности столика на интервал времени
type UseCase struct {
	tableRepo       TableRepository
	reservationRepo ReservationRepository
	log             Logger
}

// NewUseCase создаёт usecase проверки доступности столика
func NewUseCase(tableRepo TableRepository, reservationRepo ReservationRepository, log Logger) *UseCase {
	return &UseCase{
		tableRepo:       tableRepo,
		reservationRepo: reservationRepo,
		log:             log,
	}
}

// Execute проверяет, свободен ли столик на заданный интервал.
// Столик доступен, если интервал не пересекается ни с одним
// активным бронированием. Отменённые бронирования не учитываются.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	if _, err := uc.tableRepo.GetByID(ctx, req.TableID); err != nil {
		if errors.Is(err, table.ErrTableNotFound) {
			return nil, ErrTableNotFound
		}
		return nil, fmt.Errorf("%w: Execute - get table: %v", ErrInternal, err)
	}

	reservations, err := uc.reservationRepo.GetByTableAndDate(ctx, req.TableID, req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: Execute - get reservations for table: %v", ErrInternal, err)
	}

	candidate := domain.NewTimeInterval(req.StartTime, domain.DurationToMinutes(req.DurationHours))

	return &Response{
		TableID:   req.TableID,
		Available: !domain.HasOverlap(candidate, reservations),
	}, nil
}

func validateRequest(req *Request) error {
	if req.TableID <= 0 {
		return fmt.Errorf("%w: table_id must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: start_time must be in HH:MM format", ErrInvalidInput)
	}
	if req.DurationHours <= 0 || req.DurationHours > domain.MaxDurationHours {
		return fmt.Errorf("%w: duration_hours must be in range (0, %.0f]", ErrInvalidInput, domain.MaxDurationHours)
	}
	return nil
}
