package suggest_table

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/internal/infra/storage/restaurant"
)

// UseCase usecase подбора оптимального столика под размер компании
type UseCase struct {
	restaurantRepo  RestaurantRepository
	tableRepo       TableRepository
	reservationRepo ReservationRepository
	log             Logger
}

// NewUseCase создаёт usecase подбора столика
func NewUseCase(
	restaurantRepo RestaurantRepository,
	tableRepo TableRepository,
	reservationRepo ReservationRepository,
	log Logger,
) *UseCase {
	return &UseCase{
		restaurantRepo:  restaurantRepo,
		tableRepo:       tableRepo,
		reservationRepo: reservationRepo,
		log:             log,
	}
}

// Execute подбирает свободный столик минимальной достаточной вместимости.
// Столики приходят из репозитория отсортированными по вместимости,
// поэтому первый свободный и есть оптимальный. При равной вместимости
// выбирается первый встреченный.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	if _, err := uc.restaurantRepo.GetByID(ctx, req.RestaurantID); err != nil {
		if errors.Is(err, restaurant.ErrRestaurantNotFound) {
			return nil, ErrRestaurantNotFound
		}
		return nil, fmt.Errorf("%w: Execute - get restaurant: %v", ErrInternal, err)
	}

	tables, err := uc.tableRepo.GetSuitable(ctx, req.RestaurantID, req.PartySize)
	if err != nil {
		return nil, fmt.Errorf("%w: Execute - get suitable tables: %v", ErrInternal, err)
	}

	candidate := domain.NewTimeInterval(req.StartTime, domain.DurationToMinutes(req.DurationHours))

	for _, tbl := range tables {
		reservations, err := uc.reservationRepo.GetByTableAndDate(ctx, tbl.ID, req.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: Execute - get reservations for table %d: %v", ErrInternal, tbl.ID, err)
		}

		if !domain.HasOverlap(candidate, reservations) {
			return &Response{
				TableID:     tbl.ID,
				TableNumber: tbl.TableNumber,
				Capacity:    tbl.Capacity,
			}, nil
		}
	}

	return nil, ErrNoTableAvailable
}

func validateRequest(req *Request) error {
	if req.RestaurantID <= 0 {
		return fmt.Errorf("%w: restaurant_id must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: start_time must be in HH:MM format", ErrInvalidInput)
	}
	if req.PartySize < domain.MinPartySize {
		return fmt.Errorf("%w: party_size must be at least %d", ErrInvalidInput, domain.MinPartySize)
	}
	if req.DurationHours <= 0 || req.DurationHours > domain.MaxDurationHours {
		return fmt.Errorf("%w: duration_hours must be in range (0, %.0f]", ErrInvalidInput, domain.MaxDurationHours)
	}
	return nil
}
