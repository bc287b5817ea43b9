package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/internal/infra/storage/restaurant"
)

// UseCase usecase получения доступных слотов бронирования
type UseCase struct {
	restaurantRepo  RestaurantRepository
	tableRepo       TableRepository
	reservationRepo ReservationRepository
	log             Logger
}

// NewUseCase создаёт usecase получения доступных слотов
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

// Execute возвращает слоты с шагом 30 минут, на которые можно
// забронировать хотя бы один столик подходящей вместимости.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	durationHours := req.DurationHours
	if durationHours == 0 {
		durationHours = domain.DefaultDurationHours
	}

	rest, err := uc.restaurantRepo.GetByID(ctx, req.RestaurantID)
	if err != nil {
		if errors.Is(err, restaurant.ErrRestaurantNotFound) {
			return nil, ErrRestaurantNotFound
		}
		return nil, fmt.Errorf("%w: Execute - get restaurant: %v", ErrInternal, err)
	}

	tables, err := uc.tableRepo.GetSuitable(ctx, req.RestaurantID, req.PartySize)
	if err != nil {
		return nil, fmt.Errorf("%w: Execute - get suitable tables: %v", ErrInternal, err)
	}

	reservationsByTable := make(map[int64][]*domain.Reservation, len(tables))
	for _, tbl := range tables {
		reservations, err := uc.reservationRepo.GetByTableAndDate(ctx, tbl.ID, req.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: Execute - get reservations for table %d: %v", ErrInternal, tbl.ID, err)
		}
		reservationsByTable[tbl.ID] = reservations
	}

	slots := generateSlots(rest, tables, reservationsByTable, domain.DurationToMinutes(durationHours))

	return &Response{
		RestaurantID: req.RestaurantID,
		Date:         req.Date,
		PartySize:    req.PartySize,
		Slots:        slots,
	}, nil
}

func validateRequest(req *Request) error {
	if req.RestaurantID <= 0 {
		return fmt.Errorf("%w: restaurant_id must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if req.PartySize < domain.MinPartySize {
		return fmt.Errorf("%w: party_size must be at least %d", ErrInvalidInput, domain.MinPartySize)
	}
	if req.DurationHours < 0 || req.DurationHours > domain.MaxDurationHours {
		return fmt.Errorf("%w: duration_hours must be in range (0, %.0f]", ErrInvalidInput, domain.MaxDurationHours)
	}
	return nil
}
