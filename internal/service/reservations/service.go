package reservations

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/reservation"
	restaurantRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/restaurant"
	tableRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/table"
	"github.com/m04kA/SMC-ReservationService/internal/integrations/notifyservice"
	"github.com/m04kA/SMC-ReservationService/internal/service/reservations/models"
)

// Service сервис для чтения, изменения и отмены бронирований.
// Создание бронирований выполняется отдельным usecase.
type Service struct {
	reservationRepo ReservationRepository
	tableRepo       TableRepository
	restaurantRepo  RestaurantRepository
	notifyClient    NotifyServiceClient
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	reservationRepo ReservationRepository,
	tableRepo TableRepository,
	restaurantRepo RestaurantRepository,
	notifyClient NotifyServiceClient,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		tableRepo:       tableRepo,
		restaurantRepo:  restaurantRepo,
		notifyClient:    notifyClient,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ReservationResponse, error) {
	s.logger.Info("GetByID: fetching reservation id=%d", id)

	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("GetByID: reservation id=%d not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetByID: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainReservation(reservation), nil
}

// GetByRestaurantAndDate получает все бронирования ресторана на дату.
// Обе выборки выполняются в одной read-only транзакции, чтобы список
// был согласован с проверкой существования ресторана.
func (s *Service) GetByRestaurantAndDate(ctx context.Context, restaurantID int64, date time.Time) (*models.ReservationListResponse, error) {
	s.logger.Info("GetByRestaurantAndDate: restaurant=%d, date=%s", restaurantID, date.Format(domain.DateFormat))

	var reservations []*domain.Reservation
	err := s.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		if _, err := s.restaurantRepo.GetByID(txCtx, restaurantID); err != nil {
			if errors.Is(err, restaurantRepo.ErrRestaurantNotFound) {
				s.logger.Warn("GetByRestaurantAndDate: restaurant id=%d not found", restaurantID)
				return ErrRestaurantNotFound
			}
			s.logger.Error("GetByRestaurantAndDate: failed to get restaurant id=%d: %v", restaurantID, err)
			return fmt.Errorf("%w: GetByRestaurantAndDate - failed to get restaurant: %v", ErrInternal, err)
		}

		var err error
		reservations, err = s.reservationRepo.GetByRestaurantAndDate(txCtx, restaurantID, date)
		if err != nil {
			s.logger.Error("GetByRestaurantAndDate: repository error for restaurant id=%d: %v", restaurantID, err)
			return fmt.Errorf("%w: GetByRestaurantAndDate - repository error: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("GetByRestaurantAndDate: successfully fetched %d reservations for restaurant id=%d",
		len(reservations), restaurantID)
	return models.FromDomainReservationList(reservations), nil
}

// Update применяет патч к бронированию.
// Если патч затрагивает расписание (столик, дату, время или длительность),
// повторно проверяются рабочие часы, дата и пересечения — в сериализуемой
// транзакции, как и при создании.
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateReservationRequest) (*models.ReservationResponse, error) {
	s.logger.Info("Update: updating reservation id=%d", id)

	patch, err := req.ToDomainPatch()
	if err != nil {
		s.logger.Warn("Update: invalid patch for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if patch.IsEmpty() {
		s.logger.Warn("Update: empty patch for reservation id=%d", id)
		return nil, fmt.Errorf("%w: patch has no fields", ErrInvalidInput)
	}

	err = s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		existing, err := s.reservationRepo.GetByID(txCtx, id)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				s.logger.Warn("Update: reservation id=%d not found", id)
				return ErrReservationNotFound
			}
			s.logger.Error("Update: repository error for reservation id=%d: %v", id, err)
			return fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}

		if !existing.CanBeUpdated() {
			s.logger.Warn("Update: reservation id=%d cannot be updated, status=%s", id, existing.Status)
			return ErrCannotUpdate
		}

		// Применяем патч к копии и валидируем результат целиком
		updated := *existing
		patch.ApplyTo(&updated)

		if err := s.validateUpdated(txCtx, existing, &updated, patch.TouchesSchedule()); err != nil {
			return err
		}

		if err := s.reservationRepo.Update(txCtx, id, patch); err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				return ErrReservationNotFound
			}
			s.logger.Error("Update: failed to apply patch for reservation id=%d: %v", id, err)
			return fmt.Errorf("%w: Update - failed to apply patch: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	result, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("Update: failed to re-fetch reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - failed to re-fetch: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated reservation id=%d", id)
	return models.FromDomainReservation(result), nil
}

// Cancel отменяет бронирование и отправляет уведомление об отмене
func (s *Service) Cancel(ctx context.Context, id int64) (*models.ReservationResponse, error) {
	s.logger.Info("Cancel: cancelling reservation id=%d", id)

	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Cancel: reservation id=%d not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("Cancel: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if !reservation.CanBeCancelled() {
		s.logger.Warn("Cancel: reservation id=%d cannot be cancelled, status=%s", id, reservation.Status)
		return nil, ErrCannotCancel
	}

	if err := s.reservationRepo.Cancel(ctx, id); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			return nil, ErrReservationNotFound
		}
		s.logger.Error("Cancel: failed to cancel reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Cancel - failed to cancel: %v", ErrInternal, err)
	}

	s.sendCancellationNotification(ctx, reservation)

	result, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("Cancel: failed to re-fetch reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Cancel - failed to re-fetch: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled reservation id=%d", id)
	return models.FromDomainReservation(result), nil
}

// validateUpdated проверяет бронирование после применения патча
func (s *Service) validateUpdated(ctx context.Context, existing, updated *domain.Reservation, touchesSchedule bool) error {
	if updated.PartySize < domain.MinPartySize {
		return fmt.Errorf("%w: partySize must be at least %d", ErrInvalidInput, domain.MinPartySize)
	}
	if updated.DurationHours <= domain.MinDurationHours || updated.DurationHours > domain.MaxDurationHours {
		return fmt.Errorf("%w: durationHours must be in (0, %v]", ErrInvalidInput, domain.MaxDurationHours)
	}
	if err := updated.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
	}

	// Столик: существует, принадлежит тому же ресторану, вмещает компанию
	table, err := s.tableRepo.GetByID(ctx, updated.TableID)
	if err != nil {
		if errors.Is(err, tableRepo.ErrTableNotFound) {
			s.logger.Warn("Update: table id=%d not found", updated.TableID)
			return ErrTableNotFound
		}
		s.logger.Error("Update: failed to get table id=%d: %v", updated.TableID, err)
		return fmt.Errorf("%w: failed to get table: %v", ErrInternal, err)
	}
	if table.RestaurantID != existing.RestaurantID {
		s.logger.Warn("Update: table id=%d belongs to restaurant id=%d, not id=%d",
			table.ID, table.RestaurantID, existing.RestaurantID)
		return ErrTableWrongRestaurant
	}
	if !table.Fits(updated.PartySize) {
		s.logger.Warn("Update: table id=%d capacity=%d insufficient for party size=%d",
			table.ID, table.Capacity, updated.PartySize)
		return ErrCapacityExceeded
	}

	if !touchesSchedule {
		return nil
	}

	// Расписание изменилось: повторная проверка часов, даты и пересечений
	restaurant, err := s.restaurantRepo.GetByID(ctx, existing.RestaurantID)
	if err != nil {
		if errors.Is(err, restaurantRepo.ErrRestaurantNotFound) {
			return ErrRestaurantNotFound
		}
		s.logger.Error("Update: failed to get restaurant id=%d: %v", existing.RestaurantID, err)
		return fmt.Errorf("%w: failed to get restaurant: %v", ErrInternal, err)
	}

	if isDateInPast(updated.ReservationDate, s.timeProvider.Now()) {
		s.logger.Warn("Update: reservation id=%d moved to past date %s",
			existing.ID, updated.ReservationDate.Format(domain.DateFormat))
		return ErrDateInPast
	}

	if !restaurant.ContainsInterval(updated.Interval()) {
		s.logger.Warn("Update: reservation id=%d interval outside operating hours %s-%s",
			existing.ID, restaurant.OpeningTime, restaurant.ClosingTime)
		return ErrOutsideOperatingHours
	}

	others, err := s.reservationRepo.GetByTableAndDate(ctx, updated.TableID, updated.ReservationDate)
	if err != nil {
		s.logger.Error("Update: failed to get reservations for table id=%d: %v", updated.TableID, err)
		return fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}

	// Само изменяемое бронирование не учитывается при проверке пересечений
	candidates := make([]*domain.Reservation, 0, len(others))
	for _, other := range others {
		if other.ID == existing.ID {
			continue
		}
		candidates = append(candidates, other)
	}

	if domain.HasOverlap(updated.Interval(), candidates) {
		s.logger.Warn("Update: new slot for reservation id=%d overlaps existing reservation", existing.ID)
		return ErrTableNotAvailable
	}

	return nil
}

// sendCancellationNotification отправляет уведомление об отмене.
// Недоступность сервиса уведомлений не блокирует отмену.
func (s *Service) sendCancellationNotification(ctx context.Context, reservation *domain.Reservation) {
	if s.notifyClient == nil {
		return
	}

	restaurantName := ""
	if restaurant, err := s.restaurantRepo.GetByID(ctx, reservation.RestaurantID); err == nil {
		restaurantName = restaurant.Name
	}

	tableNumber := ""
	if table, err := s.tableRepo.GetByID(ctx, reservation.TableID); err == nil {
		tableNumber = table.TableNumber
	}

	notification := &notifyservice.ReservationNotification{
		Type:            notifyservice.TypeCancellation,
		ReservationID:   reservation.ID,
		CustomerName:    reservation.CustomerName,
		CustomerPhone:   reservation.CustomerPhone,
		RestaurantName:  restaurantName,
		TableNumber:     tableNumber,
		ReservationDate: reservation.ReservationDate.Format(domain.DateFormat),
		StartTime:       reservation.StartTime.String(),
		DurationHours:   reservation.DurationHours,
		PartySize:       reservation.PartySize,
	}

	if err := s.notifyClient.SendWithGracefulDegradation(ctx, notification); err != nil {
		s.logger.Warn("Cancel: cancellation notification degraded for reservation id=%d: %v", reservation.ID, err)
	}
}
