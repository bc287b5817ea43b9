package create_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/internal/infra/storage/restaurant"
	"github.com/m04kA/SMC-ReservationService/internal/infra/storage/table"
	"github.com/m04kA/SMC-ReservationService/internal/integrations/notifyservice"
)

// UseCase usecase создания бронирования столика
type UseCase struct {
	reservationRepo ReservationRepository
	tableRepo       TableRepository
	restaurantRepo  RestaurantRepository
	notifyClient    NotifyServiceClient
	txManager       TransactionManager
	timeProvider    TimeProvider
	log             Logger
}

// NewUseCase создаёт usecase создания бронирования
func NewUseCase(
	reservationRepo ReservationRepository,
	tableRepo TableRepository,
	restaurantRepo RestaurantRepository,
	notifyClient NotifyServiceClient,
	txManager TransactionManager,
	timeProvider TimeProvider,
	log Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		tableRepo:       tableRepo,
		restaurantRepo:  restaurantRepo,
		notifyClient:    notifyClient,
		txManager:       txManager,
		timeProvider:    timeProvider,
		log:             log,
	}
}

// Execute создаёт бронирование столика.
//
// Порядок проверок:
//  1. Валидация входных данных
//  2. Ресторан и столик существуют, столик принадлежит ресторану
//  3. Вместимость столика достаточна для компании
//  4. Дата не в прошлом (на уровне календарных дней)
//  5. Интервал внутри рабочих часов ресторана
//  6. Нет пересечений с активными бронированиями столика
//
// Проверка пересечений и вставка выполняются в сериализуемой транзакции,
// чтобы два конкурентных запроса не забронировали один слот.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	rest, err := uc.restaurantRepo.GetByID(ctx, req.RestaurantID)
	if err != nil {
		if errors.Is(err, restaurant.ErrRestaurantNotFound) {
			return nil, ErrRestaurantNotFound
		}
		return nil, fmt.Errorf("%w: Execute - get restaurant: %v", ErrInternal, err)
	}

	tbl, err := uc.tableRepo.GetByID(ctx, req.TableID)
	if err != nil {
		if errors.Is(err, table.ErrTableNotFound) {
			return nil, ErrTableNotFound
		}
		return nil, fmt.Errorf("%w: Execute - get table: %v", ErrInternal, err)
	}

	if tbl.RestaurantID != req.RestaurantID {
		return nil, ErrTableWrongRestaurant
	}

	if !tbl.Fits(req.PartySize) {
		return nil, ErrCapacityExceeded
	}

	if isDateInPast(req.Date, uc.timeProvider.Now()) {
		return nil, ErrDateInPast
	}

	candidate := domain.NewTimeInterval(req.StartTime, domain.DurationToMinutes(req.DurationHours))
	if !rest.ContainsInterval(candidate) {
		return nil, ErrOutsideOperatingHours
	}

	var created *domain.Reservation

	// Сериализуемая транзакция: проверка пересечений и вставка атомарны
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		existing, err := uc.reservationRepo.GetByTableAndDate(txCtx, req.TableID, req.Date)
		if err != nil {
			return fmt.Errorf("%w: Execute - get reservations for table: %v", ErrInternal, err)
		}

		if domain.HasOverlap(candidate, existing) {
			return ErrTableNotAvailable
		}

		reservation := &domain.Reservation{
			RestaurantID:    req.RestaurantID,
			TableID:         req.TableID,
			CustomerName:    req.CustomerName,
			CustomerPhone:   req.CustomerPhone,
			PartySize:       req.PartySize,
			ReservationDate: req.Date,
			StartTime:       req.StartTime,
			DurationHours:   req.DurationHours,
			Status:          domain.DefaultStatusOnCreation,
		}

		created, err = uc.reservationRepo.Create(txCtx, reservation)
		if err != nil {
			return fmt.Errorf("%w: Execute - create reservation: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info("create_reservation: reservation %d created for table %d on %s, %s-%s",
		created.ID, created.TableID, created.ReservationDate.Format(domain.DateFormat),
		candidate.StartClock(), candidate.EndClock())

	// Уведомление отправляется вне транзакции, сбой не отменяет бронирование
	uc.sendConfirmationNotification(ctx, created, rest, tbl)

	return toResponse(created), nil
}

func (uc *UseCase) sendConfirmationNotification(ctx context.Context, reservation *domain.Reservation, rest *domain.Restaurant, tbl *domain.Table) {
	if uc.notifyClient == nil {
		return
	}

	notification := &notifyservice.ReservationNotification{
		Type:            notifyservice.TypeConfirmation,
		ReservationID:   reservation.ID,
		CustomerName:    reservation.CustomerName,
		CustomerPhone:   reservation.CustomerPhone,
		RestaurantName:  rest.Name,
		TableNumber:     tbl.TableNumber,
		ReservationDate: reservation.ReservationDate.Format(domain.DateFormat),
		StartTime:       reservation.StartTime.String(),
		DurationHours:   reservation.DurationHours,
		PartySize:       reservation.PartySize,
	}

	if err := uc.notifyClient.SendWithGracefulDegradation(ctx, notification); err != nil {
		uc.log.Warn("create_reservation: confirmation notification for reservation %d not sent: %v", reservation.ID, err)
	}
}

func toResponse(reservation *domain.Reservation) *Response {
	return &Response{
		ID:            reservation.ID,
		RestaurantID:  reservation.RestaurantID,
		TableID:       reservation.TableID,
		CustomerName:  reservation.CustomerName,
		CustomerPhone: reservation.CustomerPhone,
		PartySize:     reservation.PartySize,
		Date:          reservation.ReservationDate,
		StartTime:     reservation.StartTime,
		DurationHours: reservation.DurationHours,
		Status:        string(reservation.Status),
		CreatedAt:     reservation.CreatedAt,
		UpdatedAt:     reservation.UpdatedAt,
	}
}
