package update_reservation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationService/internal/service/reservations"
)

const (
	msgInvalidReservationID  = "некорректный ID бронирования"
	msgInvalidRequestBody    = "некорректное тело запроса"
	msgInvalidDateOrTime     = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgNotFound              = "бронирование не найдено"
	msgTableNotFound         = "столик не найден"
	msgTableWrongRestaurant  = "столик не принадлежит выбранному ресторану"
	msgCapacityExceeded      = "вместимость столика недостаточна для компании"
	msgCannotUpdate          = "бронирование не может быть изменено"
	msgDateInPast            = "нельзя перенести бронирование на прошедшую дату"
	msgOutsideOperatingHours = "бронирование выходит за часы работы ресторана"
	msgTableNotAvailable     = "столик уже забронирован на выбранное время"
	msgInvalidInput          = "некорректные данные бронирования"
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/reservations/{reservationId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	reservationIDStr := vars["reservationId"]

	reservationID, err := strconv.ParseInt(reservationIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /reservations/{id} - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	var req UpdateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /reservations/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest()
	if err != nil {
		h.logger.Warn("PATCH /reservations/{id} - Failed to parse date or time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.service.Update(r.Context(), reservationID, serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrReservationNotFound):
			h.logger.Warn("PATCH /reservations/{id} - Reservation not found: reservation_id=%d", reservationID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, reservations.ErrTableNotFound):
			h.logger.Warn("PATCH /reservations/{id} - Table not found: reservation_id=%d", reservationID)
			handlers.RespondNotFound(w, msgTableNotFound)

		case errors.Is(err, reservations.ErrTableWrongRestaurant):
			h.logger.Warn("PATCH /reservations/{id} - Table belongs to another restaurant: reservation_id=%d", reservationID)
			handlers.RespondBadRequest(w, msgTableWrongRestaurant)

		case errors.Is(err, reservations.ErrCapacityExceeded):
			h.logger.Warn("PATCH /reservations/{id} - Capacity exceeded: reservation_id=%d", reservationID)
			handlers.RespondBadRequest(w, msgCapacityExceeded)

		case errors.Is(err, reservations.ErrCannotUpdate):
			h.logger.Warn("PATCH /reservations/{id} - Cannot update: reservation_id=%d", reservationID)
			handlers.RespondBadRequest(w, msgCannotUpdate)

		case errors.Is(err, reservations.ErrDateInPast):
			h.logger.Warn("PATCH /reservations/{id} - Date in past: reservation_id=%d", reservationID)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, reservations.ErrOutsideOperatingHours):
			h.logger.Warn("PATCH /reservations/{id} - Outside operating hours: reservation_id=%d", reservationID)
			handlers.RespondBadRequest(w, msgOutsideOperatingHours)

		case errors.Is(err, reservations.ErrTableNotAvailable):
			h.logger.Warn("PATCH /reservations/{id} - Table not available: reservation_id=%d", reservationID)
			handlers.RespondConflict(w, msgTableNotAvailable)

		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("PATCH /reservations/{id} - Invalid input: reservation_id=%d, error=%v", reservationID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PATCH /reservations/{id} - Failed to update reservation: reservation_id=%d, error=%v",
				reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /reservations/{id} - Reservation updated successfully: reservation_id=%d", reservationID)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
