package check_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	checkAvailability "github.com/m04kA/SMC-ReservationService/internal/usecase/check_availability"
)

const (
	msgInvalidTableID    = "некорректный ID столика"
	msgMissingDate       = "дата обязательна"
	msgMissingStartTime  = "время начала обязательно"
	msgInvalidDateOrTime = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgInvalidDuration   = "некорректная длительность бронирования"
	msgTableNotFound     = "столик не найден"
	msgInvalidInput      = "некорректные параметры запроса"
)

type Handler struct {
	useCase CheckAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/tables/{tableId}/availability
// Query params: date (required, YYYY-MM-DD), startTime (required, HH:MM),
// durationHours (optional, по умолчанию 2 часа)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	tableIDStr := vars["tableId"]
	tableID, err := strconv.ParseInt(tableIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /tables/{id}/availability - Invalid table ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTableID)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /tables/{id}/availability - Missing date: table_id=%d", tableID)
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	startTimeStr := r.URL.Query().Get("startTime")
	if startTimeStr == "" {
		h.logger.Warn("GET /tables/{id}/availability - Missing start time: table_id=%d", tableID)
		handlers.RespondBadRequest(w, msgMissingStartTime)
		return
	}

	var durationHours float64
	if durationStr := r.URL.Query().Get("durationHours"); durationStr != "" {
		durationHours, err = strconv.ParseFloat(durationStr, 64)
		if err != nil {
			h.logger.Warn("GET /tables/{id}/availability - Invalid duration: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDuration)
			return
		}
	}

	useCaseReq, err := ToUseCaseRequest(tableID, dateStr, startTimeStr, durationHours)
	if err != nil {
		h.logger.Warn("GET /tables/{id}/availability - Invalid date or time format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, checkAvailability.ErrTableNotFound):
			h.logger.Warn("GET /tables/{id}/availability - Table not found: table_id=%d", tableID)
			handlers.RespondNotFound(w, msgTableNotFound)

		case errors.Is(err, checkAvailability.ErrInvalidInput):
			h.logger.Warn("GET /tables/{id}/availability - Invalid input: table_id=%d, error=%v", tableID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /tables/{id}/availability - Failed to check availability: table_id=%d, error=%v",
				tableID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /tables/{id}/availability - Availability checked: table_id=%d, available=%t",
		tableID, result.Available)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result, dateStr, startTimeStr))
}
