package suggest_table

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	suggestTable "github.com/m04kA/SMC-ReservationService/internal/usecase/suggest_table"
)

const (
	msgInvalidRestaurantID = "некорректный ID ресторана"
	msgMissingDate         = "дата обязательна"
	msgMissingStartTime    = "время начала обязательно"
	msgMissingPartySize    = "размер компании обязателен"
	msgInvalidPartySize    = "некорректный размер компании"
	msgInvalidDateOrTime   = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgInvalidDuration     = "некорректная длительность бронирования"
	msgRestaurantNotFound  = "ресторан не найден"
	msgNoTableAvailable    = "нет свободного столика подходящей вместимости на выбранное время"
	msgInvalidInput        = "некорректные параметры запроса"
)

type Handler struct {
	useCase SuggestTableUseCase
	logger  Logger
}

func NewHandler(useCase SuggestTableUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/restaurants/{restaurantId}/suggest-table
// Query params: date (required, YYYY-MM-DD), startTime (required, HH:MM),
// partySize (required), durationHours (optional, по умолчанию 2 часа)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	restaurantIDStr := vars["restaurantId"]
	restaurantID, err := strconv.ParseInt(restaurantIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /restaurants/{id}/suggest-table - Invalid restaurant ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRestaurantID)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /restaurants/{id}/suggest-table - Missing date: restaurant_id=%d", restaurantID)
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	startTimeStr := r.URL.Query().Get("startTime")
	if startTimeStr == "" {
		h.logger.Warn("GET /restaurants/{id}/suggest-table - Missing start time: restaurant_id=%d", restaurantID)
		handlers.RespondBadRequest(w, msgMissingStartTime)
		return
	}

	partySizeStr := r.URL.Query().Get("partySize")
	if partySizeStr == "" {
		h.logger.Warn("GET /restaurants/{id}/suggest-table - Missing party size: restaurant_id=%d", restaurantID)
		handlers.RespondBadRequest(w, msgMissingPartySize)
		return
	}

	partySize, err := strconv.Atoi(partySizeStr)
	if err != nil {
		h.logger.Warn("GET /restaurants/{id}/suggest-table - Invalid party size: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPartySize)
		return
	}

	var durationHours float64
	if durationStr := r.URL.Query().Get("durationHours"); durationStr != "" {
		durationHours, err = strconv.ParseFloat(durationStr, 64)
		if err != nil {
			h.logger.Warn("GET /restaurants/{id}/suggest-table - Invalid duration: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDuration)
			return
		}
	}

	useCaseReq, err := ToUseCaseRequest(restaurantID, dateStr, startTimeStr, partySize, durationHours)
	if err != nil {
		h.logger.Warn("GET /restaurants/{id}/suggest-table - Invalid date or time format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, suggestTable.ErrRestaurantNotFound):
			h.logger.Warn("GET /restaurants/{id}/suggest-table - Restaurant not found: restaurant_id=%d", restaurantID)
			handlers.RespondNotFound(w, msgRestaurantNotFound)

		case errors.Is(err, suggestTable.ErrNoTableAvailable):
			h.logger.Warn("GET /restaurants/{id}/suggest-table - No table available: restaurant_id=%d, party_size=%d",
				restaurantID, partySize)
			handlers.RespondNotFound(w, msgNoTableAvailable)

		case errors.Is(err, suggestTable.ErrInvalidInput):
			h.logger.Warn("GET /restaurants/{id}/suggest-table - Invalid input: restaurant_id=%d, error=%v",
				restaurantID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /restaurants/{id}/suggest-table - Failed to suggest table: restaurant_id=%d, error=%v",
				restaurantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /restaurants/{id}/suggest-table - Table suggested successfully: restaurant_id=%d, table_id=%d",
		restaurantID, result.TableID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
