package create_restaurant

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationService/internal/service/restaurants"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTime        = "некорректный формат времени работы, ожидается HH:MM"
	msgInvalidInput       = "некорректные данные ресторана"
)

type Handler struct {
	service RestaurantService
	logger  Logger
}

func NewHandler(service RestaurantService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/restaurants
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateRestaurantRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /restaurants - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest()
	if err != nil {
		h.logger.Warn("POST /restaurants - Failed to parse operating hours: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	result, err := h.service.CreateRestaurant(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, restaurants.ErrInvalidInput):
			h.logger.Warn("POST /restaurants - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /restaurants - Failed to create restaurant: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /restaurants - Restaurant created successfully: restaurant_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromServiceResponse(result))
}
