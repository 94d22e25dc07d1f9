package adaptor

import (
	"encoding/json"
	"net/http"

	"moviebooking/internal/dto/request"
	"moviebooking/internal/usecase"
	"moviebooking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// Book handles POST /{movieName}/add
func (h *BookingHandler) Book(w http.ResponseWriter, r *http.Request) {
	username, ok := utils.GetUsernameFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	movieName := chi.URLParam(r, "movieName")

	var req request.BookTicketRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	result, err := h.service.Book(r.Context(), username, movieName, &req)
	if err != nil {
		h.handleServiceError(w, err, "book tickets")
		return
	}

	// booked and sold out both answer 200; result.Status tells them apart
	utils.ResponseSuccess(w, result.Message, result)
}

func (h *BookingHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	writeServiceError(h.log, w, err, operation)
}
