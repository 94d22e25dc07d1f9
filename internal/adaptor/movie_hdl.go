package adaptor

import (
	"net/http"

	"moviebooking/internal/usecase"
	"moviebooking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type MovieHandler struct {
	service usecase.MovieService
	log     *zap.Logger
}

func NewMovieHandler(service usecase.MovieService, log *zap.Logger) *MovieHandler {
	return &MovieHandler{
		service: service,
		log:     log.With(zap.String("handler", "movie")),
	}
}

// GetAll handles GET /all
func (h *MovieHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	movies, err := h.service.GetAll(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "get movies")
		return
	}

	utils.ResponseSuccess(w, "Movies retrieved successfully", movies)
}

// Search handles GET /movies/search/{movieName}
func (h *MovieHandler) Search(w http.ResponseWriter, r *http.Request) {
	movieName := chi.URLParam(r, "movieName")
	if movieName == "" {
		utils.ResponseBadRequest(w, "Movie name is required", nil)
		return
	}

	movies, err := h.service.Search(r.Context(), movieName)
	if err != nil {
		h.handleServiceError(w, err, "search movies")
		return
	}

	utils.ResponseSuccess(w, "Movies retrieved successfully", movies)
}

// ListTickets handles GET /userTickets/{movieName} (admin only)
func (h *MovieHandler) ListTickets(w http.ResponseWriter, r *http.Request) {
	movieName := chi.URLParam(r, "movieName")

	tickets, err := h.service.ListTickets(r.Context(), movieName)
	if err != nil {
		h.handleServiceError(w, err, "list tickets")
		return
	}

	utils.ResponseSuccess(w, "Booked tickets retrieved successfully", tickets)
}

// UpdateTicketStatus handles PUT /{movieName}/update/{ticketId} (admin only)
func (h *MovieHandler) UpdateTicketStatus(w http.ResponseWriter, r *http.Request) {
	movieName := chi.URLParam(r, "movieName")
	ticketID := chi.URLParam(r, "ticketId")

	if err := h.service.UpdateTicketStatus(r.Context(), movieName, ticketID); err != nil {
		h.handleServiceError(w, err, "update ticket status")
		return
	}

	utils.ResponseSuccess(w, "Ticket status updated successfully!", nil)
}

// Delete handles DELETE /{movieName}/delete/{movieId} (admin only).
// Every row with the name is removed; movieId is not consulted.
func (h *MovieHandler) Delete(w http.ResponseWriter, r *http.Request) {
	movieName := chi.URLParam(r, "movieName")

	if err := h.service.DeleteByName(r.Context(), movieName); err != nil {
		h.handleServiceError(w, err, "delete movie")
		return
	}

	utils.ResponseSuccess(w, "Movie deleted successfully!", nil)
}

func (h *MovieHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	writeServiceError(h.log, w, err, operation)
}
