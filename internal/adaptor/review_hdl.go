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

type ReviewHandler struct {
	service usecase.ReviewService
	log     *zap.Logger
}

func NewReviewHandler(service usecase.ReviewService, log *zap.Logger) *ReviewHandler {
	return &ReviewHandler{
		service: service,
		log:     log.With(zap.String("handler", "review")),
	}
}

// Add handles POST /movies/{movieName}/reviews
func (h *ReviewHandler) Add(w http.ResponseWriter, r *http.Request) {
	username, ok := utils.GetUsernameFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	review, err := h.service.Add(r.Context(), username, chi.URLParam(r, "movieName"), &req)
	if err != nil {
		h.handleServiceError(w, err, "add review")
		return
	}

	utils.ResponseCreated(w, "Review added successfully", review)
}

// ListByMovie handles GET /movies/{movieName}/reviews
func (h *ReviewHandler) ListByMovie(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.service.ListByMovie(r.Context(), chi.URLParam(r, "movieName"))
	if err != nil {
		h.handleServiceError(w, err, "list movie reviews")
		return
	}

	utils.ResponseSuccess(w, "Reviews retrieved successfully", reviews)
}

// ListByUser handles GET /users/{username}/reviews
func (h *ReviewHandler) ListByUser(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.service.ListByUser(r.Context(), chi.URLParam(r, "username"))
	if err != nil {
		h.handleServiceError(w, err, "list user reviews")
		return
	}

	utils.ResponseSuccess(w, "Reviews retrieved successfully", reviews)
}

// MarkHelpful handles PUT /reviews/{reviewId}/helpful
func (h *ReviewHandler) MarkHelpful(w http.ResponseWriter, r *http.Request) {
	if err := h.service.MarkHelpful(r.Context(), chi.URLParam(r, "reviewId")); err != nil {
		h.handleServiceError(w, err, "mark review helpful")
		return
	}

	utils.ResponseSuccess(w, "Review marked as helpful", nil)
}

func (h *ReviewHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	writeServiceError(h.log, w, err, operation)
}
