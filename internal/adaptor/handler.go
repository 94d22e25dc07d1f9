package adaptor

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"moviebooking/internal/usecase"
	"moviebooking/pkg/utils"

	"go.uber.org/zap"
)

// Pinger is satisfied by the database pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	Auth    *AuthHandler
	Movie   *MovieHandler
	Booking *BookingHandler
	Review  *ReviewHandler
	Health  *HealthHandler
}

func NewHandler(service *usecase.Service, db Pinger, config *utils.Config, log *zap.Logger) *Handler {
	return &Handler{
		Auth:    NewAuthHandler(service.Auth, log),
		Movie:   NewMovieHandler(service.Movie, log),
		Booking: NewBookingHandler(service.Booking, log),
		Review:  NewReviewHandler(service.Review, log),
		Health:  NewHealthHandler(db, config.App, log),
	}
}

// writeServiceError maps domain errors to status codes. Anything unknown is
// logged and hidden behind a generic 500.
func writeServiceError(log *zap.Logger, w http.ResponseWriter, err error, operation string) {
	switch {
	case errors.Is(err, usecase.ErrNotFound):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, clientMessage(err, usecase.ErrNotFound))

	case errors.Is(err, usecase.ErrConflict):
		log.Warn(operation+" failed - conflict", zap.Error(err))
		utils.ResponseConflict(w, clientMessage(err, usecase.ErrConflict))

	case errors.Is(err, usecase.ErrValidation):
		log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseBadRequest(w, clientMessage(err, usecase.ErrValidation), nil)

	case errors.Is(err, usecase.ErrInvalidCredentials):
		log.Warn(operation+" failed - bad credentials", zap.Error(err))
		utils.ResponseUnauthorized(w, clientMessage(err, usecase.ErrInvalidCredentials))

	case errors.Is(err, usecase.ErrForbidden):
		log.Warn(operation+" failed - forbidden", zap.Error(err))
		utils.ResponseForbidden(w, clientMessage(err, usecase.ErrForbidden))

	default:
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}

// clientMessage drops the "<sentinel>: " prefix added by fmt.Errorf("%w: ...").
func clientMessage(err, sentinel error) string {
	msg := err.Error()
	if trimmed := strings.TrimPrefix(msg, sentinel.Error()+": "); trimmed != "" {
		return trimmed
	}
	return msg
}
