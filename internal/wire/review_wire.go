package wire

import (
	"moviebooking/internal/adaptor"
	"moviebooking/pkg/middleware"
	"moviebooking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireReview(
	r chi.Router,
	reviewHandler *adaptor.ReviewHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/movies/{movieName}/reviews", reviewHandler.ListByMovie)
	r.Get("/users/{username}/reviews", reviewHandler.ListByUser)
	r.Put("/reviews/{reviewId}/helpful", reviewHandler.MarkHelpful)

	// ==================== USER / ADMIN ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthJWT(config.JWT.Secret, log))
		r.Use(middleware.RequireRoles(log, roleUser, roleAdmin))

		r.Post("/movies/{movieName}/reviews", reviewHandler.Add)
	})
}
