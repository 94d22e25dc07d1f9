package wire

import (
	"moviebooking/internal/adaptor"
	"moviebooking/pkg/middleware"
	"moviebooking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Post("/register", authHandler.Register)
	r.Post("/login", authHandler.Login)

	// ==================== USER / ADMIN ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthJWT(config.JWT.Secret, log))
		r.Use(middleware.RequireRoles(log, roleUser, roleAdmin))

		// PUT /{username}/forgot - body diabaikan
		r.Put("/{username}/forgot", authHandler.ForgotPassword)
	})
}
