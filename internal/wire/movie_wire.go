package wire

import (
	"moviebooking/internal/adaptor"
	"moviebooking/pkg/middleware"
	"moviebooking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireMovie(
	r chi.Router,
	movieHandler *adaptor.MovieHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== USER / ADMIN ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthJWT(config.JWT.Secret, log))
		r.Use(middleware.RequireRoles(log, roleUser, roleAdmin))

		r.Get("/all", movieHandler.GetAll)
		r.Get("/movies/search/{movieName}", movieHandler.Search)
	})

	// ==================== ADMIN ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthJWT(config.JWT.Secret, log)) // Must be authenticated
		r.Use(middleware.RequireRoles(log, roleAdmin))    // Must be admin

		r.Get("/userTickets/{movieName}", movieHandler.ListTickets)
		r.Put("/{movieName}/update/{ticketId}", movieHandler.UpdateTicketStatus)
		r.Delete("/{movieName}/delete/{movieId}", movieHandler.Delete)
	})
}
