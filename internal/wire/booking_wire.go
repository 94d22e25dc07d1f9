package wire

import (
	"moviebooking/internal/adaptor"
	"moviebooking/pkg/middleware"
	"moviebooking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== USER ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthJWT(config.JWT.Secret, log))
		r.Use(middleware.RequireRoles(log, roleUser))

		// POST /{movieName}/add - pesan kursi
		r.Post("/{movieName}/add", bookingHandler.Book)
	})
}
