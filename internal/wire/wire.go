// internal/wire/wire.go
package wire

import (
	"moviebooking/internal/adaptor"
	"moviebooking/internal/data/entity"
	"moviebooking/internal/data/repository"
	"moviebooking/internal/usecase"
	"moviebooking/pkg/middleware"
	"moviebooking/pkg/utils"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// BasePath semua endpoint API
const BasePath = "/api/v1.0/moviebooking"

var (
	roleUser  = string(entity.RoleUser)
	roleAdmin = string(entity.RoleAdmin)
)

// App menyimpan semua dependencies
type App struct {
	Router  *chi.Mux
	Service *usecase.Service
}

// Wiring menginisialisasi semua dependencies
func Wiring(
	repo *repository.Repository,
	deps usecase.Dependencies,
	db adaptor.Pinger,
	config *utils.Config,
	logger *zap.Logger,
) *App {
	// Initialize services dan handlers
	service := usecase.NewService(repo, deps, config, logger)
	handler := adaptor.NewHandler(service, db, config, logger)

	return &App{
		Router:  NewRouter(handler, config, logger),
		Service: service,
	}
}

// NewRouter konfigurasi Chi router
func NewRouter(handler *adaptor.Handler, config *utils.Config, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(chimw.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	// Status + health check
	r.Get("/", handler.Health.Status)
	r.Get("/health", handler.Health.Health)

	r.Route(BasePath, func(r chi.Router) {
		wireAuth(r, handler.Auth, config, logger)
		wireMovie(r, handler.Movie, config, logger)
		wireBooking(r, handler.Booking, config, logger)
		wireReview(r, handler.Review, config, logger)
	})

	return r
}
