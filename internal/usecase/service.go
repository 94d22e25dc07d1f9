package usecase

import (
	"moviebooking/internal/data/cache"
	"moviebooking/internal/data/catalog"
	"moviebooking/internal/data/repository"
	"moviebooking/internal/event"
	"moviebooking/internal/lock"
	"moviebooking/pkg/utils"

	"go.uber.org/zap"
)

// Dependencies groups the infrastructure shared by the services.
type Dependencies struct {
	Locker    lock.Locker
	Cache     cache.MovieCache
	Catalog   catalog.MovieCatalog
	Publisher event.Publisher
}

type Service struct {
	Auth    AuthService
	Movie   MovieService
	Booking BookingService
	Review  ReviewService
}

func NewService(repo *repository.Repository, deps Dependencies, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:    NewAuthService(repo, config, log),
		Movie:   NewMovieService(repo, deps.Catalog, deps.Cache, log),
		Booking: NewBookingService(repo, deps.Locker, deps.Cache, deps.Publisher, log),
		Review:  NewReviewService(repo, deps.Cache, log),
	}
}
