package usecase

import (
	"context"
	"errors"
	"fmt"

	"moviebooking/internal/data/cache"
	"moviebooking/internal/data/catalog"
	"moviebooking/internal/data/entity"
	"moviebooking/internal/data/repository"
	"moviebooking/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type MovieService interface {
	// Catalogue (USER / ADMIN)
	GetAll(ctx context.Context) ([]response.MovieResponse, error)
	Search(ctx context.Context, movieName string) ([]response.MovieResponse, error)

	// Admin
	ListTickets(ctx context.Context, movieName string) ([]response.TicketResponse, error)
	UpdateTicketStatus(ctx context.Context, movieName, ticketID string) error
	DeleteByName(ctx context.Context, movieName string) error

	// Background
	RefreshAllTicketStatuses(ctx context.Context) (int, error)
}

type movieService struct {
	repo    *repository.Repository
	catalog catalog.MovieCatalog
	cache   cache.MovieCache
	log     *zap.Logger
}

func NewMovieService(
	repo *repository.Repository,
	catalog catalog.MovieCatalog,
	cache cache.MovieCache,
	log *zap.Logger,
) MovieService {
	return &movieService{
		repo:    repo,
		catalog: catalog,
		cache:   cache,
		log:     log.With(zap.String("service", "movie")),
	}
}

func (s *movieService) GetAll(ctx context.Context) ([]response.MovieResponse, error) {
	movies, err := s.catalog.All(ctx)
	if err != nil {
		return nil, err
	}

	if len(movies) == 0 {
		return nil, fmt.Errorf("%w: no movies available", ErrNotFound)
	}

	return response.MoviesToResponse(movies), nil
}

func (s *movieService) Search(ctx context.Context, movieName string) ([]response.MovieResponse, error) {
	movies, err := s.catalog.Search(ctx, movieName)
	if err != nil {
		return nil, err
	}

	if len(movies) == 0 {
		return nil, fmt.Errorf("%w: movie not found: %s", ErrNotFound, movieName)
	}

	s.log.Debug("Movies matched", zap.String("query", movieName), zap.Int("count", len(movies)))
	return response.MoviesToResponse(movies), nil
}

func (s *movieService) ListTickets(ctx context.Context, movieName string) ([]response.TicketResponse, error) {
	tickets, err := s.repo.Ticket.FindByMovieName(ctx, movieName)
	if err != nil {
		return nil, err
	}

	out := make([]response.TicketResponse, len(tickets))
	for i, t := range tickets {
		out[i] = response.TicketToResponse(t)
	}
	return out, nil
}

// UpdateTicketStatus relabels every row named movieName from its
// availability. ticketID must name an existing ticket.
func (s *movieService) UpdateTicketStatus(ctx context.Context, movieName, ticketID string) error {
	id, err := uuid.Parse(ticketID)
	if err != nil {
		return fmt.Errorf("%w: invalid ticket id %s", ErrValidation, ticketID)
	}

	movies, err := s.repo.Movie.FindByName(ctx, movieName)
	if err != nil {
		return err
	}
	if len(movies) == 0 {
		return fmt.Errorf("%w: movie not found: %s", ErrNotFound, movieName)
	}

	ticket, err := s.repo.Ticket.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if ticket == nil {
		return fmt.Errorf("%w: ticket not found: %s", ErrNotFound, ticketID)
	}

	for _, m := range movies {
		if err := s.repo.Movie.UpdateTicketStatus(ctx, m.ID, entity.TicketStatusFor(m.TicketsAvailable)); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				// deleted concurrently
				continue
			}
			return err
		}
	}
	s.cache.Invalidate(ctx)

	s.log.Info("Ticket status updated",
		zap.String("movie_name", movieName),
		zap.Int("rows", len(movies)),
	)
	return nil
}

func (s *movieService) DeleteByName(ctx context.Context, movieName string) error {
	movies, err := s.repo.Movie.FindByName(ctx, movieName)
	if err != nil {
		return err
	}
	if len(movies) == 0 {
		return fmt.Errorf("%w: no movies available with the name: %s", ErrNotFound, movieName)
	}

	if _, err := s.repo.Movie.DeleteByName(ctx, movieName); err != nil {
		return err
	}
	s.cache.Invalidate(ctx)

	return nil
}

// RefreshAllTicketStatuses fixes labels that drifted from availability and
// returns how many rows changed.
func (s *movieService) RefreshAllTicketStatuses(ctx context.Context) (int, error) {
	movies, err := s.repo.Movie.FindAll(ctx)
	if err != nil {
		return 0, err
	}

	updated := 0
	for _, m := range movies {
		want := entity.TicketStatusFor(m.TicketsAvailable)
		if m.TicketStatus == want {
			continue
		}
		if err := s.repo.Movie.UpdateTicketStatus(ctx, m.ID, want); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				continue
			}
			return updated, err
		}
		updated++
	}

	if updated > 0 {
		s.cache.Invalidate(ctx)
	}
	return updated, nil
}
