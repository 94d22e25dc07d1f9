package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"moviebooking/internal/data/cache"
	"moviebooking/internal/data/entity"
	"moviebooking/internal/data/repository"
	"moviebooking/internal/dto/request"
	"moviebooking/internal/dto/response"
	"moviebooking/internal/event"
	"moviebooking/internal/lock"
	"moviebooking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingService interface {
	Book(ctx context.Context, username, movieName string, req *request.BookTicketRequest) (*response.BookingResult, error)
	DecrementAvailability(ctx context.Context, movieName, theatreName string, n int) (bool, error)
}

type bookingService struct {
	repo      *repository.Repository
	locker    lock.Locker
	cache     cache.MovieCache
	publisher event.Publisher
	log       *zap.Logger
}

func NewBookingService(
	repo *repository.Repository,
	locker lock.Locker,
	cache cache.MovieCache,
	publisher event.Publisher,
	log *zap.Logger,
) BookingService {
	return &bookingService{
		repo:      repo,
		locker:    locker,
		cache:     cache,
		publisher: publisher,
		log:       log.With(zap.String("service", "booking")),
	}
}

// Book reserves req.NoOfTickets seats for username. The check and commit
// sequence runs under the (movie, theatre) lock; the booked event is
// published after the lock is released. Running out of
// capacity is reported as a SOLD_OUT result, not an error.
func (s *bookingService) Book(ctx context.Context, username, movieName string, req *request.BookTicketRequest) (*response.BookingResult, error) {
	// 1. Validasi request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}
	if len(req.SeatNumber) < req.NoOfTickets {
		return nil, fmt.Errorf("%w: seatNumber must list at least %d seats", ErrValidation, req.NoOfTickets)
	}
	if req.Username != "" && req.Username != username {
		return nil, fmt.Errorf("%w: cannot book tickets for another user", ErrForbidden)
	}

	theatreName := req.TheatreName
	n := req.NoOfTickets

	unlock, err := s.locker.Lock(ctx, lock.Key(movieName, theatreName))
	if err != nil {
		return nil, fmt.Errorf("acquire booking lock: %w", err)
	}
	defer unlock()

	// 2. Seat collision, fail on the first taken seat
	sold, err := s.repo.Ticket.FindByMovieAndTheatre(ctx, movieName, theatreName)
	if err != nil {
		return nil, err
	}
	for _, seat := range req.SeatNumber[:n] {
		for _, t := range sold {
			if t.HasSeat(seat) {
				s.log.Info("Seat already booked",
					zap.String("movie_name", movieName),
					zap.String("theatre_name", theatreName),
					zap.String("seat", seat),
				)
				return nil, fmt.Errorf("%w: seat number %s is already booked", ErrConflict, seat)
			}
		}
	}

	// 3. First (movie, theatre) row
	movie, err := s.firstScreening(ctx, movieName, theatreName)
	if err != nil {
		return nil, err
	}

	// 4. Capacity
	if movie.TicketsAvailable < n {
		return soldOut(movieName, theatreName), nil
	}
	ok, err := s.repo.Movie.DecrementAvailability(ctx, movie.ID, n)
	if err != nil {
		return nil, err
	}
	if !ok {
		// another instance took the remaining tickets
		return soldOut(movieName, theatreName), nil
	}

	// 5. Ticket
	ticket := &entity.Ticket{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now().UTC(),
		},
		Username:    username,
		MovieName:   movieName,
		TheatreName: theatreName,
		NoOfTickets: n,
		SeatNumbers: req.SeatNumber,
	}
	if err := s.repo.Ticket.Create(ctx, ticket); err != nil {
		if rbErr := s.repo.Movie.IncrementAvailability(context.WithoutCancel(ctx), movie.ID, n); rbErr != nil {
			s.log.Error("Failed to restore availability after ticket insert failure",
				zap.Error(rbErr),
				zap.String("movie_id", movie.ID.String()),
				zap.Int("count", n),
			)
		}
		return nil, err
	}
	s.cache.Invalidate(ctx)

	// seat and capacity are committed; the event below must not hold up
	// other bookings for this screening
	unlock()

	s.log.Info("Tickets booked",
		zap.String("ticket_id", ticket.ID.String()),
		zap.String("username", username),
		zap.String("movie_name", movieName),
		zap.String("theatre_name", theatreName),
		zap.Strings("seats", ticket.SeatNumbers),
	)

	s.publishBooked(ctx, ticket)

	return &response.BookingResult{
		Status:      response.BookingStatusBooked,
		Message:     "Tickets Booked Successfully! Seat Numbers are: " + strings.Join(ticket.SeatNumbers, ", "),
		TicketID:    ticket.ID.String(),
		MovieName:   movieName,
		TheatreName: theatreName,
		SeatNumbers: ticket.SeatNumbers,
	}, nil
}

// DecrementAvailability takes n tickets from the first (movie, theatre) row.
// It reports false when fewer than n were left.
func (s *bookingService) DecrementAvailability(ctx context.Context, movieName, theatreName string, n int) (bool, error) {
	if n < 1 {
		return false, fmt.Errorf("%w: ticket count must be positive", ErrValidation)
	}

	movie, err := s.firstScreening(ctx, movieName, theatreName)
	if err != nil {
		return false, err
	}

	ok, err := s.repo.Movie.DecrementAvailability(ctx, movie.ID, n)
	if err != nil {
		return false, err
	}
	if ok {
		s.cache.Invalidate(ctx)
	}
	return ok, nil
}

func (s *bookingService) firstScreening(ctx context.Context, movieName, theatreName string) (*entity.Movie, error) {
	movies, err := s.repo.Movie.FindByNameAndTheatre(ctx, movieName, theatreName)
	if err != nil {
		return nil, err
	}
	if len(movies) == 0 {
		return nil, fmt.Errorf("%w: movie/theatre combination not found: %s at %s", ErrNotFound, movieName, theatreName)
	}
	return movies[0], nil
}

// publishBooked is best effort; a broker outage never fails a booking.
func (s *bookingService) publishBooked(ctx context.Context, t *entity.Ticket) {
	ev := event.TicketBookedEvent{
		Message:     event.TicketBookedMessage,
		TicketID:    t.ID.String(),
		Username:    t.Username,
		MovieName:   t.MovieName,
		TheatreName: t.TheatreName,
		NoOfTickets: t.NoOfTickets,
		SeatNumbers: t.SeatNumbers,
		BookedAt:    t.CreatedAt,
	}

	if user, err := s.repo.User.FindByUsername(ctx, t.Username); err == nil && user != nil {
		ev.Email = user.Email
	}

	if err := s.publisher.PublishTicketBooked(ctx, ev); err != nil {
		s.log.Warn("Failed to publish ticket booked event",
			zap.Error(err),
			zap.String("ticket_id", ev.TicketID),
		)
	}
}

func soldOut(movieName, theatreName string) *response.BookingResult {
	return &response.BookingResult{
		Status:      response.BookingStatusSoldOut,
		Message:     "All Tickets Sold Out!",
		MovieName:   movieName,
		TheatreName: theatreName,
	}
}
