package adaptor

import (
	"context"
	"errors"

	"moviebooking/internal/dto/request"
	"moviebooking/internal/dto/response"
)

type stubAuth struct {
	register func(*request.RegisterRequest) (*response.UserResponse, error)
	login    func(*request.LoginRequest) (*response.LoginResponse, error)
	forgot   func(username string) error
}

func (s *stubAuth) Register(_ context.Context, req *request.RegisterRequest) (*response.UserResponse, error) {
	return s.register(req)
}

func (s *stubAuth) Login(_ context.Context, req *request.LoginRequest) (*response.LoginResponse, error) {
	return s.login(req)
}

func (s *stubAuth) ForgotPassword(_ context.Context, username string) error {
	return s.forgot(username)
}

type stubMovie struct {
	movies []response.MovieResponse
	err    error

	lastMovie  string
	lastTicket string
}

func (s *stubMovie) GetAll(context.Context) ([]response.MovieResponse, error) {
	return s.movies, s.err
}

func (s *stubMovie) Search(_ context.Context, name string) ([]response.MovieResponse, error) {
	s.lastMovie = name
	return s.movies, s.err
}

func (s *stubMovie) ListTickets(_ context.Context, name string) ([]response.TicketResponse, error) {
	s.lastMovie = name
	return nil, s.err
}

func (s *stubMovie) UpdateTicketStatus(_ context.Context, name, ticketID string) error {
	s.lastMovie, s.lastTicket = name, ticketID
	return s.err
}

func (s *stubMovie) DeleteByName(_ context.Context, name string) error {
	s.lastMovie = name
	return s.err
}

func (s *stubMovie) RefreshAllTicketStatuses(context.Context) (int, error) {
	return 0, s.err
}

type stubBooking struct {
	result *response.BookingResult
	err    error

	username  string
	movieName string
}

func (s *stubBooking) Book(_ context.Context, username, movieName string, _ *request.BookTicketRequest) (*response.BookingResult, error) {
	s.username, s.movieName = username, movieName
	return s.result, s.err
}

func (s *stubBooking) DecrementAvailability(context.Context, string, string, int) (bool, error) {
	return false, errors.New("not used")
}

type stubReview struct {
	err      error
	username string
	movie    string
	reviewID string
}

func (s *stubReview) Add(_ context.Context, username, movieName string, req *request.CreateReviewRequest) (*response.ReviewResponse, error) {
	s.username, s.movie = username, movieName
	if s.err != nil {
		return nil, s.err
	}
	return &response.ReviewResponse{Username: username, MovieName: movieName, Rating: req.Rating, Title: req.Title}, nil
}

func (s *stubReview) ListByMovie(_ context.Context, movieName string) ([]response.ReviewResponse, error) {
	s.movie = movieName
	return []response.ReviewResponse{}, s.err
}

func (s *stubReview) ListByUser(_ context.Context, username string) ([]response.ReviewResponse, error) {
	s.username = username
	return []response.ReviewResponse{}, s.err
}

func (s *stubReview) MarkHelpful(_ context.Context, reviewID string) error {
	s.reviewID = reviewID
	return s.err
}

type stubPinger struct{ err error }

func (p stubPinger) Ping(context.Context) error { return p.err }
