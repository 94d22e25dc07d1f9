package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"moviebooking/internal/data/cache"
	"moviebooking/internal/data/entity"
	"moviebooking/internal/data/repository"
	"moviebooking/internal/dto/request"
	"moviebooking/internal/dto/response"
	"moviebooking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ReviewService interface {
	Add(ctx context.Context, username, movieName string, req *request.CreateReviewRequest) (*response.ReviewResponse, error)
	ListByMovie(ctx context.Context, movieName string) ([]response.ReviewResponse, error)
	ListByUser(ctx context.Context, username string) ([]response.ReviewResponse, error)
	MarkHelpful(ctx context.Context, reviewID string) error
}

type reviewService struct {
	repo  *repository.Repository
	cache cache.MovieCache
	log   *zap.Logger
}

func NewReviewService(repo *repository.Repository, cache cache.MovieCache, log *zap.Logger) ReviewService {
	return &reviewService{
		repo:  repo,
		cache: cache,
		log:   log.With(zap.String("service", "review")),
	}
}

func (s *reviewService) Add(ctx context.Context, username, movieName string, req *request.CreateReviewRequest) (*response.ReviewResponse, error) {
	// Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create review validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	user, err := s.repo.User.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user not found: %s", ErrNotFound, username)
	}

	movie, err := s.firstMovie(ctx, movieName)
	if err != nil {
		return nil, err
	}

	// One review per (user, movie)
	exists, err := s.repo.Review.ExistsByUserAndMovie(ctx, user.ID, movie.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: user already reviewed this movie", ErrConflict)
	}

	review := &entity.Review{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now().UTC(),
		},
		UserID:  user.ID,
		MovieID: movie.ID,
		Rating:  req.Rating,
		Title:   req.Title,
		Content: req.Content,
	}

	if err := s.repo.Review.Create(ctx, review); err != nil {
		return nil, err
	}

	if err := s.updateMovieRating(ctx, movie.ID); err != nil {
		return nil, err
	}

	s.log.Info("Review created",
		zap.String("review_id", review.ID.String()),
		zap.String("username", username),
		zap.String("movie_name", movieName),
		zap.Float64("rating", req.Rating),
	)

	resp := response.ReviewToResponse(&entity.ReviewDetail{
		Review:        *review,
		Username:      user.Username,
		UserFirstName: user.FirstName,
		UserLastName:  user.LastName,
		MovieName:     movie.MovieName,
	})
	return &resp, nil
}

// updateMovieRating stores avg(rating)*2 (0-10 scale) and the review count.
func (s *reviewService) updateMovieRating(ctx context.Context, movieID uuid.UUID) error {
	avg, count, err := s.repo.Review.GetMovieRatingStats(ctx, movieID)
	if err != nil {
		return err
	}
	if count == 0 {
		return nil
	}

	if err := s.repo.Movie.UpdateRating(ctx, movieID, avg*2, count); err != nil {
		return err
	}
	s.cache.Invalidate(ctx)
	return nil
}

func (s *reviewService) ListByMovie(ctx context.Context, movieName string) ([]response.ReviewResponse, error) {
	movie, err := s.firstMovie(ctx, movieName)
	if err != nil {
		return nil, err
	}

	reviews, err := s.repo.Review.FindByMovieID(ctx, movie.ID)
	if err != nil {
		return nil, err
	}
	return response.ReviewsToResponse(reviews), nil
}

func (s *reviewService) ListByUser(ctx context.Context, username string) ([]response.ReviewResponse, error) {
	user, err := s.repo.User.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user not found: %s", ErrNotFound, username)
	}

	reviews, err := s.repo.Review.FindByUserID(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	return response.ReviewsToResponse(reviews), nil
}

// MarkHelpful bumps the counter. Repeat votes from the same caller count.
func (s *reviewService) MarkHelpful(ctx context.Context, reviewID string) error {
	id, err := uuid.Parse(reviewID)
	if err != nil {
		return fmt.Errorf("%w: invalid review id %s", ErrValidation, reviewID)
	}

	if err := s.repo.Review.IncrementHelpful(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("%w: review not found: %s", ErrNotFound, reviewID)
		}
		return err
	}
	return nil
}

func (s *reviewService) firstMovie(ctx context.Context, movieName string) (*entity.Movie, error) {
	movies, err := s.repo.Movie.FindByName(ctx, movieName)
	if err != nil {
		return nil, err
	}
	if len(movies) == 0 {
		return nil, fmt.Errorf("%w: movie not found: %s", ErrNotFound, movieName)
	}
	return movies[0], nil
}
