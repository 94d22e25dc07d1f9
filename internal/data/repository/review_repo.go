package repository

import (
	"context"
	"fmt"

	"moviebooking/internal/data/entity"
	"moviebooking/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	ExistsByUserAndMovie(ctx context.Context, userID, movieID uuid.UUID) (bool, error)
	FindByMovieID(ctx context.Context, movieID uuid.UUID) ([]*entity.ReviewDetail, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.ReviewDetail, error)
	IncrementHelpful(ctx context.Context, id uuid.UUID) error

	// Business queries
	GetMovieRatingStats(ctx context.Context, movieID uuid.UUID) (float64, int, error) // average, count
}

type reviewRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewReviewRepository(db database.PgxIface, log *zap.Logger) ReviewRepository {
	return &reviewRepository{
		db:  db,
		log: log.With(zap.String("repository", "review")),
	}
}

func (r *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	query := `
		INSERT INTO reviews (id, user_id, movie_id, rating, title, content, helpful, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(ctx, query,
		review.ID,
		review.UserID,
		review.MovieID,
		review.Rating,
		review.Title,
		review.Content,
		review.Helpful,
		review.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create review",
			zap.Error(err),
			zap.String("user_id", review.UserID.String()),
			zap.String("movie_id", review.MovieID.String()),
		)
		return fmt.Errorf("create review for movie %s by user %s: %w",
			review.MovieID.String(), review.UserID.String(), err)
	}

	return nil
}

func (r *reviewRepository) ExistsByUserAndMovie(ctx context.Context, userID, movieID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM reviews WHERE user_id = $1 AND movie_id = $2)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, userID, movieID).Scan(&exists); err != nil {
		r.log.Error("Failed to check existing review",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("movie_id", movieID.String()),
		)
		return false, fmt.Errorf("check review for movie %s by user %s: %w",
			movieID.String(), userID.String(), err)
	}

	return exists, nil
}

const reviewDetailQuery = `
	SELECT rv.id, rv.user_id, rv.movie_id, rv.rating, rv.title, rv.content,
	       rv.helpful, rv.created_at, u.username, u.first_name, u.last_name,
	       m.movie_name
	FROM reviews rv
	JOIN users u ON u.id = rv.user_id
	JOIN movies m ON m.id = rv.movie_id
`

// FindByMovieID returns the movie's reviews, newest first
func (r *reviewRepository) FindByMovieID(ctx context.Context, movieID uuid.UUID) ([]*entity.ReviewDetail, error) {
	query := reviewDetailQuery + ` WHERE rv.movie_id = $1 ORDER BY rv.created_at DESC, rv.id`
	return r.queryDetails(ctx, query, movieID)
}

// FindByUserID returns the user's reviews, newest first
func (r *reviewRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.ReviewDetail, error) {
	query := reviewDetailQuery + ` WHERE rv.user_id = $1 ORDER BY rv.created_at DESC, rv.id`
	return r.queryDetails(ctx, query, userID)
}

func (r *reviewRepository) queryDetails(ctx context.Context, query string, id uuid.UUID) ([]*entity.ReviewDetail, error) {
	rows, err := r.db.Query(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to query reviews", zap.Error(err), zap.String("id", id.String()))
		return nil, fmt.Errorf("query reviews for %s: %w", id.String(), err)
	}
	defer rows.Close()

	var reviews []*entity.ReviewDetail
	for rows.Next() {
		var d entity.ReviewDetail
		if err := rows.Scan(
			&d.ID,
			&d.UserID,
			&d.MovieID,
			&d.Rating,
			&d.Title,
			&d.Content,
			&d.Helpful,
			&d.CreatedAt,
			&d.Username,
			&d.UserFirstName,
			&d.UserLastName,
			&d.MovieName,
		); err != nil {
			r.log.Error("Failed to scan review row", zap.Error(err))
			return nil, fmt.Errorf("scan review: %w", err)
		}
		reviews = append(reviews, &d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate review rows: %w", err)
	}

	return reviews, nil
}

// IncrementHelpful bumps the counter unconditionally; repeated votes count.
func (r *reviewRepository) IncrementHelpful(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `UPDATE reviews SET helpful = helpful + 1 WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to increment helpful", zap.Error(err), zap.String("review_id", id.String()))
		return fmt.Errorf("increment helpful for review %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("review %s: %w", id.String(), ErrNotFound)
	}

	return nil
}

func (r *reviewRepository) GetMovieRatingStats(ctx context.Context, movieID uuid.UUID) (float64, int, error) {
	query := `SELECT COALESCE(AVG(rating), 0), COUNT(*) FROM reviews WHERE movie_id = $1`

	var (
		avg   float64
		count int
	)
	if err := r.db.QueryRow(ctx, query, movieID).Scan(&avg, &count); err != nil {
		r.log.Error("Failed to get movie rating stats",
			zap.Error(err),
			zap.String("movie_id", movieID.String()),
		)
		return 0, 0, fmt.Errorf("get rating stats for movie %s: %w", movieID.String(), err)
	}

	return avg, count, nil
}
