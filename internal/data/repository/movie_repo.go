package repository

import (
	"context"
	"errors"
	"fmt"

	"moviebooking/internal/data/entity"
	"moviebooking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type MovieRepository interface {
	CreateBatch(ctx context.Context, movies []*entity.Movie) error
	Count(ctx context.Context) (int64, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Movie, error)
	FindAll(ctx context.Context) ([]*entity.Movie, error)
	SearchByName(ctx context.Context, fragment string) ([]*entity.Movie, error)

	// Exact-name lookups, oldest row first (ties broken by id)
	FindByName(ctx context.Context, name string) ([]*entity.Movie, error)
	FindByNameAndTheatre(ctx context.Context, name, theatre string) ([]*entity.Movie, error)

	// Capacity
	DecrementAvailability(ctx context.Context, id uuid.UUID, n int) (bool, error)
	IncrementAvailability(ctx context.Context, id uuid.UUID, n int) error

	UpdateTicketStatus(ctx context.Context, id uuid.UUID, status entity.TicketStatus) error
	UpdateRating(ctx context.Context, id uuid.UUID, rating float64, reviewCount int) error
	DeleteByName(ctx context.Context, name string) (int64, error)
}

type movieRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewMovieRepository(db database.PgxIface, log *zap.Logger) MovieRepository {
	return &movieRepository{
		db:  db,
		log: log.With(zap.String("repository", "movie")),
	}
}

const movieColumns = `
	id, slug, movie_name, theatre_name, review_count, status, poster_url,
	description, director, movie_cast, genre, language, duration, rating,
	release_date, certificate, trailer_url, bookmyshow_url,
	tickets_available, ticket_status, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMovie(row rowScanner) (*entity.Movie, error) {
	var m entity.Movie
	err := row.Scan(
		&m.ID,
		&m.Slug,
		&m.MovieName,
		&m.TheatreName,
		&m.ReviewCount,
		&m.Status,
		&m.PosterURL,
		&m.Description,
		&m.Director,
		&m.Cast,
		&m.Genre,
		&m.Language,
		&m.Duration,
		&m.Rating,
		&m.ReleaseDate,
		&m.Certificate,
		&m.TrailerURL,
		&m.BookMyShowURL,
		&m.TicketsAvailable,
		&m.TicketStatus,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *movieRepository) CreateBatch(ctx context.Context, movies []*entity.Movie) error {
	query := `
		INSERT INTO movies (id, slug, movie_name, theatre_name, review_count, status,
		                    poster_url, description, director, movie_cast, genre,
		                    language, duration, rating, release_date, certificate,
		                    trailer_url, bookmyshow_url, tickets_available,
		                    ticket_status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11,
		        $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)
	`

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin movie batch: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, m := range movies {
		_, err := tx.Exec(ctx, query,
			m.ID,
			m.Slug,
			m.MovieName,
			m.TheatreName,
			m.ReviewCount,
			m.Status,
			m.PosterURL,
			m.Description,
			m.Director,
			m.Cast,
			m.Genre,
			m.Language,
			m.Duration,
			m.Rating,
			m.ReleaseDate,
			m.Certificate,
			m.TrailerURL,
			m.BookMyShowURL,
			m.TicketsAvailable,
			m.TicketStatus,
			m.CreatedAt,
			m.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to insert movie",
				zap.Error(err),
				zap.String("movie_name", m.MovieName),
				zap.String("theatre_name", m.TheatreName),
			)
			return fmt.Errorf("insert movie %s: %w", m.MovieName, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit movie batch: %w", err)
	}

	r.log.Info("Movies inserted", zap.Int("count", len(movies)))
	return nil
}

func (r *movieRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM movies`).Scan(&total); err != nil {
		r.log.Error("Failed to count movies", zap.Error(err))
		return 0, fmt.Errorf("count movies: %w", err)
	}
	return total, nil
}

func (r *movieRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Movie, error) {
	query := `SELECT ` + movieColumns + ` FROM movies WHERE id = $1`

	movie, err := scanMovie(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find movie by ID",
			zap.Error(err),
			zap.String("movie_id", id.String()),
		)
		return nil, fmt.Errorf("find movie by ID %s: %w", id.String(), err)
	}

	return movie, nil
}

func (r *movieRepository) FindAll(ctx context.Context) ([]*entity.Movie, error) {
	query := `SELECT ` + movieColumns + ` FROM movies ORDER BY created_at, id`
	return r.queryMovies(ctx, "find all movies", query)
}

// SearchByName matches fragment anywhere in the name, case-insensitively.
// position() is used instead of ILIKE so % and _ in the input stay literal.
func (r *movieRepository) SearchByName(ctx context.Context, fragment string) ([]*entity.Movie, error) {
	query := `SELECT ` + movieColumns + `
		FROM movies
		WHERE position(lower($1) in lower(movie_name)) > 0
		ORDER BY created_at, id`
	return r.queryMovies(ctx, "search movies", query, fragment)
}

func (r *movieRepository) FindByName(ctx context.Context, name string) ([]*entity.Movie, error) {
	query := `SELECT ` + movieColumns + `
		FROM movies
		WHERE movie_name = $1
		ORDER BY created_at, id`
	return r.queryMovies(ctx, "find movies by name", query, name)
}

func (r *movieRepository) FindByNameAndTheatre(ctx context.Context, name, theatre string) ([]*entity.Movie, error) {
	query := `SELECT ` + movieColumns + `
		FROM movies
		WHERE movie_name = $1 AND theatre_name = $2
		ORDER BY created_at, id`
	return r.queryMovies(ctx, "find movies by name and theatre", query, name, theatre)
}

func (r *movieRepository) queryMovies(ctx context.Context, op, query string, args ...any) ([]*entity.Movie, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to "+op, zap.Error(err), zap.Any("args", args))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var movies []*entity.Movie
	for rows.Next() {
		movie, err := scanMovie(rows)
		if err != nil {
			r.log.Error("Failed to scan movie row", zap.Error(err))
			return nil, fmt.Errorf("scan movie: %w", err)
		}
		movies = append(movies, movie)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate movie rows: %w", err)
	}

	r.log.Debug("Movies found", zap.String("op", op), zap.Int("count", len(movies)))
	return movies, nil
}

// DecrementAvailability subtracts n only when at least n tickets remain, so
// concurrent callers can never drive the counter negative. It reports false
// when the row had too few tickets left at write time.
func (r *movieRepository) DecrementAvailability(ctx context.Context, id uuid.UUID, n int) (bool, error) {
	query := `
		UPDATE movies
		SET tickets_available = tickets_available - $2, updated_at = NOW()
		WHERE id = $1 AND tickets_available >= $2
	`

	result, err := r.db.Exec(ctx, query, id, n)
	if err != nil {
		r.log.Error("Failed to decrement availability",
			zap.Error(err),
			zap.String("movie_id", id.String()),
			zap.Int("count", n),
		)
		return false, fmt.Errorf("decrement availability for movie %s: %w", id.String(), err)
	}

	return result.RowsAffected() == 1, nil
}

func (r *movieRepository) IncrementAvailability(ctx context.Context, id uuid.UUID, n int) error {
	query := `
		UPDATE movies
		SET tickets_available = tickets_available + $2, updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query, id, n)
	if err != nil {
		r.log.Error("Failed to increment availability",
			zap.Error(err),
			zap.String("movie_id", id.String()),
			zap.Int("count", n),
		)
		return fmt.Errorf("increment availability for movie %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("movie %s: %w", id.String(), ErrNotFound)
	}

	return nil
}

func (r *movieRepository) UpdateTicketStatus(ctx context.Context, id uuid.UUID, status entity.TicketStatus) error {
	query := `UPDATE movies SET ticket_status = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, status)
	if err != nil {
		r.log.Error("Failed to update ticket status",
			zap.Error(err),
			zap.String("movie_id", id.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update ticket status for movie %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("movie %s: %w", id.String(), ErrNotFound)
	}

	return nil
}

func (r *movieRepository) UpdateRating(ctx context.Context, id uuid.UUID, rating float64, reviewCount int) error {
	query := `UPDATE movies SET rating = $2, review_count = $3, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, rating, reviewCount)
	if err != nil {
		r.log.Error("Failed to update movie rating",
			zap.Error(err),
			zap.String("movie_id", id.String()),
			zap.Float64("rating", rating),
		)
		return fmt.Errorf("update rating for movie %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("movie %s: %w", id.String(), ErrNotFound)
	}

	return nil
}

func (r *movieRepository) DeleteByName(ctx context.Context, name string) (int64, error) {
	result, err := r.db.Exec(ctx, `DELETE FROM movies WHERE movie_name = $1`, name)
	if err != nil {
		r.log.Error("Failed to delete movies",
			zap.Error(err),
			zap.String("movie_name", name),
		)
		return 0, fmt.Errorf("delete movies named %s: %w", name, err)
	}

	r.log.Info("Movies deleted",
		zap.String("movie_name", name),
		zap.Int64("rows", result.RowsAffected()),
	)
	return result.RowsAffected(), nil
}
