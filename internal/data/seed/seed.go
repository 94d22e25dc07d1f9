// Package seed bootstraps roles and the movie catalogue at startup.
package seed

import (
	"context"
	"fmt"
	"time"

	"moviebooking/internal/data/entity"
	"moviebooking/internal/data/repository"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"go.uber.org/zap"
)

// DefaultTicketsAvailable is the capacity given to every seeded screening.
const DefaultTicketsAvailable = 100

type MovieSeed struct {
	Name          string
	Theatre       string
	ReviewCount   int
	Status        string
	PosterURL     string
	Description   string
	Director      string
	Cast          []string
	Genre         string
	Language      string
	Duration      int
	Rating        float64
	ReleaseDate   time.Time
	Certificate   string
	TrailerURL    string
	BookMyShowURL string
}

// MovieSlug builds the url slug for a screening, e.g. "inception-cinepolis".
func MovieSlug(name, theatre string) string {
	return slug.Make(name + " " + theatre)
}

// ToEntity converts the seed into a fresh movie row. Rows created in one
// batch get increasing timestamps so the first-row ordering stays stable.
func (s MovieSeed) ToEntity(createdAt time.Time) *entity.Movie {
	release := s.ReleaseDate
	return &entity.Movie{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: createdAt,
			UpdatedAt: createdAt,
		},
		Slug:             MovieSlug(s.Name, s.Theatre),
		MovieName:        s.Name,
		TheatreName:      s.Theatre,
		ReviewCount:      s.ReviewCount,
		Status:           s.Status,
		PosterURL:        s.PosterURL,
		Description:      s.Description,
		Director:         s.Director,
		Cast:             append([]string(nil), s.Cast...),
		Genre:            s.Genre,
		Language:         s.Language,
		Duration:         s.Duration,
		Rating:           s.Rating,
		ReleaseDate:      &release,
		Certificate:      s.Certificate,
		TrailerURL:       s.TrailerURL,
		BookMyShowURL:    s.BookMyShowURL,
		TicketsAvailable: DefaultTicketsAvailable,
		TicketStatus:     entity.TicketStatusFor(DefaultTicketsAvailable),
	}
}

// Entities converts the whole catalogue.
func Entities(seeds []MovieSeed) []*entity.Movie {
	base := time.Now().UTC()
	movies := make([]*entity.Movie, len(seeds))
	for i, s := range seeds {
		movies[i] = s.ToEntity(base.Add(time.Duration(i) * time.Millisecond))
	}
	return movies
}

// SeedRoles creates every role. Existing rows are left untouched.
func SeedRoles(ctx context.Context, roles repository.RoleRepository, log *zap.Logger) error {
	for _, name := range entity.AllRoles {
		role := &entity.Role{
			BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now().UTC()},
			Name:       name,
		}
		if err := roles.Create(ctx, role); err != nil {
			return fmt.Errorf("seed role %s: %w", name, err)
		}
	}

	log.Info("Roles seeded", zap.Int("count", len(entity.AllRoles)))
	return nil
}

// SeedMovies inserts the built-in catalogue when the movies table is empty.
func SeedMovies(ctx context.Context, movies repository.MovieRepository, log *zap.Logger) error {
	count, err := movies.Count(ctx)
	if err != nil {
		return fmt.Errorf("count movies before seeding: %w", err)
	}

	if count > 0 {
		log.Info("Movies already present, skipping seed", zap.Int64("count", count))
		return nil
	}

	if err := movies.CreateBatch(ctx, Entities(Movies)); err != nil {
		return fmt.Errorf("seed movies: %w", err)
	}

	log.Info("Movie catalogue seeded", zap.Int("count", len(Movies)))
	return nil
}
