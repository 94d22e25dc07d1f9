// Package catalog provides the read side of the movie listing.
package catalog

import (
	"context"

	"moviebooking/internal/data/cache"
	"moviebooking/internal/data/entity"
	"moviebooking/internal/data/repository"
	"moviebooking/internal/data/seed"
	"moviebooking/pkg/utils"

	"go.uber.org/zap"
)

type MovieCatalog interface {
	All(ctx context.Context) ([]*entity.Movie, error)
	Search(ctx context.Context, fragment string) ([]*entity.Movie, error)
}

type storeCatalog struct {
	movies repository.MovieRepository
	cache  cache.MovieCache
}

// NewStoreCatalog reads from the movie table, serving All from cache when
// possible.
func NewStoreCatalog(movies repository.MovieRepository, c cache.MovieCache) MovieCatalog {
	return &storeCatalog{movies: movies, cache: c}
}

func (s *storeCatalog) All(ctx context.Context) ([]*entity.Movie, error) {
	if movies, ok := s.cache.GetAll(ctx); ok {
		return movies, nil
	}

	movies, err := s.movies.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	if len(movies) > 0 {
		s.cache.SetAll(ctx, movies)
	}
	return movies, nil
}

func (s *storeCatalog) Search(ctx context.Context, fragment string) ([]*entity.Movie, error) {
	return s.movies.SearchByName(ctx, fragment)
}

// StaticCatalog serves a fixed in-memory list.
type StaticCatalog struct {
	movies []*entity.Movie
}

func NewStaticCatalog(movies []*entity.Movie) *StaticCatalog {
	return &StaticCatalog{movies: movies}
}

// NewSeedCatalog builds a static catalog from the built-in seed list.
func NewSeedCatalog() *StaticCatalog {
	return NewStaticCatalog(seed.Entities(seed.Movies))
}

func (s *StaticCatalog) All(context.Context) ([]*entity.Movie, error) {
	out := make([]*entity.Movie, len(s.movies))
	copy(out, s.movies)
	return out, nil
}

func (s *StaticCatalog) Search(_ context.Context, fragment string) ([]*entity.Movie, error) {
	var out []*entity.Movie
	for _, m := range s.movies {
		if utils.ContainsFold(m.MovieName, fragment) {
			out = append(out, m)
		}
	}
	return out, nil
}

// FallbackCatalog answers from secondary whenever primary fails.
type FallbackCatalog struct {
	primary   MovieCatalog
	secondary MovieCatalog
	log       *zap.Logger
}

func NewFallbackCatalog(primary, secondary MovieCatalog, log *zap.Logger) *FallbackCatalog {
	return &FallbackCatalog{
		primary:   primary,
		secondary: secondary,
		log:       log.With(zap.String("catalog", "fallback")),
	}
}

func (f *FallbackCatalog) All(ctx context.Context) ([]*entity.Movie, error) {
	movies, err := f.primary.All(ctx)
	if err == nil {
		return movies, nil
	}

	f.log.Warn("Primary catalog failed, serving fallback list", zap.Error(err))
	return f.secondary.All(ctx)
}

func (f *FallbackCatalog) Search(ctx context.Context, fragment string) ([]*entity.Movie, error) {
	movies, err := f.primary.Search(ctx, fragment)
	if err == nil {
		return movies, nil
	}

	f.log.Warn("Primary catalog search failed, serving fallback list",
		zap.Error(err),
		zap.String("fragment", fragment),
	)
	return f.secondary.Search(ctx, fragment)
}
