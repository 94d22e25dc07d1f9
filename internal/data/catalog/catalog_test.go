package catalog

import (
	"context"
	"errors"
	"testing"

	"moviebooking/internal/data/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type brokenCatalog struct{}

func (brokenCatalog) All(context.Context) ([]*entity.Movie, error) {
	return nil, errors.New("connection refused")
}

func (brokenCatalog) Search(context.Context, string) ([]*entity.Movie, error) {
	return nil, errors.New("connection refused")
}

func TestStaticCatalog_SearchIsCaseInsensitiveSubstring(t *testing.T) {
	c := NewSeedCatalog()

	movies, err := c.Search(context.Background(), "dark")
	require.NoError(t, err)
	require.NotEmpty(t, movies)
	assert.Equal(t, "The Dark Knight", movies[0].MovieName)

	none, err := c.Search(context.Background(), "no such film")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestFallbackCatalog_UsesSecondaryOnError(t *testing.T) {
	static := NewSeedCatalog()
	c := NewFallbackCatalog(brokenCatalog{}, static, zap.NewNop())

	all, err := c.All(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, all)

	found, err := c.Search(context.Background(), "Inception")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Cinepolis", found[0].TheatreName)
}

func TestFallbackCatalog_PrefersPrimary(t *testing.T) {
	primary := NewStaticCatalog([]*entity.Movie{{MovieName: "Only Primary"}})
	c := NewFallbackCatalog(primary, NewSeedCatalog(), zap.NewNop())

	all, err := c.All(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Only Primary", all[0].MovieName)
}
