package seed

import (
	"testing"

	"moviebooking/internal/data/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMovieSlug(t *testing.T) {
	assert.Equal(t, "inception-cinepolis", MovieSlug("Inception", "Cinepolis"))
	assert.Equal(t, "captain-america-brave-new-world-reelcritic-imax",
		MovieSlug("Captain America: Brave New World", "ReelCritic IMAX"))
}

func TestEntities_OrderedAndBookable(t *testing.T) {
	movies := Entities(Movies)
	require.Len(t, movies, len(Movies))

	for i, m := range movies {
		assert.Equal(t, DefaultTicketsAvailable, m.TicketsAvailable)
		assert.Equal(t, entity.TicketStatusBookASAP, m.TicketStatus)
		assert.NotEmpty(t, m.Slug)
		if i > 0 {
			assert.True(t, m.CreatedAt.After(movies[i-1].CreatedAt))
		}
	}
}

func TestCatalogueContainsInception(t *testing.T) {
	var found bool
	for _, s := range Movies {
		if s.Name == "Inception" && s.Theatre == "Cinepolis" {
			found = true
		}
	}
	assert.True(t, found)
}
