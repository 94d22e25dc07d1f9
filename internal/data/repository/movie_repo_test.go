package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"moviebooking/internal/data/entity"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var movieCols = []string{
	"id", "slug", "movie_name", "theatre_name", "review_count", "status", "poster_url",
	"description", "director", "movie_cast", "genre", "language", "duration", "rating",
	"release_date", "certificate", "trailer_url", "bookmyshow_url",
	"tickets_available", "ticket_status", "created_at", "updated_at",
}

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

func movieFixture(theatre string, available int, created time.Time) *entity.Movie {
	return &entity.Movie{
		Base:             entity.Base{ID: uuid.New(), CreatedAt: created, UpdatedAt: created},
		Slug:             "inception-" + theatre,
		MovieName:        "Inception",
		TheatreName:      theatre,
		Cast:             []string{"Leonardo DiCaprio"},
		TicketsAvailable: available,
		TicketStatus:     entity.TicketStatusFor(available),
	}
}

func addMovieRow(rows *pgxmock.Rows, m *entity.Movie) *pgxmock.Rows {
	return rows.AddRow(
		m.ID, m.Slug, m.MovieName, m.TheatreName, m.ReviewCount, m.Status, m.PosterURL,
		m.Description, m.Director, m.Cast, m.Genre, m.Language, m.Duration, m.Rating,
		m.ReleaseDate, m.Certificate, m.TrailerURL, m.BookMyShowURL,
		m.TicketsAvailable, m.TicketStatus, m.CreatedAt, m.UpdatedAt,
	)
}

func TestMovieRepository_DecrementAvailability(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name     string
		affected int64
		err      error
		want     bool
		wantErr  bool
	}{
		{name: "enough tickets left", affected: 1, want: true},
		{name: "guard rejects the update", affected: 0, want: false},
		{name: "driver error", err: errors.New("conn reset"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := newMock(t)
			repo := NewMovieRepository(mock, zap.NewNop())

			exp := mock.ExpectExec(`WHERE id = \$1 AND tickets_available >= \$2`).WithArgs(id, 3)
			if tt.err != nil {
				exp.WillReturnError(tt.err)
			} else {
				exp.WillReturnResult(pgxmock.NewResult("UPDATE", tt.affected))
			}

			ok, err := repo.DecrementAvailability(context.Background(), id, 3)

			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, ok)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestMovieRepository_IncrementAvailabilityMissingRow(t *testing.T) {
	mock := newMock(t)
	repo := NewMovieRepository(mock, zap.NewNop())
	id := uuid.New()

	mock.ExpectExec(`SET tickets_available = tickets_available \+ \$2`).
		WithArgs(id, 2).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := repo.IncrementAvailability(context.Background(), id, 2)

	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMovieRepository_FindByNameAndTheatreKeepsOldestFirst(t *testing.T) {
	mock := newMock(t)
	repo := NewMovieRepository(mock, zap.NewNop())

	base := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	older := movieFixture("Cinepolis", 5, base)
	newer := movieFixture("Cinepolis", 50, base.Add(time.Millisecond))

	mock.ExpectQuery(`WHERE movie_name = \$1 AND theatre_name = \$2\s+ORDER BY created_at, id`).
		WithArgs("Inception", "Cinepolis").
		WillReturnRows(addMovieRow(addMovieRow(pgxmock.NewRows(movieCols), older), newer))

	movies, err := repo.FindByNameAndTheatre(context.Background(), "Inception", "Cinepolis")

	require.NoError(t, err)
	require.Len(t, movies, 2)
	assert.Equal(t, older.ID, movies[0].ID)
	assert.Equal(t, 5, movies[0].TicketsAvailable)
	assert.Equal(t, entity.TicketStatusBookASAP, movies[0].TicketStatus)
	assert.Equal(t, []string{"Leonardo DiCaprio"}, movies[0].Cast)
	assert.Equal(t, newer.ID, movies[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMovieRepository_QueriesOrderByCreatedThenID(t *testing.T) {
	ctx := context.Background()
	calls := []struct {
		name  string
		match string
		run   func(MovieRepository) ([]*entity.Movie, error)
	}{
		{"all", `FROM movies ORDER BY created_at, id`, func(r MovieRepository) ([]*entity.Movie, error) {
			return r.FindAll(ctx)
		}},
		{"by name", `WHERE movie_name = \$1\s+ORDER BY created_at, id`, func(r MovieRepository) ([]*entity.Movie, error) {
			return r.FindByName(ctx, "Inception")
		}},
		{"search", `position\(lower\(\$1\) in lower\(movie_name\)\) > 0\s+ORDER BY created_at, id`, func(r MovieRepository) ([]*entity.Movie, error) {
			return r.SearchByName(ctx, "incep")
		}},
	}

	for _, c := range calls {
		t.Run(c.name, func(t *testing.T) {
			mock := newMock(t)
			repo := NewMovieRepository(mock, zap.NewNop())
			mock.ExpectQuery(c.match).WillReturnRows(pgxmock.NewRows(movieCols))

			movies, err := c.run(repo)

			require.NoError(t, err)
			assert.Empty(t, movies)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestMovieRepository_FindByIDMissing(t *testing.T) {
	mock := newMock(t)
	repo := NewMovieRepository(mock, zap.NewNop())
	id := uuid.New()

	mock.ExpectQuery(`FROM movies WHERE id = \$1`).WithArgs(id).WillReturnError(pgx.ErrNoRows)

	movie, err := repo.FindByID(context.Background(), id)

	assert.NoError(t, err)
	assert.Nil(t, movie)
}

func TestMovieRepository_DeleteByNameReportsRows(t *testing.T) {
	mock := newMock(t)
	repo := NewMovieRepository(mock, zap.NewNop())

	mock.ExpectExec(`DELETE FROM movies WHERE movie_name = \$1`).
		WithArgs("Inception").
		WillReturnResult(pgxmock.NewResult("DELETE", 3))

	n, err := repo.DeleteByName(context.Background(), "Inception")

	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}
