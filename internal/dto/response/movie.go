package response

import (
	"time"

	"moviebooking/internal/data/entity"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type MovieResponse struct {
	ID               uuid.UUID           `json:"movieId"`
	Slug             string              `json:"slug"`
	MovieName        string              `json:"movieName"`
	TheatreName      string              `json:"theatreName"`
	TicketsAvailable int                 `json:"ticketsAvailable"`
	TicketStatus     entity.TicketStatus `json:"ticketStatus"`
	Status           string              `json:"status"`
	PosterURL        string              `json:"posterUrl"`
	Description      string              `json:"description"`
	Director         string              `json:"director"`
	Cast             []string            `json:"cast"`
	Genre            string              `json:"genre"`
	Language         string              `json:"language"`
	Duration         int                 `json:"duration"`
	Rating           float64             `json:"rating"`
	ReviewCount      int                 `json:"reviewCount"`
	ReleaseDate      *time.Time          `json:"releaseDate,omitempty"`
	Certificate      string              `json:"certificate"`
	TrailerURL       string              `json:"trailerUrl"`
	BookMyShowURL    string              `json:"bookMyShowUrl"`
}

// Helper converters
func MovieToResponse(movie *entity.Movie) MovieResponse {
	var resp MovieResponse
	// field names match the entity one to one
	_ = copier.Copy(&resp, movie)
	return resp
}

func MoviesToResponse(movies []*entity.Movie) []MovieResponse {
	out := make([]MovieResponse, len(movies))
	for i, m := range movies {
		out[i] = MovieToResponse(m)
	}
	return out
}
