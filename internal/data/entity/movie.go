package entity

import (
	"time"
)

type TicketStatus string

const (
	TicketStatusSoldOut  TicketStatus = "SOLD OUT"
	TicketStatusBookASAP TicketStatus = "BOOK ASAP"
)

// TicketStatusFor derives the display label from the remaining availability.
func TicketStatusFor(available int) TicketStatus {
	if available == 0 {
		return TicketStatusSoldOut
	}
	return TicketStatusBookASAP
}

// Movie is one (film, theatre) screening row. MovieName is not unique.
type Movie struct {
	Base
	Slug             string       `db:"slug"`
	MovieName        string       `db:"movie_name"`
	TheatreName      string       `db:"theatre_name"`
	ReviewCount      int          `db:"review_count"`
	Status           string       `db:"status"` // release status, e.g. NOW SHOWING
	PosterURL        string       `db:"poster_url"`
	Description      string       `db:"description"`
	Director         string       `db:"director"`
	Cast             []string     `db:"movie_cast"`
	Genre            string       `db:"genre"`
	Language         string       `db:"language"`
	Duration         int          `db:"duration"` // minutes
	Rating           float64      `db:"rating"`   // 0-10
	ReleaseDate      *time.Time   `db:"release_date"`
	Certificate      string       `db:"certificate"`
	TrailerURL       string       `db:"trailer_url"`
	BookMyShowURL    string       `db:"bookmyshow_url"`
	TicketsAvailable int          `db:"tickets_available"`
	TicketStatus     TicketStatus `db:"ticket_status"`
}
