package response

import (
	"time"

	"moviebooking/internal/data/entity"
)

type BookingStatus string

const (
	BookingStatusBooked  BookingStatus = "BOOKED"
	BookingStatusSoldOut BookingStatus = "SOLD_OUT"
)

// BookingResult is returned for both outcomes of a booking attempt.
// A sold-out attempt is not an error.
type BookingResult struct {
	Status      BookingStatus `json:"status"`
	Message     string        `json:"message"`
	TicketID    string        `json:"ticketId,omitempty"`
	MovieName   string        `json:"movieName"`
	TheatreName string        `json:"theatreName"`
	SeatNumbers []string      `json:"seatNumbers,omitempty"`
}

func (b *BookingResult) Booked() bool {
	return b.Status == BookingStatusBooked
}

type TicketResponse struct {
	ID          string    `json:"ticketId"`
	Username    string    `json:"username"`
	MovieName   string    `json:"movieName"`
	TheatreName string    `json:"theatreName"`
	NoOfTickets int       `json:"noOfTickets"`
	SeatNumbers []string  `json:"seatNumber"`
	CreatedAt   time.Time `json:"createdAt"`
}

func TicketToResponse(t *entity.Ticket) TicketResponse {
	return TicketResponse{
		ID:          t.ID.String(),
		Username:    t.Username,
		MovieName:   t.MovieName,
		TheatreName: t.TheatreName,
		NoOfTickets: t.NoOfTickets,
		SeatNumbers: t.SeatNumbers,
		CreatedAt:   t.CreatedAt,
	}
}
