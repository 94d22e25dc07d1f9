package entity

// Ticket is the immutable record of one booking.
type Ticket struct {
	BaseSimple
	Username    string   `db:"username"`
	MovieName   string   `db:"movie_name"`
	TheatreName string   `db:"theatre_name"`
	NoOfTickets int      `db:"no_of_tickets"`
	SeatNumbers []string `db:"seat_numbers"`
}

// HasSeat reports whether seat is one of the ticket's seats.
func (t *Ticket) HasSeat(seat string) bool {
	for _, s := range t.SeatNumbers {
		if s == seat {
			return true
		}
	}
	return false
}
