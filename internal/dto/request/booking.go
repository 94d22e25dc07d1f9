package request

// BookTicketRequest is the body of POST /{movieName}/add.
// Username is optional; when present it must match the caller.
type BookTicketRequest struct {
	Username    string   `json:"username,omitempty"`
	TheatreName string   `json:"theatreName" validate:"required"`
	NoOfTickets int      `json:"noOfTickets" validate:"required,gte=1"`
	SeatNumber  []string `json:"seatNumber" validate:"required,min=1,dive,required"`
}
