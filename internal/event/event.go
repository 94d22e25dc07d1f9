// Package event carries booking notifications over RabbitMQ.
package event

import (
	"context"
	"time"

	"go.uber.org/zap"
)

const TicketBookedMessage = "Movie ticket booked!"

type TicketBookedEvent struct {
	Message     string    `json:"message"`
	TicketID    string    `json:"ticketId"`
	Username    string    `json:"username"`
	Email       string    `json:"email,omitempty"`
	MovieName   string    `json:"movieName"`
	TheatreName string    `json:"theatreName"`
	NoOfTickets int       `json:"noOfTickets"`
	SeatNumbers []string  `json:"seatNumbers"`
	BookedAt    time.Time `json:"bookedAt"`
}

type Publisher interface {
	PublishTicketBooked(ctx context.Context, ev TicketBookedEvent) error
	Close() error
}

// Handler processes one consumed event.
type Handler func(ctx context.Context, ev TicketBookedEvent) error

// LogPublisher only logs the event. Used when no broker is configured.
type LogPublisher struct {
	log *zap.Logger
}

func NewLogPublisher(log *zap.Logger) *LogPublisher {
	return &LogPublisher{log: log.With(zap.String("publisher", "log"))}
}

func (p *LogPublisher) PublishTicketBooked(_ context.Context, ev TicketBookedEvent) error {
	p.log.Info(ev.Message,
		zap.String("ticket_id", ev.TicketID),
		zap.String("username", ev.Username),
		zap.String("movie_name", ev.MovieName),
		zap.String("theatre_name", ev.TheatreName),
		zap.Strings("seats", ev.SeatNumbers),
	)
	return nil
}

func (p *LogPublisher) Close() error { return nil }
