package repository

import (
	"context"
	"errors"
	"fmt"

	"moviebooking/internal/data/entity"
	"moviebooking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type TicketRepository interface {
	Create(ctx context.Context, ticket *entity.Ticket) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Ticket, error)
	FindByMovieAndTheatre(ctx context.Context, movieName, theatreName string) ([]*entity.Ticket, error)
	FindByMovieName(ctx context.Context, movieName string) ([]*entity.Ticket, error)
}

type ticketRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTicketRepository(db database.PgxIface, log *zap.Logger) TicketRepository {
	return &ticketRepository{
		db:  db,
		log: log.With(zap.String("repository", "ticket")),
	}
}

func (r *ticketRepository) Create(ctx context.Context, ticket *entity.Ticket) error {
	query := `
		INSERT INTO tickets (id, username, movie_name, theatre_name,
		                     no_of_tickets, seat_numbers, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		ticket.ID,
		ticket.Username,
		ticket.MovieName,
		ticket.TheatreName,
		ticket.NoOfTickets,
		ticket.SeatNumbers,
		ticket.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create ticket",
			zap.Error(err),
			zap.String("username", ticket.Username),
			zap.String("movie_name", ticket.MovieName),
			zap.String("theatre_name", ticket.TheatreName),
		)
		return fmt.Errorf("create ticket for movie %s by %s: %w", ticket.MovieName, ticket.Username, err)
	}

	return nil
}

func (r *ticketRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Ticket, error) {
	query := `
		SELECT id, username, movie_name, theatre_name, no_of_tickets, seat_numbers, created_at
		FROM tickets
		WHERE id = $1
	`

	var t entity.Ticket
	err := r.db.QueryRow(ctx, query, id).Scan(
		&t.ID,
		&t.Username,
		&t.MovieName,
		&t.TheatreName,
		&t.NoOfTickets,
		&t.SeatNumbers,
		&t.CreatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find ticket by ID",
			zap.Error(err),
			zap.String("ticket_id", id.String()),
		)
		return nil, fmt.Errorf("find ticket by ID %s: %w", id.String(), err)
	}

	return &t, nil
}

func (r *ticketRepository) FindByMovieAndTheatre(ctx context.Context, movieName, theatreName string) ([]*entity.Ticket, error) {
	query := `
		SELECT id, username, movie_name, theatre_name, no_of_tickets, seat_numbers, created_at
		FROM tickets
		WHERE movie_name = $1 AND theatre_name = $2
		ORDER BY created_at
	`
	return r.queryTickets(ctx, query, movieName, theatreName)
}

func (r *ticketRepository) FindByMovieName(ctx context.Context, movieName string) ([]*entity.Ticket, error) {
	query := `
		SELECT id, username, movie_name, theatre_name, no_of_tickets, seat_numbers, created_at
		FROM tickets
		WHERE movie_name = $1
		ORDER BY created_at
	`
	return r.queryTickets(ctx, query, movieName)
}

func (r *ticketRepository) queryTickets(ctx context.Context, query string, args ...any) ([]*entity.Ticket, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to query tickets", zap.Error(err), zap.Any("args", args))
		return nil, fmt.Errorf("query tickets: %w", err)
	}
	defer rows.Close()

	var tickets []*entity.Ticket
	for rows.Next() {
		var t entity.Ticket
		if err := rows.Scan(
			&t.ID,
			&t.Username,
			&t.MovieName,
			&t.TheatreName,
			&t.NoOfTickets,
			&t.SeatNumbers,
			&t.CreatedAt,
		); err != nil {
			r.log.Error("Failed to scan ticket row", zap.Error(err))
			return nil, fmt.Errorf("scan ticket: %w", err)
		}
		tickets = append(tickets, &t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ticket rows: %w", err)
	}

	return tickets, nil
}
