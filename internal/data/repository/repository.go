package repository

import (
	"moviebooking/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User   UserRepository
	Role   RoleRepository
	Movie  MovieRepository
	Ticket TicketRepository
	Review ReviewRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:   NewUserRepository(db, log),
		Role:   NewRoleRepository(db, log),
		Movie:  NewMovieRepository(db, log),
		Ticket: NewTicketRepository(db, log),
		Review: NewReviewRepository(db, log),
	}
}
