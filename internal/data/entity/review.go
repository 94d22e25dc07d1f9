package entity

import (
	"github.com/google/uuid"
)

type Review struct {
	BaseSimple
	UserID  uuid.UUID `db:"user_id"`
	MovieID uuid.UUID `db:"movie_id"`
	Rating  float64   `db:"rating"` // 1.0-5.0
	Title   string    `db:"title"`
	Content string    `db:"content"`
	Helpful int       `db:"helpful"`
}

// ReviewDetail is a review joined with its author and movie for listings.
type ReviewDetail struct {
	Review
	Username      string `db:"username"`
	UserFirstName string `db:"first_name"`
	UserLastName  string `db:"last_name"`
	MovieName     string `db:"movie_name"`
}
