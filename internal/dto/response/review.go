package response

import (
	"strings"
	"time"

	"moviebooking/internal/data/entity"
)

type ReviewResponse struct {
	ReviewID     string    `json:"reviewId"`
	UserID       string    `json:"userId"`
	Username     string    `json:"username"`
	UserFullName string    `json:"userFullName"`
	MovieName    string    `json:"movieName"`
	Rating       float64   `json:"rating"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	CreatedDate  time.Time `json:"createdDate"`
	Helpful      int       `json:"helpful"`
}

// Helper converter
func ReviewToResponse(d *entity.ReviewDetail) ReviewResponse {
	return ReviewResponse{
		ReviewID:     d.ID.String(),
		UserID:       d.UserID.String(),
		Username:     d.Username,
		UserFullName: strings.TrimSpace(d.UserFirstName + " " + d.UserLastName),
		MovieName:    d.MovieName,
		Rating:       d.Rating,
		Title:        d.Title,
		Content:      d.Content,
		CreatedDate:  d.CreatedAt,
		Helpful:      d.Helpful,
	}
}

func ReviewsToResponse(details []*entity.ReviewDetail) []ReviewResponse {
	out := make([]ReviewResponse, len(details))
	for i, d := range details {
		out[i] = ReviewToResponse(d)
	}
	return out
}
