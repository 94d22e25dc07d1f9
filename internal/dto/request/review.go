package request

type CreateReviewRequest struct {
	Rating  float64 `json:"rating" validate:"required,gte=1,lte=5"`
	Title   string  `json:"title" validate:"required,max=100"`
	Content string  `json:"content" validate:"required,max=1000"`
}
