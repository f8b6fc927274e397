package request

import "travel-booking/internal/usecase/commands"

type ReviewRequest struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment" binding:"required,max=1000"`
}

func (r ReviewRequest) ToInput() commands.ReviewInput {
	return commands.ReviewInput{
		Rating:  r.Rating,
		Comment: r.Comment,
	}
}
