package entity

import (
	"errors"

	"github.com/google/uuid"
)

var ErrTestimonialNotFound = errors.New("testimonial not found")

// Testimonial é identificado por ID sintético, nunca pelo autor.
type Testimonial struct {
	ID     string `json:"id"`
	Quote  string `json:"quote"`
	Author string `json:"author"`
	Role   string `json:"role"`
	Avatar string `json:"avatar"`
}

func NewTestimonial(quote, author, role, avatar string) *Testimonial {
	return &Testimonial{
		ID:     uuid.New().String(),
		Quote:  quote,
		Author: author,
		Role:   role,
		Avatar: avatar,
	}
}
