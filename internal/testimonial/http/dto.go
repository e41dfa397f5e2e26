package http

import (
	"time"

	"github.com/lumadent/clinic-booking-backend/internal/pkg/request"
	"github.com/lumadent/clinic-booking-backend/internal/testimonial"
)

// ListTestimonialsRequest defines query parameters for listing reviews.
type ListTestimonialsRequest struct {
	request.ListParams
	Treatment string `form:"treatment"`
	MinRating int    `form:"min_rating" binding:"omitempty,min=1,max=5"`
}

type TestimonialResponse struct {
	ID          string    `json:"id"`
	PatientName string    `json:"patient_name"`
	Rating      int       `json:"rating"`
	Treatment   string    `json:"treatment,omitempty"`
	Quote       string    `json:"quote"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewTestimonialResponse(t *testimonial.Testimonial) TestimonialResponse {
	return TestimonialResponse{
		ID:          t.ID,
		PatientName: t.PatientName,
		Rating:      t.Rating,
		Treatment:   t.Treatment,
		Quote:       t.Quote,
		CreatedAt:   t.CreatedAt,
	}
}

type CreateTestimonialRequest struct {
	PatientName string `json:"patient_name" binding:"required"`
	Rating      int    `json:"rating" binding:"required,min=1,max=5"`
	Treatment   string `json:"treatment"`
	Quote       string `json:"quote" binding:"required"`
}
