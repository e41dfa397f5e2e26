package testimonial

import (
	"net/http"
	"time"

	"github.com/lumadent/clinic-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound         = apperror.New(http.StatusNotFound, "testimonial not found")
	ErrNameRequired     = apperror.New(http.StatusBadRequest, "name is required")
	ErrQuoteRequired    = apperror.New(http.StatusBadRequest, "review text is required")
	ErrInvalidRating    = apperror.New(http.StatusBadRequest, "rating must be between 1 and 5")
	ErrQuoteTooLong     = apperror.New(http.StatusBadRequest, "review text is too long")
	ErrUnknownTreatment = apperror.New(http.StatusBadRequest, "unknown treatment")
)

// MaxQuoteLength bounds review text; anything longer is rejected rather
// than truncated.
const MaxQuoteLength = 1000

// Testimonial is a patient review displayed on the testimonials page.
type Testimonial struct {
	ID          string
	PatientName string
	Rating      int    // 1..5
	Treatment   string // catalog service ID the review refers to, may be empty
	Quote       string
	CreatedAt   time.Time
}

// Filter defines parameters for listing testimonials.
type Filter struct {
	Treatment string
	MinRating int
	Page      int
	PageSize  int
}
