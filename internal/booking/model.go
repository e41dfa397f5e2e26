package booking

import (
	"net/http"
	"time"

	"github.com/lumadent/clinic-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound        = apperror.New(http.StatusNotFound, "booking not found")
	ErrInvalidBooking  = apperror.New(http.StatusBadRequest, "booking details are invalid")
	ErrServiceNotFound = apperror.New(http.StatusBadRequest, "unknown service")
	ErrSlotTaken       = apperror.New(http.StatusConflict, "time slot already booked")
	ErrInvalidStatus   = apperror.New(http.StatusBadRequest, "invalid booking status")
	ErrNotCancellable  = apperror.New(http.StatusConflict, "booking can no longer be cancelled")
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// ValidStatus reports whether s is a known booking status.
func ValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Draft is the accumulating booking form the wizard builds step by step.
// It starts empty, is only partially valid until every step has passed
// validation, and is never mutated after a successful submission.
// A TimeSlot value is only meaningful for the Date it was selected under,
// so changing Date must clear TimeSlot.
type Draft struct {
	ServiceID string
	Date      time.Time // date-only; the zero value means no date selected
	TimeSlot  string    // display label, e.g. "09:00 AM"
	Name      string
	Email     string
	Phone     string
	Notes     string
}

// Booking is a confirmed appointment record, owned by this service once the
// wizard hands over a fully-valid draft.
type Booking struct {
	ID                 string
	ConfirmationNumber string
	ServiceID          string
	ServiceName        string
	Date               time.Time
	TimeSlot           string
	PatientName        string
	PatientEmail       string
	PatientPhone       string
	Notes              string
	Status             Status
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Filter defines parameters for listing bookings.
type Filter struct {
	ServiceID string
	Status    string
	DateFrom  *time.Time
	DateTo    *time.Time
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}
