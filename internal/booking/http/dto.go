package http

import (
	"time"

	"github.com/lumadent/clinic-booking-backend/internal/booking"
	"github.com/lumadent/clinic-booking-backend/internal/pkg/request"
)

// dateFormat is the calendar-date wire format used across the booking API.
const dateFormat = "2006-01-02"

// ListBookingsRequest defines query parameters for listing bookings.
type ListBookingsRequest struct {
	request.ListParams
	ServiceID string `form:"service_id"`
	Status    string `form:"status" binding:"omitempty,oneof=pending confirmed completed cancelled"`
	DateFrom  string `form:"date_from" binding:"omitempty,datetime=2006-01-02"`
	DateTo    string `form:"date_to" binding:"omitempty,datetime=2006-01-02"`
	SortBy    string `form:"sort_by" binding:"omitempty,oneof=date created_at"`
}

// Validate performs custom validation for ListBookingsRequest.
func (r *ListBookingsRequest) Validate() error {
	if r.DateFrom != "" && r.DateTo != "" && r.DateFrom > r.DateTo {
		return booking.ErrInvalidBooking
	}
	return nil
}

type BookingResponse struct {
	ID                 string    `json:"id"`
	ConfirmationNumber string    `json:"confirmation_number"`
	ServiceID          string    `json:"service_id"`
	ServiceName        string    `json:"service_name"`
	Date               string    `json:"date"`
	TimeSlot           string    `json:"time_slot"`
	PatientName        string    `json:"patient_name"`
	PatientEmail       string    `json:"patient_email"`
	PatientPhone       string    `json:"patient_phone"`
	Notes              string    `json:"notes,omitempty"`
	Status             string    `json:"status"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func NewBookingResponse(b *booking.Booking) BookingResponse {
	return BookingResponse{
		ID:                 b.ID,
		ConfirmationNumber: b.ConfirmationNumber,
		ServiceID:          b.ServiceID,
		ServiceName:        b.ServiceName,
		Date:               b.Date.Format(dateFormat),
		TimeSlot:           b.TimeSlot,
		PatientName:        b.PatientName,
		PatientEmail:       b.PatientEmail,
		PatientPhone:       b.PatientPhone,
		Notes:              b.Notes,
		Status:             string(b.Status),
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}
}

// CreateBookingRequest is the payload the wizard's submit collaborator posts.
// Field-level constraints live in the booking schema; binding only guards
// shape here so the schema can produce its field error map.
type CreateBookingRequest struct {
	ServiceID string `json:"service_id"`
	Date      string `json:"date" binding:"omitempty,datetime=2006-01-02"`
	TimeSlot  string `json:"time_slot"`
	Name      string `json:"patient_name"`
	Email     string `json:"patient_email"`
	Phone     string `json:"patient_phone"`
	Notes     string `json:"notes"`
}

// Draft converts the request payload to a booking draft.
func (r *CreateBookingRequest) Draft() booking.Draft {
	d := booking.Draft{
		ServiceID: r.ServiceID,
		TimeSlot:  r.TimeSlot,
		Name:      r.Name,
		Email:     r.Email,
		Phone:     r.Phone,
		Notes:     r.Notes,
	}
	if t, err := time.Parse(dateFormat, r.Date); err == nil {
		d.Date = t
	}
	return d
}

// CheckSlotRequest defines query parameters for the availability check.
type CheckSlotRequest struct {
	Date     string `form:"date" binding:"required,datetime=2006-01-02"`
	TimeSlot string `form:"time_slot" binding:"required"`
}

type CheckSlotResponse struct {
	Available bool `json:"available"`
}
