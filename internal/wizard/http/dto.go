package http

import (
	"time"

	"github.com/lumadent/clinic-booking-backend/internal/availability"
	bookingHttp "github.com/lumadent/clinic-booking-backend/internal/booking/http"
	"github.com/lumadent/clinic-booking-backend/internal/wizard"
)

const dateFormat = "2006-01-02"

type StartResponse struct {
	SessionID string `json:"session_id"`
}

// UpdateDraftRequest carries a partial draft update; absent fields are left
// untouched.
type UpdateDraftRequest struct {
	ServiceID *string `json:"service_id"`
	Date      *string `json:"date" binding:"omitempty,datetime=2006-01-02"`
	TimeSlot  *string `json:"time_slot"`
	Name      *string `json:"name"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
	Notes     *string `json:"notes"`
}

// Update converts the payload to a wizard draft update.
func (r *UpdateDraftRequest) Update() (wizard.DraftUpdate, error) {
	u := wizard.DraftUpdate{
		ServiceID: r.ServiceID,
		TimeSlot:  r.TimeSlot,
		Name:      r.Name,
		Email:     r.Email,
		Phone:     r.Phone,
		Notes:     r.Notes,
	}
	if r.Date != nil {
		t, err := time.Parse(dateFormat, *r.Date)
		if err != nil {
			return wizard.DraftUpdate{}, err
		}
		u.Date = &t
	}
	return u, nil
}

type DraftResponse struct {
	ServiceID string `json:"service_id"`
	Date      string `json:"date,omitempty"`
	TimeSlot  string `json:"time_slot"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Notes     string `json:"notes"`
}

type StateResponse struct {
	Step         int                          `json:"step"`
	TotalSteps   int                          `json:"total_steps"`
	Draft        DraftResponse                `json:"draft"`
	FieldErrors  map[string]string            `json:"field_errors"`
	Slots        availability.Grouped         `json:"slots"`
	SlotsLoading bool                         `json:"slots_loading"`
	Submitting   bool                         `json:"submitting"`
	Succeeded    bool                         `json:"succeeded"`
	SubmitError  string                       `json:"submit_error,omitempty"`
	Booking      *bookingHttp.BookingResponse `json:"booking,omitempty"`
}

func NewStateResponse(snap wizard.Snapshot) StateResponse {
	draft := DraftResponse{
		ServiceID: snap.Draft.ServiceID,
		TimeSlot:  snap.Draft.TimeSlot,
		Name:      snap.Draft.Name,
		Email:     snap.Draft.Email,
		Phone:     snap.Draft.Phone,
		Notes:     snap.Draft.Notes,
	}
	if !snap.Draft.Date.IsZero() {
		draft.Date = snap.Draft.Date.Format(dateFormat)
	}

	fieldErrors := map[string]string(snap.FieldErrors)
	if fieldErrors == nil {
		fieldErrors = map[string]string{}
	}

	resp := StateResponse{
		Step:         int(snap.Step),
		TotalSteps:   snap.TotalSteps,
		Draft:        draft,
		FieldErrors:  fieldErrors,
		Slots:        snap.Slots,
		SlotsLoading: snap.SlotsLoading,
		Submitting:   snap.Submitting,
		Succeeded:    snap.Succeeded,
		SubmitError:  snap.SubmitError,
	}
	if snap.Record != nil {
		b := bookingHttp.NewBookingResponse(snap.Record)
		resp.Booking = &b
	}
	return resp
}
