package wizard

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/lumadent/clinic-booking-backend/internal/availability"
	"github.com/lumadent/clinic-booking-backend/internal/booking"
	"github.com/lumadent/clinic-booking-backend/internal/pkg/apperror"
)

// SubmitThrottle is the minimum wall-clock gap between accepted submit calls.
// Submits arriving inside the window are dropped silently; the window resets
// on every accepted call, even one that later fails.
const SubmitThrottle = 2 * time.Second

// Step identifies the wizard's position in the four-step booking flow.
type Step int

const (
	StepService  Step = booking.StepService
	StepDateTime Step = booking.StepDateTime
	StepDetails  Step = booking.StepDetails
	StepReview   Step = booking.StepReview
)

const (
	networkErrMessage = "We couldn't reach the booking service. Please try again."
)

// DraftUpdate carries the fields a single wizard interaction may change.
// Nil pointers leave the corresponding draft field untouched.
type DraftUpdate struct {
	ServiceID *string
	Date      *time.Time
	TimeSlot  *string
	Name      *string
	Email     *string
	Phone     *string
	Notes     *string
}

// Snapshot is the read-only view the wizard exposes to the presentation
// layer: current draft slice, field errors, busy flags, and the confirmed
// record once submission succeeds.
type Snapshot struct {
	Step         Step
	TotalSteps   int
	Draft        booking.Draft
	FieldErrors  booking.FieldErrors
	Slots        availability.Grouped
	SlotsLoading bool
	Submitting   bool
	Succeeded    bool
	SubmitError  string
	Record       *booking.Booking
}

// Wizard drives the four-step booking flow: step position, the accumulating
// draft, per-step validation gating, availability fetching for the selected
// date, and the submission lifecycle. All exported methods are safe for
// concurrent use; the wizard exclusively owns its state.
type Wizard struct {
	mu sync.Mutex

	step        Step
	draft       booking.Draft
	fieldErrors booking.FieldErrors

	slots        []availability.Slot
	slotsLoading bool
	fetchSeq     uint64

	submitting   bool
	succeeded    bool
	record       *booking.Booking
	submitError  string
	lastAccepted time.Time

	source    availability.Source
	submitter booking.Submitter
	logger    *zap.Logger

	// now and throttle are swapped out in tests to keep the rate limit
	// deterministic.
	now      func() time.Time
	throttle time.Duration
}

// New creates a wizard at step one with an empty draft.
func New(source availability.Source, submitter booking.Submitter, logger *zap.Logger) *Wizard {
	return &Wizard{
		step:        StepService,
		fieldErrors: booking.FieldErrors{},
		source:      source,
		submitter:   submitter,
		logger:      logger,
		now:         time.Now,
		throttle:    SubmitThrottle,
	}
}

// Update applies the given field changes to the draft. Changing the date
// synchronously clears the selected time slot, since a slot is only
// meaningful for the date it was chosen under, and then triggers a fresh
// availability fetch for the new date. Updating a field drops its stale
// validation error so the form recovers as the user types.
func (w *Wizard) Update(u DraftUpdate) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.succeeded || w.submitting {
		return
	}

	if u.ServiceID != nil {
		w.draft.ServiceID = *u.ServiceID
		delete(w.fieldErrors, "serviceId")
	}
	if u.Date != nil {
		w.selectDateLocked(*u.Date)
	}
	if u.TimeSlot != nil {
		w.draft.TimeSlot = *u.TimeSlot
		delete(w.fieldErrors, "timeSlot")
	}
	if u.Name != nil {
		w.draft.Name = *u.Name
		delete(w.fieldErrors, "name")
	}
	if u.Email != nil {
		w.draft.Email = *u.Email
		delete(w.fieldErrors, "email")
	}
	if u.Phone != nil {
		w.draft.Phone = *u.Phone
		delete(w.fieldErrors, "phone")
	}
	if u.Notes != nil {
		w.draft.Notes = *u.Notes
	}
}

func (w *Wizard) selectDateLocked(date time.Time) {
	w.draft.Date = date
	w.draft.TimeSlot = ""
	delete(w.fieldErrors, "date")
	delete(w.fieldErrors, "timeSlot")

	// Bump the sequence so an outstanding fetch for the previous date is
	// discarded at resolution time: last request wins.
	w.fetchSeq++
	seq := w.fetchSeq
	w.slots = nil
	w.slotsLoading = true

	go w.fetchSlots(date, seq)
}

// fetchSlots runs outside the lock. The wizard outlives the request that
// triggered the date change, so the fetch is not tied to a request context.
func (w *Wizard) fetchSlots(date time.Time, seq uint64) {
	slots, err := w.source.Fetch(context.Background(), date)
	if err != nil {
		// Degrade to an empty slot list; availability failures never crash
		// the flow or block other steps.
		w.logger.Warn("availability fetch failed",
			zap.String("date", date.Format("2006-01-02")),
			zap.Error(err),
		)
		slots = nil
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if seq != w.fetchSeq {
		return // superseded by a later date selection
	}
	w.slots = slots
	w.slotsLoading = false
}

// Next validates only the current step's fields and advances on success.
// On failure the wizard stays put with the step's field errors populated;
// errors for other steps' fields are left untouched.
func (w *Wizard) Next() bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.succeeded || w.submitting || w.step >= StepReview {
		return false
	}

	if errs := booking.ValidateStep(w.draft, int(w.step)); errs != nil {
		for field, msg := range errs {
			w.fieldErrors[field] = msg
		}
		return false
	}

	for _, field := range booking.StepFields(int(w.step)) {
		delete(w.fieldErrors, field)
	}
	w.step++
	return true
}

// Back moves to the previous step unconditionally; it is a no-op at step one,
// while submitting, and after success.
func (w *Wizard) Back() bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.succeeded || w.submitting || w.step <= StepService {
		return false
	}
	w.step--
	return true
}

// Submit sends the accumulated draft to the booking collaborator. It reports
// whether the call was accepted: duplicates while a submit is pending, calls
// inside the throttle window, calls before the review step, and calls after
// success are all dropped silently. An accepted call that fails returns the
// wizard to the review step with an error message attached and the draft
// intact, so the user may retry.
func (w *Wizard) Submit(ctx context.Context) bool {
	w.mu.Lock()

	if w.succeeded || w.submitting || w.step != StepReview {
		w.mu.Unlock()
		return false
	}

	now := w.now()
	if !w.lastAccepted.IsZero() && now.Sub(w.lastAccepted) < w.throttle {
		w.mu.Unlock()
		return false
	}
	w.lastAccepted = now
	w.submitting = true
	w.submitError = ""
	draft := w.draft

	w.mu.Unlock()

	record, err := w.submitter.Submit(ctx, draft)

	w.mu.Lock()
	defer w.mu.Unlock()

	w.submitting = false
	if err != nil {
		w.submitError = submitErrMessage(err)
		w.logger.Warn("booking submission failed", zap.Error(err))
		return true
	}

	w.succeeded = true
	w.record = record
	w.logger.Info("booking confirmed",
		zap.String("confirmation", record.ConfirmationNumber),
	)
	return true
}

// Snapshot returns a copy of the wizard's observable state.
func (w *Wizard) Snapshot() Snapshot {
	w.mu.Lock()
	defer w.mu.Unlock()

	fieldErrors := make(booking.FieldErrors, len(w.fieldErrors))
	for field, msg := range w.fieldErrors {
		fieldErrors[field] = msg
	}

	var record *booking.Booking
	if w.record != nil {
		cp := *w.record
		record = &cp
	}

	return Snapshot{
		Step:         w.step,
		TotalSteps:   booking.TotalSteps,
		Draft:        w.draft,
		FieldErrors:  fieldErrors,
		Slots:        availability.Group(w.slots),
		SlotsLoading: w.slotsLoading,
		Submitting:   w.submitting,
		Succeeded:    w.succeeded,
		SubmitError:  w.submitError,
		Record:       record,
	}
}

// submitErrMessage maps a submission failure to the message shown on the
// review step. Server-side rejections surface their own message; anything
// else reads as a connectivity problem, and the diagnostic detail stays in
// the logs.
func submitErrMessage(err error) string {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) && appErr.Code < http.StatusInternalServerError {
		return appErr.Message
	}
	return networkErrMessage
}
