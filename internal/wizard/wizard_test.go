package wizard

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/lumadent/clinic-booking-backend/internal/availability"
	"github.com/lumadent/clinic-booking-backend/internal/booking"
	"github.com/lumadent/clinic-booking-backend/internal/pkg/apperror"
)

var (
	tuesday  = time.Date(2026, 2, 3, 0, 0, 0, 0, time.UTC)
	saturday = time.Date(2026, 2, 7, 0, 0, 0, 0, time.UTC)
)

func ptr[T any](v T) *T { return &v }

// sourceFunc adapts a function to availability.Source for tests that do not
// care about fetch timing.
type sourceFunc func(ctx context.Context, date time.Time) ([]availability.Slot, error)

func (f sourceFunc) Fetch(ctx context.Context, date time.Time) ([]availability.Slot, error) {
	return f(ctx, date)
}

func instantSource() availability.Source {
	return sourceFunc(func(_ context.Context, date time.Time) ([]availability.Slot, error) {
		return availability.Resolve(date), nil
	})
}

// manualSource parks every Fetch call until the test releases it, so fetch
// resolution order is under test control.
type manualSource struct {
	calls chan *fetchCall
}

type fetchCall struct {
	date    time.Time
	release chan struct{}
	err     error
}

func newManualSource() *manualSource {
	return &manualSource{calls: make(chan *fetchCall, 8)}
}

func (s *manualSource) Fetch(ctx context.Context, date time.Time) ([]availability.Slot, error) {
	c := &fetchCall{date: date, release: make(chan struct{})}
	s.calls <- c

	select {
	case <-c.release:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	if c.err != nil {
		return nil, c.err
	}
	return availability.Resolve(c.date), nil
}

func (s *manualSource) next(t *testing.T) *fetchCall {
	t.Helper()
	select {
	case c := <-s.calls:
		return c
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for an availability fetch")
		return nil
	}
}

type fakeSubmitter struct {
	mu    sync.Mutex
	calls int
	err   error
	block chan struct{}
}

func (s *fakeSubmitter) Submit(_ context.Context, draft booking.Draft) (*booking.Booking, error) {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()

	if s.block != nil {
		<-s.block
	}
	if s.err != nil {
		return nil, s.err
	}
	return &booking.Booking{
		ID:                 "b-1",
		ConfirmationNumber: "BK-TEST0001",
		ServiceID:          draft.ServiceID,
		Date:               draft.Date,
		TimeSlot:           draft.TimeSlot,
		PatientName:        draft.Name,
		Status:             booking.StatusPending,
	}, nil
}

func (s *fakeSubmitter) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

// fakeClock is safe to advance while the wizard reads it from another goroutine.
type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

func newTestWizard(source availability.Source, submitter booking.Submitter) (*Wizard, *fakeClock) {
	w := New(source, submitter, zap.NewNop())
	clk := newFakeClock()
	w.now = clk.Now
	return w, clk
}

// toReview drives the wizard through the first three steps with a valid draft.
func toReview(t *testing.T, w *Wizard) {
	t.Helper()

	w.Update(DraftUpdate{ServiceID: ptr("checkup")})
	require.True(t, w.Next())

	w.Update(DraftUpdate{Date: &tuesday})
	w.Update(DraftUpdate{TimeSlot: ptr("10:00 AM")})
	require.True(t, w.Next())

	w.Update(DraftUpdate{
		Name:  ptr("John Doe"),
		Email: ptr("john@example.com"),
		Phone: ptr("+15551234567"),
	})
	require.True(t, w.Next())

	require.Equal(t, StepReview, w.Snapshot().Step)
}

func TestNewWizardStartsAtStepOne(t *testing.T) {
	w, _ := newTestWizard(instantSource(), &fakeSubmitter{})

	snap := w.Snapshot()
	require.Equal(t, StepService, snap.Step)
	require.Equal(t, 4, snap.TotalSteps)
	require.Empty(t, snap.FieldErrors)
	require.False(t, snap.SlotsLoading)
}

func TestNextBlocksOnInvalidStep(t *testing.T) {
	w, _ := newTestWizard(instantSource(), &fakeSubmitter{})

	require.False(t, w.Next())
	snap := w.Snapshot()
	require.Equal(t, StepService, snap.Step)
	require.Equal(t, "Please select a service", snap.FieldErrors["serviceId"])

	w.Update(DraftUpdate{ServiceID: ptr("checkup")})
	require.True(t, w.Next())

	snap = w.Snapshot()
	require.Equal(t, StepDateTime, snap.Step)
	require.Empty(t, snap.FieldErrors)
}

func TestNextKeepsOtherStepsErrors(t *testing.T) {
	w, _ := newTestWizard(instantSource(), &fakeSubmitter{})

	w.Update(DraftUpdate{ServiceID: ptr("checkup")})
	require.True(t, w.Next())

	// Fail step two, then walk back: step one's pass must not have cleared
	// or touched step two's fresh errors.
	require.False(t, w.Next())
	snap := w.Snapshot()
	require.Equal(t, "Please select a date", snap.FieldErrors["date"])
	require.Equal(t, "Please select a time", snap.FieldErrors["timeSlot"])

	require.True(t, w.Back())
	require.True(t, w.Next())
	snap = w.Snapshot()
	require.Equal(t, "Please select a date", snap.FieldErrors["date"])
}

func TestUpdateClearsFieldError(t *testing.T) {
	w, _ := newTestWizard(instantSource(), &fakeSubmitter{})

	require.False(t, w.Next())
	require.NotEmpty(t, w.Snapshot().FieldErrors["serviceId"])

	w.Update(DraftUpdate{ServiceID: ptr("whitening")})
	require.Empty(t, w.Snapshot().FieldErrors["serviceId"])
}

func TestBackBoundaries(t *testing.T) {
	w, _ := newTestWizard(instantSource(), &fakeSubmitter{})

	require.False(t, w.Back())

	w.Update(DraftUpdate{ServiceID: ptr("checkup")})
	require.True(t, w.Next())
	require.True(t, w.Back())
	require.Equal(t, StepService, w.Snapshot().Step)
}

func TestDateChangeClearsTimeSlot(t *testing.T) {
	src := newManualSource()
	w, _ := newTestWizard(src, &fakeSubmitter{})

	w.Update(DraftUpdate{Date: &tuesday})
	first := src.next(t)
	first.release <- struct{}{}

	require.Eventually(t, func() bool {
		return !w.Snapshot().SlotsLoading
	}, 2*time.Second, 5*time.Millisecond)

	w.Update(DraftUpdate{TimeSlot: ptr("10:00 AM")})
	require.Equal(t, "10:00 AM", w.Snapshot().Draft.TimeSlot)

	// Picking a new date clears the slot immediately, before the new fetch
	// resolves.
	w.Update(DraftUpdate{Date: &saturday})
	snap := w.Snapshot()
	require.Empty(t, snap.Draft.TimeSlot)
	require.True(t, snap.SlotsLoading)
	require.Empty(t, snap.Slots.Morning)
	require.Empty(t, snap.Slots.Afternoon)

	second := src.next(t)
	second.release <- struct{}{}
}

func TestLastDateSelectionWins(t *testing.T) {
	src := newManualSource()
	w, _ := newTestWizard(src, &fakeSubmitter{})

	w.Update(DraftUpdate{Date: &tuesday})
	first := src.next(t)

	w.Update(DraftUpdate{Date: &saturday})
	second := src.next(t)

	// Resolve the newer fetch first. Saturday carries the reduced four-slot
	// morning schedule.
	second.release <- struct{}{}
	require.Eventually(t, func() bool {
		return !w.Snapshot().SlotsLoading
	}, 2*time.Second, 5*time.Millisecond)

	snap := w.Snapshot()
	require.Len(t, snap.Slots.Morning, 3)
	require.Len(t, snap.Slots.Afternoon, 1)

	// The stale fetch resolving afterwards must be discarded.
	first.release <- struct{}{}
	require.Never(t, func() bool {
		s := w.Snapshot()
		return len(s.Slots.Morning)+len(s.Slots.Afternoon) != 4
	}, 200*time.Millisecond, 10*time.Millisecond)
}

func TestFetchFailureDegradesToEmpty(t *testing.T) {
	src := newManualSource()
	w, _ := newTestWizard(src, &fakeSubmitter{})

	w.Update(DraftUpdate{Date: &tuesday})
	call := src.next(t)
	call.err = errors.New("upstream unavailable")
	call.release <- struct{}{}

	require.Eventually(t, func() bool {
		return !w.Snapshot().SlotsLoading
	}, 2*time.Second, 5*time.Millisecond)

	snap := w.Snapshot()
	require.Empty(t, snap.Slots.Morning)
	require.Empty(t, snap.Slots.Afternoon)
}

func TestSubmitOnlyFromReview(t *testing.T) {
	sub := &fakeSubmitter{}
	w, _ := newTestWizard(instantSource(), sub)

	require.False(t, w.Submit(context.Background()))
	require.Zero(t, sub.callCount())
}

func TestSubmitSuccessIsTerminal(t *testing.T) {
	sub := &fakeSubmitter{}
	w, _ := newTestWizard(instantSource(), sub)
	toReview(t, w)

	require.True(t, w.Submit(context.Background()))

	snap := w.Snapshot()
	require.True(t, snap.Succeeded)
	require.False(t, snap.Submitting)
	require.NotNil(t, snap.Record)
	require.Equal(t, "BK-TEST0001", snap.Record.ConfirmationNumber)

	// Nothing moves a succeeded wizard.
	require.False(t, w.Next())
	require.False(t, w.Back())
	require.False(t, w.Submit(context.Background()))
	w.Update(DraftUpdate{Name: ptr("Someone Else")})
	require.Equal(t, "John Doe", w.Snapshot().Draft.Name)
	require.Equal(t, 1, sub.callCount())
}

func TestSubmitFailureAllowsRetry(t *testing.T) {
	sub := &fakeSubmitter{err: apperror.New(http.StatusConflict, "That time slot was just taken")}
	w, clk := newTestWizard(instantSource(), sub)
	toReview(t, w)

	require.True(t, w.Submit(context.Background()))

	snap := w.Snapshot()
	require.False(t, snap.Succeeded)
	require.Equal(t, StepReview, snap.Step)
	require.Equal(t, "That time slot was just taken", snap.SubmitError)
	require.Equal(t, "John Doe", snap.Draft.Name)

	// Retry works once the throttle window has passed.
	sub.mu.Lock()
	sub.err = nil
	sub.mu.Unlock()
	clk.Advance(SubmitThrottle)

	require.True(t, w.Submit(context.Background()))
	require.True(t, w.Snapshot().Succeeded)
}

func TestSubmitUnexpectedErrorReadsAsNetworkFailure(t *testing.T) {
	sub := &fakeSubmitter{err: errors.New("connection refused")}
	w, _ := newTestWizard(instantSource(), sub)
	toReview(t, w)

	require.True(t, w.Submit(context.Background()))
	require.Equal(t, networkErrMessage, w.Snapshot().SubmitError)
}

func TestSubmitThrottleWindow(t *testing.T) {
	sub := &fakeSubmitter{err: apperror.New(http.StatusConflict, "That time slot was just taken")}
	w, clk := newTestWizard(instantSource(), sub)
	toReview(t, w)

	require.True(t, w.Submit(context.Background()))
	require.Equal(t, 1, sub.callCount())

	// Inside the window every attempt is dropped without reaching the
	// submitter.
	clk.Advance(500 * time.Millisecond)
	require.False(t, w.Submit(context.Background()))
	clk.Advance(1400 * time.Millisecond)
	require.False(t, w.Submit(context.Background()))
	require.Equal(t, 1, sub.callCount())

	clk.Advance(100 * time.Millisecond)
	require.True(t, w.Submit(context.Background()))
	require.Equal(t, 2, sub.callCount())
}

func TestSubmitDuplicateWhilePending(t *testing.T) {
	sub := &fakeSubmitter{block: make(chan struct{})}
	w, clk := newTestWizard(instantSource(), sub)
	toReview(t, w)

	done := make(chan bool, 1)
	go func() {
		done <- w.Submit(context.Background())
	}()

	require.Eventually(t, func() bool {
		return w.Snapshot().Submitting
	}, 2*time.Second, 5*time.Millisecond)

	// Even past the throttle window, a submit is refused while one is in
	// flight.
	clk.Advance(SubmitThrottle + time.Second)
	require.False(t, w.Submit(context.Background()))

	close(sub.block)
	require.True(t, <-done)
	require.Equal(t, 1, sub.callCount())
	require.True(t, w.Snapshot().Succeeded)
}
