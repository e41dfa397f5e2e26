package booking

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lumadent/clinic-booking-backend/internal/availability"
	"github.com/lumadent/clinic-booking-backend/internal/catalog"
)

type Service interface {
	// Create validates the full draft and persists a confirmed-pending booking.
	// Validation failure returns ErrInvalidBooking carrying a field error map.
	Create(ctx context.Context, draft Draft) (*Booking, error)
	GetByID(ctx context.Context, id string) (*Booking, error)
	GetByConfirmation(ctx context.Context, number string) (*Booking, error)
	List(ctx context.Context, filter Filter) ([]*Booking, int, error)
	Cancel(ctx context.Context, id string) (*Booking, error)

	// CheckSlot reports whether the given slot exists in the day's schedule,
	// is open per the schedule pattern, and is not already booked.
	CheckSlot(ctx context.Context, date time.Time, timeSlot string) (bool, error)
}

type service struct {
	repo    Repository
	catalog catalog.Catalog
	logger  *zap.Logger
}

func NewService(repo Repository, cat catalog.Catalog, logger *zap.Logger) Service {
	return &service{
		repo:    repo,
		catalog: cat,
		logger:  logger,
	}
}

func (s *service) Create(ctx context.Context, draft Draft) (*Booking, error) {
	// 1. Full-schema validation; the wizard validated per step, the backend
	// re-checks everything before persisting.
	if fieldErrs := Validate(draft); fieldErrs != nil {
		return nil, ErrInvalidBooking.WithFields(fieldErrs)
	}

	// 2. Resolve the service name from the catalog.
	svc, err := s.catalog.GetByID(ctx, draft.ServiceID)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}

	// 3. Refuse slots the schedule never offers or that are already held.
	date := normalizeDate(draft.Date)
	open, err := s.CheckSlot(ctx, date, draft.TimeSlot)
	if err != nil {
		return nil, err
	}
	if !open {
		return nil, ErrSlotTaken
	}

	b := &Booking{
		ConfirmationNumber: newConfirmationNumber(),
		ServiceID:          svc.ID,
		ServiceName:        svc.Name,
		Date:               date,
		TimeSlot:           draft.TimeSlot,
		PatientName:        draft.Name,
		PatientEmail:       draft.Email,
		PatientPhone:       draft.Phone,
		Notes:              draft.Notes,
		Status:             StatusPending,
	}

	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	s.logger.Info("booking created",
		zap.String("confirmation", b.ConfirmationNumber),
		zap.String("service", b.ServiceID),
		zap.String("date", b.Date.Format("2006-01-02")),
		zap.String("slot", b.TimeSlot),
	)
	return b, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Booking, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) GetByConfirmation(ctx context.Context, number string) (*Booking, error) {
	return s.repo.GetByConfirmation(ctx, number)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Booking, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Cancel(ctx context.Context, id string) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	switch b.Status {
	case StatusCancelled:
		return b, nil // Already cancelled, nothing to do
	case StatusCompleted:
		return nil, ErrNotCancellable
	}

	if err := s.repo.UpdateStatus(ctx, id, StatusCancelled); err != nil {
		return nil, err
	}
	b.Status = StatusCancelled

	s.logger.Info("booking cancelled", zap.String("confirmation", b.ConfirmationNumber))
	return b, nil
}

func (s *service) CheckSlot(ctx context.Context, date time.Time, timeSlot string) (bool, error) {
	open := false
	for _, slot := range availability.Resolve(date) {
		if slot.Time == timeSlot {
			open = slot.Available
			break
		}
	}
	if !open {
		return false, nil
	}

	taken, err := s.repo.SlotTaken(ctx, normalizeDate(date), timeSlot)
	if err != nil {
		return false, err
	}
	return !taken, nil
}

// normalizeDate truncates a timestamp to its UTC calendar date so that two
// clients picking the same day in different zones contend for the same slots.
func normalizeDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// newConfirmationNumber generates a short human-readable reference,
// e.g. "BK-3F2A9C1D".
func newConfirmationNumber() string {
	id := uuid.NewString()
	return "BK-" + strings.ToUpper(strings.ReplaceAll(id, "-", "")[:8])
}
