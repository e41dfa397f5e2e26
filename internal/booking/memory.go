package booking

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// memoryRepository is an in-memory Repository used in tests and when the
// server runs without a database, mirroring the mocked backend the site
// launched with.
type memoryRepository struct {
	mu       sync.RWMutex
	bookings map[string]*Booking
}

func NewMemoryRepository() Repository {
	return &memoryRepository{bookings: make(map[string]*Booking)}
}

func slotKey(date time.Time, timeSlot string) string {
	return date.Format("2006-01-02") + "|" + timeSlot
}

func (r *memoryRepository) Create(ctx context.Context, b *Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := slotKey(b.Date, b.TimeSlot)
	for _, existing := range r.bookings {
		if existing.Status != StatusCancelled && slotKey(existing.Date, existing.TimeSlot) == key {
			return ErrSlotTaken
		}
	}

	now := time.Now().UTC()
	b.ID = uuid.NewString()
	b.CreatedAt = now
	b.UpdatedAt = now

	cp := *b
	r.bookings[b.ID] = &cp
	return nil
}

func (r *memoryRepository) GetByID(ctx context.Context, id string) (*Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.bookings[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *b
	return &cp, nil
}

func (r *memoryRepository) GetByConfirmation(ctx context.Context, number string) (*Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, b := range r.bookings {
		if b.ConfirmationNumber == number {
			cp := *b
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memoryRepository) List(ctx context.Context, filter Filter) ([]*Booking, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []*Booking
	for _, b := range r.bookings {
		if filter.ServiceID != "" && b.ServiceID != filter.ServiceID {
			continue
		}
		if filter.Status != "" && string(b.Status) != filter.Status {
			continue
		}
		if filter.DateFrom != nil && b.Date.Before(*filter.DateFrom) {
			continue
		}
		if filter.DateTo != nil && b.Date.After(*filter.DateTo) {
			continue
		}
		cp := *b
		matched = append(matched, &cp)
	}

	sortBookings(matched, filter.SortBy, filter.SortOrder)

	total := len(matched)
	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize < 1 {
		pageSize = 20
	}

	start := (page - 1) * pageSize
	if start >= total {
		return nil, total, nil
	}
	end := start + pageSize
	if end > total {
		end = total
	}
	return matched[start:end], total, nil
}

func (r *memoryRepository) UpdateStatus(ctx context.Context, id string, status Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.bookings[id]
	if !ok {
		return ErrNotFound
	}
	b.Status = status
	b.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *memoryRepository) SlotTaken(ctx context.Context, date time.Time, timeSlot string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	key := slotKey(date, timeSlot)
	for _, b := range r.bookings {
		if b.Status != StatusCancelled && slotKey(b.Date, b.TimeSlot) == key {
			return true, nil
		}
	}
	return false, nil
}
