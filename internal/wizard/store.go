package wizard

import (
	"net/http"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lumadent/clinic-booking-backend/internal/availability"
	"github.com/lumadent/clinic-booking-backend/internal/booking"
	"github.com/lumadent/clinic-booking-backend/internal/pkg/apperror"
)

var ErrSessionNotFound = apperror.New(http.StatusNotFound, "booking session not found")

// Store owns the live wizard sessions. It is constructed once in the app
// container and injected into the handlers that need it; there is no ambient
// global session state.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Wizard

	source    availability.Source
	submitter booking.Submitter
	logger    *zap.Logger
}

func NewStore(source availability.Source, submitter booking.Submitter, logger *zap.Logger) *Store {
	return &Store{
		sessions:  make(map[string]*Wizard),
		source:    source,
		submitter: submitter,
		logger:    logger,
	}
}

// Create starts a new wizard session and returns its ID.
func (s *Store) Create() (string, *Wizard) {
	id := uuid.NewString()
	w := New(s.source, s.submitter, s.logger)

	s.mu.Lock()
	s.sessions[id] = w
	s.mu.Unlock()

	return id, w
}

// Get returns the wizard for the given session ID.
func (s *Store) Get(id string) (*Wizard, error) {
	s.mu.RLock()
	w, ok := s.sessions[id]
	s.mu.RUnlock()

	if !ok {
		return nil, ErrSessionNotFound
	}
	return w, nil
}

// Delete tears a session down, e.g. after the confirmation screen is shown.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

// Len reports the number of live sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
