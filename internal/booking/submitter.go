package booking

import "context"

// Submitter is the collaborator the wizard hands a finished draft to.
// It is transport-agnostic: the default implementation submits in-process,
// but the wizard never learns where the booking actually lands.
type Submitter interface {
	Submit(ctx context.Context, draft Draft) (*Booking, error)
}

type localSubmitter struct {
	service Service
}

// NewLocalSubmitter returns a Submitter backed by the in-process booking service.
func NewLocalSubmitter(service Service) Submitter {
	return &localSubmitter{service: service}
}

func (s *localSubmitter) Submit(ctx context.Context, draft Draft) (*Booking, error) {
	return s.service.Create(ctx, draft)
}
