package testimonial

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/lumadent/clinic-booking-backend/internal/catalog"
)

type CreateRequest struct {
	PatientName string
	Rating      int
	Treatment   string
	Quote       string
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Testimonial, error)
	GetByID(ctx context.Context, id string) (*Testimonial, error)
	List(ctx context.Context, filter Filter) ([]*Testimonial, int, error)
}

type service struct {
	repo    Repository
	catalog catalog.Catalog
}

func NewService(repo Repository, cat catalog.Catalog) Service {
	return &service{repo: repo, catalog: cat}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Testimonial, error) {
	if strings.TrimSpace(req.PatientName) == "" {
		return nil, ErrNameRequired
	}
	if strings.TrimSpace(req.Quote) == "" {
		return nil, ErrQuoteRequired
	}
	if utf8.RuneCountInString(req.Quote) > MaxQuoteLength {
		return nil, ErrQuoteTooLong
	}
	if req.Rating < 1 || req.Rating > 5 {
		return nil, ErrInvalidRating
	}

	// A review may reference the treatment it is about; if it does, the
	// treatment has to exist in the catalog.
	if req.Treatment != "" {
		if _, err := s.catalog.GetByID(ctx, req.Treatment); err != nil {
			if errors.Is(err, catalog.ErrNotFound) {
				return nil, ErrUnknownTreatment
			}
			return nil, err
		}
	}

	t := &Testimonial{
		PatientName: strings.TrimSpace(req.PatientName),
		Rating:      req.Rating,
		Treatment:   req.Treatment,
		Quote:       strings.TrimSpace(req.Quote),
	}

	if err := s.repo.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Testimonial, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Testimonial, int, error) {
	return s.repo.List(ctx, filter)
}
