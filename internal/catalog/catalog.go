package catalog

import "context"

// Catalog is the read-only service directory consumed by the booking flow
// and the services page. Nothing in the system mutates it.
type Catalog interface {
	GetByID(ctx context.Context, id string) (*Service, error)
	GetBySlug(ctx context.Context, slug string) (*Service, error)
	List(ctx context.Context) ([]*Service, error)
	ListByCategory(ctx context.Context, category Category) ([]*Service, error)
}

type memoryCatalog struct {
	services []*Service
	byID     map[string]*Service
	bySlug   map[string]*Service
}

// New creates a Catalog seeded with the clinic's service list.
func New() Catalog {
	c := &memoryCatalog{
		services: seedServices(),
		byID:     make(map[string]*Service),
		bySlug:   make(map[string]*Service),
	}
	for _, s := range c.services {
		c.byID[s.ID] = s
		c.bySlug[s.Slug] = s
	}
	return c
}

func (c *memoryCatalog) GetByID(ctx context.Context, id string) (*Service, error) {
	s, ok := c.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *s
	return &cp, nil
}

func (c *memoryCatalog) GetBySlug(ctx context.Context, slug string) (*Service, error) {
	s, ok := c.bySlug[slug]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *s
	return &cp, nil
}

func (c *memoryCatalog) List(ctx context.Context) ([]*Service, error) {
	out := make([]*Service, len(c.services))
	for i, s := range c.services {
		cp := *s
		out[i] = &cp
	}
	return out, nil
}

func (c *memoryCatalog) ListByCategory(ctx context.Context, category Category) ([]*Service, error) {
	if !ValidCategory(category) {
		return nil, ErrInvalidCategory
	}
	out := make([]*Service, 0, len(c.services))
	for _, s := range c.services {
		if s.Category == category {
			cp := *s
			out = append(out, &cp)
		}
	}
	return out, nil
}

// seedServices returns the clinic's current offering. The list is the single
// source of truth for service data until a CMS replaces it.
func seedServices() []*Service {
	return []*Service{
		{
			ID:          "checkup",
			Name:        "Routine Checkup",
			Title:       "Routine Checkups",
			Description: "Comprehensive exams and deep cleaning for lasting oral health.",
			Category:    CategoryGeneral,
			Duration:    "60 min",
			Price:       "$150",
			Slug:        "routine-checkups",
		},
		{
			ID:          "whitening",
			Name:        "Teeth Whitening",
			Title:       "Teeth Whitening",
			Description: "Professional whitening treatments for a brighter, more confident smile.",
			Category:    CategoryCosmetic,
			Duration:    "90 min",
			Price:       "$350",
			Slug:        "teeth-whitening",
		},
		{
			ID:          "consult",
			Name:        "New Patient Consultation",
			Title:       "New Patient Consultation",
			Description: "Comprehensive first visit to understand your dental health and goals.",
			Category:    CategoryGeneral,
			Duration:    "45 min",
			Price:       "Free",
			Slug:        "new-patient-consultation",
		},
		{
			ID:          "implants",
			Name:        "Dental Implants",
			Title:       "Dental Implants",
			Description: "Permanent, natural-looking replacements for missing teeth.",
			Category:    CategoryRestorative,
			Duration:    "2-3 hours",
			Price:       "$2,500+",
			Slug:        "dental-implants",
		},
		{
			ID:          "invisalign",
			Name:        "Invisalign",
			Title:       "Invisalign",
			Description: "Clear aligners to straighten your teeth discreetly and comfortably.",
			Category:    CategoryOrthodontics,
			Duration:    "12-18 months",
			Price:       "$3,500+",
			Slug:        "invisalign",
		},
		{
			ID:          "fillings",
			Name:        "Composite Fillings",
			Title:       "Composite Fillings",
			Description: "Tooth-colored fillings to repair cavities naturally.",
			Category:    CategoryGeneral,
			Duration:    "30-60 min",
			Price:       "$200+",
			Slug:        "composite-fillings",
		},
		{
			ID:          "emergency",
			Name:        "Emergency Visit",
			Title:       "Emergency Care",
			Description: "Immediate attention for toothaches, trauma, and urgent issues.",
			Category:    CategoryEmergency,
			Duration:    "30 min",
			Price:       "varies",
			Slug:        "emergency-care",
		},
	}
}
