package testimonial

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// memoryRepository backs tests and database-less runs.
type memoryRepository struct {
	mu           sync.RWMutex
	testimonials map[string]*Testimonial
}

func NewMemoryRepository() Repository {
	return &memoryRepository{testimonials: make(map[string]*Testimonial)}
}

func (r *memoryRepository) Create(ctx context.Context, t *Testimonial) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	t.ID = uuid.NewString()
	t.CreatedAt = time.Now().UTC()

	cp := *t
	r.testimonials[t.ID] = &cp
	return nil
}

func (r *memoryRepository) GetByID(ctx context.Context, id string) (*Testimonial, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.testimonials[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *t
	return &cp, nil
}

func (r *memoryRepository) List(ctx context.Context, filter Filter) ([]*Testimonial, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []*Testimonial
	for _, t := range r.testimonials {
		if filter.Treatment != "" && t.Treatment != filter.Treatment {
			continue
		}
		if filter.MinRating > 0 && t.Rating < filter.MinRating {
			continue
		}
		cp := *t
		matched = append(matched, &cp)
	}

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

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
