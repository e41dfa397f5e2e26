package gallery

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, c *Case) error
	GetByID(ctx context.Context, id string) (*Case, error)
	List(ctx context.Context) ([]*Case, error)
	Update(ctx context.Context, c *Case) error
}

// memoryRepository keeps gallery cases in memory, seeded with the clinic's
// published transformations. Case metadata is small and changes rarely; the
// uploaded photos themselves live in file storage, not here.
type memoryRepository struct {
	mu    sync.RWMutex
	cases map[string]*Case
}

func NewMemoryRepository() Repository {
	r := &memoryRepository{cases: make(map[string]*Case)}
	for _, c := range seedCases() {
		r.cases[c.ID] = c
	}
	return r
}

func seedCases() []*Case {
	return []*Case{
		{
			ID:         uuid.NewString(),
			Title:      "Smile Transformation",
			Category:   "Cosmetic",
			BeforePath: "gallery/seed/before.jpeg",
			AfterPath:  "gallery/seed/after.jpeg",
			CreatedAt:  time.Now().UTC(),
		},
	}
}

func (r *memoryRepository) Create(ctx context.Context, c *Case) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	c.ID = uuid.NewString()
	c.CreatedAt = time.Now().UTC()

	cp := *c
	r.cases[c.ID] = &cp
	return nil
}

func (r *memoryRepository) GetByID(ctx context.Context, id string) (*Case, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.cases[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *memoryRepository) List(ctx context.Context) ([]*Case, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Case, 0, len(r.cases))
	for _, c := range r.cases {
		cp := *c
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (r *memoryRepository) Update(ctx context.Context, c *Case) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.cases[c.ID]; !ok {
		return ErrNotFound
	}
	cp := *c
	r.cases[c.ID] = &cp
	return nil
}
