package gallery

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/google/uuid"

	"github.com/lumadent/clinic-booking-backend/internal/pkg/storage"
)

// Uploaded photos are normalized to fit this bounding box.
const (
	maxImageWidth  = 1600
	maxImageHeight = 1600
)

type CreateRequest struct {
	Title    string
	Category string
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Case, error)
	GetByID(ctx context.Context, id string) (*Case, error)
	List(ctx context.Context) ([]*Case, error)

	// AttachImage stores a before/after photo for the case and updates the
	// case's image path. The previous photo, if any, is removed.
	AttachImage(ctx context.Context, id string, kind ImageKind, content io.Reader) (*Case, error)

	// OpenImage returns a reader for the case's before/after photo.
	OpenImage(ctx context.Context, id string, kind ImageKind) (io.ReadCloser, error)
}

type service struct {
	repo      Repository
	store     storage.Storage
	processor *storage.ImageProcessor
}

func NewService(repo Repository, store storage.Storage, processor *storage.ImageProcessor) Service {
	return &service{
		repo:      repo,
		store:     store,
		processor: processor,
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Case, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, ErrTitleRequired
	}

	c := &Case{
		Title:    strings.TrimSpace(req.Title),
		Category: strings.TrimSpace(req.Category),
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Case, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context) ([]*Case, error) {
	return s.repo.List(ctx)
}

func (s *service) AttachImage(ctx context.Context, id string, kind ImageKind, content io.Reader) (*Case, error) {
	if kind != ImageBefore && kind != ImageAfter {
		return nil, ErrBadImageKind
	}

	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	normalized, err := s.processor.NormalizeJPEG(content, maxImageWidth, maxImageHeight)
	if err != nil {
		return nil, ErrInvalidImage
	}

	newPath := path.Join("gallery", c.ID, fmt.Sprintf("%s-%s.jpg", kind, uuid.NewString()[:8]))
	if err := s.store.Save(ctx, newPath, normalized); err != nil {
		return nil, err
	}

	oldPath := c.BeforePath
	if kind == ImageAfter {
		oldPath = c.AfterPath
	}

	if kind == ImageBefore {
		c.BeforePath = newPath
	} else {
		c.AfterPath = newPath
	}

	if err := s.repo.Update(ctx, c); err != nil {
		// Roll the stored file back so storage does not leak orphans.
		_ = s.store.Delete(ctx, newPath)
		return nil, err
	}

	if oldPath != "" {
		_ = s.store.Delete(ctx, oldPath)
	}
	return c, nil
}

func (s *service) OpenImage(ctx context.Context, id string, kind ImageKind) (io.ReadCloser, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	var imgPath string
	switch kind {
	case ImageBefore:
		imgPath = c.BeforePath
	case ImageAfter:
		imgPath = c.AfterPath
	default:
		return nil, ErrBadImageKind
	}

	if imgPath == "" {
		return nil, ErrImageMissing
	}

	rc, err := s.store.Get(ctx, imgPath)
	if err != nil {
		return nil, ErrImageMissing
	}
	return rc, nil
}
