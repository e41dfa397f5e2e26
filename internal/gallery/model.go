package gallery

import (
	"net/http"
	"time"

	"github.com/lumadent/clinic-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound      = apperror.New(http.StatusNotFound, "gallery case not found")
	ErrTitleRequired = apperror.New(http.StatusBadRequest, "title is required")
	ErrBadImageKind  = apperror.New(http.StatusBadRequest, "image kind must be before or after")
	ErrInvalidImage  = apperror.New(http.StatusBadRequest, "file is not a valid image")
	ErrImageMissing  = apperror.New(http.StatusNotFound, "image not uploaded yet")
)

// ImageKind distinguishes the two photos of a transformation case.
type ImageKind string

const (
	ImageBefore ImageKind = "before"
	ImageAfter  ImageKind = "after"
)

// Case is one before/after transformation shown in the results gallery.
// Image paths are relative to the storage root and empty until uploaded.
type Case struct {
	ID         string
	Title      string
	Category   string
	BeforePath string
	AfterPath  string
	CreatedAt  time.Time
}
