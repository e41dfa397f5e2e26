package catalog

import (
	"net/http"

	"github.com/lumadent/clinic-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound        = apperror.New(http.StatusNotFound, "service not found")
	ErrInvalidCategory = apperror.New(http.StatusBadRequest, "invalid service category")
)

// Category groups services for filtering on the services page.
type Category string

const (
	CategoryGeneral      Category = "General"
	CategoryCosmetic     Category = "Cosmetic"
	CategoryRestorative  Category = "Restorative"
	CategoryOrthodontics Category = "Orthodontics"
	CategoryEmergency    Category = "Emergency"
)

// ValidCategory reports whether the given category is one the clinic offers.
func ValidCategory(c Category) bool {
	switch c {
	case CategoryGeneral, CategoryCosmetic, CategoryRestorative, CategoryOrthodontics, CategoryEmergency:
		return true
	}
	return false
}

// Service is a dental service offered by the clinic.
// Duration and Price are display strings ("60 min", "$150", "Free") rather
// than structured values; the marketing site renders them verbatim.
type Service struct {
	ID          string
	Name        string
	Title       string
	Description string
	Category    Category
	Duration    string
	Price       string
	Slug        string
}
