package http

import "github.com/lumadent/clinic-booking-backend/internal/catalog"

type ServiceResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Duration    string `json:"duration"`
	Price       string `json:"price"`
	Slug        string `json:"slug"`
}

func NewServiceResponse(s *catalog.Service) ServiceResponse {
	return ServiceResponse{
		ID:          s.ID,
		Name:        s.Name,
		Title:       s.Title,
		Description: s.Description,
		Category:    string(s.Category),
		Duration:    s.Duration,
		Price:       s.Price,
		Slug:        s.Slug,
	}
}

// ListServicesRequest defines query parameters for the services page.
type ListServicesRequest struct {
	Category string `form:"category"`
}
