package http

import (
	"fmt"
	"time"

	"github.com/lumadent/clinic-booking-backend/internal/gallery"
)

type CaseResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Category  string    `json:"category,omitempty"`
	BeforeURL string    `json:"before_url,omitempty"`
	AfterURL  string    `json:"after_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func NewCaseResponse(c *gallery.Case) CaseResponse {
	resp := CaseResponse{
		ID:        c.ID,
		Title:     c.Title,
		Category:  c.Category,
		CreatedAt: c.CreatedAt,
	}
	if c.BeforePath != "" {
		resp.BeforeURL = imageURL(c.ID, gallery.ImageBefore)
	}
	if c.AfterPath != "" {
		resp.AfterURL = imageURL(c.ID, gallery.ImageAfter)
	}
	return resp
}

func imageURL(id string, kind gallery.ImageKind) string {
	return fmt.Sprintf("/v1/gallery/%s/images/%s", id, kind)
}

type CreateCaseRequest struct {
	Title    string `json:"title" binding:"required"`
	Category string `json:"category"`
}
