package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lumadent/clinic-booking-backend/internal/catalog"
	"github.com/lumadent/clinic-booking-backend/internal/pkg/response"
)

type Handler struct {
	catalog catalog.Catalog
}

func NewHandler(cat catalog.Catalog) *Handler {
	return &Handler{catalog: cat}
}

func (h *Handler) List(c *gin.Context) {
	var req ListServicesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters"})
		return
	}

	var (
		services []*catalog.Service
		err      error
	)
	if req.Category != "" {
		services, err = h.catalog.ListByCategory(c.Request.Context(), catalog.Category(req.Category))
	} else {
		services, err = h.catalog.List(c.Request.Context())
	}
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]ServiceResponse, len(services))
	for i, s := range services {
		items[i] = NewServiceResponse(s)
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (h *Handler) Get(c *gin.Context) {
	s, err := h.catalog.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		// The services page links by slug; fall back so both work.
		s, err = h.catalog.GetBySlug(c.Request.Context(), c.Param("id"))
	}
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, NewServiceResponse(s))
}
