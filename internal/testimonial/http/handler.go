package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lumadent/clinic-booking-backend/internal/pkg/response"
	"github.com/lumadent/clinic-booking-backend/internal/testimonial"
)

type Handler struct {
	service testimonial.Service
}

func NewHandler(service testimonial.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) List(c *gin.Context) {
	var req ListTestimonialsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	filter := testimonial.Filter{
		Treatment: req.Treatment,
		MinRating: req.MinRating,
		Page:      req.Page,
		PageSize:  req.PageSize,
	}

	testimonials, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list testimonials"})
		return
	}

	items := make([]TestimonialResponse, len(testimonials))
	for i, t := range testimonials {
		items[i] = NewTestimonialResponse(t)
	}
	c.JSON(http.StatusOK, response.NewPageResponse(items, filter.Page, filter.PageSize, total))
}

func (h *Handler) Get(c *gin.Context) {
	t, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, NewTestimonialResponse(t))
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateTestimonialRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	t, err := h.service.Create(c.Request.Context(), testimonial.CreateRequest{
		PatientName: body.PatientName,
		Rating:      body.Rating,
		Treatment:   body.Treatment,
		Quote:       body.Quote,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, NewTestimonialResponse(t))
}
