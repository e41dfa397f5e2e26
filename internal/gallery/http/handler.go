package http

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lumadent/clinic-booking-backend/internal/gallery"
	"github.com/lumadent/clinic-booking-backend/internal/pkg/response"
)

// maxUploadBytes caps gallery photo uploads at 10 MiB.
const maxUploadBytes = 10 << 20

type Handler struct {
	service gallery.Service
}

func NewHandler(service gallery.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) List(c *gin.Context) {
	cases, err := h.service.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list gallery cases"})
		return
	}

	items := make([]CaseResponse, len(cases))
	for i, gc := range cases {
		items[i] = NewCaseResponse(gc)
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (h *Handler) Get(c *gin.Context) {
	gc, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, NewCaseResponse(gc))
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateCaseRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	gc, err := h.service.Create(c.Request.Context(), gallery.CreateRequest{
		Title:    body.Title,
		Category: body.Category,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, NewCaseResponse(gc))
}

func (h *Handler) UploadImage(c *gin.Context) {
	kind := gallery.ImageKind(c.Param("kind"))

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	if fileHeader.Size > maxUploadBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "file too large"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read file"})
		return
	}
	defer file.Close()

	gc, err := h.service.AttachImage(c.Request.Context(), c.Param("id"), kind, file)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, NewCaseResponse(gc))
}

func (h *Handler) ServeImage(c *gin.Context) {
	kind := gallery.ImageKind(c.Param("kind"))

	rc, err := h.service.OpenImage(c.Request.Context(), c.Param("id"), kind)
	if err != nil {
		response.Error(c, err)
		return
	}
	defer rc.Close()

	c.Header("Content-Type", "image/jpeg")
	c.Status(http.StatusOK)
	_, _ = io.Copy(c.Writer, rc)
}
