package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lumadent/clinic-booking-backend/internal/pkg/response"
	"github.com/lumadent/clinic-booking-backend/internal/wizard"
)

type Handler struct {
	store *wizard.Store
}

func NewHandler(store *wizard.Store) *Handler {
	return &Handler{store: store}
}

func (h *Handler) Start(c *gin.Context) {
	id, w := h.store.Create()
	c.JSON(http.StatusCreated, gin.H{
		"session_id": id,
		"state":      NewStateResponse(w.Snapshot()),
	})
}

func (h *Handler) session(c *gin.Context) (*wizard.Wizard, bool) {
	w, err := h.store.Get(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return nil, false
	}
	return w, true
}

func (h *Handler) Get(c *gin.Context) {
	w, ok := h.session(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, NewStateResponse(w.Snapshot()))
}

func (h *Handler) UpdateDraft(c *gin.Context) {
	w, ok := h.session(c)
	if !ok {
		return
	}

	var body UpdateDraftRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	update, err := body.Update()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
		return
	}

	w.Update(update)
	c.JSON(http.StatusOK, NewStateResponse(w.Snapshot()))
}

func (h *Handler) Next(c *gin.Context) {
	w, ok := h.session(c)
	if !ok {
		return
	}
	w.Next()
	c.JSON(http.StatusOK, NewStateResponse(w.Snapshot()))
}

func (h *Handler) Back(c *gin.Context) {
	w, ok := h.session(c)
	if !ok {
		return
	}
	w.Back()
	c.JSON(http.StatusOK, NewStateResponse(w.Snapshot()))
}

func (h *Handler) Submit(c *gin.Context) {
	w, ok := h.session(c)
	if !ok {
		return
	}

	// A submission runs to completion once sent; a client disconnect must not
	// abort the booking mid-flight.
	accepted := w.Submit(context.WithoutCancel(c.Request.Context()))
	c.JSON(http.StatusOK, gin.H{
		"accepted": accepted,
		"state":    NewStateResponse(w.Snapshot()),
	})
}

func (h *Handler) Slots(c *gin.Context) {
	w, ok := h.session(c)
	if !ok {
		return
	}
	snap := w.Snapshot()
	c.JSON(http.StatusOK, gin.H{
		"slots":   snap.Slots,
		"loading": snap.SlotsLoading,
	})
}

func (h *Handler) End(c *gin.Context) {
	if _, ok := h.session(c); !ok {
		return
	}
	h.store.Delete(c.Param("id"))
	c.Status(http.StatusNoContent)
}
