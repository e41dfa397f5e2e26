package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler) {
	group := g.Group("/wizard")
	{
		group.POST("", h.Start)
		group.GET("/:id", h.Get)
		group.PATCH("/:id/draft", h.UpdateDraft)
		group.POST("/:id/next", h.Next)
		group.POST("/:id/back", h.Back)
		group.POST("/:id/submit", h.Submit)
		group.GET("/:id/slots", h.Slots)
		group.DELETE("/:id", h.End)
	}
}
