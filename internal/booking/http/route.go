package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler) {
	group := g.Group("/bookings")
	{
		group.GET("", h.List)
		group.GET("/availability", h.CheckSlot)
		group.GET("/:id", h.Get)
		group.POST("", h.Create)
		group.PATCH("/:id/cancel", h.Cancel)
	}
}
