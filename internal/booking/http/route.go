package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, adminMiddleware gin.HandlerFunc) {
	group := g.Group("/bookings")

	// === Authenticated Routes ===
	group.Use(authMiddleware)
	{
		group.GET("", h.ListMine)
		group.GET("/all", adminMiddleware, h.ListAll)
		group.POST("", h.Create)
		group.DELETE("/:id", h.Cancel)
	}
}
