package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, adminMiddleware gin.HandlerFunc) {
	// Photos live under the room they belong to.
	g.GET("/rooms/:id/photos", h.ListByRoom)
	g.POST("/rooms/:id/photos", authMiddleware, adminMiddleware, h.Upload)

	group := g.Group("/photos")

	// === Public Routes ===
	group.GET("/:id", h.ServePhoto)
	group.GET("/:id/thumbnail", h.ServeThumbnail)

	// === Admin Routes ===
	group.DELETE("/:id", authMiddleware, adminMiddleware, h.Delete)
}
