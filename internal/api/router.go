package api

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/campusbook/room-booking-backend/internal/auth"
	"github.com/campusbook/room-booking-backend/internal/booking"
	bookingHttp "github.com/campusbook/room-booking-backend/internal/booking/http"
	"github.com/campusbook/room-booking-backend/internal/photo"
	photoHttp "github.com/campusbook/room-booking-backend/internal/photo/http"
	"github.com/campusbook/room-booking-backend/internal/room"
	roomHttp "github.com/campusbook/room-booking-backend/internal/room/http"
	"github.com/campusbook/room-booking-backend/internal/user"
)

// Config holds the services and settings the router needs.
type Config struct {
	IsProduction   bool
	ProdOrigins    string
	UserService    user.Service
	RoomService    room.Service
	BookingService booking.Service
	PhotoService   photo.Service
	JWTManager     *auth.JWTManager
}

// NewRouter initializes the HTTP router engine.
// It assembles middleware (CORS, Logger, Auth) and registers routes for each module.
func NewRouter(cfg Config) *gin.Engine {
	r := gin.New()

	// Global Middleware:
	// - Logger: Logs request information to the console.
	// - Recovery: Captures panics to prevent server crashes and returns a 500 error.
	r.Use(gin.Logger(), gin.Recovery())

	// Configure CORS (Cross-Origin Resource Sharing).
	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction && cfg.ProdOrigins != "" {
		corsConfig.AllowOrigins = strings.Split(cfg.ProdOrigins, ",")
	} else {
		corsConfig.AllowOrigins = []string{"http://localhost:3000"}
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	// authMiddleware: Validates if the request contains a valid JWT.
	authMiddleware := auth.AuthRequired(cfg.JWTManager)
	// adminMiddleware: Further checks if the authenticated user is an admin.
	adminMiddleware := RequireAdmin(cfg.UserService)

	// Initialize HTTP Handlers for each module (injecting Service dependencies).
	authHandler := NewAuthHandler(cfg.UserService, cfg.JWTManager)
	roomHandler := roomHttp.NewHandler(cfg.RoomService)
	bookingHandler := bookingHttp.NewHandler(cfg.BookingService, cfg.UserService)
	photoHandler := photoHttp.NewHandler(cfg.PhotoService)

	// Register API routes under /v1
	v1 := r.Group("/v1")
	{
		v1.POST("/auth/register", authHandler.Register)
		v1.POST("/auth/login", authHandler.Login)
		v1.GET("/me", authMiddleware, authHandler.Me)

		roomHttp.RegisterRoutes(v1, roomHandler, authMiddleware, adminMiddleware)
		bookingHttp.RegisterRoutes(v1, bookingHandler, authMiddleware, adminMiddleware)
		photoHttp.RegisterRoutes(v1, photoHandler, authMiddleware, adminMiddleware)
	}

	return r
}
