package router

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/dishlet/backend/config"
	"github.com/dishlet/backend/internal/api"
	"github.com/dishlet/backend/internal/middleware"
	"github.com/dishlet/backend/internal/service"
)

// Handlers bundles everything the router wires up.
type Handlers struct {
	Auth         *api.AuthHandler
	Generate     *api.GenerateHandler
	Recipe       *api.RecipeHandler
	Profile      *api.ProfileHandler
	Notification *api.NotificationHandler
	AuthService  service.IAuthService
}

// SetupRouter configures the application routes
func SetupRouter(cfg *config.Config, h Handlers) *gin.Engine {
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	h.Auth.RegisterRoutes(v1)

	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(h.AuthService))
	{
		h.Generate.RegisterRoutes(protected)
		h.Recipe.RegisterRoutes(protected)
		h.Profile.RegisterRoutes(protected)
	}

	h.Notification.RegisterRoutes(v1, protected)

	return router
}
