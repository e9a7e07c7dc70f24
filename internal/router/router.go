package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/slastice/backend/internal/api"
	"github.com/slastice/backend/internal/middleware"
)

// Handlers collects everything the route table needs. Image is nil when no
// object storage is configured.
type Handlers struct {
	Auth     *api.AuthHandler
	Recipe   *api.RecipeHandler
	Social   *api.SocialHandler
	Shopping *api.ShoppingHandler
	Image    *api.ImageHandler

	AuthLimiter *middleware.RateLimiter
}

// Setup configures the application routes.
func Setup(logger *zap.Logger, h Handlers) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.CORS())

	apiGroup := router.Group("/api")

	var limiter gin.HandlerFunc
	if h.AuthLimiter != nil {
		limiter = h.AuthLimiter.Middleware()
	}

	h.Auth.RegisterRoutes(apiGroup, limiter)
	h.Recipe.RegisterRoutes(apiGroup)
	h.Social.RegisterRoutes(apiGroup)
	h.Shopping.RegisterRoutes(apiGroup)
	if h.Image != nil {
		h.Image.RegisterRoutes(apiGroup)
	}

	return router
}
