package http

import (
	"github.com/gin-gonic/gin"

	"vox/internal/infrastructure/config"
	"vox/internal/infrastructure/ratelimit"
	feedbackHandler "vox/internal/interfaces/http/handlers/feedback"
	notificationHandler "vox/internal/interfaces/http/handlers/notification"
	"vox/internal/interfaces/http/middleware"
	"vox/internal/shared/logger"
)

// Router wires the gin engine, middleware and handlers.
type Router struct {
	engine              *gin.Engine
	cfg                 *config.Config
	authMiddleware      *middleware.AuthMiddleware
	rateLimiter         ratelimit.RateLimiter
	feedbackHandler     *feedbackHandler.Handler
	notificationHandler *notificationHandler.Handler
	logger              logger.Interface
}

func NewRouter(
	cfg *config.Config,
	authMiddleware *middleware.AuthMiddleware,
	rateLimiter ratelimit.RateLimiter,
	feedbackHandler *feedbackHandler.Handler,
	notificationHandler *notificationHandler.Handler,
	logger logger.Interface,
) *Router {
	return &Router{
		engine:              gin.New(),
		cfg:                 cfg,
		authMiddleware:      authMiddleware,
		rateLimiter:         rateLimiter,
		feedbackHandler:     feedbackHandler,
		notificationHandler: notificationHandler,
		logger:              logger,
	}
}

// SetupRoutes configures all HTTP routes.
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.Recovery(r.logger))
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.setupFeedbackRoutes()
	r.setupNotificationRoutes()
}

// GetEngine returns the underlying gin engine.
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
