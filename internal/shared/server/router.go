package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resumecraft-backend/internal/conversations"
	"resumecraft-backend/internal/docgen"
	"resumecraft-backend/internal/profile"
	"resumecraft-backend/internal/shared/config"
	"resumecraft-backend/internal/shared/metrics"
	"resumecraft-backend/internal/shared/server/middleware"
	"resumecraft-backend/internal/shared/server/respond"
	"resumecraft-backend/internal/tailor"
	"resumecraft-backend/internal/uploads"
)

// RouterDeps carries the handlers the router wires up.
type RouterDeps struct {
	Config               config.Config
	ProfileHandler       *profile.Handler
	ConversationsHandler *conversations.Handler
	UploadsHandler       *uploads.Handler
	TailorHandler        *tailor.Handler
	DownloadHandler      *docgen.Handler
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
	)

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})

	deps.ProfileHandler.RegisterRoutes(api)
	deps.ConversationsHandler.RegisterRoutes(api)
	deps.UploadsHandler.RegisterRoutes(api)
	deps.TailorHandler.RegisterRoutes(api)
	deps.DownloadHandler.RegisterRoutes(api)

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
