package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"school-backend/internal/media"
	"school-backend/internal/schools"
	"school-backend/internal/services/health"
	"school-backend/internal/shared/config"
	"school-backend/internal/shared/metrics"
	"school-backend/internal/shared/server/middleware"
	"school-backend/internal/shared/server/respond"
)

// RouterDeps carries the handlers the router wires up.
type RouterDeps struct {
	Config  config.Config
	Health  *health.Service
	Schools *schools.Handler
	Media   *media.Handler
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
		middleware.RateLimit(rateLimits()),
	)

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, deps.Health.Status())
	})
	deps.Schools.RegisterRoutes(api)
	deps.Media.RegisterRoutes(r)

	r.GET("/metrics", metrics.Handler())

	return r
}

func rateLimits() middleware.RateLimitConfig {
	return middleware.RateLimitConfig{
		DefaultGroup: "DEFAULT",
		GroupFor: func(c *gin.Context) string {
			if c.Request.Method == http.MethodPost && c.FullPath() == "/api/v1/schools" {
				return "CREATE"
			}
			return "DEFAULT"
		},
		Rules: map[string]middleware.RateLimitRule{
			"DEFAULT": {Rate: 20, Burst: 40},
			"CREATE":  {Rate: 2, Burst: 10},
		},
	}
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
