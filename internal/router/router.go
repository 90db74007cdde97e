package router

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"github.com/medidesk/frontdesk-api/internal/handler"
	"github.com/medidesk/frontdesk-api/internal/middleware"
	"github.com/medidesk/frontdesk-api/pkg/metrics"
)

type Handler interface {
	RegisterRoutes(*gin.RouterGroup)
}

type Config struct {
	RateLimit   rate.Limit
	RateBurst   int
	CORSConfig  middleware.CORSConfig
	MetricsPath string
}

type Router struct {
	engine   *gin.Engine
	metrics  *metrics.Metrics
	config   Config
	handlers []Handler
}

func NewRouter(m *metrics.Metrics, config Config, handlers ...Handler) *Router {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	r := &Router{
		engine:   engine,
		metrics:  m,
		config:   config,
		handlers: handlers,
	}

	engine.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		r.metricsMiddleware(),
	)
	engine.Use(middleware.CORS(config.CORSConfig))

	if config.RateLimit > 0 {
		rateLimiter := middleware.NewRateLimiter(middleware.RateLimiterConfig{
			Rate:  config.RateLimit,
			Burst: config.RateBurst,
		})
		engine.Use(rateLimiter.RateLimit())
	}

	return r
}

func (r *Router) Setup() {
	r.engine.GET("/health", handler.Health)
	if r.config.MetricsPath != "" {
		r.engine.GET(r.config.MetricsPath, gin.WrapH(promhttp.Handler()))
	}

	api := r.engine.Group("/api/v1")
	for _, h := range r.handlers {
		h.RegisterRoutes(api)
	}
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}

func (r *Router) metricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if r.metrics == nil {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		r.metrics.RequestDuration.WithLabelValues(method, path, status).Observe(time.Since(start).Seconds())
		r.metrics.RequestTotal.WithLabelValues(method, path, status).Inc()
		if c.Writer.Status() >= 400 {
			r.metrics.ErrorTotal.WithLabelValues(method, path).Inc()
		}
	}
}
