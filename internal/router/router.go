package router

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/diegoportaz91-dot/saludvalleuco/internal/handler"
	adminHandler "github.com/diegoportaz91-dot/saludvalleuco/internal/handler/admin"
	authHandler "github.com/diegoportaz91-dot/saludvalleuco/internal/handler/auth"
	publicHandler "github.com/diegoportaz91-dot/saludvalleuco/internal/handler/public"
	"github.com/diegoportaz91-dot/saludvalleuco/internal/middleware"
)

type RouterConfig struct {
	Environment   string
	RateLimitRPS  float64
	RateBurst     int
	MetricsPrefix string
}

type Router struct {
	engine  *gin.Engine
	auth    *middleware.AuthMiddleware
	publicH *publicHandler.Handler
	authH   *authHandler.Handler
	adminH  *adminHandler.Handler
	h       *handler.Handler
	metrics *routerMetrics
}

type routerMetrics struct {
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	errorTotal      *prometheus.CounterVec
}

func NewRouter(
	auth *middleware.AuthMiddleware,
	publicH *publicHandler.Handler,
	authH *authHandler.Handler,
	adminH *adminHandler.Handler,
	h *handler.Handler,
	config RouterConfig,
) *Router {
	if config.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	r := &Router{
		engine:  engine,
		auth:    auth,
		publicH: publicH,
		authH:   authH,
		adminH:  adminH,
		h:       h,
		metrics: initRouterMetrics(config.MetricsPrefix),
	}

	engine.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.ErrorHandler(),
		r.metricsMiddleware(),
	)

	rateLimiter := middleware.NewRateLimiter(middleware.RateLimiterConfig{
		RPS:   config.RateLimitRPS,
		Burst: config.RateBurst,
	})
	engine.Use(rateLimiter.RateLimit())

	return r
}

func (r *Router) Setup() {
	r.engine.GET("/health", r.h.HealthCheck)
	r.engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	root := r.engine.Group("")
	r.publicH.RegisterRoutes(root)
	r.authH.RegisterRoutes(root)

	admin := r.engine.Group("/admin")
	admin.Use(r.auth.RequireAdmin())
	r.adminH.RegisterRoutes(admin)
	r.authH.RegisterAdminRoutes(admin)

	r.engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, handler.NewErrorResponse("página no encontrada"))
	})
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}

func initRouterMetrics(prefix string) *routerMetrics {
	return &routerMetrics{
		requestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: prefix + "_request_duration_seconds",
				Help: "Duration of HTTP requests in seconds",
			},
			[]string{"method", "path", "status"},
		),
		requestTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		errorTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_errors_total",
				Help: "Total number of HTTP errors",
			},
			[]string{"method", "path", "type"},
		),
	}
}

func (r *Router) metricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()

		c.Next()

		status := fmt.Sprintf("%d", c.Writer.Status())
		duration := time.Since(start).Seconds()

		r.metrics.requestDuration.WithLabelValues(c.Request.Method, path, status).Observe(duration)
		r.metrics.requestTotal.WithLabelValues(c.Request.Method, path, status).Inc()

		if c.Writer.Status() >= 400 {
			r.metrics.errorTotal.WithLabelValues(c.Request.Method, path, "http").Inc()
		}
	}
}
