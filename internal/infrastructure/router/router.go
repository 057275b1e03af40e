package router

import (
	"net/http"

	"tourism-service/internal/interface/handler"
	"tourism-service/pkg/logger"
	"tourism-service/pkg/metrics"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RouteRegistrar mounts a group of routes under /api
type RouteRegistrar interface {
	RegisterRoutes(api *gin.RouterGroup, protect gin.HandlerFunc)
}

// Options configures the HTTP engine
type Options struct {
	Version     string
	CORSOrigins []string
	Gatherer    prometheus.Gatherer
	Metrics     *metrics.Metrics
	Logger      logger.Logger
	Responder   *handler.Responder
}

// Router builds the gin engine from registered route groups
type Router struct {
	opts       Options
	protect    gin.HandlerFunc
	registrars []RouteRegistrar
}

// NewRouter creates a router; protect guards admin-only routes
func NewRouter(opts Options, protect gin.HandlerFunc) *Router {
	return &Router{
		opts:       opts,
		protect:    protect,
		registrars: make([]RouteRegistrar, 0),
	}
}

// Register adds a route group
func (r *Router) Register(registrar RouteRegistrar) {
	r.registrars = append(r.registrars, registrar)
}

// Engine assembles middleware and routes
func (r *Router) Engine() *gin.Engine {
	engine := gin.New()
	engine.Use(
		gin.CustomRecovery(r.opts.Responder.Recover),
		handler.RequestID(),
		handler.AccessLog(r.opts.Logger, r.opts.Metrics),
		cors.New(corsConfig(r.opts.CORSOrigins)),
	)

	engine.GET("/health", handler.Health(r.opts.Version))
	if r.opts.Gatherer != nil {
		engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(r.opts.Gatherer, promhttp.HandlerOpts{})))
	}

	api := engine.Group("/api")
	for _, registrar := range r.registrars {
		registrar.RegisterRoutes(api, r.protect)
	}
	r.opts.Logger.Info("Registered route groups", "count", len(r.registrars))

	engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, handler.Response{Message: "Route not found"})
	})

	return engine
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", handler.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", handler.RequestIDHeader},
		AllowCredentials: true,
	}

	for _, o := range origins {
		if o == "*" {
			cfg.AllowAllOrigins = true
			cfg.AllowCredentials = false
			return cfg
		}
	}
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
		cfg.AllowCredentials = false
		return cfg
	}

	cfg.AllowOrigins = origins
	return cfg
}
