// Package server serves generated mazes over HTTP.
package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Router manages the HTTP server and its controllers.
type Router struct {
	addr        string
	controllers []Controller
	log         logrus.FieldLogger
}

// Config holds configuration settings for creating a new Router instance.
type Config struct {
	Addr        string // Address to listen on
	Controllers []Controller
	Logger      logrus.FieldLogger
}

// NewRouter creates a new Router instance with the given configuration.
func NewRouter(config Config) *Router {
	log := config.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Router{
		addr:        config.Addr,
		controllers: config.Controllers,
		log:         log,
	}
}

// Handler builds the gin engine with every route registered.
func (r *Router) Handler() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(r.log))

	router.GET("/healthz", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	for _, c := range r.controllers {
		c.Register(&router.RouterGroup)
	}
	return router
}

// Run starts the HTTP server and blocks until it fails.
func (r *Router) Run() error {
	return r.Handler().Run(r.addr)
}

// requestLogger logs one line per request through logrus
func requestLogger(log logrus.FieldLogger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()
		log.WithFields(logrus.Fields{
			"method":   ctx.Request.Method,
			"path":     ctx.Request.URL.Path,
			"status":   ctx.Writer.Status(),
			"duration": time.Since(start),
		}).Info("request")
	}
}
