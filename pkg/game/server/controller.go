package server

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"darkmaze/pkg/game/devtools"
	"darkmaze/pkg/game/generator"
)

// IDHeader carries the request id on text and html responses
const IDHeader = "X-Maze-Id"

// DefaultMaxDimension bounds the width and height a request may ask for
const DefaultMaxDimension = 256

// Controller registers a group of routes
type Controller interface {
	Register(*gin.RouterGroup)
}

// MazeServer handles HTTP requests that generate mazes.
type MazeServer struct {
	defaults     generator.Config
	maxDimension int
	log          logrus.FieldLogger
}

// Option customises a MazeServer
type Option func(*MazeServer)

// WithMaxDimension sets the largest width or height a request may ask for.
// Values below generator.MinDimension are ignored.
func WithMaxDimension(n int) Option {
	return func(c *MazeServer) {
		if n >= generator.MinDimension {
			c.maxDimension = n
		}
	}
}

// NewMazeServer creates a MazeServer that fills absent query parameters from defaults.
func NewMazeServer(defaults generator.Config, log logrus.FieldLogger, opts ...Option) *MazeServer {
	c := &MazeServer{
		defaults:     defaults,
		maxDimension: DefaultMaxDimension,
		log:          log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// checkSize rejects grids larger than the server allows
func (c *MazeServer) checkSize(cfg generator.Config) error {
	if cfg.Width > c.maxDimension {
		return &generator.ConfigError{Field: "width", Value: cfg.Width, Reason: fmt.Sprintf("must be at most %d", c.maxDimension)}
	}
	if cfg.Height > c.maxDimension {
		return &generator.ConfigError{Field: "height", Value: cfg.Height, Reason: fmt.Sprintf("must be at most %d", c.maxDimension)}
	}
	return nil
}

// Register registers the maze routes.
func (c *MazeServer) Register(route *gin.RouterGroup) {
	maze := route.Group("/maze")
	{
		maze.GET("", c.getMaze)
		maze.GET("/text", c.getMazeText)
		maze.GET("/html", c.getMazeHTML)
	}
}

// generate builds a maze from the request query. On failure it writes the
// error response and returns nil.
func (c *MazeServer) generate(ctx *gin.Context, id uuid.UUID) *generator.Maze {
	var query MazeQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil
	}

	cfg := query.apply(c.defaults)
	if err := c.checkSize(cfg); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil
	}

	log := c.log.WithField("id", id)
	gen, err := generator.New(cfg, generator.WithLogger(log))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil
	}

	m, err := gen.Generate()
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, generator.ErrInvalidConfig) {
			status = http.StatusBadRequest
		}
		log.WithError(err).Error("maze generation failed")
		ctx.JSON(status, gin.H{"error": err.Error()})
		return nil
	}
	return m
}

// getMaze responds with the maze as JSON.
func (c *MazeServer) getMaze(ctx *gin.Context) {
	id := uuid.New()
	m := c.generate(ctx, id)
	if m == nil {
		return
	}
	ctx.JSON(http.StatusOK, newMazeResponse(id, m))
}

// getMazeText responds with the devtools map dump.
func (c *MazeServer) getMazeText(ctx *gin.Context) {
	id := uuid.New()
	m := c.generate(ctx, id)
	if m == nil {
		return
	}

	var buf bytes.Buffer
	if err := devtools.WriteMapDump(&buf, m); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.Header(IDHeader, id.String())
	ctx.Data(http.StatusOK, "text/plain; charset=utf-8", buf.Bytes())
}

// getMazeHTML responds with the maze as a standalone HTML page.
func (c *MazeServer) getMazeHTML(ctx *gin.Context) {
	id := uuid.New()
	m := c.generate(ctx, id)
	if m == nil {
		return
	}

	var buf bytes.Buffer
	if err := devtools.WriteMazeHTML(&buf, m); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.Header(IDHeader, id.String())
	ctx.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}
