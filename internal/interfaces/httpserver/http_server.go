package httpserver

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/dropflyai/video-gateway/internal/config"
	middleware "github.com/dropflyai/video-gateway/internal/interfaces/httpserver/middlewares"
	v1 "github.com/dropflyai/video-gateway/internal/interfaces/httpserver/routes/v1"
)

type HTTPServer struct {
	engine  *gin.Engine
	logger  zerolog.Logger
	v1Route *v1.V1Route
	config  *config.Config
}

func NewHTTPServer(
	v1Route *v1.V1Route,
	logger zerolog.Logger,
	cfg *config.Config,
) *HTTPServer {
	gin.SetMode(gin.ReleaseMode)
	server := HTTPServer{
		gin.New(),
		logger,
		v1Route,
		cfg,
	}
	server.engine.Use(middleware.RequestID())
	server.engine.Use(middleware.TracingMiddleware(cfg.ServiceName))
	server.engine.Use(middleware.LoggingMiddleware(logger))
	server.engine.Use(middleware.MetricsMiddleware())
	server.engine.Use(middleware.CORSMiddleware())

	server.engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	server.engine.GET("/readyz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	root := server.engine.Group("/")
	v1Route.RegisterRouter(root)

	return &server
}

// Engine exposes the underlying router, used by route tests.
func (s *HTTPServer) Engine() *gin.Engine {
	return s.engine
}

func (s *HTTPServer) Run() error {
	if err := s.engine.Run(fmt.Sprintf(":%d", s.config.HTTPPort)); err != nil {
		return err
	}
	return nil
}
