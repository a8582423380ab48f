package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	apisetup "reward-platform/internal/api"
	"reward-platform/internal/config"
	"reward-platform/internal/observability"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Application is the dependency graph of one service binary
type Application interface {
	// API builds the route table of the service on the given root group
	API(root *gin.RouterGroup) apisetup.API
	// Start launches background work bound to ctx
	Start(ctx context.Context)
	// Cleanup releases connections once the HTTP server has stopped
	Cleanup()
}

// Server encapsulates the HTTP server and its dependencies
type Server struct {
	name       string
	httpServer *http.Server
	router     *gin.Engine
	app        Application
	config     *config.Config
	logger     *observability.Logger
}

// New creates a new Server instance
func New(name string, cfg *config.Config, app Application, logger *observability.Logger) *Server {
	return &Server{
		name:   name,
		config: cfg,
		app:    app,
		logger: logger,
	}
}

// Setup configures the HTTP router with middleware and routes
func (s *Server) Setup() {
	s.router = gin.New()

	// Configure CORS
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowCredentials = true
	corsConfig.AllowMethods = []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", observability.RequestIDHeader}
	corsConfig.ExposeHeaders = []string{observability.RequestIDHeader, "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset", "Retry-After"}
	corsConfig.AllowOrigins = []string{s.config.Services.WebAppURI}

	// Allow localhost in non-production
	if os.Getenv("GO_ENV") != "production" {
		corsConfig.AllowOrigins = []string{"http://localhost:3000", "http://localhost:5173"}
	}

	// Apply middleware
	s.router.Use(cors.New(corsConfig))
	s.router.Use(observability.Middleware(s.logger))

	// Register routes
	api := s.app.API(s.router.Group("/"))
	api.RegisterRoutes()
}

// Handler returns the configured router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start begins listening for HTTP requests and starts background work
func (s *Server) Start(ctx context.Context) error {
	s.app.Start(ctx)

	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", s.config.Server.Port),
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Run the server in a goroutine so that it doesn't block
	go func() {
		s.logger.Info(ctx, fmt.Sprintf("%s starting on port %d", s.name, s.config.Server.Port))
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error(ctx, "server failed to start", err)
			os.Exit(1)
		}
	}()

	return nil
}

// WaitForShutdown blocks until a shutdown signal is received, then gracefully shuts down
func (s *Server) WaitForShutdown(ctx context.Context) error {
	// kill (no param) default sends syscall.SIGTERM
	// kill -2 is syscall.SIGINT
	// kill -9 is syscall.SIGKILL but can't be caught, so don't need to add it
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	s.logger.Info(ctx, "Shutting down server...")
	return s.Shutdown(ctx)
}

// Shutdown gives in-flight requests 5 seconds to finish, then releases dependencies
func (s *Server) Shutdown(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server forced to shutdown: %w", err)
		}
	}

	s.app.Cleanup()

	s.logger.Info(ctx, "Server exited gracefully")
	return nil
}
