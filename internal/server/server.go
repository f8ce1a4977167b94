// FilePath: internal/server/server.go
package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gorilla/handlers"
	nuts "github.com/vaudience/go-nuts"
	"github.com/vesselworks/shorestation/api"
	"github.com/vesselworks/shorestation/internal/config"
	"github.com/vesselworks/shorestation/internal/database"
	"github.com/vesselworks/shorestation/internal/hubservice"
	"github.com/vesselworks/shorestation/internal/monitoring"
	"github.com/vesselworks/shorestation/internal/repository/mongodb"
)

// Server represents our HTTP server
type Server struct {
	config     *config.Config
	srv        *http.Server
	db         database.DB
	hubservice *hubservice.HubService
}

// New creates a new server instance
func New(cfg *config.Config) *Server {
	return &Server{
		config: cfg,
	}
}

// Start begins listening for requests
func (s *Server) Start() error {
	// Initialize services
	s.hubservice = s.initializeHubService()

	router := api.NewRouter(s.hubservice)
	handler := handlers.RecoveryHandler()(
		handlers.CombinedLoggingHandler(os.Stdout, router),
	)

	s.srv = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", s.config.Server.Host, s.config.Server.Port),
		Handler:      handler,
		ReadTimeout:  s.config.Server.ReadTimeout,
		WriteTimeout: s.config.Server.WriteTimeout,
	}

	// Start server
	go func() {
		nuts.L.Infof("[Server] Starting server on %s", s.srv.Addr)
		if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			nuts.L.Errorf("[Server] Error starting server: %v", err)
			os.Exit(1)
		}
	}()

	return s.waitForShutdown()
}

// waitForShutdown waits for interrupt signal and gracefully shuts down the server
func (s *Server) waitForShutdown() error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	nuts.L.Infof("[Server] Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), s.config.Server.ShutdownTimeout)
	defer cancel()

	if err := s.srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("error shutting down server: %w", err)
	}

	if err := s.db.Close(ctx); err != nil {
		nuts.L.Errorf("[Server] Error closing database connection: %v", err)
	}

	nuts.L.Infof("[Server] Server shut down successfully")
	return nil
}

// initializeHubService creates and configures the hub service
func (s *Server) initializeHubService() *hubservice.HubService {
	db, err := database.New(s.config.Mongo)
	if err != nil {
		nuts.L.Fatalf("[Server] Failed to connect to MongoDB: %v", err)
	}
	s.db = db

	telemetry := mongodb.NewSnapshotRepository(db)
	if !telemetry.TestConnection(context.Background()) {
		nuts.L.Fatalf("[Server] MongoDB ping failed at startup")
	}

	svc := hubservice.New(telemetry, monitoring.NewService())
	if err := svc.Validate(); err != nil {
		nuts.L.Fatalf("[Server] Invalid hub service configuration: %v", err)
	}
	return svc
}
