package web

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/leftweet/nextgamesnippet/internal/logger"
)

// Server represents the web server
type Server struct {
	server *http.Server
}

// NewRouter builds the route table
func NewRouter(svc Service) *mux.Router {
	handler := NewHandler(svc)

	router := mux.NewRouter()
	router.Use(RecoveryMiddleware)
	router.Use(LoggingMiddleware)

	router.HandleFunc("/", handler.Index).Methods(http.MethodGet)
	router.HandleFunc("/", handler.Lookup).Methods(http.MethodPost)
	router.HandleFunc("/healthz", handler.HealthCheck).Methods(http.MethodGet)
	router.HandleFunc("/debug/metrics", handler.Metrics).Methods(http.MethodGet)

	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/teams", handler.Teams).Methods(http.MethodGet)
	api.HandleFunc("/next-game", handler.NextGame).Methods(http.MethodGet)
	api.HandleFunc("/next-game.ics", handler.NextGameICS).Methods(http.MethodGet)

	return router
}

// NewServer creates a server listening on addr
func NewServer(addr string, svc Service) *Server {
	return &Server{
		server: &http.Server{
			Addr:              addr,
			Handler:           NewRouter(svc),
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

// Start serves until Shutdown is called
func (s *Server) Start() error {
	logger.Info("Listening", logger.Fields{"addr": s.server.Addr})
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
