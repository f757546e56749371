package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"discordbuttons/pkg/logger"
)

// Status is what the health endpoint reports about the bot.
type Status interface {
	Connected() bool
	CallbackCount() int
}

type healthResponse struct {
	Status    string `json:"status"`
	Connected bool   `json:"connected"`
	Callbacks int    `json:"callbacks"`
}

type Server struct {
	addr     string
	status   Status
	server   *http.Server
	listener net.Listener
}

func NewServer(addr string, status Status) *Server {
	return &Server{
		addr:   addr,
		status: status,
	}
}

func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Get("/health", s.handleHealth)
	r.Get("/", s.handleRoot)
	return r
}

// Start binds the listener synchronously and serves in the background.
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.addr, err)
	}
	s.listener = ln
	s.server = &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.InfoCF("server", "Starting health server", map[string]interface{}{
		"addr": ln.Addr().String(),
	})

	go func() {
		if err := s.server.Serve(ln); err != nil && err != http.ErrServerClosed {
			logger.ErrorCF("server", "Health server failed", map[string]interface{}{
				logger.FieldError: err.Error(),
			})
		}
	}()

	return nil
}

// Addr is the bound address, useful when the configured port is 0.
func (s *Server) Addr() string {
	if s.listener == nil {
		return s.addr
	}
	return s.listener.Addr().String()
}

func (s *Server) Stop(ctx context.Context) error {
	if s.server != nil {
		logger.InfoC("server", "Stopping health server")
		return s.server.Shutdown(ctx)
	}
	return nil
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	resp := healthResponse{Status: "ok"}
	if s.status != nil {
		resp.Connected = s.status.Connected()
		resp.Callbacks = s.status.CallbackCount()
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(resp)
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, "discordbuttons running\nTime: %s", time.Now().Format(time.RFC3339))
}
