// Package server hosts the HTTP transport: the MCP endpoint plus a health
// check, behind a single chi router.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type Server struct {
	httpServer *http.Server
	router     *chi.Mux
}

// New builds the HTTP server. mcpHandler serves the MCP protocol and is
// mounted under /mcp.
func New(addr string, mcpHandler http.Handler) *Server {
	server := &Server{
		router: chi.NewRouter(),
	}

	server.router.Use(middleware.RequestID)
	server.router.Use(middleware.RealIP)
	server.router.Use(middleware.Recoverer)

	server.router.Get("/health", server.healthHandler)
	server.router.Handle("/mcp", mcpHandler)
	server.router.Handle("/mcp/*", mcpHandler)

	server.httpServer = &http.Server{
		Addr:              addr,
		Handler:           server.router,
		ReadHeaderTimeout: 30 * time.Second,
	}

	return server
}

func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("OK"))
}
