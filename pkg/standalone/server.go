// Package standalone wires the full server together: DSS client provider,
// audit log, tool registry and the MCP transport.
package standalone

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"

	"github.com/hashicorp/go-hclog"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"dss-mcp/client"
	"dss-mcp/instructions"
	"dss-mcp/internal/auth"
	internalserver "dss-mcp/internal/server"
	"dss-mcp/registry"
	"dss-mcp/storage"
	"dss-mcp/tools"
	"dss-mcp/types"
)

const serverVersion = "1.0.0"

// Config holds configuration for the standalone server
type Config struct {
	Port          int
	ServerType    string
	BackendURL    string
	APIKey        string
	InsecureTLS   bool
	DBDir         string
	AuditDisabled bool
}

// Server bundles the MCP server with the services behind its tools
type Server struct {
	mcp      *server.MCPServer
	registry *registry.Registry
	audit    types.AuditLog
	logger   hclog.Logger
	config   *Config

	httpServer *internalserver.Server
}

// NewServer creates a fully wired server from the configuration
func NewServer(ctx context.Context, config *Config) (*Server, error) {
	if config == nil {
		return nil, fmt.Errorf("config is required")
	}

	logger := hclog.New(&hclog.LoggerOptions{
		Name: "dss-mcp",
	})

	opts := []client.Option{client.WithLogger(logger)}
	if config.APIKey != "" {
		opts = append(opts, client.WithStaticAPIKey(config.APIKey))
	}
	if config.InsecureTLS {
		opts = append(opts, client.WithInsecureTLS())
	}

	provider, err := client.NewProvider(config.BackendURL, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create client provider: %w", err)
	}

	var audit types.AuditLog
	if !config.AuditDisabled {
		dbPath := filepath.Join(config.DBDir, "audit.db")
		sqliteAudit, err := storage.NewSQLiteAuditLog(ctx, dbPath)
		if err != nil {
			return nil, fmt.Errorf("failed to create audit log: %w", err)
		}
		audit = sqliteAudit
	}

	s := &Server{
		registry: registry.New(),
		audit:    audit,
		logger:   logger,
		config:   config,
	}

	s.mcp = server.NewMCPServer(
		"dss-mcp",
		serverVersion,
		server.WithToolCapabilities(false),
		server.WithLogging(),
		server.WithInstructions(instructions.Get()),
	)

	toolHandlers := tools.New(provider, audit, logger)
	if err := toolHandlers.RegisterTools(s.registry); err != nil {
		return nil, fmt.Errorf("failed to register tools: %w", err)
	}
	s.registry.Install(s)

	return s, nil
}

// Start runs the configured transport until ctx is cancelled or the transport
// fails
func (s *Server) Start(ctx context.Context) error {
	switch s.config.ServerType {
	case "stdio":
		return s.startStdio(ctx)
	case "http":
		return s.startHTTP(ctx)
	default:
		return fmt.Errorf("unknown server type %q, expected http or stdio", s.config.ServerType)
	}
}

func (s *Server) startStdio(ctx context.Context) error {
	s.logger.Info("starting MCP stdio server")

	errChan := make(chan error, 1)
	go func() {
		errChan <- server.ServeStdio(s.mcp)
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("context cancelled, shutting down stdio server")
		return ctx.Err()
	case err := <-errChan:
		return err
	}
}

func (s *Server) startHTTP(ctx context.Context) error {
	streamable := server.NewStreamableHTTPServer(
		s.mcp,
		server.WithHTTPContextFunc(auth.HTTPContextFunc),
	)

	addr := fmt.Sprintf(":%d", s.config.Port)
	s.httpServer = internalserver.New(addr, streamable)

	s.logger.Info("starting MCP http server", "addr", addr)

	errChan := make(chan error, 1)
	go func() {
		errChan <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("context cancelled, shutting down http server")
		return ctx.Err()
	case err := <-errChan:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	}
}

// Stop gracefully shuts down the server and its services
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("stopping server")

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			s.logger.Error("error shutting down http server", "error", err)
		}
	}

	if s.audit != nil {
		if err := s.audit.Close(); err != nil {
			s.logger.Error("error closing audit log", "error", err)
		}
	}

	s.logger.Info("server stopped")
	return nil
}

// AddTool registers an MCP tool handler
func (s *Server) AddTool(tool mcp.Tool, handler types.ToolHandler) {
	s.mcp.AddTool(tool, handler)
}
