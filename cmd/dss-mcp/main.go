package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"

	cliflags "dss-mcp/internal/cli"
	"dss-mcp/pkg/standalone"
)

func main() {
	app := &cli.App{
		Name:        "dss-mcp",
		Usage:       "MCP server for Dataiku DSS",
		Description: "Exposes the operations of a Dataiku DSS instance as MCP tools, over stdio or streamable HTTP",
		Flags:       cliflags.ServerFlags(),
		Action: func(c *cli.Context) error {
			config := &standalone.Config{
				Port:          c.Int(cliflags.PortFlag.Name),
				ServerType:    c.String(cliflags.ServerTypeFlag.Name),
				BackendURL:    c.String(cliflags.BackendURLFlag.Name),
				APIKey:        c.String(cliflags.APIKeyFlag.Name),
				InsecureTLS:   c.Bool(cliflags.InsecureTLSFlag.Name),
				DBDir:         c.String(cliflags.DBDirFlag.Name),
				AuditDisabled: c.Bool(cliflags.AuditDisabledFlag.Name),
			}

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			server, err := standalone.NewServer(ctx, config)
			if err != nil {
				return fmt.Errorf("failed to create server: %w", err)
			}

			errChan := make(chan error, 1)
			go func() {
				if err := server.Start(ctx); err != nil {
					errChan <- err
				}
			}()

			var serverErr error
			select {
			case <-ctx.Done():
				log.Println("Received signal, shutting down...")
			case serverErr = <-errChan:
				log.Println("Server error, shutting down...")
				stop()
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			server.Stop(shutdownCtx)

			return serverErr
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatalf("Failed to run application: %v", err)
	}
}
