package cli

import "github.com/urfave/cli/v2"

// Common flags used across commands
var (
	// Server configuration flags
	PortFlag = &cli.IntFlag{
		Name:    "port",
		Aliases: []string{"p"},
		EnvVars: []string{"PORT"},
		Usage:   "Port to run the server on (http mode only)",
		Value:   8000,
	}

	ServerTypeFlag = &cli.StringFlag{
		Name:    "server-type",
		Aliases: []string{"t"},
		EnvVars: []string{"SERVER_TYPE"},
		Usage:   "Server type: http,stdio",
		Value:   "stdio",
	}

	// DSS connection flags
	BackendURLFlag = &cli.StringFlag{
		Name:     "backend-url",
		EnvVars:  []string{"DSS_BACKEND_URL"},
		Usage:    "Base URL of the DSS backend, e.g. https://dss.example.com:11200 (required)",
		Required: true,
	}

	APIKeyFlag = &cli.StringFlag{
		Name:    "api-key",
		EnvVars: []string{"DSS_API_KEY"},
		Usage:   "Static DSS API key. Required in stdio mode; in http mode callers supply their own key via the Authorization header.",
	}

	InsecureTLSFlag = &cli.BoolFlag{
		Name:    "insecure-tls",
		EnvVars: []string{"DSS_INSECURE_TLS"},
		Usage:   "Skip TLS certificate verification when talking to the backend (self-signed certs)",
	}

	// Audit log flags
	DBDirFlag = &cli.StringFlag{
		Name:    "db-dir",
		EnvVars: []string{"DB_DIR"},
		Usage:   "Directory containing DB files for the invocation audit log",
		Value:   "./.state/",
	}

	AuditDisabledFlag = &cli.BoolFlag{
		Name:    "no-audit",
		EnvVars: []string{"NO_AUDIT"},
		Usage:   "Disable the invocation audit log entirely",
	}
)

// FlagSet contains predefined flag collections for different command types
type FlagSet struct {
	flags []cli.Flag
}

// NewFlagSet creates a new flag set
func NewFlagSet(flags ...cli.Flag) *FlagSet {
	return &FlagSet{flags: flags}
}

// Add appends additional flags to the set
func (fs *FlagSet) Add(flags ...cli.Flag) *FlagSet {
	fs.flags = append(fs.flags, flags...)
	return fs
}

// Flags returns the flag slice for use with cli.App
func (fs *FlagSet) Flags() []cli.Flag {
	return fs.flags
}

// ServerFlags is the flag collection of the server command
func ServerFlags() []cli.Flag {
	return NewFlagSet(
		PortFlag,
		ServerTypeFlag,
		BackendURLFlag,
		APIKeyFlag,
		InsecureTLSFlag,
		DBDirFlag,
		AuditDisabledFlag,
	).Flags()
}
