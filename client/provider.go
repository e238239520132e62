package client

import (
	"context"
	"crypto/tls"
	"net/http"

	"github.com/hashicorp/go-hclog"

	"dss-mcp/internal"
	"dss-mcp/internal/auth"
	"dss-mcp/types"
)

// Provider hands out per-invocation DSS clients bound to the calling user's
// API key. The underlying HTTP transport is shared; the key is not.
type Provider struct {
	httpClient *http.Client
	baseURL    string
	staticKey  string
	logger     hclog.Logger
}

// Option configures a Provider
type Option func(*Provider)

// WithStaticAPIKey sets a fallback key used when the invocation context
// carries no caller identity. Intended for stdio mode, where there is no HTTP
// boundary to impersonate through.
func WithStaticAPIKey(key string) Option {
	return func(p *Provider) {
		p.staticKey = key
	}
}

// WithInsecureTLS skips certificate verification, for backends running with
// self-signed certificates
func WithInsecureTLS() Option {
	return func(p *Provider) {
		p.httpClient.Transport = &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		}
	}
}

// WithLogger sets the provider logger
func WithLogger(logger hclog.Logger) Option {
	return func(p *Provider) {
		p.logger = logger
	}
}

// NewProvider creates a client provider for the given backend address
func NewProvider(backendURL string, opts ...Option) (*Provider, error) {
	parsed, err := internal.BackendURL(backendURL)
	if err != nil {
		return nil, err
	}

	p := &Provider{
		httpClient: &http.Client{},
		baseURL:    parsed.String(),
		logger:     hclog.NewNullLogger(),
	}

	for _, opt := range opts {
		opt(p)
	}

	return p, nil
}

// Impersonated returns a client authenticated as the current caller. Fails
// with auth.ErrNotAuthenticated when the context carries no API key and no
// static fallback is configured.
func (p *Provider) Impersonated(ctx context.Context) (types.Client, error) {
	key, err := auth.APIKeyFromContext(ctx)
	if err != nil {
		if p.staticKey == "" {
			return nil, err
		}
		p.logger.Debug("no caller identity in context, using static API key")
		key = p.staticKey
	}

	return &dssClient{
		client:  p.httpClient,
		baseURL: p.baseURL,
		apiKey:  key,
	}, nil
}
