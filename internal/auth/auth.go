// Package auth carries the caller's DSS API key through the request context.
// The key lives exactly as long as the invocation it belongs to; nothing here
// stores or caches credentials.
package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/pkg/errors"
)

type contextKey string

const apiKeyContextKey contextKey = "dss_api_key"

var (
	// ErrNotAuthenticated means no caller identity was present at invocation time
	ErrNotAuthenticated = errors.New("no DSS API key in the invocation context")
)

// WithAPIKey returns a context carrying the caller's API key
func WithAPIKey(ctx context.Context, apiKey string) context.Context {
	return context.WithValue(ctx, apiKeyContextKey, apiKey)
}

// APIKeyFromContext extracts the caller's API key from the context.
// Fails with ErrNotAuthenticated when the transport did not supply one.
func APIKeyFromContext(ctx context.Context) (string, error) {
	key, ok := ctx.Value(apiKeyContextKey).(string)
	if !ok || key == "" {
		return "", ErrNotAuthenticated
	}
	return key, nil
}

// HTTPContextFunc lifts the bearer token of the inbound MCP request into the
// tool invocation context. Plugged into the streamable HTTP server so every
// platform call executes with the calling user's own permissions.
func HTTPContextFunc(ctx context.Context, r *http.Request) context.Context {
	header := r.Header.Get("Authorization")

	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return ctx
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return ctx
	}

	return WithAPIKey(ctx, token)
}
