package auth

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/pkg/errors"
)

func TestAPIKeyFromContext(t *testing.T) {
	ctx := WithAPIKey(context.Background(), "dkuaps-key")

	key, err := APIKeyFromContext(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if key != "dkuaps-key" {
		t.Errorf("expected dkuaps-key, got %s", key)
	}

	_, err = APIKeyFromContext(context.Background())
	if !errors.Is(err, ErrNotAuthenticated) {
		t.Errorf("expected ErrNotAuthenticated, got %v", err)
	}
}

func TestHTTPContextFunc(t *testing.T) {
	tests := []struct {
		name        string
		header      string
		expectedKey string
	}{
		{
			name:        "bearer token",
			header:      "Bearer dkuaps-key",
			expectedKey: "dkuaps-key",
		},
		{
			name:        "scheme is case insensitive",
			header:      "bearer dkuaps-key",
			expectedKey: "dkuaps-key",
		},
		{
			name:   "missing header",
			header: "",
		},
		{
			name:   "wrong scheme",
			header: "Basic dXNlcjpwYXNz",
		},
		{
			name:   "empty token",
			header: "Bearer ",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest("POST", "/mcp", nil)
			if tc.header != "" {
				r.Header.Set("Authorization", tc.header)
			}

			ctx := HTTPContextFunc(context.Background(), r)

			key, err := APIKeyFromContext(ctx)
			if tc.expectedKey == "" {
				if !errors.Is(err, ErrNotAuthenticated) {
					t.Fatalf("expected ErrNotAuthenticated, got key=%q err=%v", key, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if key != tc.expectedKey {
				t.Errorf("expected %s, got %s", tc.expectedKey, key)
			}
		})
	}
}
