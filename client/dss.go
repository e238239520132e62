// Package client implements the DSS public API boundary. Every method maps to
// a single REST call; failures carry the backend's own message as a
// types.PlatformError.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/pkg/errors"

	"dss-mcp/types"
)

const userAgent = "dss-mcp"

// dssClient implements types.Client over the DSS public REST API
type dssClient struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

// do performs one request against the backend. The API key is sent as the
// basic auth username, matching the DSS public API convention.
func (c *dssClient) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "failed to serialize request body")
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return errors.Wrap(err, "failed to create request")
	}
	req.Header.Set("User-Agent", userAgent)
	req.SetBasicAuth(c.apiKey, "")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return errors.Wrapf(err, "failed to call DSS backend (%s %s)", method, path)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return platformError(resp)
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrapf(err, "failed to decode DSS response (%s %s)", method, path)
	}

	return nil
}

// platformError converts an error response into a PlatformError, preserving
// the backend message verbatim
func platformError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))

	message := strings.TrimSpace(string(raw))

	var payload struct {
		Message string `json:"message"`
	}
	if json.Unmarshal(raw, &payload) == nil && payload.Message != "" {
		message = payload.Message
	}

	if message == "" {
		message = resp.Status
	}

	return &types.PlatformError{StatusCode: resp.StatusCode, Message: message}
}
