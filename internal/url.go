package internal

import (
	"net/url"
	"strings"

	"github.com/goware/urlx"
)

// BackendURL normalizes the configured DSS backend address into the base URL
// of its public API. Accepts bare host:port values and fixes up the scheme
// and path so callers can append endpoint paths directly.
func BackendURL(urlString string) (*url.URL, error) {

	parsedURL, err := urlx.Parse(urlString)
	if err != nil {
		return nil, err
	}

	if parsedURL.Scheme == "" {
		parsedURL.Scheme = "http"
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		parsedURL.Scheme = "http"
	}

	// Remove trailing slash if any
	parsedURL.Path = strings.TrimSuffix(parsedURL.Path, "/")

	// All public API endpoints live under /public/api
	expectedSuffix := "/public/api"
	if !strings.HasSuffix(parsedURL.Path, expectedSuffix) {
		parsedURL.Path += expectedSuffix
	}

	return parsedURL, nil
}
