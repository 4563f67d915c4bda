// Package integrations provides shared HTTP plumbing for registry clients.
package integrations

import (
	"errors"
	"net/http"
	"net/url"
	"time"
)

const httpTimeout = 10 * time.Second

var (
	// ErrNotFound is returned when a package or version doesn't exist in the registry.
	ErrNotFound = errors.New("resource not found")

	// ErrNetwork is returned for HTTP failures (timeouts, connection errors, 5xx responses).
	ErrNetwork = errors.New("network error")
)

// NewHTTPClient creates an HTTP client with a standard timeout for registry requests.
func NewHTTPClient() *http.Client {
	return &http.Client{Timeout: httpTimeout}
}

// EscapeName percent-encodes a package name for use as a single URL path
// segment. Scoped npm names contain a slash ("@types/node") which must be
// encoded as %2F per the registry API.
func EscapeName(name string) string { return url.PathEscape(name) }
