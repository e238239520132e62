package types

import (
	"net/http"

	"github.com/pkg/errors"
)

// PlatformError is a failure reported by the DSS backend. The message is
// whatever the backend sent; nothing is rewritten on the way through.
type PlatformError struct {
	StatusCode int
	Message    string
}

func (e *PlatformError) Error() string {
	return e.Message
}

// IsNotFound reports whether err is a platform rejection for a resource that
// does not exist
func IsNotFound(err error) bool {
	var pe *PlatformError
	return errors.As(err, &pe) && pe.StatusCode == http.StatusNotFound
}

// IsForbidden reports whether err is a platform authorization rejection
func IsForbidden(err error) bool {
	var pe *PlatformError
	return errors.As(err, &pe) && pe.StatusCode == http.StatusForbidden
}
