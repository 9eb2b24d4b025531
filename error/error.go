package error

import (
	"errors"
	"fmt"
	"net"
	"strings"
)

// ApiError carries the HTTP status of a failed license page request.
type ApiError struct {
	StatusCode int
	Msg        string
}

// NewApiError builds the error returned for a non-success page response.
func NewApiError(statusCode int) *ApiError {
	return &ApiError{
		StatusCode: statusCode,
		Msg:        fmt.Sprintf("Failed fetching license page: %d", statusCode),
	}
}

func (e *ApiError) Error() string {
	return e.Msg
}

// connectionErrors are message fragments produced by the net stack when the
// license source cannot be reached.
var connectionErrors = []string{
	"connection refused",
	"no such host",
	"host unreachable",
	"i/o timeout",
	"no route to host",
	"network is unreachable",
	"operation timed out",
	"connection reset by peer",
	"dial tcp",
	"tls handshake",
	"context deadline exceeded",
}

// IsConnectionError checks if an error is likely related to network connectivity
func IsConnectionError(err error) bool {
	if err == nil {
		return false
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	errStr := strings.ToLower(err.Error())

	for _, msg := range connectionErrors {
		if strings.Contains(errStr, msg) {
			return true
		}
	}

	return false
}

// IsServerError reports whether err wraps a 5xx response from the license source.
func IsServerError(err error) bool {
	var apiErr *ApiError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode >= 500
	}

	return false
}
