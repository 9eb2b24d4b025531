package error

import (
	"context"
	"errors"
	"fmt"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewApiError(t *testing.T) {
	err := NewApiError(503)

	assert.Equal(t, 503, err.StatusCode)
	assert.Equal(t, "Failed fetching license page: 503", err.Error())
}

func TestIsConnectionError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "dial", err: errors.New("dial tcp 127.0.0.1:1: connect: connection refused"), want: true},
		{name: "deadline", err: fmt.Errorf("fetch: %w", context.DeadlineExceeded), want: true},
		{name: "net op error", err: &net.OpError{Op: "read", Err: errors.New("boom")}, want: true},
		{name: "api error", err: NewApiError(404), want: false},
		{name: "plain", err: errors.New("something else"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsConnectionError(tt.err))
		})
	}
}

func TestIsServerError(t *testing.T) {
	assert.True(t, IsServerError(fmt.Errorf("wrapped: %w", NewApiError(502))))
	assert.False(t, IsServerError(NewApiError(404)))
	assert.False(t, IsServerError(errors.New("server error: fake")))
	assert.False(t, IsServerError(nil))
}
