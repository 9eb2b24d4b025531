package constant

import "time"

// TimeConstants defines timeout values
const (
	// DefaultHTTPTimeout is the default timeout for fetching the license page
	DefaultHTTPTimeout = 10 * time.Second
	// DefaultBreakerFailures is the number of consecutive fetch failures that opens the breaker
	DefaultBreakerFailures = 3
	// DefaultBreakerTimeout is how long the breaker stays open before probing again
	DefaultBreakerTimeout = 30 * time.Second
	// BreakerName identifies the license source breaker in logs
	BreakerName = "license-source"
)

// Command server constants
const (
	// DefaultServerAddr keeps the command server on loopback
	DefaultServerAddr = "127.0.0.1:4780"
	// RoutePrefix is the version prefix for every command route
	RoutePrefix = "/v1"
)
