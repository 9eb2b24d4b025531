package mocks

import (
	"bytes"
	"io"
	"net/http"
)

// RoundTripFunc allows us to easily mock HTTP responses
type RoundTripFunc func(req *http.Request) (*http.Response, error)

// RoundTrip implements the http.RoundTripper interface
func (f RoundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

// NewHTTPClientMock creates a new HTTP client with a mock transport
func NewHTTPClientMock(fn RoundTripFunc) *http.Client {
	return &http.Client{
		Transport: fn,
	}
}

// NewHTTPResponse creates a new HTTP response with specified status code and body
func NewHTTPResponse(statusCode int, body []byte) *http.Response {
	return &http.Response{
		StatusCode: statusCode,
		Body:       io.NopCloser(bytes.NewReader(body)),
		Header:     make(http.Header),
	}
}

// HTTPClientErrorMock returns a client whose every request fails with err
func HTTPClientErrorMock(err error) *http.Client {
	return NewHTTPClientMock(func(*http.Request) (*http.Response, error) {
		return nil, err
	})
}

// HTTPClientWithStatusMock returns a mock HTTP client that returns the given status code
func HTTPClientWithStatusMock(status int, body []byte) *http.Client {
	return NewHTTPClientMock(func(*http.Request) (*http.Response, error) {
		return NewHTTPResponse(status, body), nil
	})
}

type failingReader struct{ err error }

func (r failingReader) Read([]byte) (int, error) { return 0, r.err }

// HTTPClientBrokenBodyMock returns a 200 response whose body fails to read
func HTTPClientBrokenBodyMock(err error) *http.Client {
	return NewHTTPClientMock(func(*http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(failingReader{err: err}),
			Header:     make(http.Header),
		}, nil
	})
}
