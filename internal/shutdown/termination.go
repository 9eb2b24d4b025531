// Package shutdown decides what happens when a gated operation runs without a license.
package shutdown

import (
	"fmt"
	"io"
	"sync"
)

// ExitCodeDenied is the process exit code used when the gate refuses access.
const ExitCodeDenied = 3

// Handler handles a denied license check
type Handler func(reason string)

// DefaultHandler panics with a descriptive message
// so an embedding application can recover and shut down on its own terms.
func DefaultHandler(reason string) {
	panic("LICENSE REQUIRED: " + reason)
}

// ExitHandler writes reason to w and exits with ExitCodeDenied.
func ExitHandler(w io.Writer, exit func(int)) Handler {
	return func(reason string) {
		_, _ = fmt.Fprintf(w, "License required: %s\n", reason)
		exit(ExitCodeDenied)
	}
}

// Manager handles termination behavior
type Manager struct {
	handler Handler
	mu      sync.RWMutex
}

// New creates a new termination manager with the default handler
func New() *Manager {
	return &Manager{
		handler: DefaultHandler,
	}
}

// SetHandler updates the termination handler. A nil handler is ignored.
func (m *Manager) SetHandler(handler Handler) {
	if handler == nil {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.handler = handler
}

// Terminate invokes the termination handler
func (m *Manager) Terminate(reason string) {
	m.mu.RLock()
	handler := m.handler
	m.mu.RUnlock()

	handler(reason)
}
