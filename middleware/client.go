// Package middleware exposes the gate over a loopback fiber server.
package middleware

import (
	"github.com/LerianStudio/lib-commons/commons/log"
	"github.com/LerianStudio/license-gate/gate"
	"github.com/LerianStudio/license-gate/model"
)

// LicenseClient wraps a gate Client with fiber handlers.
type LicenseClient struct {
	gate      *gate.Client
	validator *requestValidator
}

// NewLicenseClient creates the gate from cfg and wraps it.
// It returns nil when the gate cannot be built.
func NewLicenseClient(cfg model.Config, logger *log.Logger, opts ...gate.Option) *LicenseClient {
	g, err := gate.New(cfg, logger, opts...)
	if err != nil {
		return nil
	}

	return Wrap(g)
}

// Wrap exposes an existing gate Client.
func Wrap(g *gate.Client) *LicenseClient {
	return &LicenseClient{gate: g, validator: newRequestValidator()}
}

// Gate returns the wrapped client.
func (c *LicenseClient) Gate() *gate.Client {
	if c == nil {
		return nil
	}

	return c.gate
}

// GetLogger returns the logger used by the gate
func (c *LicenseClient) GetLogger() log.Logger {
	return c.gate.GetLogger()
}
