package middleware

import (
	cn "github.com/LerianStudio/license-gate/constant"
	"github.com/LerianStudio/license-gate/pkg"
	pkgHTTP "github.com/LerianStudio/license-gate/pkg/net/http"
	"github.com/gofiber/fiber/v2"
)

// RequireLicense lets the request through only when a cached, unexpired
// credential exists. It never contacts the license source.
func (c *LicenseClient) RequireLicense() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		if c == nil || c.gate == nil {
			return pkgHTTP.WithError(ctx, pkg.ValidateBusinessError(cn.ErrLicenseRequired, "license"))
		}

		if !c.gate.IsLicensed(ctx.UserContext()) {
			c.GetLogger().Warnf("Rejected %s %s: no valid cached license", ctx.Method(), ctx.Path())
			return pkgHTTP.WithError(ctx, pkg.ValidateBusinessError(cn.ErrLicenseRequired, "license"))
		}

		return ctx.Next()
	}
}

// RequireJSON rejects state-changing requests not sent as application/json.
func (c *LicenseClient) RequireJSON() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		switch ctx.Method() {
		case fiber.MethodGet, fiber.MethodHead, fiber.MethodOptions:
			return ctx.Next()
		}

		if !ctx.Is("json") {
			return pkgHTTP.WithError(ctx, pkg.ValidateBusinessError(cn.ErrJSONContentTypeRequired, "request"))
		}

		return ctx.Next()
	}
}
