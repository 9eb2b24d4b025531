package middleware

import (
	"context"

	cn "github.com/LerianStudio/license-gate/constant"
	"github.com/LerianStudio/license-gate/model"
	"github.com/LerianStudio/license-gate/pkg"
	pkgHTTP "github.com/LerianStudio/license-gate/pkg/net/http"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// NewServer builds the command server app. Launcher routes are gated.
func (c *LicenseClient) NewServer() *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		AppName:               cn.AppDirName,
	})

	app.Use(recover.New())

	app.Get("/health", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{"status": "ok"})
	})
	app.Get("/metrics", adaptor.HTTPHandler(c.gate.Metrics().Handler()))

	v1 := app.Group(cn.RoutePrefix, c.RequireJSON())

	v1.Post("/license/validate", c.validateLicense)
	v1.Get("/license/status", c.licenseStatus)
	v1.Delete("/license", c.logout)
	v1.Post("/license/revalidate", c.revalidate)

	target := v1.Group("/launcher", c.RequireLicense())
	target.Get("/target", c.resolveTarget)
	target.Put("/target", c.setTarget)
	target.Post("/launch", c.launch)

	return app
}

// Serve listens on the configured loopback address until ctx is done.
func (c *LicenseClient) Serve(ctx context.Context) error {
	app := c.NewServer()
	addr := c.gate.ServerAddr()

	go func() {
		<-ctx.Done()

		if err := app.Shutdown(); err != nil {
			c.GetLogger().Errorf("Command server shutdown failed: %v", err)
		}
	}()

	c.GetLogger().Infof("Command server listening on %s", addr)

	return app.Listen(addr)
}

func (c *LicenseClient) validateLicense(ctx *fiber.Ctx) error {
	var req ValidateRequest
	if err := ctx.BodyParser(&req); err != nil {
		return pkgHTTP.WithError(ctx, pkg.ValidateBusinessError(cn.ErrInvalidRequestBody, "license"))
	}

	if msg := c.validator.check(req); msg != "" {
		return ctx.JSON(model.Validation{Message: msg})
	}

	return ctx.JSON(c.gate.Validate(ctx.UserContext(), req.Email, req.ProductKey))
}

func (c *LicenseClient) licenseStatus(ctx *fiber.Ctx) error {
	return ctx.JSON(c.gate.CachedStatus(ctx.UserContext()))
}

func (c *LicenseClient) logout(ctx *fiber.Ctx) error {
	return ctx.JSON(c.gate.Logout(ctx.UserContext()))
}

func (c *LicenseClient) revalidate(ctx *fiber.Ctx) error {
	return ctx.JSON(c.gate.RevalidateNow(ctx.UserContext()))
}

func (c *LicenseClient) resolveTarget(ctx *fiber.Ctx) error {
	return ctx.JSON(c.gate.ResolveTarget(ctx.UserContext()))
}

func (c *LicenseClient) setTarget(ctx *fiber.Ctx) error {
	var req TargetRequest
	if err := ctx.BodyParser(&req); err != nil {
		return pkgHTTP.WithError(ctx, pkg.ValidateBusinessError(cn.ErrInvalidRequestBody, "launcher"))
	}

	if msg := c.validator.check(req); msg != "" {
		return ctx.JSON(model.TargetResult{Message: msg})
	}

	return ctx.JSON(c.gate.SetTargetHint(ctx.UserContext(), req.Path))
}

func (c *LicenseClient) launch(ctx *fiber.Ctx) error {
	return ctx.JSON(c.gate.Launch(ctx.UserContext()))
}
