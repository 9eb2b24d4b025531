package gate

import (
	"context"
	"errors"
	"strings"

	cn "github.com/LerianStudio/license-gate/constant"
	"github.com/LerianStudio/license-gate/internal/launcher"
	"github.com/LerianStudio/license-gate/model"
	"github.com/LerianStudio/license-gate/pkg"
)

// ErrPickCancelled is returned by a Picker when the user dismisses the dialog.
var ErrPickCancelled = errors.New("pick cancelled")

// Picker asks the user for the executable location.
type Picker interface {
	PickExecutable(ctx context.Context, candidates []string) (string, error)
}

// PickerFunc adapts a function to Picker.
type PickerFunc func(ctx context.Context, candidates []string) (string, error)

// PickExecutable implements Picker.
func (f PickerFunc) PickExecutable(ctx context.Context, candidates []string) (string, error) {
	return f(ctx, candidates)
}

// ResolveTarget reports where the application would be launched from.
func (c *Client) ResolveTarget(ctx context.Context) model.TargetInfo {
	exe := c.resolver.Resolve(ctx)

	return model.TargetInfo{
		Exe:        exe,
		Exists:     exe != "",
		Platform:   c.resolver.Platform(),
		Candidates: c.resolver.Candidates(ctx),
	}
}

// PickTarget lets the user choose the executable and saves it as the override.
func (c *Client) PickTarget(ctx context.Context, picker Picker) model.TargetResult {
	chosen, err := picker.PickExecutable(ctx, c.resolver.Candidates(ctx))
	if err != nil && !errors.Is(err, ErrPickCancelled) {
		c.logger.Warnf("Executable picker failed: %v", err)
	}

	chosen = strings.TrimSpace(chosen)
	if err != nil || chosen == "" {
		return model.TargetResult{Message: cn.MsgUserCancelled}
	}

	if !c.resolver.Exists(chosen) {
		return model.TargetResult{Message: cn.MsgSelectedFileMissing}
	}

	return c.saveOverride(ctx, chosen)
}

// SetTargetHint saves path as the executable override.
func (c *Client) SetTargetHint(ctx context.Context, path string) model.TargetResult {
	path = strings.TrimSpace(path)
	if path == "" {
		return model.TargetResult{Message: cn.MsgInvalidPath}
	}

	if !c.resolver.Exists(path) {
		return model.TargetResult{Message: cn.MsgPathDoesNotExist}
	}

	return c.saveOverride(ctx, path)
}

func (c *Client) saveOverride(ctx context.Context, path string) model.TargetResult {
	if err := c.overrides.Set(ctx, path); err != nil {
		c.logger.Errorf("Failed to save launch override: %v", err)
		return model.TargetResult{Message: cn.MsgFailedToSaveOverride}
	}

	c.logger.Infof("Launch target set to %s", path)

	return model.TargetResult{OK: true, Path: path}
}

// Launch starts the licensed application. It requires a cached, unexpired
// credential and never waits for the application to exit.
func (c *Client) Launch(ctx context.Context) model.LaunchReport {
	if !c.IsLicensed(ctx) {
		err := pkg.ValidateBusinessError(cn.ErrLicenseRequired, "license")
		c.logger.Warnf("Launch refused: %s", err.Error())

		return model.LaunchReport{Message: err.Error()}
	}

	res := c.launcher.Launch(ctx)
	if !res.OK {
		return model.LaunchReport{Message: res.Message, Path: res.Path}
	}

	report := model.LaunchReport{
		OK:       true,
		Message:  res.Message,
		Strategy: res.Strategy,
		PID:      res.PID,
		Path:     res.Path,
	}

	if c.presence != nil {
		running := c.presence.IsRunning(ctx, launcher.BaseName(res.Path))
		report.Running = &running
	}

	if c.goos == cn.GOOSWindows {
		report.Note = cn.MsgWindowsLaunchNote
	}

	return report
}
