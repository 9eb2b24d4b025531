// Package launcher finds the licensed application on disk and starts it,
// falling back across OS process creation mechanisms.
package launcher

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/LerianStudio/lib-commons/commons/log"
	cn "github.com/LerianStudio/license-gate/constant"
	"github.com/LerianStudio/license-gate/internal/metrics"
	"github.com/LerianStudio/license-gate/model"
	"github.com/LerianStudio/license-gate/pkg"
	"github.com/google/uuid"
)

// WindowMinimizer hides the host window after a successful launch on Windows.
type WindowMinimizer interface {
	Minimize() error
}

// MinimizerFunc adapts a function to WindowMinimizer.
type MinimizerFunc func() error

// Minimize implements WindowMinimizer.
func (f MinimizerFunc) Minimize() error { return f() }

// Options configures a Launcher.
type Options struct {
	Resolver        *Resolver
	Strategies      []Strategy
	HandshakeSecret string
	GOOS            string
	Minimizer       WindowMinimizer
	Metrics         *metrics.Recorder
	Logger          log.Logger
	// Environ returns the inherited environment. Defaults to os.Environ.
	Environ func() []string
}

// Launcher runs the strategy chain against the resolved executable.
type Launcher struct {
	resolver   *Resolver
	strategies []Strategy
	secret     string
	goos       string
	minimizer  WindowMinimizer
	metrics    *metrics.Recorder
	logger     log.Logger
	environ    func() []string
}

// New creates a Launcher. Nil strategies use DefaultStrategies for the GOOS.
func New(o Options) *Launcher {
	if o.Strategies == nil {
		o.Strategies = DefaultStrategies(o.GOOS)
	}

	if o.Environ == nil {
		o.Environ = os.Environ
	}

	return &Launcher{
		resolver:   o.Resolver,
		strategies: o.Strategies,
		secret:     o.HandshakeSecret,
		goos:       o.GOOS,
		minimizer:  o.Minimizer,
		metrics:    o.Metrics,
		logger:     o.Logger,
		environ:    o.Environ,
	}
}

// Launch starts the application with the first strategy that succeeds.
// Nothing is attempted when no candidate exists on disk.
func (l *Launcher) Launch(ctx context.Context) model.LaunchAttemptResult {
	exe := l.resolver.Resolve(ctx)
	if exe == "" {
		err := pkg.ValidateBusinessError(cn.ErrExecutableNotFound, "executable")
		l.logger.Warnf("No launch candidate found among %d paths", len(l.resolver.Candidates(ctx)))

		return model.LaunchAttemptResult{Message: err.Error()}
	}

	logger := l.logger.WithFields("launch_id", uuid.NewString(), "exe", exe)

	target := Target{
		Path: exe,
		Args: HandshakeArgs(l.secret),
		Env:  HandshakeEnv(l.environ(), l.secret),
		Dir:  filepath.Dir(exe),
	}

	var attempts []error

	for _, s := range l.strategies {
		pid, err := s.Launch(target)
		l.metrics.LaunchAttempt(string(s.Name()), err == nil)

		if err != nil {
			logger.Warnf("Launch strategy %s failed: %v", s.Name(), err)
			attempts = append(attempts, fmt.Errorf("%s: %w", s.Name(), err))

			continue
		}

		logger.Infof("Launched via %s (pid %d)", s.Name(), pid)
		l.minimize(logger)

		return model.LaunchAttemptResult{
			OK:       true,
			Strategy: s.Name(),
			PID:      &pid,
			Message:  fmt.Sprintf(cn.MsgLaunchedViaFmt, s.Name()),
			Path:     exe,
		}
	}

	exhausted := exhaustedError(attempts)
	logger.Errorf("%s %v", exhausted.Error(), errors.Join(exhausted.Attempts...))

	return model.LaunchAttemptResult{Message: exhausted.Error(), Path: exe}
}

func (l *Launcher) minimize(logger log.Logger) {
	if l.goos != cn.GOOSWindows || l.minimizer == nil {
		return
	}

	if err := l.minimizer.Minimize(); err != nil {
		logger.Debugf("Could not minimize host window: %v", err)
	}
}

func exhaustedError(attempts []error) pkg.LaunchStrategyExhaustedError {
	var exhausted pkg.LaunchStrategyExhaustedError
	_ = errors.As(pkg.ValidateBusinessError(cn.ErrLaunchStrategiesExhausted, "executable"), &exhausted)
	exhausted.Attempts = attempts

	return exhausted
}
