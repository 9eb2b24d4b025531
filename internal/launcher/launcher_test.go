package launcher_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/LerianStudio/license-gate/internal/launcher"
	"github.com/LerianStudio/license-gate/internal/metrics"
	"github.com/LerianStudio/license-gate/model"
	"github.com/LerianStudio/license-gate/test/helper/testlogger"
	"github.com/LerianStudio/license-gate/test/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func installedApp(t *testing.T) string {
	t.Helper()

	exe := filepath.Join(t.TempDir(), "tensorhvac-pro")
	require.NoError(t, os.WriteFile(exe, []byte("#!/bin/sh\n"), 0o755))

	return exe
}

func newStrategy(ctrl *gomock.Controller, name model.Strategy) *mocks.MockStrategy {
	s := mocks.NewMockStrategy(ctrl)
	s.EXPECT().Name().Return(name).AnyTimes()

	return s
}

func TestLaunch_NoCandidateAttemptsNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	spawn := newStrategy(ctrl, model.StrategySpawn)

	l := launcher.New(launcher.Options{
		Resolver:   launcher.NewResolver(nil, "", []string{"/definitely/missing/app"}, "linux", testlogger.New()),
		Strategies: []launcher.Strategy{spawn},
		GOOS:       "linux",
		Logger:     testlogger.New(),
	})

	got := l.Launch(context.Background())

	assert.False(t, got.OK)
	assert.Equal(t, "Executable not found. Use manual path selection to set the correct path.", got.Message)
	assert.Nil(t, got.PID)
	assert.Empty(t, got.Strategy)
}

func TestLaunch_FallsBackToNextStrategy(t *testing.T) {
	ctrl := gomock.NewController(t)
	exe := installedApp(t)
	logger := testlogger.New()
	minimized := 0

	spawn := newStrategy(ctrl, model.StrategySpawn)
	alt := newStrategy(ctrl, model.StrategyExecPathResolution)
	never := newStrategy(ctrl, model.StrategyShellStart)

	gomock.InOrder(
		spawn.EXPECT().Launch(gomock.Any()).Return(0, errors.New("EACCES")),
		alt.EXPECT().Launch(gomock.Any()).DoAndReturn(func(target launcher.Target) (int, error) {
			assert.Equal(t, exe, target.Path)
			assert.Equal(t, filepath.Dir(exe), target.Dir)
			assert.Equal(t, []string{"--handshake=s3cret"}, target.Args)
			assert.Contains(t, target.Env, "TENSORHVAC_HANDSHAKE=s3cret")
			assert.Contains(t, target.Env, "THVAC_HANDSHAKE=s3cret")
			assert.Contains(t, target.Env, "PATH=/usr/bin")

			return 4242, nil
		}),
	)

	recorder := metrics.New()
	l := launcher.New(launcher.Options{
		Resolver:        launcher.NewResolver(nil, exe, nil, "windows", logger),
		Strategies:      []launcher.Strategy{spawn, alt, never},
		HandshakeSecret: "s3cret",
		GOOS:            "windows",
		Minimizer:       launcher.MinimizerFunc(func() error { minimized++; return nil }),
		Metrics:         recorder,
		Logger:          logger,
		Environ:         func() []string { return []string{"PATH=/usr/bin"} },
	})

	got := l.Launch(context.Background())

	require.True(t, got.OK)
	assert.Equal(t, model.StrategyExecPathResolution, got.Strategy)
	require.NotNil(t, got.PID)
	assert.Equal(t, 4242, *got.PID)
	assert.Equal(t, "Launched via exec-with-path-resolution", got.Message)
	assert.Equal(t, exe, got.Path)
	assert.Equal(t, 1, minimized)
	assert.True(t, logger.Contains("WARN", "spawn failed", "EACCES"))
	assert.False(t, logger.ContainsAny("s3cret"), "the handshake secret must never be logged")

	entries := logger.GetEntries()
	require.NotEmpty(t, entries)
	assert.NotEmpty(t, entries[len(entries)-1].Fields["launch_id"])
}

func TestLaunch_NoMinimizeOutsideWindows(t *testing.T) {
	ctrl := gomock.NewController(t)
	exe := installedApp(t)

	spawn := newStrategy(ctrl, model.StrategySpawn)
	spawn.EXPECT().Launch(gomock.Any()).Return(77, nil)

	l := launcher.New(launcher.Options{
		Resolver:   launcher.NewResolver(nil, exe, nil, "linux", testlogger.New()),
		Strategies: []launcher.Strategy{spawn},
		GOOS:       "linux",
		Minimizer: launcher.MinimizerFunc(func() error {
			t.Fatal("minimize must only run on windows")
			return nil
		}),
		Logger: testlogger.New(),
	})

	got := l.Launch(context.Background())
	assert.True(t, got.OK)
}

func TestLaunch_MinimizeFailureIsIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	exe := installedApp(t)

	spawn := newStrategy(ctrl, model.StrategySpawn)
	spawn.EXPECT().Launch(gomock.Any()).Return(77, nil)

	l := launcher.New(launcher.Options{
		Resolver:   launcher.NewResolver(nil, exe, nil, "windows", testlogger.New()),
		Strategies: []launcher.Strategy{spawn},
		GOOS:       "windows",
		Minimizer:  launcher.MinimizerFunc(func() error { return errors.New("no window") }),
		Logger:     testlogger.New(),
	})

	assert.True(t, l.Launch(context.Background()).OK)
}

func TestLaunch_AllStrategiesFail(t *testing.T) {
	ctrl := gomock.NewController(t)
	exe := installedApp(t)
	logger := testlogger.New()

	var strategies []launcher.Strategy
	for _, name := range []model.Strategy{
		model.StrategySpawn,
		model.StrategyExecPathResolution,
		model.StrategyShellStart,
		model.StrategyShellElevatedStart,
		model.StrategyFileManagerOpen,
	} {
		s := newStrategy(ctrl, name)
		s.EXPECT().Launch(gomock.Any()).Return(0, errors.New(string(name)+" refused"))
		strategies = append(strategies, s)
	}

	l := launcher.New(launcher.Options{
		Resolver:   launcher.NewResolver(nil, exe, nil, "windows", logger),
		Strategies: strategies,
		GOOS:       "windows",
		Logger:     logger,
	})

	got := l.Launch(context.Background())

	assert.False(t, got.OK)
	assert.Equal(t, "All launch strategies failed.", got.Message)
	assert.Nil(t, got.PID)
	assert.Equal(t, 5, logger.Count("WARN"))
	assert.True(t, logger.Contains("ERROR", "All launch strategies failed.", "file-manager-open refused"))
}
