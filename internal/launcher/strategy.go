package launcher

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	cn "github.com/LerianStudio/license-gate/constant"
	"github.com/LerianStudio/license-gate/model"
)

// Target is what every strategy launches.
type Target struct {
	Path string
	Args []string
	Env  []string
	Dir  string
}

// Strategy is one OS process creation mechanism. Launch returns once the
// process is created and never waits for it to exit.
type Strategy interface {
	Name() model.Strategy
	Launch(t Target) (int, error)
}

// execCommand is replaced in tests.
var execCommand = exec.Command

// DefaultStrategies returns the launch chain for goos, in the order tried.
func DefaultStrategies(goos string) []Strategy {
	strategies := []Strategy{
		spawnStrategy{},
		pathResolutionStrategy{},
	}

	if goos == cn.GOOSWindows {
		strategies = append(strategies,
			shellStartStrategy{},
			shellElevatedStartStrategy{},
			fileManagerStrategy{},
		)
	}

	return strategies
}

// spawnStrategy creates the process directly.
type spawnStrategy struct{}

func (spawnStrategy) Name() model.Strategy { return model.StrategySpawn }

func (spawnStrategy) Launch(t Target) (int, error) {
	return startDetached(execCommand(t.Path, t.Args...), t)
}

// pathResolutionStrategy resolves the executable through the search path and
// starts it with the low level process API.
type pathResolutionStrategy struct{}

func (pathResolutionStrategy) Name() model.Strategy { return model.StrategyExecPathResolution }

func (pathResolutionStrategy) Launch(t Target) (int, error) {
	resolved, err := exec.LookPath(t.Path)
	if err != nil {
		return 0, fmt.Errorf("resolve %s: %w", t.Path, err)
	}

	devNull, err := os.OpenFile(os.DevNull, os.O_RDWR, 0)
	if err != nil {
		return 0, fmt.Errorf("open %s: %w", os.DevNull, err)
	}
	defer devNull.Close()

	proc, err := os.StartProcess(resolved, append([]string{resolved}, t.Args...), &os.ProcAttr{
		Dir:   t.Dir,
		Env:   t.Env,
		Files: []*os.File{devNull, devNull, devNull},
		Sys:   detachAttr(),
	})
	if err != nil {
		return 0, err
	}

	pid := proc.Pid

	go func() { _, _ = proc.Wait() }()

	return pid, nil
}

// shellStartStrategy asks the command interpreter to start the program.
type shellStartStrategy struct{}

func (shellStartStrategy) Name() model.Strategy { return model.StrategyShellStart }

func (shellStartStrategy) commandFor(t Target) (string, []string) {
	args := append([]string{"/c", "start", "", t.Path}, t.Args...)
	return "cmd", args
}

func (s shellStartStrategy) Launch(t Target) (int, error) {
	name, args := s.commandFor(t)
	return startDetached(execCommand(name, args...), t)
}

// shellElevatedStartStrategy starts the program through PowerShell Start-Process.
type shellElevatedStartStrategy struct{}

func (shellElevatedStartStrategy) Name() model.Strategy { return model.StrategyShellElevatedStart }

func (shellElevatedStartStrategy) commandFor(t Target) (string, []string) {
	script := fmt.Sprintf("Start-Process -FilePath '%s' -ArgumentList '%s'",
		psQuote(t.Path), psQuote(strings.Join(t.Args, " ")))

	return "powershell", []string{"-NoProfile", "-Command", script}
}

func (s shellElevatedStartStrategy) Launch(t Target) (int, error) {
	name, args := s.commandFor(t)
	return startDetached(execCommand(name, args...), t)
}

// fileManagerStrategy opens the executable with the file manager. The
// program receives no arguments, only the inherited environment.
type fileManagerStrategy struct{}

func (fileManagerStrategy) Name() model.Strategy { return model.StrategyFileManagerOpen }

func (fileManagerStrategy) commandFor(t Target) (string, []string) {
	return "explorer.exe", []string{t.Path}
}

func (s fileManagerStrategy) Launch(t Target) (int, error) {
	name, args := s.commandFor(t)
	return startDetached(execCommand(name, args...), t)
}

// psQuote escapes s for a single quoted PowerShell string.
func psQuote(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func startDetached(cmd *exec.Cmd, t Target) (int, error) {
	cmd.Env = t.Env
	cmd.Dir = t.Dir
	cmd.SysProcAttr = detachAttr()

	if err := cmd.Start(); err != nil {
		return 0, err
	}

	pid := cmd.Process.Pid

	// Reap the child; the launcher never waits on it.
	go func() { _ = cmd.Wait() }()

	return pid, nil
}
