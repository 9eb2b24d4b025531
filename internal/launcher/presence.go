package launcher

import (
	"bytes"
	"context"
	"encoding/csv"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/LerianStudio/lib-commons/commons/log"
	cn "github.com/LerianStudio/license-gate/constant"
	"github.com/shirou/gopsutil/v3/process"
)

// PresenceChecker reports, best effort, whether a program is running.
// Any failure answers false.
type PresenceChecker interface {
	IsRunning(ctx context.Context, baseName string) bool
}

// CommandRunner runs a command and returns its standard output.
type CommandRunner interface {
	Output(ctx context.Context, name string, args ...string) ([]byte, error)
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct{}

// Output implements CommandRunner.
func (ExecRunner) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

// NewPresenceChecker returns the checker suited to goos.
func NewPresenceChecker(goos string, runner CommandRunner, logger log.Logger) PresenceChecker {
	if goos == cn.GOOSWindows {
		if runner == nil {
			runner = ExecRunner{}
		}

		return &TasklistChecker{runner: runner, logger: logger}
	}

	return &ProcessTableChecker{logger: logger}
}

// TasklistChecker queries the Windows task list in CSV form.
type TasklistChecker struct {
	runner CommandRunner
	logger log.Logger
}

// NewTasklistChecker creates a TasklistChecker.
func NewTasklistChecker(runner CommandRunner, logger log.Logger) *TasklistChecker {
	return &TasklistChecker{runner: runner, logger: logger}
}

// IsRunning implements PresenceChecker.
func (c *TasklistChecker) IsRunning(ctx context.Context, baseName string) bool {
	if baseName == "" {
		return false
	}

	out, err := c.runner.Output(ctx, cn.TasklistCommand, cn.TasklistArgs...)
	if err != nil {
		c.logger.Debugf("Task list query failed: %v", err)
		return false
	}

	if len(bytes.TrimSpace(out)) == 0 {
		return false
	}

	r := csv.NewReader(bytes.NewReader(out))
	r.LazyQuotes = true
	r.FieldsPerRecord = -1

	rows, err := r.ReadAll()
	if err != nil {
		c.logger.Debugf("Task list output unreadable: %v", err)
		return false
	}

	for _, row := range rows {
		if len(row) > 0 && strings.EqualFold(strings.TrimSpace(row[0]), baseName) {
			return true
		}
	}

	return false
}

// ProcessTableChecker scans the process table through gopsutil.
type ProcessTableChecker struct {
	logger log.Logger
}

// IsRunning implements PresenceChecker. Both the short process name and the
// executable base name are compared, since some systems truncate the former.
func (c *ProcessTableChecker) IsRunning(ctx context.Context, baseName string) bool {
	if baseName == "" {
		return false
	}

	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		c.logger.Debugf("Process table query failed: %v", err)
		return false
	}

	for _, p := range procs {
		if name, err := p.NameWithContext(ctx); err == nil && strings.EqualFold(name, baseName) {
			return true
		}

		if exe, err := p.ExeWithContext(ctx); err == nil && exe != "" && strings.EqualFold(filepath.Base(exe), baseName) {
			return true
		}
	}

	return false
}
