package launcher_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/LerianStudio/license-gate/internal/launcher"
	"github.com/LerianStudio/license-gate/test/helper/testlogger"
	"github.com/LerianStudio/license-gate/test/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const tasklistOutput = `"System Idle Process","0","Services","0","8 K"
"explorer.exe","4120","Console","1","98,304 K"
"TensorHVAC Pro.exe","7312","Console","1","412,880 K"
`

func TestTasklistChecker(t *testing.T) {
	tests := []struct {
		name   string
		output string
		err    error
		query  string
		want   bool
	}{
		{name: "running", output: tasklistOutput, query: "TensorHVAC Pro.exe", want: true},
		{name: "case insensitive", output: tasklistOutput, query: "tensorhvac pro.EXE", want: true},
		{name: "not running", output: tasklistOutput, query: "other.exe", want: false},
		{name: "partial name", output: tasklistOutput, query: "TensorHVAC", want: false},
		{name: "empty output", output: "", query: "TensorHVAC Pro.exe", want: false},
		{name: "info line", output: "INFO: No tasks are running which match the specified criteria.\r\n", query: "TensorHVAC Pro.exe", want: false},
		{name: "command failure", err: errors.New("exit status 1"), query: "TensorHVAC Pro.exe", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			runner := mocks.NewMockCommandRunner(ctrl)
			runner.EXPECT().
				Output(gomock.Any(), "tasklist", "/FO", "CSV", "/NH").
				Return([]byte(tt.output), tt.err)

			checker := launcher.NewTasklistChecker(runner, testlogger.New())
			assert.Equal(t, tt.want, checker.IsRunning(context.Background(), tt.query))
		})
	}
}

func TestTasklistChecker_EmptyNameSkipsQuery(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockCommandRunner(ctrl)

	assert.False(t, launcher.NewTasklistChecker(runner, testlogger.New()).IsRunning(context.Background(), ""))
}

func TestNewPresenceChecker(t *testing.T) {
	assert.IsType(t, &launcher.TasklistChecker{}, launcher.NewPresenceChecker("windows", nil, testlogger.New()))
	assert.IsType(t, &launcher.ProcessTableChecker{}, launcher.NewPresenceChecker("linux", nil, testlogger.New()))
}

func TestProcessTableChecker(t *testing.T) {
	self, err := os.Executable()
	require.NoError(t, err)

	checker := launcher.NewPresenceChecker("linux", nil, testlogger.New())

	assert.True(t, checker.IsRunning(context.Background(), filepath.Base(self)))
	assert.False(t, checker.IsRunning(context.Background(), "license-gate-no-such-process-42"))
	assert.False(t, checker.IsRunning(context.Background(), ""))
}
