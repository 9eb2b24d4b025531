package model

// Strategy identifies an OS process creation mechanism.
type Strategy string

const (
	StrategySpawn              Strategy = "spawn"
	StrategyExecPathResolution Strategy = "exec-with-path-resolution"
	StrategyShellStart         Strategy = "shell-start"
	StrategyShellElevatedStart Strategy = "shell-elevated-start"
	StrategyFileManagerOpen    Strategy = "file-manager-open"
)

// LaunchAttemptResult is the outcome of a launch chain run.
type LaunchAttemptResult struct {
	OK       bool     `json:"ok"`
	Strategy Strategy `json:"strategy,omitempty"`
	PID      *int     `json:"pid,omitempty"`
	Message  string   `json:"message,omitempty"`
	Path     string   `json:"path,omitempty"`
}

// LaunchReport is what the launch command returns to the presentation layer.
type LaunchReport struct {
	OK       bool     `json:"ok"`
	Message  string   `json:"message"`
	Strategy Strategy `json:"strategy,omitempty"`
	PID      *int     `json:"pid,omitempty"`
	Path     string   `json:"path,omitempty"`
	Running  *bool    `json:"running,omitempty"`
	Note     string   `json:"note,omitempty"`
}

// TargetInfo is the diagnostic view of executable resolution.
type TargetInfo struct {
	Exe        string   `json:"exe,omitempty"`
	Exists     bool     `json:"exists"`
	Platform   string   `json:"platform"`
	Candidates []string `json:"candidates"`
}

// TargetResult is returned by the commands that change the launch target.
type TargetResult struct {
	OK      bool   `json:"ok"`
	Message string `json:"message,omitempty"`
	Path    string `json:"path,omitempty"`
}
