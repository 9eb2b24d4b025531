//go:build unix

package launcher

import "syscall"

// detachAttr starts the child in its own session so it outlives the gate.
func detachAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{Setsid: true}
}
