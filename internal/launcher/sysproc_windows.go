//go:build windows

package launcher

import "syscall"

// detachAttr starts the child in its own process group so console signals
// sent to the gate do not reach it.
func detachAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{CreationFlags: syscall.CREATE_NEW_PROCESS_GROUP}
}
