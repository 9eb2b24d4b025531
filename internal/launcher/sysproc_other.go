//go:build !unix && !windows

package launcher

import "syscall"

func detachAttr() *syscall.SysProcAttr {
	return nil
}
