//go:build !windows

package process

import "syscall"

// detachedAttr starts the child in a new session so it survives the generator exiting.
func detachedAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{Setsid: true}
}
