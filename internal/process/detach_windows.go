//go:build windows

package process

import "syscall"

// createNewConsole is CREATE_NEW_CONSOLE from the Windows API.
const createNewConsole = 0x00000010

// detachedAttr gives the child its own console window.
func detachedAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{CreationFlags: createNewConsole}
}
