// Package process launches external programs on behalf of the scaffolder.
package process

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/tacogips/sitekit/internal/debug"
)

// Command describes a program invocation.
type Command struct {
	// Name is the program, looked up in PATH when it has no separator.
	Name string
	// Args are passed to the program.
	Args []string
	// Dir is the working directory.
	Dir string
}

// String renders the command line for messages.
func (c Command) String() string {
	s := c.Name
	for _, a := range c.Args {
		s += " " + a
	}
	return s
}

// StartDetached launches the command in its own session and returns without
// waiting for it. The child inherits stdout and stderr.
func StartDetached(c Command) (int, error) {
	path, err := exec.LookPath(c.Name)
	if err != nil {
		return 0, fmt.Errorf("failed to find %s: %w", c.Name, err)
	}

	cmd := exec.Command(path, c.Args...)
	cmd.Dir = c.Dir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.SysProcAttr = detachedAttr()

	debug.Debug("[process] Starting detached: %s (dir: %s)", c, c.Dir)
	if err := cmd.Start(); err != nil {
		return 0, fmt.Errorf("failed to start %s: %w", c, err)
	}

	pid := cmd.Process.Pid
	if err := cmd.Process.Release(); err != nil {
		return pid, fmt.Errorf("failed to release %s: %w", c, err)
	}

	debug.Debug("[process] Started pid %d", pid)
	return pid, nil
}
