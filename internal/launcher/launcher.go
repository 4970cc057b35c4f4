// Package launcher runs a resolved editor command as a child process.
package launcher

import (
	"fmt"
	"os"
	"runtime"

	"github.com/VoxDroid/editorcmd"
)

// PlatformDefault returns the editor used when nothing is configured.
// On Windows that is notepad; on Unix it is vi.
func PlatformDefault() string {
	if runtime.GOOS == "windows" {
		return "notepad"
	}
	return "vi"
}

// Run executes the resolved command with the current process's stdin,
// stdout and stderr so terminal editors behave normally.
func Run(c editorcmd.Command) error {
	cmd := c.ExecCmd()
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("open editor: %w", err)
	}
	return nil
}

// Open resolves path with r and runs the resulting editor. A nil r uses
// the plain environment-driven resolver.
func Open(path string, r *editorcmd.Resolver) error {
	if r == nil {
		r = &editorcmd.Resolver{}
	}
	c, err := r.Resolve(path)
	if err != nil {
		return err
	}
	return Run(c)
}
