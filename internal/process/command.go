// Package process handles external tool subprocesses (git, pip).
// It puts children in their own process group so a cancelled context can
// reap the whole tree, not just the direct child.
package process

import (
	"context"
	"os/exec"
)

// Command builds an exec.Cmd wired for group termination: the child runs in
// its own process group and context cancellation kills the full tree.
func Command(ctx context.Context, name string, args ...string) *exec.Cmd {
	cmd := exec.CommandContext(ctx, name, args...)
	configureGroup(cmd)
	cmd.Cancel = func() error {
		if cmd.Process != nil {
			KillProcessGroup(cmd.Process.Pid)
		}
		return cmd.Process.Kill()
	}
	return cmd
}
