//go:build !windows

package process

import "syscall"

// KillProcessGroup kills a process and all its children by sending SIGKILL
// to the process group (negative PID). Used to reap git/pip subprocesses
// that outlive a cancelled context.
func KillProcessGroup(pid int) {
	// Best-effort cleanup; exec.CommandContext kills the direct child anyway
	_ = syscall.Kill(-pid, syscall.SIGKILL)
}
