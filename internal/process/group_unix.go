//go:build !windows

package process

import (
	"os/exec"
	"syscall"
)

// configureGroup starts the child in a fresh process group so the group
// kill in Command's Cancel hook cannot touch our own group.
func configureGroup(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
}
