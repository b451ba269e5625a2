//go:build windows

package process

import "os/exec"

// configureGroup is a no-op on Windows; taskkill /T follows the tree.
func configureGroup(_ *exec.Cmd) {}
