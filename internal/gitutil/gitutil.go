// Package gitutil fetches the artwork repository.
//
// It shells out to git rather than using a pure-Go implementation: the
// artwork repo is hundreds of megabytes of history, so a shallow
// single-branch clone is the only sane way to get at the current logo set.
package gitutil

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/snona-tech/one-cloud-native-a-day/internal/process"
)

// Sentinel errors for git operations.
var (
	ErrGitNotFound = errors.New("git binary not found")
	ErrCloneFailed = errors.New("git clone failed")
	ErrEmptyRepo   = errors.New("repository URL cannot be empty")
)

// Cloner clones repositories with a configurable git binary.
type Cloner struct {
	// Git is the binary to invoke. Defaults to "git".
	Git string

	// Progress receives git's stderr stream when set (verbose mode).
	Progress io.Writer
}

// NewCloner returns a Cloner using the git found on PATH.
func NewCloner() *Cloner {
	return &Cloner{Git: "git"}
}

// Clone performs a fresh shallow clone of repoURL into dest.
// An existing dest is removed first: a stale partial clone is worse than
// a slow one.
func (c *Cloner) Clone(ctx context.Context, repoURL, dest string) error {
	if repoURL == "" {
		return ErrEmptyRepo
	}

	gitBin := c.Git
	if gitBin == "" {
		gitBin = "git"
	}
	if _, err := exec.LookPath(gitBin); err != nil {
		return fmt.Errorf("%w: %q", ErrGitNotFound, gitBin)
	}

	if err := os.RemoveAll(dest); err != nil {
		return fmt.Errorf("removing previous checkout: %w", err)
	}

	cmd := process.Command(ctx, gitBin, "clone", "--depth", "1", "--single-branch", repoURL, dest)

	var stderr bytes.Buffer
	if c.Progress != nil {
		cmd.Stderr = io.MultiWriter(&stderr, c.Progress)
	} else {
		cmd.Stderr = &stderr
	}

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("%w: %v: %s", ErrCloneFailed, err, lastLine(stderr.String()))
	}
	return nil
}

// lastLine extracts the final non-empty line of tool output, which is
// where git puts the actual reason for a failure.
func lastLine(out string) string {
	lines := strings.Split(strings.TrimSpace(out), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if line := strings.TrimSpace(lines[i]); line != "" {
			return line
		}
	}
	return "no output"
}
