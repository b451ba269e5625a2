package main

import (
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/snona-tech/one-cloud-native-a-day/internal/config"
	"github.com/snona-tech/one-cloud-native-a-day/internal/gitutil"
	"github.com/snona-tech/one-cloud-native-a-day/internal/lambdapkg"
	"github.com/snona-tech/one-cloud-native-a-day/internal/landscape"
	"github.com/snona-tech/one-cloud-native-a-day/internal/render"
	"github.com/snona-tech/one-cloud-native-a-day/internal/slackmsg"
)

func TestExitCodeFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil error", err: nil, want: ExitSuccess},
		{name: "general error", err: errors.New("boom"), want: ExitGeneral},
		{name: "wrapped general error", err: fmt.Errorf("outer: %w", errors.New("inner")), want: ExitGeneral},

		{name: "git not found", err: gitutil.ErrGitNotFound, want: ExitTool},
		{name: "clone failed wrapped", err: fmt.Errorf("cloning: %w", gitutil.ErrCloneFailed), want: ExitTool},
		{name: "pip not found", err: lambdapkg.ErrPipNotFound, want: ExitTool},
		{name: "pip install failed", err: lambdapkg.ErrPipInstall, want: ExitTool},
		{name: "landscape fetch failed", err: landscape.ErrFetchFailed, want: ExitTool},
		{name: "slack post failed", err: slackmsg.ErrPostFailed, want: ExitTool},

		{name: "file not found", err: os.ErrNotExist, want: ExitIO},
		{name: "no sources", err: lambdapkg.ErrNoSources, want: ExitIO},
		{name: "no svg files", err: fmt.Errorf("%w in /tmp", ErrNoSVGFiles), want: ExitIO},
		{name: "count mismatch", err: ErrCountMismatch, want: ExitIO},

		{name: "config not found", err: config.ErrConfigNotFound, want: ExitUsage},
		{name: "env parse", err: config.ErrEnvParse, want: ExitUsage},
		{name: "invalid height", err: render.ErrInvalidHeight, want: ExitUsage},
		{name: "empty repo", err: gitutil.ErrEmptyRepo, want: ExitUsage},
		{name: "missing slack token", err: slackmsg.ErrMissingToken, want: ExitUsage},
		{name: "no output", err: ErrNoOutput, want: ExitUsage},
		{name: "invalid workers", err: ErrInvalidWorkerCount, want: ExitUsage},
		{name: "unsupported shell", err: ErrUnsupportedShell, want: ExitUsage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
