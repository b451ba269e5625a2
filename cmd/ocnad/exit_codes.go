package main

import (
	"errors"
	"os"

	"github.com/snona-tech/one-cloud-native-a-day/internal/config"
	"github.com/snona-tech/one-cloud-native-a-day/internal/dateutil"
	"github.com/snona-tech/one-cloud-native-a-day/internal/gitutil"
	"github.com/snona-tech/one-cloud-native-a-day/internal/lambdapkg"
	"github.com/snona-tech/one-cloud-native-a-day/internal/landscape"
	"github.com/snona-tech/one-cloud-native-a-day/internal/render"
	"github.com/snona-tech/one-cloud-native-a-day/internal/slackmsg"
	"github.com/snona-tech/one-cloud-native-a-day/internal/svgfix"
	"github.com/snona-tech/one-cloud-native-a-day/internal/yamlutil"
)

// Exit codes for the ocnad CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful run
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied, empty inputs
	ExitTool    = 4 // External tool or service errors (git, pip, Slack, network)
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// External tool and service errors (exit 4)
	if errors.Is(err, gitutil.ErrGitNotFound) ||
		errors.Is(err, gitutil.ErrCloneFailed) ||
		errors.Is(err, lambdapkg.ErrPipNotFound) ||
		errors.Is(err, lambdapkg.ErrPipInstall) ||
		errors.Is(err, landscape.ErrFetchFailed) ||
		errors.Is(err, slackmsg.ErrPostFailed) {
		return ExitTool
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, lambdapkg.ErrSourceDir) ||
		errors.Is(err, lambdapkg.ErrNoSources) ||
		errors.Is(err, lambdapkg.ErrArchiveCreate) ||
		errors.Is(err, ErrNoSVGFiles) ||
		errors.Is(err, ErrCountMismatch) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, config.ErrEnvParse) ||
		errors.Is(err, yamlutil.ErrInputTooLarge) ||
		errors.Is(err, render.ErrInvalidHeight) ||
		errors.Is(err, gitutil.ErrEmptyRepo) ||
		errors.Is(err, landscape.ErrEmptySourceURL) ||
		errors.Is(err, slackmsg.ErrMissingToken) ||
		errors.Is(err, slackmsg.ErrMissingChannel) ||
		errors.Is(err, svgfix.ErrNotSVG) ||
		errors.Is(err, dateutil.ErrInvalidDay) ||
		errors.Is(err, ErrNoOutput) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, ErrUnsupportedShell) {
		return ExitUsage
	}

	return ExitGeneral
}
