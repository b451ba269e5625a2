// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"os"
	"strings"

	"github.com/snona-tech/one-cloud-native-a-day/internal/fileutil"
)

// IsInContainer detects if running inside a Docker container or similar.
// Checks for /.dockerenv file which Docker creates automatically.
var IsInContainer = func() bool {
	return fileutil.FileExists("/.dockerenv")
}

// ForGitNotFound returns hints for a missing git binary.
func ForGitNotFound() string {
	var hints []string
	hints = append(hints, "install git or set PATH to include it")
	if IsInContainer() {
		hints = append(hints, "in containers, apk add git / apt-get install git")
	}
	return formatHints(hints)
}

// ForPipNotFound returns hints for a missing pip binary.
func ForPipNotFound() string {
	return format("install python3-pip, or point --pip at pip3/python3 -m pip")
}

// ForCloneFailed returns hints for clone failures, distinguishing the
// common offline case from authentication problems.
func ForCloneFailed() string {
	var hints []string
	hints = append(hints, "check network access to the artwork repository")
	if os.Getenv("HTTPS_PROXY") == "" && os.Getenv("https_proxy") == "" {
		hints = append(hints, "behind a proxy, set HTTPS_PROXY")
	}
	return formatHints(hints)
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/ocnad/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	// Find a user config path (contains .config/ocnad) to suggest
	for _, p := range searchedPaths {
		if strings.Contains(p, ".config/ocnad") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForSlackAuth returns hints for Slack API authentication failures.
func ForSlackAuth() string {
	var hints []string
	if os.Getenv("SLACK_BOT_TOKEN") == "" {
		hints = append(hints, "set SLACK_BOT_TOKEN (xoxb-...)")
	} else {
		hints = append(hints, "verify the bot token scope includes chat:write")
	}
	if os.Getenv("SLACK_CHANNEL_ID") == "" {
		hints = append(hints, "set SLACK_CHANNEL_ID and invite the bot to the channel")
	}
	return formatHints(hints)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
