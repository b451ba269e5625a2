package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/snona-tech/one-cloud-native-a-day/internal/config"
)

// doctorResult holds all diagnostic information.
type doctorResult struct {
	Status   string     `json:"status"` // "ready", "warnings", "errors"
	Git      toolInfo   `json:"git"`
	Pip      toolInfo   `json:"pip"`
	Slack    slackInfo  `json:"slack"`
	Env      envInfo    `json:"environment"`
	System   systemInfo `json:"system"`
	Warnings []string   `json:"warnings,omitempty"`
	Errors   []string   `json:"errors,omitempty"`
}

// toolInfo holds external tool detection results.
type toolInfo struct {
	Name    string `json:"name"`
	Found   bool   `json:"found"`
	Path    string `json:"path,omitempty"`
	Version string `json:"version,omitempty"`
}

// slackInfo holds posting credential detection results.
type slackInfo struct {
	TokenSet   bool `json:"token_set"`
	ChannelSet bool `json:"channel_set"`
}

// envInfo holds environment detection results.
type envInfo struct {
	OS         string `json:"os"`
	Arch       string `json:"arch"`
	Container  bool   `json:"container"`
	CI         bool   `json:"ci"`
	DataSource string `json:"data_source,omitempty"`
}

// systemInfo holds system check results.
type systemInfo struct {
	TempWritable bool `json:"temp_writable"`
}

// runDoctorCmd executes the doctor command and returns an exit code.
// Exit codes: 0 = OK (including warnings), 1 = errors found.
func runDoctorCmd(args []string, env *Environment) int {
	flags, err := parseDoctorFlags(args, env.Stderr)
	if err != nil {
		return ExitUsage
	}

	result := runDoctor(resolveDoctorPip(flags))

	if flags.json {
		enc := json.NewEncoder(env.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(result)
	} else {
		printDoctorResult(env.Stdout, result)
	}

	if result.Status == "errors" {
		return ExitGeneral
	}
	return ExitSuccess
}

// resolveDoctorPip picks the pip binary to probe: the --pip flag first,
// then the pack section of the config file, then pip3. Doctor must check
// the same binary pack will run or its verdict is worthless.
func resolveDoctorPip(flags *doctorFlags) string {
	if flags.pip != "" {
		return flags.pip
	}
	if flags.config != "" {
		if cfg, err := config.LoadConfig(flags.config); err == nil && cfg.Pack.Pip != "" {
			return cfg.Pack.Pip
		}
	}
	return "pip3"
}

// runDoctor performs all diagnostic checks.
func runDoctor(pipBin string) *doctorResult {
	result := &doctorResult{
		Status: "ready",
		Env: envInfo{
			OS:         runtime.GOOS,
			Arch:       runtime.GOARCH,
			DataSource: os.Getenv("LANDSCAPE_DATA_SOURCE"),
		},
	}

	checkTool(&result.Git, "git", "--version")
	checkTool(&result.Pip, pipBin, "--version")
	checkSlack(result)
	checkEnvironment(result)
	checkSystem(result)

	// The logos command cannot work without git; pip only blocks pack.
	if !result.Git.Found {
		result.Errors = append(result.Errors, "git not found; the logos command needs it")
	}
	if !result.Pip.Found {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("%s not found; the pack command needs it", pipBin))
	}

	if len(result.Errors) > 0 {
		result.Status = "errors"
	} else if len(result.Warnings) > 0 {
		result.Status = "warnings"
	}

	return result
}

// checkTool detects an external binary and records its version.
func checkTool(info *toolInfo, name, versionFlag string) {
	info.Name = name

	path, err := exec.LookPath(name)
	if err != nil {
		return
	}
	info.Found = true
	info.Path = path

	out, err := exec.Command(path, versionFlag).Output() // #nosec G204 -- version probe of the resolved binary
	if err == nil {
		info.Version = strings.TrimSpace(strings.SplitN(string(out), "\n", 2)[0])
	}
}

// checkSlack records whether posting credentials are present.
func checkSlack(result *doctorResult) {
	result.Slack.TokenSet = os.Getenv("SLACK_BOT_TOKEN") != ""
	result.Slack.ChannelSet = os.Getenv("SLACK_CHANNEL_ID") != ""

	if !result.Slack.TokenSet {
		result.Warnings = append(result.Warnings,
			"SLACK_BOT_TOKEN not set; the post command will fail without it")
	}
	if !result.Slack.ChannelSet {
		result.Warnings = append(result.Warnings,
			"SLACK_CHANNEL_ID not set; the post command will fail without it")
	}
}

// checkEnvironment detects container and CI environments.
func checkEnvironment(result *doctorResult) {
	if _, err := os.Stat("/.dockerenv"); err == nil {
		result.Env.Container = true
	} else if os.Getenv("container") != "" || os.Getenv("KUBERNETES_SERVICE_HOST") != "" {
		result.Env.Container = true
	}

	ciVars := []string{"CI", "GITHUB_ACTIONS", "GITLAB_CI", "JENKINS_URL", "CIRCLECI"}
	for _, v := range ciVars {
		if os.Getenv(v) != "" {
			result.Env.CI = true
			break
		}
	}
}

// checkSystem verifies system requirements.
func checkSystem(result *doctorResult) {
	tmpDir := os.TempDir()
	testFile := filepath.Join(tmpDir, "ocnad-doctor-test")
	if err := os.WriteFile(testFile, []byte("test"), 0o600); err != nil {
		result.Errors = append(result.Errors,
			fmt.Sprintf("Temp directory not writable: %s", tmpDir))
	} else {
		_ = os.Remove(testFile)
		result.System.TempWritable = true
	}
}

// printDoctorResult outputs human-readable diagnostic results.
func printDoctorResult(w io.Writer, r *doctorResult) {
	fmt.Fprintln(w, "ocnad doctor")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Tools")
	printToolLine(w, r.Git)
	printToolLine(w, r.Pip)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Slack")
	printCredLine(w, "SLACK_BOT_TOKEN", r.Slack.TokenSet)
	printCredLine(w, "SLACK_CHANNEL_ID", r.Slack.ChannelSet)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Environment")
	fmt.Fprintf(w, "  [OK] Platform: %s/%s\n", r.Env.OS, r.Env.Arch)
	if r.Env.Container {
		fmt.Fprintln(w, "  [OK] Container: detected")
	}
	if r.Env.CI {
		fmt.Fprintln(w, "  [OK] CI: detected")
	}
	if r.Env.DataSource != "" {
		fmt.Fprintf(w, "  [OK] Data source: %s\n", r.Env.DataSource)
	} else {
		fmt.Fprintln(w, "  [OK] Data source: upstream default")
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "System")
	if r.System.TempWritable {
		fmt.Fprintln(w, "  [OK] Temp directory: writable")
	} else {
		fmt.Fprintln(w, "  [ERROR] Temp directory: not writable")
	}
	fmt.Fprintln(w)

	if len(r.Warnings) > 0 {
		fmt.Fprintln(w, "Warnings:")
		for _, warn := range r.Warnings {
			fmt.Fprintf(w, "  [WARN] %s\n", warn)
		}
		fmt.Fprintln(w)
	}

	if len(r.Errors) > 0 {
		fmt.Fprintln(w, "Errors:")
		for _, err := range r.Errors {
			fmt.Fprintf(w, "  [ERROR] %s\n", err)
		}
		fmt.Fprintln(w)
	}

	switch r.Status {
	case "ready":
		fmt.Fprintln(w, "Status: ready")
	case "warnings":
		fmt.Fprintln(w, "Status: ready (with warnings)")
	case "errors":
		fmt.Fprintln(w, "Status: errors found")
	}
}

// printToolLine prints a single tool check line.
func printToolLine(w io.Writer, info toolInfo) {
	if info.Found {
		if info.Version != "" {
			fmt.Fprintf(w, "  [OK] %s: %s (%s)\n", info.Name, info.Path, info.Version)
		} else {
			fmt.Fprintf(w, "  [OK] %s: %s\n", info.Name, info.Path)
		}
	} else {
		fmt.Fprintf(w, "  [MISSING] %s: not found on PATH\n", info.Name)
	}
}

// printCredLine prints a single credential check line.
func printCredLine(w io.Writer, name string, set bool) {
	if set {
		fmt.Fprintf(w, "  [OK] %s: set\n", name)
	} else {
		fmt.Fprintf(w, "  [WARN] %s: not set\n", name)
	}
}
