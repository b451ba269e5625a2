package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: ocnad <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  logos       Render landscape logo SVGs to PNG")
	fmt.Fprintln(w, "  pack        Package the Lambda function into a zip archive")
	fmt.Fprintln(w, "  post        Post today's landscape pick to Slack")
	fmt.Fprintln(w, "  doctor      Diagnose the environment")
	fmt.Fprintln(w, "  completion  Generate shell completion script")
	fmt.Fprintln(w, "  version     Show version information")
	fmt.Fprintln(w, "  help        Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'ocnad help <command>' for details on a specific command.")
}

// printLogosUsage prints usage for the logos command.
func printLogosUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: ocnad logos -o <dir> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Clone the landscape logo repository, repair malformed SVGs, and")
	fmt.Fprintln(w, "render every logo to PNG.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <dir>      PNG output directory")
	fmt.Fprintln(w, "      --repo <url>        Logo repository URL")
	fmt.Fprintln(w, "      --source-dir <dir>  SVG directory inside the repository")
	fmt.Fprintln(w, "      --work-dir <dir>    Clone destination (default: temp directory)")
	fmt.Fprintln(w, "      --no-fetch          Reuse an existing work directory")
	fmt.Fprintln(w, "      --keep-work         Keep the temp work directory")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Rendering:")
	fmt.Fprintln(w, "      --height <n>        PNG height in pixels")
	fmt.Fprintln(w, "  -w, --workers <n>       Parallel renderers (0 = auto)")
	fmt.Fprintln(w, "      --no-compress       Skip palette compression")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -c, --config <name>     Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet             Only show errors")
	fmt.Fprintln(w, "  -v, --verbose           Show detailed progress")
}

// printPackUsage prints usage for the pack command.
func printPackUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: ocnad pack [source-dir] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Package a Python Lambda function: install dependencies into a")
	fmt.Fprintln(w, "staging directory, copy sources in, and zip the result.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  source-dir    Function source directory (default: current directory)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -o, --archive <path>       Zip destination")
	fmt.Fprintln(w, "      --build-dir <dir>      Staging directory")
	fmt.Fprintln(w, "      --requirements <file>  Pip requirements file")
	fmt.Fprintln(w, "      --pip <bin>            Pip executable (default: pip3)")
	fmt.Fprintln(w, "  -c, --config <name>        Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet                Only show errors")
	fmt.Fprintln(w, "  -v, --verbose              Show pip output")
}

// printPostUsage prints usage for the post command.
func printPostUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: ocnad post [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Pick a random landscape item and post it to Slack. Configuration")
	fmt.Fprintln(w, "comes from the environment (or a .env file):")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  SLACK_BOT_TOKEN        Bot token (xoxb-...)")
	fmt.Fprintln(w, "  SLACK_CHANNEL_ID       Destination channel")
	fmt.Fprintln(w, "  LANDSCAPE_DATA_SOURCE  Catalog URL (default: upstream landscape.yml)")
	fmt.Fprintln(w, "  WORKDAY_ONLY           Skip weekends and Japanese holidays")
	fmt.Fprintln(w, "  ORIGINAL_HOLIDAYS      Extra holidays, comma-separated YYYY-MM-DD")
	fmt.Fprintln(w, "  CRUNCHBASE_API_KEY     Enables Crunchbase description fallback")
	fmt.Fprintln(w, "  ICON_BASE_URL          Rendered-icon bucket base URL")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "      --dry-run    Print the message JSON instead of posting")
	fmt.Fprintln(w, "      --force      Post even on weekends and holidays")
	fmt.Fprintln(w, "  -q, --quiet      Only show errors")
	fmt.Fprintln(w, "  -v, --verbose    Show detailed progress")
}

// printDoctorUsage prints usage for the doctor command.
func printDoctorUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: ocnad doctor [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Check external tools, credentials, and system requirements.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "      --json           Output machine-readable JSON")
	fmt.Fprintln(w, "      --pip <bin>      Pip executable to probe (default: pack config or pip3)")
	fmt.Fprintln(w, "  -c, --config <name>  Config file name or path")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case "logos":
		printLogosUsage(env.Stdout)
	case "pack":
		printPackUsage(env.Stdout)
	case "post":
		printPostUsage(env.Stdout)
	case "doctor":
		printDoctorUsage(env.Stdout)
	case "completion":
		printCompletionUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: ocnad version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: ocnad help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
	}
}
