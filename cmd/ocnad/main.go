package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	// Configure GOMAXPROCS for container CPU limits before any pool sizing.
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	if hasVerboseFlag(os.Args[1:]) {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], DefaultEnv()))
}

// hasVerboseFlag scans raw args for the verbose flag before full parsing.
func hasVerboseFlag(args []string) bool {
	for _, arg := range args {
		if arg == "-v" || arg == "--verbose" {
			return true
		}
	}
	return false
}

// run dispatches to a subcommand and returns the process exit code.
func run(ctx context.Context, args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	command, rest := args[0], args[1:]

	switch command {
	case "logos":
		flags, positional, err := parseLogosFlags(rest, env.Stderr)
		if err != nil {
			return ExitUsage
		}
		return report(env, runLogos(ctx, positional, flags, env))

	case "pack":
		flags, positional, err := parsePackFlags(rest, env.Stderr)
		if err != nil {
			return ExitUsage
		}
		return report(env, runPack(ctx, positional, flags, env))

	case "post":
		flags, err := parsePostFlags(rest, env.Stderr)
		if err != nil {
			return ExitUsage
		}
		return report(env, runPost(ctx, flags, env))

	case "doctor":
		return runDoctorCmd(rest, env)

	case "completion":
		return report(env, runCompletion(rest, env))

	case "version":
		fmt.Fprintf(env.Stdout, "ocnad %s\n", Version)
		return ExitSuccess

	case "help", "--help", "-h":
		runHelp(rest, env)
		return ExitSuccess

	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n\n", command)
		printUsage(env.Stderr)
		return ExitUsage
	}
}

// report prints the error (if any) and maps it to an exit code.
func report(env *Environment, err error) int {
	if err != nil {
		fmt.Fprintln(env.Stderr, "Error:", err)
	}
	return exitCodeFor(err)
}
