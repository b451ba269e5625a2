package main

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/snona-tech/one-cloud-native-a-day/internal/config"
	"github.com/snona-tech/one-cloud-native-a-day/internal/fileutil"
	"github.com/snona-tech/one-cloud-native-a-day/internal/hints"
	"github.com/snona-tech/one-cloud-native-a-day/internal/lambdapkg"
)

// runPack packages the Lambda function into a zip archive.
func runPack(ctx context.Context, positionalArgs []string, flags *packFlags, env *Environment) error {
	if len(positionalArgs) > 1 {
		return fmt.Errorf("unexpected argument %q", positionalArgs[1])
	}

	cfg := config.DefaultConfig()
	var err error
	if flags.common.config != "" {
		cfg, err = config.LoadConfig(flags.common.config)
		if err != nil {
			if errors.Is(err, config.ErrConfigNotFound) && !fileutil.IsFilePath(flags.common.config) {
				return fmt.Errorf("loading config: %w%s", err,
					hints.ForConfigNotFound(config.SearchPaths(flags.common.config)))
			}
			return fmt.Errorf("loading config: %w", err)
		}
	}

	mergePackFlags(flags, cfg)

	sourceDir := cfg.Pack.SourceDir
	if len(positionalArgs) == 1 {
		sourceDir = positionalArgs[0]
	}
	if sourceDir == "" {
		sourceDir = "."
	}

	buildDir := cfg.Pack.BuildDir
	if buildDir == "" {
		buildDir = filepath.Join(sourceDir, "build")
	}

	builder := lambdapkg.NewBuilder()
	if cfg.Pack.Pip != "" {
		builder.Pip = cfg.Pack.Pip
	}
	if flags.common.verbose {
		builder.Progress = env.Stderr
	}

	summary, err := builder.Build(ctx, lambdapkg.Spec{
		SourceDir:    sourceDir,
		BuildDir:     buildDir,
		ArchivePath:  cfg.Pack.Archive,
		Requirements: cfg.Pack.Requirements,
	})
	if err != nil {
		if errors.Is(err, lambdapkg.ErrPipNotFound) {
			return fmt.Errorf("%w%s", err, hints.ForPipNotFound())
		}
		return err
	}

	if !flags.common.quiet {
		deps := "no dependencies"
		if summary.Dependencies {
			deps = "with dependencies"
		}
		fmt.Fprintf(env.Stdout, "Packaged %d source file(s) %s into %s (%d bytes)\n",
			summary.Sources, deps, summary.ArchivePath, summary.ArchiveBytes)
	}
	return nil
}

// mergePackFlags merges CLI flags into config. CLI values override config values.
func mergePackFlags(flags *packFlags, cfg *config.Config) {
	if flags.archive != "" {
		cfg.Pack.Archive = flags.archive
	}
	if flags.buildDir != "" {
		cfg.Pack.BuildDir = flags.buildDir
	}
	if flags.requirements != "" {
		cfg.Pack.Requirements = flags.requirements
	}
	if flags.pip != "" {
		cfg.Pack.Pip = flags.pip
	}
}
