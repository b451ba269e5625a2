package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/snona-tech/one-cloud-native-a-day/internal/config"
	"github.com/snona-tech/one-cloud-native-a-day/internal/fileutil"
	"github.com/snona-tech/one-cloud-native-a-day/internal/gitutil"
	"github.com/snona-tech/one-cloud-native-a-day/internal/hints"
	"github.com/snona-tech/one-cloud-native-a-day/internal/render"
	"github.com/snona-tech/one-cloud-native-a-day/internal/svgfix"
)

// Sentinel errors for the logos command.
var (
	ErrNoOutput           = errors.New("no output directory specified")
	ErrNoSVGFiles         = errors.New("no SVG files found")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
	ErrCountMismatch      = errors.New("rendered PNG count does not match SVG count")
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// LogoToRender represents a single SVG to process.
type LogoToRender struct {
	SVGPath string
	PNGPath string
}

// RenderResult holds the outcome of a single conversion.
type RenderResult struct {
	SVGPath  string
	PNGPath  string
	Err      error
	Duration time.Duration
}

// runLogos orchestrates the logo pipeline: clone, repair, render.
func runLogos(ctx context.Context, positionalArgs []string, flags *logosFlags, env *Environment) error {
	if len(positionalArgs) > 0 {
		return fmt.Errorf("unexpected argument %q", positionalArgs[0])
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

	// Merge CLI flags into config (CLI wins)
	mergeLogosFlags(flags, cfg)

	// Flag values bypass LoadConfig's validation, so the merged result is
	// checked here before any pool or renderer sees it.
	if err := validateHeight(cfg.Logos.Height); err != nil {
		return err
	}
	if err := validateWorkers(cfg.Logos.Workers); err != nil {
		return err
	}

	outputDir := cfg.Logos.OutputDir
	if outputDir == "" {
		return ErrNoOutput
	}

	repo := cfg.Logos.Repo
	if repo == "" {
		repo = config.DefaultLogoRepo
	}
	sourceDir := cfg.Logos.SourceDir
	if sourceDir == "" {
		sourceDir = config.DefaultLogoSourceDir
	}

	workDir, cleanupWork, err := resolveWorkDir(cfg.Logos.WorkDir, flags.keepWork)
	if err != nil {
		return err
	}
	defer cleanupWork()

	svgDir := filepath.Join(workDir, sourceDir)

	if flags.noFetch && fileutil.DirExists(svgDir) {
		if flags.common.verbose {
			fmt.Fprintf(env.Stderr, "Reusing existing checkout in %s\n", workDir)
		}
	} else {
		if err := cloneLogos(ctx, repo, workDir, flags.common.verbose, env.Stderr); err != nil {
			return err
		}
		if !fileutil.DirExists(svgDir) {
			return fmt.Errorf("%w: %s has no %s directory", ErrNoSVGFiles, repo, sourceDir)
		}
	}

	// Repair malformed SVGs in place before rasterizing anything.
	patched, err := svgfix.NormalizeTree(svgDir)
	if err != nil {
		return fmt.Errorf("normalizing SVGs: %w", err)
	}
	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "Normalized %d SVG file(s)\n", patched)
	}

	logos, err := discoverLogos(svgDir, outputDir)
	if err != nil {
		return fmt.Errorf("discovering logos: %w", err)
	}
	if len(logos) == 0 {
		return fmt.Errorf("%w in %s", ErrNoSVGFiles, svgDir)
	}

	// Recreate the output directory so stale PNGs from a previous run
	// cannot leak into the counts.
	if err := os.RemoveAll(outputDir); err != nil {
		return fmt.Errorf("removing previous output directory: %w", err)
	}
	if err := os.MkdirAll(outputDir, dirPermissions); err != nil {
		return fmt.Errorf("creating output directory: %w%s", err, hints.ForOutputDirectory())
	}

	var opts []render.Option
	if cfg.Logos.Height > 0 {
		opts = append(opts, render.WithHeight(cfg.Logos.Height))
	}
	opts = append(opts, render.WithCompression(cfg.Logos.Compress))

	poolSize := render.ResolvePoolSize(cfg.Logos.Workers)
	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "Pool size: %d\n", poolSize)
	}
	pool := render.NewServicePool(poolSize, opts...)
	defer func() { _ = pool.Close() }()

	results := renderBatch(ctx, pool, logos)

	failed := printRenderResults(results, flags.common.quiet, flags.common.verbose, env)

	svgCount, err := fileutil.CountByExt(svgDir, ".svg")
	if err != nil {
		return fmt.Errorf("counting SVG files: %w", err)
	}
	pngCount, err := fileutil.CountByExt(outputDir, ".png")
	if err != nil {
		return fmt.Errorf("counting PNG files: %w", err)
	}

	if !flags.common.quiet {
		fmt.Fprintf(env.Stdout, "\nSVG files: %d\nPNG files: %d\nRepaired:  %d\n", svgCount, pngCount, patched)
	}

	if failed > 0 {
		return fmt.Errorf("%d conversion(s) failed", failed)
	}
	if pngCount < svgCount {
		return fmt.Errorf("%w: %d PNG vs %d SVG", ErrCountMismatch, pngCount, svgCount)
	}
	return nil
}

// mergeLogosFlags merges CLI flags into config. CLI values override config values.
func mergeLogosFlags(flags *logosFlags, cfg *config.Config) {
	if flags.output != "" {
		cfg.Logos.OutputDir = flags.output
	}
	if flags.repo != "" {
		cfg.Logos.Repo = flags.repo
	}
	if flags.sourceDir != "" {
		cfg.Logos.SourceDir = flags.sourceDir
	}
	if flags.workDir != "" {
		cfg.Logos.WorkDir = flags.workDir
	}
	if flags.height > 0 {
		cfg.Logos.Height = flags.height
	}
	if flags.workers > 0 {
		cfg.Logos.Workers = flags.workers
	}
	if flags.noCompress {
		cfg.Logos.Compress = false
	}
}

// resolveWorkDir returns the clone destination and its cleanup function.
// An explicit work dir is never removed; a temp dir is, unless kept.
func resolveWorkDir(configured string, keep bool) (string, func(), error) {
	if configured != "" {
		return configured, func() {}, nil
	}

	dir, err := os.MkdirTemp("", "ocnad-logos-")
	if err != nil {
		return "", nil, fmt.Errorf("creating work directory: %w", err)
	}
	if keep {
		return dir, func() {}, nil
	}
	return dir, func() { _ = os.RemoveAll(dir) }, nil
}

// cloneLogos performs the shallow clone with hint-enriched errors.
func cloneLogos(ctx context.Context, repo, dest string, verbose bool, stderr io.Writer) error {
	cloner := gitutil.NewCloner()
	if verbose {
		cloner.Progress = stderr
		fmt.Fprintf(stderr, "Cloning %s\n", repo)
	}

	err := cloner.Clone(ctx, repo, dest)
	switch {
	case errors.Is(err, gitutil.ErrGitNotFound):
		return fmt.Errorf("%w%s", err, hints.ForGitNotFound())
	case errors.Is(err, gitutil.ErrCloneFailed):
		return fmt.Errorf("%w%s", err, hints.ForCloneFailed())
	default:
		return err
	}
}

// discoverLogos finds all SVG files under svgDir, mapping each to its PNG
// output path. Relative structure below svgDir is preserved in outputDir.
func discoverLogos(svgDir, outputDir string) ([]LogoToRender, error) {
	var logos []LogoToRender

	err := filepath.WalkDir(svgDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), ".svg") {
			return nil
		}

		rel, err := filepath.Rel(svgDir, path)
		if err != nil {
			return err
		}
		base := strings.TrimSuffix(rel, filepath.Ext(rel))
		logos = append(logos, LogoToRender{
			SVGPath: path,
			PNGPath: filepath.Join(outputDir, base+".png"),
		})
		return nil
	})

	return logos, err
}

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > render.MaxPoolSize {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, render.MaxPoolSize)
	}
	return nil
}

// validateHeight checks a merged height against the renderer's bounds.
// Zero means the renderer default and is always valid.
func validateHeight(h int) error {
	if h == 0 {
		return nil
	}
	if h < render.MinHeight || h > render.MaxHeight {
		return fmt.Errorf("%w: %d (must be between %d and %d)",
			render.ErrInvalidHeight, h, render.MinHeight, render.MaxHeight)
	}
	return nil
}

// renderBatch processes logos concurrently using the service pool.
func renderBatch(ctx context.Context, pool *render.ServicePool, logos []LogoToRender) []RenderResult {
	if len(logos) == 0 {
		return nil
	}

	concurrency := pool.Size()
	if concurrency > len(logos) {
		concurrency = len(logos)
	}

	results := make([]RenderResult, len(logos))
	var wg sync.WaitGroup
	jobs := make(chan int, len(logos))

	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			svc := pool.Acquire()
			defer pool.Release(svc)

			for idx := range jobs {
				if ctx.Err() != nil {
					results[idx] = RenderResult{
						SVGPath: logos[idx].SVGPath,
						Err:     ctx.Err(),
					}
					continue
				}
				results[idx] = renderLogo(ctx, svc, logos[idx])
			}
		}()
	}

	for i := range logos {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// renderLogo processes a single SVG and returns the result.
func renderLogo(ctx context.Context, svc *render.Service, logo LogoToRender) RenderResult {
	start := time.Now()
	result := RenderResult{
		SVGPath: logo.SVGPath,
		PNGPath: logo.PNGPath,
	}

	content, err := os.ReadFile(logo.SVGPath) // #nosec G304 -- discovered path
	if err != nil {
		result.Err = fmt.Errorf("reading SVG: %w", err)
		result.Duration = time.Since(start)
		return result
	}

	if err := os.MkdirAll(filepath.Dir(logo.PNGPath), dirPermissions); err != nil {
		result.Err = fmt.Errorf("creating output directory: %w", err)
		result.Duration = time.Since(start)
		return result
	}

	pngBytes, err := svc.Convert(ctx, render.Input{SVG: content})
	if err != nil {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	if err := os.WriteFile(logo.PNGPath, pngBytes, filePermissions); err != nil { // #nosec G306 -- icons are meant to be readable
		result.Err = fmt.Errorf("writing PNG: %w", err)
		result.Duration = time.Since(start)
		return result
	}

	result.Duration = time.Since(start)
	return result
}

// printRenderResults outputs per-file results and returns the failure count.
func printRenderResults(results []RenderResult, quiet, verbose bool, env *Environment) int {
	failed := 0

	for _, r := range results {
		if r.Err != nil {
			failed++
			fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", r.SVGPath, r.Err)
			continue
		}
		if quiet {
			continue
		}
		if verbose {
			fmt.Fprintf(env.Stdout, "%s -> %s (%v)\n", r.SVGPath, r.PNGPath, r.Duration.Round(time.Millisecond))
		}
	}

	return failed
}
