// Package lambdapkg builds zip deployment artifacts for AWS Lambda.
//
// The build mirrors the packaging script it replaces: install Python
// dependencies into a staging directory, copy the top-level sources in,
// zip the staging directory, and land the archive next to it. pip stays an
// external tool; reimplementing wheel resolution is nobody's idea of fun.
package lambdapkg

import (
	"archive/zip"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/snona-tech/one-cloud-native-a-day/internal/fileutil"
	"github.com/snona-tech/one-cloud-native-a-day/internal/process"
)

// Sentinel errors for packaging operations.
var (
	ErrPipNotFound   = errors.New("pip binary not found")
	ErrPipInstall    = errors.New("pip install failed")
	ErrNoSources     = errors.New("no python sources found")
	ErrSourceDir     = errors.New("source directory not found")
	ErrArchiveCreate = errors.New("archive creation failed")
)

// DefaultArchiveName is used when Spec.ArchivePath is empty.
const DefaultArchiveName = "lambda.zip"

// Spec describes one packaging run.
type Spec struct {
	SourceDir    string // directory holding *.py and requirements.txt
	BuildDir     string // staging directory, recreated on every run
	ArchivePath  string // final archive location ("" = <BuildDir>/../lambda.zip)
	Requirements string // requirements file ("" = <SourceDir>/requirements.txt; skipped when absent)
}

// Summary reports what a build produced.
type Summary struct {
	Sources      int    // top-level .py files copied
	Dependencies bool   // whether pip install ran
	ArchivePath  string // where the zip landed
	ArchiveBytes int64
}

// Builder packages Lambda functions with a configurable pip binary.
type Builder struct {
	// Pip is the binary to invoke. Defaults to "pip3".
	Pip string

	// Progress receives pip's combined output when set (verbose mode).
	Progress io.Writer
}

// NewBuilder returns a Builder using the pip3 found on PATH.
func NewBuilder() *Builder {
	return &Builder{Pip: "pip3"}
}

// Build runs the full packaging sequence and returns a summary.
// Prior build artifacts (staging dir and archive) are removed first.
func (b *Builder) Build(ctx context.Context, spec Spec) (*Summary, error) {
	if !fileutil.DirExists(spec.SourceDir) {
		return nil, fmt.Errorf("%w: %s", ErrSourceDir, spec.SourceDir)
	}

	archivePath := spec.ArchivePath
	if archivePath == "" {
		archivePath = filepath.Join(filepath.Dir(spec.BuildDir), DefaultArchiveName)
	}

	// Clean slate
	if err := os.RemoveAll(spec.BuildDir); err != nil {
		return nil, fmt.Errorf("removing previous build dir: %w", err)
	}
	if err := os.Remove(archivePath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("removing previous archive: %w", err)
	}
	if err := os.MkdirAll(spec.BuildDir, 0o750); err != nil {
		return nil, fmt.Errorf("creating build dir: %w", err)
	}

	summary := &Summary{ArchivePath: archivePath}

	requirements := spec.Requirements
	if requirements == "" {
		requirements = filepath.Join(spec.SourceDir, "requirements.txt")
	}
	if fileutil.FileExists(requirements) {
		if err := b.installDependencies(ctx, requirements, spec.BuildDir); err != nil {
			return nil, err
		}
		summary.Dependencies = true
	}

	copied, err := copySources(spec.SourceDir, spec.BuildDir)
	if err != nil {
		return nil, err
	}
	if copied == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoSources, spec.SourceDir)
	}
	summary.Sources = copied

	if err := writeArchive(spec.BuildDir, archivePath); err != nil {
		return nil, err
	}

	info, err := os.Stat(archivePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrArchiveCreate, err)
	}
	summary.ArchiveBytes = info.Size()

	return summary, nil
}

// installDependencies runs pip install -r <requirements> -t <target>.
func (b *Builder) installDependencies(ctx context.Context, requirements, target string) error {
	pipBin := b.Pip
	if pipBin == "" {
		pipBin = "pip3"
	}
	if _, err := exec.LookPath(pipBin); err != nil {
		return fmt.Errorf("%w: %q", ErrPipNotFound, pipBin)
	}

	cmd := process.Command(ctx, pipBin, "install", "--requirement", requirements, "--target", target)
	if b.Progress != nil {
		cmd.Stdout = b.Progress
		cmd.Stderr = b.Progress
	}

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("%w: %v", ErrPipInstall, err)
	}
	return nil
}

// copySources copies top-level .py files from sourceDir into buildDir.
// Only the top level is scanned; nested packages belong in requirements.
func copySources(sourceDir, buildDir string) (int, error) {
	entries, err := os.ReadDir(sourceDir)
	if err != nil {
		return 0, fmt.Errorf("reading source dir: %w", err)
	}

	copied := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".py") {
			continue
		}
		src := filepath.Join(sourceDir, entry.Name())
		dst := filepath.Join(buildDir, entry.Name())
		if err := fileutil.CopyFile(src, dst); err != nil {
			return copied, err
		}
		copied++
	}
	return copied, nil
}

// writeArchive zips the build directory. Entry names are relative to the
// build dir with forward slashes, so the function code sits at the archive
// root the way Lambda expects.
func writeArchive(buildDir, archivePath string) error {
	out, err := os.Create(archivePath) // #nosec G304 -- caller-controlled output path
	if err != nil {
		return fmt.Errorf("%w: %v", ErrArchiveCreate, err)
	}

	zw := zip.NewWriter(out)

	walkErr := filepath.WalkDir(buildDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(buildDir, path)
		if err != nil {
			return err
		}

		info, err := d.Info()
		if err != nil {
			return err
		}

		header, err := zip.FileInfoHeader(info)
		if err != nil {
			return err
		}
		header.Name = filepath.ToSlash(rel)
		header.Method = zip.Deflate

		w, err := zw.CreateHeader(header)
		if err != nil {
			return err
		}

		f, err := os.Open(path) // #nosec G304 -- discovered path
		if err != nil {
			return err
		}
		_, err = io.Copy(w, f)
		_ = f.Close()
		return err
	})

	if walkErr != nil {
		_ = zw.Close()
		_ = out.Close()
		_ = os.Remove(archivePath)
		return fmt.Errorf("%w: %v", ErrArchiveCreate, walkErr)
	}

	if err := zw.Close(); err != nil {
		_ = out.Close()
		return fmt.Errorf("%w: %v", ErrArchiveCreate, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrArchiveCreate, err)
	}
	return nil
}
