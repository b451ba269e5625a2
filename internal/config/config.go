// Package config loads the CLI's YAML configuration and the posting
// environment.
//
// The logos and pack commands read an optional YAML file; the post
// command is driven entirely by environment variables so it can run
// unattended on a scheduler.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/snona-tech/one-cloud-native-a-day/internal/render"
	"github.com/snona-tech/one-cloud-native-a-day/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrInvalidValue    = errors.New("invalid config value")
)

// MaxWorkers caps the configurable render pool size. It tracks the pool's
// own cap so a config file cannot request more workers than a flag may.
const MaxWorkers = render.MaxPoolSize

// DefaultLogoRepo is the upstream landscape repository carrying the
// hosted logo SVGs.
const DefaultLogoRepo = "https://github.com/cncf/landscape.git"

// DefaultLogoSourceDir is the SVG directory inside the logo repository.
const DefaultLogoSourceDir = "hosted_logos"

// Config holds all file-based configuration.
type Config struct {
	Logos LogosConfig `yaml:"logos"`
	Pack  PackConfig  `yaml:"pack"`
}

// LogosConfig configures the logo rendering pipeline.
type LogosConfig struct {
	Repo      string `yaml:"repo"`      // Logo repository URL (empty = upstream landscape)
	SourceDir string `yaml:"sourceDir"` // SVG directory inside the repo (empty = hosted_logos)
	WorkDir   string `yaml:"workDir"`   // Clone destination (empty = temp directory)
	OutputDir string `yaml:"outputDir"` // PNG destination (empty = must specify)
	Height    int    `yaml:"height"`    // PNG height in pixels (0 = default)
	Workers   int    `yaml:"workers"`   // Parallel renderers (0 = default)
	Compress  bool   `yaml:"compress"`  // Palette-quantize rendered PNGs
}

// PackConfig configures the Lambda packaging pipeline.
type PackConfig struct {
	SourceDir    string `yaml:"sourceDir"`    // Function sources (empty = current directory)
	BuildDir     string `yaml:"buildDir"`     // Staging directory (empty = <source>/build)
	Archive      string `yaml:"archive"`      // Zip destination (empty = next to the source dir)
	Requirements string `yaml:"requirements"` // Pip requirements file (empty = <source>/requirements.txt)
	Pip          string `yaml:"pip"`          // Pip executable (empty = pip3)
}

// Validate checks value ranges. Called automatically by LoadConfig but
// available for consumers who construct Config manually.
func (c *Config) Validate() error {
	if c.Logos.Height != 0 {
		if c.Logos.Height < render.MinHeight || c.Logos.Height > render.MaxHeight {
			return fmt.Errorf("%w: logos.height must be between %d and %d, got %d",
				ErrInvalidValue, render.MinHeight, render.MaxHeight, c.Logos.Height)
		}
	}
	if c.Logos.Workers < 0 || c.Logos.Workers > MaxWorkers {
		return fmt.Errorf("%w: logos.workers must be between 0 and %d, got %d",
			ErrInvalidValue, MaxWorkers, c.Logos.Workers)
	}
	return nil
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Logos: LogosConfig{Compress: true},
		Pack:  PackConfig{},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise it's a config name searched in standard locations.
// Returns an error if the file is not found; there is no silent fallback.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !isFilePath(nameOrPath) {
		resolved, err := resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
		configPath = resolved
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// isFilePath returns true if the string looks like a file path.
func isFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// SearchPaths returns the locations LoadConfig tries for a config name,
// in order. Exposed so callers can hint at them in error output.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, "ocnad", name+ext))
		}
	}

	return paths
}

// resolveConfigPath searches for a config file by name: current directory
// first, then ~/.config/ocnad/, trying .yaml before .yml in each.
func resolveConfigPath(name string) (string, error) {
	tried := SearchPaths(name)
	for _, path := range tried {
		if fileExists(path) {
			return path, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}

// fileExists returns true if the path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
