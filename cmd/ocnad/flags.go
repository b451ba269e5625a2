package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// logosFlags holds all flags for the logos command.
type logosFlags struct {
	common     commonFlags
	output     string
	repo       string
	sourceDir  string
	workDir    string
	height     int
	workers    int
	noCompress bool
	noFetch    bool
	keepWork   bool
}

// packFlags holds all flags for the pack command.
type packFlags struct {
	common       commonFlags
	archive      string
	buildDir     string
	requirements string
	pip          string
}

// postFlags holds all flags for the post command.
type postFlags struct {
	common commonFlags
	dryRun bool
	force  bool
}

// doctorFlags holds all flags for the doctor command.
type doctorFlags struct {
	json   bool
	config string
	pip    string
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed progress")
}

// buildLogosFlagSet registers the logos command flags.
func buildLogosFlagSet(f *logosFlags, usageOut io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("logos", flag.ContinueOnError)

	fs.StringVarP(&f.output, "output", "o", "", "PNG output directory")
	fs.StringVar(&f.repo, "repo", "", "logo repository URL")
	fs.StringVar(&f.sourceDir, "source-dir", "", "SVG directory inside the repository")
	fs.StringVar(&f.workDir, "work-dir", "", "clone destination (default: temp directory)")
	fs.IntVar(&f.height, "height", 0, "PNG height in pixels (0 = default)")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel renderers (0 = auto)")
	fs.BoolVar(&f.noCompress, "no-compress", false, "skip palette compression of rendered PNGs")
	fs.BoolVar(&f.noFetch, "no-fetch", false, "reuse an existing work directory instead of cloning")
	fs.BoolVar(&f.keepWork, "keep-work", false, "keep the temp work directory after rendering")
	addCommonFlags(fs, &f.common)

	fs.Usage = func() { printLogosUsage(usageOut) }
	return fs
}

// buildPackFlagSet registers the pack command flags.
func buildPackFlagSet(f *packFlags, usageOut io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("pack", flag.ContinueOnError)

	fs.StringVarP(&f.archive, "archive", "o", "", "zip destination (default: next to the source dir)")
	fs.StringVar(&f.buildDir, "build-dir", "", "staging directory (default: <source>/build)")
	fs.StringVar(&f.requirements, "requirements", "", "pip requirements file (default: <source>/requirements.txt)")
	fs.StringVar(&f.pip, "pip", "", "pip executable (default: pip3)")
	addCommonFlags(fs, &f.common)

	fs.Usage = func() { printPackUsage(usageOut) }
	return fs
}

// buildPostFlagSet registers the post command flags.
func buildPostFlagSet(f *postFlags, usageOut io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("post", flag.ContinueOnError)

	fs.BoolVar(&f.dryRun, "dry-run", false, "print the message JSON instead of posting")
	fs.BoolVar(&f.force, "force", false, "post even on weekends and holidays")
	addCommonFlags(fs, &f.common)

	fs.Usage = func() { printPostUsage(usageOut) }
	return fs
}

// buildDoctorFlagSet registers the doctor command flags.
func buildDoctorFlagSet(f *doctorFlags, usageOut io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("doctor", flag.ContinueOnError)

	fs.BoolVar(&f.json, "json", false, "output machine-readable JSON")
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVar(&f.pip, "pip", "", "pip executable to probe (default: pack config or pip3)")

	fs.Usage = func() { printDoctorUsage(usageOut) }
	return fs
}

// parseLogosFlags parses logos command flags and returns positional args.
func parseLogosFlags(args []string, usageOut io.Writer) (*logosFlags, []string, error) {
	f := &logosFlags{}
	fs := buildLogosFlagSet(f, usageOut)
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parsePackFlags parses pack command flags and returns positional args.
func parsePackFlags(args []string, usageOut io.Writer) (*packFlags, []string, error) {
	f := &packFlags{}
	fs := buildPackFlagSet(f, usageOut)
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parsePostFlags parses post command flags.
func parsePostFlags(args []string, usageOut io.Writer) (*postFlags, error) {
	f := &postFlags{}
	fs := buildPostFlagSet(f, usageOut)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return f, nil
}

// parseDoctorFlags parses doctor command flags.
func parseDoctorFlags(args []string, usageOut io.Writer) (*doctorFlags, error) {
	f := &doctorFlags{}
	fs := buildDoctorFlagSet(f, usageOut)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return f, nil
}
