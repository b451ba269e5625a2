// Package svgfix repairs the handful of malformed SVGs that ship in the
// artwork repository before they hit the rasterizer.
//
// Two defect classes are known: broken XML declarations (mismatched quotes,
// nonstandard encoding names) that make strict parsers bail, and editor
// <metadata> blocks whose foreign namespaces trip up lean SVG decoders.
// Both fixes are plain source-text surgery: the inputs are malformed by
// definition, so round-tripping them through an XML parser is not an option.
package svgfix

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// ErrNotSVG indicates a file without an .svg extension.
var ErrNotSVG = errors.New("not an SVG file")

// canonicalDecl replaces any malformed XML declaration.
const canonicalDecl = `<?xml version="1.0" encoding="UTF-8"?>`

// xmlDeclPattern matches an XML declaration at the start of the document,
// however mangled its attribute quoting is.
var xmlDeclPattern = regexp.MustCompile(`(?s)\A\x{FEFF}?\s*<\?xml.*?\?>`)

// wellFormedDeclPattern accepts declarations that need no repair.
var wellFormedDeclPattern = regexp.MustCompile(
	`\A<\?xml\s+version="1\.0"(?:\s+encoding="(?i:UTF-8)")?(?:\s+standalone="(?:yes|no)")?\s*\?>\z`)

// metadataPattern matches editor metadata blocks, including attributes and
// self-closing forms.
var metadataPattern = regexp.MustCompile(`(?si)<metadata\b[^>]*>.*?</metadata\s*>|<metadata\b[^>]*/>`)

// Result describes what Normalize changed.
type Result struct {
	DeclFixed        bool
	MetadataStripped bool
}

// Changed reports whether any rule fired.
func (r Result) Changed() bool {
	return r.DeclFixed || r.MetadataStripped
}

// Normalize applies both repair rules to SVG source text.
// It is idempotent: Normalize(Normalize(x)) == Normalize(x).
func Normalize(content string) (string, Result) {
	var res Result

	if loc := xmlDeclPattern.FindStringIndex(content); loc != nil {
		decl := strings.TrimSpace(strings.TrimPrefix(content[loc[0]:loc[1]], "\uFEFF"))
		if !wellFormedDeclPattern.MatchString(decl) {
			content = canonicalDecl + content[loc[1]:]
			res.DeclFixed = true
		}
	}

	if metadataPattern.MatchString(content) {
		content = metadataPattern.ReplaceAllString(content, "")
		res.MetadataStripped = true
	}

	return content, res
}

// NormalizeFile repairs a single SVG file in place.
// The file is only rewritten when a rule fired.
func NormalizeFile(path string) (Result, error) {
	if !strings.EqualFold(filepath.Ext(path), ".svg") {
		return Result{}, fmt.Errorf("%w: %s", ErrNotSVG, path)
	}

	info, err := os.Stat(path)
	if err != nil {
		return Result{}, fmt.Errorf("reading %s: %w", path, err)
	}

	raw, err := os.ReadFile(path) // #nosec G304 -- discovered path
	if err != nil {
		return Result{}, fmt.Errorf("reading %s: %w", path, err)
	}

	fixed, res := Normalize(string(raw))
	if !res.Changed() {
		return res, nil
	}

	if err := os.WriteFile(path, []byte(fixed), info.Mode().Perm()); err != nil {
		return res, fmt.Errorf("writing %s: %w", path, err)
	}
	return res, nil
}

// NormalizeTree repairs every SVG under dir and returns the number of
// files that needed a fix.
func NormalizeTree(dir string) (int, error) {
	patched := 0
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), ".svg") {
			return nil
		}
		res, err := NormalizeFile(path)
		if err != nil {
			return err
		}
		if res.Changed() {
			patched++
		}
		return nil
	})
	if err != nil {
		return patched, fmt.Errorf("normalizing %s: %w", dir, err)
	}
	return patched, nil
}
