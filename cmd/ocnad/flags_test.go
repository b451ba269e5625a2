package main

import (
	"io"
	"testing"
)

func TestParseLogosFlags(t *testing.T) {
	flags, positional, err := parseLogosFlags([]string{
		"-o", "out", "--repo", "https://example.com/r.git",
		"--height", "320", "-w", "5", "--no-compress", "--no-fetch", "-v",
	}, io.Discard)
	if err != nil {
		t.Fatalf("parseLogosFlags() error = %v", err)
	}
	if len(positional) != 0 {
		t.Errorf("positional = %v, want none", positional)
	}
	if flags.output != "out" {
		t.Errorf("output = %q", flags.output)
	}
	if flags.repo != "https://example.com/r.git" {
		t.Errorf("repo = %q", flags.repo)
	}
	if flags.height != 320 {
		t.Errorf("height = %d", flags.height)
	}
	if flags.workers != 5 {
		t.Errorf("workers = %d", flags.workers)
	}
	if !flags.noCompress || !flags.noFetch || !flags.common.verbose {
		t.Error("boolean flags not parsed")
	}
}

func TestParseLogosFlags_Unknown(t *testing.T) {
	if _, _, err := parseLogosFlags([]string{"--nope"}, io.Discard); err == nil {
		t.Error("parseLogosFlags(--nope) error = nil, want error")
	}
}

func TestParsePackFlags(t *testing.T) {
	flags, positional, err := parsePackFlags([]string{
		"srcdir", "-o", "fn.zip", "--pip", "pip3.12", "-q",
	}, io.Discard)
	if err != nil {
		t.Fatalf("parsePackFlags() error = %v", err)
	}
	if len(positional) != 1 || positional[0] != "srcdir" {
		t.Errorf("positional = %v, want [srcdir]", positional)
	}
	if flags.archive != "fn.zip" {
		t.Errorf("archive = %q", flags.archive)
	}
	if flags.pip != "pip3.12" {
		t.Errorf("pip = %q", flags.pip)
	}
	if !flags.common.quiet {
		t.Error("quiet not parsed")
	}
}

func TestParsePostFlags(t *testing.T) {
	flags, err := parsePostFlags([]string{"--dry-run", "--force"}, io.Discard)
	if err != nil {
		t.Fatalf("parsePostFlags() error = %v", err)
	}
	if !flags.dryRun || !flags.force {
		t.Errorf("flags = %+v, want dryRun and force set", flags)
	}
}
