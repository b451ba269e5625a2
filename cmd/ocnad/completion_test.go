package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestGenerateCompletion(t *testing.T) {
	tests := []struct {
		shell Shell
		want  []string
	}{
		{shell: ShellBash, want: []string{"_ocnad()", "complete -F _ocnad ocnad", "--no-compress", "logos"}},
		{shell: ShellZsh, want: []string{"#compdef ocnad", "_describe", "--workers"}},
		{shell: ShellFish, want: []string{"complete -c ocnad", "__fish_seen_subcommand_from logos", "dry-run"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.shell), func(t *testing.T) {
			var buf bytes.Buffer
			if err := GenerateCompletion(&buf, tt.shell); err != nil {
				t.Fatalf("GenerateCompletion(%s) error = %v", tt.shell, err)
			}
			for _, want := range tt.want {
				if !strings.Contains(buf.String(), want) {
					t.Errorf("%s script missing %q", tt.shell, want)
				}
			}
		})
	}
}

func TestGenerateCompletion_Unsupported(t *testing.T) {
	var buf bytes.Buffer
	err := GenerateCompletion(&buf, Shell("tcsh"))
	if !errors.Is(err, ErrUnsupportedShell) {
		t.Errorf("GenerateCompletion(tcsh) error = %v, want ErrUnsupportedShell", err)
	}
}

func TestRunCompletion_NoArgs(t *testing.T) {
	env, stdout, _ := testEnv()
	if err := runCompletion(nil, env); err != nil {
		t.Fatalf("runCompletion() error = %v", err)
	}
	if !strings.Contains(stdout.String(), "Usage: ocnad completion") {
		t.Errorf("stdout = %q", stdout.String())
	}
}

func TestGetCommands(t *testing.T) {
	commands := getCommands()

	byName := map[string]commandDef{}
	for _, c := range commands {
		byName[c.Name] = c
	}

	for _, name := range []string{"logos", "pack", "post", "doctor", "completion", "version", "help"} {
		if _, ok := byName[name]; !ok {
			t.Errorf("command %q missing from registry", name)
		}
	}

	var hasOutput bool
	for _, f := range byName["logos"].Flags {
		if f.Long == "output" {
			hasOutput = true
			if !f.IsDir {
				t.Error("output flag should complete to directories")
			}
		}
	}
	if !hasOutput {
		t.Error("logos flags missing --output")
	}
}
