package main

import (
	"fmt"
	"io"
	"sort"
	"strings"

	flag "github.com/spf13/pflag"
)

// Shell represents a supported shell for completion generation.
type Shell string

// Supported shells for completion.
const (
	ShellBash Shell = "bash"
	ShellZsh  Shell = "zsh"
	ShellFish Shell = "fish"
)

// ErrUnsupportedShell is returned when an unknown shell is requested.
var ErrUnsupportedShell = fmt.Errorf("unsupported shell")

// flagDef describes a flag for completion purposes.
type flagDef struct {
	Long  string // --output
	Short string // -o (empty if none)
	Desc  string // help text
	IsDir bool   // directory completion
}

// commandDef describes a command for completion.
type commandDef struct {
	Name  string
	Desc  string
	Flags []flagDef
}

// dirFlags lists flags that complete to directories.
var dirFlags = map[string]bool{
	"output":    true,
	"work-dir":  true,
	"build-dir": true,
}

// extractFlags pulls flag definitions out of a pflag.FlagSet so the
// completion scripts share one source of truth with the parser.
func extractFlags(fs *flag.FlagSet) []flagDef {
	var flags []flagDef
	fs.VisitAll(func(f *flag.Flag) {
		flags = append(flags, flagDef{
			Long:  f.Name,
			Short: f.Shorthand,
			Desc:  f.Usage,
			IsDir: dirFlags[f.Name],
		})
	})
	sort.Slice(flags, func(i, j int) bool { return flags[i].Long < flags[j].Long })
	return flags
}

// getCommands returns the command registry for completion.
func getCommands() []commandDef {
	var lf logosFlags
	var pf packFlags
	var of postFlags
	var df doctorFlags

	return []commandDef{
		{Name: "logos", Desc: "Render landscape logo SVGs to PNG", Flags: extractFlags(buildLogosFlagSet(&lf, io.Discard))},
		{Name: "pack", Desc: "Package the Lambda function into a zip archive", Flags: extractFlags(buildPackFlagSet(&pf, io.Discard))},
		{Name: "post", Desc: "Post today's landscape pick to Slack", Flags: extractFlags(buildPostFlagSet(&of, io.Discard))},
		{Name: "doctor", Desc: "Diagnose the environment", Flags: extractFlags(buildDoctorFlagSet(&df, io.Discard))},
		{Name: "completion", Desc: "Generate shell completion script"},
		{Name: "version", Desc: "Show version information"},
		{Name: "help", Desc: "Show help for a command"},
	}
}

// GenerateCompletion writes a shell completion script to w.
func GenerateCompletion(w io.Writer, shell Shell) error {
	switch shell {
	case ShellBash:
		return generateBash(w)
	case ShellZsh:
		return generateZsh(w)
	case ShellFish:
		return generateFish(w)
	default:
		return fmt.Errorf("%w: %q (supported: bash, zsh, fish)", ErrUnsupportedShell, shell)
	}
}

// runCompletion handles the completion command.
func runCompletion(args []string, env *Environment) error {
	if len(args) == 0 {
		printCompletionUsage(env.Stdout)
		return nil
	}
	return GenerateCompletion(env.Stdout, Shell(args[0]))
}

// printCompletionUsage prints help for the completion command.
func printCompletionUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: ocnad completion <shell>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate shell completion script for the specified shell.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Supported shells:")
	fmt.Fprintln(w, "  bash  Bash completion script")
	fmt.Fprintln(w, "  zsh   Zsh completion script")
	fmt.Fprintln(w, "  fish  Fish completion script")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Installation:")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Bash:")
	fmt.Fprintln(w, "    # Add to ~/.bashrc:")
	fmt.Fprintln(w, "    eval \"$(ocnad completion bash)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Zsh:")
	fmt.Fprintln(w, "    # Add to ~/.zshrc (before compinit):")
	fmt.Fprintln(w, "    eval \"$(ocnad completion zsh)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Fish:")
	fmt.Fprintln(w, "    ocnad completion fish > ~/.config/fish/completions/ocnad.fish")
}

// flagWords renders the --long/-s completion word list for a command.
func flagWords(flags []flagDef) string {
	var words []string
	for _, f := range flags {
		words = append(words, "--"+f.Long)
		if f.Short != "" {
			words = append(words, "-"+f.Short)
		}
	}
	return strings.Join(words, " ")
}

// generateBash writes the bash completion script.
func generateBash(w io.Writer) error {
	commands := getCommands()

	var names []string
	for _, c := range commands {
		names = append(names, c.Name)
	}

	fmt.Fprintln(w, "# bash completion for ocnad")
	fmt.Fprintln(w, "_ocnad() {")
	fmt.Fprintln(w, "    local cur prev cmd")
	fmt.Fprintln(w, "    COMPREPLY=()")
	fmt.Fprintln(w, "    cur=\"${COMP_WORDS[COMP_CWORD]}\"")
	fmt.Fprintln(w, "    prev=\"${COMP_WORDS[COMP_CWORD-1]}\"")
	fmt.Fprintln(w, "    cmd=\"${COMP_WORDS[1]}\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "    if [[ $COMP_CWORD -eq 1 ]]; then")
	fmt.Fprintf(w, "        COMPREPLY=( $(compgen -W %q -- \"$cur\") )\n", strings.Join(names, " "))
	fmt.Fprintln(w, "        return 0")
	fmt.Fprintln(w, "    fi")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "    case \"$cmd\" in")
	for _, c := range commands {
		if len(c.Flags) == 0 {
			continue
		}
		fmt.Fprintf(w, "    %s)\n", c.Name)
		for _, f := range c.Flags {
			if f.IsDir {
				fmt.Fprintf(w, "        if [[ \"$prev\" == \"--%s\"", f.Long)
				if f.Short != "" {
					fmt.Fprintf(w, " || \"$prev\" == \"-%s\"", f.Short)
				}
				fmt.Fprintln(w, " ]]; then")
				fmt.Fprintln(w, "            COMPREPLY=( $(compgen -d -- \"$cur\") )")
				fmt.Fprintln(w, "            return 0")
				fmt.Fprintln(w, "        fi")
			}
		}
		fmt.Fprintf(w, "        COMPREPLY=( $(compgen -W %q -- \"$cur\") )\n", flagWords(c.Flags))
		fmt.Fprintln(w, "        ;;")
	}
	fmt.Fprintln(w, "    completion)")
	fmt.Fprintln(w, "        COMPREPLY=( $(compgen -W \"bash zsh fish\" -- \"$cur\") )")
	fmt.Fprintln(w, "        ;;")
	fmt.Fprintln(w, "    esac")
	fmt.Fprintln(w, "    return 0")
	fmt.Fprintln(w, "}")
	fmt.Fprintln(w, "complete -F _ocnad ocnad")
	return nil
}

// generateZsh writes the zsh completion script.
func generateZsh(w io.Writer) error {
	commands := getCommands()

	fmt.Fprintln(w, "#compdef ocnad")
	fmt.Fprintln(w, "# zsh completion for ocnad")
	fmt.Fprintln(w, "_ocnad() {")
	fmt.Fprintln(w, "    local -a commands")
	fmt.Fprintln(w, "    commands=(")
	for _, c := range commands {
		fmt.Fprintf(w, "        '%s:%s'\n", c.Name, strings.ReplaceAll(c.Desc, "'", ""))
	}
	fmt.Fprintln(w, "    )")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "    if (( CURRENT == 2 )); then")
	fmt.Fprintln(w, "        _describe 'command' commands")
	fmt.Fprintln(w, "        return")
	fmt.Fprintln(w, "    fi")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "    case \"$words[2]\" in")
	for _, c := range commands {
		if len(c.Flags) == 0 {
			continue
		}
		fmt.Fprintf(w, "    %s)\n", c.Name)
		fmt.Fprintln(w, "        _arguments \\")
		for i, f := range c.Flags {
			spec := fmt.Sprintf("'--%s[%s]", f.Long, strings.ReplaceAll(f.Desc, "'", ""))
			if f.IsDir {
				spec += ":directory:_files -/"
			}
			spec += "'"
			if i < len(c.Flags)-1 {
				spec += " \\"
			}
			fmt.Fprintf(w, "            %s\n", spec)
		}
		fmt.Fprintln(w, "        ;;")
	}
	fmt.Fprintln(w, "    completion)")
	fmt.Fprintln(w, "        _values 'shell' bash zsh fish")
	fmt.Fprintln(w, "        ;;")
	fmt.Fprintln(w, "    esac")
	fmt.Fprintln(w, "}")
	fmt.Fprintln(w, "_ocnad \"$@\"")
	return nil
}

// generateFish writes the fish completion script.
func generateFish(w io.Writer) error {
	commands := getCommands()

	fmt.Fprintln(w, "# fish completion for ocnad")
	fmt.Fprintln(w, "complete -c ocnad -f")
	for _, c := range commands {
		fmt.Fprintf(w, "complete -c ocnad -n '__fish_use_subcommand' -a %s -d %q\n", c.Name, c.Desc)
		for _, f := range c.Flags {
			line := fmt.Sprintf("complete -c ocnad -n '__fish_seen_subcommand_from %s' -l %s", c.Name, f.Long)
			if f.Short != "" {
				line += " -s " + f.Short
			}
			if f.IsDir {
				line += " -r -a '(__fish_complete_directories)'"
			}
			line += fmt.Sprintf(" -d %q", f.Desc)
			fmt.Fprintln(w, line)
		}
	}
	fmt.Fprintln(w, "complete -c ocnad -n '__fish_seen_subcommand_from completion' -a 'bash zsh fish'")
	return nil
}
