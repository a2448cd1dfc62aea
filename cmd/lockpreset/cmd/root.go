// Package cmd implements the lockpreset CLI commands.
//
// A root command dispatches to subcommands (check, show, init). Each
// subcommand registers itself from an init function.
package cmd

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/go-drift/screenlock/cmd/lockpreset/internal/project"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

// Command represents a CLI command.
type Command struct {
	Name  string
	Short string
	Long  string
	Usage string
	Run   func(args []string) error
}

var rootCmd = &Command{
	Name:  "lockpreset",
	Short: "Manage screen lock presets",
	Long: `lockpreset validates and inspects the YAML presets used to configure
screen locks.

Use "lockpreset <command> --help" for more information about a command.`,
	Usage: "lockpreset <command> [flags]",
}

// Commands registered with the CLI.
var commands = make(map[string]*Command)

// out receives command output.
var out io.Writer = os.Stdout

// workDir returns the directory commands resolve the project from.
var workDir = os.Getwd

// RegisterCommand adds a command to the CLI.
func RegisterCommand(cmd *Command) {
	commands[cmd.Name] = cmd
}

// Execute runs the CLI with the given arguments (without the program name).
func Execute(args []string) error {
	if len(args) == 0 {
		printHelp()
		return nil
	}

	switch args[0] {
	case "-h", "--help", "help":
		printHelp()
		return nil
	case "-v", "--version", "version":
		fmt.Fprintf(out, "lockpreset version %s (built %s)\n", Version, BuildTime)
		return nil
	}

	cmd, ok := commands[args[0]]
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown command %q\n\n", args[0])
		printHelp()
		return fmt.Errorf("unknown command: %s", args[0])
	}

	cmdArgs := args[1:]
	for _, arg := range cmdArgs {
		if arg == "-h" || arg == "--help" {
			printCommandHelp(cmd)
			return nil
		}
	}

	return cmd.Run(cmdArgs)
}

// resolveProject finds the enclosing Go module and its preset settings.
func resolveProject() (*project.Resolved, error) {
	dir, err := workDir()
	if err != nil {
		return nil, err
	}
	root, err := project.FindProjectRoot(dir)
	if err != nil {
		return nil, err
	}
	return project.Resolve(root)
}

func printHelp() {
	fmt.Fprintln(out, rootCmd.Long)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Usage:")
	fmt.Fprintf(out, "  %s\n", rootCmd.Usage)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Commands:")
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(out, "  %-10s %s\n", name, commands[name].Short)
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Examples:")
	fmt.Fprintln(out, "  lockpreset check                 Validate every preset in the project")
	fmt.Fprintln(out, "  lockpreset show presets/vault.yaml")
	fmt.Fprintln(out, "  lockpreset init --blur 12 presets/vault.yaml")
}

func printCommandHelp(cmd *Command) {
	fmt.Fprintln(out, cmd.Long)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Usage:")
	fmt.Fprintf(out, "  %s\n", cmd.Usage)
}
