// Package cmd implements the wincore CLI commands.
//
// A root command dispatches to subcommands (config, demo) registered from
// init functions.
package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	werrors "github.com/go-drift/wincore/pkg/errors"
)

// Version information set at build time.
var (
	Version   = "0.3.0-dev"
	BuildTime = "unknown"
)

// logLevel is raised to debug by --debug.
var logLevel = slog.LevelInfo

// Command represents a CLI command.
type Command struct {
	Name  string
	Short string
	Long  string
	Usage string
	Run   func(args []string) error
}

var rootCmd = &Command{
	Name:  "wincore",
	Short: "wincore - widget tree and event routing for desktop windows",
	Long: `wincore drives a tree of widgets inside a single window: layout,
painting, pointer capture, keyboard focus and default/escape activation.

Use "wincore <command> --help" for more information about a command.`,
	Usage: "wincore <command> [flags]",
}

// Commands registered with the CLI, in registration order.
var (
	commands = make(map[string]*Command)
	ordered  []*Command
)

// RegisterCommand adds a command to the CLI.
func RegisterCommand(cmd *Command) {
	commands[cmd.Name] = cmd
	ordered = append(ordered, cmd)
}

// Execute runs the CLI with os.Args.
func Execute() error {
	return execute(os.Args[1:], os.Stdout)
}

func execute(args []string, out io.Writer) error {
	var filtered []string
	for _, arg := range args {
		switch arg {
		case "-h", "--help", "help":
			if len(filtered) == 0 {
				printHelp(out, rootCmd)
				return nil
			}
			filtered = append(filtered, arg)
		case "-v", "--version", "version":
			if len(filtered) == 0 {
				fmt.Fprintf(out, "wincore version %s (built %s)\n", Version, BuildTime)
				return nil
			}
			filtered = append(filtered, arg)
		case "--debug":
			logLevel = slog.LevelDebug
			werrors.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})))
		default:
			filtered = append(filtered, arg)
		}
	}

	if len(filtered) == 0 {
		printHelp(out, rootCmd)
		return nil
	}

	name := filtered[0]
	cmd, ok := commands[name]
	if !ok {
		printHelp(out, rootCmd)
		return fmt.Errorf("unknown command: %s", name)
	}

	cmdArgs := filtered[1:]
	for _, arg := range cmdArgs {
		if arg == "-h" || arg == "--help" || arg == "help" {
			printCommandHelp(out, cmd)
			return nil
		}
	}
	return cmd.Run(cmdArgs)
}

func printHelp(out io.Writer, cmd *Command) {
	fmt.Fprintln(out, cmd.Long)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Usage:")
	fmt.Fprintf(out, "  %s\n", cmd.Usage)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Commands:")
	for _, sub := range ordered {
		fmt.Fprintf(out, "  %-14s %s\n", sub.Name, sub.Short)
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Flags:")
	fmt.Fprintln(out, "  -h, --help           Show help for a command")
	fmt.Fprintln(out, "  -v, --version        Show version information")
	fmt.Fprintln(out, "  --debug              Log debug records to stderr")
}

func printCommandHelp(out io.Writer, cmd *Command) {
	fmt.Fprintln(out, cmd.Long)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Usage:")
	fmt.Fprintf(out, "  %s\n", cmd.Usage)
}
