// Package cmd implements the reveal CLI commands.
//
// The command structure follows a root command that dispatches to
// subcommands (tree, mask, preview, version).
package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/go-drift/reveal/cmd/reveal/internal/config"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

// Env is what a command runs against.
type Env struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	// ConfigPath is the --config value, empty to search for reveal.yaml.
	ConfigPath string
	Log        *slog.Logger
}

// Config loads the configuration named by --config, or reveal.yaml found
// from the working directory upwards. No file yields the defaults.
func (e *Env) Config() (*config.Config, error) {
	if e.ConfigPath != "" {
		return config.Load(e.ConfigPath)
	}
	dir, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	if path, ok := config.FindFile(dir); ok {
		e.Log.Debug("using config", "path", path)
		return config.Load(path)
	}
	return config.LoadOptional(dir)
}

// Command represents a CLI command.
type Command struct {
	Name        string
	Short       string
	Long        string
	Usage       string
	Run         func(env *Env, args []string) error
	SubCommands []*Command
}

var rootCmd = &Command{
	Name:  "reveal",
	Short: "reveal - pointer-reactive masks and JSON trees",
	Long: `reveal inspects reveal masks and renders JSON documents as trees.

Mask settings are read from reveal.yaml in the current directory or
one of its parents, or from the file given with --config.

Use "reveal <command> --help" for more information about a command.`,
	Usage: "reveal <command> [flags]",
}

// Commands registered with the CLI.
var commands = make(map[string]*Command)

// RegisterCommand adds a command to the CLI.
func RegisterCommand(cmd *Command) {
	commands[cmd.Name] = cmd
	rootCmd.SubCommands = append(rootCmd.SubCommands, cmd)
}

// Execute runs the CLI with the process arguments and standard streams.
func Execute() error {
	return Run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
}

// Run runs the CLI with the given arguments and streams.
func Run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	env := &Env{Stdin: stdin, Stdout: stdout, Stderr: stderr}
	verbose := false

	// Handle global flags
	var filteredArgs []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch arg {
		case "-h", "--help", "help":
			if len(filteredArgs) == 0 {
				printHelp(stdout, rootCmd)
				return nil
			}
			filteredArgs = append(filteredArgs, arg)
		case "-v", "--version":
			if len(filteredArgs) == 0 {
				return runVersion(env, nil)
			}
			filteredArgs = append(filteredArgs, arg)
		case "--verbose":
			verbose = true
		case "--config":
			if i+1 >= len(args) {
				return fmt.Errorf("--config requires a file path")
			}
			env.ConfigPath = args[i+1]
			i++
		default:
			if strings.HasPrefix(arg, "--config=") {
				env.ConfigPath = strings.TrimPrefix(arg, "--config=")
				continue
			}
			filteredArgs = append(filteredArgs, arg)
		}
	}
	args = filteredArgs

	env.Log = setupLogging(stderr, verbose)

	if len(args) == 0 {
		printHelp(stdout, rootCmd)
		return nil
	}

	// Find and execute the command
	cmdName := args[0]
	cmd, ok := commands[cmdName]
	if !ok {
		fmt.Fprintf(stderr, "Error: unknown command %q\n\n", cmdName)
		printHelp(stderr, rootCmd)
		return fmt.Errorf("unknown command: %s", cmdName)
	}

	// Check for help flag on subcommand
	cmdArgs := args[1:]
	for _, arg := range cmdArgs {
		if arg == "-h" || arg == "--help" || arg == "help" {
			printCommandHelp(stdout, cmd)
			return nil
		}
	}

	return cmd.Run(env, cmdArgs)
}

func printHelp(w io.Writer, cmd *Command) {
	fmt.Fprintln(w, cmd.Long)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintf(w, "  %s\n", cmd.Usage)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	for _, sub := range cmd.SubCommands {
		fmt.Fprintf(w, "  %-14s %s\n", sub.Name, sub.Short)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -h, --help           Show help for a command")
	fmt.Fprintln(w, "  -v, --version        Show version information")
	fmt.Fprintln(w, "  --config FILE        Use FILE instead of searching for reveal.yaml")
	fmt.Fprintln(w, "  --verbose            Log debug output to stderr")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Examples:")
	fmt.Fprintln(w, "  reveal tree contact.json           Print a JSON document as a tree")
	fmt.Fprintln(w, "  reveal mask --at 120,80            Show the mask variables after a pointer move")
	fmt.Fprintln(w, "  reveal preview --out mask.webp     Render the mask to an image")
}

func printCommandHelp(w io.Writer, cmd *Command) {
	fmt.Fprintln(w, cmd.Long)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintf(w, "  %s\n", cmd.Usage)
}

// flagValue returns the value following args[i], or an error naming flag.
func flagValue(args []string, i int, flag string) (string, error) {
	if i+1 >= len(args) || strings.HasPrefix(args[i+1], "--") {
		return "", fmt.Errorf("%s requires a value", flag)
	}
	return args[i+1], nil
}
