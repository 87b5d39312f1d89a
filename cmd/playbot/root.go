package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"playbot/internal/commands"
	"playbot/internal/config"
	"playbot/internal/flags"
	"playbot/internal/format"
	"playbot/internal/logging"
	"playbot/internal/playground"
	"playbot/internal/version"
)

var (
	// configDirFlag is the CLI --config-dir flag value
	configDirFlag string
)

var rootCmd = &cobra.Command{
	Use:   "playbot",
	Short: "playbot - playground command pipeline",
	Long: `playbot runs code snippets through the playground's analysis backends:
the Miri undefined-behavior interpreter, the macro expander, the Clippy linter
and rustfmt (local tool first, remote fallback).

Snippets come from a file argument or stdin; command flags ride along as
trailing key=value arguments, e.g.:

  playbot clippy snippet.rs edition=2021
  echo '1 + 1' | playbot miri`,
	Version: version.Version,
}

func init() {
	rootCmd.SetVersionTemplate("playbot version {{.Version}}\n")
	rootCmd.PersistentFlags().StringVar(&configDirFlag, "config-dir", "",
		"Directory containing playbot.yaml (default: standard config locations)")
}

// setup loads config and builds the shared pipeline runner
func setup() (*commands.Runner, error) {
	cfg, err := config.LoadConfig(configDirFlag)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	logger := logging.NewLogger(logging.Config{
		Format: logging.Format(cfg.Logging.Format),
		Level:  logging.LogLevel(cfg.Logging.Level),
	})

	client := playground.NewClient(
		cfg.Playground.BaseURL,
		time.Duration(cfg.Playground.TimeoutMs)*time.Millisecond,
		logger,
	)
	local := &format.LocalRustfmt{Command: cfg.Rustfmt.Command}

	return commands.NewRunner(client, local, logger), nil
}

// invocationFromArgs splits the command arguments into the flag bag and the
// code source. Arguments containing '=' are key=value flags; the single
// remaining argument, if any, names the snippet file. No file means stdin.
func invocationFromArgs(args []string, stdin io.Reader) (commands.Invocation, error) {
	var inv commands.Invocation
	var file string

	for _, arg := range args {
		if key, value, ok := strings.Cut(arg, "="); ok {
			inv.Flags = append(inv.Flags, flags.Pair{Key: key, Value: value})
			continue
		}
		if file != "" {
			return inv, fmt.Errorf("unexpected argument %q (snippet file already given)", arg)
		}
		file = arg
	}

	var raw []byte
	var err error
	if file != "" {
		raw, err = os.ReadFile(file)
	} else {
		raw, err = io.ReadAll(stdin)
	}
	if err != nil {
		return inv, fmt.Errorf("reading snippet: %w", err)
	}

	inv.Code = string(raw)
	return inv, nil
}

// runPipeline adapts one invocation pipeline to a cobra Run function.
// Hard errors surface as a generic failure message, never a partial reply.
func runPipeline(op func(*commands.Runner) func(context.Context, commands.Invocation) (string, error)) func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, args []string) {
		runner, err := setup()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		inv, err := invocationFromArgs(args, cmd.InOrStdin())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		out, err := op(runner)(cmd.Context(), inv)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Something went wrong talking to the playground, please try again later")
			os.Exit(1)
		}

		fmt.Println(out)
	}
}
