package main

import (
	"context"

	"github.com/spf13/cobra"

	"playbot/internal/commands"
)

var clippyCmd = &cobra.Command{
	Use:   "clippy [file] [key=value...]",
	Short: "Catch common mistakes with the Clippy linter",
	Long:  commands.ClippyHelp().Render(),
	Run: runPipeline(func(r *commands.Runner) func(context.Context, commands.Invocation) (string, error) {
		return r.Clippy
	}),
}

func init() {
	rootCmd.AddCommand(clippyCmd)
}
