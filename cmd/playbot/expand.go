package main

import (
	"context"

	"github.com/spf13/cobra"

	"playbot/internal/commands"
)

var expandCmd = &cobra.Command{
	Use:   "expand [file] [key=value...]",
	Short: "Expand macros to their raw desugared form",
	Long:  commands.ExpandHelp().Render(),
	Run: runPipeline(func(r *commands.Runner) func(context.Context, commands.Invocation) (string, error) {
		return r.Expand
	}),
}

func init() {
	rootCmd.AddCommand(expandCmd)
}
