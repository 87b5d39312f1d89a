package main

import (
	"context"

	"github.com/spf13/cobra"

	"playbot/internal/commands"
)

var miriCmd = &cobra.Command{
	Use:   "miri [file] [key=value...]",
	Short: "Detect undefined behavior with the Miri interpreter",
	Long:  commands.MiriHelp().Render(),
	Run: runPipeline(func(r *commands.Runner) func(context.Context, commands.Invocation) (string, error) {
		return r.Miri
	}),
}

func init() {
	rootCmd.AddCommand(miriCmd)
}
