package main

import (
	"context"

	"github.com/spf13/cobra"

	"playbot/internal/commands"
)

var fmtCmd = &cobra.Command{
	Use:   "fmt [file] [key=value...]",
	Short: "Format code using rustfmt",
	Long:  commands.FmtHelp().Render(),
	Run: runPipeline(func(r *commands.Runner) func(context.Context, commands.Invocation) (string, error) {
		return r.Fmt
	}),
}

func init() {
	rootCmd.AddCommand(fmtCmd)
}
