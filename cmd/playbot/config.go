package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"playbot/internal/config"
)

var configFormat string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage playbot configuration",
	Long:  "View the playbot configuration loaded from playbot.yaml and PLAYBOT_* environment overrides",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Run:   runConfigShow,
}

func init() {
	configShowCmd.Flags().StringVar(&configFormat, "format", "human", "Output format (json, human)")
	configCmd.AddCommand(configShowCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) {
	cfg, err := config.LoadConfig(configDirFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if configFormat == "json" {
		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(string(data))
		return
	}

	fmt.Printf("Playground base URL: %s\n", cfg.Playground.BaseURL)
	fmt.Printf("Playground timeout:  %dms\n", cfg.Playground.TimeoutMs)
	fmt.Printf("Rustfmt command:     %s\n", cfg.Rustfmt.Command)
	fmt.Printf("Log format:          %s\n", cfg.Logging.Format)
	fmt.Printf("Log level:           %s\n", cfg.Logging.Level)
}
