package main

import "os"

func main() {
	// cobra has already printed the error and usage by the time Execute
	// returns; only the exit code is left to set
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
