// Package main provides the entry point for the HTASO evaluation tracker.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "evaltracker",
	Short: "HTASO umpire evaluation tracker",
	Long:  "Evaltracker serves the umpire training evaluation form, scores submissions on the HTASO scale, and exports reports as PDF and Word documents.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
