// Package main provides the entry point for the job chat agent HTTP server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "jobchat",
	Short: "Job chat agent HTTP server",
	Long:  "jobchat answers natural-language questions about job postings by combining a user's profile with a tool-calling model agent backed by the job board database.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
