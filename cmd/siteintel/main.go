// Package main provides the entry point for the site-intel CLI and API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "siteintel",
	Short: "Website business intelligence analyzer",
	Long:  "Siteintel crawls a business website, extracts its services, products, contacts, and team, classifies the business type, and produces a scored intelligence report.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
