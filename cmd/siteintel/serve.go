package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/site-intel/internal/server"
)

var (
	servePort       int
	serveUseBrowser bool
	serveVerbose    bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for running website analyses and retrieving stored reports.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().BoolVar(&serveUseBrowser, "use-browser", false, "Use headless browser for SPA sites")
	serveCmd.Flags().BoolVarP(&serveVerbose, "verbose", "v", false, "Print detailed progress information")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	// Report storage is optional for the server
	databaseURL := os.Getenv("DATABASE_URL")

	cfg := server.Config{
		Port:        servePort,
		DatabaseURL: databaseURL,
		UseBrowser:  serveUseBrowser,
		Verbose:     serveVerbose,
	}

	srv, err := server.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
