package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/site-intel/internal/config"
	"github.com/jonathan/site-intel/internal/crawl"
	"github.com/jonathan/site-intel/internal/db"
	"github.com/jonathan/site-intel/internal/fetch"
	"github.com/jonathan/site-intel/internal/observability"
	"github.com/jonathan/site-intel/internal/schemas"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a business website and produce an intelligence report",
	Long:  "Crawls a business website starting from its homepage, discovers and prioritizes related pages, extracts business facts from each page, and writes the aggregated report as JSON.",
	RunE:  runAnalyze,
}

var (
	analyzeURL        string
	analyzeMaxPages   int
	analyzeDelayMs    int
	analyzeOutput     string
	analyzeConfigPath string
	analyzeUseBrowser bool
	analyzeVerbose    bool
	analyzeSkipStore  bool
	analyzeSkipCache  bool
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeURL, "url", "u", "", "Website homepage URL (required unless set in config)")
	analyzeCmd.Flags().IntVar(&analyzeMaxPages, "max-pages", 0, "Maximum pages to crawl, homepage included (default: 6, max: 10)")
	analyzeCmd.Flags().IntVar(&analyzeDelayMs, "delay-ms", 0, "Delay between page requests in milliseconds (default: 1000)")
	analyzeCmd.Flags().StringVarP(&analyzeOutput, "out", "o", "", "Output file path (default: stdout)")
	analyzeCmd.Flags().StringVar(&analyzeConfigPath, "config", "", "Path to JSON config file")
	analyzeCmd.Flags().BoolVar(&analyzeUseBrowser, "use-browser", false, "Use headless browser for SPA sites")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print detailed progress information")
	analyzeCmd.Flags().BoolVar(&analyzeSkipStore, "no-store", false, "Do not persist the report even when a database is configured")
	analyzeCmd.Flags().BoolVar(&analyzeSkipCache, "skip-cache", false, "Fetch every page fresh, bypassing the crawled-page cache")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, _ []string) error {
	cfg := config.Config{
		URL:        analyzeURL,
		MaxPages:   analyzeMaxPages,
		DelayMs:    analyzeDelayMs,
		OutputPath: analyzeOutput,
		UseBrowser: analyzeUseBrowser,
		Verbose:    analyzeVerbose,
		SkipCache:  analyzeSkipCache,
	}

	// Config file values act as defaults for unset flags
	defaults := config.Config{}
	if analyzeConfigPath != "" {
		fileCfg, err := config.LoadConfig(analyzeConfigPath)
		if err != nil {
			return err
		}
		defaults = *fileCfg
	}
	cfg = cfg.MergeWithDefaults(defaults)

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}

	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.URL == "" {
		return fmt.Errorf("website URL required: set --url flag or 'url' in the config file")
	}

	ctx := context.Background()

	var database *db.DB
	if cfg.DatabaseURL != "" {
		var err error
		database, err = db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer database.Close()
	}

	analyzer := crawl.New(crawl.Options{
		MaxPages: cfg.MaxPages,
		Delay:    cfg.Delay(),
		Fetch: &fetch.Options{
			Timeout:   cfg.Timeout(),
			UserAgent: fetch.DefaultUserAgent,
		},
		UseBrowser: cfg.UseBrowser,
		Verbose:    cfg.Verbose,
		DB:         database,
		CacheTTL:   cfg.CacheTTL(),
		SkipCache:  cfg.SkipCache,
	})

	report, err := analyzer.Analyze(ctx, cfg.URL)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	if cfg.Verbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintReportSummary(report)
		printer.PrintServices(report.Services)
		printer.PrintContacts(report.ContactInfo)
		printer.PrintCrawlErrors(report.Metadata.Errors)
	}

	// Schema validation is advisory: a failing report is still written out
	if err := schemas.ValidateReport(report); err != nil {
		var loadErr *schemas.SchemaLoadError
		if !errors.As(err, &loadErr) {
			fmt.Fprintf(os.Stderr, "Warning: report failed schema validation: %v\n", err)
		}
	}

	payload, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	if cfg.OutputPath != "" {
		if err := os.WriteFile(cfg.OutputPath, payload, 0644); err != nil {
			return fmt.Errorf("failed to write report file %s: %w", cfg.OutputPath, err)
		}
		_, _ = fmt.Fprintf(os.Stdout, "Report written to %s\n", cfg.OutputPath)
	} else {
		_, _ = fmt.Fprintln(os.Stdout, string(payload))
	}

	if database != nil && !analyzeSkipStore {
		id, err := database.SaveReport(ctx, report)
		if err != nil {
			return fmt.Errorf("failed to store report: %w", err)
		}
		_, _ = fmt.Fprintf(os.Stdout, "Report stored with ID %s\n", id)
	}

	return nil
}
