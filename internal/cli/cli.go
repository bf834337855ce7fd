package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/venkateshgovinda22-lab/mersey-job-scraper/internal/logger"
	"github.com/venkateshgovinda22-lab/mersey-job-scraper/internal/notifier"
	"github.com/venkateshgovinda22-lab/mersey-job-scraper/internal/pipeline"
	"github.com/venkateshgovinda22-lab/mersey-job-scraper/internal/retry"
	"github.com/venkateshgovinda22-lab/mersey-job-scraper/internal/rota"
	"github.com/venkateshgovinda22-lab/mersey-job-scraper/internal/scraper"
	"github.com/venkateshgovinda22-lab/mersey-job-scraper/internal/store"
)

// Process exit codes. Configuration and usage problems exit 1 before any
// scraping happens; failures after a valid start, such as exhausted retries
// against the page or store, exit 2.
const (
	ExitSuccess = 0
	ExitConfig  = 1
	ExitFailure = 2
)

const DefaultRole = "Doctor"

var (
	flagRole      string
	flagURL       string
	flagSelector  string
	flagDBPath    string
	flagAttempts  int
	flagBaseDelay time.Duration
	flagDryRun    bool
	flagFormat    string
	flagVerbose   bool
)

// runError marks a failure that happened after configuration was accepted.
type runError struct {
	err error
}

func (e *runError) Error() string { return e.err.Error() }
func (e *runError) Unwrap() error { return e.err }

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mersey-jobs",
		Short: "Check the hospital rota for newly posted jobs",
		Long: `Scrapes the weekly rota table, extracts jobs for a target role,
records the ones not seen in previous runs, and sends a digest of the delta.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runCheck,
	}

	cmd.Flags().StringVar(&flagRole, "role", DefaultRole, "Target role label to extract")
	cmd.Flags().StringVar(&flagURL, "url", "", "Rota page URL (required)")
	cmd.Flags().StringVar(&flagSelector, "table-selector", scraper.DefaultTableSelector, "CSS selector for the rota table")
	cmd.Flags().StringVar(&flagDBPath, "db", "~/.local/share/mersey-jobs/jobs.db", "Path to the jobs database")
	cmd.Flags().IntVar(&flagAttempts, "attempts", retry.DefaultAttempts, "Retry attempts for external calls")
	cmd.Flags().DurationVar(&flagBaseDelay, "base-delay", retry.DefaultBaseDelay, "Base backoff delay for retries")
	cmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "Use an in-memory store and print the digest instead of sending")
	cmd.Flags().StringVar(&flagFormat, "format", "text", "Output format: text or json")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")

	cmd.MarkFlagRequired("url") // nolint:errcheck

	return cmd
}

// runCheck is the main command logic
func runCheck(cmd *cobra.Command, args []string) error {
	role := strings.TrimSpace(flagRole)
	if role == "" {
		return fmt.Errorf("--role must not be empty")
	}

	format := OutputFormat(strings.ToLower(flagFormat))
	if format != FormatText && format != FormatJSON {
		return fmt.Errorf("invalid format: %s (must be 'text' or 'json')", flagFormat)
	}

	if flagVerbose {
		logger.SetDefault(logger.New(logger.LevelDebug, os.Stderr))
	}

	retryCfg := retry.Config{Attempts: flagAttempts, BaseDelay: flagBaseDelay}

	// The sender is built before anything is scraped so that missing
	// credentials abort the run up front.
	var sender notifier.Sender
	if flagDryRun {
		sender = notifier.NewDryRunSender()
	} else {
		tw, err := notifier.NewTwitterSender()
		if err != nil {
			return fmt.Errorf("initializing notifier: %w", err)
		}
		sender = tw
	}
	reporter := notifier.NewReporter(sender)

	var st store.Store
	if flagDryRun {
		st = store.NewMemory()
	} else {
		sqlite, err := store.OpenSQLite(flagDBPath)
		if err != nil {
			return fmt.Errorf("opening store: %w", err)
		}
		st = sqlite
	}
	defer st.Close() // nolint:errcheck

	ctx := cmd.Context()
	sc := scraper.New(flagURL, flagSelector, retryCfg)

	logger.Info("run started", logger.Fields{"url": flagURL, "role": role})

	rows, err := sc.FetchRows(ctx)
	if err != nil {
		reporter.ReportFailure(err)
		return &runError{fmt.Errorf("fetching rota rows: %w", err)}
	}

	candidates, _ := rota.Walk(rows, role)
	logger.Add("candidates", int64(len(candidates)))

	newRecords, err := pipeline.New(st, retryCfg).Process(ctx, candidates)
	if err != nil {
		reporter.ReportFailure(err)
		return &runError{fmt.Errorf("recording jobs: %w", err)}
	}

	reporter.Report(newRecords)

	logger.Info("run finished", logger.Fields{
		"rows":       len(rows),
		"candidates": len(candidates),
		"new":        len(newRecords),
	})

	result := &Result{
		CheckedAt: time.Now().UTC(),
		Role:      role,
		NewJobs:   newRecords,
		JobCount:  len(newRecords),
	}
	if flagVerbose {
		result.Counters = logger.CountersSnapshot()
	}

	if err := WriteOutput(os.Stdout, result, format); err != nil {
		return &runError{fmt.Errorf("writing output: %w", err)}
	}
	return nil
}

// Run executes the CLI and returns the process exit code.
func Run() int {
	err := NewRootCmd().Execute()
	if err == nil {
		return ExitSuccess
	}

	fmt.Fprintf(os.Stderr, "Error: %v\n", err)

	var re *runError
	if errors.As(err, &re) {
		return ExitFailure
	}
	return ExitConfig
}
