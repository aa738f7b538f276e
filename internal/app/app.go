package app

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/agbru/taxicab/internal/cli"
	"github.com/agbru/taxicab/internal/config"
	apperrors "github.com/agbru/taxicab/internal/errors"
	"github.com/agbru/taxicab/internal/logging"
	"github.com/agbru/taxicab/internal/orchestration"
	"github.com/agbru/taxicab/internal/search"
	"github.com/agbru/taxicab/internal/server"
	"github.com/agbru/taxicab/internal/ui"
)

// Application represents the taxicab application instance.
// It encapsulates the configuration and provides the Run entry point.
type Application struct {
	// Config holds the parsed application configuration.
	Config config.AppConfig
	// ErrWriter is the writer for error output (typically os.Stderr).
	ErrWriter io.Writer
}

// New creates a new Application instance by parsing command-line arguments.
// It validates the configuration and returns an error if parsing or
// validation fails.
//
// Parameters:
//   - args: The command-line arguments (typically os.Args).
//   - errWriter: The writer for error output.
//
// Returns:
//   - *Application: A new application instance.
//   - error: An error if configuration parsing or validation fails.
func New(args []string, errWriter io.Writer) (*Application, error) {
	// args[0] is program name, args[1:] are the actual arguments
	programName := "taxicab"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		return nil, err
	}

	return &Application{
		Config:    cfg,
		ErrWriter: errWriter,
	}, nil
}

// Run executes the search with the parsed configuration.
// It sets up the lifecycle (timeout + signals), the theme, and the optional
// metrics endpoint, runs the orchestrated search, and dispatches the result
// to the configured output path (JSON, quiet, or standard display).
//
// Parameters:
//   - ctx: The context for managing cancellation and timeouts.
//   - out: The writer for standard output.
//
// Returns:
//   - int: An exit code (0 for success, non-zero for errors).
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	// Initialize CLI theme (respects --no-color flag and NO_COLOR env var)
	ui.InitTheme(a.Config.NoColor)

	ctx, cancels := SetupLifecycle(ctx, a.Config.Timeout)
	defer cancels.Cleanup()

	logger := a.buildLogger()

	// Optional metrics endpoint for the duration of the run.
	if a.Config.MetricsAddr != "" {
		metricsSrv := server.NewMetricsServer(a.Config.MetricsAddr, logger)
		metricsSrv.Start()
		defer func() {
			if err := metricsSrv.Shutdown(); err != nil {
				fmt.Fprintf(a.ErrWriter, "Warning: %v\n", err)
			}
		}()
	}

	if !a.Config.JSONOutput && !a.Config.Quiet {
		cli.PrintExecutionConfig(a.Config, out)
	}

	// In quiet and JSON modes the progress display is suppressed.
	progressOut := out
	if a.Config.Quiet || a.Config.JSONOutput {
		progressOut = io.Discard
	}

	result := orchestration.ExecuteSearch(ctx, a.Config, progressOut, logger)
	if result.Err != nil {
		return apperrors.HandleSearchError(result.Err, result.SweepDuration, a.ErrWriter, cli.CLIColorProvider{})
	}

	if a.Config.Verify {
		if err := a.verifySolutions(result.Solutions, out); err != nil {
			return apperrors.HandleSearchError(err, result.SweepDuration, a.ErrWriter, cli.CLIColorProvider{})
		}
	}

	if a.Config.JSONOutput {
		return a.printJSONResult(result, out)
	}

	if a.Config.Quiet {
		cli.DisplayQuietResult(result.Solutions, a.Config.Exponent, out)
		return a.saveAndReport(result, io.Discard)
	}

	cli.DisplaySolutions(result.Solutions, a.Config.Exponent, out)
	cli.DisplaySummary(a.Config.ToSearchParams(), result.PairsProcessed, result.SweepDuration, len(result.Solutions), out)
	return a.saveAndReport(result, out)
}

// buildLogger selects the structured logger for the run. Verbose runs log to
// stderr so phase events do not interleave with the progress display; all
// other modes stay silent.
func (a *Application) buildLogger() logging.Logger {
	if a.Config.Verbose && !a.Config.Quiet && !a.Config.JSONOutput {
		return logging.NewDefaultLogger()
	}
	return logging.Nop()
}

// verifySolutions cross-checks the solution list with the arbitrary-precision
// backend and reports which backend confirmed it.
func (a *Application) verifySolutions(solutions []search.Solution, out io.Writer) error {
	if err := search.VerifySolutions(a.Config.ToSearchParams(), solutions); err != nil {
		return apperrors.NewVerificationError("solution cross-check failed", err)
	}
	if !a.Config.Quiet && !a.Config.JSONOutput {
		fmt.Fprintf(out, "\n%s✓ All %d solutions verified (%s)%s\n",
			cli.ColorGreen(), len(solutions), search.VerifierName(), cli.ColorReset())
	}
	return nil
}

// saveAndReport writes the report file if one was requested. noteOut receives
// the confirmation message (io.Discard in quiet mode).
func (a *Application) saveAndReport(result orchestration.SearchResult, noteOut io.Writer) int {
	if a.Config.OutputFile == "" {
		return apperrors.ExitSuccess
	}
	params := a.Config.ToSearchParams()
	if err := cli.WriteResultToFile(a.Config.OutputFile, params, result.Solutions, result.SweepDuration); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving result: %v\n", err)
		return apperrors.ExitErrorGeneric
	}
	fmt.Fprintf(noteOut, "\n%s✓ Result saved to: %s%s%s\n",
		cli.ColorGreen(), cli.ColorCyan(), a.Config.OutputFile, cli.ColorReset())
	return apperrors.ExitSuccess
}

// IsHelpError checks if the error is a help flag error (--help was used).
//
// Parameters:
//   - err: The error to check.
//
// Returns:
//   - bool: True if the error indicates help was requested.
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}

// jsonSolution represents a single solution in JSON output.
type jsonSolution struct {
	A   uint64 `json:"a"`
	B   uint64 `json:"b"`
	C   uint64 `json:"c"`
	D   uint64 `json:"d"`
	Sum string `json:"sum"`
}

// jsonRunResult represents a complete run in JSON output.
type jsonRunResult struct {
	Lower     uint64         `json:"lower"`
	Upper     uint64         `json:"upper"`
	Exponent  uint64         `json:"exponent"`
	Pairs     uint64         `json:"pairs_processed"`
	Duration  string         `json:"duration"`
	Solutions []jsonSolution `json:"solutions"`
}

// printJSONResult formats the run result as a JSON document and writes it to
// the output. This is useful for programmatic consumption of the results.
func (a *Application) printJSONResult(result orchestration.SearchResult, out io.Writer) int {
	doc := jsonRunResult{
		Lower:     a.Config.Lower,
		Upper:     a.Config.Upper,
		Exponent:  a.Config.Exponent,
		Pairs:     result.PairsProcessed,
		Duration:  result.SweepDuration.String(),
		Solutions: make([]jsonSolution, len(result.Solutions)),
	}
	for i, s := range result.Solutions {
		doc.Solutions[i] = jsonSolution{A: s.A, B: s.B, C: s.C, D: s.D, Sum: s.Sum.String()}
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return apperrors.ExitErrorGeneric
	}
	return apperrors.ExitSuccess
}
