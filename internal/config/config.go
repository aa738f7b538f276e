// Package config provides the configuration management for the taxicab
// application. It defines the data structure for the configuration, handles
// the parsing of command-line arguments and environment overrides, and
// performs validation on the configuration values.
package config

import (
	"errors"
	"flag"
	"io"
	"math/big"
	"math/bits"
	"runtime"
	"time"

	apperrors "github.com/agbru/taxicab/internal/errors"
	"github.com/agbru/taxicab/internal/search"
)

const (
	// EnvPrefix is the prefix for all environment variables used by taxicab.
	// Environment variables provide an alternative to CLI flags for
	// configuration, following the 12-Factor App methodology.
	EnvPrefix = "TAXICAB_"
)

// Default configuration values.
// These can be overridden via command-line flags or environment variables.
const (
	// DefaultLower is the default inclusive lower bound of the search range.
	DefaultLower uint64 = 1
	// DefaultUpper is the default inclusive upper bound of the search range.
	DefaultUpper uint64 = 10_000
	// DefaultExponent is the default power k; cubes give the classical
	// taxicab numbers.
	DefaultExponent uint64 = 3
	// DefaultModulus is the default residue partition count (power of two).
	DefaultModulus uint64 = 256
	// DefaultTimeout is the default run timeout.
	DefaultTimeout = 30 * time.Minute
	// DefaultProgressInterval is the default progress poll interval.
	DefaultProgressInterval = 200 * time.Millisecond
)

// AppConfig aggregates the application's configuration parameters, parsed
// from command-line flags. It encapsulates all settings that control the
// execution, from the search range and exponent to presentation options.
type AppConfig struct {
	// Lower is the inclusive lower bound of the search range.
	Lower uint64
	// Upper is the inclusive upper bound of the search range.
	Upper uint64
	// Exponent is the power k applied to every operand.
	Exponent uint64
	// Modulus is the residue partition count M; must be a power of two.
	Modulus uint64
	// Workers is the partition worker pool size; 0 selects GOMAXPROCS.
	Workers int
	// Timeout sets the maximum duration for the run.
	Timeout time.Duration
	// ProgressInterval is how often the monitor polls the progress counter.
	ProgressInterval time.Duration
	// Verify, if true, cross-checks every reported solution with
	// arbitrary-precision arithmetic after the sweep.
	Verify bool
	// Verbose, if true, logs per-partition completion events.
	Verbose bool
	// Quiet mode - minimal output for scripting purposes.
	// Suppresses the progress display, banners, and informational messages.
	Quiet bool
	// JSONOutput, if true, outputs the solutions in JSON format.
	JSONOutput bool
	// NoColor, if true, disables all color output in the CLI.
	// Also respects the NO_COLOR environment variable.
	NoColor bool
	// OutputFile, if specified, saves the solution report to this file path.
	OutputFile string
	// MetricsAddr, if non-empty, serves Prometheus metrics on this address
	// (e.g. ":9090") for the duration of the run.
	MetricsAddr string
}

// ToSearchParams converts the application configuration into search.Params
// for the index and the partition workers.
func (c AppConfig) ToSearchParams() search.Params {
	return search.Params{
		Lower:    c.Lower,
		Upper:    c.Upper,
		Exponent: c.Exponent,
		Modulus:  c.Modulus,
	}
}

// EffectiveWorkers resolves the worker pool size, defaulting to the available
// parallel execution capacity.
func (c AppConfig) EffectiveWorkers() int {
	if c.Workers > 0 {
		return c.Workers
	}
	return runtime.GOMAXPROCS(0)
}

// Validate checks the semantic consistency of the configuration parameters.
// Beyond simple range checks it enforces the arithmetic width contract: the
// largest possible power sum, 2·Upper^k, must fit in 192 bits, because the
// fixed-width arithmetic truncates silently and no runtime overflow detection
// exists. Rejecting the parameters here is the only guard.
//
// Returns:
//   - error: An error of type ConfigError if the configuration is invalid,
//     nil otherwise.
func (c AppConfig) Validate() error {
	if c.Upper <= c.Lower {
		return apperrors.NewConfigError("upper bound %d must be greater than lower bound %d", c.Upper, c.Lower)
	}
	if c.Exponent < 1 {
		return apperrors.NewConfigError("exponent must be at least 1")
	}
	if c.Modulus < 1 || bits.OnesCount64(c.Modulus) != 1 {
		return apperrors.NewConfigError("modulus must be a power of two, got %d", c.Modulus)
	}
	if c.Workers < 0 {
		return apperrors.NewConfigError("worker count cannot be negative: %d", c.Workers)
	}
	if c.Timeout <= 0 {
		return apperrors.NewConfigError("timeout value must be strictly positive")
	}
	if c.ProgressInterval <= 0 {
		return apperrors.NewConfigError("progress interval must be strictly positive")
	}

	// Width contract: 2 * Upper^k < 2^192.
	maxSum := new(big.Int).Exp(new(big.Int).SetUint64(c.Upper), new(big.Int).SetUint64(c.Exponent), nil)
	maxSum.Lsh(maxSum, 1)
	if maxSum.BitLen() > 192 {
		return apperrors.NewConfigError(
			"2*%d^%d needs %d bits and would overflow the 192-bit arithmetic; shrink the range or the exponent",
			c.Upper, c.Exponent, maxSum.BitLen())
	}
	return nil
}

// ParseConfig parses the command-line arguments and populates an AppConfig
// struct. It defines all the command-line flags, sets their default values
// (applying TAXICAB_* environment overrides), and validates the resulting
// configuration.
//
// The function is designed to be testable by allowing the input arguments and
// the error writer to be injected.
//
// Parameters:
//   - programName: The name used in usage output.
//   - args: The command-line arguments, without the program name.
//   - errWriter: The writer for flag parsing error output.
//
// Returns:
//   - AppConfig: The parsed and validated configuration.
//   - error: An error if parsing or validation fails (flag.ErrHelp for -h).
func ParseConfig(programName string, args []string, errWriter io.Writer) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)

	var config AppConfig
	fs.Uint64Var(&config.Lower, "lower", getEnvUint64("LOWER", DefaultLower), "inclusive lower bound of the search range")
	fs.Uint64Var(&config.Upper, "upper", getEnvUint64("UPPER", DefaultUpper), "inclusive upper bound of the search range")
	fs.Uint64Var(&config.Exponent, "exponent", getEnvUint64("EXPONENT", DefaultExponent), "power k applied to every operand")
	fs.Uint64Var(&config.Modulus, "modulus", getEnvUint64("MODULUS", DefaultModulus), "residue partition count (power of two)")
	fs.IntVar(&config.Workers, "workers", getEnvInt("WORKERS", 0), "partition worker pool size (0 = all CPUs)")
	fs.DurationVar(&config.Timeout, "timeout", getEnvDuration("TIMEOUT", DefaultTimeout), "maximum run duration")
	fs.DurationVar(&config.ProgressInterval, "progress-interval", getEnvDuration("PROGRESS_INTERVAL", DefaultProgressInterval), "progress display refresh interval")
	fs.BoolVar(&config.Verify, "verify", getEnvBool("VERIFY", false), "cross-check solutions with arbitrary-precision arithmetic")
	fs.BoolVar(&config.Verbose, "v", false, "log per-partition completion events")
	fs.BoolVar(&config.Verbose, "verbose", getEnvBool("VERBOSE", false), "log per-partition completion events")
	fs.BoolVar(&config.Quiet, "q", false, "minimal output for scripting")
	fs.BoolVar(&config.Quiet, "quiet", getEnvBool("QUIET", false), "minimal output for scripting")
	fs.BoolVar(&config.JSONOutput, "json", getEnvBool("JSON", false), "output solutions as JSON")
	fs.BoolVar(&config.NoColor, "no-color", getEnvBool("NO_COLOR", false), "disable color output")
	fs.StringVar(&config.OutputFile, "output", getEnvString("OUTPUT", ""), "save the solution report to this file")
	fs.StringVar(&config.MetricsAddr, "metrics-addr", getEnvString("METRICS_ADDR", ""), "serve Prometheus metrics on this address (empty = disabled)")

	fs.Usage = usage(fs, programName, errWriter)

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}

	if err := config.Validate(); err != nil {
		var configErr apperrors.ConfigError
		if errors.As(err, &configErr) {
			writeUsageError(errWriter, configErr.Message)
		}
		fs.Usage()
		return AppConfig{}, err
	}
	return config, nil
}
