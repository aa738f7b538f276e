package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/agbru/taxicab/internal/config"
	"github.com/agbru/taxicab/internal/search"
)

// PrintExecutionConfig summarizes the run parameters before the sweep starts.
//
// Parameters:
//   - cfg: The application configuration.
//   - out: The io.Writer for the banner.
func PrintExecutionConfig(cfg config.AppConfig, out io.Writer) {
	p := cfg.ToSearchParams()
	fmt.Fprintf(out, "%s--- Search configuration ---%s\n", ColorBold(), ColorReset())
	fmt.Fprintf(out, "Range       : [%s%d%s, %s%d%s]\n",
		ColorMagenta(), cfg.Lower, ColorReset(), ColorMagenta(), cfg.Upper, ColorReset())
	fmt.Fprintf(out, "Exponent    : %s%d%s\n", ColorMagenta(), cfg.Exponent, ColorReset())
	fmt.Fprintf(out, "Partitions  : %s%d%s\n", ColorMagenta(), cfg.Modulus, ColorReset())
	fmt.Fprintf(out, "Workers     : %s%d%s\n", ColorMagenta(), cfg.EffectiveWorkers(), ColorReset())
	fmt.Fprintf(out, "Pairs       : %s%s%s\n",
		ColorCyan(), formatNumberString(fmt.Sprintf("%d", p.TotalPairs())), ColorReset())
}

// DisplaySolutions prints one block per solution: the four operands and the
// shared power sum, with thousand separators on the sum.
//
// Parameters:
//   - solutions: The deterministic, sorted solution list.
//   - exponent: The power k, used only for presentation.
//   - out: The io.Writer for the blocks.
func DisplaySolutions(solutions []search.Solution, exponent uint64, out io.Writer) {
	if len(solutions) == 0 {
		fmt.Fprintf(out, "\n%sNo equal-power-sum collisions in this range.%s\n", ColorYellow(), ColorReset())
		return
	}

	fmt.Fprintf(out, "\n%s--- Solutions (%d) ---%s\n", ColorBold(), len(solutions), ColorReset())
	for i, s := range solutions {
		fmt.Fprintf(out, "%s#%d%s  %s%d^%d + %d^%d%s = %s%d^%d + %d^%d%s = %s%s%s\n",
			ColorBlue(), i+1, ColorReset(),
			ColorGreen(), s.A, exponent, s.B, exponent, ColorReset(),
			ColorGreen(), s.C, exponent, s.D, exponent, ColorReset(),
			ColorCyan(), formatNumberString(s.Sum.String()), ColorReset())
	}
}

// DisplaySummary renders the post-run comparison table: pairs checked,
// duration, throughput and the solution count.
//
// Parameters:
//   - params: The search parameters of the completed run.
//   - pairs: The total number of pairs processed.
//   - duration: The sweep wall time.
//   - solutions: The number of solutions found.
//   - out: The io.Writer for the table.
func DisplaySummary(params search.Params, pairs uint64, duration time.Duration, solutions int, out io.Writer) {
	fmt.Fprintf(out, "\n%s--- Run summary ---%s\n", ColorBold(), ColorReset())
	tw := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)

	throughput := "n/a"
	if secs := duration.Seconds(); secs > 0 {
		throughput = formatNumberString(fmt.Sprintf("%.0f", float64(pairs)/secs)) + " pairs/s"
	}
	durationStr := FormatExecutionDuration(duration)
	if duration == 0 {
		durationStr = "< 1µs"
	}

	fmt.Fprintf(tw, "Range\t[%d, %d]\n", params.Lower, params.Upper)
	fmt.Fprintf(tw, "Exponent\t%d\n", params.Exponent)
	fmt.Fprintf(tw, "Partitions\t%d\n", params.Modulus)
	fmt.Fprintf(tw, "Pairs checked\t%s\n", formatNumberString(fmt.Sprintf("%d", pairs)))
	fmt.Fprintf(tw, "Duration\t%s%s%s\n", ColorYellow(), durationStr, ColorReset())
	fmt.Fprintf(tw, "Throughput\t%s\n", throughput)
	fmt.Fprintf(tw, "Solutions\t%s%d%s\n", ColorGreen(), solutions, ColorReset())
	if err := tw.Flush(); err != nil {
		fmt.Fprintf(out, "Warning: failed to flush tabwriter: %v\n", err)
	}
}

// DisplayQuietResult prints solutions in a minimal, script-friendly format:
// one line per solution, no colors, no banners.
//
// Parameters:
//   - solutions: The solution list.
//   - exponent: The power k.
//   - out: The io.Writer for the lines.
func DisplayQuietResult(solutions []search.Solution, exponent uint64, out io.Writer) {
	for _, s := range solutions {
		fmt.Fprintf(out, "%d^%d+%d^%d=%d^%d+%d^%d=%s\n",
			s.A, exponent, s.B, exponent, s.C, exponent, s.D, exponent, s.Sum)
	}
}

// WriteResultToFile saves a plain-text solution report to path. The report
// repeats the run parameters so the file is self-describing.
//
// Parameters:
//   - path: The destination file path.
//   - params: The search parameters of the run.
//   - solutions: The solution list.
//   - duration: The sweep wall time.
//
// Returns:
//   - error: An error if the file cannot be written.
func WriteResultToFile(path string, params search.Params, solutions []search.Solution, duration time.Duration) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "taxicab search report\n")
	fmt.Fprintf(&sb, "range: [%d, %d]  exponent: %d  partitions: %d\n",
		params.Lower, params.Upper, params.Exponent, params.Modulus)
	fmt.Fprintf(&sb, "duration: %s  solutions: %d\n\n", duration, len(solutions))
	for _, s := range solutions {
		fmt.Fprintf(&sb, "%d^%d + %d^%d = %d^%d + %d^%d = %s\n",
			s.A, params.Exponent, s.B, params.Exponent,
			s.C, params.Exponent, s.D, params.Exponent, s.Sum)
	}
	return os.WriteFile(path, []byte(sb.String()), 0o644)
}
