package config

import (
	"flag"
	"fmt"
	"io"
)

// usage builds the custom usage function for the flag set. It groups flags by
// concern and shows representative examples, which the default flag output
// does not.
func usage(fs *flag.FlagSet, programName string, w io.Writer) func() {
	return func() {
		fmt.Fprintf(w, "%s searches a bounded integer range for pairs with equal sums of k-th powers\n", programName)
		fmt.Fprintf(w, "(taxicab numbers: a^k + b^k = c^k + d^k).\n\n")
		fmt.Fprintf(w, "Usage:\n  %s [flags]\n\nFlags:\n", programName)
		fs.PrintDefaults()
		fmt.Fprintf(w, "\nExamples:\n")
		fmt.Fprintf(w, "  %s --upper 5000                       # cubes up to 5000^3\n", programName)
		fmt.Fprintf(w, "  %s --upper 500 --exponent 4 --verify  # fourth powers, cross-checked\n", programName)
		fmt.Fprintf(w, "  %s --quiet --json --upper 100         # machine-readable output\n", programName)
		fmt.Fprintf(w, "\nEnvironment:\n  every flag can be preset via %s<NAME>, e.g. %sUPPER=5000\n", EnvPrefix, EnvPrefix)
	}
}

// writeUsageError prints a highlighted configuration error ahead of the usage
// text.
func writeUsageError(w io.Writer, message string) {
	fmt.Fprintf(w, "Configuration error: %s\n\n", message)
}
