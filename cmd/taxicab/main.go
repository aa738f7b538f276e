// Command taxicab searches an integer range for pairs of k-th power sums
// that collide on the same value, Ramanujan's 1729 being the smallest for
// cubes. See the repository README for usage and examples.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/agbru/taxicab/internal/app"
	apperrors "github.com/agbru/taxicab/internal/errors"
)

func main() {
	os.Exit(run())
}

// run contains the actual logic, separated from main so deferred cleanups
// execute before os.Exit.
func run() int {
	if app.HasVersionFlag(os.Args[1:]) {
		app.PrintVersion(os.Stdout)
		return apperrors.ExitSuccess
	}

	a, err := app.New(os.Args, os.Stderr)
	if err != nil {
		if app.IsHelpError(err) {
			return apperrors.ExitSuccess
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return apperrors.ExitErrorConfig
	}

	return a.Run(context.Background(), os.Stdout)
}
