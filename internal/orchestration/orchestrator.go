// Package orchestration drives the two phases of a search run: the
// sequential precompute of the power table and residue index, then the
// fork-join sweep of all residue partitions across a bounded worker pool.
//
// Partitions are independent units of work: each reads only the immutable
// index and writes only to its pooled heap state, the shared progress
// counter, and the mutex-guarded solution sink. Completion order does not
// affect the result; the aggregated solution list is sorted before it is
// returned.
package orchestration

import (
	"context"
	"io"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otel"
	"golang.org/x/sync/errgroup"

	"github.com/agbru/taxicab/internal/cli"
	"github.com/agbru/taxicab/internal/config"
	apperrors "github.com/agbru/taxicab/internal/errors"
	"github.com/agbru/taxicab/internal/logging"
	"github.com/agbru/taxicab/internal/search"
)

// SearchResult encapsulates the outcome of a full search run. It serves as a
// standardized container for the reporting layer.
type SearchResult struct {
	// Solutions is the deterministic, sum-sorted solution list.
	Solutions []search.Solution
	// PairsProcessed is the final progress counter value.
	PairsProcessed uint64
	// PrecomputeDuration is the wall time of the index build.
	PrecomputeDuration time.Duration
	// SweepDuration is the wall time of the partition sweep.
	SweepDuration time.Duration
	// Err is the error that aborted the run, if any.
	Err error
}

// ProgressBufferSize is the snapshot channel capacity. The monitor uses
// non-blocking sends, so a small buffer only smooths bursts; a slow display
// drops snapshots instead of stalling the run.
const ProgressBufferSize = 8

// ExecuteSearch orchestrates a complete collision-search run.
//
// The precompute phase runs to completion before any partition worker
// starts. The sweep then schedules the Modulus partitions onto an errgroup
// whose limit is the configured worker count; a monitor goroutine polls the
// shared progress counter on the configured interval and feeds the display
// until all partitions finish. The main flow waits for both before
// returning, so the caller can print final totals immediately.
//
// Cancellation (timeout or signal) aborts the whole run: remaining
// partitions are skipped and the context error is reported. There is no
// partial-result recovery; a fresh run is the only retry path.
//
// Parameters:
//   - ctx: The context carrying the run deadline and cancellation.
//   - cfg: The validated application configuration.
//   - out: The io.Writer for the live progress display (io.Discard in
//     quiet mode).
//   - logger: The structured logger for phase events.
//
// Returns:
//   - SearchResult: The aggregated outcome of the run.
func ExecuteSearch(ctx context.Context, cfg config.AppConfig, out io.Writer, logger logging.Logger) SearchResult {
	tracer := otel.Tracer("taxicab")
	params := cfg.ToSearchParams()
	search.ResetPartitionGauge()

	// Phase 1: precompute. Sequential, runs to completion before the sweep.
	_, precomputeSpan := tracer.Start(ctx, "search.precompute")
	precomputeStart := time.Now()
	ix := search.NewIndex(params)
	precomputeDuration := time.Since(precomputeStart)
	precomputeSpan.End()
	logger.Info("precompute complete",
		logging.Uint64("range_size", params.RangeSize()),
		logging.Uint64("partitions", params.Modulus),
		logging.String("duration", precomputeDuration.String()))

	// Phase 2: parallel partition sweep.
	sweepCtx, sweepSpan := tracer.Start(ctx, "search.sweep")
	defer sweepSpan.End()

	var counter search.Counter
	totalPairs := params.TotalPairs()
	sweepStart := time.Now()

	snapshots := make(chan search.ProgressSnapshot, ProgressBufferSize)
	var displayWg sync.WaitGroup
	displayWg.Add(1)
	go cli.DisplayProgress(&displayWg, snapshots, out)

	// Monitor: polls the counter until the done flag, then closes the
	// snapshot stream so the display can print its final line.
	done := make(chan struct{})
	var monitorWg sync.WaitGroup
	monitorWg.Add(1)
	go func() {
		defer monitorWg.Done()
		defer close(snapshots)
		ticker := time.NewTicker(cfg.ProgressInterval)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				snapshots <- search.ProgressSnapshot{
					Done:    counter.Load(),
					Total:   totalPairs,
					Elapsed: time.Since(sweepStart),
				}
				return
			case <-ticker.C:
				snap := search.ProgressSnapshot{
					Done:    counter.Load(),
					Total:   totalPairs,
					Elapsed: time.Since(sweepStart),
				}
				select {
				case snapshots <- snap:
				default: // display busy, drop this snapshot
				}
			}
		}
	}()

	var mu sync.Mutex
	var solutions []search.Solution
	pool := search.NewStatePool(params)
	var nextPartition atomic.Uint64

	g, gctx := errgroup.WithContext(sweepCtx)
	workers := cfg.EffectiveWorkers()
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for {
				p := nextPartition.Add(1) - 1
				if p >= params.Modulus {
					return nil
				}
				if err := gctx.Err(); err != nil {
					return err
				}
				partStart := time.Now()
				pool.Sweep(ix, p, &counter, func(s search.Solution) {
					search.ObserveSolution()
					mu.Lock()
					solutions = append(solutions, s)
					mu.Unlock()
				})
				search.ObservePartitionDone(time.Since(partStart).Seconds())
				if cfg.Verbose {
					logger.Debug("partition swept",
						logging.Uint64("partition", p),
						logging.String("duration", time.Since(partStart).String()))
				}
			}
		})
	}

	err := g.Wait()
	close(done)
	monitorWg.Wait()
	displayWg.Wait()
	sweepDuration := time.Since(sweepStart)

	sort.Slice(solutions, func(i, j int) bool { return solutions[i].Less(solutions[j]) })

	if err != nil {
		logger.Error("sweep aborted", err,
			logging.Uint64("pairs_processed", counter.Load()))
		err = apperrors.WrapError(err, "partition sweep aborted")
	} else {
		logger.Info("sweep complete",
			logging.Uint64("pairs_processed", counter.Load()),
			logging.Int("solutions", len(solutions)),
			logging.String("duration", sweepDuration.String()))
	}

	return SearchResult{
		Solutions:          solutions,
		PairsProcessed:     counter.Load(),
		PrecomputeDuration: precomputeDuration,
		SweepDuration:      sweepDuration,
		Err:                err,
	}
}
