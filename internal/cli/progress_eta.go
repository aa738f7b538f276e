package cli

import (
	"fmt"
	"time"

	"github.com/agbru/taxicab/internal/search"
)

// SweepTracker estimates the time remaining for the partition sweep from the
// stream of progress snapshots. It exponentially smooths the progress rate so
// the estimate stays stable even though partitions complete in bursts.
type SweepTracker struct {
	startTime    time.Time
	lastUpdate   time.Time
	lastFraction float64
	rate         float64 // smoothed fraction progress per second
}

// NewSweepTracker creates a tracker anchored at the current time.
func NewSweepTracker() *SweepTracker {
	now := time.Now()
	return &SweepTracker{startTime: now, lastUpdate: now}
}

// Update folds a new snapshot into the smoothed rate and returns the current
// ETA. Estimates are withheld (zero) until a little progress and wall time
// have accumulated, since early rates are noise.
//
// Parameters:
//   - snap: The latest progress snapshot.
//
// Returns:
//   - time.Duration: The estimated time remaining, or 0 if unknown.
func (t *SweepTracker) Update(snap search.ProgressSnapshot) time.Duration {
	fraction := snap.Fraction()
	now := time.Now()
	elapsed := now.Sub(t.startTime)

	if elapsed < 100*time.Millisecond || fraction <= 0.001 {
		t.lastUpdate = now
		t.lastFraction = fraction
		return 0
	}

	timeSinceUpdate := now.Sub(t.lastUpdate).Seconds()
	if timeSinceUpdate > 0.05 {
		if delta := fraction - t.lastFraction; delta > 0 {
			instantRate := delta / timeSinceUpdate
			if t.rate > 0 {
				// Exponential smoothing: 70% old rate, 30% new rate.
				t.rate = 0.7*t.rate + 0.3*instantRate
			} else {
				t.rate = fraction / elapsed.Seconds()
			}
		}
		t.lastUpdate = now
		t.lastFraction = fraction
	}

	return t.eta(fraction)
}

// eta converts the smoothed rate into a capped remaining-time estimate.
func (t *SweepTracker) eta(fraction float64) time.Duration {
	if t.rate <= 0 || fraction >= 1.0 {
		return 0
	}
	etaSeconds := (1.0 - fraction) / t.rate
	eta := time.Duration(etaSeconds * float64(time.Second))
	if eta > 24*time.Hour {
		eta = 24 * time.Hour
	}
	return eta
}

// FormatETA formats a duration into a human-readable ETA string.
// It adapts the format based on the magnitude of the duration.
//
// Parameters:
//   - eta: The duration to format.
//
// Returns:
//   - string: A formatted string like "< 1s", "2m30s", "1h15m".
func FormatETA(eta time.Duration) string {
	if eta <= 0 {
		return "calculating..."
	}
	if eta < time.Second {
		return "< 1s"
	}
	if eta < time.Minute {
		return fmt.Sprintf("%ds", int(eta.Seconds()))
	}
	if eta < time.Hour {
		minutes := int(eta.Minutes())
		seconds := int(eta.Seconds()) % 60
		if seconds > 0 {
			return fmt.Sprintf("%dm%ds", minutes, seconds)
		}
		return fmt.Sprintf("%dm", minutes)
	}
	hours := int(eta.Hours())
	minutes := int(eta.Minutes()) % 60
	if minutes > 0 {
		return fmt.Sprintf("%dh%dm", hours, minutes)
	}
	return fmt.Sprintf("%dh", hours)
}
