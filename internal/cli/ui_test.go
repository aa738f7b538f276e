package cli

import (
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/agbru/taxicab/internal/search"
	"github.com/agbru/taxicab/internal/ui"
	"github.com/briandowns/spinner"
)

// fakeSpinner records the suffix updates DisplayProgress makes.
type fakeSpinner struct {
	mu       sync.Mutex
	started  bool
	stopped  bool
	suffixes []string
}

func (f *fakeSpinner) Start() { f.started = true }
func (f *fakeSpinner) Stop()  { f.stopped = true }
func (f *fakeSpinner) UpdateSuffix(s string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.suffixes = append(f.suffixes, s)
}

func withFakeSpinner(t *testing.T) *fakeSpinner {
	t.Helper()
	fake := &fakeSpinner{}
	orig := newSpinner
	newSpinner = func(options ...spinner.Option) Spinner { return fake }
	t.Cleanup(func() { newSpinner = orig })
	return fake
}

func TestProgressBar(t *testing.T) {
	cases := []struct {
		progress float64
		filled   int
	}{
		{0, 0},
		{0.5, 5},
		{1.0, 10},
		{1.7, 10},  // clamped high
		{-0.3, 0},  // clamped low
		{0.25, 2},  // truncation, not rounding
	}
	for _, c := range cases {
		bar := progressBar(c.progress, 10)
		if got := strings.Count(bar, "█"); got != c.filled {
			t.Errorf("progressBar(%v, 10) filled %d cells, want %d", c.progress, got, c.filled)
		}
		if got := strings.Count(bar, "█") + strings.Count(bar, "░"); got != 10 {
			t.Errorf("progressBar(%v, 10) has %d cells, want 10", c.progress, got)
		}
	}
}

func TestDisplayProgressRendersSnapshotsAndFinalLine(t *testing.T) {
	ui.SetCurrentTheme(ui.NoColorTheme)
	defer ui.SetCurrentTheme(ui.DarkTheme)
	fake := withFakeSpinner(t)

	snapshots := make(chan search.ProgressSnapshot, 4)
	snapshots <- search.ProgressSnapshot{Done: 250, Total: 1000, Elapsed: time.Second}
	snapshots <- search.ProgressSnapshot{Done: 1000, Total: 1000, Elapsed: 2 * time.Second}
	close(snapshots)

	var sb strings.Builder
	var wg sync.WaitGroup
	wg.Add(1)
	DisplayProgress(&wg, snapshots, &sb)
	wg.Wait()

	if !fake.started || !fake.stopped {
		t.Error("spinner was not started and stopped")
	}
	if len(fake.suffixes) != 2 {
		t.Fatalf("got %d suffix updates, want 2: %v", len(fake.suffixes), fake.suffixes)
	}
	if !strings.Contains(fake.suffixes[0], "25.00%") {
		t.Errorf("first update missing percentage: %q", fake.suffixes[0])
	}
	final := sb.String()
	if !strings.Contains(final, "100.00%") || !strings.Contains(final, "1,000 pairs checked") {
		t.Errorf("final line malformed: %q", final)
	}
}

func TestFormatExecutionDuration(t *testing.T) {
	cases := []struct {
		d    time.Duration
		want string
	}{
		{500 * time.Microsecond, "500µs"},
		{20 * time.Millisecond, "20ms"},
		{3 * time.Second, "3s"},
	}
	for _, c := range cases {
		if got := FormatExecutionDuration(c.d); got != c.want {
			t.Errorf("FormatExecutionDuration(%v) = %q, want %q", c.d, got, c.want)
		}
	}
}

func TestFormatNumberString(t *testing.T) {
	cases := []struct{ in, want string }{
		{"", ""},
		{"7", "7"},
		{"999", "999"},
		{"1000", "1,000"},
		{"1729", "1,729"},
		{"87539319", "87,539,319"},
		{"-4104", "-4,104"},
	}
	for _, c := range cases {
		if got := formatNumberString(c.in); got != c.want {
			t.Errorf("formatNumberString(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFormatETA(t *testing.T) {
	cases := []struct {
		eta  time.Duration
		want string
	}{
		{0, "calculating..."},
		{500 * time.Millisecond, "< 1s"},
		{45 * time.Second, "45s"},
		{2*time.Minute + 30*time.Second, "2m30s"},
		{5 * time.Minute, "5m"},
		{time.Hour + 15*time.Minute, "1h15m"},
		{2 * time.Hour, "2h"},
	}
	for _, c := range cases {
		if got := FormatETA(c.eta); got != c.want {
			t.Errorf("FormatETA(%v) = %q, want %q", c.eta, got, c.want)
		}
	}
}

func TestSweepTrackerWithholdsEarlyEstimates(t *testing.T) {
	tr := NewSweepTracker()
	eta := tr.Update(search.ProgressSnapshot{Done: 1, Total: 1000})
	if eta != 0 {
		t.Errorf("early ETA = %v, want 0", eta)
	}
}
