package orchestration

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/agbru/taxicab/internal/config"
	"github.com/agbru/taxicab/internal/logging"
	"github.com/agbru/taxicab/internal/search"
)

func testConfig(lower, upper, exponent, modulus uint64) config.AppConfig {
	return config.AppConfig{
		Lower:            lower,
		Upper:            upper,
		Exponent:         exponent,
		Modulus:          modulus,
		Workers:          4,
		Timeout:          time.Minute,
		ProgressInterval: 10 * time.Millisecond,
	}
}

func TestExecuteSearchFindsRamanujan(t *testing.T) {
	cfg := testConfig(1, 12, 3, 4)
	res := ExecuteSearch(context.Background(), cfg, io.Discard, logging.Nop())
	if res.Err != nil {
		t.Fatalf("ExecuteSearch failed: %v", res.Err)
	}
	if len(res.Solutions) != 1 {
		t.Fatalf("got %d solutions, want 1: %v", len(res.Solutions), res.Solutions)
	}
	s := res.Solutions[0]
	if s.A != 1 || s.B != 12 || s.C != 9 || s.D != 10 {
		t.Errorf("solution operands = (%d,%d,%d,%d), want (1,12,9,10)", s.A, s.B, s.C, s.D)
	}
	if s.Sum.String() != "1729" {
		t.Errorf("solution sum = %s, want 1729", s.Sum)
	}
	if want := cfg.ToSearchParams().TotalPairs(); res.PairsProcessed != want {
		t.Errorf("PairsProcessed = %d, want %d", res.PairsProcessed, want)
	}
}

func TestExecuteSearchEmptyRange(t *testing.T) {
	res := ExecuteSearch(context.Background(), testConfig(1, 5, 3, 4), io.Discard, logging.Nop())
	if res.Err != nil {
		t.Fatalf("ExecuteSearch failed: %v", res.Err)
	}
	if len(res.Solutions) != 0 {
		t.Errorf("got %d solutions, want 0", len(res.Solutions))
	}
}

func TestExecuteSearchDeterministicOrder(t *testing.T) {
	cfg := testConfig(1, 30, 3, 8)
	var first []search.Solution
	for run := 0; run < 3; run++ {
		res := ExecuteSearch(context.Background(), cfg, io.Discard, logging.Nop())
		if res.Err != nil {
			t.Fatalf("run %d failed: %v", run, res.Err)
		}
		if run == 0 {
			first = res.Solutions
			continue
		}
		if len(res.Solutions) != len(first) {
			t.Fatalf("run %d: got %d solutions, want %d", run, len(res.Solutions), len(first))
		}
		for i := range first {
			if res.Solutions[i] != first[i] {
				t.Errorf("run %d: solution %d = %+v, want %+v", run, i, res.Solutions[i], first[i])
			}
		}
	}
	// The [1, 30] cube range has four known collisions.
	if len(first) != 4 {
		t.Errorf("got %d solutions on [1, 30], want 4", len(first))
	}
}

func TestExecuteSearchMatchesBruteForce(t *testing.T) {
	cfg := testConfig(1, 50, 3, 16)
	res := ExecuteSearch(context.Background(), cfg, io.Discard, logging.Nop())
	if res.Err != nil {
		t.Fatalf("ExecuteSearch failed: %v", res.Err)
	}
	want := search.BruteForce(cfg.ToSearchParams())
	if len(res.Solutions) != len(want) {
		t.Fatalf("got %d solutions, brute force found %d", len(res.Solutions), len(want))
	}
	for i := range want {
		if res.Solutions[i] != want[i] {
			t.Errorf("solution %d = %+v, brute force %+v", i, res.Solutions[i], want[i])
		}
	}
}

func TestExecuteSearchCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res := ExecuteSearch(ctx, testConfig(1, 500, 3, 64), io.Discard, logging.Nop())
	if res.Err == nil {
		t.Fatal("expected error from canceled context")
	}
}

func TestExecuteSearchSingleWorker(t *testing.T) {
	cfg := testConfig(1, 12, 3, 4)
	cfg.Workers = 1
	res := ExecuteSearch(context.Background(), cfg, io.Discard, logging.Nop())
	if res.Err != nil {
		t.Fatalf("ExecuteSearch failed: %v", res.Err)
	}
	if len(res.Solutions) != 1 {
		t.Errorf("got %d solutions, want 1", len(res.Solutions))
	}
}
