package search

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/agbru/taxicab/internal/uint192"
)

// TestSweepGoldenTaxicabNumbers pins the full solution list for [1,30] k=3
// against the classical table of numbers expressible as a sum of two cubes in
// two ways. Any regression in the arithmetic, the index, or the merge shows
// up here as a concrete missing or spurious identity.
func TestSweepGoldenTaxicabNumbers(t *testing.T) {
	golden := []struct {
		a, b, c, d uint64
		sum        string
	}{
		{1, 12, 9, 10, "1729"},
		{2, 16, 9, 15, "4104"},
		{2, 24, 18, 20, "13832"},
		{10, 27, 19, 24, "20683"},
	}

	p := Params{Lower: 1, Upper: 30, Exponent: 3, Modulus: 8}
	solutions := sweepAll(p)

	if len(solutions) != len(golden) {
		t.Fatalf("got %d solutions, want %d: %v", len(solutions), len(golden), solutions)
	}
	for i, g := range golden {
		s := solutions[i]
		if s.A != g.a || s.B != g.b || s.C != g.c || s.D != g.d || s.Sum.String() != g.sum {
			t.Errorf("solution %d = %v, want %d^3+%d^3 = %d^3+%d^3 = %s",
				i, s, g.a, g.b, g.c, g.d, g.sum)
		}
	}
}

// goldenCase mirrors the schema written by cmd/generate-golden.
type goldenCase struct {
	Lower      uint64 `json:"lower"`
	Upper      uint64 `json:"upper"`
	Exponent   uint64 `json:"exponent"`
	Collisions []struct {
		A   uint64 `json:"a"`
		B   uint64 `json:"b"`
		C   uint64 `json:"c"`
		D   uint64 `json:"d"`
		Sum string `json:"sum"`
	} `json:"collisions"`
}

// TestSweepGoldenFile replays every case from the generated golden file.
// Regenerate with: go run ./cmd/generate-golden
func TestSweepGoldenFile(t *testing.T) {
	path := filepath.Join("testdata", "collisions_golden.json")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Skipf("golden file not present (%v); run cmd/generate-golden to create it", err)
	}

	var cases []goldenCase
	if err := json.Unmarshal(data, &cases); err != nil {
		t.Fatalf("parsing golden file: %v", err)
	}

	for _, gc := range cases {
		p := Params{Lower: gc.Lower, Upper: gc.Upper, Exponent: gc.Exponent, Modulus: 16}
		solutions := sweepAll(p)

		want := make([]Solution, 0, len(gc.Collisions))
		for _, c := range gc.Collisions {
			s := Solution{A: c.A, B: c.B, C: c.C, D: c.D}
			var perr error
			if s.Sum, perr = uint192.Parse(c.Sum); perr != nil {
				t.Fatalf("golden sum %q: %v", c.Sum, perr)
			}
			want = append(want, s)
		}
		sort.Slice(want, func(i, j int) bool { return want[i].Less(want[j]) })

		if len(solutions) != len(want) {
			t.Errorf("[%d, %d] k=%d: got %d solutions, want %d",
				gc.Lower, gc.Upper, gc.Exponent, len(solutions), len(want))
			continue
		}
		for i := range want {
			if solutions[i] != want[i] {
				t.Errorf("[%d, %d] k=%d: solution %d = %+v, want %+v",
					gc.Lower, gc.Upper, gc.Exponent, i, solutions[i], want[i])
			}
		}
	}
}
