package gen

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/elektrokombinacija/mapf-lp-gen/internal/core"
)

func gridPool(w, h int) core.CellSet {
	return core.NewCellSet(core.Grid{Width: w, Height: h}.Cells()...)
}

func TestSampleDistinct(t *testing.T) {
	pool := core.Grid{Width: 5, Height: 5}.Cells()
	orig := append([]core.Cell(nil), pool...)

	got := sample(pool, 10, rand.New(rand.NewSource(3)))
	if len(got) != 10 {
		t.Fatalf("got %d cells, want 10", len(got))
	}
	seen := make(map[core.Cell]bool)
	for _, c := range got {
		if seen[c] {
			t.Errorf("cell %v drawn twice", c)
		}
		seen[c] = true
	}
	for i := range pool {
		if pool[i] != orig[i] {
			t.Fatal("sample modified its pool")
		}
	}
}

func TestPlaceAgentsSharedPool(t *testing.T) {
	pool := gridPool(8, 8)
	starts, goals, err := PlaceAgents(pool, pool, 10, true, rand.New(rand.NewSource(42)))
	if err != nil {
		t.Fatal(err)
	}
	if len(starts) != 10 || len(goals) != 10 {
		t.Fatalf("got %d starts, %d goals", len(starts), len(goals))
	}

	seen := make(map[core.Cell]bool)
	for _, c := range append(append([]core.Cell(nil), starts...), goals...) {
		if !pool.Has(c) {
			t.Errorf("cell %v not in pool", c)
		}
		if seen[c] {
			t.Errorf("cell %v used twice", c)
		}
		seen[c] = true
	}
}

func TestPlaceAgentsSeparatePools(t *testing.T) {
	left := core.NewCellSet(core.Cell{X: 1, Y: 1}, core.Cell{X: 1, Y: 2}, core.Cell{X: 1, Y: 3})
	right := core.NewCellSet(core.Cell{X: 5, Y: 1}, core.Cell{X: 5, Y: 2}, core.Cell{X: 5, Y: 3})

	starts, goals, err := PlaceAgents(left, right, 3, false, rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatal(err)
	}
	// Requesting the full pool consumes it.
	for _, c := range left.Sorted() {
		found := false
		for _, s := range starts {
			found = found || s == c
		}
		if !found {
			t.Errorf("start pool cell %v unused", c)
		}
	}
	for _, g := range goals {
		if !right.Has(g) {
			t.Errorf("goal %v not from goal pool", g)
		}
	}
}

func TestPlaceAgentsFeasibility(t *testing.T) {
	small := gridPool(2, 2)
	big := gridPool(4, 4)

	tests := []struct {
		name     string
		starts   core.CellSet
		goals    core.CellSet
		n        int
		shared   bool
		wantPool string
	}{
		{"shared exact", big, big, 8, true, ""},
		{"shared short", big, big, 9, true, "free"},
		{"start short", small, big, 5, false, "start"},
		{"goal short", big, small, 5, false, "goal"},
		{"separate exact", small, small, 4, false, ""},
	}

	for _, tt := range tests {
		_, _, err := PlaceAgents(tt.starts, tt.goals, tt.n, tt.shared, rand.New(rand.NewSource(1)))
		if tt.wantPool == "" {
			if err != nil {
				t.Errorf("%s: unexpected error %v", tt.name, err)
			}
			continue
		}
		var fe *core.FeasibilityError
		if !errors.As(err, &fe) {
			t.Errorf("%s: got %v, want FeasibilityError", tt.name, err)
			continue
		}
		if fe.Pool != tt.wantPool {
			t.Errorf("%s: pool %q, want %q", tt.name, fe.Pool, tt.wantPool)
		}
	}
}

func TestPlaceAgentsDeterministic(t *testing.T) {
	pool := gridPool(10, 10)
	s1, g1, _ := PlaceAgents(pool, pool, 12, true, rand.New(rand.NewSource(99)))
	s2, g2, _ := PlaceAgents(pool, pool, 12, true, rand.New(rand.NewSource(99)))
	for i := range s1 {
		if s1[i] != s2[i] || g1[i] != g2[i] {
			t.Fatalf("agent %d differs between identical runs", i+1)
		}
	}
}
