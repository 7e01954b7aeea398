package gen

import (
	"math/rand"
	"testing"

	"github.com/elektrokombinacija/mapf-lp-gen/internal/core"
)

// noRand fails the test if the generator asks it for randomness.
type noRand struct{ t *testing.T }

func (r noRand) Intn(int) int {
	r.t.Fatal("warehouse layout must not consume randomness")
	return 0
}

func TestObstacleCount(t *testing.T) {
	tests := []struct {
		w, h int
		p    float64
		want int
	}{
		{8, 8, 0, 0},
		{8, 8, 10, 6},
		{8, 8, 25, 16},
		{20, 20, 10, 40},
		{20, 20, 25, 100},
		{8, 8, 100, 64},
		{2, 5, 25, 2}, // 2.5 rounds to even
		{1, 7, 50, 4}, // 3.5 rounds to even
		{1, 5, 50, 2}, // 2.5 rounds to even
	}

	for _, tt := range tests {
		got := ObstacleCount(core.Grid{Width: tt.w, Height: tt.h}, tt.p)
		if got != tt.want {
			t.Errorf("ObstacleCount(%dx%d, %v) = %d, want %d", tt.w, tt.h, tt.p, got, tt.want)
		}
	}
}

func TestRandomLayout(t *testing.T) {
	g := core.Grid{Width: 20, Height: 20}
	for seed := int64(0); seed < 20; seed++ {
		for _, p := range []float64{0, 10, 25} {
			rng := rand.New(rand.NewSource(seed))
			l, err := GenerateLayout(g, core.ModeRandom, p, rng)
			if err != nil {
				t.Fatalf("seed %d p %v: %v", seed, p, err)
			}
			if got, want := l.Obstacles.Len(), ObstacleCount(g, p); got != want {
				t.Errorf("seed %d p %v: %d obstacles, want %d", seed, p, got, want)
			}
			if !l.Shared {
				t.Error("random layout should share one pool")
			}
			if l.StartPool.Len()+l.Obstacles.Len() != g.Area() {
				t.Errorf("free + obstacles = %d, want %d", l.StartPool.Len()+l.Obstacles.Len(), g.Area())
			}
			for _, c := range l.Obstacles.Sorted() {
				if !g.Contains(c) {
					t.Errorf("obstacle %v outside grid", c)
				}
				if l.StartPool.Has(c) {
					t.Errorf("obstacle %v also in free pool", c)
				}
			}
		}
	}
}

func TestRandomLayoutFullGrid(t *testing.T) {
	g := core.Grid{Width: 4, Height: 4}
	l, err := GenerateLayout(g, core.ModeRandom, 100, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatal(err)
	}
	if l.Obstacles.Len() != 16 || l.StartPool.Len() != 0 {
		t.Errorf("got %d obstacles, %d free", l.Obstacles.Len(), l.StartPool.Len())
	}
}

func TestWarehouseLayout(t *testing.T) {
	tests := []struct {
		w, h          int
		wantObstacles int
		wantPool      int
		aisleCols     []int
	}{
		{15, 15, 100, 30, []int{8}},
		{21, 18, 180, 36, []int{8, 14}},
	}

	for _, tt := range tests {
		g := core.Grid{Width: tt.w, Height: tt.h}
		l, err := GenerateLayout(g, core.ModeWarehouse, 0, noRand{t})
		if err != nil {
			t.Fatal(err)
		}
		if l.Shared {
			t.Error("warehouse pools should not be shared")
		}
		if l.Obstacles.Len() != tt.wantObstacles {
			t.Errorf("%dx%d: %d obstacles, want %d", tt.w, tt.h, l.Obstacles.Len(), tt.wantObstacles)
		}
		if l.StartPool.Len() != tt.wantPool || l.GoalPool.Len() != tt.wantPool {
			t.Errorf("%dx%d: pools %d/%d, want %d", tt.w, tt.h, l.StartPool.Len(), l.GoalPool.Len(), tt.wantPool)
		}

		for _, c := range g.Cells() {
			edge := c.X <= 2 || c.X >= tt.w-1
			row := (c.Y+1)%3 == 0
			col := false
			for _, x := range tt.aisleCols {
				col = col || c.X == x
			}
			wantFree := edge || row || col
			if l.Obstacles.Has(c) == wantFree {
				t.Errorf("%dx%d: cell %v obstacle=%v, want free=%v", tt.w, tt.h, c, l.Obstacles.Has(c), wantFree)
			}
		}

		for _, c := range l.StartPool.Sorted() {
			if c.X > 2 {
				t.Errorf("start pool cell %v not in left staging area", c)
			}
		}
		for _, c := range l.GoalPool.Sorted() {
			if c.X < tt.w-1 {
				t.Errorf("goal pool cell %v not in right staging area", c)
			}
		}
	}
}

func TestWarehouseIgnoresPercentage(t *testing.T) {
	g := core.Grid{Width: 21, Height: 18}
	a, _ := GenerateLayout(g, core.ModeWarehouse, 0, noRand{t})
	b, _ := GenerateLayout(g, core.ModeWarehouse, 75, noRand{t})

	sa, sb := a.Obstacles.Sorted(), b.Obstacles.Sorted()
	if len(sa) != len(sb) {
		t.Fatalf("obstacle counts differ: %d vs %d", len(sa), len(sb))
	}
	for i := range sa {
		if sa[i] != sb[i] {
			t.Fatalf("obstacle %d differs: %v vs %v", i, sa[i], sb[i])
		}
	}
}

func TestWarehouseNarrowPoolsOverlap(t *testing.T) {
	g := core.Grid{Width: 3, Height: 3}
	l, _ := GenerateLayout(g, core.ModeWarehouse, 0, noRand{t})
	if l.Obstacles.Len() != 0 {
		t.Errorf("3-wide warehouse should be all aisle, got %d obstacles", l.Obstacles.Len())
	}
	// Column 2 is in both staging areas.
	for y := 1; y <= 3; y++ {
		c := core.Cell{X: 2, Y: y}
		if !l.StartPool.Has(c) || !l.GoalPool.Has(c) {
			t.Errorf("cell %v should be in both pools", c)
		}
	}
}
