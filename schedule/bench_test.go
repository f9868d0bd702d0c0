package schedule_test

import (
	"fmt"
	"math/rand"
	"strconv"
	"testing"

	"github.com/katalvlaran/roadmapflow/csvgrid"
	"github.com/katalvlaran/roadmapflow/roadmap"
	"github.com/katalvlaran/roadmapflow/schedule"
)

// syntheticData fabricates a missions×capabilities roadmap with
// deterministic pseudo-random cells, mimicking a dense workbook export.
func syntheticData(tb testing.TB, missions, capabilities int, seed int64) *roadmap.RoadmapData {
	tb.Helper()
	r := rand.New(rand.NewSource(seed)) // deterministic seed for reproducibility
	header := []string{"", ""}
	for i := 0; i < missions; i++ {
		header = append(header, fmt.Sprintf("Mission %02d", i))
	}
	dep := [][]string{{"bench"}, {"bench"}, header}
	read := [][]string{{"bench"}, {"bench"}, header}
	for c := 0; c < capabilities; c++ {
		label := fmt.Sprintf("Capability %03d", c)
		depRow, readRow := []string{label}, []string{label}
		for i := 0; i < missions; i++ {
			depRow = append(depRow, strconv.FormatFloat(float64(r.Intn(11))/10, 'f', 1, 64))
			readRow = append(readRow, strconv.Itoa(1+r.Intn(13)))
		}
		dep = append(dep, depRow)
		read = append(read, readRow)
	}

	dg, err := csvgrid.New(dep, csvgrid.DefaultOptions())
	if err != nil {
		tb.Fatalf("csvgrid.New(dep) error: %v", err)
	}
	rg, err := csvgrid.New(read, csvgrid.DefaultOptions())
	if err != nil {
		tb.Fatalf("csvgrid.New(read) error: %v", err)
	}
	d, err := roadmap.Combine(dg, rg)
	if err != nil {
		tb.Fatalf("Combine error: %v", err)
	}
	return d
}

// BenchmarkCost prices a fixed order on roadmaps of two sizes.
func BenchmarkCost(b *testing.B) {
	cases := []struct {
		name         string
		missions     int
		capabilities int
	}{
		{"Typical", 10, 50},
		{"Wide", 30, 300},
	}
	for _, tc := range cases {
		d := syntheticData(b, tc.missions, tc.capabilities, 42)
		order := make([]int, tc.missions)
		for i := range order {
			order[i] = i
		}
		b.Run(tc.name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := schedule.Cost(d, order, schedule.DefaultOptions()); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkOptimize runs the full multi-start search on a mid-size
// roadmap under growing restart budgets.
func BenchmarkOptimize(b *testing.B) {
	d := syntheticData(b, 12, 40, 42)
	for _, restarts := range []int{0, 4, 8} {
		opts := schedule.DefaultOptions()
		opts.Restarts = restarts
		b.Run(fmt.Sprintf("Restarts%d", restarts), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := schedule.Optimize(d, opts); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
