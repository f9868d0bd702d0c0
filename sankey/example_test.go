package sankey_test

import (
	"fmt"

	"github.com/katalvlaran/roadmapflow/csvgrid"
	"github.com/katalvlaran/roadmapflow/roadmap"
	"github.com/katalvlaran/roadmapflow/sankey"
)

// ExampleBuild projects a two-mission roadmap into the
// mission→capability flow.
func ExampleBuild() {
	dep, _ := csvgrid.New([][]string{
		{"roadmap"}, {"export"},
		{"", "", "Mission A", "Mission B"},
		{"Inspection", "1.0", "0.5"},
	}, csvgrid.DefaultOptions())
	read, _ := csvgrid.New([][]string{
		{"roadmap"}, {"export"},
		{"", "", "Mission A", "Mission B"},
		{"Inspection", "13", "7"},
	}, csvgrid.DefaultOptions())

	data, _ := roadmap.Combine(dep, read)
	f, _ := sankey.Build(data, sankey.FlowMissionToCapability, sankey.DefaultOptions())

	for _, n := range f.Nodes {
		fmt.Printf("%s: %s\n", n.Group, n.Label)
	}
	for _, l := range f.Links {
		fmt.Printf("%d -> %d (%g)\n", l.Source, l.Target, l.Value)
	}
	// Output:
	// mission: Mission A
	// mission: Mission B
	// capability: Inspection
	// 0 -> 2 (1)
	// 1 -> 2 (0.5)
}
