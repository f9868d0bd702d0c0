package sankey_test

import (
	"reflect"
	"testing"

	"github.com/katalvlaran/roadmapflow/csvgrid"
	"github.com/katalvlaran/roadmapflow/roadmap"
	"github.com/katalvlaran/roadmapflow/sankey"
)

// mustData combines the shared three-mission fixture.
//
// Dependency grid               readiness grid
//
//	          A     B     C            A   B   C
//	Inspection 1.0   0.5   0.2         13   7   4
//	Sampling   0.8   (na)  1.0          9   6   8
//	Docking    NotUsed 0.9 (na)        11   5   2
func mustData(t *testing.T) *roadmap.RoadmapData {
	t.Helper()
	dep := [][]string{
		{"p"}, {"p"},
		{"", "", "Mission A", "Mission B", "Mission C"},
		{"Inspection", "1.0 - Mission Critical", "0.5 - Medium", "0.2 - Low"},
		{"Sampling", "0.8 - High", "", "1.0 - Mission Critical"},
		{"Docking", "Not Used", "0.9 - High", ""},
	}
	read := [][]string{
		{"p"}, {"p"},
		{"", "", "Mission A", "Mission B", "Mission C"},
		{"Inspection", "13 - Sustainable System", "7 - System Demonstration", "4"},
		{"Sampling", "9 - System Qualification", "6 - System Integration", "8 - System Validation"},
		{"Docking", "11 - System Operation", "5 - Component Validation", "2 - Concept Formulation"},
	}
	dg, err := csvgrid.New(dep, csvgrid.DefaultOptions())
	if err != nil {
		t.Fatalf("csvgrid.New(dep) error: %v", err)
	}
	rg, err := csvgrid.New(read, csvgrid.DefaultOptions())
	if err != nil {
		t.Fatalf("csvgrid.New(read) error: %v", err)
	}
	d, err := roadmap.Combine(dg, rg)
	if err != nil {
		t.Fatalf("Combine error: %v", err)
	}
	return d
}

func mustBuild(t *testing.T, d *roadmap.RoadmapData, typ sankey.FlowType, opts sankey.Options) *sankey.FlowData {
	t.Helper()
	f, err := sankey.Build(d, typ, opts)
	if err != nil {
		t.Fatalf("Build(%s) error: %v", typ, err)
	}
	return f
}

//----------------------------------------------------------------------------//
// Node and Link Ordering Tests
//----------------------------------------------------------------------------//

// TestMissionToCapability_Ordering pins the exact staged node order and the
// mission-major link order, with zero-weight and defaulted entries absent.
func TestMissionToCapability_Ordering(t *testing.T) {
	f := mustBuild(t, mustData(t), sankey.FlowMissionToCapability, sankey.DefaultOptions())

	wantNodes := []sankey.Node{
		{Label: "Mission A", Group: sankey.GroupMission},
		{Label: "Mission B", Group: sankey.GroupMission},
		{Label: "Mission C", Group: sankey.GroupMission},
		{Label: "Inspection", Group: sankey.GroupCapability},
		{Label: "Sampling", Group: sankey.GroupCapability},
		{Label: "Docking", Group: sankey.GroupCapability},
	}
	if !reflect.DeepEqual(f.Nodes, wantNodes) {
		t.Errorf("Nodes = %v; want %v", f.Nodes, wantNodes)
	}

	wantLinks := []sankey.Link{
		{Source: 0, Target: 3, Value: 1.0},
		{Source: 0, Target: 4, Value: 0.8},
		{Source: 1, Target: 3, Value: 0.5},
		{Source: 1, Target: 5, Value: 0.9},
		{Source: 2, Target: 3, Value: 0.2},
		{Source: 2, Target: 4, Value: 1.0},
	}
	if !reflect.DeepEqual(f.Links, wantLinks) {
		t.Errorf("Links = %v; want %v", f.Links, wantLinks)
	}
}

// TestCapabilityToReadiness_Ordering pins first-seen rung discovery and
// count weights.
func TestCapabilityToReadiness_Ordering(t *testing.T) {
	f := mustBuild(t, mustData(t), sankey.FlowCapabilityToReadiness, sankey.DefaultOptions())

	wantCaps := []string{"Inspection", "Sampling", "Docking"}
	if got := f.NodesInGroup(sankey.GroupCapability); !reflect.DeepEqual(got, wantCaps) {
		t.Errorf("capability stage = %v; want %v", got, wantCaps)
	}

	// First-seen while walking missions in header order, rows in row order;
	// Mission B's Sampling and Mission C's Docking are defaulted and
	// contribute nothing.
	wantRungs := []string{
		"Sustainable System",
		"System Qualification",
		"System Operation",
		"System Demonstration",
		"Component Validation",
		"Component Testing",
		"System Validation",
	}
	if got := f.NodesInGroup(sankey.GroupReadiness); !reflect.DeepEqual(got, wantRungs) {
		t.Errorf("readiness stage = %v; want %v", got, wantRungs)
	}

	wantLinks := []sankey.Link{
		{Source: 0, Target: 3, Value: 1},
		{Source: 1, Target: 4, Value: 1},
		{Source: 2, Target: 5, Value: 1},
		{Source: 0, Target: 6, Value: 1},
		{Source: 2, Target: 7, Value: 1},
		{Source: 0, Target: 8, Value: 1},
		{Source: 1, Target: 9, Value: 1},
	}
	if !reflect.DeepEqual(f.Links, wantLinks) {
		t.Errorf("Links = %v; want %v", f.Links, wantLinks)
	}
}

// TestMissionToReadiness_Ordering pins the three-stage composition: the
// dependency-valued block precedes the count block, over shared indices.
func TestMissionToReadiness_Ordering(t *testing.T) {
	f := mustBuild(t, mustData(t), sankey.FlowMissionToReadiness, sankey.DefaultOptions())

	if got := f.NodesInGroup(sankey.GroupMission); !reflect.DeepEqual(got, []string{"Mission A", "Mission B", "Mission C"}) {
		t.Errorf("mission stage = %v; want header order", got)
	}
	if got := f.NodesInGroup(sankey.GroupCapability); !reflect.DeepEqual(got, []string{"Inspection", "Sampling", "Docking"}) {
		t.Errorf("capability stage = %v; want union order", got)
	}
	if len(f.Nodes) != 13 {
		t.Fatalf("len(Nodes) = %d; want 13", len(f.Nodes))
	}

	wantLinks := []sankey.Link{
		{Source: 0, Target: 3, Value: 1.0},
		{Source: 0, Target: 4, Value: 0.8},
		{Source: 1, Target: 3, Value: 0.5},
		{Source: 1, Target: 5, Value: 0.9},
		{Source: 2, Target: 3, Value: 0.2},
		{Source: 2, Target: 4, Value: 1.0},
		{Source: 3, Target: 6, Value: 1},
		{Source: 4, Target: 7, Value: 1},
		{Source: 5, Target: 8, Value: 1},
		{Source: 3, Target: 9, Value: 1},
		{Source: 5, Target: 10, Value: 1},
		{Source: 3, Target: 11, Value: 1},
		{Source: 4, Target: 12, Value: 1},
	}
	if !reflect.DeepEqual(f.Links, wantLinks) {
		t.Errorf("Links = %v; want %v", f.Links, wantLinks)
	}
}

// TestDependencyFlow_Ordering pins categorical band grouping: stage one
// holds band labels in first-seen order, not numeric values.
func TestDependencyFlow_Ordering(t *testing.T) {
	f := mustBuild(t, mustData(t), sankey.FlowDependencyFlow, sankey.DefaultOptions())

	wantBands := []string{"Mission Critical", "High", "Not Used", "Medium", "Low"}
	if got := f.NodesInGroup(sankey.GroupDependency); !reflect.DeepEqual(got, wantBands) {
		t.Errorf("band stage = %v; want %v", got, wantBands)
	}
	if got := f.NodesInGroup(sankey.GroupCapability); !reflect.DeepEqual(got, []string{"Inspection", "Sampling", "Docking"}) {
		t.Errorf("capability stage = %v; want union order", got)
	}
	if len(f.Nodes) != 15 {
		t.Fatalf("len(Nodes) = %d; want 15", len(f.Nodes))
	}

	wantLinks := []sankey.Link{
		{Source: 0, Target: 5, Value: 1},
		{Source: 1, Target: 6, Value: 1},
		{Source: 2, Target: 7, Value: 1},
		{Source: 3, Target: 5, Value: 1},
		{Source: 1, Target: 7, Value: 1},
		{Source: 4, Target: 5, Value: 1},
		{Source: 0, Target: 6, Value: 1},
		{Source: 5, Target: 8, Value: 1},
		{Source: 6, Target: 9, Value: 1},
		{Source: 7, Target: 10, Value: 1},
		{Source: 5, Target: 11, Value: 1},
		{Source: 7, Target: 12, Value: 1},
		{Source: 5, Target: 13, Value: 1},
		{Source: 6, Target: 14, Value: 1},
	}
	if !reflect.DeepEqual(f.Links, wantLinks) {
		t.Errorf("Links = %v; want %v", f.Links, wantLinks)
	}
}

// TestDeterminism verifies that two builds over one model are identical.
func TestDeterminism(t *testing.T) {
	d := mustData(t)
	for _, typ := range sankey.FlowTypes() {
		f1 := mustBuild(t, d, typ, sankey.DefaultOptions())
		f2 := mustBuild(t, d, typ, sankey.DefaultOptions())
		if !reflect.DeepEqual(f1, f2) {
			t.Errorf("Build(%s) not deterministic", typ)
		}
	}
}
