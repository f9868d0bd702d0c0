package roadmap_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/roadmapflow/csvgrid"
	"github.com/katalvlaran/roadmapflow/levels"
	"github.com/katalvlaran/roadmapflow/roadmap"
)

// mustGrid builds a Grid from in-memory records or fails the test.
func mustGrid(t *testing.T, records [][]string) *csvgrid.Grid {
	t.Helper()
	g, err := csvgrid.New(records, csvgrid.DefaultOptions())
	if err != nil {
		t.Fatalf("csvgrid.New error: %v", err)
	}
	return g
}

// depRecords and readRecords form the shared three-mission fixture.
func depRecords() [][]string {
	return [][]string{
		{"roadmap"},
		{"v3"},
		{"", "", "Mission A", "Mission B", "Mission C"},
		{"Inspection", "1.0 - Mission Critical", "0.5 - Medium", "0.2 - Low"},
		{"Sampling", "0.8 - High", "", "1.0 - Mission Critical"},
		{"Docking", "Not Used", "0.9 - High", ""},
	}
}

func readRecords() [][]string {
	return [][]string{
		{"roadmap"},
		{"v3"},
		{"", "", "Mission A", "Mission B", "Mission C"},
		{"Inspection", "13 - Sustainable System", "7 - System Demonstration", "4"},
		{"Sampling", "9 - System Qualification", "6 - System Integration", "8 - System Validation"},
		{"Docking", "11 - System Operation", "5 - Component Validation", "2 - Concept Formulation"},
	}
}

// mustCombine joins the shared fixture or fails the test.
func mustCombine(t *testing.T) *roadmap.RoadmapData {
	t.Helper()
	d, err := roadmap.Combine(mustGrid(t, depRecords()), mustGrid(t, readRecords()))
	if err != nil {
		t.Fatalf("Combine error: %v", err)
	}
	return d
}

// CombineSuite exercises the grid join under various inputs.
type CombineSuite struct {
	suite.Suite
}

// TestTwoMissionScenario pins the canonical two-mission, one-capability
// join, including band and ladder label resolution from bare numbers.
func (s *CombineSuite) TestTwoMissionScenario() {
	dep := mustGrid(s.T(), [][]string{
		{"p"}, {"p"},
		{"", "", "Mission A", "Mission B"},
		{"Inspection", "1.0", "0.5"},
	})
	read := mustGrid(s.T(), [][]string{
		{"p"}, {"p"},
		{"", "", "Mission A", "Mission B"},
		{"Inspection", "13", "7"},
	})

	d, err := roadmap.Combine(dep, read)
	require.NoError(s.T(), err)
	require.Equal(s.T(), []string{"Mission A", "Mission B"}, d.MissionNames())

	a, err := d.MissionByName("Mission A")
	require.NoError(s.T(), err)
	ea, ok := a.Entry("Inspection")
	require.True(s.T(), ok)
	require.Equal(s.T(), 1.0, ea.Dependency.Value())
	require.Equal(s.T(), "Mission Critical", ea.Dependency.Label())
	require.Equal(s.T(), 13, ea.Readiness.Value())
	require.Equal(s.T(), "Sustainable System", ea.Readiness.Label())

	b, err := d.MissionByName("Mission B")
	require.NoError(s.T(), err)
	eb, ok := b.Entry("Inspection")
	require.True(s.T(), ok)
	require.Equal(s.T(), 0.5, eb.Dependency.Value())
	require.Equal(s.T(), "Medium", eb.Dependency.Label())
	require.Equal(s.T(), 7, eb.Readiness.Value())
	require.Equal(s.T(), "System Demonstration", eb.Readiness.Label())
}

// TestDependencyDefinesUniverse verifies that readiness-only missions and
// capabilities never reach the model.
func (s *CombineSuite) TestDependencyDefinesUniverse() {
	dep := mustGrid(s.T(), [][]string{
		{"p"}, {"p"},
		{"", "", "Mission A", "Mission B"},
		{"Inspection", "1.0", "0.5"},
	})
	read := mustGrid(s.T(), [][]string{
		{"p"}, {"p"},
		{"", "", "Mission A", "Mission B", "Mission Z"},
		{"Inspection", "13", "7", "9"},
		{"Refueling", "4", "5", "6"},
	})

	d, err := roadmap.Combine(dep, read)
	require.NoError(s.T(), err)
	require.Equal(s.T(), []string{"Mission A", "Mission B"}, d.MissionNames())
	require.Equal(s.T(), []string{"Inspection"}, d.Capabilities())

	_, err = d.MissionByName("Mission Z")
	require.ErrorIs(s.T(), err, roadmap.ErrMissionNotFound)
}

// TestDefaultingEvents verifies that every substituted cell raises exactly
// one observable event, in cell order.
func (s *CombineSuite) TestDefaultingEvents() {
	dep := mustGrid(s.T(), [][]string{
		{"p"}, {"p"},
		{"", "", "Mission A", "Mission B"},
		{"Inspection", "1.0", "garbage"},
		{"Sampling", ""},
	})
	read := mustGrid(s.T(), [][]string{
		{"p"}, {"p"},
		{"", "Mission A"},
		{"Inspection", "13"},
	})

	var got []roadmap.DefaultingEvent
	d, err := roadmap.Combine(dep, read,
		roadmap.WithDefaultObserver(func(ev roadmap.DefaultingEvent) { got = append(got, ev) }))
	require.NoError(s.T(), err)

	want := []roadmap.DefaultingEvent{
		{Kind: roadmap.DefaultedDependency, Mission: "Mission A", Capability: "Sampling", Raw: ""},
		{Kind: roadmap.DefaultedReadiness, Mission: "Mission A", Capability: "Sampling", Raw: ""},
		{Kind: roadmap.DefaultedDependency, Mission: "Mission B", Capability: "Inspection", Raw: "garbage"},
		{Kind: roadmap.DefaultedReadiness, Mission: "Mission B", Capability: "Inspection", Raw: ""},
		{Kind: roadmap.DefaultedDependency, Mission: "Mission B", Capability: "Sampling", Raw: ""},
		{Kind: roadmap.DefaultedReadiness, Mission: "Mission B", Capability: "Sampling", Raw: ""},
	}
	require.Equal(s.T(), want, got)

	// The substituted cells hold the documented defaults.
	b, err := d.MissionByName("Mission B")
	require.NoError(s.T(), err)
	e, ok := b.Entry("Inspection")
	require.True(s.T(), ok)
	require.Equal(s.T(), levels.DefaultDependency(), e.Dependency)
	require.Equal(s.T(), levels.DefaultReadiness(), e.Readiness)
}

// TestObserverStacking verifies that repeated WithDefaultObserver options
// all receive events.
func (s *CombineSuite) TestObserverStacking() {
	dep := mustGrid(s.T(), [][]string{
		{"p"}, {"p"},
		{"", "Mission A"},
		{"Inspection", ""},
	})
	read := mustGrid(s.T(), [][]string{
		{"p"}, {"p"},
		{"", "Mission A"},
		{"Inspection", "13"},
	})

	first, second := 0, 0
	_, err := roadmap.Combine(dep, read,
		roadmap.WithDefaultObserver(func(roadmap.DefaultingEvent) { first++ }),
		roadmap.WithDefaultObserver(func(roadmap.DefaultingEvent) { second++ }),
		roadmap.WithDefaultObserver(nil))
	require.NoError(s.T(), err)
	require.Equal(s.T(), 1, first)
	require.Equal(s.T(), 1, second)
}

// TestDuplicateCapabilityRow verifies first-position, last-value handling.
func (s *CombineSuite) TestDuplicateCapabilityRow() {
	dep := mustGrid(s.T(), [][]string{
		{"p"}, {"p"},
		{"", "", "Mission A"},
		{"Inspection", "0.2"},
		{"Sampling", "0.6"},
		{"Inspection", "0.9"},
	})
	read := mustGrid(s.T(), [][]string{
		{"p"}, {"p"},
		{"", "", "Mission A"},
		{"Inspection", "13"},
	})

	d, err := roadmap.Combine(dep, read)
	require.NoError(s.T(), err)

	a, err := d.MissionByName("Mission A")
	require.NoError(s.T(), err)
	require.Equal(s.T(), []string{"Inspection", "Sampling"}, a.Capabilities())

	e, ok := a.Entry("Inspection")
	require.True(s.T(), ok)
	require.Equal(s.T(), 0.9, e.Dependency.Value())
}

// TestIdempotence verifies structural equality of two identical joins.
func (s *CombineSuite) TestIdempotence() {
	d1 := mustCombine(s.T())
	d2 := mustCombine(s.T())
	require.Equal(s.T(), d1, d2)
}

// TestNilGrid covers the nil-input guard.
func (s *CombineSuite) TestNilGrid() {
	g := mustGrid(s.T(), depRecords())
	_, err := roadmap.Combine(nil, g)
	require.True(s.T(), errors.Is(err, roadmap.ErrNilGrid))
	_, err = roadmap.Combine(g, nil)
	require.True(s.T(), errors.Is(err, roadmap.ErrNilGrid))
}

// Entry point for running the suite.
func TestCombineSuite(t *testing.T) {
	suite.Run(t, new(CombineSuite))
}
