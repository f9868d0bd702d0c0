package sampledata

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/katalvlaran/roadmapflow/csvgrid"
	"github.com/katalvlaran/roadmapflow/levels"
	"github.com/katalvlaran/roadmapflow/roadmap"
)

// ErrNilData rejects a nil roadmap model.
var ErrNilData = errors.New("sampledata: roadmap data is nil")

// Written file names, matching the chart naming scheme.
const (
	dependencyFileName = "roadmap_dependency.csv"
	readinessFileName  = "roadmap_readiness.csv"
)

// DependencyCSV returns the demo dependency table in grid convention:
// two preamble rows, the mission header at row 2, capability labels in
// column 0. Each call returns a fresh copy.
func DependencyCSV() [][]string {
	return [][]string{
		{"Capability Roadmap"},
		{"Dependency Levels"},
		{"", "Satellite Deployment", "Spare Parts Manufacturing", "Space Station Maintenance", "Deep Space Missions"},
		{"Inspection and Metrology", "1.0 - Mission Critical", "", "0.9 - High", ""},
		{"Relocation", "1.0 - Mission Critical", "", "", ""},
		{"Docking", "0.8 - High", "", "", ""},
		{"Power Systems", "0.9 - High", "", "", ""},
		{"Parts and Good Manufacture", "", "1.0 - Mission Critical", "", ""},
		{"Material Processing", "", "0.9 - High", "", ""},
		{"Quality Control", "", "0.8 - High", "", ""},
		{"Assembly", "", "0.7 - Medium", "", ""},
		{"Repair Operations", "", "", "1.0 - Mission Critical", ""},
		{"Tool Management", "", "", "0.6 - Medium", ""},
		{"Safety Systems", "", "", "1.0 - Mission Critical", ""},
		{"Communication Systems", "", "", "", "1.0 - Mission Critical"},
		{"Navigation", "", "", "", "0.9 - High"},
		{"Life Support", "", "", "", "1.0 - Mission Critical"},
		{"Propulsion", "", "", "", "0.8 - High"},
	}
}

// ReadinessCSV returns the demo readiness table over the same missions
// and capabilities as DependencyCSV. Each call returns a fresh copy.
func ReadinessCSV() [][]string {
	return [][]string{
		{"Capability Roadmap"},
		{"Readiness Levels"},
		{"", "Satellite Deployment", "Spare Parts Manufacturing", "Space Station Maintenance", "Deep Space Missions"},
		{"Inspection and Metrology", "13 - Sustainable System", "", "13 - Sustainable System", ""},
		{"Relocation", "7 - System Demonstration", "", "", ""},
		{"Docking", "9 - System Qualification", "", "", ""},
		{"Power Systems", "11 - System Operation", "", "", ""},
		{"Parts and Good Manufacture", "", "5 - Component Validation", "", ""},
		{"Material Processing", "", "6 - System Integration", "", ""},
		{"Quality Control", "", "8 - System Validation", "", ""},
		{"Assembly", "", "7 - System Demonstration", "", ""},
		{"Repair Operations", "", "", "4 - Component Testing", ""},
		{"Tool Management", "", "", "8 - System Validation", ""},
		{"Safety Systems", "", "", "10 - System Test", ""},
		{"Communication Systems", "", "", "", "12 - System Proven"},
		{"Navigation", "", "", "", "11 - System Operation"},
		{"Life Support", "", "", "", "9 - System Qualification"},
		{"Propulsion", "", "", "", "8 - System Validation"},
	}
}

// Roadmap combines the two demo tables into a model: four missions over
// a fifteen-capability union, four rated entries per mission, blanks
// carrying the documented defaults.
func Roadmap() *roadmap.RoadmapData {
	d, err := roadmap.Combine(mustGrid(DependencyCSV()), mustGrid(ReadinessCSV()))
	if err != nil {
		panic("sampledata: combine demo tables: " + err.Error())
	}
	return d
}

func mustGrid(records [][]string) *csvgrid.Grid {
	g, err := csvgrid.New(records, csvgrid.DefaultOptions())
	if err != nil {
		panic("sampledata: build demo grid: " + err.Error())
	}
	return g
}

// WriteCSVFiles writes the two demo tables as CSV files under dir,
// creating the directory if needed. An empty dir means the working
// directory. The written files load back through csvgrid.Load into
// exactly Roadmap(). Returns both written paths.
func WriteCSVFiles(dir string) (depPath, readPath string, err error) {
	if dir == "" {
		dir = "."
	}
	if err = os.MkdirAll(dir, 0o755); err != nil {
		return "", "", fmt.Errorf("sampledata: create output dir: %w", err)
	}
	depPath = filepath.Join(dir, dependencyFileName)
	if err = writeRecords(depPath, DependencyCSV()); err != nil {
		return "", "", err
	}
	readPath = filepath.Join(dir, readinessFileName)
	if err = writeRecords(readPath, ReadinessCSV()); err != nil {
		return "", "", err
	}
	return depPath, readPath, nil
}

func writeRecords(path string, records [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("sampledata: create %s: %w", filepath.Base(path), err)
	}
	w := csv.NewWriter(f)
	if err := w.WriteAll(records); err != nil {
		f.Close()
		return fmt.Errorf("sampledata: write %s: %w", filepath.Base(path), err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("sampledata: close %s: %w", filepath.Base(path), err)
	}
	return nil
}

// SimplifiedCSV exports one value plane of a model transposed: header
// row of capability names, then one row per mission in header order.
// Cells render in workbook spelling ("0.8 - High"); cells that carry
// only a substituted default stay blank.
//
// Errors: ErrNilData; roadmap.ErrUnknownAxis.
func SimplifiedCSV(d *roadmap.RoadmapData, axis roadmap.Axis) ([][]string, error) {
	if d == nil {
		return nil, ErrNilData
	}
	if _, err := roadmap.ParseAxis(string(axis)); err != nil {
		return nil, err
	}

	caps := d.Capabilities()
	records := make([][]string, 0, d.MissionCount()+1)
	records = append(records, append([]string{""}, caps...))
	for _, m := range d.Missions() {
		row := make([]string, 0, len(caps)+1)
		row = append(row, m.Name())
		for _, capName := range caps {
			row = append(row, simplifiedCell(m, capName, axis))
		}
		records = append(records, row)
	}
	return records, nil
}

func simplifiedCell(m *roadmap.Mission, capability string, axis roadmap.Axis) string {
	e, ok := m.Entry(capability)
	if !ok {
		return ""
	}
	if axis == roadmap.AxisDependency {
		if e.Dependency.Band() == levels.BandNotApplicable {
			return ""
		}
		return e.Dependency.String()
	}
	if !e.Readiness.Known() {
		return ""
	}
	return e.Readiness.String()
}
