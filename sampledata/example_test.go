package sampledata_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/roadmapflow/sampledata"
)

// ExampleRoadmap shows the demo model's shape.
func ExampleRoadmap() {
	d := sampledata.Roadmap()
	fmt.Println("missions:", d.MissionCount())
	fmt.Println("capabilities:", len(d.Capabilities()))

	m, err := d.MissionByName("Deep Space Missions")
	if err != nil {
		fmt.Println("lookup:", err)
		return
	}
	fmt.Println("critical:", strings.Join(m.CriticalCapabilities(), ", "))
	// Output:
	// missions: 4
	// capabilities: 15
	// critical: Communication Systems, Life Support
}
