package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/roadmapflow/csvgrid"
	"github.com/katalvlaran/roadmapflow/roadmap"
	"github.com/katalvlaran/roadmapflow/schedule"
)

// defaultConfigFile is picked up from the working directory when no
// --config flag names a settings file.
const defaultConfigFile = "roadmapflow.yaml"

// settings carries every knob the tool reads from its layered sources.
// Zero fields mean "unset"; applyDefaults fills them last, and explicit
// flags overlay the result per subcommand.
type settings struct {
	Dependency    string  `yaml:"dependency"     env:"ROADMAPFLOW_DEPENDENCY"`
	Readiness     string  `yaml:"readiness"      env:"ROADMAPFLOW_READINESS"`
	OutputDir     string  `yaml:"output_dir"     env:"ROADMAPFLOW_OUTPUT_DIR"`
	Title         string  `yaml:"title"          env:"ROADMAPFLOW_TITLE"`
	MinDependency float64 `yaml:"min_dependency" env:"ROADMAPFLOW_MIN_DEPENDENCY"`
	MaxMissions   int     `yaml:"max_missions"   env:"ROADMAPFLOW_MAX_MISSIONS"`
	Threshold     float64 `yaml:"threshold"      env:"ROADMAPFLOW_THRESHOLD"`
	Restarts      int     `yaml:"restarts"       env:"ROADMAPFLOW_RESTARTS"`
	Seed          int64   `yaml:"seed"           env:"ROADMAPFLOW_SEED"`
}

// resolveSettings layers the yaml file, then the environment, then
// defaults for whatever stayed zero.
func resolveSettings() (settings, error) {
	var s settings
	if err := s.overlayFile(configPath); err != nil {
		return s, err
	}
	if err := env.Parse(&s); err != nil {
		return s, fmt.Errorf("parse environment: %w", err)
	}
	s.applyDefaults()
	return s, nil
}

// overlayFile merges a yaml settings file into s. Without an explicit
// path the default file is optional; a named one must exist.
func (s *settings) overlayFile(path string) error {
	explicit := path != ""
	if !explicit {
		path = defaultConfigFile
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) && !explicit {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read settings file: %w", err)
	}
	if err := yaml.Unmarshal(data, s); err != nil {
		return fmt.Errorf("parse settings file %s: %w", path, err)
	}
	return nil
}

func (s *settings) applyDefaults() {
	if s.OutputDir == "" {
		s.OutputDir = "."
	}
	if s.Threshold == 0 {
		s.Threshold = schedule.DefaultOptions().Threshold
	}
	if s.Restarts == 0 {
		s.Restarts = schedule.DefaultOptions().Restarts
	}
}

// loadModel loads both tables and combines them into one model. Each
// substituted cell logs at debug level; a nonzero total logs one warning.
func loadModel(s settings) (*roadmap.RoadmapData, error) {
	if s.Dependency == "" || s.Readiness == "" {
		return nil, errors.New("both --dependency and --readiness tables are required")
	}
	dep, err := csvgrid.Load(s.Dependency, csvgrid.DefaultOptions())
	if err != nil {
		return nil, fmt.Errorf("dependency table: %w", err)
	}
	read, err := csvgrid.Load(s.Readiness, csvgrid.DefaultOptions())
	if err != nil {
		return nil, fmt.Errorf("readiness table: %w", err)
	}

	var depCells, readCells int
	d, err := roadmap.Combine(dep, read, roadmap.WithDefaultObserver(func(ev roadmap.DefaultingEvent) {
		switch ev.Kind {
		case roadmap.DefaultedDependency:
			depCells++
		case roadmap.DefaultedReadiness:
			readCells++
		}
		logger.Debug("cell substituted with default",
			zap.String("kind", ev.Kind.String()),
			zap.String("mission", ev.Mission),
			zap.String("capability", ev.Capability),
			zap.String("raw", ev.Raw))
	}))
	if err != nil {
		return nil, err
	}
	if depCells+readCells > 0 {
		logger.Warn("blank or unrecognized cells substituted with defaults",
			zap.Int("dependency_cells", depCells),
			zap.Int("readiness_cells", readCells))
	}
	logger.Info("roadmap combined",
		zap.Int("missions", d.MissionCount()),
		zap.Int("capabilities", len(d.Capabilities())))
	return d, nil
}
