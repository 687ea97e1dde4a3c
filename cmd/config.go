package cmd

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/logsight/logsight/analyze"
)

// Define struct for YAML
type AnalyzerFile struct {
	WindowHours  float64 `yaml:"window_hours"`
	TopN         int     `yaml:"top_n"`
	WatchSeconds int64   `yaml:"watch_seconds"`
	BlockSeconds int64   `yaml:"block_seconds"`
	Chances      int     `yaml:"chances"`
}

// LoadConfig reads a YAML analyzer config. Absent or zero fields keep
// their defaults, so a file only needs the values it wants to change.
func LoadConfig(path string) (analyze.Config, error) {
	cfg := analyze.DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	var file AnalyzerFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return cfg, fmt.Errorf("parsing %s: %w", path, err)
	}

	if file.WindowHours > 0 {
		cfg.WindowHours = file.WindowHours
	}
	if file.TopN > 0 {
		cfg.TopN = file.TopN
	}
	if file.WatchSeconds > 0 {
		cfg.Blocker.WatchSeconds = file.WatchSeconds
	}
	if file.BlockSeconds > 0 {
		cfg.Blocker.BlockSeconds = file.BlockSeconds
	}
	if file.Chances > 0 {
		cfg.Blocker.Chances = file.Chances
	}
	return cfg, nil
}
