package app

import (
	"fmt"

	astar "github.com/pdrpinto/gridastar"
	"github.com/pdrpinto/gridastar/internal/imagegrid"
)

// Config holds everything a single solve needs.
type Config struct {
	ImagePath    string
	Start        astar.Cell
	End          astar.Cell
	Barriers     []astar.Cell
	Strokes      [][2]astar.Cell
	Threshold    int
	Speed        int
	Save         bool
	OutputPath   string
	ShowExplored bool
	Scale        int
	LogFormat    string
	LogLevel     string
}

// DefaultConfig returns the values used when neither a run file nor a flag
// sets them.
func DefaultConfig() Config {
	return Config{
		Threshold: int(imagegrid.DefaultThreshold),
		Scale:     1,
		LogFormat: "text",
		LogLevel:  "info",
	}
}

// NewConfig validates cfg and fills derived values.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.ImagePath == "" {
		return nil, fmt.Errorf("image path must not be empty")
	}
	if cfg.Threshold < 0 || cfg.Threshold > 255 {
		return nil, fmt.Errorf("threshold must be between 0 and 255, got %d", cfg.Threshold)
	}
	if cfg.Speed < 0 || cfg.Speed > 10 {
		return nil, fmt.Errorf("speed must be between 0 and 10, got %d", cfg.Speed)
	}
	if cfg.Scale < 1 {
		cfg.Scale = 1
	}
	if cfg.Save && cfg.OutputPath == "" {
		cfg.OutputPath = imagegrid.SolvedName(cfg.ImagePath)
	}
	return &cfg, nil
}

// SampleEvery is how many feed events pass between progress reports. The
// feed is off at speed 0; higher speeds report less often.
func (c *Config) SampleEvery() int {
	if c.Speed <= 0 {
		return 0
	}
	return 20 * c.Speed
}
