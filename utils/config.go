package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/rules"
)

// RenderConfig holds the drawing settings of whatever shell displays the grid.
// The kernel never reads them; they are carried so one file configures both.
type RenderConfig struct {
	CellSize         int    `json:"cell_size"`
	ResolutionWidth  int    `json:"resolution_width"`
	ResolutionHeight int    `json:"resolution_height"`
	FPS              int    `json:"fps"`
	ColorBackground  [3]int `json:"color_background"`
	ColorCell        [3]int `json:"color_cell"`
}

// Config holds the configuration for the simulation
type Config struct {
	Width               int           `json:"width"`
	Height              int           `json:"height"`
	Rule                string        `json:"rule"`
	Topology            string        `json:"topology"`
	InitMode            string        `json:"init_mode"`
	Seed                int64         `json:"seed"`
	FrameRate           time.Duration `json:"frame_rate"`
	AutoRestart         bool          `json:"auto_restart"`
	StagnationThreshold int           `json:"stagnation_threshold"`
	UseParallel         bool          `json:"use_parallel"`
	Workers             int           `json:"workers"`
	UseMemoryPool       bool          `json:"use_memory_pool"`
	UseBoundedGrid      bool          `json:"use_bounded_grid"`
	MaxGenerations      int           `json:"max_generations"`
	Logging             bool          `json:"logging"`
	LogFile             string        `json:"log_file"`
	Debug               bool          `json:"debug"`
	ShowFPS             bool          `json:"show_fps"`
	Render              RenderConfig  `json:"render"`
}

// DefaultConfig is a Conway board on the Moore neighbourhood seeded at random. It runs a
// thousand generations without restarting; the bounded scan is on since it never changes
// the result.
func DefaultConfig() Config {
	return Config{
		Width:    60,
		Height:   30,
		Rule:     rules.Conway.String(),
		Topology: rules.Moore.String(),
		InitMode: model.Random.String(),

		FrameRate:      150 * time.Millisecond,
		MaxGenerations: 1000,
		ShowFPS:        true,

		// consecutive stagnant generations before an auto restart
		StagnationThreshold: 5,

		UseBoundedGrid: true,
		UseMemoryPool:  true,

		Render: RenderConfig{
			CellSize:         5,
			ResolutionWidth:  1920,
			ResolutionHeight: 1080,
			FPS:              144,
			ColorBackground:  [3]int{50, 50, 50},
			ColorCell:        [3]int{241, 196, 15},
		},
	}
}

// LoadConfig loads configuration from JSON file on top of the defaults
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// Settings are the parsed, validated kernel settings of a Config.
type Settings struct {
	Rule     rules.Rule
	Topology rules.Topology
	InitMode model.InitMode
}

// Validate checks the configuration and returns the parsed kernel settings
func (c Config) Validate() (Settings, error) {
	var s Settings
	if c.Width <= 0 || c.Height <= 0 {
		return s, errors.Wrapf(model.ErrInvalidDimensions, "[Config.Validate] %dx%d", c.Width, c.Height)
	}

	var err error
	if s.Topology, err = rules.ParseTopology(c.Topology); err != nil {
		return s, errors.Wrap(err, "[Config.Validate]")
	}
	if s.Rule, err = rules.ParseRule(c.Rule); err != nil {
		return s, errors.Wrap(err, "[Config.Validate]")
	}
	if err = s.Rule.ValidFor(s.Topology); err != nil {
		return s, errors.Wrap(err, "[Config.Validate]")
	}
	if s.InitMode, err = model.ParseInitMode(c.InitMode); err != nil {
		return s, errors.Wrap(err, "[Config.Validate]")
	}
	if c.StagnationThreshold < 0 || c.MaxGenerations < 0 || c.Workers < 0 {
		return s, errors.Errorf("[Config.Validate] negative limit: stagnation=%d generations=%d workers=%d",
			c.StagnationThreshold, c.MaxGenerations, c.Workers)
	}
	return s, nil
}
