package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all engine configuration values
type Config struct {
	Display  DisplayConfig  `yaml:"display"`
	View     ViewConfig     `yaml:"view"`
	Render   RenderConfig   `yaml:"render"`
	Timing   TimingConfig   `yaml:"timing"`
	Level    LevelConfig    `yaml:"level"`
	Controls ControlsConfig `yaml:"controls"`
}

type DisplayConfig struct {
	ScreenWidth  int    `yaml:"screen_width"`
	ScreenHeight int    `yaml:"screen_height"`
	WindowTitle  string `yaml:"window_title"`
	Resizable    bool   `yaml:"resizable"`
}

// ViewConfig is the requested 3D view. The projection rounds the width down
// to a multiple of 16 and the height to a multiple of 2.
type ViewConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type RenderConfig struct {
	ParallelColumns bool    `yaml:"parallel_columns"`
	Workers         int     `yaml:"workers"` // 0 picks one per CPU
	CeilingColor    int     `yaml:"ceiling_color"`
	FloorColor      int     `yaml:"floor_color"`
	MaxScaleFactor  float64 `yaml:"max_scale_factor"` // tallest column, in view widths
	DebugOverlay    bool    `yaml:"debug_overlay"`
}

type TimingConfig struct {
	TicsPerSecond int `yaml:"tics_per_second"`
	DoorOpenTics  int `yaml:"door_open_tics"`
	MaxTics       int `yaml:"max_tics"` // cap on tics simulated per update
}

type LevelConfig struct {
	Path    string `yaml:"path"`
	Episode string `yaml:"episode"`
	Keys    []int  `yaml:"keys"`
}

// ControlsConfig speeds are per tic. Moves are in global units (one tile is
// 0x10000); turns are in angle units, AngleScale of which make a degree.
type ControlsConfig struct {
	MoveSpeed    int `yaml:"move_speed"`
	RunSpeed     int `yaml:"run_speed"`
	TurnSpeed    int `yaml:"turn_speed"`
	RunTurnSpeed int `yaml:"run_turn_speed"`
	AngleScale   int `yaml:"angle_scale"`
}

// LoadConfig loads the configuration from a YAML file
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes YAML configuration data
func ParseConfig(data []byte) (*Config, error) {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &config, nil
}

// MustLoadConfig loads the configuration and panics on error
func MustLoadConfig(filename string) *Config {
	config, err := LoadConfig(filename)
	if err != nil {
		panic("Failed to load config: " + err.Error())
	}
	return config
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}

// Helper functions for easy access to commonly used values
func (c *Config) GetScreenWidth() int {
	return orDefault(c.Display.ScreenWidth, 960)
}

func (c *Config) GetScreenHeight() int {
	return orDefault(c.Display.ScreenHeight, 600)
}

func (c *Config) GetWindowTitle() string {
	if c.Display.WindowTitle == "" {
		return "iron-wolf"
	}
	return c.Display.WindowTitle
}

func (c *Config) GetViewWidth() int {
	return orDefault(c.View.Width, 304)
}

func (c *Config) GetViewHeight() int {
	return orDefault(c.View.Height, 144)
}

// GetMaxScaleHeight is the tallest wall column the scaler set is built for.
func (c *Config) GetMaxScaleHeight() int {
	factor := c.Render.MaxScaleFactor
	if factor <= 0 {
		factor = 1.5
	}
	return int(float64(c.GetViewWidth()&^15) * factor)
}

func (c *Config) GetWorkers() int {
	return max(c.Render.Workers, 0)
}

// GetCeilingColor returns the palette index of the ceiling, or def when unset.
func (c *Config) GetCeilingColor(def byte) byte {
	return paletteIndex(c.Render.CeilingColor, def)
}

// GetFloorColor returns the palette index of the floor, or def when unset.
func (c *Config) GetFloorColor(def byte) byte {
	return paletteIndex(c.Render.FloorColor, def)
}

func paletteIndex(v int, def byte) byte {
	if v <= 0 || v > 255 {
		return def
	}
	return byte(v)
}

func (c *Config) GetTicsPerSecond() int {
	return orDefault(c.Timing.TicsPerSecond, 70)
}

func (c *Config) GetDoorOpenTics() int {
	return orDefault(c.Timing.DoorOpenTics, 300)
}

func (c *Config) GetMaxTics() int {
	return orDefault(c.Timing.MaxTics, 10)
}

// GetKeyMask folds the configured starting keys (1..4) into a bitmask.
func (c *Config) GetKeyMask() uint8 {
	var mask uint8
	for _, k := range c.Level.Keys {
		if k >= 1 && k <= 4 {
			mask |= 1 << (k - 1)
		}
	}
	return mask
}

func (c *Config) GetMoveSpeed() int {
	return orDefault(c.Controls.MoveSpeed, 35*150)
}

func (c *Config) GetRunSpeed() int {
	return orDefault(c.Controls.RunSpeed, 70*150)
}

func (c *Config) GetTurnSpeed() int {
	return orDefault(c.Controls.TurnSpeed, 35)
}

func (c *Config) GetRunTurnSpeed() int {
	return orDefault(c.Controls.RunTurnSpeed, 70)
}

func (c *Config) GetAngleScale() int {
	return orDefault(c.Controls.AngleScale, 20)
}
