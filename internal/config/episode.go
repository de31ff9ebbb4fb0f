package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// EpisodeLevel is one map of an episode. Paths are relative to the episode
// file.
type EpisodeLevel struct {
	Name string `yaml:"name"`
	Path string `yaml:"path"`
}

// EpisodeConfig lists the maps an elevator walks through, in order.
type EpisodeConfig struct {
	Name   string         `yaml:"name"`
	Levels []EpisodeLevel `yaml:"levels"`

	dir string
}

// LoadEpisodeConfig loads an episode from YAML.
func LoadEpisodeConfig(filename string) (*EpisodeConfig, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read episode config: %w", err)
	}

	var ep EpisodeConfig
	if err := yaml.Unmarshal(data, &ep); err != nil {
		return nil, fmt.Errorf("failed to parse episode config: %w", err)
	}
	if len(ep.Levels) == 0 {
		return nil, fmt.Errorf("episode %q has no levels", filename)
	}
	ep.dir = filepath.Dir(filename)
	return &ep, nil
}

// MustLoadEpisodeConfig loads an episode or panics.
func MustLoadEpisodeConfig(filename string) *EpisodeConfig {
	ep, err := LoadEpisodeConfig(filename)
	if err != nil {
		panic(err)
	}
	return ep
}

// LevelPath returns the file of level i resolved against the episode file.
func (e *EpisodeConfig) LevelPath(i int) string {
	p := e.Levels[i].Path
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(e.dir, p)
}

// Next returns the index after i, or false after the last level.
func (e *EpisodeConfig) Next(i int) (int, bool) {
	if i+1 >= len(e.Levels) {
		return i, false
	}
	return i + 1, true
}
