package level

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// ErrUnknownSymbol is returned when a map row uses a symbol missing from the
// legend.
var ErrUnknownSymbol = errors.New("map symbol not in legend")

// LegendEntry is what one map symbol expands to in the two raw planes.
type LegendEntry struct {
	Tile uint16 `yaml:"tile"`
	Info uint16 `yaml:"info"`
}

// File is the YAML level document. Map holds 64 rows of 64 symbols; row 0
// is the northern edge (y = 0).
type File struct {
	Name         string                 `yaml:"name"`
	DoorOpenTics int                    `yaml:"door_open_tics"`
	Keys         uint8                  `yaml:"keys"`
	Legend       map[string]LegendEntry `yaml:"legend"`
	Map          string                 `yaml:"map"`
}

// Load reads and sets up a level file.
func Load(path string) (*Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read level file %s: %w", path, err)
	}
	l, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", path, err)
	}
	return l, nil
}

// Parse sets up a level from a YAML document.
func Parse(data []byte) (*Level, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse level: %w", err)
	}
	planes, err := f.Planes()
	if err != nil {
		return nil, err
	}
	l, err := Setup(planes)
	if err != nil {
		return nil, err
	}
	if f.DoorOpenTics > 0 {
		l.DoorOpenTics = f.DoorOpenTics
	}
	l.Keys = f.Keys
	return l, nil
}

// Planes expands the map rows through the legend.
func (f *File) Planes() (*Planes, error) {
	legend := make(map[rune]LegendEntry, len(f.Legend))
	for sym, e := range f.Legend {
		if utf8.RuneCountInString(sym) != 1 {
			return nil, fmt.Errorf("legend symbol %q must be a single character", sym)
		}
		r, _ := utf8.DecodeRuneInString(sym)
		legend[r] = e
	}

	var rows []string
	for _, line := range strings.Split(f.Map, "\n") {
		line = strings.TrimRight(line, " \t\r")
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}
		rows = append(rows, line)
	}
	if len(rows) != MapSize {
		return nil, fmt.Errorf("%w: got %d rows", ErrBadDimensions, len(rows))
	}

	p := &Planes{Name: f.Name}
	for y, row := range rows {
		if n := utf8.RuneCountInString(row); n != MapSize {
			return nil, fmt.Errorf("%w: row %d has %d symbols", ErrBadDimensions, y, n)
		}
		x := 0
		for _, r := range row {
			e, ok := legend[r]
			if !ok {
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrUnknownSymbol, r, x, y)
			}
			p.Tiles[x][y] = e.Tile
			p.Info[x][y] = e.Info
			x++
		}
	}
	return p, nil
}
