package config

import (
	"fmt"
	"os"

	"github.com/nstehr/vimy/nub-core/model"
	"gopkg.in/yaml.v3"
)

// BoardMap is the on-disk description of an arena.
type BoardMap struct {
	Size     int              `yaml:"size" json:"size"`
	Center   *model.Location  `yaml:"center,omitempty" json:"center,omitempty"`
	Spawn    []model.Location `yaml:"spawn" json:"spawn"`
	Obstacle []model.Location `yaml:"obstacle" json:"obstacle"`
}

// Board validates the map and builds a grid board from it.
func (m BoardMap) Board() (*model.GridBoard, error) {
	if m.Size <= 0 {
		return nil, fmt.Errorf("board size must be positive, got %d", m.Size)
	}
	inBounds := func(l model.Location) bool {
		return l.X >= 0 && l.Y >= 0 && l.X < m.Size && l.Y < m.Size
	}
	center := model.Loc(m.Size/2, m.Size/2)
	if m.Center != nil {
		center = *m.Center
	}
	if !inBounds(center) {
		return nil, fmt.Errorf("center %s outside %dx%d board", center, m.Size, m.Size)
	}
	for _, l := range m.Spawn {
		if !inBounds(l) {
			return nil, fmt.Errorf("spawn cell %s outside board", l)
		}
	}
	for _, l := range m.Obstacle {
		if l == center {
			return nil, fmt.Errorf("center %s is an obstacle", center)
		}
	}
	return model.NewGridBoard(m.Size, center, m.Spawn, m.Obstacle), nil
}

// ParseBoard decodes a YAML board map.
func ParseBoard(b []byte) (*model.GridBoard, error) {
	var m BoardMap
	if err := yaml.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("decode board map: %w", err)
	}
	return m.Board()
}

// LoadBoard reads a YAML board map from path, or returns the default arena
// when path is empty.
func LoadBoard(path string) (*model.GridBoard, error) {
	if path == "" {
		return model.DefaultBoard(), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read board map: %w", err)
	}
	board, err := ParseBoard(b)
	if err != nil {
		return nil, fmt.Errorf("board map %s: %w", path, err)
	}
	return board, nil
}
