package model

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Location is a grid cell. It is encoded as a two-element [x, y] array on the
// wire and in board maps.
type Location struct {
	X int
	Y int
}

func Loc(x, y int) Location { return Location{X: x, Y: y} }

func (l Location) String() string { return fmt.Sprintf("(%d,%d)", l.X, l.Y) }

// Less orders locations row first (Y), then column (X).
func (l Location) Less(o Location) bool {
	if l.Y != o.Y {
		return l.Y < o.Y
	}
	return l.X < o.X
}

// Distance is the Manhattan distance between two cells.
func (l Location) Distance(o Location) int {
	return abs(l.X-o.X) + abs(l.Y-o.Y)
}

func (l Location) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{l.X, l.Y})
}

func (l *Location) UnmarshalJSON(b []byte) error {
	var xy []int
	if err := json.Unmarshal(b, &xy); err != nil {
		return fmt.Errorf("unmarshal location: %w", err)
	}
	if len(xy) != 2 {
		return fmt.Errorf("location must have 2 coordinates, got %d", len(xy))
	}
	l.X, l.Y = xy[0], xy[1]
	return nil
}

func (l *Location) UnmarshalYAML(node *yaml.Node) error {
	var xy []int
	if err := node.Decode(&xy); err != nil {
		return fmt.Errorf("line %d: decode location: %w", node.Line, err)
	}
	if len(xy) != 2 {
		return fmt.Errorf("line %d: location must have 2 coordinates, got %d", node.Line, len(xy))
	}
	l.X, l.Y = xy[0], xy[1]
	return nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
