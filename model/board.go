package model

import "slices"

// TerrainTag labels a cell. A cell may carry more than one tag.
type TerrainTag string

const (
	TagNormal   TerrainTag = "normal"
	TagSpawn    TerrainTag = "spawn"
	TagObstacle TerrainTag = "obstacle"
	TagInvalid  TerrainTag = "invalid"
)

// Board answers the spatial questions a decision needs. Implementations must
// be safe for concurrent reads.
type Board interface {
	// Adjacent returns the orthogonal neighbors of loc that are neither
	// invalid nor obstacles, in a stable order.
	Adjacent(loc Location) []Location
	TerrainTags(loc Location) []TerrainTag
	// StepToward returns one step from `from` that reduces the distance to
	// `to`. It does not route around obstacles.
	StepToward(from, to Location) Location
	CenterPoint() Location
}

// HasTag reports whether loc carries tag on b.
func HasTag(b Board, loc Location, tag TerrainTag) bool {
	return slices.Contains(b.TerrainTags(loc), tag)
}

// neighborOffsets fixes the order Adjacent reports neighbors in.
var neighborOffsets = [4]Location{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}

// GridBoard is a square arena of Size×Size cells.
type GridBoard struct {
	Size      int
	Center    Location
	spawn     map[Location]bool
	obstacles map[Location]bool
}

// NewGridBoard builds a board from explicit spawn and obstacle lists.
// A cell listed in both is treated as an obstacle.
func NewGridBoard(size int, center Location, spawn, obstacles []Location) *GridBoard {
	b := &GridBoard{
		Size:      size,
		Center:    center,
		spawn:     make(map[Location]bool, len(spawn)),
		obstacles: make(map[Location]bool, len(obstacles)),
	}
	for _, l := range obstacles {
		b.obstacles[l] = true
	}
	for _, l := range spawn {
		if !b.obstacles[l] {
			b.spawn[l] = true
		}
	}
	return b
}

// DefaultArenaSize is the edge length of the standard arena.
const DefaultArenaSize = 19

// DefaultBoard returns the standard circular arena: cells more than 9 cells
// from the center are obstacles and the passable ring touching them is the
// spawn zone.
func DefaultBoard() *GridBoard {
	size := DefaultArenaSize
	center := Loc(size/2, size/2)
	radius := size / 2

	var obstacles []Location
	blocked := make(map[Location]bool)
	for x := range size {
		for y := range size {
			dx, dy := x-center.X, y-center.Y
			// Half a cell of slack keeps the circle from looking jagged at the poles.
			if 4*(dx*dx+dy*dy) > (2*radius+1)*(2*radius+1) {
				l := Loc(x, y)
				obstacles = append(obstacles, l)
				blocked[l] = true
			}
		}
	}

	var spawn []Location
	for x := range size {
		for y := range size {
			l := Loc(x, y)
			if blocked[l] {
				continue
			}
			for _, off := range neighborOffsets {
				n := Loc(x+off.X, y+off.Y)
				if n.X < 0 || n.Y < 0 || n.X >= size || n.Y >= size || blocked[n] {
					spawn = append(spawn, l)
					break
				}
			}
		}
	}
	return NewGridBoard(size, center, spawn, obstacles)
}

func (b *GridBoard) inBounds(l Location) bool {
	return l.X >= 0 && l.Y >= 0 && l.X < b.Size && l.Y < b.Size
}

func (b *GridBoard) TerrainTags(l Location) []TerrainTag {
	switch {
	case !b.inBounds(l):
		return []TerrainTag{TagInvalid}
	case b.obstacles[l]:
		return []TerrainTag{TagObstacle}
	case b.spawn[l]:
		return []TerrainTag{TagNormal, TagSpawn}
	default:
		return []TerrainTag{TagNormal}
	}
}

func (b *GridBoard) Adjacent(l Location) []Location {
	out := make([]Location, 0, len(neighborOffsets))
	for _, off := range neighborOffsets {
		n := Loc(l.X+off.X, l.Y+off.Y)
		if !b.inBounds(n) || b.obstacles[n] {
			continue
		}
		out = append(out, n)
	}
	return out
}

// StepToward moves along the axis with the larger gap; ties move along X.
func (b *GridBoard) StepToward(from, to Location) Location {
	if from == to {
		return from
	}
	dx, dy := to.X-from.X, to.Y-from.Y
	if abs(dx) < abs(dy) {
		return Loc(from.X, from.Y+sign(dy))
	}
	return Loc(from.X+sign(dx), from.Y)
}

func (b *GridBoard) CenterPoint() Location { return b.Center }

// SpawnLocations returns the spawn zone sorted row first.
func (b *GridBoard) SpawnLocations() []Location {
	out := make([]Location, 0, len(b.spawn))
	for l := range b.spawn {
		out = append(out, l)
	}
	slices.SortFunc(out, CompareLocations)
	return out
}

// CompareLocations orders locations by Less, for use with slices.SortFunc.
func CompareLocations(a, b Location) int {
	switch {
	case a.Less(b):
		return -1
	case b.Less(a):
		return 1
	}
	return 0
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
