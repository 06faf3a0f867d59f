package rules

import (
	"testing"

	"github.com/nstehr/vimy/nub-core/model"
)

// openBoard is an unbounded grid. Walls are obstacles and spawn cells are
// listed explicitly, so each test states exactly the terrain it relies on.
type openBoard struct {
	walls  map[model.Location]bool
	spawn  map[model.Location]bool
	center model.Location
}

func newOpenBoard() *openBoard {
	return &openBoard{
		walls:  make(map[model.Location]bool),
		spawn:  make(map[model.Location]bool),
		center: model.Loc(9, 9),
	}
}

func (b *openBoard) wall(locs ...model.Location) *openBoard {
	for _, l := range locs {
		b.walls[l] = true
	}
	return b
}

func (b *openBoard) spawnAt(locs ...model.Location) *openBoard {
	for _, l := range locs {
		b.spawn[l] = true
	}
	return b
}

func (b *openBoard) Adjacent(l model.Location) []model.Location {
	var out []model.Location
	for _, n := range []model.Location{{X: l.X, Y: l.Y + 1}, {X: l.X + 1, Y: l.Y}, {X: l.X, Y: l.Y - 1}, {X: l.X - 1, Y: l.Y}} {
		if !b.walls[n] {
			out = append(out, n)
		}
	}
	return out
}

func (b *openBoard) TerrainTags(l model.Location) []model.TerrainTag {
	switch {
	case b.walls[l]:
		return []model.TerrainTag{model.TagObstacle}
	case b.spawn[l]:
		return []model.TerrainTag{model.TagNormal, model.TagSpawn}
	}
	return []model.TerrainTag{model.TagNormal}
}

// StepToward jumps straight to the target so tests can tell it was used.
func (b *openBoard) StepToward(_, to model.Location) model.Location { return to }

func (b *openBoard) CenterPoint() model.Location { return b.center }

// scriptedPicker always answers the same index and records the set sizes it saw.
type scriptedPicker struct {
	index int
	seen  []int
}

func (p *scriptedPicker) IntN(n int) int {
	p.seen = append(p.seen, n)
	return min(p.index, n-1)
}

const me = 0

func unit(player, hp, x, y int) model.Unit {
	return model.Unit{PlayerID: player, HP: hp, Location: model.Loc(x, y)}
}

func snapshot(t *testing.T, turn int, units ...model.Unit) model.GameState {
	t.Helper()
	gs, err := model.NewGameState(turn, units...)
	if err != nil {
		t.Fatalf("NewGameState: %v", err)
	}
	return gs
}

func newTestEngine(t *testing.T, p Picker) *Engine {
	t.Helper()
	e, err := NewEngine(DefaultRules(), p)
	if err != nil {
		t.Fatalf("NewEngine(DefaultRules()) failed: %v", err)
	}
	return e
}

func contains(locs []model.Location, l model.Location) bool {
	for _, c := range locs {
		if c == l {
			return true
		}
	}
	return false
}
