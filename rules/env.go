package rules

import (
	"github.com/nstehr/vimy/nub-core/model"
)

const (
	// WeakHP is the hit point level below which a unit avoids fights.
	WeakHP = 13
	// OutnumberedAt is how many adjacent enemies count as outnumbered.
	OutnumberedAt = 2
	// SpawnPeriod is the turn cycle of spawn events. A spawn fires on the
	// last turn of each cycle and kills units standing in the spawn zone.
	SpawnPeriod = 10
)

// SpawnImminent reports whether a spawn event fires within the next two turns.
func SpawnImminent(turn int) bool {
	m := turn % SpawnPeriod
	return m == SpawnPeriod-3 || m == SpawnPeriod-2
}

// RuleEnv wraps one turn's snapshot and the deciding unit, and exposes the
// predicates rule conditions are written in.
type RuleEnv struct {
	State model.GameState
	Board model.Board
	Self  model.Unit
}

// --- Spatial ---

func (e RuleEnv) AdjacentLocations(loc model.Location) []model.Location {
	return e.Board.Adjacent(loc)
}

func (e RuleEnv) IsUnoccupied(loc model.Location) bool {
	_, ok := e.State.Units[loc]
	return !ok
}

func (e RuleEnv) IsEnemyOccupied(loc model.Location) bool {
	u, ok := e.State.Units[loc]
	return ok && u.PlayerID != e.Self.PlayerID
}

func (e RuleEnv) AdjacentUnoccupied(loc model.Location) []model.Location {
	return filter(e.AdjacentLocations(loc), e.IsUnoccupied)
}

func (e RuleEnv) AdjacentEnemyLocations(loc model.Location) []model.Location {
	return filter(e.AdjacentLocations(loc), e.IsEnemyOccupied)
}

func (e RuleEnv) SpawnImminent() bool { return SpawnImminent(e.State.Turn) }

func (e RuleEnv) InSpawn(loc model.Location) bool {
	return model.HasTag(e.Board, loc, model.TagSpawn)
}

// IsSafe reports whether loc has no adjacent enemy. Spawn cells are never
// safe while a spawn is imminent. Enemies standing in the spawn zone still
// count, even though the spawn may kill them first.
func (e RuleEnv) IsSafe(loc model.Location) bool {
	if e.SpawnImminent() && e.InSpawn(loc) {
		return false
	}
	return len(e.AdjacentEnemyLocations(loc)) == 0
}

func (e RuleEnv) AdjacentUnoccupiedSafe(loc model.Location) []model.Location {
	return filter(e.AdjacentUnoccupied(loc), e.IsSafe)
}

// WeakestAdjacentEnemy returns the adjacent enemy with the least hp, ties
// going to the location that sorts first row-wise.
func (e RuleEnv) WeakestAdjacentEnemy(loc model.Location) (model.Location, bool) {
	var best model.Location
	bestHP, found := 0, false
	for _, l := range e.AdjacentEnemyLocations(loc) {
		hp := e.State.Units[l].HP
		if !found || hp < bestHP || (hp == bestHP && l.Less(best)) {
			best, bestHP, found = l, hp, true
		}
	}
	return best, found
}

// --- Threat (about Self) ---

func (e RuleEnv) Weak() bool { return e.Self.HP < WeakHP }

func (e RuleEnv) Outnumbered() bool {
	return len(e.AdjacentEnemyLocations(e.Self.Location)) >= OutnumberedAt
}

func (e RuleEnv) CanFlee() bool {
	return len(e.AdjacentUnoccupiedSafe(e.Self.Location)) > 0
}

func (e RuleEnv) CanMove() bool {
	return len(e.AdjacentUnoccupied(e.Self.Location)) > 0
}

func (e RuleEnv) NearEnemy() bool {
	return len(e.AdjacentEnemyLocations(e.Self.Location)) > 0
}

func (e RuleEnv) FacingCertainDeath() bool {
	return e.NearEnemy() && !e.CanFlee() && e.Weak()
}

func (e RuleEnv) AboutToDieInSpawn() bool {
	return e.InSpawn(e.Self.Location) && e.SpawnImminent()
}

func filter(locs []model.Location, keep func(model.Location) bool) []model.Location {
	var out []model.Location
	for _, l := range locs {
		if keep(l) {
			out = append(out, l)
		}
	}
	return out
}
