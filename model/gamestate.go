package model

import (
	"encoding/json"
	"fmt"
)

type Unit struct {
	PlayerID int      `json:"player_id"`
	HP       int      `json:"hp"`
	Location Location `json:"location"`
}

// GameState is one turn's snapshot. Units is keyed by location; at most one
// unit occupies a cell. Decisions only read it.
type GameState struct {
	Turn  int
	Units map[Location]Unit
}

// NewGameState indexes units by location, rejecting two units on one cell.
func NewGameState(turn int, units ...Unit) (GameState, error) {
	gs := GameState{Turn: turn, Units: make(map[Location]Unit, len(units))}
	for _, u := range units {
		if _, dup := gs.Units[u.Location]; dup {
			return GameState{}, fmt.Errorf("duplicate unit at %s", u.Location)
		}
		gs.Units[u.Location] = u
	}
	return gs, nil
}

// UnitAt returns the unit on loc, if any.
func (gs GameState) UnitAt(loc Location) (Unit, bool) {
	u, ok := gs.Units[loc]
	return u, ok
}

// UnitsOf returns the player's units, in no particular order.
func (gs GameState) UnitsOf(playerID int) []Unit {
	var out []Unit
	for _, u := range gs.Units {
		if u.PlayerID == playerID {
			out = append(out, u)
		}
	}
	return out
}

type gameStateJSON struct {
	Turn  int    `json:"turn"`
	Units []Unit `json:"units"`
}

func (gs GameState) MarshalJSON() ([]byte, error) {
	units := make([]Unit, 0, len(gs.Units))
	for _, u := range gs.Units {
		units = append(units, u)
	}
	return json.Marshal(gameStateJSON{Turn: gs.Turn, Units: units})
}

func (gs *GameState) UnmarshalJSON(b []byte) error {
	var raw gameStateJSON
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if raw.Turn < 0 {
		return fmt.Errorf("negative turn %d", raw.Turn)
	}
	parsed, err := NewGameState(raw.Turn, raw.Units...)
	if err != nil {
		return err
	}
	*gs = parsed
	return nil
}
