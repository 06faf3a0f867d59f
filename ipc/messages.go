package ipc

import (
	"github.com/nstehr/vimy/nub-core/config"
	"github.com/nstehr/vimy/nub-core/model"
)

// Message type constants shared with the host engine.
const (
	TypeHello   = "hello"
	TypeAck     = "ack"
	TypeTurn    = "turn"
	TypeActions = "actions"
	TypeError   = "error"
)

// HelloMessage identifies the player this session decides for.
type HelloMessage struct {
	PlayerID int `json:"player_id"`

	// Map optionally replaces the sidecar's configured board for this session.
	Map *config.BoardMap `json:"map,omitempty"`
}

type AckMessage struct {
	Status string `json:"status"`
}

// TurnMessage is the host's snapshot for one turn. It decodes as
// {"turn": n, "units": [...]}.
type TurnMessage = model.GameState

// UnitAction is the order for the unit standing at Location.
type UnitAction struct {
	Location model.Location `json:"location"`
	Action   model.Action   `json:"action"`
}

// UnitError reports a unit the sidecar could not decide for.
type UnitError struct {
	Location model.Location `json:"location"`
	Error    string         `json:"error"`
}

// ErrorMessage is sent in place of a reply when a message cannot be handled.
type ErrorMessage struct {
	Type  string `json:"type"`
	Error string `json:"error"`
}

type ActionsMessage struct {
	Turn    int          `json:"turn"`
	Actions []UnitAction `json:"actions"`
	Errors  []UnitError  `json:"errors,omitempty"`
}
