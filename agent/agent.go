package agent

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/nstehr/vimy/nub-core/ipc"
	"github.com/nstehr/vimy/nub-core/model"
	"github.com/nstehr/vimy/nub-core/rules"
)

// ErrNoHello is returned for a turn that arrives before the handshake.
var ErrNoHello = errors.New("turn received before hello")

// Agent owns the decision-making for a single player session.
type Agent struct {
	PlayerID int
	Board    model.Board
	Engine   *rules.Engine
	greeted  bool
}

func New(board model.Board, engine *rules.Engine) *Agent {
	return &Agent{Board: board, Engine: engine}
}

// HandleHello completes the handshake so the host knows the sidecar is ready.
func (a *Agent) HandleHello(env ipc.Envelope) (*ipc.Envelope, error) {
	var hello ipc.HelloMessage
	if err := json.Unmarshal(env.Data, &hello); err != nil {
		return nil, fmt.Errorf("unmarshal hello: %w", err)
	}

	if hello.Map != nil {
		board, err := hello.Map.Board()
		if err != nil {
			return nil, fmt.Errorf("hello map: %w", err)
		}
		a.Board = board
		slog.Info("board replaced by host map", "size", board.Size, "center", board.CenterPoint())
	}

	a.PlayerID = hello.PlayerID
	a.greeted = true
	slog.Info("player identified", "player", a.PlayerID, "rules", a.Engine.RuleNames())

	ack, err := ipc.NewEnvelope(ipc.TypeAck, ipc.AckMessage{Status: "ok"})
	if err != nil {
		return nil, err
	}
	return &ack, nil
}

func (a *Agent) HandleTurn(env ipc.Envelope) (*ipc.Envelope, error) {
	if !a.greeted {
		return nil, ErrNoHello
	}
	var gs ipc.TurnMessage
	if err := json.Unmarshal(env.Data, &gs); err != nil {
		return nil, fmt.Errorf("unmarshal turn: %w", err)
	}

	msg := a.DecideTurn(gs)
	slog.Info("turn decided",
		"player", a.PlayerID,
		"turn", gs.Turn,
		"units", len(gs.Units),
		"actions", len(msg.Actions),
		"errors", len(msg.Errors),
	)

	reply, err := ipc.NewEnvelope(ipc.TypeActions, msg)
	if err != nil {
		return nil, err
	}
	return &reply, nil
}

// DecideTurn asks the engine for every unit the player owns, each against
// the same snapshot. Units are answered in row order so replies are stable.
func (a *Agent) DecideTurn(gs model.GameState) ipc.ActionsMessage {
	mine := gs.UnitsOf(a.PlayerID)
	slices.SortFunc(mine, func(x, y model.Unit) int {
		return model.CompareLocations(x.Location, y.Location)
	})

	msg := ipc.ActionsMessage{Turn: gs.Turn, Actions: make([]ipc.UnitAction, 0, len(mine))}
	for _, u := range mine {
		d, err := a.Engine.Decide(gs, a.Board, u.Location)
		if err != nil {
			slog.Error("decision failed", "unit", u.Location, "turn", gs.Turn, "error", err)
			msg.Errors = append(msg.Errors, ipc.UnitError{Location: u.Location, Error: err.Error()})
			continue
		}
		msg.Actions = append(msg.Actions, emit(u.Location, d))
	}
	return msg
}

// emit wraps a decision in the reply format.
func emit(at model.Location, d rules.Decision) ipc.UnitAction {
	return ipc.UnitAction{Location: at, Action: d.Action}
}
