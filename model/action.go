package model

import (
	"encoding/json"
	"fmt"
)

type ActionKind string

const (
	ActionMove    ActionKind = "move"
	ActionAttack  ActionKind = "attack"
	ActionSuicide ActionKind = "suicide"
	ActionGuard   ActionKind = "guard"
)

// Action is the single order a unit issues for a turn. Target is only
// meaningful for move and attack.
type Action struct {
	Kind   ActionKind
	Target Location
}

func Move(to Location) Action    { return Action{Kind: ActionMove, Target: to} }
func Attack(at Location) Action  { return Action{Kind: ActionAttack, Target: at} }
func Suicide() Action            { return Action{Kind: ActionSuicide} }
func Guard() Action              { return Action{Kind: ActionGuard} }
func (a Action) HasTarget() bool { return a.Kind == ActionMove || a.Kind == ActionAttack }

func (a Action) String() string {
	if a.HasTarget() {
		return fmt.Sprintf("%s %s", a.Kind, a.Target)
	}
	return string(a.Kind)
}

// MarshalJSON encodes the action as ["move",[x,y]] or ["guard"].
func (a Action) MarshalJSON() ([]byte, error) {
	if a.HasTarget() {
		return json.Marshal([]any{a.Kind, a.Target})
	}
	return json.Marshal([]any{a.Kind})
}

func (a *Action) UnmarshalJSON(b []byte) error {
	var parts []json.RawMessage
	if err := json.Unmarshal(b, &parts); err != nil {
		return fmt.Errorf("unmarshal action: %w", err)
	}
	if len(parts) == 0 {
		return fmt.Errorf("empty action")
	}
	var kind ActionKind
	if err := json.Unmarshal(parts[0], &kind); err != nil {
		return fmt.Errorf("unmarshal action kind: %w", err)
	}
	out := Action{Kind: kind}
	switch kind {
	case ActionMove, ActionAttack:
		if len(parts) != 2 {
			return fmt.Errorf("%s action needs a target", kind)
		}
		if err := json.Unmarshal(parts[1], &out.Target); err != nil {
			return err
		}
	case ActionSuicide, ActionGuard:
	default:
		return fmt.Errorf("unknown action %q", kind)
	}
	*a = out
	return nil
}
