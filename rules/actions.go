package rules

import (
	"fmt"

	"github.com/nstehr/vimy/nub-core/model"
)

// ActionEscapeSpawn walks toward the center of the board. It does not path
// around obstacles or other units.
func ActionEscapeSpawn(env RuleEnv, _ Picker) (model.Action, error) {
	return model.Move(env.Board.StepToward(env.Self.Location, env.Board.CenterPoint())), nil
}

// ActionFlee moves to a random adjacent cell that no enemy can reach.
func ActionFlee(env RuleEnv, p Picker) (model.Action, error) {
	to, err := pick(p, env.AdjacentUnoccupiedSafe(env.Self.Location))
	if err != nil {
		return model.Action{}, fmt.Errorf("flee from %s: %w", env.Self.Location, err)
	}
	return model.Move(to), nil
}

func ActionSuicide(RuleEnv, Picker) (model.Action, error) {
	return model.Suicide(), nil
}

func ActionAttackWeakest(env RuleEnv, _ Picker) (model.Action, error) {
	target, ok := env.WeakestAdjacentEnemy(env.Self.Location)
	if !ok {
		return model.Action{}, fmt.Errorf("attack from %s: %w", env.Self.Location, ErrEmptySelection)
	}
	return model.Attack(target), nil
}

// ActionExplore moves to any random free neighbor.
func ActionExplore(env RuleEnv, p Picker) (model.Action, error) {
	to, err := pick(p, env.AdjacentUnoccupied(env.Self.Location))
	if err != nil {
		return model.Action{}, fmt.Errorf("explore from %s: %w", env.Self.Location, err)
	}
	return model.Move(to), nil
}

func ActionGuard(RuleEnv, Picker) (model.Action, error) {
	return model.Guard(), nil
}
