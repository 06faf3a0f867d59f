package rules

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/nstehr/vimy/nub-core/model"
)

// Engine runs the compiled decision chain for one unit at a time.
// Rules are tried in priority order and the first match decides the turn.
// An Engine is not safe for concurrent use: its Picker is not.
type Engine struct {
	rules  []*Rule
	picker Picker
}

// Decision is the chosen action and the rule that produced it.
type Decision struct {
	Rule   string
	Action model.Action
}

// NewEngine compiles all rule conditions into expr bytecode and sorts by priority.
func NewEngine(rules []*Rule, picker Picker) (*Engine, error) {
	if picker == nil {
		return nil, errors.New("nil picker")
	}
	compiled, err := compileRules(rules)
	if err != nil {
		return nil, err
	}
	return &Engine{rules: compiled, picker: picker}, nil
}

// RuleNames lists the chain in evaluation order.
func (e *Engine) RuleNames() []string {
	names := make([]string, len(e.rules))
	for i, r := range e.rules {
		names[i] = r.Name
	}
	return names
}

// Decide picks the action for the unit standing at self. The snapshot and
// board are only read.
func (e *Engine) Decide(gs model.GameState, board model.Board, self model.Location) (Decision, error) {
	me, ok := gs.UnitAt(self)
	if !ok {
		return Decision{}, fmt.Errorf("%w: %s", ErrMissingSelf, self)
	}

	env := RuleEnv{State: gs, Board: board, Self: me}
	for _, r := range e.rules {
		result, err := vm.Run(r.program, env)
		if err != nil {
			return Decision{}, fmt.Errorf("evaluate rule %q: %w", r.Name, err)
		}
		if match, ok := result.(bool); !ok || !match {
			continue
		}

		action, err := r.Action(env, e.picker)
		if err != nil {
			return Decision{}, fmt.Errorf("rule %q action: %w", r.Name, err)
		}
		slog.Debug("rule fired", "rule", r.Name, "unit", self, "turn", gs.Turn, "action", action)
		return Decision{Rule: r.Name, Action: action}, nil
	}
	return Decision{}, fmt.Errorf("%w for unit at %s", ErrNoRuleMatched, self)
}

func compileRules(rules []*Rule) ([]*Rule, error) {
	for _, r := range rules {
		if r.Action == nil {
			return nil, fmt.Errorf("rule %q has no action", r.Name)
		}
		prog, err := expr.Compile(r.ConditionSrc, expr.Env(RuleEnv{}), expr.AsBool())
		if err != nil {
			return nil, fmt.Errorf("compile rule %q: %w", r.Name, err)
		}
		r.program = prog
	}
	sort.SliceStable(rules, func(i, j int) bool {
		return rules[i].Priority > rules[j].Priority
	})
	return rules, nil
}
