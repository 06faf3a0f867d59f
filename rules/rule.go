package rules

import (
	"github.com/expr-lang/expr/vm"
	"github.com/nstehr/vimy/nub-core/model"
)

// ActionFunc builds the unit's order once a rule's condition holds.
type ActionFunc func(env RuleEnv, p Picker) (model.Action, error)

// Rule is one link of the decision chain: a condition → action pair.
// The engine tries rules by descending priority and the first whose
// condition is true decides the turn.
type Rule struct {
	Name         string      // human-readable identifier
	Priority     int         // higher = evaluated first
	ConditionSrc string      // expr source, evaluated against RuleEnv
	program      *vm.Program // compiled bytecode
	Action       ActionFunc
}
