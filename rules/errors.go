package rules

import "errors"

var (
	// ErrEmptySelection means an action tried to choose from an empty
	// candidate set. Rule guards should make this unreachable.
	ErrEmptySelection = errors.New("empty selection")

	// ErrMissingSelf means the deciding unit is not in the snapshot.
	ErrMissingSelf = errors.New("deciding unit missing from game state")

	// ErrNoRuleMatched means every rule's condition was false.
	ErrNoRuleMatched = errors.New("no rule matched")
)
