package rules

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// Picker is the random source used to break ties between equally good moves.
// *rand.Rand satisfies it.
type Picker interface {
	IntN(n int) int
}

// NewPicker returns a PCG-backed picker. A zero seed is replaced with the
// current time.
func NewPicker(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed>>1|1))
}

// pick chooses uniformly from items.
func pick[T any](p Picker, items []T) (T, error) {
	var zero T
	if len(items) == 0 {
		return zero, ErrEmptySelection
	}
	i := p.IntN(len(items))
	if i < 0 || i >= len(items) {
		return zero, fmt.Errorf("picker returned %d for %d items", i, len(items))
	}
	return items[i], nil
}
