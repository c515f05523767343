package game

import (
	"fmt"
	"math/rand"
)

// DecisionSource produces the next action for the seat on turn. The engine
// calls it only when the hand expects an action from that seat.
type DecisionSource interface {
	Decide(h *HandState, seat int) (ActionKind, int, error)
}

// CheckCallStrategy checks when free and calls any wager.
type CheckCallStrategy struct{}

func (CheckCallStrategy) Decide(h *HandState, seat int) (ActionKind, int, error) {
	opts := h.ValidActions(seat)
	for _, kind := range opts.Kinds {
		if kind == Check {
			return Check, 0, nil
		}
	}
	for _, kind := range opts.Kinds {
		if kind == Call {
			return Call, 0, nil
		}
	}
	return 0, 0, fmt.Errorf("seat %d has no check or call available", seat)
}

// FoldStrategy checks when free and otherwise folds.
type FoldStrategy struct{}

func (FoldStrategy) Decide(h *HandState, seat int) (ActionKind, int, error) {
	opts := h.ValidActions(seat)
	for _, kind := range opts.Kinds {
		if kind == Check {
			return Check, 0, nil
		}
	}
	return Fold, 0, nil
}

// RandomStrategy picks uniformly among the legal action kinds; bets and
// raises use the minimum legal size. Useful for fuzzing the rules.
type RandomStrategy struct {
	RNG *rand.Rand
}

func (s RandomStrategy) Decide(h *HandState, seat int) (ActionKind, int, error) {
	opts := h.ValidActions(seat)
	if len(opts.Kinds) == 0 {
		return 0, 0, fmt.Errorf("seat %d has no legal actions", seat)
	}
	kind := opts.Kinds[s.RNG.Intn(len(opts.Kinds))]
	switch kind {
	case Bet:
		return Bet, opts.MinBetTo, nil
	case Raise:
		return Raise, opts.MinRaiseTo, nil
	default:
		return kind, 0, nil
	}
}
