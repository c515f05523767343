package game

import (
	"errors"
	"slices"
	"testing"

	"github.com/lox/handsim/internal/deck"
)

// newTestHand builds a deterministic hand with pinned hole cards and board.
func newTestHand(t *testing.T, names []string, button, sb, bb int, stacks []int) *HandState {
	t.Helper()
	holes := [][]deck.Card{
		deck.MustParseCards("AhKh"),
		deck.MustParseCards("QsJs"),
		deck.MustParseCards("9d8d"),
		deck.MustParseCards("7c6c"),
		deck.MustParseCards("5h4h"),
		deck.MustParseCards("3s2s"),
	}[:len(names)]
	h, err := NewHand(names, button, sb, bb,
		WithStacks(stacks),
		WithHoleCards(holes),
		WithBoardRunout(deck.MustParseCards("2h7s9cTdJc")),
	)
	if err != nil {
		t.Fatalf("NewHand failed: %v", err)
	}
	return h
}

func mustAct(t *testing.T, h *HandState, seat int, kind ActionKind, amount int) {
	t.Helper()
	if err := h.ExecuteAction(seat, kind, amount); err != nil {
		t.Fatalf("seat %d %s %d rejected: %v", seat, kind, amount, err)
	}
}

func assertRejected(t *testing.T, h *HandState, seat int, kind ActionKind, amount int, reason RuleReason) {
	t.Helper()
	err := h.ExecuteAction(seat, kind, amount)
	if err == nil {
		t.Fatalf("Expected seat %d %s %d to be rejected", seat, kind, amount)
	}
	if !errors.Is(err, ErrIllegalAction) {
		t.Fatalf("Expected ErrIllegalAction, got %v", err)
	}
	var re *RuleError
	if !errors.As(err, &re) {
		t.Fatalf("Expected *RuleError, got %T", err)
	}
	if re.Reason != reason {
		t.Errorf("Expected reason %s, got %s", reason, re.Reason)
	}
}

func TestWrongActorRejected(t *testing.T) {
	t.Parallel()
	h := newTestHand(t, []string{"a", "b", "c"}, 0, 5, 10, []int{1000, 1000, 1000})

	// UTG is the button's left-of-BB seat, here seat 0
	if h.ActionOn != 0 {
		t.Fatalf("Expected action on seat 0, got %d", h.ActionOn)
	}
	assertRejected(t, h, 1, Call, 0, ReasonWrongActor)
}

func TestCheckRequiresNothingOwed(t *testing.T) {
	t.Parallel()
	h := newTestHand(t, []string{"a", "b", "c"}, 0, 5, 10, []int{1000, 1000, 1000})

	assertRejected(t, h, 0, Check, 0, ReasonCannotCheck)
	mustAct(t, h, 0, Call, 0)
	mustAct(t, h, 1, Call, 0)
	// BB has matched the bet and may take the option check
	mustAct(t, h, 2, Check, 0)

	if h.Street != Flop {
		t.Errorf("Expected flop after option check, got %s", h.Street)
	}
}

func TestCallWithNothingOwedRejected(t *testing.T) {
	t.Parallel()
	h := newTestHand(t, []string{"a", "b", "c"}, 0, 5, 10, []int{1000, 1000, 1000})

	mustAct(t, h, 0, Call, 0)
	mustAct(t, h, 1, Call, 0)
	assertRejected(t, h, 2, Call, 0, ReasonNothingToCall)
}

func TestBetRules(t *testing.T) {
	t.Parallel()
	h := newTestHand(t, []string{"a", "b"}, 0, 5, 10, []int{1000, 1000})

	// Preflop a bet is never legal, the blind is a live bet
	assertRejected(t, h, 0, Bet, 50, ReasonBetNotAllowed)
	mustAct(t, h, 0, Call, 0)
	mustAct(t, h, 1, Check, 0)

	// Postflop the big blind acts first heads-up
	assertRejected(t, h, 1, Bet, 5, ReasonBetTooSmall)
	assertRejected(t, h, 1, Bet, 2000, ReasonInsufficientChips)
	mustAct(t, h, 1, Bet, 10)

	if h.Betting.CurrentBet != 10 {
		t.Errorf("Expected current bet 10, got %d", h.Betting.CurrentBet)
	}
}

func TestRaiseRules(t *testing.T) {
	t.Parallel()
	h := newTestHand(t, []string{"a", "b", "c"}, 0, 5, 10, []int{1000, 1000, 1000})

	// Minimum preflop raise is to 20 (blind plus one blind increment)
	assertRejected(t, h, 0, Raise, 15, ReasonRaiseTooSmall)
	mustAct(t, h, 0, Raise, 40)

	if h.Betting.MinRaise != 30 {
		t.Errorf("Expected min raise 30 after raise to 40, got %d", h.Betting.MinRaise)
	}
	// Next full raise must be to at least 70
	assertRejected(t, h, 1, Raise, 60, ReasonRaiseTooSmall)
	mustAct(t, h, 1, Raise, 70)
}

func TestFoldedPlayerCannotAct(t *testing.T) {
	t.Parallel()
	h := newTestHand(t, []string{"a", "b", "c"}, 0, 5, 10, []int{1000, 1000, 1000})

	mustAct(t, h, 0, Fold, 0)
	assertRejected(t, h, 0, Call, 0, ReasonWrongActor)
}

func TestAllInCallClamped(t *testing.T) {
	t.Parallel()
	h := newTestHand(t, []string{"a", "b"}, 0, 5, 10, []int{1000, 30})

	mustAct(t, h, 0, Raise, 100)
	mustAct(t, h, 1, Call, 0)

	p := h.Players[1]
	if !p.AllIn {
		t.Error("Expected short caller to be all-in")
	}
	if p.Chips != 0 {
		t.Errorf("Expected empty stack, got %d", p.Chips)
	}
	if p.TotalBet != 30 {
		t.Errorf("Expected call clamped to 30 total, got %d", p.TotalBet)
	}
}

func TestShortAllInRaiseDoesNotMoveMinRaise(t *testing.T) {
	t.Parallel()
	h := newTestHand(t, []string{"a", "b", "c"}, 0, 5, 10, []int{1000, 1000, 55})

	mustAct(t, h, 0, Raise, 40)
	mustAct(t, h, 1, Call, 0)

	// Seat 2 shoves 55 total, short of the full raise to 70
	mustAct(t, h, 2, Raise, 55)

	if h.Betting.CurrentBet != 55 {
		t.Errorf("Expected current bet 55, got %d", h.Betting.CurrentBet)
	}
	if h.Betting.MinRaise != 30 {
		t.Errorf("Short all-in must not move the min raise, got %d", h.Betting.MinRaise)
	}
	// Both earlier actors owe the shortfall
	if !slices.Equal(h.PendingSeats(), []int{0, 1}) {
		t.Errorf("Expected seats 0 and 1 to owe action, got %v", h.PendingSeats())
	}
	// A full re-raise must still clear the old increment from 55
	assertRejected(t, h, 0, Raise, 70, ReasonRaiseTooSmall)
	mustAct(t, h, 0, Call, 0)
	mustAct(t, h, 1, Call, 0)

	if h.Street != Flop {
		t.Errorf("Expected flop after calls, got %s", h.Street)
	}
}

func TestShortAllInRaiseBelowCurrentBetIsCall(t *testing.T) {
	t.Parallel()
	h := newTestHand(t, []string{"a", "b"}, 0, 5, 10, []int{1000, 25})

	mustAct(t, h, 0, Raise, 100)

	// A shove that cannot reach the current bet stays an all-in call and
	// must not change the wager level
	mustAct(t, h, 1, Raise, 25)
	if h.Betting.CurrentBet != 100 {
		t.Errorf("Expected current bet still 100, got %d", h.Betting.CurrentBet)
	}
	if !h.Players[1].AllIn {
		t.Error("Expected seat 1 all-in")
	}
}

func TestValidActions(t *testing.T) {
	t.Parallel()
	h := newTestHand(t, []string{"a", "b", "c"}, 0, 5, 10, []int{1000, 1000, 1000})

	opts := h.ValidActions(0)
	if !slices.Contains(opts.Kinds, Call) || !slices.Contains(opts.Kinds, Raise) {
		t.Errorf("Expected call and raise available, got %v", opts.Kinds)
	}
	if slices.Contains(opts.Kinds, Check) || slices.Contains(opts.Kinds, Bet) {
		t.Errorf("Check and bet must not be available facing the blind, got %v", opts.Kinds)
	}
	if opts.CallAmount != 10 {
		t.Errorf("Expected call amount 10, got %d", opts.CallAmount)
	}
	if opts.MinRaiseTo != 20 {
		t.Errorf("Expected min raise to 20, got %d", opts.MinRaiseTo)
	}
	if opts.MaxTo != 1000 {
		t.Errorf("Expected max to 1000, got %d", opts.MaxTo)
	}

	if len(h.ValidActions(99).Kinds) != 0 {
		t.Error("Out-of-range seat must have no actions")
	}
}
