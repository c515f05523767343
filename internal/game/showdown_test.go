package game

import (
	"testing"

	"github.com/lox/handsim/internal/deck"
)

func TestSidePotsAwardedPerLayer(t *testing.T) {
	t.Parallel()
	// Seat 0 is all-in short with the best hand: it wins only the main
	// pot, the side pot goes to the best of the full stacks.
	h, err := NewHand([]string{"short", "mid", "deep"}, 0, 5, 10,
		WithStacks([]int{50, 100, 100}),
		WithHoleCards([][]deck.Card{
			deck.MustParseCards("AhAd"),
			deck.MustParseCards("KhKd"),
			deck.MustParseCards("QhQd"),
		}),
		WithBoardRunout(deck.MustParseCards("2h7s9cTdJc")),
		WithComparator(holeRankComparator{}),
	)
	if err != nil {
		t.Fatalf("NewHand failed: %v", err)
	}

	mustAct(t, h, 0, Raise, 50)
	mustAct(t, h, 1, Call, 0)
	mustAct(t, h, 2, Call, 0)
	if h.Street != Flop {
		t.Fatalf("Expected flop, at %s", h.Street)
	}
	mustAct(t, h, 1, Bet, 50)
	mustAct(t, h, 2, Call, 0)

	// Everyone is all-in, the board runs out and pays automatically
	if !h.Complete() {
		t.Fatalf("Expected hand complete, at %s", h.Street)
	}
	if h.Players[0].Chips != 150 {
		t.Errorf("Short stack should win the 150 main pot, has %d", h.Players[0].Chips)
	}
	if h.Players[1].Chips != 100 {
		t.Errorf("Mid stack should win the 100 side pot, has %d", h.Players[1].Chips)
	}
	if h.Players[2].Chips != 0 {
		t.Errorf("Deep stack should bust, has %d", h.Players[2].Chips)
	}
}

func TestSplitPotOddChipGoesLeftOfButton(t *testing.T) {
	t.Parallel()
	h, err := NewHand([]string{"a", "b", "c"}, 0, 5, 10,
		WithStacks([]int{1000, 1000, 1000}),
		WithHoleCards([][]deck.Card{
			deck.MustParseCards("AhKh"),
			deck.MustParseCards("2c3c"),
			deck.MustParseCards("AdKd"),
		}),
		WithBoardRunout(deck.MustParseCards("2h7s9cTdJc")),
		WithComparator(holeRankComparator{}),
	)
	if err != nil {
		t.Fatalf("NewHand failed: %v", err)
	}

	// Seat 1 folds its small blind, leaving an odd 25-chip pot for the tie
	mustAct(t, h, 0, Call, 0)
	mustAct(t, h, 1, Fold, 0)
	mustAct(t, h, 2, Check, 0)
	for _, street := range []Street{Flop, Turn, River} {
		if h.Street != street {
			t.Fatalf("Expected %s, at %s", street, h.Street)
		}
		mustAct(t, h, 2, Check, 0)
		mustAct(t, h, 0, Check, 0)
	}

	if !h.Complete() {
		t.Fatalf("Expected hand complete, at %s", h.Street)
	}
	// 25 splits 12/13; seat 2 sits closer to the button's left and takes
	// the odd chip
	if h.Players[0].Chips != 1002 {
		t.Errorf("Seat 0 should net +2, has %d", h.Players[0].Chips)
	}
	if h.Players[2].Chips != 1003 {
		t.Errorf("Seat 2 should net +3 with the odd chip, has %d", h.Players[2].Chips)
	}
	if h.Players[1].Chips != 995 {
		t.Errorf("Folded small blind should net -5, has %d", h.Players[1].Chips)
	}
}

func TestFinishWithoutComparatorDeferred(t *testing.T) {
	t.Parallel()
	h := newTestHand(t, []string{"a", "b"}, 0, 5, 10, []int{100, 100})

	mustAct(t, h, 0, Raise, 100)
	mustAct(t, h, 1, Call, 0)
	if h.Street != Showdown {
		t.Fatalf("Expected showdown, at %s", h.Street)
	}

	// No comparator was configured, so the pot waits for Finish
	if h.Complete() {
		t.Fatal("Hand must not complete before Finish")
	}
	payouts, err := h.Finish(holeRankComparator{})
	if err != nil {
		t.Fatalf("Finish failed: %v", err)
	}
	if len(payouts) != 1 || payouts[0].Seat != 0 || payouts[0].Amount != 200 {
		t.Errorf("Unexpected payouts %+v", payouts)
	}

	// Finish is idempotent once settled
	again, err := h.Finish(holeRankComparator{})
	if err != nil || len(again) != 1 {
		t.Errorf("Repeated Finish: %v %+v", err, again)
	}
}

func TestShowdownWithUnknownHoleCards(t *testing.T) {
	t.Parallel()
	h, err := NewHand([]string{"a", "b"}, 0, 5, 10,
		WithStacks([]int{100, 100}),
		WithHoleCards([][]deck.Card{nil, nil}),
		WithBoardRunout(deck.MustParseCards("2h7s9cTdJc")),
	)
	if err != nil {
		t.Fatalf("NewHand failed: %v", err)
	}
	mustAct(t, h, 0, Call, 0)
	mustAct(t, h, 1, Check, 0)
	for h.Street != Showdown {
		mustAct(t, h, h.ActionOn, Check, 0)
	}

	if _, err := h.Finish(holeRankComparator{}); err == nil {
		t.Error("Expected error settling with no known hole cards")
	}
}
