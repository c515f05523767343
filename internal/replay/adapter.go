package replay

import (
	"errors"
	"fmt"

	"github.com/lox/handsim/internal/game"
)

// ErrReplayExhausted reports that the record ran out of actions while the
// state machine still expected one. The record is incomplete.
var ErrReplayExhausted = errors.New("hand record exhausted before hand completed")

// UnresolvableError reports that neither the logged action nor any implicit
// injection fits the seat on turn. The record contradicts the rules.
type UnresolvableError struct {
	Seat   int
	Street game.Street
	Index  int // cursor into the record's action list
}

func (e *UnresolvableError) Error() string {
	return fmt.Sprintf("no action resolvable for seat %d on %s at record action %d",
		e.Seat, e.Street, e.Index)
}

// Decision is the adapter's answer for the seat on turn. Injected marks an
// action synthesized to fill a gap in the record.
type Decision struct {
	Seat     int
	Kind     game.ActionKind
	Amount   int
	Injected bool
}

// Adapter bridges a sparse hand record to the state machine's strict
// one-actor-at-a-time loop. It reads game state but never mutates it; its
// only state is a cursor into the record's actions.
type Adapter struct {
	hand   *Hand
	cursor int
}

// NewAdapter wraps a validated hand model.
func NewAdapter(hand *Hand) *Adapter {
	return &Adapter{hand: hand}
}

// Consumed returns how many logged actions have been echoed so far.
func (a *Adapter) Consumed() int {
	return a.cursor
}

// Remaining returns how many logged actions are still unconsumed.
func (a *Adapter) Remaining() int {
	return len(a.hand.Actions) - a.cursor
}

// Next decides what the seat on turn does. If the record's next action is
// by that seat on the current street it is echoed verbatim (advancing the
// cursor), with a logged all-in mapped onto a bet or raise of the actor's
// full remaining commitment. Otherwise the record skipped this seat and a
// trivial action is injected: a check when nothing is owed (including the
// preflop big-blind option), a fold when facing a wager. Anything else is
// a data-integrity error.
func (a *Adapter) Next(h *game.HandState) (Decision, error) {
	seat := h.ActionOn
	if seat < 0 {
		return Decision{}, fmt.Errorf("no action pending at %s", h.Street)
	}

	if a.cursor < len(a.hand.Actions) {
		next := a.hand.Actions[a.cursor]
		if next.Seat == seat && next.Street == h.Street {
			d, err := a.translate(h, next)
			if err != nil {
				return Decision{}, err
			}
			a.cursor++
			return d, nil
		}
		return a.inject(h, seat)
	}

	return Decision{}, fmt.Errorf("%w: seat %d still to act on %s", ErrReplayExhausted, seat, h.Street)
}

func (a *Adapter) translate(h *game.HandState, act Action) (Decision, error) {
	d := Decision{Seat: act.Seat}
	switch act.Kind {
	case FoldType:
		d.Kind = game.Fold
	case CheckType:
		d.Kind = game.Check
	case CallType:
		d.Kind = game.Call
	case BetType:
		d.Kind = game.Bet
		d.Amount = act.Amount
	case RaiseType:
		d.Kind = game.Raise
		d.Amount = act.Amount
	case AllInType:
		// The marker becomes a wager of the full remaining commitment;
		// the validator's all-in rules make it legal at any size.
		p := h.Players[act.Seat]
		d.Amount = p.Bet + p.Chips
		if h.Betting.CurrentBet == 0 {
			d.Kind = game.Bet
		} else {
			d.Kind = game.Raise
		}
	default:
		return Decision{}, fmt.Errorf("record action %d has kind %v", act.Index, act.Kind)
	}
	return d, nil
}

func (a *Adapter) inject(h *game.HandState, seat int) (Decision, error) {
	owes := h.NeedsAction(seat)
	b := h.Betting

	switch {
	case b.CurrentBet == 0 && owes:
		return Decision{Seat: seat, Kind: game.Check, Injected: true}, nil
	case h.Street == game.Preflop && b.CurrentBet == b.BigBlind && seat == h.BigBlindSeat() && owes:
		// Big-blind option: the record skipped a check, not a fold.
		return Decision{Seat: seat, Kind: game.Check, Injected: true}, nil
	case h.Players[seat].Bet < b.CurrentBet && owes:
		return Decision{Seat: seat, Kind: game.Fold, Injected: true}, nil
	default:
		return Decision{}, &UnresolvableError{Seat: seat, Street: h.Street, Index: a.cursor}
	}
}

// Decide implements game.DecisionSource, discarding the injection flag.
func (a *Adapter) Decide(h *game.HandState, seat int) (game.ActionKind, int, error) {
	if seat != h.ActionOn {
		return 0, 0, fmt.Errorf("record replay follows turn order, seat %d is not on turn", seat)
	}
	d, err := a.Next(h)
	if err != nil {
		return 0, 0, err
	}
	return d.Kind, d.Amount, nil
}
