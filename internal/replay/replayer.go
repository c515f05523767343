package replay

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/lox/handsim/internal/deck"
	"github.com/lox/handsim/internal/evaluator"
	"github.com/lox/handsim/internal/game"
)

// ErrTrailingActions reports logged actions left unconsumed after the hand
// completed, which means the record does not describe this hand.
var ErrTrailingActions = errors.New("hand completed with unconsumed record actions")

// StreetPot is the swept pot measured as a street closed.
type StreetPot struct {
	Street game.Street
	Pot    int
}

// Result summarizes a completed replay.
type Result struct {
	Hand     *game.HandState
	Real     int // logged actions echoed
	Injected int // actions synthesized to fill gaps
	Pots     []StreetPot
	Final    game.Snapshot
}

// Replayer drives hand records through the state machine. The loop guard
// belongs here rather than in the engine: the engine terminates on legal
// input, the guard catches malformed records and bugs.
type Replayer struct {
	logger         zerolog.Logger
	cmp            game.HandComparator
	maxHandActions int
}

// ReplayerOption configures a Replayer.
type ReplayerOption func(*Replayer)

// WithLogger attaches a logger for per-action tracing.
func WithLogger(logger zerolog.Logger) ReplayerOption {
	return func(r *Replayer) { r.logger = logger }
}

// WithComparator overrides the showdown comparator, which defaults to the
// table-lookup evaluator.
func WithComparator(cmp game.HandComparator) ReplayerOption {
	return func(r *Replayer) { r.cmp = cmp }
}

// WithMaxActions caps total actions per hand before the replay aborts.
func WithMaxActions(n int) ReplayerOption {
	return func(r *Replayer) { r.maxHandActions = n }
}

// NewReplayer creates a replayer with a loop guard generous enough for any
// legal ten-handed hand.
func NewReplayer(opts ...ReplayerOption) *Replayer {
	r := &Replayer{
		logger:         zerolog.Nop(),
		cmp:            evaluator.New(),
		maxHandActions: 500,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Replay runs a validated hand record to completion and returns the final
// state with real/injected action counts and per-street pot checkpoints.
func (r *Replayer) Replay(hand *Hand) (*Result, error) {
	names := make([]string, len(hand.Players))
	stacks := make([]int, len(hand.Players))
	holes := make([][]deck.Card, len(hand.Players))
	for i, p := range hand.Players {
		names[i] = p.Name
		stacks[i] = p.Stack
		holes[i] = p.HoleCards
	}

	h, err := game.NewHand(names, hand.Button, hand.SmallBlind, hand.BigBlind,
		game.WithStacks(stacks),
		game.WithHoleCards(holes),
		game.WithBoardRunout(hand.Board),
		game.WithComparator(r.cmp),
		game.WithLogger(r.logger),
	)
	if err != nil {
		return nil, fmt.Errorf("starting hand: %w", err)
	}

	adapter := NewAdapter(hand)
	result := &Result{Hand: h}
	street := h.Street
	steps := 0

	for !h.Complete() && h.ActionOn >= 0 {
		if steps++; steps > r.maxHandActions {
			return nil, fmt.Errorf("replay exceeded %d actions on %s, aborting", r.maxHandActions, h.Street)
		}

		d, err := adapter.Next(h)
		if err != nil {
			return nil, err
		}

		if d.Injected {
			err = h.ExecuteInjected(d.Seat, d.Kind, d.Amount)
		} else {
			err = h.ExecuteAction(d.Seat, d.Kind, d.Amount)
		}
		if err != nil {
			return nil, fmt.Errorf("record action %d (%s seat %d): %w",
				adapter.Consumed(), d.Kind, d.Seat, err)
		}

		if d.Injected {
			result.Injected++
		} else {
			result.Real++
		}

		pot := h.SweptPot()
		if h.Complete() {
			// Settled hands clear the pot; the award total is the pot
			// the closing streets saw.
			pot = 0
			for _, p := range h.Results {
				pot += p.Amount
			}
		}
		for street < h.Street {
			street++
			if street > game.River {
				break
			}
			result.Pots = append(result.Pots, StreetPot{Street: street, Pot: pot})
		}
	}

	if h.Street == game.Showdown {
		if _, err := h.Finish(r.cmp); err != nil {
			return nil, fmt.Errorf("settling showdown: %w", err)
		}
	}
	if !h.Complete() {
		return nil, fmt.Errorf("%w: hand stalled at %s", ErrReplayExhausted, h.Street)
	}
	if left := adapter.Remaining(); left > 0 {
		return nil, fmt.Errorf("%w: %d actions left at %s", ErrTrailingActions, left, h.Street)
	}

	result.Final = h.Snapshot()
	r.logger.Debug().
		Int("real", result.Real).
		Int("injected", result.Injected).
		Int("pot", h.SweptPot()).
		Msg("replay complete")
	return result, nil
}
