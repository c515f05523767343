package game

import (
	"fmt"
	"math/rand"

	"github.com/rs/zerolog"

	"github.com/lox/handsim/internal/deck"
)

// HandOption configures a hand at creation time.
type HandOption func(*handConfig)

type handConfig struct {
	startChips int
	chipCounts []int
	rng        *rand.Rand
	deck       *deck.Deck
	holeCards  [][]deck.Card
	runout     []deck.Card
	cmp        HandComparator
	logger     zerolog.Logger
}

func defaultHandConfig() *handConfig {
	return &handConfig{
		startChips: 200,
		logger:     zerolog.Nop(),
	}
}

// WithChips sets every player's starting stack to the same amount.
func WithChips(chips int) HandOption {
	return func(c *handConfig) {
		c.startChips = chips
		c.chipCounts = nil
	}
}

// WithStacks sets per-seat starting stacks. Length must match the number of
// players.
func WithStacks(stacks []int) HandOption {
	return func(c *handConfig) {
		c.chipCounts = append([]int(nil), stacks...)
	}
}

// WithRNG supplies the randomness source used to shuffle a fresh deck.
func WithRNG(rng *rand.Rand) HandOption {
	return func(c *handConfig) {
		c.rng = rng
	}
}

// WithDeck supplies a prepared deck, typically stacked for tests.
func WithDeck(d *deck.Deck) HandOption {
	return func(c *handConfig) {
		c.deck = d
	}
}

// WithHoleCards pins each seat's hole cards instead of dealing from a deck.
// A seat's entry may be nil when its cards are unknown, as in a replayed
// hand where the player mucked.
func WithHoleCards(cards [][]deck.Card) HandOption {
	return func(c *handConfig) {
		c.holeCards = cards
	}
}

// WithBoardRunout pins the community cards. Streets deal from this sequence
// instead of a deck; dealing past its end is an error.
func WithBoardRunout(cards []deck.Card) HandOption {
	return func(c *handConfig) {
		c.runout = append([]deck.Card(nil), cards...)
	}
}

// WithComparator sets the showdown hand comparator. When set, the hand pays
// out automatically on reaching showdown; otherwise the caller must invoke
// Finish.
func WithComparator(cmp HandComparator) HandOption {
	return func(c *handConfig) {
		c.cmp = cmp
	}
}

// WithLogger attaches a logger for per-action tracing.
func WithLogger(logger zerolog.Logger) HandOption {
	return func(c *handConfig) {
		c.logger = logger
	}
}

func (c *handConfig) validate(names []string, button, smallBlind, bigBlind int) error {
	n := len(names)
	if n < 2 || n > 10 {
		return fmt.Errorf("hand needs 2 to 10 players, got %d", n)
	}
	if button < 0 || button >= n {
		return fmt.Errorf("button seat %d out of range for %d players", button, n)
	}
	if smallBlind <= 0 || bigBlind <= 0 {
		return fmt.Errorf("blinds must be positive, got %d/%d", smallBlind, bigBlind)
	}
	if bigBlind < smallBlind {
		return fmt.Errorf("big blind %d below small blind %d", bigBlind, smallBlind)
	}
	if c.chipCounts != nil {
		if len(c.chipCounts) != n {
			return fmt.Errorf("%d stacks for %d players", len(c.chipCounts), n)
		}
		for i, chips := range c.chipCounts {
			if chips <= 0 {
				return fmt.Errorf("seat %d starting stack must be positive, got %d", i, chips)
			}
		}
	} else if c.startChips <= 0 {
		return fmt.Errorf("starting stack must be positive, got %d", c.startChips)
	}
	if c.holeCards != nil {
		if len(c.holeCards) != n {
			return fmt.Errorf("hole cards for %d seats, have %d players", len(c.holeCards), n)
		}
		for i, cards := range c.holeCards {
			if len(cards) != 0 && len(cards) != 2 {
				return fmt.Errorf("seat %d has %d hole cards", i, len(cards))
			}
		}
	}
	if len(c.runout) > 5 {
		return fmt.Errorf("board runout has %d cards, maximum is 5", len(c.runout))
	}
	return nil
}
