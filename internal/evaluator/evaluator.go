// Package evaluator ranks showdown hands using the paulhankin/poker
// lookup-table evaluator.
package evaluator

import (
	"fmt"

	poker "github.com/paulhankin/poker"

	"github.com/lox/handsim/internal/deck"
)

// Evaluator implements hand comparison over seven cards (two hole cards plus
// the board). Higher library scores are stronger hands.
type Evaluator struct{}

// New returns a ready evaluator. The library's tables are package state, so
// the zero value works too.
func New() *Evaluator {
	return &Evaluator{}
}

// Compare returns >0 when a beats b, <0 when b beats a and 0 on a tie.
func (e *Evaluator) Compare(a, b []deck.Card) (int, error) {
	sa, err := e.Score(a)
	if err != nil {
		return 0, err
	}
	sb, err := e.Score(b)
	if err != nil {
		return 0, err
	}
	switch {
	case sa > sb:
		return 1, nil
	case sa < sb:
		return -1, nil
	default:
		return 0, nil
	}
}

// Score evaluates a seven-card hand. Scores are only comparable to other
// scores from this evaluator.
func (e *Evaluator) Score(cards []deck.Card) (int16, error) {
	if len(cards) != 7 {
		return 0, fmt.Errorf("evaluator needs 7 cards, got %d", len(cards))
	}
	var hand [7]poker.Card
	for i, c := range cards {
		pc, err := convert(c)
		if err != nil {
			return 0, err
		}
		hand[i] = pc
	}
	return poker.Eval7(&hand), nil
}

// Describe returns the library's human-readable description of the best
// five-card hand, e.g. "two pair".
func (e *Evaluator) Describe(cards []deck.Card) (string, error) {
	pcs := make([]poker.Card, len(cards))
	for i, c := range cards {
		pc, err := convert(c)
		if err != nil {
			return "", err
		}
		pcs[i] = pc
	}
	return poker.Describe(pcs)
}

// convert maps a deck card to a library card. The library numbers aces as
// rank 1.
func convert(c deck.Card) (poker.Card, error) {
	var zero poker.Card
	var s poker.Suit
	switch c.Suit {
	case deck.Clubs:
		s = poker.Club
	case deck.Diamonds:
		s = poker.Diamond
	case deck.Hearts:
		s = poker.Heart
	case deck.Spades:
		s = poker.Spade
	default:
		return zero, fmt.Errorf("unknown suit in card %s", c)
	}
	r := poker.Rank(c.Rank)
	if c.Rank == deck.Ace {
		r = poker.Rank(1)
	}
	return poker.MakeCard(s, r)
}
