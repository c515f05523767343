package deck

import (
	"fmt"
	"math/rand"
)

// Deck deals cards for a single hand. A shuffled deck backs live play; a
// stacked deck reproduces a known card order.
type Deck struct {
	cards []Card
	next  int
}

// New returns a full 52-card deck shuffled with the given RNG.
func New(rng *rand.Rand) *Deck {
	cards := make([]Card, 0, 52)
	for suit := Spades; suit <= Clubs; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			cards = append(cards, Card{Rank: rank, Suit: suit})
		}
	}
	rng.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
	return &Deck{cards: cards}
}

// NewStacked returns a deck that deals exactly the given cards in order.
func NewStacked(cards ...Card) *Deck {
	return &Deck{cards: append([]Card(nil), cards...)}
}

// Deal removes and returns the next n cards.
func (d *Deck) Deal(n int) ([]Card, error) {
	if d.next+n > len(d.cards) {
		return nil, fmt.Errorf("deck exhausted: need %d cards, %d left", n, len(d.cards)-d.next)
	}
	cards := d.cards[d.next : d.next+n]
	d.next += n
	return cards, nil
}

// Remaining returns the number of undealt cards.
func (d *Deck) Remaining() int {
	return len(d.cards) - d.next
}
