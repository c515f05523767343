package game

import (
	"errors"
	"fmt"
	"sort"

	"github.com/lox/handsim/internal/deck"
)

// ErrUnknownHoleCards reports a showdown pot with no contender whose hole
// cards are known. Only possible when replaying a hand with mucked cards.
var ErrUnknownHoleCards = errors.New("no known hole cards at showdown")

// HandComparator ranks seven-card hands at showdown. Compare returns a
// positive value when a beats b, negative when b beats a and zero on a tie.
// Each input is two hole cards plus the five-card board.
type HandComparator interface {
	Compare(a, b []deck.Card) (int, error)
}

// Payout is one seat's share of the pot at hand completion.
type Payout struct {
	Seat   int `json:"seat"`
	Amount int `json:"amount"`
}

// Finish settles a hand that stopped at showdown because no comparator was
// configured. It is a no-op error to call it before showdown or after the
// pot has been paid.
func (h *HandState) Finish(cmp HandComparator) ([]Payout, error) {
	switch h.Street {
	case HandComplete:
		return h.Results, nil
	case Showdown:
	default:
		return nil, fmt.Errorf("hand is at %s, not showdown", h.Street)
	}
	h.cmp = cmp
	if err := h.settle(); err != nil {
		return nil, err
	}
	return h.Results, nil
}

// settle compares hands per pot layer and pays each layer to its best
// hand(s), splitting ties with odd chips going to the earliest winner left
// of the button.
func (h *HandState) settle() error {
	if len(h.Board) != 5 {
		return fmt.Errorf("showdown with %d board cards", len(h.Board))
	}

	totals := make(map[int]int)
	for i, pot := range h.pots.Pots() {
		winners, err := h.potWinners(pot)
		if err != nil {
			return fmt.Errorf("pot %d: %w", i, err)
		}
		share := pot.Amount / len(winners)
		odd := pot.Amount % len(winners)
		for j, seat := range h.orderFromButton(winners) {
			amount := share
			if j < odd {
				amount++
			}
			h.Players[seat].Chips += amount
			totals[seat] += amount
		}
	}

	h.pots.Clear()

	seats := make([]int, 0, len(totals))
	for seat := range totals {
		seats = append(seats, seat)
	}
	sort.Ints(seats)
	h.Results = h.Results[:0]
	for _, seat := range seats {
		h.Results = append(h.Results, Payout{Seat: seat, Amount: totals[seat]})
		h.logger.Debug().
			Int("seat", seat).
			Int("amount", totals[seat]).
			Strs("cards", deck.Strings(h.Players[seat].HoleCards)).
			Msg("pot awarded")
	}
	h.Street = HandComplete
	return h.checkConservation()
}

// potWinners returns the seats holding the best hand among a pot's eligible
// contenders. Seats with unknown hole cards cannot contend.
func (h *HandState) potWinners(pot Pot) ([]int, error) {
	var winners []int
	var bestCards []deck.Card
	for _, seat := range pot.Eligible {
		p := h.Players[seat]
		if p.Folded || len(p.HoleCards) != 2 {
			continue
		}
		cards := make([]deck.Card, 0, 7)
		cards = append(cards, p.HoleCards...)
		cards = append(cards, h.Board...)

		if winners == nil {
			winners = []int{seat}
			bestCards = cards
			continue
		}
		c, err := h.cmp.Compare(cards, bestCards)
		if err != nil {
			return nil, err
		}
		switch {
		case c > 0:
			winners = winners[:0]
			winners = append(winners, seat)
			bestCards = cards
		case c == 0:
			winners = append(winners, seat)
		}
	}
	if winners == nil {
		return nil, ErrUnknownHoleCards
	}
	return winners, nil
}

// orderFromButton sorts seats by distance clockwise from the seat left of
// the button, the order odd chips are handed out in.
func (h *HandState) orderFromButton(seats []int) []int {
	n := len(h.Players)
	out := append([]int(nil), seats...)
	sort.Slice(out, func(i, j int) bool {
		di := (out[i] - h.Button - 1 + n) % n
		dj := (out[j] - h.Button - 1 + n) % n
		return di < dj
	})
	return out
}
