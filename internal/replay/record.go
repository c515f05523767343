// Package replay reconstructs recorded hands through the live state
// machine, injecting the trivial actions sparse histories omit.
package replay

import (
	"fmt"
	"strconv"

	"github.com/lox/handsim/internal/deck"
	"github.com/lox/handsim/internal/game"
)

// HandRecord is the wire form of a recorded hand, decoded from JSON or
// TOML. Blinds are posted automatically on replay; a record may carry
// explicit post_small_blind/post_big_blind entries at the head of the
// preflop list, which are cross-checked and consumed rather than
// replayed. Amounts are absolute "raise-to" totals for raises and
// contributed deltas for bets and calls.
type HandRecord struct {
	Players    []SeatRecord  `json:"players" toml:"players"`
	Button     int           `json:"button" toml:"button"`
	SmallBlind int           `json:"small_blind" toml:"small_blind"`
	BigBlind   int           `json:"big_blind" toml:"big_blind"`
	Board      []string      `json:"board" toml:"board"`
	Actions    StreetActions `json:"actions" toml:"actions"`
}

// SeatRecord is one seat's entry in a recorded hand. HoleCards may be empty
// when the player never showed.
type SeatRecord struct {
	Seat      int      `json:"seat" toml:"seat"`
	Name      string   `json:"name" toml:"name"`
	Stack     int      `json:"stack" toml:"stack"`
	HoleCards []string `json:"hole_cards,omitempty" toml:"hole_cards"`
}

// StreetActions groups a record's actions by street, each list in
// chronological order.
type StreetActions struct {
	Preflop []ActionRecord `json:"preflop,omitempty" toml:"preflop"`
	Flop    []ActionRecord `json:"flop,omitempty" toml:"flop"`
	Turn    []ActionRecord `json:"turn,omitempty" toml:"turn"`
	River   []ActionRecord `json:"river,omitempty" toml:"river"`
}

// ActionRecord is one logged decision. Actor is a seat index or a player
// name. Type is one of fold, check, call, bet, raise or all-in.
type ActionRecord struct {
	Actor  string `json:"actor" toml:"actor"`
	Type   string `json:"type" toml:"type"`
	Amount int    `json:"amount,omitempty" toml:"amount"`
}

// Hand is a validated, immutable hand model ready for replay.
type Hand struct {
	Players    []Seat
	Button     int
	SmallBlind int
	BigBlind   int
	Board      []deck.Card
	Actions    []Action
}

// Seat is a validated seat entry.
type Seat struct {
	Seat      int
	Name      string
	Stack     int
	HoleCards []deck.Card
}

// Action is a validated logged action with its street and position in the
// original record.
type Action struct {
	Index  int
	Street game.Street
	Seat   int
	Kind   ActionType
	Amount int
}

// ActionType is the recorded action kind. AllIn is a marker the adapter
// maps onto a concrete bet or raise of the actor's full stack.
type ActionType int

const (
	FoldType ActionType = iota
	CheckType
	CallType
	BetType
	RaiseType
	AllInType
)

func (t ActionType) String() string {
	switch t {
	case FoldType:
		return "fold"
	case CheckType:
		return "check"
	case CallType:
		return "call"
	case BetType:
		return "bet"
	case RaiseType:
		return "raise"
	case AllInType:
		return "all-in"
	default:
		return "unknown"
	}
}

func parseActionType(s string) (ActionType, error) {
	switch s {
	case "fold":
		return FoldType, nil
	case "check":
		return CheckType, nil
	case "call":
		return CallType, nil
	case "bet":
		return BetType, nil
	case "raise":
		return RaiseType, nil
	case "all-in", "allin":
		return AllInType, nil
	default:
		return 0, fmt.Errorf("unknown action type %q", s)
	}
}

// Validate checks the record's structure and returns the immutable hand
// model. Malformed records are rejected here, never defaulted.
func (r *HandRecord) Validate() (*Hand, error) {
	n := len(r.Players)
	if n < 2 || n > 10 {
		return nil, fmt.Errorf("record has %d players, need 2 to 10", n)
	}
	if r.Button < 0 || r.Button >= n {
		return nil, fmt.Errorf("button seat %d out of range", r.Button)
	}
	if r.SmallBlind <= 0 || r.BigBlind <= 0 || r.BigBlind < r.SmallBlind {
		return nil, fmt.Errorf("bad blinds %d/%d", r.SmallBlind, r.BigBlind)
	}

	hand := &Hand{
		Button:     r.Button,
		SmallBlind: r.SmallBlind,
		BigBlind:   r.BigBlind,
	}

	seen := make(map[int]bool, n)
	names := make(map[string]int, n)
	dealt := make(map[deck.Card]string)
	hand.Players = make([]Seat, n)
	for _, sr := range r.Players {
		if sr.Seat < 0 || sr.Seat >= n {
			return nil, fmt.Errorf("seat %d out of range for %d players", sr.Seat, n)
		}
		if seen[sr.Seat] {
			return nil, fmt.Errorf("duplicate seat %d", sr.Seat)
		}
		seen[sr.Seat] = true
		if sr.Name == "" {
			return nil, fmt.Errorf("seat %d has no name", sr.Seat)
		}
		if _, dup := names[sr.Name]; dup {
			return nil, fmt.Errorf("duplicate player name %q", sr.Name)
		}
		names[sr.Name] = sr.Seat
		if sr.Stack <= 0 {
			return nil, fmt.Errorf("seat %d stack must be positive, got %d", sr.Seat, sr.Stack)
		}
		if len(sr.HoleCards) != 0 && len(sr.HoleCards) != 2 {
			return nil, fmt.Errorf("seat %d has %d hole cards", sr.Seat, len(sr.HoleCards))
		}
		cards, err := parseCardList(sr.HoleCards, dealt, fmt.Sprintf("seat %d", sr.Seat))
		if err != nil {
			return nil, err
		}
		hand.Players[sr.Seat] = Seat{Seat: sr.Seat, Name: sr.Name, Stack: sr.Stack, HoleCards: cards}
	}
	for seat := 0; seat < n; seat++ {
		if !seen[seat] {
			return nil, fmt.Errorf("seat %d missing from record", seat)
		}
	}

	switch len(r.Board) {
	case 0, 3, 4, 5:
	default:
		return nil, fmt.Errorf("board has %d cards, want 0, 3, 4 or 5", len(r.Board))
	}
	board, err := parseCardList(r.Board, dealt, "board")
	if err != nil {
		return nil, err
	}
	hand.Board = board

	streets := []struct {
		street  game.Street
		actions []ActionRecord
	}{
		{game.Preflop, r.Actions.Preflop},
		{game.Flop, r.Actions.Flop},
		{game.Turn, r.Actions.Turn},
		{game.River, r.Actions.River},
	}
	for _, s := range streets {
		if len(s.actions) > 0 && len(hand.Board) < s.street.BoardCards() {
			return nil, fmt.Errorf("%s actions recorded but board has %d cards", s.street, len(hand.Board))
		}
		for i, ar := range s.actions {
			if ar.Type == "post_small_blind" || ar.Type == "post_big_blind" {
				if s.street != game.Preflop || i > 1 {
					return nil, fmt.Errorf("%s: blind post out of place", s.street)
				}
				if err := r.checkBlindPost(hand, ar, names); err != nil {
					return nil, err
				}
				continue
			}
			seat, err := resolveActor(ar.Actor, names, n)
			if err != nil {
				return nil, fmt.Errorf("%s action: %w", s.street, err)
			}
			kind, err := parseActionType(ar.Type)
			if err != nil {
				return nil, fmt.Errorf("%s action by seat %d: %w", s.street, seat, err)
			}
			if ar.Amount < 0 {
				return nil, fmt.Errorf("%s action by seat %d: negative amount %d", s.street, seat, ar.Amount)
			}
			if (kind == BetType || kind == RaiseType) && ar.Amount == 0 {
				return nil, fmt.Errorf("%s %s by seat %d has no amount", s.street, kind, seat)
			}
			hand.Actions = append(hand.Actions, Action{
				Index:  len(hand.Actions),
				Street: s.street,
				Seat:   seat,
				Kind:   kind,
				Amount: ar.Amount,
			})
		}
	}

	return hand, nil
}

// checkBlindPost cross-checks a recorded blind post against the seat and
// amount the replay posts itself. Amount may be omitted; a short stack
// posts what it has.
func (r *HandRecord) checkBlindPost(hand *Hand, ar ActionRecord, names map[string]int) error {
	n := len(hand.Players)
	seat, err := resolveActor(ar.Actor, names, n)
	if err != nil {
		return fmt.Errorf("%s: %w", ar.Type, err)
	}
	sb, bb := blindSeats(hand.Button, n)
	wantSeat, want := sb, hand.SmallBlind
	if ar.Type == "post_big_blind" {
		wantSeat, want = bb, hand.BigBlind
	}
	if seat != wantSeat {
		return fmt.Errorf("%s by seat %d, expected seat %d", ar.Type, seat, wantSeat)
	}
	if stack := hand.Players[seat].Stack; want > stack {
		want = stack
	}
	if ar.Amount != 0 && ar.Amount != want {
		return fmt.Errorf("%s of %d by seat %d, expected %d", ar.Type, ar.Amount, seat, want)
	}
	return nil
}

// blindSeats returns the small and big blind seats for a button position.
// Heads-up the button posts the small blind.
func blindSeats(button, n int) (int, int) {
	if n == 2 {
		return button, (button + 1) % n
	}
	return (button + 1) % n, (button + 2) % n
}

func resolveActor(actor string, names map[string]int, n int) (int, error) {
	if actor == "" {
		return 0, fmt.Errorf("action has no actor")
	}
	if seat, ok := names[actor]; ok {
		return seat, nil
	}
	seat, err := strconv.Atoi(actor)
	if err != nil || seat < 0 || seat >= n {
		return 0, fmt.Errorf("unknown actor %q", actor)
	}
	return seat, nil
}

func parseCardList(codes []string, dealt map[deck.Card]string, where string) ([]deck.Card, error) {
	if len(codes) == 0 {
		return nil, nil
	}
	cards := make([]deck.Card, 0, len(codes))
	for _, code := range codes {
		card, err := deck.ParseCard(code)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", where, err)
		}
		if prev, dup := dealt[card]; dup {
			return nil, fmt.Errorf("%s: card %s already dealt to %s", where, card, prev)
		}
		dealt[card] = where
		cards = append(cards, card)
	}
	return cards, nil
}
