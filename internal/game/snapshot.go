package game

import "github.com/lox/handsim/internal/deck"

// PlayerSnapshot is an immutable copy of one seat's state.
type PlayerSnapshot struct {
	Seat      int      `json:"seat"`
	Name      string   `json:"name"`
	Position  string   `json:"position"`
	Chips     int      `json:"chips"`
	Bet       int      `json:"bet"`
	TotalBet  int      `json:"total_bet"`
	Folded    bool     `json:"folded"`
	AllIn     bool     `json:"all_in"`
	HoleCards []string `json:"hole_cards,omitempty"`
}

// Snapshot is an immutable, deterministic copy of the hand state. Two hands
// built from the same inputs and actions produce identical snapshots.
type Snapshot struct {
	Street     string           `json:"street"`
	Board      []string         `json:"board"`
	Pot        int              `json:"pot"`
	TotalPot   int              `json:"total_pot"`
	CurrentBet int              `json:"current_bet"`
	MinRaise   int              `json:"min_raise"`
	Button     int              `json:"button"`
	ActionOn   int              `json:"action_on"`
	NeedAction []int            `json:"need_action"`
	Players    []PlayerSnapshot `json:"players"`
	Results    []Payout         `json:"results,omitempty"`
}

// Snapshot captures the current hand state.
func (h *HandState) Snapshot() Snapshot {
	s := Snapshot{
		Street:     h.Street.String(),
		Board:      deck.Strings(h.Board),
		Pot:        h.SweptPot(),
		TotalPot:   h.PotTotal(),
		CurrentBet: h.Betting.CurrentBet,
		MinRaise:   h.Betting.MinRaise,
		Button:     h.Button,
		ActionOn:   h.ActionOn,
		NeedAction: h.PendingSeats(),
		Results:    append([]Payout(nil), h.Results...),
	}
	for _, p := range h.Players {
		s.Players = append(s.Players, PlayerSnapshot{
			Seat:      p.Seat,
			Name:      p.Name,
			Position:  PositionFor(p.Seat, h.Button, len(h.Players)).String(),
			Chips:     p.Chips,
			Bet:       p.Bet,
			TotalBet:  p.TotalBet,
			Folded:    p.Folded,
			AllIn:     p.AllIn,
			HoleCards: deck.Strings(p.HoleCards),
		})
	}
	return s
}
