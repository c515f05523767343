package game

import (
	"github.com/lox/handsim/internal/deck"
)

// Player represents one seat in a hand. Chips is the stack not yet wagered,
// Bet the chips committed in the current betting round, TotalBet the chips
// committed across the whole hand (used for side-pot layering).
type Player struct {
	Seat      int
	Name      string
	Chips     int
	Bet       int
	TotalBet  int
	Folded    bool
	AllIn     bool
	HoleCards []deck.Card
}

// InHand returns true if the player has not folded.
func (p *Player) InHand() bool {
	return !p.Folded
}

// CanAct returns true if the player can still make a decision this hand.
func (p *Player) CanAct() bool {
	return !p.Folded && !p.AllIn
}

// Position is a derived table-position label.
type Position int

const (
	UnknownPosition Position = iota
	Button
	SmallBlindPos
	BigBlindPos
	UnderTheGun
	MiddlePosition
	Hijack
	Cutoff
)

func (p Position) String() string {
	switch p {
	case Button:
		return "BTN"
	case SmallBlindPos:
		return "SB"
	case BigBlindPos:
		return "BB"
	case UnderTheGun:
		return "UTG"
	case MiddlePosition:
		return "MP"
	case Hijack:
		return "HJ"
	case Cutoff:
		return "CO"
	default:
		return "?"
	}
}

// PositionFor derives a seat's position label from the dealer button.
// Heads-up the button is also the small blind.
func PositionFor(seat, button, numPlayers int) Position {
	dist := (seat - button + numPlayers) % numPlayers

	if numPlayers == 2 {
		if dist == 0 {
			return Button
		}
		return BigBlindPos
	}

	switch dist {
	case 0:
		return Button
	case 1:
		return SmallBlindPos
	case 2:
		return BigBlindPos
	case 3:
		return UnderTheGun
	case numPlayers - 1:
		return Cutoff
	case numPlayers - 2:
		if numPlayers >= 6 {
			return Hijack
		}
		return MiddlePosition
	default:
		return MiddlePosition
	}
}
