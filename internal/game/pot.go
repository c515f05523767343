package game

import "sort"

// Pot is one pot layer. The main pot is layer zero; side pots form when
// players are all-in for unequal amounts.
type Pot struct {
	Amount   int
	Eligible []int // seats that may win this layer
	Cap      int   // total-bet level that closes this layer (0 for uncapped)
}

// PotManager accumulates swept bets and layers them into side pots.
// Live-round bets stay on the players until the street closes.
type PotManager struct {
	pots []Pot
}

// NewPotManager creates a pot manager with a single empty main pot.
func NewPotManager(players []*Player) *PotManager {
	return &PotManager{
		pots: []Pot{{Eligible: eligibleSeats(players)}},
	}
}

func eligibleSeats(players []*Player) []int {
	seats := make([]int, 0, len(players))
	for _, p := range players {
		if !p.Folded {
			seats = append(seats, p.Seat)
		}
	}
	return seats
}

// Total returns the chips swept into all pot layers so far.
func (pm *PotManager) Total() int {
	total := 0
	for _, pot := range pm.pots {
		total += pot.Amount
	}
	return total
}

// Pots returns the current layers.
func (pm *PotManager) Pots() []Pot {
	return pm.pots
}

// Clear empties the layers once the pot has been paid out.
func (pm *PotManager) Clear() {
	pm.pots = []Pot{{}}
}

// Sweep collects every player's round bet into the pot and relayers side
// pots from total contributions. Called at each street close.
func (pm *PotManager) Sweep(players []*Player) {
	for _, p := range players {
		p.Bet = 0
	}
	pm.relayer(players)
}

// relayer rebuilds the pot layers from each player's TotalBet. One layer is
// created per distinct all-in contribution level, plus an uncapped layer for
// chips above the highest all-in.
func (pm *PotManager) relayer(players []*Player) {
	levels := make(map[int]bool)
	for _, p := range players {
		if p.AllIn && p.TotalBet > 0 {
			levels[p.TotalBet] = true
		}
	}

	if len(levels) == 0 {
		total := 0
		for _, p := range players {
			total += p.TotalBet
		}
		pm.pots = []Pot{{Amount: total, Eligible: eligibleSeats(players)}}
		return
	}

	caps := make([]int, 0, len(levels))
	for level := range levels {
		caps = append(caps, level)
	}
	sort.Ints(caps)

	pm.pots = pm.pots[:0]
	prev := 0
	for _, level := range caps {
		pot := Pot{Cap: level}
		for _, p := range players {
			contrib := min(p.TotalBet, level) - prev
			if contrib > 0 {
				pot.Amount += contrib
			}
			if !p.Folded && p.TotalBet >= level {
				pot.Eligible = append(pot.Eligible, p.Seat)
			}
		}
		if pot.Amount > 0 {
			pm.pots = append(pm.pots, pot)
		}
		prev = level
	}

	// Chips above the highest all-in level form the live layer.
	top := Pot{}
	for _, p := range players {
		if p.TotalBet > prev {
			top.Amount += p.TotalBet - prev
			if !p.Folded {
				top.Eligible = append(top.Eligible, p.Seat)
			}
		}
	}
	if top.Amount > 0 {
		pm.pots = append(pm.pots, top)
	}
	if len(pm.pots) == 0 {
		pm.pots = []Pot{{Eligible: eligibleSeats(players)}}
	}
}

// PotsWithLive returns the layers with uncollected round bets counted into
// the last (live) layer, for display before a street closes.
func (pm *PotManager) PotsWithLive(players []*Player) []Pot {
	live := 0
	for _, p := range players {
		live += p.Bet
	}
	if live == 0 {
		return pm.pots
	}
	out := make([]Pot, len(pm.pots))
	copy(out, pm.pots)
	out[len(out)-1].Amount += live
	return out
}
