package game

import (
	"slices"
	"testing"
)

func sweep(players []*Player) *PotManager {
	pm := NewPotManager(players)
	pm.Sweep(players)
	return pm
}

func TestPotNoAllIns(t *testing.T) {
	t.Parallel()
	players := []*Player{
		{Seat: 0, TotalBet: 100},
		{Seat: 1, TotalBet: 100},
		{Seat: 2, TotalBet: 100},
	}
	pm := sweep(players)

	pots := pm.Pots()
	if len(pots) != 1 {
		t.Fatalf("Expected single pot, got %d", len(pots))
	}
	if pots[0].Amount != 300 {
		t.Errorf("Expected pot 300, got %d", pots[0].Amount)
	}
	if !slices.Equal(pots[0].Eligible, []int{0, 1, 2}) {
		t.Errorf("Expected all seats eligible, got %v", pots[0].Eligible)
	}
}

func TestPotOneAllIn(t *testing.T) {
	t.Parallel()
	players := []*Player{
		{Seat: 0, TotalBet: 50, AllIn: true},
		{Seat: 1, TotalBet: 100},
		{Seat: 2, TotalBet: 100},
	}
	pm := sweep(players)

	pots := pm.Pots()
	if len(pots) != 2 {
		t.Fatalf("Expected main and side pot, got %d", len(pots))
	}
	if pots[0].Amount != 150 || !slices.Equal(pots[0].Eligible, []int{0, 1, 2}) {
		t.Errorf("Main pot wrong: %+v", pots[0])
	}
	if pots[1].Amount != 100 || !slices.Equal(pots[1].Eligible, []int{1, 2}) {
		t.Errorf("Side pot wrong: %+v", pots[1])
	}
}

func TestPotMultipleAllIns(t *testing.T) {
	t.Parallel()
	players := []*Player{
		{Seat: 0, TotalBet: 30, AllIn: true},
		{Seat: 1, TotalBet: 70, AllIn: true},
		{Seat: 2, TotalBet: 100},
		{Seat: 3, TotalBet: 100},
	}
	pm := sweep(players)

	pots := pm.Pots()
	if len(pots) != 3 {
		t.Fatalf("Expected 3 pot layers, got %d", len(pots))
	}
	wantAmounts := []int{120, 120, 60}
	wantEligible := [][]int{{0, 1, 2, 3}, {1, 2, 3}, {2, 3}}
	for i, pot := range pots {
		if pot.Amount != wantAmounts[i] {
			t.Errorf("Layer %d amount %d, want %d", i, pot.Amount, wantAmounts[i])
		}
		if !slices.Equal(pot.Eligible, wantEligible[i]) {
			t.Errorf("Layer %d eligible %v, want %v", i, pot.Eligible, wantEligible[i])
		}
	}
}

func TestPotFoldedChipsStayInButFoldedSeatIneligible(t *testing.T) {
	t.Parallel()
	players := []*Player{
		{Seat: 0, TotalBet: 50, AllIn: true},
		{Seat: 1, TotalBet: 80, Folded: true},
		{Seat: 2, TotalBet: 100},
	}
	pm := sweep(players)

	pots := pm.Pots()
	if pm.Total() != 230 {
		t.Fatalf("Folded chips must stay in the pot, total %d", pm.Total())
	}
	for _, pot := range pots {
		if slices.Contains(pot.Eligible, 1) {
			t.Errorf("Folded seat eligible in layer %+v", pot)
		}
	}
}

func TestPotUncalledTopLayerGoesBackToSoleContributor(t *testing.T) {
	t.Parallel()
	players := []*Player{
		{Seat: 0, TotalBet: 40, AllIn: true},
		{Seat: 1, TotalBet: 90},
	}
	pm := sweep(players)

	pots := pm.Pots()
	if len(pots) != 2 {
		t.Fatalf("Expected 2 layers, got %d", len(pots))
	}
	if pots[1].Amount != 50 || !slices.Equal(pots[1].Eligible, []int{1}) {
		t.Errorf("Uncalled layer wrong: %+v", pots[1])
	}
}

func TestPotsWithLiveBets(t *testing.T) {
	t.Parallel()
	players := []*Player{
		{Seat: 0, TotalBet: 20, Bet: 0},
		{Seat: 1, TotalBet: 20, Bet: 0},
	}
	pm := sweep(players)
	players[0].Bet = 30
	players[0].TotalBet = 50

	pots := pm.PotsWithLive(players)
	if pots[0].Amount != 70 {
		t.Errorf("Expected live total 70, got %d", pots[0].Amount)
	}
	// Underlying swept pot untouched
	if pm.Total() != 40 {
		t.Errorf("Sweep total changed to %d", pm.Total())
	}
}
