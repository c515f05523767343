package deck

import (
	"math/rand"
	"testing"
)

func TestDeckDealsUniqueCards(t *testing.T) {
	d := New(rand.New(rand.NewSource(1)))

	seen := make(map[Card]bool)
	cards, err := d.Deal(52)
	if err != nil {
		t.Fatalf("Deal failed: %v", err)
	}
	for _, c := range cards {
		if seen[c] {
			t.Errorf("Card %s dealt twice", c)
		}
		seen[c] = true
	}
	if len(seen) != 52 {
		t.Errorf("Expected 52 unique cards, got %d", len(seen))
	}
}

func TestDeckExhaustion(t *testing.T) {
	d := New(rand.New(rand.NewSource(1)))
	if _, err := d.Deal(50); err != nil {
		t.Fatalf("Deal failed: %v", err)
	}
	if _, err := d.Deal(3); err == nil {
		t.Error("Expected error dealing past the end of the deck")
	}
	if d.Remaining() != 2 {
		t.Errorf("Expected 2 remaining, got %d", d.Remaining())
	}
}

func TestStackedDeck(t *testing.T) {
	d := NewStacked(MustParseCards("AsKsQs")...)
	cards, err := d.Deal(2)
	if err != nil {
		t.Fatalf("Deal failed: %v", err)
	}
	if cards[0].String() != "As" || cards[1].String() != "Ks" {
		t.Errorf("Stacked deck dealt out of order: %v", Strings(cards))
	}
}

func TestShuffleIsDeterministicForSeed(t *testing.T) {
	a, _ := New(rand.New(rand.NewSource(7))).Deal(52)
	b, _ := New(rand.New(rand.NewSource(7))).Deal(52)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("Deck order differs at %d for the same seed", i)
		}
	}
}
