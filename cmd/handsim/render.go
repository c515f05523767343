package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/handsim/internal/deck"
	"github.com/lox/handsim/internal/game"
	"github.com/lox/handsim/internal/replay"
)

type renderStyles struct {
	Header    lipgloss.Style
	Street    lipgloss.Style
	Winner    lipgloss.Style
	Pot       lipgloss.Style
	CardRed   lipgloss.Style
	CardBlack lipgloss.Style
	Injected  lipgloss.Style
	Muted     lipgloss.Style
}

func newRenderStyles() *renderStyles {
	return &renderStyles{
		Header: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 2).
			Bold(true),
		Street: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true),
		Winner: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true),
		Pot: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true),
		CardRed: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		CardBlack: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#AAAAAA")).
			Bold(true),
		Injected: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")).
			Italic(true),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")),
	}
}

func (s *renderStyles) cards(cards []deck.Card) string {
	if len(cards) == 0 {
		return s.Muted.Render("--")
	}
	parts := make([]string, len(cards))
	for i, c := range cards {
		if c.IsRed() {
			parts[i] = s.CardRed.Render(c.Pretty())
		} else {
			parts[i] = s.CardBlack.Render(c.Pretty())
		}
	}
	return strings.Join(parts, " ")
}

func (s *renderStyles) renderResult(name string, res *replay.Result, showLog bool) string {
	var b strings.Builder
	h := res.Hand

	fmt.Fprintln(&b, s.Header.Render(name))
	fmt.Fprintf(&b, "Board: %s\n", s.cards(h.Board))

	if showLog {
		street := game.Street(-1)
		for _, a := range h.Log {
			if a.Street != street {
				street = a.Street
				fmt.Fprintln(&b, s.Street.Render("*** "+strings.ToUpper(street.String())+" ***"))
			}
			line := formatAction(h, a)
			if a.Injected {
				fmt.Fprintln(&b, s.Injected.Render(line+" (injected)"))
			} else {
				fmt.Fprintln(&b, line)
			}
		}
	}

	fmt.Fprintf(&b, "%s %d real, %d injected\n",
		s.Muted.Render("actions:"), res.Real, res.Injected)
	for _, sp := range res.Pots {
		fmt.Fprintf(&b, "%s %s\n",
			s.Muted.Render("pot entering "+sp.Street.String()+":"),
			s.Pot.Render(fmt.Sprintf("%d", sp.Pot)))
	}
	for _, payout := range h.Results {
		p := h.Players[payout.Seat]
		fmt.Fprintln(&b, s.Winner.Render(
			fmt.Sprintf("%s wins %d", p.Name, payout.Amount)))
	}
	return b.String()
}

func formatAction(h *game.HandState, a game.AppliedAction) string {
	name := h.Players[a.Seat].Name
	suffix := ""
	if a.AllIn {
		suffix = " (all-in)"
	}
	switch a.Kind {
	case game.Fold, game.Check:
		return fmt.Sprintf("  %s %ss", name, a.Kind)
	case game.Call:
		return fmt.Sprintf("  %s calls %d%s", name, a.Amount, suffix)
	case game.Bet:
		return fmt.Sprintf("  %s bets %d%s", name, a.Amount, suffix)
	case game.Raise:
		return fmt.Sprintf("  %s raises to %d%s", name, a.Amount, suffix)
	case game.PostSmallBlind:
		return fmt.Sprintf("  %s posts small blind %d%s", name, a.Amount, suffix)
	case game.PostBigBlind:
		return fmt.Sprintf("  %s posts big blind %d%s", name, a.Amount, suffix)
	default:
		return fmt.Sprintf("  %s %s %d", name, a.Kind, a.Amount)
	}
}
