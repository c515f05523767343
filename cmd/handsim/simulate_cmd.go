package main

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/lox/handsim/internal/config"
	"github.com/lox/handsim/internal/evaluator"
	"github.com/lox/handsim/internal/game"
)

type SimulateCmd struct {
	Config  string `type:"path" default:"handsim.hcl" help:"Harness configuration file"`
	Hands   int    `help:"Override the number of hands to simulate"`
	Seed    int64  `help:"Override the RNG seed"`
	Workers int    `help:"Override the number of parallel workers"`
}

func (c *SimulateCmd) Run(rc *RunContext) error {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return err
	}
	if c.Hands > 0 {
		cfg.Sim.Hands = c.Hands
	}
	if c.Seed != 0 {
		cfg.Sim.Seed = c.Seed
	}
	if c.Workers > 0 {
		cfg.Sim.Workers = c.Workers
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	for _, table := range cfg.Tables {
		if err := c.runTable(rc, cfg, table); err != nil {
			return fmt.Errorf("table %s: %w", table.Name, err)
		}
	}
	return nil
}

func (c *SimulateCmd) runTable(rc *RunContext, cfg *config.Config, table config.Table) error {
	logger := rc.Logger.With().Str("table", table.Name).Logger()

	names := make([]string, table.Players)
	strategies := make([]string, table.Players)
	for i := range names {
		if i < len(cfg.Players) {
			names[i] = cfg.Players[i].Name
			strategies[i] = cfg.Players[i].Strategy
		} else {
			names[i] = fmt.Sprintf("player%d", i)
			strategies[i] = "random"
		}
	}

	var mu sync.Mutex
	winnings := make([]int, table.Players)
	handsPlayed := 0

	var g errgroup.Group
	for w := 0; w < cfg.Sim.Workers; w++ {
		worker := w
		count := cfg.Sim.Hands / cfg.Sim.Workers
		if worker < cfg.Sim.Hands%cfg.Sim.Workers {
			count++
		}
		g.Go(func() error {
			rng := rand.New(rand.NewSource(cfg.Sim.Seed + int64(worker)))
			sources := buildStrategies(strategies, rng)
			eval := evaluator.New()

			for i := 0; i < count; i++ {
				button := (worker*count + i) % table.Players
				net, err := playHand(names, button, table, cfg.Sim.MaxActions, rng, sources, eval, logger)
				if err != nil {
					return err
				}
				mu.Lock()
				for seat, delta := range net {
					winnings[seat] += delta
				}
				handsPlayed++
				mu.Unlock()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	fmt.Printf("table %s: %d hands\n", table.Name, handsPlayed)
	for seat, name := range names {
		fmt.Printf("  %-12s %-8s net %+d\n", name, strategies[seat], winnings[seat])
	}
	return nil
}

func buildStrategies(strategies []string, rng *rand.Rand) []game.DecisionSource {
	sources := make([]game.DecisionSource, len(strategies))
	for i, s := range strategies {
		switch s {
		case "call":
			sources[i] = game.CheckCallStrategy{}
		case "fold":
			sources[i] = game.FoldStrategy{}
		default:
			sources[i] = game.RandomStrategy{RNG: rng}
		}
	}
	return sources
}

// playHand runs one hand to completion and returns each seat's net chip
// change.
func playHand(names []string, button int, table config.Table, maxActions int,
	rng *rand.Rand, sources []game.DecisionSource, eval *evaluator.Evaluator,
	logger zerolog.Logger) ([]int, error) {

	h, err := game.NewHand(names, button, table.SmallBlind, table.BigBlind,
		game.WithChips(table.StartingStack),
		game.WithRNG(rng),
		game.WithComparator(eval),
		game.WithLogger(logger),
	)
	if err != nil {
		return nil, err
	}

	for steps := 0; !h.Complete() && h.ActionOn >= 0; steps++ {
		if steps > maxActions {
			return nil, fmt.Errorf("hand exceeded %d actions at %s", maxActions, h.Street)
		}
		seat := h.ActionOn
		kind, amount, err := sources[seat].Decide(h, seat)
		if err != nil {
			return nil, err
		}
		if err := h.ExecuteAction(seat, kind, amount); err != nil {
			return nil, err
		}
	}

	net := make([]int, len(names))
	for seat, p := range h.Players {
		net[seat] = p.Chips - table.StartingStack
	}
	return net, nil
}
