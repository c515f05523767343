// Package config loads the simulation harness configuration from HCL.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config is the complete harness configuration.
type Config struct {
	Sim     SimSettings  `hcl:"simulation,block"`
	Tables  []Table      `hcl:"table,block"`
	Players []PlayerSpec `hcl:"player,block"`
}

// SimSettings contains run-level settings.
type SimSettings struct {
	Hands      int    `hcl:"hands,optional"`
	Seed       int64  `hcl:"seed,optional"`
	Workers    int    `hcl:"workers,optional"`
	LogLevel   string `hcl:"log_level,optional"`
	MaxActions int    `hcl:"max_actions,optional"`
}

// Table defines one table layout to simulate.
type Table struct {
	Name          string `hcl:"name,label"`
	Players       int    `hcl:"players"`
	SmallBlind    int    `hcl:"small_blind"`
	BigBlind      int    `hcl:"big_blind"`
	StartingStack int    `hcl:"starting_stack,optional"`
}

// PlayerSpec assigns a strategy to a named player.
type PlayerSpec struct {
	Name     string `hcl:"name,label"`
	Strategy string `hcl:"strategy"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Sim: SimSettings{
			Hands:      100,
			Workers:    1,
			LogLevel:   "info",
			MaxActions: 500,
		},
		Tables: []Table{
			{Name: "main", Players: 6, SmallBlind: 1, BigBlind: 2, StartingStack: 200},
		},
	}
}

// Load reads a harness configuration from an HCL file, falling back to the
// defaults when the file does not exist.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parsing %s: %s", filename, diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("decoding %s: %s", filename, diags.Error())
	}

	if cfg.Sim.Hands == 0 {
		cfg.Sim.Hands = 100
	}
	if cfg.Sim.Workers == 0 {
		cfg.Sim.Workers = 1
	}
	if cfg.Sim.LogLevel == "" {
		cfg.Sim.LogLevel = "info"
	}
	if cfg.Sim.MaxActions == 0 {
		cfg.Sim.MaxActions = 500
	}
	for i := range cfg.Tables {
		if cfg.Tables[i].StartingStack == 0 {
			cfg.Tables[i].StartingStack = cfg.Tables[i].BigBlind * 100
		}
	}

	return &cfg, nil
}

// Validate checks the configuration for contradictions.
func (c *Config) Validate() error {
	if c.Sim.Hands <= 0 {
		return fmt.Errorf("simulation hands must be positive, got %d", c.Sim.Hands)
	}
	if c.Sim.Workers <= 0 {
		return fmt.Errorf("simulation workers must be positive, got %d", c.Sim.Workers)
	}
	if len(c.Tables) == 0 {
		return fmt.Errorf("at least one table must be configured")
	}
	for _, t := range c.Tables {
		if t.Players < 2 || t.Players > 10 {
			return fmt.Errorf("table %s: players must be between 2 and 10", t.Name)
		}
		if t.SmallBlind <= 0 {
			return fmt.Errorf("table %s: small blind must be positive", t.Name)
		}
		if t.BigBlind < t.SmallBlind {
			return fmt.Errorf("table %s: big blind below small blind", t.Name)
		}
		if t.StartingStack < t.BigBlind {
			return fmt.Errorf("table %s: starting stack below the big blind", t.Name)
		}
	}

	valid := map[string]bool{"call": true, "fold": true, "random": true}
	for _, p := range c.Players {
		if !valid[p.Strategy] {
			return fmt.Errorf("player %s: unknown strategy %q", p.Name, p.Strategy)
		}
	}
	return nil
}
