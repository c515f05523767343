package main

import (
	"fmt"

	"github.com/lox/handsim/internal/replay"
)

type ValidateCmd struct {
	Files []string `arg:"" type:"existingfile" help:"Hand record files (.json or .toml)"`
}

func (c *ValidateCmd) Run(rc *RunContext) error {
	failed := 0
	for _, path := range c.Files {
		hand, err := replay.LoadFile(path)
		if err != nil {
			failed++
			fmt.Printf("FAIL %s: %v\n", path, err)
			continue
		}
		fmt.Printf("OK   %s: %d players, %d actions\n", path, len(hand.Players), len(hand.Actions))
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d records invalid", failed, len(c.Files))
	}
	return nil
}
