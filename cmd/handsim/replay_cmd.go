package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/lox/handsim/internal/replay"
)

type ReplayCmd struct {
	Files      []string `arg:"" type:"existingfile" help:"Hand record files (.json or .toml)"`
	ShowLog    bool     `help:"Print the full action log including injected actions"`
	JSON       bool     `help:"Print the final hand snapshot as JSON"`
	MaxActions int      `default:"500" help:"Abort a replay after this many actions"`
}

func (c *ReplayCmd) Run(rc *RunContext) error {
	styles := newRenderStyles()
	replayer := replay.NewReplayer(
		replay.WithLogger(rc.Logger),
		replay.WithMaxActions(c.MaxActions),
	)

	for _, path := range c.Files {
		hand, err := replay.LoadFile(path)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}

		res, err := replayer.Replay(hand)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}

		if c.JSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(res.Final); err != nil {
				return err
			}
			continue
		}
		fmt.Print(styles.renderResult(path, res, c.ShowLog))
	}
	return nil
}
