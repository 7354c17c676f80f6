package main

import (
	"context"
	"fmt"

	"github.com/lox/handrank/poker"
)

// WinnersCmd picks the best hands from its arguments
type WinnersCmd struct {
	Hands   []string `arg:"" name:"hand" help:"Five-card hands, e.g. '4S 5S 6S 7S 8S' (quote each hand)"`
	Workers int      `short:"w" default:"1" help:"Goroutines used to rank the hands (0 = one per CPU)"`
}

func (c *WinnersCmd) Run(g *Globals) error {
	_, logger, err := g.setup()
	if err != nil {
		return err
	}

	winners, err := poker.WinningHandsParallel(context.Background(), c.Hands, c.Workers)
	if err != nil {
		return fmt.Errorf("ranking hands: %w", err)
	}
	logger.Debug("Ranked hands", "hands", len(c.Hands), "winners", len(winners))

	printWinners(g.out(), winners)
	return nil
}
