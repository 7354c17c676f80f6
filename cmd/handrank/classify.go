package main

import (
	"github.com/lox/handrank/poker"
)

// ClassifyCmd shows how a single hand ranks
type ClassifyCmd struct {
	Hand string `arg:"" help:"Five-card hand, e.g. 'QS QD 2H 3C 5D'"`
}

func (c *ClassifyCmd) Run(g *Globals) error {
	if _, _, err := g.setup(); err != nil {
		return err
	}

	h, err := poker.ParseHand(c.Hand)
	if err != nil {
		return err
	}
	printClassification(g.out(), h, poker.Classify(h))
	return nil
}
