package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/lox/handrank/internal/server"
)

// ServeCmd runs the showdown service
type ServeCmd struct {
	Addr    string `short:"a" help:"Address to listen on (overrides config)"`
	Workers *int   `help:"Goroutines used to rank each batch (overrides config)"`
}

func (c *ServeCmd) Run(g *Globals) error {
	cfg, logger, err := g.setup()
	if err != nil {
		return err
	}

	addr := cfg.Server.Address
	if c.Addr != "" {
		addr = c.Addr
	}
	workers := cfg.Server.Workers
	if c.Workers != nil {
		workers = *c.Workers
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.NewServer(logger, server.WithWorkers(workers))
	return srv.ListenAndServe(ctx, addr)
}
