package poker

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// maxWorkers caps the default worker count.
const maxWorkers = 8

// WinningHandsParallel returns the same result as WinningHands, classifying
// contiguous chunks of hands concurrently and merging them in input order.
// workers <= 0 picks a default based on the CPU count.
func WinningHandsParallel(ctx context.Context, hands []string, workers int) ([]string, error) {
	if len(hands) == 1 {
		return []string{hands[0]}, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if workers <= 0 {
		workers = min(runtime.NumCPU(), maxWorkers)
	}
	workers = min(workers, len(hands))
	if workers <= 1 {
		return WinningHands(hands)
	}

	chunkSize := len(hands) / workers
	remainder := len(hands) % workers

	partials := make([]standings, workers)
	// Parse errors are kept per chunk so the one reported is the first in
	// input order, whichever goroutine finishes first.
	errs := make([]error, workers)
	g, ctx := errgroup.WithContext(ctx)

	start := 0
	for w := range workers {
		size := chunkSize
		if w < remainder {
			size++ // Distribute remainder hands
		}
		chunk, offset := hands[start:start+size], start
		start += size

		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			partials[w], errs[w] = foldHands(chunk, offset)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	var result standings
	for _, s := range partials {
		result = result.merge(s)
	}
	return result.winners, nil
}
