package pipeline

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"book_themes/internal/density"
	"book_themes/internal/segment"
)

type Scorer func(ch segment.Chapter) (density.Pair, error)

// ScoreChapters runs fn over every chapter with at most workers goroutines.
// Each worker writes only its own result slot, so the output is in chapter
// order regardless of completion order.
func ScoreChapters(ctx context.Context, chapters []segment.Chapter, workers int, fn Scorer) ([]density.Pair, error) {
	if len(chapters) == 0 || fn == nil {
		return nil, nil
	}
	workers = Workers(workers)

	results := make([]density.Pair, len(chapters))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, ch := range chapters {
		if gctx.Err() != nil {
			break
		}
		i, ch := i, ch
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			pair, err := fn(ch)
			if err != nil {
				return fmt.Errorf("score chapter %d: %w", i+1, err)
			}
			results[i] = pair
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

// Workers resolves a configured worker count; zero or less means one per CPU.
func Workers(n int) int {
	if n <= 0 {
		n = runtime.NumCPU()
		if n < 1 {
			n = 1
		}
	}
	return n
}
