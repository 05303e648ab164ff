package runtime

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/aretw0/statespace/pkg/domain"
)

// runLayered expands the frontier one BFS layer at a time. Successors of a
// layer are computed concurrently, but they are committed to the visited set
// on this goroutine in parent order and catalogue order, which reproduces the
// exact discovery order of the sequential loop.
func (s *search[S]) runLayered(ctx context.Context, goal domain.Goal[S], actions []domain.Action[S]) (int, error) {
	for !s.frontier.empty() {
		if err := ctx.Err(); err != nil {
			return 0, fmt.Errorf("search canceled after %d states: %w", s.visited.len(), err)
		}

		layer, err := s.layerRecords(s.frontier.drain())
		if err != nil {
			return 0, err
		}
		queued := len(layer)

		// The sequential loop stops at the first goal in FIFO order, having
		// expanded only the states queued before it.
		goalIndex := 0
		for i, rec := range layer {
			if goal(rec.State) {
				goalIndex = rec.Index
				layer = layer[:i]
				break
			}
		}

		next, err := s.expandLayer(ctx, layer, actions)
		if err != nil {
			return 0, err
		}
		for i, rec := range layer {
			// The sequential queue would still hold the rest of this layer.
			s.emitExpand(ctx, rec.Index, queued-i-1+s.frontier.len())
			for _, succ := range next[i] {
				if err := s.commit(ctx, rec.Index, succ); err != nil {
					return 0, err
				}
			}
		}

		if goalIndex != 0 {
			return goalIndex, nil
		}
	}
	return 0, nil
}

func (s *search[S]) layerRecords(indices []int) ([]domain.Record[S], error) {
	layer := make([]domain.Record[S], len(indices))
	for i, idx := range indices {
		rec, err := s.visited.get(idx)
		if err != nil {
			return nil, err
		}
		layer[i] = rec
	}
	return layer, nil
}

func (s *search[S]) expandLayer(ctx context.Context, layer []domain.Record[S], actions []domain.Action[S]) ([][]successor[S], error) {
	out := make([][]successor[S], len(layer))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.engine.workers)
	for i, rec := range layer {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			succ, err := expand(rec, actions)
			if err != nil {
				return err
			}
			out[i] = succ
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
