package column

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/colgo/colgo/cell"
)

// BuildParallel implements the §5 resource-model guidance that the
// cogroup/reduce algorithms are "embarrassingly parallelizable over
// distinct key runs": it partitions [0, n) into nShards disjoint row
// ranges, builds each range independently via fn, and concatenates the
// results in order. No operation in this package requires BuildParallel;
// it exists for callers with a large n and a pure per-row fn who want to
// use more than one core, matching replay.Replayer's use of
// errgroup.WithContext to fan out independent units of work.
func BuildParallel[A any](ctx context.Context, n, nShards int, fn func(row int) cell.Cell[A]) (Column[A], error) {
	if nShards < 1 {
		nShards = 1
	}
	if nShards > n {
		nShards = max(n, 1)
	}

	shardResults := make([][]cell.Cell[A], nShards)
	g, _ := errgroup.WithContext(ctx)
	shardSize := (n + nShards - 1) / nShards
	for s := 0; s < nShards; s++ {
		s := s
		start := s * shardSize
		end := min(start+shardSize, n)
		if start >= end {
			continue
		}
		g.Go(func() error {
			out := make([]cell.Cell[A], end-start)
			for row := start; row < end; row++ {
				out[row-start] = fn(row)
			}
			shardResults[s] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var b Builder[A]
	b.SizeHint(n)
	for _, shard := range shardResults {
		for _, c := range shard {
			b.Add(c)
		}
	}
	return b.Result(), nil
}
