package series

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/colgo/colgo/cell"
	"github.com/colgo/colgo/column"
	"github.com/colgo/colgo/index"
	"github.com/colgo/colgo/internal/base"
)

// BuildByKeyRangesParallel builds a Series over the given already-sorted
// keys by partitioning [0, n) into up to nShards disjoint row ranges — each
// aligned to a key-run boundary, so no single key's run is split across two
// shards — and filling each range independently via fn. Mirrors
// column.BuildParallel at the Series layer, per §5's guidance that "the
// cogroup/reduce algorithms are embarrassingly parallelizable over distinct
// key runs".
func BuildByKeyRangesParallel[K, V any](ctx context.Context, keys []K, cmp base.Compare[K], nShards int, fn func(row int) cell.Cell[V]) (Series[K, V], error) {
	n := len(keys)
	bounds := keyRunAlignedBounds(keys, cmp, n, nShards)

	shardResults := make([][]cell.Cell[V], len(bounds))
	g, _ := errgroup.WithContext(ctx)
	for s, bound := range bounds {
		s, bound := s, bound
		g.Go(func() error {
			out := make([]cell.Cell[V], bound.end-bound.start)
			for row := bound.start; row < bound.end; row++ {
				out[row-bound.start] = fn(row)
			}
			shardResults[s] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Series[K, V]{}, err
	}

	var b column.Builder[V]
	b.SizeHint(n)
	for _, shard := range shardResults {
		for _, c := range shard {
			b.Add(c)
		}
	}
	positions := make([]int, n)
	for i := range positions {
		positions[i] = i
	}
	return Series[K, V]{Index: index.Ordered(keys, positions, cmp), Column: b.Result()}, nil
}

type rowRange struct{ start, end int }

// keyRunAlignedBounds splits [0, n) into up to nShards ranges whose
// boundaries never fall inside a run of equal keys.
func keyRunAlignedBounds[K any](keys []K, cmp base.Compare[K], n, nShards int) []rowRange {
	if nShards < 1 {
		nShards = 1
	}
	if n == 0 {
		return nil
	}
	target := (n + nShards - 1) / nShards
	var bounds []rowRange
	start := 0
	for start < n {
		end := min(start+target, n)
		for end < n && cmp(keys[end-1], keys[end]) == 0 {
			end++
		}
		bounds = append(bounds, rowRange{start: start, end: end})
		start = end
	}
	return bounds
}
