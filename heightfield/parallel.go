package heightfield

import (
	"context"

	"github.com/trailmesh/voxelfield/geom"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// RasterizeShards rasterizes triangles into hf using shardCount concurrent
// workers. This is the optional sharded rasterizer spec.md §5 allows but
// does not require: each worker rasterizes its share of the triangle list
// into a private, transient Heightfield with the same bounds as hf, so no
// goroutine ever mutates hf's Cells directly. Once every worker finishes,
// the shard results are merged into hf column by column on the calling
// goroutine, preserving the "no concurrent mutation of one Heightfield"
// contract while still doing the rasterization work in parallel.
//
// shardCount <= 1 rasterizes sequentially on the caller's goroutine.
func RasterizeShards(ctx context.Context, hf *Heightfield, triangles []geom.Triangle3, areas []AreaFlags, shardCount int) error {
	if len(triangles) != len(areas) {
		return &ArgumentError{Reason: "len(triangles) must equal len(areas)"}
	}
	if shardCount <= 1 || len(triangles) == 0 {
		for i, tri := range triangles {
			if err := hf.RasterizeTriangle(tri.A, tri.B, tri.C, areas[i]); err != nil {
				return err
			}
		}
		return nil
	}

	shards := make([]*Heightfield, shardCount)
	group, _ := errgroup.WithContext(ctx)
	chunk := (len(triangles) + shardCount - 1) / shardCount

	for s := 0; s < shardCount; s++ {
		s := s
		lo := s * chunk
		hi := minInt(lo+chunk, len(triangles))
		if lo >= hi {
			continue
		}
		group.Go(func() error {
			shard, err := New(hf.bounds.Min, hf.bounds.Max, hf.cellSize, hf.cellHeight, WithLogger(hf.logger.With(zap.Int("shard", s))))
			if err != nil {
				return err
			}
			for i := lo; i < hi; i++ {
				if err := shard.RasterizeTriangle(triangles[i].A, triangles[i].B, triangles[i].C, areas[i]); err != nil {
					return err
				}
			}
			shards[s] = shard
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return err
	}

	for _, shard := range shards {
		if shard == nil {
			continue
		}
		for z := 0; z < shard.length; z++ {
			for x := 0; x < shard.width; x++ {
				for _, span := range shard.cellAt(x, z).spans {
					hf.cellAt(x, z).AddSpan(span)
				}
			}
		}
	}
	return nil
}
