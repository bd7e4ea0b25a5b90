package pagerank

import (
	"fmt"
	"math"

	"github.com/vertex-lab/linkrank/pkg/graph"
	"github.com/vertex-lab/linkrank/pkg/models"
)

// Iterate computes the pagerank of each node by power iteration, using the
// default threshold and an iteration cap derived from damping.
func Iterate(G *graph.Graph, damping float64) (models.PagerankMap, error) {
	config := NewConfig()
	config.Damping = damping
	return IterateWithConfig(G, config)
}

/*
IterateWithConfig computes the pagerank of each node by power iteration. It
starts from the uniform distribution and, at each iteration, sets the rank of
every node p to

	(1 - damping) / N + damping * sum(rank[q] / |links(q)|, for q linking to p)
	+ damping * sinkRank / N

where sinkRank is the total rank held by sinks, which are treated as linking to
every node. The new ranks are computed only from the previous ones.

It stops as soon as no rank changed by config.Threshold or more, and returns
ErrDidNotConverge after config.MaxIterations iterations. A zero MaxIterations
is replaced by IterationBound, so with damping < 1 it always converges.
*/
func IterateWithConfig(G *graph.Graph, config Config) (models.PagerankMap, error) {
	if err := G.Validate(); err != nil {
		return nil, err
	}

	if err := checkDamping(config.Damping); err != nil {
		return nil, err
	}

	if err := checkConvergence(config.Threshold, config.MaxIterations); err != nil {
		return nil, err
	}

	maxIterations := config.MaxIterations
	if maxIterations == 0 {
		maxIterations = IterationBound(config.Damping, config.Threshold)
	}

	ranks, iterations, err := iterate(G, config.Damping, config.Threshold, maxIterations)
	if err != nil {
		config.Log.Warn("Iterate: %v", err)
		return nil, err
	}

	config.Log.Info("Iterate: converged after %d iterations on %d nodes", iterations, G.Size())

	pagerank := make(models.PagerankMap, len(ranks))
	for i, rank := range ranks {
		pagerank[G.NodeAt(i)] = rank
	}
	return pagerank, nil
}

// implements the internal logic of IterateWithConfig; inputs are assumed valid.
// It returns the ranks ordered as G.Nodes() and the number of iterations done.
func iterate(G *graph.Graph, damping, threshold float64, maxIterations int) ([]float64, int, error) {
	N := G.Size()
	teleport := (1 - damping) / float64(N)

	oldRanks := make([]float64, N)
	newRanks := make([]float64, N)
	contrib := make([]float64, N)

	for i := range oldRanks {
		oldRanks[i] = 1.0 / float64(N)
	}

	var maxDiff float64
	for iteration := 1; iteration <= maxIterations; iteration++ {
		sinkRank := 0.0
		clear(contrib)

		for q := 0; q < N; q++ {
			succ := G.SuccessorIndexes(q)
			if len(succ) == 0 {
				sinkRank += oldRanks[q]
				continue
			}

			share := oldRanks[q] / float64(len(succ))
			for _, p := range succ {
				contrib[p] += share
			}
		}

		sinkShare := damping * sinkRank / float64(N)
		maxDiff = 0.0

		for p := 0; p < N; p++ {
			newRanks[p] = teleport + damping*contrib[p] + sinkShare
			maxDiff = math.Max(maxDiff, math.Abs(newRanks[p]-oldRanks[p]))
		}

		oldRanks, newRanks = newRanks, oldRanks
		if maxDiff < threshold {
			return oldRanks, iteration, nil
		}
	}

	return nil, maxIterations, fmt.Errorf("%w: max difference %v after %d iterations",
		ErrDidNotConverge, maxDiff, maxIterations)
}
