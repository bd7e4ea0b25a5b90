package pagerank

import (
	"math/rand"
	"time"

	"github.com/vertex-lab/linkrank/pkg/graph"
	"github.com/vertex-lab/linkrank/pkg/models"
)

/*
Sample estimates the pagerank of each node by simulating a random surfer that
visits `samples` nodes, starting from a random one. Each step is drawn from the
Transition distribution of the current node, and the pagerank of a node is the
fraction of the visits it received.

Two calls with the same inputs generally return different results; use
SampleSeeded for reproducible runs.
*/
func Sample(G *graph.Graph, damping float64, samples int) (models.PagerankMap, error) {
	return SampleSeeded(G, damping, samples, 0)
}

// SampleSeeded is Sample with the random surfer seeded by seed. A zero seed
// is replaced by the current time, as in Config.
func SampleSeeded(G *graph.Graph, damping float64, samples int, seed int64) (models.PagerankMap, error) {
	if err := checkSampleInputs(G, damping, samples); err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(resolveSeed(seed)))
	return sample(G, damping, samples, rng), nil
}

// resolveSeed returns seed, or the current time if seed is zero.
func resolveSeed(seed int64) int64 {
	if seed == 0 {
		return time.Now().UnixNano()
	}
	return seed
}

// implements the internal logic of Sample; inputs are assumed valid.
func sample(G *graph.Graph, damping float64, samples int, rng *rand.Rand) models.PagerankMap {
	N := G.Size()
	visits := make([]int, N)
	weights := make([]float64, N)

	current := rng.Intn(N)
	visits[current]++

	for k := 1; k < samples; k++ {
		weights = transitionWeights(G, current, damping, weights)
		current = weightedChoice(weights, rng.Float64())
		visits[current]++
	}

	return countAndNormalize(G, visits)
}

/*
weightedChoice walks the cumulative distribution of weights and returns the
first index whose cumulative weight exceeds r * total, with r in [0, 1).

Zero weights are never chosen. If rounding leaves r * total at or beyond the
last cumulative weight, the last index with a positive weight is returned.
It returns -1 if no weight is positive.
*/
func weightedChoice(weights []float64, r float64) int {
	total := 0.0
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}

	target := r * total
	cumulative := 0.0
	last := -1

	for i, w := range weights {
		if w <= 0 {
			continue
		}

		cumulative += w
		last = i
		if target < cumulative {
			return i
		}
	}

	return last
}

// countAndNormalize returns the visits of each node divided by the total visits.
func countAndNormalize(G *graph.Graph, visits []int) models.PagerankMap {
	totalVisits := 0
	for _, v := range visits {
		totalVisits += v
	}

	pagerank := make(models.PagerankMap, len(visits))
	for i, v := range visits {
		pagerank[G.NodeAt(i)] = float64(v) / float64(totalVisits)
	}

	return pagerank
}

// function that checks the inputs of Sample
func checkSampleInputs(G *graph.Graph, damping float64, samples int) error {
	if err := G.Validate(); err != nil {
		return err
	}

	if err := checkDamping(damping); err != nil {
		return err
	}

	return checkSamples(samples)
}
