// The models package defines the rank distribution shared by the estimators.
package models

import (
	"cmp"
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
)

// PagerankMap associates each node with its rank. Both estimators return one
// entry per graph node, and the values sum to 1. The transition model returns
// the same shape, read as the probability of visiting each node next.
type PagerankMap map[string]float64

// Rank is a single node --> rank pair.
type Rank struct {
	Node  string
	Value float64
}

// Nodes() returns the nodes of the map, sorted.
func (p PagerankMap) Nodes() []string {
	nodes := make([]string, 0, len(p))
	for node := range p {
		nodes = append(nodes, node)
	}
	slices.Sort(nodes)
	return nodes
}

// Values() returns the ranks ordered as Nodes().
func (p PagerankMap) Values() []float64 {
	nodes := p.Nodes()
	values := make([]float64, len(nodes))
	for i, node := range nodes {
		values[i] = p[node]
	}
	return values
}

// Sum() returns the total rank of the map.
func (p PagerankMap) Sum() float64 {
	return floats.Sum(p.Values())
}

// Sorted() returns the ranks sorted by node. If byRank is true they are sorted
// by decreasing rank instead, with ties broken by node.
func (p PagerankMap) Sorted(byRank bool) []Rank {
	ranks := make([]Rank, 0, len(p))
	for _, node := range p.Nodes() {
		ranks = append(ranks, Rank{Node: node, Value: p[node]})
	}

	if byRank {
		slices.SortStableFunc(ranks, func(a, b Rank) int {
			return cmp.Compare(b.Value, a.Value)
		})
	}
	return ranks
}

// Distance() computes the L1 distance between two maps that are supposed to
// have the same keys. Keys missing from one map count as zero.
func Distance(map1, map2 PagerankMap) float64 {
	keys := make(map[string]struct{}, len(map1))
	for key := range map1 {
		keys[key] = struct{}{}
	}
	for key := range map2 {
		keys[key] = struct{}{}
	}

	v1 := make([]float64, 0, len(keys))
	v2 := make([]float64, 0, len(keys))
	for key := range keys {
		v1 = append(v1, map1[key])
		v2 = append(v2, map2[key])
	}

	if len(v1) == 0 {
		return 0.0
	}
	return floats.Distance(v1, v2, 1)
}

// MaxDifference() returns the largest absolute difference between the ranks
// of any node.
func MaxDifference(map1, map2 PagerankMap) float64 {
	maxDiff := 0.0
	for key, val1 := range map1 {
		maxDiff = max(maxDiff, math.Abs(val1-map2[key]))
	}
	for key, val2 := range map2 {
		if _, exists := map1[key]; !exists {
			maxDiff = max(maxDiff, math.Abs(val2))
		}
	}
	return maxDiff
}
