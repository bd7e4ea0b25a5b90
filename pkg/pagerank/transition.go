package pagerank

import (
	"fmt"

	"github.com/vertex-lab/linkrank/pkg/graph"
	"github.com/vertex-lab/linkrank/pkg/models"
)

/*
Transition returns the probability distribution over the node visited after
node, over all the nodes of the graph.

With probability damping the surfer follows one of the links of node, chosen
uniformly. With probability 1 - damping it teleports to any node, chosen uniformly.
A sink has no link to follow, so the surfer goes to any node: the distribution
is uniform, 1/N for each node.
*/
func Transition(G *graph.Graph, node string, damping float64) (models.PagerankMap, error) {
	if err := G.Validate(); err != nil {
		return nil, err
	}

	if err := checkDamping(damping); err != nil {
		return nil, err
	}

	i, exists := G.IndexOf(node)
	if !exists {
		return nil, fmt.Errorf("%w: %q", graph.ErrNodeNotFound, node)
	}

	weights := transitionWeights(G, i, damping, nil)
	distribution := make(models.PagerankMap, len(weights))
	for j, w := range weights {
		distribution[G.NodeAt(j)] = w
	}

	return distribution, nil
}

// transitionWeights writes in weights the transition probabilities from the
// node at position i to every node, ordered as G.Nodes(). weights is reused
// when it has enough capacity.
func transitionWeights(G *graph.Graph, i int, damping float64, weights []float64) []float64 {
	N := G.Size()
	if cap(weights) < N {
		weights = make([]float64, N)
	}
	weights = weights[:N]

	succ := G.SuccessorIndexes(i)
	if len(succ) == 0 {
		uniform := 1.0 / float64(N)
		for j := range weights {
			weights[j] = uniform
		}
		return weights
	}

	teleport := (1 - damping) / float64(N)
	for j := range weights {
		weights[j] = teleport
	}

	link := damping / float64(len(succ))
	for _, j := range succ {
		weights[j] += link
	}

	return weights
}
