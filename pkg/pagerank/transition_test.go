package pagerank

import (
	"errors"
	"math"
	"testing"

	"github.com/vertex-lab/linkrank/pkg/graph"
	"github.com/vertex-lab/linkrank/pkg/models"
)

func TestTransitionInputs(t *testing.T) {
	testCases := []struct {
		name          string
		graphType     string
		node          string
		damping       float64
		expectedError error
	}{
		{
			name:          "nil graph",
			graphType:     "nil",
			node:          "0",
			damping:       0.85,
			expectedError: graph.ErrNilGraph,
		},
		{
			name:          "damping too big",
			graphType:     "triangle",
			node:          "0",
			damping:       1.5,
			expectedError: ErrInvalidDamping,
		},
		{
			name:          "negative damping",
			graphType:     "triangle",
			node:          "0",
			damping:       -0.1,
			expectedError: ErrInvalidDamping,
		},
		{
			name:          "NaN damping",
			graphType:     "triangle",
			node:          "0",
			damping:       math.NaN(),
			expectedError: ErrInvalidParameter,
		},
		{
			name:          "node not found",
			graphType:     "triangle",
			node:          "7",
			damping:       0.85,
			expectedError: graph.ErrNodeNotFound,
		},
	}

	for _, test := range testCases {
		t.Run(test.name, func(t *testing.T) {
			G := graph.SetupGraph(test.graphType)
			_, err := Transition(G, test.node, test.damping)

			if !errors.Is(err, test.expectedError) {
				t.Fatalf("Transition(): expected %v, got %v", test.expectedError, err)
			}
		})
	}
}

func TestTransition(t *testing.T) {
	testCases := []struct {
		name                 string
		graphType            string
		node                 string
		damping              float64
		expectedDistribution models.PagerankMap
	}{
		{
			name:                 "one node",
			graphType:            "one-node",
			node:                 "0",
			damping:              0.85,
			expectedDistribution: models.PagerankMap{"0": 1.0},
		},
		{
			name:      "node with links",
			graphType: "acyclic1",
			node:      "0",
			damping:   0.85,
			expectedDistribution: models.PagerankMap{
				"0": 0.03, "1": 0.455, "2": 0.455, "3": 0.03, "4": 0.03,
			},
		},
		{
			name:      "node with links, no damping",
			graphType: "acyclic1",
			node:      "2",
			damping:   0.0,
			expectedDistribution: models.PagerankMap{
				"0": 0.2, "1": 0.2, "2": 0.2, "3": 0.2, "4": 0.2,
			},
		},
		{
			name:      "node with links, full damping",
			graphType: "corpus0",
			node:      "3.html",
			damping:   1.0,
			expectedDistribution: models.PagerankMap{
				"1.html": 0.0, "2.html": 0.5, "3.html": 0.0, "4.html": 0.5,
			},
		},
		{
			name:      "sink",
			graphType: "acyclic1",
			node:      "4",
			damping:   0.85,
			expectedDistribution: models.PagerankMap{
				"0": 0.2, "1": 0.2, "2": 0.2, "3": 0.2, "4": 0.2,
			},
		},
	}

	for _, test := range testCases {
		t.Run(test.name, func(t *testing.T) {
			G := graph.SetupGraph(test.graphType)
			distribution, err := Transition(G, test.node, test.damping)
			if err != nil {
				t.Fatalf("Transition(): expected nil, got %v", err)
			}

			if len(distribution) != G.Size() {
				t.Fatalf("Transition(): expected %d entries, got %v", G.Size(), distribution)
			}

			if distance := models.Distance(distribution, test.expectedDistribution); distance > 1e-12 {
				t.Errorf("Transition(): expected %v, got %v", test.expectedDistribution, distribution)
			}
		})
	}
}

func TestTransitionSum(t *testing.T) {
	for _, graphType := range []string{"one-node", "two-cycle", "cyclic1", "acyclic2", "corpus0", "cyclicLong50"} {
		G := graph.SetupGraph(graphType)

		for _, damping := range []float64{0.0, 0.15, 0.5, 0.85, 1.0} {
			for _, node := range G.Nodes() {
				distribution, err := Transition(G, node, damping)
				if err != nil {
					t.Fatalf("Transition(): expected nil, got %v", err)
				}

				if sum := distribution.Sum(); math.Abs(sum-1.0) > 1e-12 {
					t.Errorf("%s, node %s, damping %v: expected sum 1, got %v", graphType, node, damping, sum)
				}

				for n, p := range distribution {
					if p < 0 {
						t.Errorf("%s, node %s: expected non negative probability, got %v", graphType, n, p)
					}
				}
			}
		}
	}
}

func TestTransitionSinkIsUniform(t *testing.T) {
	G := graph.SetupGraph("acyclic2")
	uniform := 1.0 / float64(G.Size())

	for _, sink := range G.Sinks() {
		distribution, err := Transition(G, sink, 0.85)
		if err != nil {
			t.Fatalf("Transition(): expected nil, got %v", err)
		}

		for node, p := range distribution {
			if p != uniform {
				t.Errorf("Transition(%s): expected %v for %s, got %v", sink, uniform, node, p)
			}
		}
	}
}
