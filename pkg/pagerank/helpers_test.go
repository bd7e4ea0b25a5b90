package pagerank

import (
	"strconv"

	"github.com/vertex-lab/linkrank/pkg/models"
)

// expectedPagerank returns the exact pagerank (damping 0.85) of the graph
// returned by graph.SetupGraph(graphType).
func expectedPagerank(graphType string) models.PagerankMap {
	switch graphType {
	case "one-node":
		return models.PagerankMap{"0": 1.0}

	case "two-cycle":
		return models.PagerankMap{"A": 0.5, "B": 0.5}

	case "dandlings":
		return models.PagerankMap{
			"0": 0.2, "1": 0.2, "2": 0.2, "3": 0.2, "4": 0.2,
		}

	case "triangle":
		return models.PagerankMap{
			"0": 1.0 / 3.0,
			"1": 1.0 / 3.0,
			"2": 1.0 / 3.0,
		}

	case "cyclic1":
		return models.PagerankMap{
			"0": 0.30785340314136134,
			"1": 0.21376215407629023,
			"2": 0.2646222887060584,
			"3": 0.21376215407629023,
		}

	case "acyclic1":
		return models.PagerankMap{
			"0": 0.11184665823156456,
			"1": 0.36960427254234457,
			"2": 0.15938148797997947,
			"3": 0.2473209230145471,
			"4": 0.11184665823156456,
		}

	case "acyclic2":
		return models.PagerankMap{
			"0": 0.12987012987012986,
			"1": 0.18506493506493504,
			"2": 0.18506493506493504,
			"3": 0.18506493506493504,
			"4": 0.12987012987012986,
			"5": 0.18506493506493504,
		}

	case "acyclic3":
		return models.PagerankMap{
			"0": 0.1754385964912281,
			"1": 0.32456140350877194,
			"2": 0.32456140350877194,
			"3": 0.1754385964912281,
		}

	case "acyclic4":
		return models.PagerankMap{
			"0": 0.1754385964912281,
			"1": 0.3991228070175439,
			"2": 0.25,
			"3": 0.1754385964912281,
		}

	case "corpus0":
		return models.PagerankMap{
			"1.html": 0.2199138196368114,
			"2.html": 0.42920898738073243,
			"3.html": 0.2199138196368114,
			"4.html": 0.13096337334564478,
		}

	case "cyclicLong50":
		expected := make(models.PagerankMap, 50)
		for i := 0; i < 50; i++ {
			expected[strconv.Itoa(i)] = 1.0 / 50.0
		}
		return expected

	default:
		return nil
	}
}
