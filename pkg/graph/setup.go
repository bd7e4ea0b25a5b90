package graph

import (
	"math/rand"
	"slices"
	"strconv"
)

// SetupGraph() returns a Graph based on the graphType. It is used in tests.
// Unrecognized types return nil.
func SetupGraph(graphType string) *Graph {
	var links map[string][]string

	switch graphType {
	case "nil":
		return nil

	case "one-node":
		links = map[string][]string{"0": {}}

	case "self-link":
		links = map[string][]string{"0": {"0"}}

	case "two-cycle":
		links = map[string][]string{
			"A": {"B"},
			"B": {"A"},
		}

	case "dandlings":
		links = map[string][]string{
			"0": {}, "1": {}, "2": {}, "3": {}, "4": {},
		}

	case "triangle":
		links = map[string][]string{
			"0": {"1"},
			"1": {"2"},
			"2": {"0"},
		}

	case "cyclic1":
		links = map[string][]string{
			"0": {"1", "3"},
			"1": {"2"},
			"2": {"0"},
			"3": {},
		}

	case "acyclic1":
		links = map[string][]string{
			"0": {"1", "2"},
			"1": {},
			"2": {"3"},
			"3": {"1"},
			"4": {},
		}

	case "acyclic2":
		links = map[string][]string{
			"0": {"1", "2"},
			"1": {},
			"2": {},
			"3": {},
			"4": {"3", "5"},
			"5": {},
		}

	case "acyclic3":
		links = map[string][]string{
			"0": {"1", "2"},
			"1": {},
			"2": {},
			"3": {"1", "2"},
		}

	case "acyclic4":
		links = map[string][]string{
			"0": {"1", "2"},
			"1": {},
			"2": {},
			"3": {"1"},
		}

	case "corpus0":
		links = map[string][]string{
			"1.html": {"2.html"},
			"2.html": {"1.html", "3.html"},
			"3.html": {"2.html", "4.html"},
			"4.html": {"2.html"},
		}

	case "oscillating":
		// with damping factor 1 the ranks of A and B swap forever
		links = map[string][]string{
			"A": {"B"},
			"B": {"A"},
			"C": {"A"},
		}

	case "cyclicLong50":
		// 0 --> 1 --> 2 --> ... --> 48 --> 49 --> 0
		links = make(map[string][]string, 50)
		for i := 0; i < 50; i++ {
			links[strconv.Itoa(i)] = []string{strconv.Itoa((i + 1) % 50)}
		}

	default:
		return nil
	}

	G, err := FromMap(links)
	if err != nil {
		panic(err)
	}
	return G
}

// GenerateGraph() returns a random Graph with nodesNum nodes, each linking to
// linksPerNode distinct nodes (self links are later dropped by NewGraph).
// It returns nil if linksPerNode > nodesNum.
func GenerateGraph(nodesNum, linksPerNode int, rng *rand.Rand) *Graph {
	if nodesNum <= 0 || linksPerNode > nodesNum {
		return nil
	}

	links := make(map[string][]string, nodesNum)
	for i := 0; i < nodesNum; i++ {
		outbound := make([]string, 0, linksPerNode)
		for len(outbound) != linksPerNode {
			link := strconv.Itoa(rng.Intn(nodesNum))
			if slices.Contains(outbound, link) {
				continue
			}
			outbound = append(outbound, link)
		}
		links[strconv.Itoa(i)] = outbound
	}

	G, err := FromMap(links)
	if err != nil {
		panic(err)
	}
	return G
}
