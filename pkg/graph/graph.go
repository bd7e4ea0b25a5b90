/*
The graph package defines the immutable link graph consumed by the pagerank
estimators. A Graph maps each node (page) to the set of nodes it links to.

Links are cleaned during construction: self links and links to nodes that are
not part of the graph are dropped. Nodes left without links are sinks, which is
a legal state. After construction the Graph is never mutated, so it can be
shared by any number of concurrent readers.
*/
package graph

import (
	"errors"
	"fmt"
	"slices"

	mapset "github.com/deckarep/golang-set/v2"
)

// Page is a node together with its raw outbound links, as found in the input.
type Page struct {
	ID    string
	Links []string
}

// Graph is an immutable directed link graph. Nodes are kept in lexicographic
// order, and each node is also addressable by its index in that order.
type Graph struct {
	nodes []string
	index map[string]int

	// successors[i] holds the sorted indexes of the nodes linked by nodes[i]
	successors [][]int
}

// NewGraph() builds a Graph from the pages. It returns ErrEmptyGraph if there
// are no pages and ErrDuplicateNode if the same ID is defined twice.
func NewGraph(pages []Page) (*Graph, error) {
	if len(pages) == 0 {
		return nil, ErrEmptyGraph
	}

	links := make(map[string]mapset.Set[string], len(pages))
	for _, page := range pages {
		if _, exists := links[page.ID]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateNode, page.ID)
		}
		links[page.ID] = mapset.NewThreadUnsafeSet(page.Links...)
	}

	nodes := make([]string, 0, len(links))
	for ID := range links {
		nodes = append(nodes, ID)
	}
	slices.Sort(nodes)

	G := &Graph{
		nodes:      nodes,
		index:      make(map[string]int, len(nodes)),
		successors: make([][]int, len(nodes)),
	}

	for i, ID := range nodes {
		G.index[ID] = i
	}

	for i, ID := range nodes {
		outbound := links[ID]
		outbound.Remove(ID)

		succ := make([]int, 0, outbound.Cardinality())
		for link := range outbound.Iter() {
			// links outside the graph are silently dropped
			if j, exists := G.index[link]; exists {
				succ = append(succ, j)
			}
		}

		slices.Sort(succ)
		G.successors[i] = succ
	}

	return G, nil
}

// FromMap() builds a Graph from a map node --> raw outbound links.
func FromMap(links map[string][]string) (*Graph, error) {
	pages := make([]Page, 0, len(links))
	for ID, outbound := range links {
		pages = append(pages, Page{ID: ID, Links: outbound})
	}
	return NewGraph(pages)
}

// Validate() returns the appropriate error if the Graph is nil or has no nodes.
func (G *Graph) Validate() error {
	if G == nil {
		return ErrNilGraph
	}

	if len(G.nodes) == 0 {
		return ErrEmptyGraph
	}

	return nil
}

// Size() returns the number of nodes in the Graph.
func (G *Graph) Size() int {
	if G == nil {
		return 0
	}
	return len(G.nodes)
}

// Nodes() returns the nodes of the Graph, sorted.
func (G *Graph) Nodes() []string {
	if G == nil {
		return nil
	}
	return slices.Clone(G.nodes)
}

// ContainsNode() returns whether ID is a node of the Graph.
func (G *Graph) ContainsNode(ID string) bool {
	_, exists := G.IndexOf(ID)
	return exists
}

// IndexOf() returns the position of ID in the sorted nodes.
func (G *Graph) IndexOf(ID string) (int, bool) {
	if G == nil {
		return -1, false
	}

	i, exists := G.index[ID]
	return i, exists
}

// NodeAt() returns the node at position i. It panics if i is out of range.
func (G *Graph) NodeAt(i int) string {
	return G.nodes[i]
}

// SuccessorIndexes() returns the indexes of the nodes linked by the node at
// position i. The returned slice is shared and must not be modified.
func (G *Graph) SuccessorIndexes(i int) []int {
	return G.successors[i]
}

// Successors() returns the sorted nodes linked by ID.
func (G *Graph) Successors(ID string) ([]string, error) {
	i, exists := G.IndexOf(ID)
	if !exists {
		return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, ID)
	}

	succ := make([]string, len(G.successors[i]))
	for k, j := range G.successors[i] {
		succ[k] = G.nodes[j]
	}
	return succ, nil
}

// Outbound() returns a copy of the outbound set of ID.
func (G *Graph) Outbound(ID string) (mapset.Set[string], error) {
	succ, err := G.Successors(ID)
	if err != nil {
		return nil, err
	}
	return mapset.NewSet(succ...), nil
}

// IsSink() returns whether ID is a node without outbound links.
// It returns false if ID is not in the Graph.
func (G *Graph) IsSink(ID string) bool {
	i, exists := G.IndexOf(ID)
	if !exists {
		return false
	}
	return len(G.successors[i]) == 0
}

// Sinks() returns the sorted nodes without outbound links.
func (G *Graph) Sinks() []string {
	if G == nil {
		return nil
	}

	sinks := []string{}
	for i, succ := range G.successors {
		if len(succ) == 0 {
			sinks = append(sinks, G.nodes[i])
		}
	}
	return sinks
}

// Edges() returns the number of links in the Graph.
func (G *Graph) Edges() int {
	if G == nil {
		return 0
	}

	edges := 0
	for _, succ := range G.successors {
		edges += len(succ)
	}
	return edges
}

//--------------------------ERROR-CODES--------------------------

var ErrInvalidGraph = errors.New("invalid graph")

var ErrNilGraph = fmt.Errorf("%w: graph pointer is nil", ErrInvalidGraph)
var ErrEmptyGraph = fmt.Errorf("%w: graph has no nodes", ErrInvalidGraph)
var ErrDuplicateNode = fmt.Errorf("%w: node defined more than once", ErrInvalidGraph)

var ErrNodeNotFound = errors.New("node not found in the graph")
