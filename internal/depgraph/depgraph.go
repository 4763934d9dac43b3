// SPDX-License-Identifier: MPL-2.0

// Package depgraph provides directed graph operations over a pack's module
// dependency edges: topological sorting for deterministic processing order
// and visited-set reachability for transitive queries.
package depgraph

import (
	"fmt"
	"strings"

	"modmap-cli/pkg/pack"
	"modmap-cli/pkg/types"
)

type (
	// CycleError indicates that the graph contains a cycle, preventing topological ordering.
	CycleError struct {
		// Cycle contains the modules that form the cycle (not necessarily all of
		// them, but enough to identify the problem).
		Cycle []types.ModuleName
	}

	// Graph is a directed dependency graph over module names. An edge from A
	// to B means A depends on B. Nodes are tracked in insertion order so all
	// derived orderings are deterministic.
	Graph struct {
		// adjacency maps each module to its direct dependencies.
		adjacency map[types.ModuleName][]types.ModuleName
		// nodes tracks all modules in insertion order for deterministic output.
		nodes []types.ModuleName
		// nodeSet provides O(1) lookup for node existence.
		nodeSet map[types.ModuleName]bool
	}
)

func (e *CycleError) Error() string {
	names := make([]string, len(e.Cycle))
	for i, n := range e.Cycle {
		names[i] = n.String()
	}
	return fmt.Sprintf("dependency cycle detected: %s", strings.Join(names, " -> "))
}

// New creates an empty Graph.
func New() *Graph {
	return &Graph{
		adjacency: make(map[types.ModuleName][]types.ModuleName),
		nodeSet:   make(map[types.ModuleName]bool),
	}
}

// FromManifest builds the dependency graph of a parsed manifest. Every module
// becomes a node in declaration order; every deps entry becomes an edge.
func FromManifest(m *pack.Manifest) *Graph {
	g := New()
	for _, mod := range m.Modules {
		g.AddNode(mod.Name)
		for _, dep := range mod.Deps {
			g.AddEdge(mod.Name, dep)
		}
	}
	return g
}

// AddNode adds a module to the graph. If the module already exists, this is a no-op.
func (g *Graph) AddNode(name types.ModuleName) {
	if g.nodeSet[name] {
		return
	}
	g.nodeSet[name] = true
	g.nodes = append(g.nodes, name)
}

// AddEdge adds a directed edge from -> to, meaning "from" depends on "to".
// Both modules are implicitly added if they don't exist.
func (g *Graph) AddEdge(from, to types.ModuleName) {
	g.AddNode(from)
	g.AddNode(to)
	g.adjacency[from] = append(g.adjacency[from], to)
}

// Reachable returns the transitive dependency set of from, excluding from
// itself, in deterministic depth-first discovery order. The walk tracks
// visited modules, so it terminates even on (contractually absent) cyclic
// input.
func (g *Graph) Reachable(from types.ModuleName) []types.ModuleName {
	visited := map[types.ModuleName]bool{from: true}
	var order []types.ModuleName

	var walk func(name types.ModuleName)
	walk = func(name types.ModuleName) {
		for _, dep := range g.adjacency[name] {
			if visited[dep] {
				continue
			}
			visited[dep] = true
			order = append(order, dep)
			walk(dep)
		}
	}
	walk(from)
	return order
}

// TopologicalSort returns an order in which every module appears after all of
// its dependencies, using Kahn's algorithm. Returns CycleError if the graph
// contains a cycle. Modules at the same topological level appear in the order
// they were first added to the graph.
func (g *Graph) TopologicalSort() ([]types.ModuleName, error) {
	if len(g.nodes) == 0 {
		return nil, nil
	}

	// An edge from -> to makes "from" depend on "to", so "to" must be
	// emitted first; in-degree counts a module's unemitted dependencies.
	inDegree := make(map[types.ModuleName]int, len(g.nodes))
	for _, node := range g.nodes {
		inDegree[node] = 0
	}

	// Build the reverse adjacency in node insertion order so the resulting
	// sort is deterministic across runs.
	dependents := make(map[types.ModuleName][]types.ModuleName, len(g.nodes))
	for _, node := range g.nodes {
		for _, dep := range g.adjacency[node] {
			dependents[dep] = append(dependents[dep], node)
			inDegree[node]++
		}
	}

	queue := make([]types.ModuleName, 0)
	for _, node := range g.nodes {
		if inDegree[node] == 0 {
			queue = append(queue, node)
		}
	}

	var result []types.ModuleName
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		result = append(result, node)

		for _, dependent := range dependents[node] {
			inDegree[dependent]--
			if inDegree[dependent] == 0 {
				queue = append(queue, dependent)
			}
		}
	}

	if len(result) != len(g.nodes) {
		// Remaining modules with unresolved dependencies form the cycle.
		var cycleNodes []types.ModuleName
		for _, node := range g.nodes {
			if inDegree[node] > 0 {
				cycleNodes = append(cycleNodes, node)
			}
		}
		return nil, &CycleError{Cycle: cycleNodes}
	}

	return result, nil
}
