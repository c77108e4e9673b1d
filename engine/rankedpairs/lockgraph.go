// Copyright (C) 2019-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rankedpairs

import "github.com/luxfi/tally/ballot"

// lockGraph is the Ranked Pairs DAG: a directed acyclic graph over
// candidates, built by inserting winning edges strongest-first and
// skipping any edge whose reverse is already reachable. Grounded on the
// teacher's map[ID][]ID dependency-graph shape.
type lockGraph struct {
	nodes map[ballot.CandidateID]struct{}
	out   map[ballot.CandidateID][]ballot.CandidateID
	in    map[ballot.CandidateID]int
}

func newLockGraph(nodes []ballot.CandidateID) *lockGraph {
	g := &lockGraph{
		nodes: make(map[ballot.CandidateID]struct{}, len(nodes)),
		out:   make(map[ballot.CandidateID][]ballot.CandidateID),
		in:    make(map[ballot.CandidateID]int, len(nodes)),
	}
	for _, n := range nodes {
		g.nodes[n] = struct{}{}
		g.in[n] = 0
	}
	return g
}

// reachable reports whether to is reachable from from via existing
// edges. Depth-first search is correct here because the graph is
// maintained as a DAG.
func (g *lockGraph) reachable(from, to ballot.CandidateID) bool {
	if from == to {
		return true
	}
	visited := make(map[ballot.CandidateID]bool)
	stack := []ballot.CandidateID{from}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[n] {
			continue
		}
		visited[n] = true
		for _, next := range g.out[n] {
			if next == to {
				return true
			}
			if !visited[next] {
				stack = append(stack, next)
			}
		}
	}
	return false
}

// tryAddEdge inserts from->to unless doing so would create a cycle
// (i.e. to can already reach from). Returns whether the edge was
// inserted.
func (g *lockGraph) tryAddEdge(from, to ballot.CandidateID) bool {
	if g.reachable(to, from) {
		return false
	}
	g.out[from] = append(g.out[from], to)
	g.in[to]++
	return true
}

// forceAddEdge inserts from->to unconditionally. Used only for the
// tie-breaker-directed edges between disjoint roots, which by
// construction cannot create a cycle.
func (g *lockGraph) forceAddEdge(from, to ballot.CandidateID) {
	g.out[from] = append(g.out[from], to)
	g.in[to]++
}

// roots returns every node with no incoming edges.
func (g *lockGraph) roots() []ballot.CandidateID {
	var out []ballot.CandidateID
	for n := range g.nodes {
		if g.in[n] == 0 {
			out = append(out, n)
		}
	}
	return out
}

// edgeList returns every inserted edge as (from, to) pairs.
func (g *lockGraph) edgeList() [][2]ballot.CandidateID {
	var out [][2]ballot.CandidateID
	for from, tos := range g.out {
		for _, to := range tos {
			out = append(out, [2]ballot.CandidateID{from, to})
		}
	}
	return out
}
