// Package separator produces vertex separators (left, cut, right) of a
// plain graph: disjoint vertex subsets covering V(G) such that removing
// cut disconnects left from right. Separator computation is treated as an
// external collaborator (a routine consuming an imbalance bound); this
// package supplies a Finder interface for that role plus a concrete
// BFS-bisection default implementation, built on the bfs package.
package separator

import (
	"errors"

	"github.com/katalvlaran/zxsparsify/plaingraph"
)

// ErrEmptyGraph indicates Find was called on a graph with no vertices.
var ErrEmptyGraph = errors.New("separator: graph has no vertices")

// ErrDisconnected indicates no balanced separator could be found because
// the graph has more than one connected component reachable from the
// chosen start vertex; callers should retry from a different start or
// treat the graph as already split along components.
var ErrDisconnected = errors.New("separator: graph not fully connected from start vertex")

// Separator is a vertex partition (Left, Cut, Right) with Left and Right
// disjoint and disconnected once Cut is removed.
type Separator struct {
	Left  []string
	Cut   []string
	Right []string
}

// Finder produces a vertex separator of p honoring an imbalance bound
// (expressed the way METIS's UFACTOR does: parts-per-thousand deviation
// from a perfect bisection). Implementations may use any deterministic or
// randomized strategy; BFSBisector is this package's default.
type Finder interface {
	Find(p *plaingraph.Graph, imbalance int, intn func(n int) int) (*Separator, error)
}

// Disconnects reports whether removing every vertex in cut from p leaves
// no edge directly joining any vertex of left to any vertex of right —
// the defining invariant of a vertex separator, verified here via a
// union-find over the surviving vertex set.
func Disconnects(p *plaingraph.Graph, left, cut, right []string) bool {
	cutSet := make(map[string]struct{}, len(cut))
	for _, c := range cut {
		cutSet[c] = struct{}{}
	}

	survivors := make([]string, 0, len(left)+len(right))
	survivors = append(survivors, left...)
	survivors = append(survivors, right...)

	uf := newUnionFind(survivors)
	for _, u := range survivors {
		for _, v := range p.NeighborIDs(u) {
			if _, isCut := cutSet[v]; isCut {
				continue
			}
			uf.union(u, v)
		}
	}

	leftSet := make(map[string]struct{}, len(left))
	for _, l := range left {
		leftSet[l] = struct{}{}
	}
	for _, r := range right {
		for l := range leftSet {
			if uf.connected(l, r) {
				return false
			}
		}
	}

	return true
}
