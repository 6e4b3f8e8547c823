// File: toggle.go
// Role: the shared vertex-set toggle move used by both complement
// annealers: toggling v in a set C flips the H-edge between v and
// every other current member of C, then flips v's own membership.
package anneal

import (
	"sort"

	"github.com/katalvlaran/zxsparsify/core"
)

// toggleInSet applies the complement move of vertex v against set: for
// every u in set\{v}, XOR-toggle the H-edge {v,u} on g, then flip v's
// membership in set. Calling this twice in a row with the same v and set
// contents is a perfect undo, since AddEdgeSmart is itself an involution
// and the membership flip is too.
func toggleInSet(g *core.Graph, set map[string]bool, v string) {
	others := make([]string, 0, len(set))
	for u := range set {
		if u != v {
			others = append(others, u)
		}
	}
	sort.Strings(others) // deterministic application order
	for _, u := range others {
		_ = g.AddEdgeSmart(v, u, core.EdgeHadamard)
	}

	if set[v] {
		delete(set, v)
	} else {
		set[v] = true
	}
}

// cloneSet returns a shallow copy of a membership set.
func cloneSet(set map[string]bool) map[string]bool {
	out := make(map[string]bool, len(set))
	for k, v := range set {
		out[k] = v
	}

	return out
}

// setMembers returns the sorted members of set.
func setMembers(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for k, ok := range set {
		if ok {
			out = append(out, k)
		}
	}
	sort.Strings(out)

	return out
}
