// Package builder provides internal helper functions used by Constructor
// implementations to build common ZX-diagram topologies.
package builder

import (
	"fmt"
	"math/big"
	"strconv"

	"github.com/katalvlaran/zxsparsify/core"
)

// zeroPhase is the rational phase 0 attached to every builder-constructed
// vertex: topology constructors produce plain scaffolding diagrams, not
// diagrams carrying meaningful phase content.
var zeroPhase = big.NewRat(0, 1)

// addVerticesWithIDFn adds n KindZ vertices with zero phase, IDs
// idFn(0..n-1), in ascending index order.
//
// Complexity: O(n) time, O(1) extra space.
func addVerticesWithIDFn(g *core.Graph, n int, idFn IDFn) error {
	for i := 0; i < n; i++ {
		id := idFn(i)
		if err := g.AddVertex(id, core.KindZ, zeroPhase); err != nil {
			return fmt.Errorf("addVerticesWithIDFn: AddVertex(%s): %w", id, err)
		}
	}

	return nil
}

// addCompleteEdges connects every unordered pair in ids with a Plain edge.
//
// Complexity: O(m^2) time where m = len(ids), O(1) extra space.
func addCompleteEdges(g *core.Graph, ids []string) error {
	for i := 0; i < len(ids); i++ {
		u := ids[i]
		for j := i + 1; j < len(ids); j++ {
			v := ids[j]
			if err := g.AddEdgeSmart(u, v, core.EdgePlain); err != nil {
				return fmt.Errorf("addCompleteEdges: AddEdgeSmart(%s,%s): %w", u, v, err)
			}
		}
	}

	return nil
}

// makeIDs generates n vertex IDs by concatenating prefix and index.
// Example: makeIDs("L",3) -> {"L0","L1","L2"}.
//
// Complexity: O(n) time and space.
func makeIDs(prefix string, n int) []string {
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = vertexID(prefix, i)
	}

	return ids
}

// vertexID returns a vertex identifier by concatenating prefix and index.
func vertexID(prefix string, i int) string {
	return prefix + strconv.Itoa(i)
}
