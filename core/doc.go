// Package core defines the ZX-style diagram graph: an undirected,
// vertex-labelled multigraph whose vertices carry a rational phase and a
// kind (Z-spider, X-spider, or boundary), whose edges carry a type (plain
// or Hadamard), and which as a whole carries one global complex scalar.
//
// Why this shape?
//
//   - Single Graph type, no type explosion — directedness, weights, and
//     multi-edge policy from the original graph library this package is
//     descended from have no meaning for a ZX diagram and are dropped;
//     what replaces them is VertexKind, Phase, EdgeType, and Scalar.
//   - Deterministic iteration — Vertices(), Edges(), NeighborIDs() all
//     return sorted results, so two runs over the same diagram produce
//     byte-identical traversal order.
//   - Toggle-based mutation — AddEdgeSmart is the edge primitive the
//     annealers mutate through (RemoveEdge, FilterEdges and RemoveVertex
//     delete edges outright); it XORs the presence of an edge of the given type between
//     two vertices, so that applying it twice is a perfect no-op. This is
//     the primitive every annealer's move proposal is built on.
//   - Clone support — CloneEmpty (vertices + scalar + flags, no edges),
//     Clone (deep copy of edges + adjacency too). Every annealer works on
//     its own Clone(); nothing is shared across annealer instances.
//
// Configuration options (GraphOption):
//
//	- WithLoops()  permits self-loops; otherwise AddEdgeSmart(v,v,...)
//	  returns ErrLoopNotAllowed.
//
// Core methods:
//
//	// Vertex lifecycle
//	AddVertex(id string, kind VertexKind, phase *big.Rat) error
//	AddVertexWithPhase(kind VertexKind, phase *big.Rat) string
//	AddToPhase(id string, q *big.Rat) error
//	HasVertex(id string) bool
//	RemoveVertex(id string) error
//
//	// Edge lifecycle
//	AddEdgeSmart(u, v string, typ EdgeType) error
//	RemoveEdge(edgeID string) error
//	HasEdge(u, v string) bool
//
//	// Query
//	Neighbors(id string) ([]*Edge, error)
//	NeighborIDs(id string) ([]string, error)
//	AdjacencyList() map[string][]string
//	Vertices() []string
//	Edges() []*Edge
//	Degree(id string) (int, error)
//
//	// Global scalar
//	Scalar() complex128
//	MulScalar(factor complex128)
//
//	// Cloning
//	CloneEmpty() *Graph
//	Clone() *Graph
//
// Errors:
//
//	ErrEmptyVertexID  - zero-length vertex ID
//	ErrVertexNotFound - missing vertex
//	ErrEdgeNotFound   - missing edge
//	ErrLoopNotAllowed - self-loop when loops disabled
//	ErrNilPhase       - nil phase passed to AddToPhase
package core
