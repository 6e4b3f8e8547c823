// Package builder provides deterministic topology constructors for
// core.Graph (ZX-diagram scaffolding) used by tests and the CLI driver's
// -topology flag: Complete, Cycle, Path, CompleteBipartite, RandomSparse.
//
// Every constructor adds KindZ vertices at zero phase and Plain edges;
// constructors never attach phases or Hadamard edges themselves — those
// are annealing/rewrite concerns, not topology concerns.
//
//   - Configuration primitives: BuilderOption, builderConfig (RNG, ID
//     scheme, bipartite partition prefixes).
//   - Vertex-ID schemes (IDFn implementations): DefaultIDFn, SymbolIDFn,
//     ExcelColumnIDFn, AlphanumericIDFn, HexIDFn.
//   - Validation helpers: validateMin, validatePartition, validateProbability.
//
// Guarantees: option constructors never panic and ignore nil inputs;
// constructors themselves return sentinel errors and never panic;
// deterministic vertex/edge emission order for a fixed (n, seed).
package builder
