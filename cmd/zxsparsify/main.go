// Command zxsparsify runs the subgraph-complement sparsifier (or one of
// its standalone annealers) over a synthetic input diagram and emits the
// resulting JSON artifact(s) alongside a before/after structural report.
package main

import (
	"flag"
	"fmt"
	"os"

	json "github.com/goccy/go-json"

	"github.com/katalvlaran/zxsparsify/anneal"
	"github.com/katalvlaran/zxsparsify/core"
	"github.com/katalvlaran/zxsparsify/schedule"
	"github.com/katalvlaran/zxsparsify/separator"
	"github.com/katalvlaran/zxsparsify/sparsifier"
)

func main() {
	mode := flag.String("mode", "sparsify", "annealer to run: sparsify, complement, multiset, pivot, subgraph-cut")
	topology := flag.String("topology", "random", "input diagram topology: complete, cycle, path, bipartite, random")
	n := flag.Int("n", 12, "vertex count (or left-partition size for bipartite)")
	n2 := flag.Int("n2", 0, "right-partition size for bipartite topology (default n)")
	p := flag.Float64("p", 0.3, "edge probability for the random topology")
	seed := flag.Int64("seed", 1, "RNG seed")

	rounds := flag.Int("rounds", 3, "Sparsifier rounds (sparsify mode only)")
	steps := flag.Int("steps", 1_000_000, "Metropolis steps per annealing schedule")
	maxTemp := flag.Float64("max-temp", 3000, "geometric schedule starting temperature")
	minTemp := flag.Float64("min-temp", 0.1, "geometric schedule ending temperature")
	noCut := flag.Bool("no-cut", false, "disable cut-mode term extraction (phase-gadget mode)")
	infinite := flag.Bool("infinite", false, "loop the Sparsifier until neither move improves (sparsify mode only)")
	alpha := flag.Float64("alpha", 0.25, "vertex-count cost weight")
	beta := flag.Float64("beta", 0.03, "edge-count cost weight")
	count := flag.Int("count", 1, "number of complement sets (multiset mode only)")
	imbalance := flag.Int("imbalance", 25, "separator imbalance bound, parts-per-thousand (subgraph-cut mode only)")
	depth := flag.Int("depth", 1, "recursion depth term (subgraph-cut mode only)")
	maxCover := flag.Int("max-cover", 0, "log-barrier cover-size cap (subgraph-cut mode only; default n/2)")

	out := flag.String("out", "", "output path for the JSON artifact (default stdout)")
	flag.Parse()

	if err := run(runConfig{
		mode: *mode, topology: *topology, n: *n, n2: *n2, p: *p, seed: *seed,
		rounds: *rounds, steps: *steps, maxTemp: *maxTemp, minTemp: *minTemp,
		cut: !*noCut, infinite: *infinite, alpha: *alpha, beta: *beta,
		count: *count, imbalance: *imbalance, depth: *depth, maxCover: *maxCover,
		out: *out,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "zxsparsify: %v\n", err)
		os.Exit(1)
	}
}

type runConfig struct {
	mode, topology, out       string
	n, n2                     int
	p                         float64
	seed                      int64
	rounds, steps             int
	maxTemp, minTemp          float64
	cut, infinite             bool
	alpha, beta               float64
	count, imbalance, depth   int
	maxCover                  int
}

func run(cfg runConfig) error {
	rng := anneal.RNGFromSeed(cfg.seed)
	g, err := buildInputGraph(cfg.topology, cfg.n, cfg.n2, cfg.p, rng)
	if err != nil {
		return fmt.Errorf("build input: %w", err)
	}

	var (
		artifacts []artifact
		after     *core.Graph
		initCost  *float64
		finalCost *float64
	)

	switch cfg.mode {
	case "sparsify":
		result, serr := sparsifier.Run(g, sparsifier.Options{
			Alpha: cfg.alpha, Beta: cfg.beta, Cut: cfg.cut,
			Rounds: cfg.rounds, Steps: cfg.steps,
			MaxTemp: cfg.maxTemp, MinTemp: cfg.minTemp, Infinite: cfg.infinite,
		}, rng)
		if serr != nil {
			return fmt.Errorf("sparsifier.Run: %w", serr)
		}
		terms := 1
		for _, mv := range result.Moves {
			switch {
			case mv.Kind == sparsifier.MovePivot:
				terms *= 4
			case cfg.cut:
				terms *= 2
			}
		}
		a, aerr := buildArtifact(result.Graph, terms)
		if aerr != nil {
			return aerr
		}
		artifacts = []artifact{a}
		after = result.Graph
		initCost, finalCost = &result.InitialCost, &result.FinalCost

	case "complement":
		sched, serr := schedule.NewGeometricSeries(cfg.maxTemp, cfg.minTemp, cfg.steps)
		if serr != nil {
			return serr
		}
		cf := anneal.NewComplementFinder(g, cfg.alpha, cfg.beta, cfg.cut)
		gc, cc, _, aerr := cf.Anneal(rng, sched)
		if aerr != nil {
			return aerr
		}
		terms, terr := anneal.ExtractTerms(gc, cc, cfg.cut)
		if terr != nil {
			return terr
		}
		if artifacts, err = buildArtifacts(terms); err != nil {
			return err
		}
		after = gc

	case "multiset":
		sched, serr := schedule.NewGeometricSeries(cfg.maxTemp, cfg.minTemp, cfg.steps)
		if serr != nil {
			return serr
		}
		csf := anneal.NewComplementSetFinder(g, cfg.alpha, cfg.beta, cfg.cut, cfg.count)
		gc, sets, _, aerr := csf.Anneal(rng, sched)
		if aerr != nil {
			return aerr
		}
		terms, terr := anneal.ExtractSetTerms(gc, sets, cfg.cut)
		if terr != nil {
			return terr
		}
		if artifacts, err = buildArtifacts(terms); err != nil {
			return err
		}
		after = gc

	case "pivot":
		sched, serr := schedule.NewGeometricSeries(cfg.maxTemp, cfg.minTemp, cfg.steps)
		if serr != nil {
			return serr
		}
		pf := anneal.NewPivotFinder(g)
		gp, _, _, _, aerr := pf.Anneal(rng, sched)
		if aerr != nil {
			return aerr
		}
		a, berr := buildArtifact(gp, 1)
		if berr != nil {
			return berr
		}
		artifacts = []artifact{a}
		after = gp

	case "subgraph-cut":
		sched, serr := schedule.NewGeometricSeries(cfg.maxTemp, cfg.minTemp, cfg.steps)
		if serr != nil {
			return serr
		}
		coverCap := cfg.maxCover
		if coverCap <= 0 {
			coverCap = cfg.n / 2
		}
		sc := anneal.NewSubgraphCutFinder(g, cfg.imbalance, coverCap, cfg.depth, separator.BFSBisector{})
		gs, _, _, _, _, aerr := sc.Anneal(rng, sched)
		if aerr != nil {
			return aerr
		}
		a, berr := buildArtifact(gs, 1)
		if berr != nil {
			return berr
		}
		artifacts = []artifact{a}
		after = gs

	default:
		return fmt.Errorf("unknown mode %q", cfg.mode)
	}

	rep, rerr := buildReport(g, after, initCost, finalCost)
	if rerr != nil {
		return fmt.Errorf("build report: %w", rerr)
	}

	return emit(cfg.out, driverOutput{Report: rep, Artifacts: artifacts})
}

// driverOutput is the full JSON document this driver emits: the
// before/after structural report plus the emitted diagram artifacts.
type driverOutput struct {
	Report    report     `json:"report"`
	Artifacts []artifact `json:"artifacts"`
}

// emit marshals out as JSON via goccy/go-json, writing to path or
// stdout when path is empty.
func emit(path string, out driverOutput) error {
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	data = append(data, '\n')

	if path == "" {
		_, err = os.Stdout.Write(data)
		return err
	}

	return os.WriteFile(path, data, 0o644)
}
