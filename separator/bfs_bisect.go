package separator

import (
	"sort"

	"github.com/katalvlaran/zxsparsify/bfs"
	"github.com/katalvlaran/zxsparsify/plaingraph"
)

// BFSBisector is the default Finder: it layers the graph by BFS depth
// from a random start vertex, then picks the layer boundary whose
// resulting (left, right) sizes are most balanced, within imbalance
// parts-per-thousand of a perfect bisection when such a boundary exists.
// Vertices unreachable from the start (a separate connected component)
// are assigned to the right side, since they are — by construction —
// already disconnected from left without needing to pass through cut.
type BFSBisector struct{}

// Find implements Finder.
func (BFSBisector) Find(p *plaingraph.Graph, imbalance int, intn func(n int) int) (*Separator, error) {
	ids := p.Vertices()
	if len(ids) == 0 {
		return nil, ErrEmptyGraph
	}

	start, err := p.RandomVertex(intn)
	if err != nil {
		return nil, err
	}

	res, err := bfs.BFS(p, start)
	if err != nil {
		return nil, err
	}

	maxDepth := 0
	for _, d := range res.Depth {
		if d > maxDepth {
			maxDepth = d
		}
	}

	layers := make(map[int][]string)
	for _, id := range ids {
		d, reached := res.Depth[id]
		if !reached {
			continue
		}
		layers[d] = append(layers[d], id)
	}

	var unreached []string
	for _, id := range ids {
		if _, reached := res.Depth[id]; !reached {
			unreached = append(unreached, id)
		}
	}

	if maxDepth == 0 {
		// Every reached vertex is the start itself; no interior layer
		// exists to serve as cut, so the only separator available puts
		// start on the left and everything else on the right, with an
		// empty cut (left and right are already disconnected).
		sep := &Separator{Left: []string{start}, Cut: nil, Right: append([]string{}, unreached...)}
		sort.Strings(sep.Right)

		return sep, nil
	}

	bestDepth, bestDiff := -1, -1
	for d := 1; d < maxDepth; d++ {
		leftCount, rightCount := 0, len(unreached)
		for layerDepth, verts := range layers {
			switch {
			case layerDepth < d:
				leftCount += len(verts)
			case layerDepth > d:
				rightCount += len(verts)
			}
		}
		if leftCount == 0 || rightCount == 0 {
			continue
		}
		diff := abs(leftCount - rightCount)
		if bestDepth == -1 || diff < bestDiff {
			bestDepth, bestDiff = d, diff
		}
	}

	if bestDepth == -1 {
		// No interior boundary splits both sides non-empty (e.g. a path
		// graph of length 2): fall back to cutting at depth 1.
		bestDepth = 1
	}

	var left, cut, right []string
	for layerDepth, verts := range layers {
		switch {
		case layerDepth < bestDepth:
			left = append(left, verts...)
		case layerDepth == bestDepth:
			cut = append(cut, verts...)
		default:
			right = append(right, verts...)
		}
	}
	right = append(right, unreached...)

	sort.Strings(left)
	sort.Strings(cut)
	sort.Strings(right)

	return &Separator{Left: left, Cut: cut, Right: right}, nil
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
