// File: pushrelabel.go
// Role: generic push-relabel max-flow with FIFO active-node discharge,
// plus residual-reachability min-cut extraction for the König step.
package flow

// Result holds the outcome of a max-flow computation: the flow value and,
// for min-cut constructions, the set of nodes reachable from the source
// in the final residual graph.
type Result struct {
	MaxFlow       float64
	SourceSideSet map[string]bool
}

// pushRelabelState carries the mutable bookkeeping of one max-flow run.
type pushRelabelState struct {
	net          *Network
	height       map[string]int
	excess       map[string]float64
	cur          map[string]int // current-arc index per node, for discharge
	active       []string        // FIFO queue of nodes with excess > 0
	queued       map[string]bool
	source, sink string
}

// PushRelabel computes the maximum flow from source to sink in net using
// the generic (FIFO active-node) push-relabel algorithm, then returns the
// flow value together with the set of nodes still reachable from source
// in the residual graph — the s-side of the minimum cut. Runs in
// O(V^2 * E) in the worst case, ample for the diagram-sized networks this
// package serves.
func PushRelabel(net *Network, source, sink string) (*Result, error) {
	if !net.HasNode(source) {
		return nil, ErrSourceNotFound
	}
	if !net.HasNode(sink) {
		return nil, ErrSinkNotFound
	}

	st := &pushRelabelState{
		net:    net,
		height: make(map[string]int),
		excess: make(map[string]float64),
		cur:    make(map[string]int),
		queued: make(map[string]bool),
		source: source,
		sink:   sink,
	}
	nodes := net.Nodes()
	for _, id := range nodes {
		st.height[id] = 0
		st.excess[id] = 0
	}
	st.height[source] = len(nodes)

	// Saturate every arc leaving the source, activating each neighbor
	// that receives positive excess.
	for i := range st.net.adj[source] {
		amount := residualCap(st.net.adj[source][i])
		to := st.net.adj[source][i].to
		st.pushArc(source, i, amount)
		st.enqueue(to)
	}

	for len(st.active) > 0 {
		u := st.active[0]
		st.active = st.active[1:]
		st.queued[u] = false
		if u == source || u == sink {
			continue
		}
		st.discharge(u)
	}

	reachable := st.residualReachable(source)

	return &Result{MaxFlow: st.excess[sink], SourceSideSet: reachable}, nil
}

// enqueue marks u active if it carries positive excess and isn't already
// queued; source and sink are never discharged so they're excluded.
func (st *pushRelabelState) enqueue(u string) {
	if u == st.source || u == st.sink || st.queued[u] || st.excess[u] <= 0 {
		return
	}
	st.queued[u] = true
	st.active = append(st.active, u)
}

// pushArc sends amount flow along arc i out of u, updating its reverse
// counterpart and both endpoints' excess.
func (st *pushRelabelState) pushArc(u string, i int, amount float64) {
	if amount <= 0 {
		return
	}
	a := &st.net.adj[u][i]
	a.flow += amount
	rev := &st.net.adj[a.to][a.reverse]
	rev.flow -= amount
	st.excess[u] -= amount
	st.excess[a.to] += amount
}

// discharge pushes u's excess along admissible arcs, relabeling when none
// remain, until u's excess is exhausted.
func (st *pushRelabelState) discharge(u string) {
	adj := st.net.adj[u]
	for st.excess[u] > 0 {
		if st.cur[u] >= len(adj) {
			st.relabel(u)
			st.cur[u] = 0

			continue
		}
		i := st.cur[u]
		a := adj[i]
		if residualCap(a) > 1e-9 && st.height[u] == st.height[a.to]+1 {
			amount := minFloat(st.excess[u], residualCap(a))
			st.pushArc(u, i, amount)
			st.enqueue(a.to)
		} else {
			st.cur[u]++
		}
	}
}

// relabel raises u's height to one more than its lowest-height residual neighbor.
func (st *pushRelabelState) relabel(u string) {
	minHeight := -1
	for _, a := range st.net.adj[u] {
		if residualCap(a) > 1e-9 {
			if minHeight == -1 || st.height[a.to] < minHeight {
				minHeight = st.height[a.to]
			}
		}
	}
	if minHeight >= 0 {
		st.height[u] = minHeight + 1
	}
}

// residualReachable returns the set of nodes reachable from src following
// only arcs with positive residual capacity.
func (st *pushRelabelState) residualReachable(src string) map[string]bool {
	visited := map[string]bool{src: true}
	queue := []string{src}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, a := range st.net.adj[u] {
			if residualCap(a) > 1e-9 && !visited[a.to] {
				visited[a.to] = true
				queue = append(queue, a.to)
			}
		}
	}

	return visited
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}

	return b
}
