// Package dag implements the ranked DAG: nodes identified by stable
// handles, successor/predecessor adjacency, and a per-rank ordered row
// structure, grounded on the reference adt::dag module.
package dag

import "fmt"

// NodeHandle is an opaque, stable index into a DAG. It is never reused
// after a node is removed from a rank row (node removal from the DAG
// itself is not supported - only rank-row membership changes).
type NodeHandle int

type node struct {
	successors   []NodeHandle
	predecessors []NodeHandle
}

// DAG owns the node set, their rank assignment, and the per-rank ordered
// rows. All mutation methods treat their preconditions as assertions:
// violating one is a programming bug, never a user error, per the error
// handling policy.
type DAG struct {
	nodes    []node
	levels   []int
	ranks    [][]NodeHandle
	validate bool
}

func New() *DAG {
	return &DAG{validate: true}
}

// SetValidate toggles the expensive post-operation full verification.
func (d *DAG) SetValidate(v bool) { d.validate = v }

func (d *DAG) Len() int { return len(d.nodes) }

// NewNode appends a fresh node at level 0. Callers must re-rank
// (RecomputeNodeRanks) before relying on rank order.
func (d *DAG) NewNode() NodeHandle {
	h := NodeHandle(len(d.nodes))
	d.nodes = append(d.nodes, node{})
	d.levels = append(d.levels, 0)
	d.addElementToRank(h, 0, false)
	return h
}

func (d *DAG) Successors(n NodeHandle) []NodeHandle   { return d.nodes[n].successors }
func (d *DAG) Predecessors(n NodeHandle) []NodeHandle { return d.nodes[n].predecessors }

func (d *DAG) SinglePred(n NodeHandle) (NodeHandle, bool) {
	if len(d.nodes[n].predecessors) == 1 {
		return d.nodes[n].predecessors[0], true
	}
	return 0, false
}

func (d *DAG) SingleSucc(n NodeHandle) (NodeHandle, bool) {
	if len(d.nodes[n].successors) == 1 {
		return d.nodes[n].successors[0], true
	}
	return 0, false
}

// AddEdge records a -> b in both adjacency lists.
func (d *DAG) AddEdge(a, b NodeHandle) {
	d.nodes[a].successors = append(d.nodes[a].successors, b)
	d.nodes[b].predecessors = append(d.nodes[b].predecessors, a)
}

// RemoveEdge removes one occurrence of a -> b from both adjacency lists. It
// only removes the first match on each side (parallel edges beyond the
// first survive a single call) - a deliberate preservation of the
// reference's observed behavior; see DESIGN.md's Open Question (a). It
// panics if the edge was only present on one side, since that is a
// symmetry invariant violation.
func (d *DAG) RemoveEdge(a, b NodeHandle) bool {
	removedSucc := removeFirst(&d.nodes[a].successors, b)
	removedPred := removeFirst(&d.nodes[b].predecessors, a)
	if removedSucc != removedPred {
		panic(fmt.Sprintf("dag: asymmetric edge removal between %d and %d", a, b))
	}
	return removedSucc
}

func removeFirst(list *[]NodeHandle, v NodeHandle) bool {
	for i, x := range *list {
		if x == v {
			*list = append((*list)[:i], (*list)[i+1:]...)
			return true
		}
	}
	return false
}

// IsReachable reports whether b is reachable from a via successor edges.
func (d *DAG) IsReachable(a, b NodeHandle) bool {
	if a == b {
		return true
	}
	visited := make([]bool, len(d.nodes))
	return d.isReachableInner(a, b, visited)
}

func (d *DAG) isReachableInner(a, b NodeHandle, visited []bool) bool {
	if a == b {
		return true
	}
	if visited[a] {
		return false
	}
	visited[a] = true
	for _, s := range d.nodes[a].successors {
		if d.isReachableInner(s, b, visited) {
			return true
		}
	}
	return false
}

// TopologicalSort returns a reverse-post-order DFS ordering (a valid
// topological order for a DAG), built with an explicit worklist rather
// than naive recursion so deep graphs don't blow the call stack.
func (d *DAG) TopologicalSort() []NodeHandle {
	type frame struct {
		node NodeHandle
		post bool
	}
	visited := make([]bool, len(d.nodes))
	var order []NodeHandle
	stack := make([]frame, 0, len(d.nodes))
	for i := len(d.nodes) - 1; i >= 0; i-- {
		stack = append(stack, frame{NodeHandle(i), false})
	}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.post {
			order = append(order, f.node)
			continue
		}
		if visited[f.node] {
			continue
		}
		visited[f.node] = true
		stack = append(stack, frame{f.node, true})
		succs := d.nodes[f.node].successors
		for i := len(succs) - 1; i >= 0; i-- {
			if !visited[succs[i]] {
				stack = append(stack, frame{succs[i], false})
			}
		}
	}
	// Reverse to get reverse-post-order.
	for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
		order[i], order[j] = order[j], order[i]
	}
	return order
}

// computeLevels assigns rank[dest] = max(rank[dest], rank[src]+1) for every
// edge, walking nodes in topological order so every predecessor is
// processed before its successors. Self-loops never affect rank.
func (d *DAG) computeLevels(order []NodeHandle) {
	for _, n := range order {
		for _, s := range d.nodes[n].successors {
			if s == n {
				continue
			}
			if d.levels[n]+1 > d.levels[s] {
				d.levels[s] = d.levels[n] + 1
			}
		}
	}
}

// RecomputeNodeRanks reassigns every node's rank via longest-path layering
// and rebuilds the per-rank rows from scratch. Idempotent: calling it
// twice in a row with no graph mutation in between produces the same
// ranks and rows (nodes within a row appear in TopologicalSort's
// reverse-post-order, not in node insertion order).
func (d *DAG) RecomputeNodeRanks() {
	for i := range d.levels {
		d.levels[i] = 0
	}
	order := d.TopologicalSort()
	d.computeLevels(order)

	d.ranks = nil
	for _, n := range order {
		level := d.levels[n]
		d.addElementToRank(n, level, false)
	}
}

func (d *DAG) addElementToRank(n NodeHandle, level int, prepend bool) {
	for len(d.ranks) <= level {
		d.ranks = append(d.ranks, nil)
	}
	if prepend {
		d.ranks[level] = append([]NodeHandle{n}, d.ranks[level]...)
	} else {
		d.ranks[level] = append(d.ranks[level], n)
	}
	d.levels[n] = level
}

// UpdateNodeRankLevel moves n to newLevel, either appending at the row's
// end (before == nil) or inserting immediately before the given marker
// node. It panics if the marker isn't present in the destination row -
// silently appending instead would hide a caller bug.
func (d *DAG) UpdateNodeRankLevel(n NodeHandle, newLevel int, before *NodeHandle) {
	curLevel := d.levels[n]
	removeFirst(&d.ranks[curLevel], n)

	for len(d.ranks) <= newLevel {
		d.ranks = append(d.ranks, nil)
	}

	if before == nil {
		d.ranks[newLevel] = append(d.ranks[newLevel], n)
	} else {
		row := d.ranks[newLevel]
		idx := -1
		for i, x := range row {
			if x == *before {
				idx = i
				break
			}
		}
		if idx < 0 {
			panic("dag: can't find the marker node in the array")
		}
		row = append(row, 0)
		copy(row[idx+1:], row[idx:])
		row[idx] = n
		d.ranks[newLevel] = row
	}
	d.levels[n] = newLevel
}

func (d *DAG) Level(n NodeHandle) int { return d.levels[n] }

func (d *DAG) Row(level int) []NodeHandle { return d.ranks[level] }

func (d *DAG) SetRow(level int, row []NodeHandle) { d.ranks[level] = row }

func (d *DAG) NumLevels() int { return len(d.ranks) }

func (d *DAG) Ranks() [][]NodeHandle { return d.ranks }

func (d *DAG) SetRanks(ranks [][]NodeHandle) { d.ranks = ranks }

// CloneRanks returns a deep copy of the current rank rows, suitable for a
// "best so far" snapshot during crossing optimization.
func (d *DAG) CloneRanks() [][]NodeHandle {
	out := make([][]NodeHandle, len(d.ranks))
	for i, row := range d.ranks {
		out[i] = append([]NodeHandle(nil), row...)
	}
	return out
}

func (d *DAG) countNodesInRanks() int {
	n := 0
	for _, row := range d.ranks {
		n += len(row)
	}
	return n
}

// VerifyIfEnabled calls Verify only when validation hasn't been disabled
// via SetValidate(false), letting performance-sensitive callers skip the
// full O(n) check on every single edge mutation.
func (d *DAG) VerifyIfEnabled() {
	if d.validate {
		d.Verify()
	}
}

// Verify re-checks every structural invariant: valid indices, the DAG
// property (no node reachable from itself through a nonempty path that
// isn't a declared self-loop), and that every node appears in exactly one
// rank row. Like every other precondition in this package, a violation
// panics rather than returning an error - it indicates a bug in the
// pipeline, not bad input.
func (d *DAG) Verify() {
	if d.countNodesInRanks() != len(d.nodes) {
		panic("dag: rank coverage invariant violated")
	}
	seen := make([]bool, len(d.nodes))
	for _, row := range d.ranks {
		for _, n := range row {
			if seen[n] {
				panic("dag: node appears in more than one rank row")
			}
			seen[n] = true
		}
	}
	for n := range d.nodes {
		for _, s := range d.nodes[n].successors {
			if int(s) < 0 || int(s) >= len(d.nodes) {
				panic("dag: successor handle out of range")
			}
			if int(s) != n && d.IsReachable(s, NodeHandle(n)) {
				panic("dag: cycle detected")
			}
		}
	}
}
