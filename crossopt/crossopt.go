// Package crossopt reorders nodes within each rank row to reduce the number
// of edges that cross each other, grounded on the reference
// topo::optimizer EdgeCrossOptimizer.
package crossopt

import "github.com/dotlayout/dotlayout/dag"

type direction int

const (
	dirUp direction = iota
	dirDown
	dirBoth
)

func (d direction) isUp() bool   { return d == dirUp || d == dirBoth }
func (d direction) isDown() bool { return d == dirDown || d == dirBoth }

// Optimizer holds the dag being reordered.
type Optimizer struct {
	d *dag.DAG
}

func New(d *dag.DAG) *Optimizer { return &Optimizer{d: d} }

// numCrossing counts, among the edges that connect a or b to nodes in row,
// how many pairs cross: an edge from a to some node in row crosses an edge
// from b to an earlier node in row.
func (o *Optimizer) numCrossing(a, b dag.NodeHandle, row []dag.NodeHandle) int {
	sum := 0
	numB := 0

	aSucc := o.d.Successors(a)
	aPred := o.d.Predecessors(a)
	bSucc := o.d.Successors(b)
	bPred := o.d.Predecessors(b)

	for _, node := range row {
		isA := containsHandle(aSucc, node) || containsHandle(aPred, node)
		isB := containsHandle(bSucc, node) || containsHandle(bPred, node)
		if isA {
			sum += numB
		}
		if isB {
			numB++
		}
	}
	return sum
}

func containsHandle(list []dag.NodeHandle, n dag.NodeHandle) bool {
	for _, x := range list {
		if x == n {
			return true
		}
	}
	return false
}

// perturbRank shuffles every row with a fixed, deterministic permutation
// (index*17 mod len) to escape local optima between optimization rounds.
func (o *Optimizer) perturbRank() {
	for i := 0; i < o.d.NumLevels(); i++ {
		row := o.d.Row(i)
		n := len(row)
		if n == 0 {
			continue
		}
		for j := 0; j < n; j++ {
			k := (j * 17) % n
			row[k], row[j] = row[j], row[k]
		}
	}
}

// rotateRank rotates every row left by one, a cheap additional perturbation.
func (o *Optimizer) rotateRank() {
	for i := 0; i < o.d.NumLevels(); i++ {
		row := o.d.Row(i)
		if len(row) > 1 {
			first := row[0]
			copy(row, row[1:])
			row[len(row)-1] = first
		}
	}
}

// Optimize runs 50 rounds of adjacent-swap passes (cycling direction every
// iteration, re-perturbing every 10th), keeping the best-scoring rank
// assignment seen.
func (o *Optimizer) Optimize() {
	o.d.VerifyIfEnabled()

	bestRank := o.d.CloneRanks()
	bestCnt := o.countCrossedEdges()

	for i := 0; i < 50; i++ {
		var dir direction
		switch i % 4 {
		case 0:
			dir = dirBoth
		case 1:
			dir = dirUp
		default:
			dir = dirDown
		}
		o.swapCrossedEdges(dir)
		newCnt := o.countCrossedEdges()
		if newCnt < bestCnt {
			bestRank = o.d.CloneRanks()
			bestCnt = newCnt
		}
		o.rotateRank()
		if i%10 == 0 {
			o.perturbRank()
		}
	}
	o.d.SetRanks(bestRank)
}

func (o *Optimizer) countCrossedEdges() int {
	sum := 0
	for rowIdx := 0; rowIdx < o.d.NumLevels()-1; rowIdx++ {
		sum += o.countCrossingInRows(o.d.Row(rowIdx), o.d.Row(rowIdx+1))
	}
	return sum
}

func (o *Optimizer) countCrossingInRows(first, second []dag.NodeHandle) int {
	if len(first) < 2 {
		return 0
	}
	sum := 0
	for i := 0; i < len(first); i++ {
		for j := i + 1; j < len(first); j++ {
			sum += o.numCrossing(first[i], first[j], second)
		}
	}
	return sum
}

func (o *Optimizer) swapCrossedEdges(dir direction) {
	changed := true
	for changed {
		changed = false
		if dir.isDown() {
			for i := 0; i < o.d.NumLevels(); i++ {
				if o.swapCrossedEdgesOnRow(i, dir) {
					changed = true
				}
			}
		}
		if dir.isUp() {
			for i := o.d.NumLevels() - 1; i >= 0; i-- {
				if o.swapCrossedEdgesOnRow(i, dir) {
					changed = true
				}
			}
		}
	}
}

func (o *Optimizer) swapCrossedEdgesOnRow(rowIdx int, dir direction) bool {
	numRows := o.d.NumLevels()

	var prevRow, nextRow []dag.NodeHandle
	if rowIdx > 0 && dir.isUp() {
		prevRow = append([]dag.NodeHandle(nil), o.d.Row(rowIdx-1)...)
	}
	if rowIdx+1 < numRows && dir.isDown() {
		nextRow = append([]dag.NodeHandle(nil), o.d.Row(rowIdx+1)...)
	}

	row := append([]dag.NodeHandle(nil), o.d.Row(rowIdx)...)
	if len(row) < 2 {
		return false
	}

	changed := false
	for i := 0; i < len(row)-1; i++ {
		a, b := row[i], row[i+1]

		ab := o.numCrossing(a, b, prevRow) + o.numCrossing(a, b, nextRow)
		ba := o.numCrossing(b, a, prevRow) + o.numCrossing(b, a, nextRow)

		if ab > ba {
			row[i], row[i+1] = b, a
			changed = true
		}
	}

	if changed {
		o.d.SetRow(rowIdx, row)
	}
	return changed
}
