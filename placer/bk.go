package placer

import (
	"math"

	"github.com/dotlayout/dotlayout/dag"
	"github.com/dotlayout/dotlayout/geom"
	"github.com/dotlayout/dotlayout/graph"
)

// orderLR selects which side a BK alignment/scheduling pass scans from.
type orderLR int

const (
	leftToRight orderLR = iota
	rightToLeft
)

func (o orderLR) isLeftToRight() bool { return o == leftToRight }

// nodeAttachInfo records, for every node, which node above it (if any) it
// is vertically aligned to, and which node below it (if any) aligns to it.
// A vertical chain of aligned nodes is placed at a single x coordinate.
type nodeAttachInfo struct {
	above []int // index-shifted NodeHandle, -1 for none
	below []int
}

func newNodeAttachInfo(size int) *nodeAttachInfo {
	above := make([]int, size)
	below := make([]int, size)
	for i := range above {
		above[i] = -1
		below[i] = -1
	}
	return &nodeAttachInfo{above: above, below: below}
}

func (a *nodeAttachInfo) add(from, to dag.NodeHandle) {
	if a.below[to] != -1 {
		panic("placer: node is already taken")
	}
	if a.above[from] != -1 {
		panic("placer: node is already set")
	}
	a.above[from] = int(to)
	a.below[to] = int(from)
}

type vertical []dag.NodeHandle

// getVerticals partitions every node into a chain of vertically-aligned
// nodes, following above/below links from the bottom of each chain up.
func (a *nodeAttachInfo) getVerticals() []vertical {
	var res []vertical
	used := make([]bool, len(a.above))

	for i := range a.above {
		if used[i] {
			continue
		}

		idx := i
		for a.below[idx] != -1 {
			idx = a.below[idx]
		}

		var v vertical
		v = append(v, dag.NodeHandle(idx))
		for a.above[idx] != -1 && !used[idx] {
			used[idx] = true
			idx = a.above[idx]
			v = append(v, dag.NodeHandle(idx))
		}
		used[idx] = true
		res = append(res, v)
	}
	return res
}

// scheduler assigns one x coordinate to every vertical chain, processing
// chains in dependency order: a chain can only be placed once every node in
// it is the next unplaced node in its own row.
type scheduler struct {
	g            *graph.VisualGraph
	vl           []vertical
	xCoordinates []float64
	schedIdx     []int
	lastXForRow  []float64
	order        orderLR
}

func newScheduler(g *graph.VisualGraph, vl []vertical, order orderLR) *scheduler {
	xs := make([]float64, g.NumNodes())
	idx := make([]int, g.DAG.NumLevels())
	v := math.Inf(-1)
	if !order.isLeftToRight() {
		v = math.Inf(1)
	}
	lastX := make([]float64, g.DAG.NumLevels())
	for i := range lastX {
		lastX[i] = v
	}
	return &scheduler{g: g, vl: vl, xCoordinates: xs, schedIdx: idx, lastXForRow: lastX, order: order}
}

func (s *scheduler) verifyVertical(v vertical) {
	prevLevel := 0
	for i, elem := range v {
		level := s.g.DAG.Level(elem)
		if i != 0 && level+1 != prevLevel {
			panic("placer: vertical chain must descend one rank at a time")
		}
		prevLevel = level
	}
}

func (s *scheduler) isNextAvailInRow(node dag.NodeHandle, rowIdx int) bool {
	row := s.g.DAG.Row(rowIdx)
	firstFree := s.schedIdx[rowIdx]
	n := len(row)
	if firstFree >= n {
		return false
	}
	if s.order.isLeftToRight() {
		return row[firstFree] == node
	}
	return row[n-firstFree-1] == node
}

func (s *scheduler) isVerticalReady(idx int) bool {
	v := s.vl[idx]
	if len(v) == 0 {
		return false
	}
	for _, node := range v {
		if !s.isNextAvailInRow(node, s.g.DAG.Level(node)) {
			return false
		}
	}
	return true
}

func (s *scheduler) firstScheduleX(v vertical) float64 {
	last := 0.0
	for _, elem := range v {
		level := s.g.DAG.Level(elem)
		rowLast := s.lastXForRow[level]
		pos := s.g.Element(elem).Pos

		var offset float64
		if s.order.isLeftToRight() {
			offset = pos.DistanceToLeft(true)
		} else {
			offset = pos.DistanceToRight(true)
		}

		if s.order.isLeftToRight() {
			last = math.Max(last, rowLast+offset)
		} else {
			last = math.Min(last, rowLast-offset)
		}
	}
	return last
}

func (s *scheduler) placeVertical(v vertical, centerX float64) {
	for _, elem := range v {
		s.xCoordinates[elem] = centerX
		level := s.g.DAG.Level(elem)
		pos := s.g.Element(elem).Pos
		if s.order.isLeftToRight() {
			s.lastXForRow[level] = centerX + pos.DistanceToRight(true)
		} else {
			s.lastXForRow[level] = centerX - pos.DistanceToLeft(true)
		}
		s.schedIdx[level]++
	}
}

func (s *scheduler) schedule() {
	for _, v := range s.vl {
		s.verifyVertical(v)
	}

	toPlace := len(s.vl)
	for toPlace > 0 {
		for i := range s.vl {
			if !s.isVerticalReady(i) {
				continue
			}
			v := s.vl[i]
			x := s.firstScheduleX(v)
			s.placeVertical(v, x)
			s.vl[i] = nil
			toPlace--
		}
	}
}

// edgeIdxs represents an edge as the index of its endpoints within their
// respective rows.
type edgeIdxs struct{ from, to int }

type edgeKey struct{ from, to dag.NodeHandle }

// BK implements Brandes-Köpf horizontal coordinate assignment.
type BK struct {
	g *graph.VisualGraph
}

func NewBK(g *graph.VisualGraph) *BK { return &BK{g: g} }

// areEdgesCrossing reports whether two successor edges, given as row-index
// pairs, cross each other.
func areEdgesCrossing(a, b edgeIdxs) bool {
	before := a.from < b.from && a.to < b.to
	after := a.from > b.from && a.to > b.to
	return !before && !after
}

func (bk *BK) getValidEdges() map[edgeKey]bool {
	valid := make(map[edgeKey]bool)
	for i := 0; i < bk.g.DAG.NumLevels()-1; i++ {
		r0 := bk.g.DAG.Row(i)
		r1 := bk.g.DAG.Row(i + 1)
		for _, e := range bk.extractEdgesWithNoType2Conflict(r0, r1) {
			valid[e] = true
		}
	}
	return valid
}

// extractEdgesWithNoType2Conflict returns every successor edge between two
// rows that doesn't cross a "strong" edge - one connecting two connector
// nodes, which represents an inner segment of a multi-hop edge that must
// not be bent around.
func (bk *BK) extractEdgesWithNoType2Conflict(r0, r1 []dag.NodeHandle) []edgeKey {
	var regular, strong []edgeIdxs
	regularNodes := map[edgeIdxs]edgeKey{}
	strongNodes := map[edgeIdxs]edgeKey{}

	for idx0, elem := range r0 {
		for _, succ := range bk.g.DAG.Successors(elem) {
			idx1 := indexOf(succ, r1)
			if idx1 < 0 {
				continue
			}
			c0 := bk.g.IsConnector(elem)
			c1 := bk.g.IsConnector(succ)
			key := edgeIdxs{idx0, idx1}
			if c0 && c1 {
				strong = append(strong, key)
				strongNodes[key] = edgeKey{elem, succ}
			} else {
				regular = append(regular, key)
				regularNodes[key] = edgeKey{elem, succ}
			}
		}
	}

	var res []edgeKey
outer:
	for _, reg := range regular {
		for _, st := range strong {
			if !areEdgesCrossing(reg, st) {
				continue
			}
			continue outer
		}
		res = append(res, regularNodes[reg])
	}
	for _, st := range strong {
		res = append(res, strongNodes[st])
	}
	return res
}

func indexOf(n dag.NodeHandle, row []dag.NodeHandle) int {
	for i, x := range row {
		if x == n {
			return i
		}
	}
	return -1
}

// getPredMedians returns, for every node, the weighted median x of its
// predecessors along valid (non-type-2-conflicting) edges, or 0 if it has
// none.
func (bk *BK) getPredMedians(valid map[edgeKey]bool) []float64 {
	res := make([]float64, bk.g.NumNodes())
	for node := dag.NodeHandle(0); int(node) < bk.g.NumNodes(); node++ {
		var posList []float64
		for _, pred := range bk.g.DAG.Predecessors(node) {
			if !valid[edgeKey{pred, node}] {
				continue
			}
			posList = append(posList, bk.g.Element(pred).Pos.Center().X)
		}
		if len(posList) == 0 {
			res[node] = 0
		} else {
			res[node] = geom.WeightedMedian(posList)
		}
	}
	return res
}

// computeAlignment greedily aligns each node in a row to the closest
// available predecessor in the row above, scanning left-to-right or
// right-to-left depending on order, and marking predecessors that come
// before a chosen match in scan order as unavailable (so alignments never
// cross).
func (bk *BK) computeAlignment(order orderLR) *nodeAttachInfo {
	num := bk.g.NumNodes()
	info := newNodeAttachInfo(num)

	valid := bk.getValidEdges()
	medians := bk.getPredMedians(valid)

	for i := 0; i < bk.g.DAG.NumLevels()-1; i++ {
		r0 := append([]dag.NodeHandle(nil), bk.g.DAG.Row(i)...)
		r1 := append([]dag.NodeHandle(nil), bk.g.DAG.Row(i+1)...)
		used := make([]bool, len(r0))

		if !order.isLeftToRight() {
			reverseHandles(r0)
			reverseHandles(r1)
		}

		for _, node := range r1 {
			nodeX := medians[node]
			bestIdx := -1
			bestDelta := math.Inf(1)

			for _, pred := range bk.g.DAG.Predecessors(node) {
				idx := indexOf(pred, r0)
				if idx < 0 || used[idx] {
					continue
				}
				delta := math.Abs(bk.g.Element(pred).Pos.Center().X - nodeX)
				if delta < bestDelta {
					bestIdx = idx
					bestDelta = delta
				}
			}

			if bestIdx >= 0 {
				for i := 0; i <= bestIdx; i++ {
					used[i] = true
				}
				info.add(node, r0[bestIdx])
			}
		}
	}

	return info
}

func reverseHandles(s []dag.NodeHandle) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

// Do runs four (alignment, schedule) combinations - (RTL-align,
// RTL-schedule), (RTL-align, LTR-schedule), (LTR-align, RTL-schedule),
// (LTR-align, LTR-schedule) - and averages the four resulting x
// coordinates per node, then re-flushes the drawing to the left margin.
// The alignments differ only in horizontal scan direction: every one of
// them links a node to a predecessor in the row above; none aligns
// against successors in the row below.
func (bk *BK) Do() {
	vl := bk.computeAlignment(rightToLeft).getVerticals()
	sc0 := newScheduler(bk.g, vl, rightToLeft)
	sc0.schedule()

	vl = bk.computeAlignment(rightToLeft).getVerticals()
	sc1 := newScheduler(bk.g, vl, leftToRight)
	sc1.schedule()

	vl = bk.computeAlignment(leftToRight).getVerticals()
	sc2 := newScheduler(bk.g, vl, rightToLeft)
	sc2.schedule()

	vl = bk.computeAlignment(leftToRight).getVerticals()
	sc3 := newScheduler(bk.g, vl, leftToRight)
	sc3.schedule()

	for i := 0; i < len(sc0.xCoordinates); i++ {
		node := dag.NodeHandle(i)
		val := (sc0.xCoordinates[i] + sc1.xCoordinates[i] + sc2.xCoordinates[i] + sc3.xCoordinates[i]) / 4.0
		bk.g.Element(node).Pos.SetX(val)
	}

	AlignToLeft(bk.g)
}
