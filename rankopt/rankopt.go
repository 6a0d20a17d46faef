// Package rankopt sinks nodes to shorten the edges that run through the
// graph, grounded on the reference topo::optimizer RankOptimizer.
package rankopt

import "github.com/dotlayout/dotlayout/dag"

// Optimizer repeatedly sinks nodes down to the highest rank it can reach
// without lengthening any edge further than necessary.
type Optimizer struct {
	d *dag.DAG
}

func New(d *dag.DAG) *Optimizer { return &Optimizer{d: d} }

// trySinkNode moves node down to one rank above the nearest of its
// successors, provided doing so doesn't increase the number of live edges
// (more predecessors than successors would mean more edges get longer than
// shorter).
func (o *Optimizer) trySinkNode(node dag.NodeHandle) bool {
	backs := o.d.Predecessors(node)
	fwds := o.d.Successors(node)

	if len(backs) > len(fwds) || len(backs)+len(fwds) == 0 {
		return false
	}

	currRank := o.d.Level(node)
	highestNext := o.d.Len()
	for _, elem := range fwds {
		if l := o.d.Level(elem); l < highestNext {
			highestNext = l
		}
	}

	if highestNext > currRank+1 {
		o.d.UpdateNodeRankLevel(node, highestNext-1, nil)
		return true
	}
	return false
}

// Optimize sinks nodes until a full pass makes no further progress.
func (o *Optimizer) Optimize() {
	o.d.VerifyIfEnabled()
	for {
		changed := 0
		for n := dag.NodeHandle(0); int(n) < o.d.Len(); n++ {
			if o.trySinkNode(n) {
				changed++
			}
		}
		if changed == 0 {
			break
		}
	}
}
