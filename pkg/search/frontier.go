package search

import (
	"container/heap"

	"github.com/patiencelab/shenzhen/pkg/solitaire"
)

// priorityValue is the frontier ordering value: smaller pops first. It is
// unexported since only Priority (heuristic.go) ever produces one.
type priorityValue int32

// searchNode is one frontier entry. parent/move let Solve reconstruct
// the winning path by walking parents back to the root instead of
// carrying a full path per node.
type searchNode struct {
	position *solitaire.Position
	priority priorityValue
	seq      uint64 // insertion order, for FIFO tie-breaking

	parent *searchNode
	move   solitaire.Move
}

// frontier is a priority queue of searchNode ordered by Priority
// (smaller-is-better), with FIFO tie-breaking via seq. Grounded on
// pkg/search/movelist.go's container/heap-backed MoveList, generalized
// with an insertion-order field for deterministic tie-breaking.
type frontier struct {
	h    nodeHeap
	next uint64
}

func newFrontier() *frontier {
	return &frontier{}
}

func (f *frontier) Push(n *searchNode) {
	n.seq = f.next
	f.next++
	heap.Push(&f.h, n)
}

// Pop returns the lowest-priority node, ties broken by earliest
// insertion.
func (f *frontier) Pop() (*searchNode, bool) {
	if f.Len() == 0 {
		return nil, false
	}
	return heap.Pop(&f.h).(*searchNode), true
}

func (f *frontier) Len() int {
	return f.h.Len()
}

type nodeHeap []*searchNode

func (h nodeHeap) Len() int { return len(h) }

func (h nodeHeap) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority < h[j].priority
	}
	return h[i].seq < h[j].seq
}

func (h nodeHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *nodeHeap) Push(x interface{}) {
	*h = append(*h, x.(*searchNode))
}

func (h *nodeHeap) Pop() interface{} {
	old := *h
	n := len(old)
	ret := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return ret
}
