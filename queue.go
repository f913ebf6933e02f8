package tickmesh

import "container/heap"

// heapItem wraps an Event with a monotonic insertion sequence number so
// that ties on Time are broken in insertion order — deterministic given
// identical inputs, even though container/heap itself is not a stable
// sort.
type heapItem[M any] struct {
	ev  Event[M]
	seq uint64
}

// eventHeap is a min-heap of heapItem[M] ordered by (Time, seq), a
// container/heap.Interface implementation generalized with a type
// parameter so each Port/Timer gets its own typed queue instead of a
// single heterogeneous simulator-wide one.
type eventHeap[M any] []heapItem[M]

func (h eventHeap[M]) Len() int { return len(h) }

func (h eventHeap[M]) Less(i, j int) bool {
	if h[i].ev.Time != h[j].ev.Time {
		return h[i].ev.Time < h[j].ev.Time
	}
	return h[i].seq < h[j].seq
}

func (h eventHeap[M]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *eventHeap[M]) Push(x any) {
	*h = append(*h, x.(heapItem[M]))
}

func (h *eventHeap[M]) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

func (h *eventHeap[M]) push(seq uint64, ev Event[M]) {
	heap.Push(h, heapItem[M]{ev: ev, seq: seq})
}

func (h *eventHeap[M]) pop() heapItem[M] {
	return heap.Pop(h).(heapItem[M])
}
