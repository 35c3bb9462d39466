package astar

import (
	"container/heap"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPriorityQueue_TieBreak(t *testing.T) {
	queue := PriorityQueue{}
	heap.Init(&queue)
	for i, item := range []PriorityQueueItem{
		{Node: Cell{2, 0}, FCost: 1},
		{Node: Cell{0, 3}, FCost: 1},
		{Node: Cell{5, 5}, FCost: 0.5},
		{Node: Cell{0, 1}, FCost: 1},
		{Node: Cell{0, 3}, FCost: 1},
		{Node: Cell{1, 0}, FCost: 2},
	} {
		item.Sequence = uint64(i)
		heap.Push(&queue, &item)
	}

	type popped struct {
		Node     Cell
		Sequence uint64
	}
	var got []popped
	for queue.Len() > 0 {
		item := heap.Pop(&queue).(*PriorityQueueItem)
		got = append(got, popped{item.Node, item.Sequence})
	}

	want := []popped{
		{Cell{5, 5}, 2},
		{Cell{0, 1}, 3},
		{Cell{0, 3}, 1},
		{Cell{0, 3}, 4},
		{Cell{2, 0}, 0},
		{Cell{1, 0}, 5},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("pop order mismatch (-want +got):\n%s", diff)
	}
}
