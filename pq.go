package astar

// PriorityQueueItem is one frontier entry. A cell may appear several times
// with different costs; entries for finalized cells are dropped on pop.
type PriorityQueueItem struct {
	Node     Cell
	FCost    float64
	Sequence uint64
}

// PriorityQueue is a container/heap min-heap on FCost. Equal costs pop in
// row-major cell order, then in insertion order for duplicates of one cell.
type PriorityQueue []*PriorityQueueItem

func (queue PriorityQueue) Len() int { return len(queue) }
func (queue PriorityQueue) Less(i, j int) bool {
	a, b := queue[i], queue[j]
	if a.FCost != b.FCost {
		return a.FCost < b.FCost
	}
	if a.Node != b.Node {
		return a.Node.Less(b.Node)
	}
	return a.Sequence < b.Sequence
}
func (queue PriorityQueue) Swap(i, j int) { queue[i], queue[j] = queue[j], queue[i] }

func (queue *PriorityQueue) Push(x any) {
	*queue = append(*queue, x.(*PriorityQueueItem))
}

func (queue *PriorityQueue) Pop() any {
	oldQueue := *queue
	n := len(oldQueue)
	item := oldQueue[n-1]
	oldQueue[n-1] = nil
	*queue = oldQueue[:n-1]
	return item
}
