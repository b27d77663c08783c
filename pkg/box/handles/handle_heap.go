package handles

// handleHeap is a min-heap of handles that have been released and may
// be reused. It satisfies heap.Interface.
type handleHeap []Handle

func (h handleHeap) Len() int {
	return len(h)
}

func (h handleHeap) Less(i, j int) bool {
	return h[i] < h[j]
}

func (h handleHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
}

func (h *handleHeap) Push(x any) {
	*h = append(*h, x.(Handle))
}

func (h *handleHeap) Pop() any {
	last := (*h)[len(*h)-1]
	*h = (*h)[:len(*h)-1]
	return last
}
