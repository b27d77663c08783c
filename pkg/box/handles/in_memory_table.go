package handles

import (
	"container/heap"
	"sync"

	"github.com/buildbarn/bb-hostbox/pkg/box"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type inMemoryTable struct {
	lock     sync.Mutex
	boxes    map[Handle]*box.Box[any]
	released handleHeap
	next     Handle
}

// NewInMemoryTable creates a handle table that stores all boxes in a
// map. Handles are allocated sequentially, starting at one. Handles
// that are released are reused, lowest first, ensuring that handle
// values remain small enough to be represented exactly by scripting
// engines that only support floating point numbers.
//
// The table is safe for concurrent use. The boxes stored in it are
// not synchronized in any way.
func NewInMemoryTable() Table {
	return &inMemoryTable{
		boxes: map[Handle]*box.Box[any]{},
		next:  1,
	}
}

func (t *inMemoryTable) Register(b *box.Box[any]) Handle {
	if b.IsAbsent() {
		return 0
	}

	t.lock.Lock()
	defer t.lock.Unlock()

	var h Handle
	if t.released.Len() > 0 {
		h = heap.Pop(&t.released).(Handle)
	} else {
		h = t.next
		t.next++
	}
	t.boxes[h] = b
	return h
}

func (t *inMemoryTable) Resolve(h Handle) (*box.Box[any], error) {
	if h == 0 {
		return box.New[any](nil), nil
	}

	t.lock.Lock()
	defer t.lock.Unlock()

	b, ok := t.boxes[h]
	if !ok {
		return nil, status.Errorf(codes.NotFound, "Handle %d is not registered", h)
	}
	return b, nil
}

func (t *inMemoryTable) Release(h Handle) error {
	if h == 0 {
		return nil
	}

	t.lock.Lock()
	defer t.lock.Unlock()

	if _, ok := t.boxes[h]; !ok {
		return status.Errorf(codes.NotFound, "Handle %d is not registered", h)
	}
	delete(t.boxes, h)
	heap.Push(&t.released, h)
	return nil
}

func (t *inMemoryTable) Len() int {
	t.lock.Lock()
	defer t.lock.Unlock()

	return len(t.boxes)
}
