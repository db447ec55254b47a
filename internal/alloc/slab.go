// Package alloc provides the allocator substrate (§4.10): a slab
// allocator for fixed-size node/property/task records and a bump arena
// for short-lived flattening keys.
//
// Nothing in the retrieval pack implements a slab or arena allocator;
// Go's garbage collector normally makes both unnecessary, but the spec
// calls for a thread-safe free-list and pointer-range-checked fallback to
// the heap, so this is a hand-rolled fixed-size free-list: the free slot
// indices are held in a buffered channel rather than threaded through the
// slots, so the Go GC still sees live pointers.
package alloc

import "sync/atomic"

// Slab is a fixed-capacity pool of same-sized slots, safe for concurrent
// Alloc/Free. Free slot indices are queued in a buffered channel, so they
// are handed out oldest-freed first; there is no CAS on a free-list head.
// A per-slot atomic in-use flag, cleared with CompareAndSwap in Free,
// makes a repeated Free of the same index a no-op (§4.10, §5).
type Slab[T any] struct {
	slots []T
	inUse []atomic.Bool
	free  chan int32 // free-list of available slot indices
}

// NewSlab allocates a slab with the given slot capacity.
func NewSlab[T any](capacity int) *Slab[T] {
	s := &Slab[T]{
		slots: make([]T, capacity),
		inUse: make([]atomic.Bool, capacity),
		free:  make(chan int32, capacity),
	}
	for i := 0; i < capacity; i++ {
		s.free <- int32(i)
	}
	return s
}

// Alloc reserves a slot and returns its index and a pointer into the
// slab, or ok=false if the slab is exhausted (caller falls back to the
// heap, per §4.10).
func (s *Slab[T]) Alloc() (index int32, ptr *T, ok bool) {
	select {
	case i := <-s.free:
		s.inUse[i].Store(true)
		return i, &s.slots[i], true
	default:
		return 0, nil, false
	}
}

// Free releases a previously allocated slot back to the free list. Freeing
// an index not currently in use is a no-op.
func (s *Slab[T]) Free(index int32) {
	if index < 0 || int(index) >= len(s.slots) {
		return
	}
	if !s.inUse[index].CompareAndSwap(true, false) {
		return
	}
	var zero T
	s.slots[index] = zero
	s.free <- index
}

// Owns reports whether index falls within this slab's range, the same
// range check Free applies before releasing an index, distinguishing
// slab-owned from heap-owned values (§4.10).
func (s *Slab[T]) Owns(index int32) bool {
	return index >= 0 && int(index) < len(s.slots)
}

// Cap returns the slab's total slot capacity.
func (s *Slab[T]) Cap() int { return len(s.slots) }
