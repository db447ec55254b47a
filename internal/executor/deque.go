// Package executor implements a bounded work-stealing thread pool (§4.9):
// each worker owns a fixed-capacity ring deque supporting push-bottom and
// pop-bottom from the owner, and steal-top from any other worker.
//
// There is no off-the-shelf deque in the retrieval pack precise enough for
// this; the ring-buffer shape follows tree-shaker's queue.Queue (head/tail
// indices over a fixed slice), extended here with atomic top/bottom
// cursors and a CAS-guarded steal, after the classic Chase-Lev
// work-stealing deque.
package executor

import "sync/atomic"

// Task is a unit of work submitted to the pool.
type Task func()

// deque is a fixed-capacity ring buffer. The owner pushes/pops at bottom
// without synchronization against other owners; stealers race only with
// each other and the owner's pop via a CAS on top.
type deque struct {
	buf    []Task
	mask   int64
	top    atomic.Int64
	bottom atomic.Int64
}

func newDeque(capacity int) *deque {
	if capacity <= 0 || capacity&(capacity-1) != 0 {
		panic("executor: deque capacity must be a positive power of two")
	}
	return &deque{buf: make([]Task, capacity), mask: int64(capacity - 1)}
}

func (d *deque) cap() int64 { return int64(len(d.buf)) }

// pushBottom is called only by the owning worker. Returns false if the
// deque is full; the caller falls back to running the task synchronously
// or trying another worker (§4.9).
func (d *deque) pushBottom(t Task) bool {
	b := d.bottom.Load()
	top := d.top.Load()
	if b-top >= d.cap() {
		return false
	}
	d.buf[b&d.mask] = t
	d.bottom.Store(b + 1)
	return true
}

// popBottom is called only by the owning worker (LIFO: most recently
// pushed task first).
func (d *deque) popBottom() (Task, bool) {
	b := d.bottom.Load() - 1
	d.bottom.Store(b)
	top := d.top.Load()
	if top > b {
		// Deque was already empty; restore bottom.
		d.bottom.Store(top)
		return nil, false
	}
	t := d.buf[b&d.mask]
	if top == b {
		// Last element: race with potential stealers via CAS on top.
		if !d.top.CompareAndSwap(top, top+1) {
			d.bottom.Store(top + 1)
			return nil, false
		}
		d.bottom.Store(top + 1)
		return t, true
	}
	return t, true
}

// stealTop is called by any worker other than the owner (FIFO: oldest
// pushed task first).
func (d *deque) stealTop() (Task, bool) {
	top := d.top.Load()
	bottom := d.bottom.Load()
	if top >= bottom {
		return nil, false
	}
	t := d.buf[top&d.mask]
	if !d.top.CompareAndSwap(top, top+1) {
		return nil, false
	}
	return t, true
}

func (d *deque) isEmpty() bool {
	return d.bottom.Load() <= d.top.Load()
}
