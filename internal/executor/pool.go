package executor

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/semaphore"
)

// DefaultDequeCapacity is the recommended per-worker ring size (§4.9).
const DefaultDequeCapacity = 1024

// Pool is a fixed-size work-stealing thread pool. Workers run until
// Shutdown is called; Submit/WaitAll may be called repeatedly across
// many waves of work (the runner submits one wave per batch call).
type Pool struct {
	workers    []*deque
	sem        *semaphore.Weighted
	next       atomic.Uint64
	inFlight   atomic.Int64
	inFlightID sync.Map // uuid.UUID -> struct{}, live tasks for diagnostics/debugging
	wake       chan struct{}
	closing    atomic.Bool
	wg         sync.WaitGroup
}

// New spawns n worker goroutines, each owning a DefaultDequeCapacity ring
// deque, bounded so at most n tasks run concurrently regardless of how
// many are queued (§4.9, §5).
func New(n int) *Pool {
	if n <= 0 {
		n = 1
	}
	p := &Pool{
		workers: make([]*deque, n),
		sem:     semaphore.NewWeighted(int64(n)),
		wake:    make(chan struct{}, n),
	}
	for i := range p.workers {
		p.workers[i] = newDeque(DefaultDequeCapacity)
	}
	p.wg.Add(n)
	for i := 0; i < n; i++ {
		go p.runWorker(i)
	}
	return p
}

// Submit enqueues task onto a round-robin-selected worker's deque bottom;
// if that deque is full, other deques are tried in turn; if all are full
// the caller runs the task synchronously (§4.9).
func (p *Pool) Submit(task Task) {
	id := uuid.New()
	p.inFlightID.Store(id, struct{}{})
	wrapped := func() {
		defer p.inFlightID.Delete(id)
		task()
	}

	p.inFlight.Add(1)
	n := len(p.workers)
	start := int(p.next.Add(1)) % n
	for i := 0; i < n; i++ {
		idx := (start + i) % n
		if p.workers[idx].pushBottom(wrapped) {
			p.notify()
			return
		}
	}
	// Every deque full: run synchronously on the caller's goroutine.
	wrapped()
	p.inFlight.Add(-1)
}

// InFlight reports the ids of tasks currently submitted but not yet
// complete, for diagnostics and debugging (§4.9).
func (p *Pool) InFlight() []uuid.UUID {
	var ids []uuid.UUID
	p.inFlightID.Range(func(k, _ any) bool {
		ids = append(ids, k.(uuid.UUID))
		return true
	})
	return ids
}

// WaitAll blocks until the global in-flight task count reaches zero
// (§4.9).
func (p *Pool) WaitAll() {
	for p.inFlight.Load() > 0 {
		runtime.Gosched()
		time.Sleep(time.Microsecond)
	}
}

// Shutdown stops all worker goroutines once their deques drain. The pool
// must not be used after Shutdown returns.
func (p *Pool) Shutdown() {
	p.WaitAll()
	p.closing.Store(true)
	close(p.wake)
	p.wg.Wait()
}

func (p *Pool) notify() {
	select {
	case p.wake <- struct{}{}:
	default:
	}
}

func (p *Pool) runWorker(id int) {
	defer p.wg.Done()
	own := p.workers[id]
	n := len(p.workers)

	for {
		if task, ok := own.popBottom(); ok {
			p.runTask(task)
			continue
		}

		stole := false
		for i := 1; i < n; i++ {
			victim := p.workers[(id+i)%n]
			if task, ok := victim.stealTop(); ok {
				p.runTask(task)
				stole = true
				break
			}
		}
		if stole {
			continue
		}

		if p.closing.Load() && p.allEmpty() {
			return
		}

		select {
		case _, open := <-p.wake:
			if !open {
				if p.allEmpty() {
					return
				}
			}
		case <-time.After(time.Millisecond):
		}
	}
}

func (p *Pool) runTask(t Task) {
	_ = p.sem.Acquire(context.Background(), 1)
	defer p.sem.Release(1)
	t()
	p.inFlight.Add(-1)
}

func (p *Pool) allEmpty() bool {
	for _, d := range p.workers {
		if !d.isEmpty() {
			return false
		}
	}
	return true
}
