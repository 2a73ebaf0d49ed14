package parsort

import (
	"fmt"
	"sync"
)

// Handle tracks one submitted task. Its error is readable only after
// the task has completed, which AwaitAll guarantees.
type Handle struct {
	done chan struct{}
	err  error
}

type poolTask struct {
	run    func() error
	handle *Handle
}

// Pool is a fixed-size worker pool. Exactly `threads` goroutines pull
// tasks off a FIFO queue; there is no priority distinction between
// task kinds. The pool never caps the worker count below what the
// caller asked for, so oversubscribing the hardware is possible (and
// measurably slower, which is what the thread-count benchmark sweeps).
type Pool struct {
	tasks chan *poolTask
	wg    sync.WaitGroup

	mu     sync.Mutex
	closed bool
}

// NewPool starts a pool with the given number of workers. threads < 1
// fails with ErrInvalidConfig.
func NewPool(threads int) (*Pool, error) {
	if threads < 1 {
		return nil, ErrInvalidConfig
	}
	p := &Pool{tasks: make(chan *poolTask, threads)}
	p.wg.Add(threads)
	for i := 0; i < threads; i++ {
		go p.worker()
	}
	return p, nil
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for t := range p.tasks {
		t.handle.err = runTask(t.run)
		close(t.handle.done)
	}
}

// runTask executes fn, converting a panic (for example from a
// misbehaving comparator) into an error on the task's handle.
func runTask(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("task panicked: %v", r)
		}
	}()
	return fn()
}

// Submit enqueues fn and returns a handle for it. Submit blocks while
// the queue is full and a worker has not freed up. After Close it
// fails with ErrPoolShutdown. Every accepted task runs exactly once.
func (p *Pool) Submit(fn func() error) (*Handle, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return nil, ErrPoolShutdown
	}
	h := &Handle{done: make(chan struct{})}
	p.tasks <- &poolTask{run: fn, handle: h}
	return h, nil
}

// Close shuts the pool down gracefully: tasks already queued still run
// to completion, then the workers exit. Close blocks until all workers
// have exited. Subsequent Submit calls fail with ErrPoolShutdown.
func (p *Pool) Close() {
	p.mu.Lock()
	if !p.closed {
		p.closed = true
		close(p.tasks)
	}
	p.mu.Unlock()
	p.wg.Wait()
}

// AwaitAll blocks until every handle's task has completed and returns
// the first error among them. It waits for the whole batch even when
// a task fails: the caller relies on AwaitAll as a barrier, so no task
// of the batch may still be writing when it returns.
func AwaitAll(handles []*Handle) error {
	var first error
	for _, h := range handles {
		<-h.done
		if h.err != nil && first == nil {
			first = h.err
		}
	}
	return first
}
