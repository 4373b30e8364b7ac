package tasks

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
)

// Task is a unit of background work. Tasks receive a context that is only
// cancelled on dispatcher shutdown, never by the request that enqueued them.
type Task func(ctx context.Context)

// Dispatcher runs side-effecting work off the request path on a fixed pool of
// workers consuming a bounded queue. A panicking task is recovered and logged
// so one bad task cannot poison the pool.
type Dispatcher struct {
	queue   chan Task
	workers int
	logger  zerolog.Logger

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu     sync.Mutex
	closed bool
}

// NewDispatcher creates a dispatcher with the given worker count and queue size.
func NewDispatcher(workers, queueSize int, logger zerolog.Logger) *Dispatcher {
	if workers <= 0 {
		workers = 2
	}
	if queueSize <= 0 {
		queueSize = 64
	}

	ctx, cancel := context.WithCancel(context.Background())
	d := &Dispatcher{
		queue:   make(chan Task, queueSize),
		workers: workers,
		logger:  logger,
		ctx:     ctx,
		cancel:  cancel,
	}

	for i := 0; i < workers; i++ {
		d.wg.Add(1)
		go d.worker(i)
	}

	return d
}

// Submit enqueues a task. It blocks if the queue is full and returns false if
// the dispatcher has been stopped.
func (d *Dispatcher) Submit(task Task) bool {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		d.logger.Warn().Msg("Task rejected: dispatcher stopped")
		return false
	}
	d.mu.Unlock()

	select {
	case d.queue <- task:
		return true
	case <-d.ctx.Done():
		return false
	}
}

// Stop drains the queue, waits for in-flight tasks to finish, and shuts the
// workers down. Safe to call more than once.
func (d *Dispatcher) Stop() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	d.mu.Unlock()

	close(d.queue)
	d.wg.Wait()
	d.cancel()
}

func (d *Dispatcher) worker(id int) {
	defer d.wg.Done()
	for task := range d.queue {
		d.run(id, task)
	}
}

func (d *Dispatcher) run(id int, task Task) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.Error().Int("worker", id).Interface("panic", r).Msg("Background task panicked")
		}
	}()
	task(d.ctx)
}
