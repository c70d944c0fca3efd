// Package worker provides a bounded background task pool used to run
// enrichment jobs off the request path.
package worker

import (
	"context"
	"log/slog"
	"sync"
)

// Task is one unit of background work. The context passed in is the
// pool's lifecycle context, not the submitting request's, so a finished
// HTTP request does not cancel the job it queued.
type Task func(ctx context.Context)

// Pool runs submitted tasks on a fixed number of goroutines backed by a
// bounded queue. Submit never blocks: when the queue is full the task is
// dropped and reported to the caller.
type Pool struct {
	queue chan Task
	log   *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu     sync.Mutex
	closed bool
}

// NewPool creates and starts a pool with the given worker count and
// queue capacity.
func NewPool(size, queueSize int, log *slog.Logger) *Pool {
	ctx, cancel := context.WithCancel(context.Background())

	p := &Pool{
		queue:  make(chan Task, queueSize),
		log:    log.With(slog.String("component", "worker_pool")),
		ctx:    ctx,
		cancel: cancel,
	}

	p.wg.Add(size)
	for i := 0; i < size; i++ {
		go p.run()
	}

	return p
}

func (p *Pool) run() {
	defer p.wg.Done()
	for task := range p.queue {
		p.execute(task)
	}
}

func (p *Pool) execute(task Task) {
	defer func() {
		if r := recover(); r != nil {
			p.log.Error("task panic recovered", slog.Any("panic", r))
		}
	}()
	task(p.ctx)
}

// Submit enqueues a task. Returns false when the pool is shut down or
// the queue is full; the task is not run in either case.
func (p *Pool) Submit(task Task) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return false
	}

	select {
	case p.queue <- task:
		return true
	default:
		p.log.Warn("task queue full, dropping task")
		return false
	}
}

// Shutdown stops accepting tasks and waits for queued tasks to finish,
// or until ctx expires. Tasks still running when ctx expires see their
// pool context canceled.
func (p *Pool) Shutdown(ctx context.Context) error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	close(p.queue)
	p.mu.Unlock()

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		p.cancel()
		return nil
	case <-ctx.Done():
		p.cancel()
		return ctx.Err()
	}
}
