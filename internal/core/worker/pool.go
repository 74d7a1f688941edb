package worker

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// Task is a unit of work executed by the pool.
type Task func() error

// Result is an awaitable handle for a submitted task.
type Result struct {
	done chan struct{}
	err  error
}

// Wait blocks until the task has run and returns its error.
func (r *Result) Wait() error {
	<-r.done
	return r.err
}

// Done is closed once the task has run.
func (r *Result) Done() <-chan struct{} {
	return r.done
}

type job struct {
	task   Task
	result *Result
}

// Pool runs submitted tasks on a fixed set of workers fed by a bounded queue.
// Submit blocks when the queue is full, which caps how much work callers can
// have in flight at once.
type Pool struct {
	logger *zap.Logger
	jobs   chan job
	wg     sync.WaitGroup
}

func NewPool(workers, queueSize int, logger *zap.Logger) *Pool {
	if workers <= 0 {
		workers = 1
	}
	if queueSize <= 0 {
		queueSize = workers
	}

	p := &Pool{
		logger: logger,
		jobs:   make(chan job, queueSize),
	}

	for i := 0; i < workers; i++ {
		p.wg.Add(1)
		go p.worker(i)
	}

	return p
}

// Submit queues a task and returns a handle for awaiting its result.
// Blocks while the queue is full. Must not be called after Stop.
func (p *Pool) Submit(task Task) *Result {
	result := &Result{done: make(chan struct{})}
	p.jobs <- job{task: task, result: result}
	return result
}

// Stop drains the queue and waits for the workers to finish.
func (p *Pool) Stop() {
	close(p.jobs)
	p.wg.Wait()
}

func (p *Pool) worker(id int) {
	defer p.wg.Done()

	for j := range p.jobs {
		j.result.err = p.run(id, j.task)
		close(j.result.done)
	}
}

func (p *Pool) run(id int, task Task) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("task panic: %v", r)
			p.logger.Error("task panicked", zap.Int("worker", id), zap.Any("panic", r))
		}
	}()

	return task()
}
