package inline

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Dispatcher runs closures on the owner thread.
// Post must be safe to call from any goroutine.
type Dispatcher interface {
	Post(fn func())
}

// Loop is a Dispatcher backed by a FIFO task queue. The owner thread drains
// it with Flush or Run.
type Loop struct {
	mu    sync.Mutex
	tasks []func()
	wake  chan struct{}
}

// NewLoop creates an empty loop.
func NewLoop() *Loop {
	return &Loop{wake: make(chan struct{}, 1)}
}

// Post queues fn. It is safe for concurrent use.
func (l *Loop) Post(fn func()) {
	l.mu.Lock()
	l.tasks = append(l.tasks, fn)
	l.mu.Unlock()
	select {
	case l.wake <- struct{}{}:
	default:
	}
}

// Pending returns the number of queued tasks.
func (l *Loop) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.tasks)
}

// Flush runs queued tasks on the calling goroutine until the queue is empty,
// including tasks posted while flushing. It returns the number of tasks run.
func (l *Loop) Flush() int {
	n := 0
	for {
		l.mu.Lock()
		tasks := l.tasks
		l.tasks = nil
		l.mu.Unlock()
		if len(tasks) == 0 {
			return n
		}
		for _, fn := range tasks {
			fn()
		}
		n += len(tasks)
	}
}

// Run drains the loop on the calling goroutine until ctx is done.
func (l *Loop) Run(ctx context.Context) error {
	for {
		l.Flush()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.wake:
		}
	}
}

// Worker runs background decodes with bounded parallelism.
type Worker struct {
	g errgroup.Group
}

// NewWorker creates a worker running at most limit decodes at once.
// A limit <= 0 means no limit.
func NewWorker(limit int) *Worker {
	w := &Worker{}
	if limit > 0 {
		w.g.SetLimit(limit)
	}
	return w
}

// Go runs fn on a worker goroutine. It blocks while the worker is at its limit.
func (w *Worker) Go(fn func()) {
	w.g.Go(func() error {
		fn()
		return nil
	})
}

// Wait blocks until every started decode has returned.
func (w *Worker) Wait() {
	_ = w.g.Wait()
}
