// Package callback buffers provider callbacks for asynchronous
// reconciliation by a fixed set of workers.
package callback

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/wordpay/internal/metrics"
)

var (
	ErrQueueFull   = errors.New("callback queue is full")
	ErrQueueClosed = errors.New("callback queue is closed")
)

type QueueI interface {
	TryEnqueue(task Task) error
}

type Task func(ctx context.Context) error

type Queue struct {
	tasks   chan Task
	workers int

	mu     sync.RWMutex
	closed bool
}

func NewQueue(workers, size int) *Queue {
	if workers < 1 {
		workers = 1
	}
	if size < 1 {
		size = 1
	}
	return &Queue{
		tasks:   make(chan Task, size),
		workers: workers,
	}
}

// Run starts the workers and blocks until the queue is closed and drained.
// Tasks receive ctx.
func (q *Queue) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < q.workers; i++ {
		g.Go(func() error {
			q.worker(ctx)
			return nil
		})
	}
	zap.L().Info("callback queue started", zap.Int("workers", q.workers), zap.Int("capacity", cap(q.tasks)))
	return g.Wait()
}

func (q *Queue) worker(ctx context.Context) {
	for task := range q.tasks {
		metrics.CallbackQueueDepth.Dec()
		if err := task(ctx); err != nil {
			zap.L().Error("callback task failed", zap.Error(err))
		}
	}
}

// TryEnqueue never blocks. A full queue returns ErrQueueFull so the caller
// can ask the provider to redeliver.
func (q *Queue) TryEnqueue(task Task) error {
	q.mu.RLock()
	defer q.mu.RUnlock()
	if q.closed {
		return ErrQueueClosed
	}
	// Counted before the send so a worker never decrements first.
	metrics.CallbackQueueDepth.Inc()
	select {
	case q.tasks <- task:
		return nil
	default:
		metrics.CallbackQueueDepth.Dec()
		return ErrQueueFull
	}
}

func (q *Queue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()
	if !q.closed {
		q.closed = true
		close(q.tasks)
	}
}
