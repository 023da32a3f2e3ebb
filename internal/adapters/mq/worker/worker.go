// Package worker runs balance jobs pulled from the queue.
package worker

import (
	"context"
	"fmt"
	"runtime"
	"strconv"
	"time"

	"github.com/matchday/teamdraft/internal/adapters/repository"
	"github.com/matchday/teamdraft/internal/domain/model"
	"github.com/matchday/teamdraft/pkg/logger"
	"github.com/matchday/teamdraft/pkg/metrics"
)

// Default worker configuration constants.
const (
	workerShutdownTimeout = 5 * time.Second
)

// Runner executes one balance job and returns its result.
type Runner interface {
	Run(ctx context.Context, job model.Job) (repository.Result, error)
}

// Sink receives completed results.
type Sink interface {
	Put(ctx context.Context, res repository.Result) error
}

// Queue defines how workers receive jobs.
type Queue interface {
	Dequeue(ctx context.Context) <-chan model.Job
}

// Worker processes jobs from the queue until stopped.
type Worker struct {
	queue  Queue
	runner Runner
	sink   Sink
	name   string

	shutdown chan struct{}
	done     chan struct{}

	logger logger.Logger
}

// NewWorker creates a new worker with configuration options.
func NewWorker(queue Queue, runner Runner, sink Sink, opts ...Option) *Worker {
	w := &Worker{
		queue:    queue,
		runner:   runner,
		sink:     sink,
		name:     "worker",
		shutdown: make(chan struct{}),
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.logger == nil {
		w.logger = logger.Get().Named(w.name)
	}
	return w
}

// Run starts the worker loop until ctx is canceled, the queue closes,
// or Shutdown is called.
func (w *Worker) Run(ctx context.Context) {
	defer close(w.done)

	jobs := w.queue.Dequeue(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-w.shutdown:
			return
		case job, ok := <-jobs:
			if !ok {
				return
			}
			metrics.RecordDequeue()
			if err := w.process(ctx, job); err != nil {
				w.logger.Error(ctx, "job failed",
					logger.String("jobID", job.ID),
					logger.Error(err),
				)
			}
		}
	}
}

// Shutdown stops the worker, waiting for the in-flight job.
func (w *Worker) Shutdown(ctx context.Context) error {
	close(w.shutdown)
	select {
	case <-w.done:
		return nil
	case <-ctx.Done():
		w.logger.Warn(ctx, "shutdown timed out")
		return fmt.Errorf("shutdown timed out: %w", ctx.Err())
	}
}

func (w *Worker) process(ctx context.Context, job model.Job) error {
	res, err := w.runner.Run(ctx, job)
	if err != nil {
		metrics.RecordJobFailed()
		return fmt.Errorf("run job %s: %w", job.ID, err)
	}
	if err := w.sink.Put(ctx, res); err != nil {
		metrics.RecordJobFailed()
		return fmt.Errorf("store result for job %s: %w", job.ID, err)
	}

	metrics.RecordJobCompleted()
	w.logger.Debug(ctx, "job completed",
		logger.String("jobID", job.ID),
		logger.Float64("score", res.Score),
		logger.Int("teams", len(res.Teams)),
	)
	return nil
}

// Pool manages a fixed set of workers sharing one queue.
type Pool struct {
	workers []*Worker

	logger logger.Logger
}

// NewPool creates workerCount workers; a non-positive count defaults to
// the CPU count.
func NewPool(workerCount int, queue Queue, runner Runner, sink Sink) *Pool {
	if workerCount < 1 {
		workerCount = runtime.NumCPU()
	}

	p := &Pool{
		workers: make([]*Worker, workerCount),
		logger:  logger.Get().Named("worker-pool"),
	}
	for i := range p.workers {
		p.workers[i] = NewWorker(queue, runner, sink,
			WithName("worker-"+strconv.Itoa(i)),
		)
	}

	metrics.UpdateWorkerActiveCount(workerCount)
	return p
}

// Start launches all workers.
func (p *Pool) Start(ctx context.Context) {
	for _, w := range p.workers {
		go w.Run(ctx)
	}
}

// Stop stops all workers, bounding the wait per worker.
func (p *Pool) Stop() {
	for _, w := range p.workers {
		ctx, cancel := context.WithTimeout(context.Background(), workerShutdownTimeout)
		if err := w.Shutdown(ctx); err != nil {
			p.logger.Warn(ctx, "worker did not stop cleanly",
				logger.String("worker", w.name),
				logger.Error(err),
			)
		}
		cancel()
	}
	metrics.UpdateWorkerActiveCount(0)
}

// Size returns the number of workers in the pool.
func (p *Pool) Size() int {
	return len(p.workers)
}
