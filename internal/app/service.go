// Package app provides the core business service that implements the
// dependencies required by the HTTP API: it owns the job queue, the
// worker pool, and the result store, and it executes balance jobs.
package app

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	jobqueue "github.com/matchday/teamdraft/internal/adapters/mq/queue"
	workerpool "github.com/matchday/teamdraft/internal/adapters/mq/worker"
	"github.com/matchday/teamdraft/internal/adapters/repository"
	"github.com/matchday/teamdraft/internal/domain/balance"
	"github.com/matchday/teamdraft/internal/domain/model"
	"github.com/matchday/teamdraft/internal/domain/strategy"
	"github.com/matchday/teamdraft/pkg/logger"
	"github.com/matchday/teamdraft/pkg/metrics"
)

// Service implements the API dependencies for the balancing system.
type Service struct {
	mu sync.RWMutex

	// Core components
	results    repository.Store
	jobQueue   jobqueue.Queue
	workerPool *workerpool.Pool

	// Configuration
	workerCount          int
	queueSize            int
	shardCount           int
	defaultStrategy      string
	maxIterations        int
	improvementThreshold float64
	labelPrefix          string

	// State
	started   bool
	startedAt time.Time

	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithWorkerCount sets the number of balancing workers.
func WithWorkerCount(count int) Option {
	return func(s *Service) {
		if count > 0 {
			s.workerCount = count
		}
	}
}

// WithQueueSize sets the maximum size of the job queue.
func WithQueueSize(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.queueSize = size
		}
	}
}

// WithShardCount sets the number of shards in the result store.
func WithShardCount(count int) Option {
	return func(s *Service) {
		if count > 0 {
			s.shardCount = count
		}
	}
}

// WithDefaultStrategy sets the strategy used when a job names none.
func WithDefaultStrategy(name string) Option {
	return func(s *Service) {
		if name != "" {
			s.defaultStrategy = name
		}
	}
}

// WithMaxIterations sets the swap-refinement iteration cap.
func WithMaxIterations(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxIterations = n
		}
	}
}

// WithImprovementThreshold sets the minimum accepted swap improvement.
func WithImprovementThreshold(t float64) Option {
	return func(s *Service) {
		if t > 0 {
			s.improvementThreshold = t
		}
	}
}

// WithTeamLabelPrefix sets the prefix for generated team names.
func WithTeamLabelPrefix(prefix string) Option {
	return func(s *Service) {
		if prefix != "" {
			s.labelPrefix = prefix
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		workerCount:          4,
		queueSize:            10_000,
		shardCount:           8,
		defaultStrategy:      strategy.NameGreedy,
		maxIterations:        1000,
		improvementThreshold: 0.0001,
		labelPrefix:          "Team",
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start initializes and starts the service components.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if s.logger == nil {
		s.logger = logger.Get().Named("service")
	}

	s.results = repository.NewShardedStore(
		repository.WithShardCount(s.shardCount),
	)
	s.jobQueue = jobqueue.NewInMemoryQueue(
		jobqueue.WithCapacity(s.queueSize),
	)
	s.workerPool = workerpool.NewPool(s.workerCount, s.jobQueue, s, s.results)
	s.workerPool.Start(ctx)

	s.started = true
	s.startedAt = time.Now()
	s.logger.Info(ctx, "balancing service started",
		logger.Int("workers", s.workerCount),
		logger.Int("queueSize", s.queueSize),
		logger.String("defaultStrategy", s.defaultStrategy),
	)
	return nil
}

// Stop gracefully shuts down the service.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	ctx := context.Background()
	s.logger.Info(ctx, "stopping balancing service...")

	if q, ok := s.jobQueue.(*jobqueue.InMemoryQueue); ok {
		_ = q.Close()
	}
	if s.workerPool != nil {
		s.workerPool.Stop()
	}

	s.started = false
	s.logger.Info(ctx, "balancing service stopped")
}

// Run executes one balance job: build the requested strategy, partition
// the roster, and score the result. It implements worker.Runner and is
// also the synchronous path behind Balance.
func (s *Service) Run(ctx context.Context, job model.Job) (repository.Result, error) {
	name := job.Strategy
	if name == "" {
		name = s.defaultStrategy
	}

	opts := []strategy.Option{
		strategy.WithMaxIterations(s.maxIterations),
		strategy.WithImprovementThreshold(s.improvementThreshold),
		strategy.WithLabelPrefix(s.labelPrefix),
	}
	if job.Seed != nil {
		opts = append(opts, strategy.WithSeed(*job.Seed))
	}

	st, err := strategy.Get(name, opts...)
	if err != nil {
		return repository.Result{}, err
	}

	start := time.Now()
	teams, err := st.Partition(ctx, job.Roster, job.TeamCount, job.Shuffle)
	if err != nil {
		return repository.Result{}, err
	}
	score := balance.Score(teams)

	metrics.ObserveBalanceScore(score)
	metrics.ObserveBalanceDuration(float64(time.Since(start).Milliseconds()))
	if sw, ok := st.(*strategy.SwapRefinement); ok {
		metrics.ObserveSwapPasses(sw.Passes())
	}

	return repository.Result{
		JobID:       job.ID,
		Strategy:    name,
		Teams:       teams,
		Score:       score,
		CompletedAt: time.Now(),
	}, nil
}

// Balance runs a job synchronously, stores the result, and returns it.
func (s *Service) Balance(ctx context.Context, job model.Job) (repository.Result, error) {
	if job.ID == "" {
		job.ID = uuid.NewString()
	}
	res, err := s.Run(ctx, job)
	if err != nil {
		return repository.Result{}, err
	}
	if err := s.results.Put(ctx, res); err != nil {
		return repository.Result{}, err
	}
	return res, nil
}

// Submit enqueues a job for async processing and returns its assigned
// id. Returns false when the queue rejects the job (backpressure).
func (s *Service) Submit(ctx context.Context, job model.Job) (string, bool) {
	job.ID = uuid.NewString()
	if ok := s.jobQueue.Enqueue(ctx, job); !ok {
		metrics.RecordJobRejected()
		return "", false
	}
	metrics.RecordJobSubmitted()
	return job.ID, true
}

// Result returns the stored result for a job id.
func (s *Service) Result(ctx context.Context, jobID string) (repository.Result, error) {
	return s.results.Get(ctx, jobID)
}

// GetStats returns service statistics for the stats endpoint.
func (s *Service) GetStats() map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]any{
		"started":          s.started,
		"worker_count":     s.workerCount,
		"queue_capacity":   s.queueSize,
		"default_strategy": s.defaultStrategy,
	}
	if s.started {
		stats["uptime_seconds"] = int(time.Since(s.startedAt).Seconds())
		stats["queue_size"] = s.jobQueue.Len(context.Background())
		stats["results_stored"] = s.results.Count(context.Background())
	}
	return stats
}
