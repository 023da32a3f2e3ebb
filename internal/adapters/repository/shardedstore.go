package repository

import (
	"context"
	"hash/fnv"
	"sync"
	"sync/atomic"

	"github.com/matchday/teamdraft/pkg/metrics"
)

// Default store configuration constants.
const (
	defaultShardCount = 8
)

// shard holds one slice of the result map under its own lock, so
// concurrent workers writing different jobs rarely contend.
type shard struct {
	mu      sync.RWMutex
	results map[string]Result
}

// ShardedStore implements Store with per-shard locking. Results are
// point lookups by job id; no ordering is maintained.
type ShardedStore struct {
	shardCount int
	shards     []*shard
	count      atomic.Int64
}

var _ Store = (*ShardedStore)(nil)

// NewShardedStore creates a sharded in-memory result store.
func NewShardedStore(opts ...Option) *ShardedStore {
	s := &ShardedStore{
		shardCount: defaultShardCount,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.shards = make([]*shard, s.shardCount)
	for i := range s.shards {
		s.shards[i] = &shard{results: make(map[string]Result)}
	}
	return s
}

func (s *ShardedStore) shardFor(jobID string) *shard {
	h := fnv.New32a()
	_, _ = h.Write([]byte(jobID))
	return s.shards[h.Sum32()%uint32(s.shardCount)]
}

// Put stores a result, replacing any previous result for the same job id.
func (s *ShardedStore) Put(_ context.Context, res Result) error {
	sh := s.shardFor(res.JobID)
	sh.mu.Lock()
	_, existed := sh.results[res.JobID]
	sh.results[res.JobID] = res
	sh.mu.Unlock()

	if !existed {
		s.count.Add(1)
	}
	metrics.UpdateResultsStored(int(s.count.Load()))
	return nil
}

// Get returns the result for a job id, or ErrNotFound.
func (s *ShardedStore) Get(_ context.Context, jobID string) (Result, error) {
	sh := s.shardFor(jobID)
	sh.mu.RLock()
	res, ok := sh.results[jobID]
	sh.mu.RUnlock()
	if !ok {
		return Result{}, ErrNotFound
	}
	return res, nil
}

// Count returns the number of results currently held.
func (s *ShardedStore) Count(_ context.Context) int {
	return int(s.count.Load())
}
