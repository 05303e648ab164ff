package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	backend "github.com/redis/go-redis/v9"

	"github.com/aretw0/statespace/pkg/domain"
)

const defaultPrefix = "statespace:"

// neverExpires is the index score of plans saved without a TTL.
const neverExpires = 1 << 53

// Store implements ports.PlanStore using Redis.
// Each plan is a JSON string key; a sorted set indexes the stored IDs,
// scored by expiration time so expired entries can be pruned lazily.
type Store struct {
	client *backend.Client
	prefix string
	ttl    time.Duration
}

// Option configures a Store.
type Option func(*Store)

// WithTTL makes stored plans expire after ttl. Zero keeps them forever.
func WithTTL(ttl time.Duration) Option {
	return func(s *Store) {
		s.ttl = ttl
	}
}

// WithPrefix sets the key namespace (default "statespace:").
func WithPrefix(prefix string) Option {
	return func(s *Store) {
		s.prefix = prefix
	}
}

// New connects to the Redis server at addr.
func New(addr string, opts ...Option) *Store {
	client := backend.NewClient(&backend.Options{Addr: addr})
	return NewFromClient(client, opts...)
}

// NewFromClient wraps an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Store {
	s := &Store{
		client: client,
		prefix: defaultPrefix,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Client exposes the underlying connection, e.g. to share it with a Locker.
func (s *Store) Client() *backend.Client {
	return s.client
}

func (s *Store) key(puzzleID string) string {
	return s.prefix + "plan:" + puzzleID
}

func (s *Store) indexKey() string {
	return s.prefix + "plans"
}

// Save persists the report and indexes its ID.
func (s *Store) Save(ctx context.Context, puzzleID string, report *domain.Report) error {
	data, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to marshal plan: %w", err)
	}

	score := float64(neverExpires)
	if s.ttl > 0 {
		score = float64(time.Now().Add(s.ttl).Unix())
	}

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, s.key(puzzleID), data, s.ttl)
	pipe.ZAdd(ctx, s.indexKey(), backend.Z{Score: score, Member: puzzleID})
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save plan %s: %w", puzzleID, err)
	}
	return nil
}

// Load retrieves a report by puzzle ID.
func (s *Store) Load(ctx context.Context, puzzleID string) (*domain.Report, error) {
	data, err := s.client.Get(ctx, s.key(puzzleID)).Bytes()
	if err != nil {
		if errors.Is(err, backend.Nil) {
			return nil, domain.ErrPlanNotFound
		}
		return nil, fmt.Errorf("failed to load plan %s: %w", puzzleID, err)
	}

	var report domain.Report
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("failed to unmarshal plan %s: %w", puzzleID, err)
	}
	return &report, nil
}

// Delete removes a report and its index entry.
func (s *Store) Delete(ctx context.Context, puzzleID string) error {
	pipe := s.client.TxPipeline()
	pipe.Del(ctx, s.key(puzzleID))
	pipe.ZRem(ctx, s.indexKey(), puzzleID)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete plan %s: %w", puzzleID, err)
	}
	return nil
}

// List returns the IDs of stored plans, pruning expired index entries first.
func (s *Store) List(ctx context.Context) ([]string, error) {
	if s.ttl > 0 {
		now := strconv.FormatInt(time.Now().Unix(), 10)
		if err := s.client.ZRemRangeByScore(ctx, s.indexKey(), "-inf", "("+now).Err(); err != nil {
			return nil, fmt.Errorf("failed to prune plan index: %w", err)
		}
	}

	ids, err := s.client.ZRange(ctx, s.indexKey(), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}
	return ids, nil
}
