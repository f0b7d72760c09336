package services

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const scanBatch = 100

// CacheService drops cached comment responses so readers see seeded data.
type CacheService struct {
	redis  *redis.Client
	prefix string
}

func NewCacheService(redisURL, prefix string) (*CacheService, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opt)

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &CacheService{redis: client, prefix: prefix}, nil
}

// InvalidateComments deletes every key under the configured prefix.
func (s *CacheService) InvalidateComments(ctx context.Context) error {
	iter := s.redis.Scan(ctx, 0, keyPattern(s.prefix), scanBatch).Iterator()

	batch := make([]string, 0, scanBatch)
	deleted := 0
	for iter.Next(ctx) {
		batch = append(batch, iter.Val())
		if len(batch) == scanBatch {
			if err := s.redis.Del(ctx, batch...).Err(); err != nil {
				return fmt.Errorf("failed to delete cache keys: %w", err)
			}
			deleted += len(batch)
			batch = batch[:0]
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan cache keys: %w", err)
	}
	if len(batch) > 0 {
		if err := s.redis.Del(ctx, batch...).Err(); err != nil {
			return fmt.Errorf("failed to delete cache keys: %w", err)
		}
		deleted += len(batch)
	}

	log.Info().Str("prefix", s.prefix).Int("deleted", deleted).Msg("invalidated comment cache")
	return nil
}

// Close closes the Redis connection
func (s *CacheService) Close() error {
	return s.redis.Close()
}

// keyPattern escapes glob metacharacters in prefix for SCAN MATCH.
func keyPattern(prefix string) string {
	escaped := make([]rune, 0, len(prefix)+1)
	for _, r := range prefix {
		switch r {
		case '*', '?', '[', ']', '\\':
			escaped = append(escaped, '\\')
		}
		escaped = append(escaped, r)
	}
	return string(escaped) + "*"
}
