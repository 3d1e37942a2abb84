package main

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const cacheTTL = 5 * time.Minute

// AnalysisCache implements cache-aside for historical-analysis reads.
type AnalysisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewAnalysisCache(addr string) (*AnalysisCache, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &AnalysisCache{client: client, ttl: cacheTTL}, nil
}

func (c *AnalysisCache) Close() error {
	return c.client.Close()
}

// Get returns the cached rows for an article id, or nil on a miss.
func (c *AnalysisCache) Get(ctx context.Context, articleID string) ([]map[string]any, error) {
	key := fmt.Sprintf("article:%s", articleID)

	data, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get error: %w", err)
	}

	var rows []map[string]any
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached rows: %w", err)
	}
	return rows, nil
}

// Set stores the rows for an article id. Empty results are cached too,
// so repeated lookups for unknown ids stay off the database.
func (c *AnalysisCache) Set(ctx context.Context, articleID string, rows []map[string]any) error {
	key := fmt.Sprintf("article:%s", articleID)

	if rows == nil {
		rows = []map[string]any{}
	}
	data, err := json.Marshal(rows)
	if err != nil {
		return fmt.Errorf("failed to marshal rows: %w", err)
	}

	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set error: %w", err)
	}
	return nil
}
