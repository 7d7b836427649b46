package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const draftBatchTTL = 24 * time.Hour

// DraftService caches generated batches in Redis so a user can come back
// to a batch without burning another generation.
type DraftService struct {
	redis *redis.Client
}

// NewDraftService creates a new DraftService instance
func NewDraftService(redisClient *redis.Client) *DraftService {
	return &DraftService{redis: redisClient}
}

// SaveBatch stores a draft batch under its ID with a 24h TTL.
func (s *DraftService) SaveBatch(ctx context.Context, batch *DraftBatch) error {
	data, err := json.Marshal(batch)
	if err != nil {
		return fmt.Errorf("failed to marshal batch: %w", err)
	}

	key := batchKey(batch.ID)
	if err := s.redis.Set(ctx, key, data, draftBatchTTL).Err(); err != nil {
		return fmt.Errorf("failed to save batch to Redis: %w", err)
	}

	return nil
}

// GetBatch retrieves a draft batch by ID.
func (s *DraftService) GetBatch(ctx context.Context, id string) (*DraftBatch, error) {
	data, err := s.redis.Get(ctx, batchKey(id)).Bytes()
	if err == redis.Nil {
		return nil, fmt.Errorf("%w: batch %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get batch from Redis: %w", err)
	}

	var batch DraftBatch
	if err := json.Unmarshal(data, &batch); err != nil {
		return nil, fmt.Errorf("failed to unmarshal batch: %w", err)
	}

	return &batch, nil
}

// DeleteBatch removes a draft batch.
func (s *DraftService) DeleteBatch(ctx context.Context, id string) error {
	if err := s.redis.Del(ctx, batchKey(id)).Err(); err != nil {
		return fmt.Errorf("failed to delete batch from Redis: %w", err)
	}
	return nil
}

func batchKey(id string) string {
	return fmt.Sprintf("recipe:batch:%s", id)
}
