package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/akozyreva/marketing-kit/internal/logger"
	"github.com/redis/go-redis/v9"
)

// ImageCacheRepository caches image search results in Redis so repeated
// generations for the same product do not hit the search provider again.
type ImageCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached URLs
}

// NewImageCacheRepository creates a new repository instance with the given TTL.
func NewImageCacheRepository(client *redis.Client, expiration time.Duration) *ImageCacheRepository {
	return &ImageCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// GetImageURL fetches a cached image URL for the given product query.
func (r *ImageCacheRepository) GetImageURL(ctx context.Context, query string) (string, error) {
	key := fmt.Sprintf("image_url:%s", query)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		logger.Log.Infow(
			"key", key,
			"result", val,
			"error", err,
		)
		if err == redis.Nil {
			return "", fmt.Errorf("image URL not found in cache for %q", query)
		}
		return "", err
	}

	logger.Log.Infow(
		"key", key,
		"result", val,
		"error", nil,
	)

	return val, nil
}

// SetImageURL caches an image URL for a product query with expiration.
func (r *ImageCacheRepository) SetImageURL(ctx context.Context, query, imageURL string) error {
	key := fmt.Sprintf("image_url:%s", query)
	err := r.client.Set(ctx, key, imageURL, r.exp).Err()

	logger.Log.Infow(
		"key", key,
		"url", imageURL,
		"result", "ok",
		"error", err,
	)

	return err
}
