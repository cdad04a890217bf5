package lead

import (
	"context"
	"encoding/json"

	"scopex/models"
	"scopex/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	hospitalBucket = "leads:hospital"
	campBucket     = "leads:camp"
)

// LocalLeadCache is the node-local half of the registry: an always-available
// bucket of lead records per category. A missing or corrupt bucket reads as
// empty; it must never block the caller.
type LocalLeadCache struct {
	client *redis.Client
}

func NewLocalLeadCache(client *redis.Client) *LocalLeadCache {
	return &LocalLeadCache{client: client}
}

func bucketKey(category models.LeadCategory) string {
	if category == models.CategoryCamp {
		return campBucket
	}
	return hospitalBucket
}

// LoadCategory returns the cached records for a category. Absent or
// malformed data yields an empty slice.
func (c *LocalLeadCache) LoadCategory(ctx context.Context, category models.LeadCategory) []models.LeadRecord {
	data, err := c.client.Get(ctx, bucketKey(category)).Result()
	if err == redis.Nil {
		return nil
	}
	if err != nil {
		utils.GetLogger().Warn("lead cache read failed, treating as empty",
			zap.String("category", string(category)), zap.Error(err))
		return nil
	}

	var records []models.LeadRecord
	if err := json.Unmarshal([]byte(data), &records); err != nil {
		utils.GetLogger().Warn("lead cache bucket malformed, treating as empty",
			zap.String("category", string(category)), zap.Error(err))
		return nil
	}
	return records
}

// SaveCategory replaces the cached records for a category.
func (c *LocalLeadCache) SaveCategory(ctx context.Context, category models.LeadCategory, records []models.LeadRecord) error {
	data, err := json.Marshal(records)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, bucketKey(category), data, 0).Err()
}
