package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/floorplan-service/internal/domain"
	"github.com/floorplan-service/internal/domain/repository"
)

const listingKeyPrefix = "listing:"

// ListingCacheKey - ключ листинга этажа в кеше
func ListingCacheKey(buildingID, floorID int64) string {
	return fmt.Sprintf("%s%d:%d", listingKeyPrefix, buildingID, floorID)
}

func buildingListingPrefix(buildingID int64) string {
	return fmt.Sprintf("%s%d:", listingKeyPrefix, buildingID)
}

// ListingCache - cache-aside для листингов этажей.
// Ошибки кеша не прерывают запрос: они логируются, данные берутся из БД.
type ListingCache struct {
	cache  repository.CacheRepository
	ttl    time.Duration
	logger *zap.Logger
}

// NewListingCache создает кеш листингов
func NewListingCache(cache repository.CacheRepository, ttl time.Duration, logger *zap.Logger) *ListingCache {
	return &ListingCache{
		cache:  cache,
		ttl:    ttl,
		logger: logger,
	}
}

// Get возвращает листинг из кеша; false - промах
func (c *ListingCache) Get(ctx context.Context, buildingID, floorID int64) (*domain.FloorListing, bool) {
	key := ListingCacheKey(buildingID, floorID)

	data, err := c.cache.Get(ctx, key)
	if err != nil {
		c.logger.Warn("Failed to read listing from cache", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	if data == nil {
		return nil, false
	}

	var listing domain.FloorListing
	if err := json.Unmarshal(data, &listing); err != nil {
		c.logger.Warn("Corrupted listing in cache", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	return &listing, true
}

// Set кладёт листинг в кеш
func (c *ListingCache) Set(ctx context.Context, listing *domain.FloorListing) {
	key := ListingCacheKey(listing.BuildingID, listing.FloorID)

	data, err := json.Marshal(listing)
	if err != nil {
		c.logger.Warn("Failed to marshal listing", zap.String("key", key), zap.Error(err))
		return
	}
	if err := c.cache.Set(ctx, key, data, c.ttl); err != nil {
		c.logger.Warn("Failed to cache listing", zap.String("key", key), zap.Error(err))
	}
}

// InvalidateFloor удаляет листинг одного этажа
func (c *ListingCache) InvalidateFloor(ctx context.Context, buildingID, floorID int64) error {
	key := ListingCacheKey(buildingID, floorID)
	if err := c.cache.Delete(ctx, key); err != nil {
		c.logger.Warn("Failed to invalidate listing", zap.String("key", key), zap.Error(err))
		return err
	}
	return nil
}

// InvalidateBuilding удаляет листинги всех этажей корпуса
func (c *ListingCache) InvalidateBuilding(ctx context.Context, buildingID int64) error {
	prefix := buildingListingPrefix(buildingID)
	n, err := c.cache.DeleteByPrefix(ctx, prefix)
	if err != nil {
		c.logger.Warn("Failed to invalidate building listings", zap.String("prefix", prefix), zap.Error(err))
		return err
	}

	c.logger.Debug("Building listings invalidated",
		zap.Int64("building_id", buildingID),
		zap.Int("keys", n))
	return nil
}
