package repository

import (
	"github.com/google/wire"
)

// 統一管理所有 Redis repository
type RedisRepository struct {
	formLimitRepo    *FormLimitRepository
	listingCacheRepo *ListingCacheRepository
}

// 建立 Redis repository 物件
func NewRedisRepository(
	formLimitRepo *FormLimitRepository,
	listingCacheRepo *ListingCacheRepository,
) *RedisRepository {
	return &RedisRepository{
		formLimitRepo:    formLimitRepo,
		listingCacheRepo: listingCacheRepo,
	}
}

// Wire 依賴提供
var ProviderSet = wire.NewSet(
	NewFormLimitRepository,
	NewListingCacheRepository,
	NewRedisRepository)
