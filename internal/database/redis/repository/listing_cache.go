package repository

import (
	"context"
	"encoding/json"
	"time"

	"fieldforce/internal/core"
	client "fieldforce/internal/database/client"
	"fieldforce/internal/telemetry"

	"github.com/redis/go-redis/v9"
)

// ListingCacheRepository 後台列表的短 TTL 快取；寫入走 best-effort，
// 快取失效不影響主流程
type ListingCacheRepository struct {
	trace  *telemetry.Trace
	client *redis.Client
}

func NewListingCacheRepository(trace *telemetry.Trace, client *client.RedisClient) *ListingCacheRepository {
	return &ListingCacheRepository{trace: trace, client: client.Client()}
}

// Get 取出快取並反序列化到 destination；miss 回傳 (false, nil)
func (repository *ListingCacheRepository) Get(
	contextValue context.Context,
	key core.RedisKey,
	destination interface{},
) (hit bool, returnedError error) {

	contextValue, span, endSpan := repository.trace.WithSpan(contextValue)
	defer func() { endSpan(returnedError) }()

	traceMetadata := core.TraceListingCacheMeta{Key: string(key), Op: "get"}

	payload, getError := repository.client.Get(contextValue, repository.buildKey(key)).Bytes()
	if getError == redis.Nil {
		repository.trace.ApplyTraceAttributes(span, traceMetadata)
		return false, nil
	}
	if getError != nil {
		returnedError = getError
		return false, returnedError
	}

	if unmarshalError := json.Unmarshal(payload, destination); unmarshalError != nil {
		returnedError = unmarshalError
		return false, returnedError
	}

	traceMetadata.Hit = true
	repository.trace.ApplyTraceAttributes(span, traceMetadata)
	return true, nil
}

// Set 序列化後寫入快取，帶 TTL
func (repository *ListingCacheRepository) Set(
	contextValue context.Context,
	key core.RedisKey,
	value interface{},
	timeToLive time.Duration,
) (returnedError error) {

	contextValue, span, endSpan := repository.trace.WithSpan(contextValue)
	defer func() { endSpan(returnedError) }()

	traceMetadata := core.TraceListingCacheMeta{
		Key:    string(key),
		Op:     "set",
		TTLSec: int64(timeToLive.Seconds()),
	}
	repository.trace.ApplyTraceAttributes(span, traceMetadata)

	payload, marshalError := json.Marshal(value)
	if marshalError != nil {
		returnedError = marshalError
		return returnedError
	}

	returnedError = repository.client.Set(contextValue, repository.buildKey(key), payload, timeToLive).Err()
	return returnedError
}

// Invalidate 寫入路徑成功後呼叫，確保下次讀取看到最新資料
func (repository *ListingCacheRepository) Invalidate(
	contextValue context.Context,
	keys ...core.RedisKey,
) (returnedError error) {

	contextValue, span, endSpan := repository.trace.WithSpan(contextValue)
	defer func() { endSpan(returnedError) }()

	for _, key := range keys {
		traceMetadata := core.TraceListingCacheMeta{Key: string(key), Op: "invalidate"}
		repository.trace.ApplyTraceAttributes(span, traceMetadata)
		if delError := repository.client.Del(contextValue, repository.buildKey(key)).Err(); delError != nil {
			returnedError = delError
		}
	}
	return returnedError
}

func (r *ListingCacheRepository) buildKey(key core.RedisKey) string {
	return string(core.RedisKeyServerName) + ":" + string(key)
}
