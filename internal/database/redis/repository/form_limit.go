package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fieldforce/internal/core"
	client "fieldforce/internal/database/client"
	"fieldforce/internal/telemetry"

	"github.com/redis/go-redis/v9"
)

type FormLimitRepository struct {
	trace  *telemetry.Trace
	client *redis.Client
}

func NewFormLimitRepository(trace *telemetry.Trace, client *client.RedisClient) *FormLimitRepository {
	return &FormLimitRepository{trace: trace, client: client.Client()}
}

var ErrFormLimitExceeded = errors.New("form submission limit exceeded")

// Consume 消耗公開表單一次配額（來源 IP × 表單名稱為一個窗口）。
// 回傳：remaining（剩餘次數）、ttlSec（剩餘秒數）、err（超限為 ErrFormLimitExceeded）
func (repository *FormLimitRepository) Consume(
	contextValue context.Context,
	formName string,
	clientIP string,
	windowSeconds int64,
	limitCount int,
) (remainingCount int, timeToLiveSeconds int64, returnedError error) {

	contextValue, span, endSpan := repository.trace.WithSpan(contextValue)
	defer func() {
		endSpan(returnedError)
	}()

	traceMetadata := core.TraceFormLimitMeta{
		Form:      formName,
		ClientIP:  clientIP,
		Limit:     limitCount,
		WindowSec: windowSeconds,
		Op:        "consume",
	}
	repository.trace.ApplyTraceAttributes(span, traceMetadata)

	redisKey := repository.buildKey(formName, clientIP)
	expirationDuration := time.Duration(windowSeconds) * time.Second

	// 嘗試初始化：SETNX key value EX expiration
	wasSet, setError := repository.client.SetNX(
		contextValue,
		redisKey,
		limitCount-1, // 本次消耗一次，所以初始值 = 總額-1
		expirationDuration,
	).Result()
	if setError != nil {
		returnedError = setError
		return 0, 0, returnedError
	}
	if wasSet {
		remainingCount = limitCount - 1
		if remainingCount < 0 {
			remainingCount = 0
			returnedError = ErrFormLimitExceeded
		}
		timeToLiveSeconds = windowSeconds
		traceMetadata.Remaining, traceMetadata.Blocked = remainingCount, returnedError != nil
		repository.trace.ApplyTraceAttributes(span, traceMetadata)
		return remainingCount, timeToLiveSeconds, returnedError
	}

	// Key 已存在 → 執行 DECR 扣一次
	newValue, decrError := repository.client.Decr(contextValue, redisKey).Result()
	if decrError != nil {
		returnedError = decrError
		return 0, 0, returnedError
	}

	ttlDuration, _ := repository.client.TTL(contextValue, redisKey).Result()
	if ttlDuration > 0 {
		timeToLiveSeconds = int64(ttlDuration.Seconds())
	}

	if newValue < 0 {
		remainingCount = 0
		returnedError = ErrFormLimitExceeded
		traceMetadata.Remaining, traceMetadata.Blocked = remainingCount, true
		repository.trace.ApplyTraceAttributes(span, traceMetadata)
		return remainingCount, timeToLiveSeconds, returnedError
	}

	remainingCount = int(newValue)
	traceMetadata.Remaining = remainingCount
	repository.trace.ApplyTraceAttributes(span, traceMetadata)
	return remainingCount, timeToLiveSeconds, nil
}

// GetCurrent 查詢目前剩餘次數與剩餘 TTL（秒）。若無紀錄回傳滿額。
func (repository *FormLimitRepository) GetCurrent(
	contextValue context.Context,
	formName string,
	clientIP string,
	limitCount int,
) (remainingCount int, timeToLiveSeconds int64, returnedError error) {

	contextValue, span, endSpan := repository.trace.WithSpan(contextValue)
	defer func() { endSpan(returnedError) }()

	traceMetadata := core.TraceFormLimitMeta{
		Form:     formName,
		ClientIP: clientIP,
		Op:       "get",
	}
	repository.trace.ApplyTraceAttributes(span, traceMetadata)

	redisKey := repository.buildKey(formName, clientIP)

	// 用 pipeline 併發 GET + TTL 減少往返
	pipeline := repository.client.Pipeline()
	getCommand := pipeline.Get(contextValue, redisKey)
	ttlCommand := pipeline.TTL(contextValue, redisKey)
	if _, execError := pipeline.Exec(contextValue); execError != nil && execError != redis.Nil {
		returnedError = execError
		return 0, 0, returnedError
	}

	value, getError := getCommand.Int()
	if getError == redis.Nil {
		remainingCount = limitCount
		timeToLiveSeconds = 0
		traceMetadata.Remaining = remainingCount
		repository.trace.ApplyTraceAttributes(span, traceMetadata)
		return remainingCount, timeToLiveSeconds, nil
	}
	if getError != nil {
		returnedError = getError
		return 0, 0, returnedError
	}

	ttlDuration := ttlCommand.Val()
	if ttlDuration > 0 {
		timeToLiveSeconds = int64(ttlDuration.Seconds())
	}

	remainingCount = value
	if remainingCount < 0 {
		remainingCount = 0
	}

	traceMetadata.Remaining = remainingCount
	repository.trace.ApplyTraceAttributes(span, traceMetadata)
	return remainingCount, timeToLiveSeconds, nil
}

// buildKey 建構限流用的 Redis key
func (r *FormLimitRepository) buildKey(formName string, clientIP string) string {
	return fmt.Sprintf("%s:%s:%s:%s", core.RedisKeyServerName, core.RedisKeyFormLimit, formName, clientIP)
}
