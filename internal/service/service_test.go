package service

import (
	"context"
	"time"

	"fieldforce/internal/core"
	"fieldforce/internal/identity"
	"fieldforce/internal/telemetry"
)

// 測試共用：沒有 TracerProvider 的 Trace 會退回 noop tracer
func newTestTrace() *telemetry.Trace {
	return &telemetry.Trace{}
}

// noopCache 滿足 listingCache，不做任何快取
type noopCache struct{}

func (noopCache) Get(contextValue context.Context, key core.RedisKey, destination interface{}) (bool, error) {
	return false, nil
}

func (noopCache) Set(contextValue context.Context, key core.RedisKey, value interface{}, timeToLive time.Duration) error {
	return nil
}

func (noopCache) Invalidate(contextValue context.Context, keys ...core.RedisKey) error {
	return nil
}

// fakeBridge 記錄呼叫順序，錯誤可注入
type fakeBridge struct {
	createError  error
	deleteError  error
	createdUIDs  []string
	deletedUIDs  []string
	verifyResult string
	verifyError  error
}

func (b *fakeBridge) CreateAccount(contextValue context.Context, loginID string, password string) (*identity.Identity, error) {
	if b.createError != nil {
		return nil, b.createError
	}
	uid := "uid-" + loginID
	b.createdUIDs = append(b.createdUIDs, uid)
	return &identity.Identity{UID: uid, LoginID: loginID}, nil
}

func (b *fakeBridge) DeleteAccount(contextValue context.Context, uid string) error {
	b.deletedUIDs = append(b.deletedUIDs, uid)
	return b.deleteError
}

func (b *fakeBridge) VerifyToken(contextValue context.Context, idToken string) (string, error) {
	if b.verifyError != nil {
		return "", b.verifyError
	}
	return b.verifyResult, nil
}
