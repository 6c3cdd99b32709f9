package identity

import (
	"context"
	"errors"
)

// Identity 身分橋接端建立成功後回傳的帳號資料；UID 即員工文件 _id
type Identity struct {
	UID     string
	LoginID string
}

var (
	ErrAccountExists  = errors.New("identity: account already exists")
	ErrWeakPassword   = errors.New("identity: password does not meet policy")
	ErrAccountMissing = errors.New("identity: account not found")
	ErrInvalidToken   = errors.New("identity: token is invalid or expired")
)

// Bridge 員工帳號的身分橋接端。註冊第一階段先在這裡開帳號，
// 第二階段才落地員工文件；落地失敗時用 DeleteAccount 做補償清理。
type Bridge interface {
	CreateAccount(contextValue context.Context, loginID string, password string) (*Identity, error)
	DeleteAccount(contextValue context.Context, uid string) error
	// VerifyToken 驗證橋接端簽發的 ID token，回傳 UID；登入流程使用
	VerifyToken(contextValue context.Context, idToken string) (string, error)
}
