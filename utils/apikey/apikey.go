package apikey

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"
	"time"
)

// AdminKeyPayload 是管理端 API Key 的內容
type AdminKeyPayload struct {
	AdminID  string `json:"adminID"`
	IssuedAt int64  `json:"issuedAt"`
}

// 產生管理端 API Key
func GenerateAdminKey(adminID, secret string) (string, error) {
	payload := AdminKeyPayload{
		AdminID:  adminID,
		IssuedAt: time.Now().Unix(),
	}
	pb, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}
	pb64 := base64.RawURLEncoding.EncodeToString(pb)
	sig := signShort(pb64, secret)
	return pb64 + "." + sig, nil
}

// 驗證並解析管理端 API Key
func ParseAndVerifyAdminKey(apiKey, secret string) (*AdminKeyPayload, error) {
	parts := strings.Split(apiKey, ".")
	if len(parts) != 2 {
		return nil, errors.New("invalid api key format")
	}
	pb64, sig := parts[0], parts[1]
	if !hmac.Equal([]byte(signShort(pb64, secret)), []byte(sig)) {
		return nil, errors.New("invalid api key signature")
	}
	pb, err := base64.RawURLEncoding.DecodeString(pb64)
	if err != nil {
		return nil, err
	}
	var pl AdminKeyPayload
	if err := json.Unmarshal(pb, &pl); err != nil {
		return nil, err
	}
	return &pl, nil
}

func signShort(payload, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(payload))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))[:24]
}
