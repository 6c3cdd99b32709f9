package middleware

import (
	"fieldforce/config"
	"fieldforce/internal/core"
	cErr "fieldforce/internal/pkg/error"
	"fieldforce/internal/pkg/response"
	"fieldforce/internal/telemetry"
	"fieldforce/utils/apikey"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const ContextAdminIDKey = "adminID"

// AdminKey 後台路由守門；X-API-Key 為 HMAC 簽章的管理端金鑰
type AdminKey struct {
	logger *zap.Logger
	trace  *telemetry.Trace
	secret string
}

func NewAdminKey(
	logger *zap.Logger,
	trace *telemetry.Trace,
	config *config.Configuration,
) *AdminKey {
	return &AdminKey{
		logger: logger,
		trace:  trace,
		secret: config.App.SecretKey,
	}
}

func (middleware *AdminKey) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		_, span, end := middleware.trace.WithSpan(c.Request.Context(), string(core.SpanAdminKeyMiddleware))

		adminApiKey, from := middleware.readAdminKey(c)
		meta := core.TraceAdminKeyMeta{
			Where:    from,
			ClientIP: c.ClientIP(),
		}

		if adminApiKey == "" {
			meta.Status = "missing_api_key"
			middleware.trace.ApplyTraceAttributes(span, meta)
			cause := cErr.UnauthorizedAdminKey("Missing API Key")
			response.AbortWithError(c, cause)
			end(cause)
			return
		}

		payload, err := apikey.ParseAndVerifyAdminKey(adminApiKey, middleware.secret)
		if err != nil {
			meta.Status = "invalid_api_key"
			middleware.trace.ApplyTraceAttributes(span, meta)
			cause := cErr.UnauthorizedAdminKey("Invalid API Key")
			response.AbortWithError(c, cause)
			end(err)
			return
		}

		meta.AdminID = payload.AdminID
		meta.Status = "ok"
		middleware.trace.ApplyTraceAttributes(span, meta)
		end(nil)

		c.Set(ContextAdminIDKey, payload.AdminID)
		c.Next()
	}
}

// readAdminKey 依序嘗試 X-API-Key header 與 api_key query
func (middleware *AdminKey) readAdminKey(c *gin.Context) (string, string) {
	if key := c.GetHeader("X-API-Key"); key != "" {
		return key, "header"
	}
	if key := c.Query("api_key"); key != "" {
		return key, "query"
	}
	return "", ""
}
