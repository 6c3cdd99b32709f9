package middleware

import (
	"errors"

	"fieldforce/config"
	"fieldforce/internal/core"
	redisRepo "fieldforce/internal/database/redis/repository"
	cErr "fieldforce/internal/pkg/error"
	"fieldforce/internal/pkg/response"
	"fieldforce/internal/telemetry"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// FormLimit 公開表單限流；來源 IP × 表單名稱一個窗口，
// Redis 不可用時整個保護層回 503，不放行
type FormLimit struct {
	logger        *zap.Logger
	trace         *telemetry.Trace
	metric        *telemetry.Metric
	formLimitRepo *redisRepo.FormLimitRepository
	limitCount    int
	windowSeconds int64
}

func NewFormLimit(
	logger *zap.Logger,
	trace *telemetry.Trace,
	metric *telemetry.Metric,
	config *config.Configuration,
	formLimitRepo *redisRepo.FormLimitRepository,
) *FormLimit {
	limitCount := 10
	windowSeconds := int64(3600)
	if config.FormLimit.Limit > 0 {
		limitCount = config.FormLimit.Limit
	}
	if config.FormLimit.WindowSeconds > 0 {
		windowSeconds = config.FormLimit.WindowSeconds
	}
	return &FormLimit{
		logger:        logger,
		trace:         trace,
		metric:        metric,
		formLimitRepo: formLimitRepo,
		limitCount:    limitCount,
		windowSeconds: windowSeconds,
	}
}

// Handler 掛在公開表單路由前，formName 區分不同表單的配額
func (middleware *FormLimit) Handler(formName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, span, end := middleware.trace.WithSpan(c.Request.Context(), string(core.SpanFormLimitMiddlware))

		remaining, _, consumeError := middleware.formLimitRepo.Consume(
			ctx, formName, c.ClientIP(), middleware.windowSeconds, middleware.limitCount)

		meta := core.TraceFormLimitMeta{
			Form:      formName,
			ClientIP:  c.ClientIP(),
			Limit:     middleware.limitCount,
			WindowSec: middleware.windowSeconds,
			Remaining: remaining,
			Op:        "consume",
		}

		if consumeError != nil {
			if errors.Is(consumeError, redisRepo.ErrFormLimitExceeded) {
				meta.Blocked = true
				middleware.trace.ApplyTraceAttributes(span, meta)
				if middleware.metric.FormLimitTotal != nil {
					middleware.metric.FormLimitTotal.WithLabelValues(formName).Inc()
				}
				cause := cErr.RateLimitExceeded("Too many submissions, please try again later")
				response.AbortWithError(c, cause)
				end(cause)
				return
			}

			middleware.trace.ApplyTraceAttributes(span, meta)
			middleware.logger.Error("form limiter unavailable", zap.String("form", formName), zap.Error(consumeError))
			cause := cErr.FormLimiterUnavailable("Submission protection unavailable")
			response.AbortWithError(c, cause)
			end(consumeError)
			return
		}

		middleware.trace.ApplyTraceAttributes(span, meta)
		end(nil)
		c.Next()
	}
}
