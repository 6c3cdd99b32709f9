package middleware

import (
	"strings"

	"fieldforce/internal/core"
	cErr "fieldforce/internal/pkg/error"
	"fieldforce/internal/pkg/response"
	"fieldforce/internal/service"
	"fieldforce/internal/telemetry"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	ContextEmployeeIDKey   = "employeeID"
	ContextEmployeeNameKey = "employeeName"
)

// Employee 員工自助路由守門；Bearer JWT → 載入員工 → 在職檢查，
// 通過後把 employeeId / displayName 放進 gin context，
// 下游 handler 一律顯式帶 context 呼叫 service
type Employee struct {
	logger          *zap.Logger
	trace           *telemetry.Trace
	authService     *service.AuthService
	employeeService *service.EmployeeService
}

func NewEmployee(
	logger *zap.Logger,
	trace *telemetry.Trace,
	authService *service.AuthService,
	employeeService *service.EmployeeService,
) *Employee {
	return &Employee{
		logger:          logger,
		trace:           trace,
		authService:     authService,
		employeeService: employeeService,
	}
}

func (middleware *Employee) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, span, end := middleware.trace.WithSpan(c.Request.Context(), string(core.SpanEmployeeMiddleware))

		meta := core.TraceEmployeeMiddlewareMeta{}

		tokenString := middleware.readBearerToken(c)
		if tokenString == "" {
			meta.Status = "missing_token"
			middleware.trace.ApplyTraceAttributes(span, meta)
			cause := cErr.Unauthorized("Missing bearer token")
			response.AbortWithError(c, cause)
			end(cause)
			return
		}

		claims, parseError := middleware.authService.ParseToken(tokenString)
		if parseError != nil {
			meta.Status = "invalid_token"
			middleware.trace.ApplyTraceAttributes(span, meta)
			response.AbortWithError(c, parseError)
			end(parseError)
			return
		}

		employee, getError := middleware.employeeService.GetByID(ctx, claims.EmployeeID)
		if getError != nil {
			meta.Status = "employee_not_found"
			middleware.trace.ApplyTraceAttributes(span, meta)
			cause := cErr.Unauthorized("Employee account not found")
			response.AbortWithError(c, cause)
			end(getError)
			return
		}

		meta.EmployeeID = employee.ID
		meta.EmployeeStatus = string(employee.Status)

		if employee.Status != core.EmployeeActive {
			meta.Status = "inactive"
			middleware.trace.ApplyTraceAttributes(span, meta)
			cause := cErr.Forbidden("Employee account is inactive")
			response.AbortWithError(c, cause)
			end(cause)
			return
		}

		// last seen 更新失敗不擋請求
		if touchError := middleware.employeeService.TouchLastSeen(ctx, employee.ID); touchError == nil {
			meta.UpdatedLastSeen = true
		}

		meta.Status = "ok"
		middleware.trace.ApplyTraceAttributes(span, meta)
		end(nil)

		c.Set(ContextEmployeeIDKey, employee.ID)
		c.Set(ContextEmployeeNameKey, employee.Name)
		c.Next()
	}
}

func (middleware *Employee) readBearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return ""
}
