package handler

import (
	"fieldforce/internal/dto"
	"fieldforce/internal/pkg/response"
	"fieldforce/internal/service"
	"fieldforce/internal/telemetry"
	"fieldforce/utils/validate"

	"github.com/gin-gonic/gin"
)

// AuthHandler 員工註冊與登入
type AuthHandler struct {
	trace           *telemetry.Trace
	metric          *telemetry.Metric
	authService     *service.AuthService
	employeeService *service.EmployeeService
	activityService *service.ActivityService
}

func NewAuthHandler(
	trace *telemetry.Trace,
	metric *telemetry.Metric,
	authService *service.AuthService,
	employeeService *service.EmployeeService,
	activityService *service.ActivityService,
) *AuthHandler {
	return &AuthHandler{
		trace:           trace,
		metric:          metric,
		authService:     authService,
		employeeService: employeeService,
		activityService: activityService,
	}
}

// Register 員工註冊（兩階段：帳號 → 員工文件）
// @Summary 員工註冊
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body dto.RegisterEmployeeDto true "註冊內容"
// @Success 201 {object} model.Employee
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	var req dto.RegisterEmployeeDto
	if cause, err := validate.BindAndValidate(c, &req); err != nil {
		h.countFail("registration", "validation")
		end(cause)
		response.AbortWithError(c, err)
		return
	}

	employee, err := h.employeeService.Register(ctx, &req)
	if err != nil {
		h.countFail("registration", "rejected")
		end(err)
		response.AbortWithError(c, err)
		return
	}

	h.countSuccess("registration")
	_ = h.activityService.Ship(ctx, employee.ID, "registered", "employee", employee.ID, employee.Name)
	response.Create(c, employee)
}

// Login 以 Identity Bridge 的 ID token 換服務 JWT
// @Summary 員工登入
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body dto.LoginDto true "ID token"
// @Success 200 {object} service.LoginResult
// @Failure 401 {object} response.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	var req dto.LoginDto
	if cause, err := validate.BindAndValidate(c, &req); err != nil {
		end(cause)
		response.AbortWithError(c, err)
		return
	}

	result, err := h.authService.Login(ctx, &req)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, result)
}

func (h *AuthHandler) countSuccess(form string) {
	if h.metric.SubmissionsTotal != nil {
		h.metric.SubmissionsTotal.WithLabelValues(form).Inc()
	}
}

func (h *AuthHandler) countFail(form, reason string) {
	if h.metric.SubmissionsFailTotal != nil {
		h.metric.SubmissionsFailTotal.WithLabelValues(form, reason).Inc()
	}
}
