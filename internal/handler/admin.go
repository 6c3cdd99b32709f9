package handler

import (
	"fieldforce/internal/core"
	"fieldforce/internal/dto"
	"fieldforce/internal/pkg/response"
	"fieldforce/internal/service"
	"fieldforce/internal/telemetry"
	"fieldforce/utils/validate"

	"github.com/gin-gonic/gin"
)

// AdminHandler 後台端點；所有路由都在 AdminKey 中介層之後
type AdminHandler struct {
	trace             *telemetry.Trace
	jobService        *service.JobService
	appService        *service.ApplicationService
	employeeService   *service.EmployeeService
	attendanceService *service.AttendanceService
	taskService       *service.TaskService
	membershipService *service.MembershipService
	newsletterService *service.NewsletterService
	reportService     *service.ReportService
	activityService   *service.ActivityService
}

func NewAdminHandler(
	trace *telemetry.Trace,
	jobService *service.JobService,
	appService *service.ApplicationService,
	employeeService *service.EmployeeService,
	attendanceService *service.AttendanceService,
	taskService *service.TaskService,
	membershipService *service.MembershipService,
	newsletterService *service.NewsletterService,
	reportService *service.ReportService,
	activityService *service.ActivityService,
) *AdminHandler {
	return &AdminHandler{
		trace:             trace,
		jobService:        jobService,
		appService:        appService,
		employeeService:   employeeService,
		attendanceService: attendanceService,
		taskService:       taskService,
		membershipService: membershipService,
		newsletterService: newsletterService,
		reportService:     reportService,
		activityService:   activityService,
	}
}

func (h *AdminHandler) adminID(c *gin.Context) string {
	return c.GetString("adminID")
}

// CreateJob 刊登職缺
// @Summary 刊登職缺
// @Tags Admin
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param body body dto.CreateJobDto true "職缺內容"
// @Success 201 {object} model.Job
// @Failure 400 {object} response.Response
// @Router /admin/jobs [post]
func (h *AdminHandler) CreateJob(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	var req dto.CreateJobDto
	if cause, err := validate.BindAndValidate(c, &req); err != nil {
		end(cause)
		response.AbortWithError(c, err)
		return
	}

	job, err := h.jobService.CreateJob(ctx, &req)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}

	_ = h.activityService.Ship(ctx, h.adminID(c), "posted", "job", job.ID.Hex(), job.Title)
	response.Create(c, job)
}

// ListApplications 依職缺檢視應徵
// @Summary 應徵列表
// @Tags Admin
// @Security ApiKeyAuth
// @Produce json
// @Param jobID path string true "Job ID"
// @Success 200 {array} model.Application
// @Router /admin/jobs/{jobID}/applications [get]
func (h *AdminHandler) ListApplications(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	jobID, cause, err := validate.ParseObjectID(c, "jobID")
	if err != nil {
		end(cause)
		response.AbortWithError(c, err)
		return
	}

	applications, err := h.appService.ListByJob(ctx, jobID)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, applications)
}

// ListEmployees 員工列表
// @Summary 員工列表
// @Tags Admin
// @Security ApiKeyAuth
// @Produce json
// @Param page query int false "頁碼"
// @Param size query int false "每頁筆數"
// @Success 200 {array} model.Employee
// @Router /admin/employees [get]
func (h *AdminHandler) ListEmployees(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	page, _ := validate.GetInt64Query(c, "page", 1)
	size, _ := validate.GetInt64Query(c, "size", 20)

	employees, err := h.employeeService.List(ctx, page, size)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, employees)
}

// UpdateEmployeeStatus 啟用/停用員工
// @Summary 更新員工狀態
// @Tags Admin
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param employeeID path string true "Employee ID"
// @Param body body dto.UpdateEmployeeStatusDto true "狀態"
// @Success 200 {object} response.Response
// @Router /admin/employees/{employeeID}/status [patch]
func (h *AdminHandler) UpdateEmployeeStatus(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	employeeID := c.Param("employeeID")

	var req dto.UpdateEmployeeStatusDto
	if cause, err := validate.BindAndValidate(c, &req); err != nil {
		end(cause)
		response.AbortWithError(c, err)
		return
	}

	if err := h.employeeService.UpdateStatus(ctx, employeeID, core.EmployeeStatus(req.Status)); err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}

	_ = h.activityService.Ship(ctx, h.adminID(c), "status_changed", "employee", employeeID, req.Status)
	response.Success(c, gin.H{"employeeId": employeeID, "status": req.Status})
}

// EmployeeReport 跨集合員工報表
// @Summary 員工報表
// @Tags Admin
// @Security ApiKeyAuth
// @Produce json
// @Param employeeID path string true "Employee ID"
// @Success 200 {object} service.EmployeeReport
// @Router /admin/employees/{employeeID}/report [get]
func (h *AdminHandler) EmployeeReport(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	report, err := h.reportService.Assemble(ctx, c.Param("employeeID"))
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, report)
}

// AttendanceLog 出勤日誌（預設今天）
// @Summary 出勤日誌
// @Tags Admin
// @Security ApiKeyAuth
// @Produce json
// @Param date query string false "YYYY-MM-DD"
// @Success 200 {array} model.Attendance
// @Router /admin/attendance [get]
func (h *AdminHandler) AttendanceLog(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	var req dto.AttendanceQueryDto
	if cause, err := validate.BindQueryAndValidate(c, &req); err != nil {
		end(cause)
		response.AbortWithError(c, err)
		return
	}

	records, err := h.attendanceService.ListByDate(ctx, req.Date)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, records)
}

// AssignTask 指派工作
// @Summary 指派工作
// @Tags Admin
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param body body dto.AssignTaskDto true "工作內容"
// @Success 201 {object} model.Task
// @Router /admin/tasks [post]
func (h *AdminHandler) AssignTask(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	var req dto.AssignTaskDto
	if cause, err := validate.BindAndValidate(c, &req); err != nil {
		end(cause)
		response.AbortWithError(c, err)
		return
	}

	task, err := h.taskService.Assign(ctx, &req)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}

	_ = h.activityService.Ship(ctx, h.adminID(c), "assigned", "task", task.ID.Hex(), task.Title)
	response.Create(c, task)
}

// ListMemberships 會員申請列表
// @Summary 會員申請列表
// @Tags Admin
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {array} model.Membership
// @Router /admin/memberships [get]
func (h *AdminHandler) ListMemberships(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	memberships, err := h.membershipService.List(ctx)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, memberships)
}

// VerifyMembership 驗證會員（冪等）
// @Summary 驗證會員
// @Tags Admin
// @Security ApiKeyAuth
// @Produce json
// @Param membershipID path string true "Membership ID"
// @Success 200 {object} model.Membership
// @Failure 404 {object} response.Response
// @Router /admin/memberships/{membershipID}/verify [post]
func (h *AdminHandler) VerifyMembership(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	membershipID, cause, err := validate.ParseObjectID(c, "membershipID")
	if err != nil {
		end(cause)
		response.AbortWithError(c, err)
		return
	}

	membership, err := h.membershipService.Verify(ctx, membershipID)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}

	_ = h.activityService.Ship(ctx, h.adminID(c), "verified", "membership", membershipID.Hex(), membership.Email)
	response.Success(c, membership)
}

// ListNewsletter 電子報訂閱列表
// @Summary 電子報訂閱列表
// @Tags Admin
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {array} model.NewsletterSubscriber
// @Router /admin/newsletter [get]
func (h *AdminHandler) ListNewsletter(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	subscribers, err := h.newsletterService.List(ctx)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, subscribers)
}

// RecentActivity 最近動態（固定 10 筆）
// @Summary 最近動態
// @Tags Admin
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {array} model.ActivityLog
// @Router /admin/activity [get]
func (h *AdminHandler) RecentActivity(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	logs, err := h.activityService.ListRecent(ctx)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, logs)
}
