package handler

import (
	"io"

	"fieldforce/internal/core"
	"fieldforce/internal/dto"
	"fieldforce/internal/middleware"
	"fieldforce/internal/pkg/response"
	"fieldforce/internal/service"
	"fieldforce/internal/telemetry"
	"fieldforce/utils/validate"

	"github.com/gin-gonic/gin"
)

// EmployeeHandler 員工自助端點；Employee 中介層已放入
// employeeID / employeeName，handler 顯式取出往下傳
type EmployeeHandler struct {
	trace             *telemetry.Trace
	metric            *telemetry.Metric
	dsrService        *service.DSRService
	callLogService    *service.CallLogService
	earningService    *service.EarningService
	attendanceService *service.AttendanceService
	taskService       *service.TaskService
	reportService     *service.ReportService
}

func NewEmployeeHandler(
	trace *telemetry.Trace,
	metric *telemetry.Metric,
	dsrService *service.DSRService,
	callLogService *service.CallLogService,
	earningService *service.EarningService,
	attendanceService *service.AttendanceService,
	taskService *service.TaskService,
	reportService *service.ReportService,
) *EmployeeHandler {
	return &EmployeeHandler{
		trace:             trace,
		metric:            metric,
		dsrService:        dsrService,
		callLogService:    callLogService,
		earningService:    earningService,
		attendanceService: attendanceService,
		taskService:       taskService,
		reportService:     reportService,
	}
}

func (h *EmployeeHandler) identity(c *gin.Context) (string, string) {
	return c.GetString(middleware.ContextEmployeeIDKey), c.GetString(middleware.ContextEmployeeNameKey)
}

// SubmitDSR 每日工作報告
// @Summary 送出 DSR
// @Tags Employee
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body dto.SubmitDSRDto true "報告內容"
// @Success 201 {object} model.DSR
// @Failure 400 {object} response.Response
// @Router /employee/dsr [post]
func (h *EmployeeHandler) SubmitDSR(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	employeeID, employeeName := h.identity(c)

	var req dto.SubmitDSRDto
	if cause, err := validate.BindAndValidate(c, &req); err != nil {
		h.countFail("dsr", "validation")
		end(cause)
		response.AbortWithError(c, err)
		return
	}

	report, err := h.dsrService.Submit(ctx, employeeID, employeeName, &req)
	if err != nil {
		h.countFail("dsr", "rejected")
		end(err)
		response.AbortWithError(c, err)
		return
	}

	h.countSuccess("dsr")
	response.Create(c, report)
}

// ListDSR 我的報告（含衍生距離）
// @Summary DSR 列表
// @Tags Employee
// @Security BearerAuth
// @Produce json
// @Success 200 {array} service.DSRView
// @Router /employee/dsr [get]
func (h *EmployeeHandler) ListDSR(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	employeeID, _ := h.identity(c)

	views, err := h.dsrService.ListMine(ctx, employeeID)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, views)
}

// SubmitCallLog 通話紀錄
// @Summary 送出通話紀錄
// @Tags Employee
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body dto.SubmitCallLogDto true "通話內容"
// @Success 201 {object} model.CallLog
// @Router /employee/call-logs [post]
func (h *EmployeeHandler) SubmitCallLog(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	employeeID, employeeName := h.identity(c)

	var req dto.SubmitCallLogDto
	if cause, err := validate.BindAndValidate(c, &req); err != nil {
		h.countFail("call_log", "validation")
		end(cause)
		response.AbortWithError(c, err)
		return
	}

	callLog, err := h.callLogService.Submit(ctx, employeeID, employeeName, &req)
	if err != nil {
		h.countFail("call_log", "rejected")
		end(err)
		response.AbortWithError(c, err)
		return
	}

	h.countSuccess("call_log")
	response.Create(c, callLog)
}

// ListCallLogs 我的通話紀錄
// @Summary 通話紀錄列表
// @Tags Employee
// @Security BearerAuth
// @Produce json
// @Success 200 {array} model.CallLog
// @Router /employee/call-logs [get]
func (h *EmployeeHandler) ListCallLogs(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	employeeID, _ := h.identity(c)

	callLogs, err := h.callLogService.ListMine(ctx, employeeID)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, callLogs)
}

// SubmitEarnings 批次收入，全部成功才算成功
// @Summary 送出收入（批次）
// @Tags Employee
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body dto.SubmitEarningsDto true "收入明細"
// @Success 201 {array} model.Earning
// @Router /employee/earnings [post]
func (h *EmployeeHandler) SubmitEarnings(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	employeeID, employeeName := h.identity(c)

	var req dto.SubmitEarningsDto
	if cause, err := validate.BindAndValidate(c, &req); err != nil {
		h.countFail("earnings", "validation")
		end(cause)
		response.AbortWithError(c, err)
		return
	}

	earnings, err := h.earningService.SubmitBatch(ctx, employeeID, employeeName, &req)
	if err != nil {
		h.countFail("earnings", "rejected")
		end(err)
		response.AbortWithError(c, err)
		return
	}

	h.countSuccess("earnings")
	response.Create(c, earnings)
}

// ListEarnings 我的收入與合計
// @Summary 收入列表
// @Tags Employee
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /employee/earnings [get]
func (h *EmployeeHandler) ListEarnings(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	employeeID, _ := h.identity(c)

	earnings, err := h.earningService.ListMine(ctx, employeeID)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}

	var total float64
	for _, earning := range earnings {
		total += earning.Amount
	}
	response.Success(c, gin.H{"items": earnings, "total": total})
}

// MarkAttendance 打卡（一天一次）
// @Summary 打卡
// @Tags Employee
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body dto.MarkAttendanceDto true "出勤狀態"
// @Success 201 {object} model.Attendance
// @Failure 409 {object} response.Response
// @Router /employee/attendance [post]
func (h *EmployeeHandler) MarkAttendance(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	employeeID, employeeName := h.identity(c)

	var req dto.MarkAttendanceDto
	if cause, err := validate.BindAndValidate(c, &req); err != nil {
		h.countFail("attendance", "validation")
		end(cause)
		response.AbortWithError(c, err)
		return
	}

	attendance, err := h.attendanceService.Mark(ctx, employeeID, employeeName, &req)
	if err != nil {
		h.countFail("attendance", "rejected")
		end(err)
		response.AbortWithError(c, err)
		return
	}

	h.countSuccess("attendance")
	response.Create(c, attendance)
}

// ListAttendance 我的出勤
// @Summary 出勤列表
// @Tags Employee
// @Security BearerAuth
// @Produce json
// @Success 200 {array} model.Attendance
// @Router /employee/attendance [get]
func (h *EmployeeHandler) ListAttendance(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	employeeID, _ := h.identity(c)

	records, err := h.attendanceService.ListMine(ctx, employeeID)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, records)
}

// ListPendingTasks 未完成工作
// @Summary 未完成工作
// @Tags Employee
// @Security BearerAuth
// @Produce json
// @Success 200 {array} model.Task
// @Router /employee/tasks [get]
func (h *EmployeeHandler) ListPendingTasks(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	employeeID, _ := h.identity(c)

	tasks, err := h.taskService.ListPending(ctx, employeeID)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, tasks)
}

// UpdateTaskStatus 員工更新自己工作的狀態
// @Summary 更新工作狀態
// @Tags Employee
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param taskID path string true "Task ID"
// @Param body body dto.UpdateTaskStatusDto true "狀態"
// @Success 200 {object} response.Response
// @Router /employee/tasks/{taskID}/status [patch]
func (h *EmployeeHandler) UpdateTaskStatus(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	employeeID, _ := h.identity(c)

	taskID, cause, err := validate.ParseObjectID(c, "taskID")
	if err != nil {
		end(cause)
		response.AbortWithError(c, err)
		return
	}

	var req dto.UpdateTaskStatusDto
	if cause, err := validate.BindAndValidate(c, &req); err != nil {
		end(cause)
		response.AbortWithError(c, err)
		return
	}

	if err := h.taskService.UpdateStatus(ctx, taskID, employeeID, core.TaskStatus(req.Status)); err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, gin.H{"taskId": taskID.Hex(), "status": req.Status})
}

// WatchPendingTasks SSE 即時清單：先推一份完整快照，
// 之後每次異動重送整份；client 斷線即釋放訂閱
// @Summary 未完成工作即時串流（SSE）
// @Tags Employee
// @Security BearerAuth
// @Produce text/event-stream
// @Success 200 {string} string "event stream"
// @Router /employee/tasks/live [get]
func (h *EmployeeHandler) WatchPendingTasks(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	employeeID, _ := h.identity(c)

	snapshots, err := h.taskService.WatchPending(c.Request.Context(), employeeID)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}

	if h.metric.LiveSubscribersGauge != nil {
		h.metric.LiveSubscribersGauge.WithLabelValues("employee_tasks_live").Inc()
		defer h.metric.LiveSubscribersGauge.WithLabelValues("employee_tasks_live").Dec()
	}

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	c.Stream(func(w io.Writer) bool {
		select {
		case snapshot, open := <-snapshots:
			if !open {
				return false
			}
			c.SSEvent("tasks", snapshot)
			return true
		case <-ctx.Done():
			return false
		}
	})
}

// Dashboard 自助儀表板：計數 + 收入合計
// @Summary 儀表板
// @Tags Employee
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /employee/dashboard [get]
func (h *EmployeeHandler) Dashboard(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	employeeID, _ := h.identity(c)

	dsrCount, callCount, earningCount, err := h.reportService.Counts(ctx, employeeID)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}

	total, err := h.earningService.SumMine(ctx, employeeID)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}

	response.Success(c, gin.H{
		"dsrCount":      dsrCount,
		"callCount":     callCount,
		"earningCount":  earningCount,
		"earningsTotal": total,
	})
}

func (h *EmployeeHandler) countSuccess(form string) {
	if h.metric.SubmissionsTotal != nil {
		h.metric.SubmissionsTotal.WithLabelValues(form).Inc()
	}
}

func (h *EmployeeHandler) countFail(form, reason string) {
	if h.metric.SubmissionsFailTotal != nil {
		h.metric.SubmissionsFailTotal.WithLabelValues(form, reason).Inc()
	}
}
