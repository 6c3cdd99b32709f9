package router

import (
	"fieldforce/internal/handler"
	"fieldforce/internal/middleware"

	"github.com/gin-gonic/gin"
)

type EmployeeRouter struct {
	employeeHandler    *handler.EmployeeHandler
	employeeMiddleware *middleware.Employee
}

func NewEmployeeRouter(
	employeeHandler *handler.EmployeeHandler,
	employeeMiddleware *middleware.Employee,
) *EmployeeRouter {
	return &EmployeeRouter{
		employeeHandler:    employeeHandler,
		employeeMiddleware: employeeMiddleware,
	}
}

func (er *EmployeeRouter) RegisterRoutes(r *gin.Engine) {
	employee := r.Group("/employee", er.employeeMiddleware.Handler())
	{
		employee.POST("/dsr", er.employeeHandler.SubmitDSR)
		employee.GET("/dsr", er.employeeHandler.ListDSR)

		employee.POST("/call-logs", er.employeeHandler.SubmitCallLog)
		employee.GET("/call-logs", er.employeeHandler.ListCallLogs)

		employee.POST("/earnings", er.employeeHandler.SubmitEarnings)
		employee.GET("/earnings", er.employeeHandler.ListEarnings)

		employee.POST("/attendance", er.employeeHandler.MarkAttendance)
		employee.GET("/attendance", er.employeeHandler.ListAttendance)

		employee.GET("/tasks", er.employeeHandler.ListPendingTasks)
		employee.GET("/tasks/live", er.employeeHandler.WatchPendingTasks)
		employee.PATCH("/tasks/:taskID/status", er.employeeHandler.UpdateTaskStatus)

		employee.GET("/dashboard", er.employeeHandler.Dashboard)
	}
}
