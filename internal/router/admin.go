package router

import (
	"fieldforce/internal/handler"
	"fieldforce/internal/middleware"

	"github.com/gin-gonic/gin"
)

type AdminRouter struct {
	adminHandler *handler.AdminHandler
	adminKey     *middleware.AdminKey
}

func NewAdminRouter(
	adminHandler *handler.AdminHandler,
	adminKey *middleware.AdminKey,
) *AdminRouter {
	return &AdminRouter{
		adminHandler: adminHandler,
		adminKey:     adminKey,
	}
}

func (ar *AdminRouter) RegisterRoutes(r *gin.Engine) {
	admin := r.Group("/admin", ar.adminKey.Handler())
	{
		admin.POST("/jobs", ar.adminHandler.CreateJob)
		admin.GET("/jobs/:jobID/applications", ar.adminHandler.ListApplications)

		admin.GET("/employees", ar.adminHandler.ListEmployees)
		admin.PATCH("/employees/:employeeID/status", ar.adminHandler.UpdateEmployeeStatus)
		admin.GET("/employees/:employeeID/report", ar.adminHandler.EmployeeReport)

		admin.GET("/attendance", ar.adminHandler.AttendanceLog)
		admin.POST("/tasks", ar.adminHandler.AssignTask)

		admin.GET("/memberships", ar.adminHandler.ListMemberships)
		admin.POST("/memberships/:membershipID/verify", ar.adminHandler.VerifyMembership)

		admin.GET("/newsletter", ar.adminHandler.ListNewsletter)
		admin.GET("/activity", ar.adminHandler.RecentActivity)
	}
}
