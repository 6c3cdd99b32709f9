package dto

import (
	"fieldforce/internal/pkg/request"
)

// AssignTaskDto 管理端指派工作
type AssignTaskDto struct {
	EmployeeID  string `json:"employeeId" binding:"required"`
	Title       string `json:"title" binding:"required,min=3"`
	Description string `json:"description" binding:"required"`
	Priority    string `json:"priority" binding:"required,oneof=Low Medium High"`
}

func (dto AssignTaskDto) GetMessages() request.ValidatorMessages {
	return request.ValidatorMessages{
		"EmployeeID.required":  "employee id is required",
		"Title.required":       "title is required",
		"Title.min":            "title must be at least 3 characters",
		"Description.required": "description is required",
		"Priority.required":    "priority is required",
		"Priority.oneof":       "priority must be Low, Medium or High",
	}
}

type UpdateTaskStatusDto struct {
	Status string `json:"status" binding:"required,oneof=pending in-progress done"`
}

func (dto UpdateTaskStatusDto) GetMessages() request.ValidatorMessages {
	return request.ValidatorMessages{
		"Status.required": "status is required",
		"Status.oneof":    "status must be pending, in-progress or done",
	}
}
