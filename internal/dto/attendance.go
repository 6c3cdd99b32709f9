package dto

import (
	"fieldforce/internal/pkg/request"
)

type MarkAttendanceDto struct {
	Status string `json:"status" binding:"required,oneof=working leave"`
	Tasks  string `json:"tasks" binding:"omitempty,max=500"`
}

func (dto MarkAttendanceDto) GetMessages() request.ValidatorMessages {
	return request.ValidatorMessages{
		"Status.required": "status is required",
		"Status.oneof":    "status must be working or leave",
		"Tasks.max":       "tasks must be at most 500 characters",
	}
}

type AttendanceQueryDto struct {
	Date string `form:"date" binding:"omitempty,datetime=2006-01-02"`
}

func (dto AttendanceQueryDto) GetMessages() request.ValidatorMessages {
	return request.ValidatorMessages{
		"Date.datetime": "date must be in YYYY-MM-DD format",
	}
}
