package dto

import (
	"fieldforce/internal/core"
	"fieldforce/internal/pkg/request"
)

// CreateJobDto 後台刊登職缺
type CreateJobDto struct {
	Title         string   `json:"title" binding:"required,min=3"`
	Company       string   `json:"company" binding:"required"`
	Location      string   `json:"location" binding:"required"`
	Type          string   `json:"type" binding:"required,oneof=full-time part-time contract internship"`
	WorkMode      string   `json:"workMode" binding:"required,oneof=on-site remote hybrid"`
	ExperienceMin int      `json:"experienceMin" binding:"min=0"`
	ExperienceMax int      `json:"experienceMax" binding:"min=0"`
	SalaryMin     int      `json:"salaryMin" binding:"min=0"`
	SalaryMax     int      `json:"salaryMax" binding:"min=0"`
	Department    string   `json:"department" binding:"required"`
	Tags          []string `json:"tags" binding:"omitempty"`
	Description   string   `json:"description" binding:"required,min=10"`
}

func (dto CreateJobDto) GetMessages() request.ValidatorMessages {
	return request.ValidatorMessages{
		"Title.required":       "title is required",
		"Title.min":            "title must be at least 3 characters",
		"Company.required":     "company is required",
		"Location.required":    "location is required",
		"Type.required":        "job type is required",
		"Type.oneof":           "job type must be one of full-time, part-time, contract, internship",
		"WorkMode.required":    "work mode is required",
		"WorkMode.oneof":       "work mode must be one of on-site, remote, hybrid",
		"Department.required":  "department is required",
		"Description.required": "description is required",
		"Description.min":      "description must be at least 10 characters",
	}
}

func (dto CreateJobDto) JobType() core.JobType {
	return core.JobType(dto.Type)
}

func (dto CreateJobDto) JobWorkMode() core.WorkMode {
	return core.WorkMode(dto.WorkMode)
}

type JobListQueryDto struct {
	Page int64 `form:"page,default=1" binding:"min=1"`
	Size int64 `form:"size,default=20" binding:"min=1,max=100"`
}

func (dto JobListQueryDto) GetMessages() request.ValidatorMessages {
	return request.ValidatorMessages{
		"Page.min": "page must be at least 1",
		"Size.min": "size must be at least 1",
		"Size.max": "size must be at most 100",
	}
}
