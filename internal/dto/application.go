package dto

import (
	"mime/multipart"

	"fieldforce/internal/pkg/request"
)

// SubmitApplicationDto 公開求職表單，multipart（附履歷檔）
type SubmitApplicationDto struct {
	JobID          string                `form:"jobId" binding:"required"`
	FullName       string                `form:"fullName" binding:"required,min=2"`
	Email          string                `form:"email" binding:"required,email"`
	Mobile         string                `form:"mobile" binding:"required,min=10,max=15"`
	HighestDegree  string                `form:"highestDegree" binding:"required"`
	Institution    string                `form:"institution" binding:"required"`
	GraduationYear string                `form:"graduationYear" binding:"required,numeric"`
	ExperienceYrs  string                `form:"experienceYears" binding:"required,numeric"`
	CurrentCompany string                `form:"currentCompany"`
	Skills         []string              `form:"skills" binding:"required,min=1"`
	Languages      []string              `form:"languages" binding:"required,min=1"`
	ConfirmInfo    bool                  `form:"confirmInfo"`
	AgreeTerms     bool                  `form:"agreeTerms"`
	Resume         *multipart.FileHeader `form:"resume"`
}

func (dto SubmitApplicationDto) GetMessages() request.ValidatorMessages {
	return request.ValidatorMessages{
		"JobID.required":          "job id is required",
		"FullName.required":       "full name is required",
		"FullName.min":            "full name must be at least 2 characters",
		"Email.required":          "email is required",
		"Email.email":             "email format is invalid",
		"Mobile.required":         "mobile number is required",
		"Mobile.min":              "mobile number must be at least 10 digits",
		"Mobile.max":              "mobile number must be at most 15 digits",
		"HighestDegree.required":  "highest degree is required",
		"Institution.required":    "institution is required",
		"GraduationYear.required": "graduation year is required",
		"GraduationYear.numeric":  "graduation year must be a number",
		"ExperienceYrs.required":  "years of experience is required",
		"ExperienceYrs.numeric":   "years of experience must be a number",
		"Skills.required":         "at least one skill is required",
		"Skills.min":              "at least one skill is required",
		"Languages.required":      "at least one language is required",
		"Languages.min":           "at least one language is required",
	}
}

type ApplicationListQueryDto struct {
	JobID string `form:"jobId" binding:"required"`
}

func (dto ApplicationListQueryDto) GetMessages() request.ValidatorMessages {
	return request.ValidatorMessages{
		"JobID.required": "job id is required",
	}
}
