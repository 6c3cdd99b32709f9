package dto

import (
	"fieldforce/internal/pkg/request"
)

type SubmitCallLogDto struct {
	ClientName   string `json:"clientName" binding:"required,min=2"`
	ClientMobile string `json:"clientMobile" binding:"required,min=10,max=15"`
	Topic        string `json:"topic" binding:"required"`
	Duration     string `json:"duration" binding:"required,numeric"` // 分鐘
}

func (dto SubmitCallLogDto) GetMessages() request.ValidatorMessages {
	return request.ValidatorMessages{
		"ClientName.required":   "client name is required",
		"ClientName.min":        "client name must be at least 2 characters",
		"ClientMobile.required": "client mobile is required",
		"ClientMobile.min":      "client mobile must be at least 10 digits",
		"ClientMobile.max":      "client mobile must be at most 15 digits",
		"Topic.required":        "topic is required",
		"Duration.required":     "duration is required",
		"Duration.numeric":      "duration must be a number",
	}
}
