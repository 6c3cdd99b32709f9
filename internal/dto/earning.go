package dto

import (
	"fieldforce/internal/pkg/request"
)

type EarningItemDto struct {
	Description string `json:"description" binding:"required,min=2"`
	Amount      string `json:"amount" binding:"required,numeric"` // > 0，解析後再檢查
}

// SubmitEarningsDto 批次提交，至少一筆；每筆各自落一份文件
type SubmitEarningsDto struct {
	Items []EarningItemDto `json:"items" binding:"required,min=1,dive"`
}

func (dto SubmitEarningsDto) GetMessages() request.ValidatorMessages {
	return request.ValidatorMessages{
		"Items.required":       "at least one earning item is required",
		"Items.min":            "at least one earning item is required",
		"Description.required": "description is required",
		"Description.min":      "description must be at least 2 characters",
		"Amount.required":      "amount is required",
		"Amount.numeric":       "amount must be a number",
	}
}
