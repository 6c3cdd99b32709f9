package dto

import (
	"fieldforce/internal/pkg/request"
)

// SubmitDSRDto 每日工作報告；KM 欄位收字串，數字解析失敗算驗證錯誤
type SubmitDSRDto struct {
	Description  string `json:"description" binding:"required,min=5"`
	HasTravelled bool   `json:"hasTravelled"`
	OpeningKm    string `json:"openingKm" binding:"omitempty,numeric"`
	ClosingKm    string `json:"closingKm" binding:"omitempty,numeric"`
}

func (dto SubmitDSRDto) GetMessages() request.ValidatorMessages {
	return request.ValidatorMessages{
		"Description.required": "description is required",
		"Description.min":      "description must be at least 5 characters",
		"OpeningKm.numeric":    "opening km must be a number",
		"ClosingKm.numeric":    "closing km must be a number",
	}
}
