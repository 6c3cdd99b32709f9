package dto

import (
	"fieldforce/internal/pkg/request"
)

// ApplyMembershipDto 公開會員申請；UTR 為付款交易參考號
type ApplyMembershipDto struct {
	Name     string `json:"name" binding:"required,min=2"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone" binding:"required,min=10,max=15"`
	District string `json:"district" binding:"required"`
	State    string `json:"state" binding:"required"`
	UTR      string `json:"utr" binding:"required,min=6"`
}

func (dto ApplyMembershipDto) GetMessages() request.ValidatorMessages {
	return request.ValidatorMessages{
		"Name.required":     "name is required",
		"Name.min":          "name must be at least 2 characters",
		"Email.required":    "email is required",
		"Email.email":       "email format is invalid",
		"Phone.required":    "phone is required",
		"Phone.min":         "phone must be at least 10 digits",
		"Phone.max":         "phone must be at most 15 digits",
		"District.required": "district is required",
		"State.required":    "state is required",
		"UTR.required":      "payment reference (UTR) is required",
		"UTR.min":           "payment reference (UTR) must be at least 6 characters",
	}
}
