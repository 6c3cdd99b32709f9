package dto

import (
	"fieldforce/internal/pkg/request"
)

// RegisterEmployeeDto 員工註冊；UserID 必須以設定的網域結尾，
// 在呼叫 Identity Bridge 前先擋下來
type RegisterEmployeeDto struct {
	Name          string `json:"name" binding:"required,min=2"`
	UserID        string `json:"userId" binding:"required,email"`
	Password      string `json:"password" binding:"required,min=6"`
	Mobile        string `json:"mobile" binding:"required,min=10,max=15"`
	PersonalEmail string `json:"personalEmail" binding:"required,email"`
	District      string `json:"district" binding:"required"`
	State         string `json:"state" binding:"required"`
	Pincode       string `json:"pincode" binding:"required,numeric,len=6"`
}

func (dto RegisterEmployeeDto) GetMessages() request.ValidatorMessages {
	return request.ValidatorMessages{
		"Name.required":          "name is required",
		"Name.min":               "name must be at least 2 characters",
		"UserID.required":        "login id is required",
		"UserID.email":           "login id must be an email address",
		"Password.required":      "password is required",
		"Password.min":           "password must be at least 6 characters",
		"Mobile.required":        "mobile number is required",
		"Mobile.min":             "mobile number must be at least 10 digits",
		"Mobile.max":             "mobile number must be at most 15 digits",
		"PersonalEmail.required": "personal email is required",
		"PersonalEmail.email":    "personal email format is invalid",
		"District.required":      "district is required",
		"State.required":         "state is required",
		"Pincode.required":       "pincode is required",
		"Pincode.numeric":        "pincode must be numeric",
		"Pincode.len":            "pincode must be exactly 6 digits",
	}
}

// UpdateEmployeeStatusDto 管理端啟用/停用
type UpdateEmployeeStatusDto struct {
	Status string `json:"status" binding:"required,oneof=active inactive"`
}

func (dto UpdateEmployeeStatusDto) GetMessages() request.ValidatorMessages {
	return request.ValidatorMessages{
		"Status.required": "status is required",
		"Status.oneof":    "status must be active or inactive",
	}
}

// LoginDto 員工登入：前端先向 Identity Bridge 換 ID token，
// 這裡驗證後簽發服務自己的 JWT
type LoginDto struct {
	IDToken string `json:"idToken" binding:"required"`
}

func (dto LoginDto) GetMessages() request.ValidatorMessages {
	return request.ValidatorMessages{
		"IDToken.required": "id token is required",
	}
}
