package dto

import (
	"fieldforce/internal/pkg/request"
)

type SubscribeNewsletterDto struct {
	Email string `json:"email" binding:"required,email"`
}

func (dto SubscribeNewsletterDto) GetMessages() request.ValidatorMessages {
	return request.ValidatorMessages{
		"Email.required": "email is required",
		"Email.email":    "email format is invalid",
	}
}
