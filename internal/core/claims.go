package core

import "github.com/golang-jwt/jwt/v4"

type Claims struct {
	EmployeeID  string `json:"employee_id"`
	DisplayName string `json:"display_name"`
	jwt.RegisteredClaims
}
