package service

import (
	"context"
	"time"

	"fieldforce/config"
	"fieldforce/internal/core"
	mongoRepo "fieldforce/internal/database/mongodb/repository"
	"fieldforce/internal/dto"
	"fieldforce/internal/identity"
	cErr "fieldforce/internal/pkg/error"
	"fieldforce/internal/telemetry"

	"github.com/golang-jwt/jwt/v4"
)

type AuthService struct {
	trace        *telemetry.Trace
	bridge       identity.Bridge
	employeeRepo employeeStore
	secretKey    []byte
	tokenTTL     time.Duration
}

func NewAuthService(trace *telemetry.Trace, conf *config.Configuration, bridge identity.Bridge, employeeRepo *mongoRepo.EmployeeRepository) *AuthService {
	tokenTTL := 12 * time.Hour
	if conf.Identity.TokenTTLHours > 0 {
		tokenTTL = time.Duration(conf.Identity.TokenTTLHours) * time.Hour
	}
	return &AuthService{
		trace:        trace,
		bridge:       bridge,
		employeeRepo: employeeRepo,
		secretKey:    []byte(conf.App.SecretKey),
		tokenTTL:     tokenTTL,
	}
}

type LoginResult struct {
	Token       string    `json:"token"`
	EmployeeID  string    `json:"employeeId"`
	DisplayName string    `json:"displayName"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

// Login 驗證 Identity Bridge 的 ID token，確認員工在職後簽發服務 JWT
func (s *AuthService) Login(ctx context.Context, loginDto *dto.LoginDto) (_ *LoginResult, returnedError error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	uid, verifyError := s.bridge.VerifyToken(ctx, loginDto.IDToken)
	if verifyError != nil {
		returnedError = cErr.Unauthorized("invalid or expired credentials")
		return nil, returnedError
	}

	employee, getError := s.employeeRepo.GetByID(ctx, uid)
	if getError != nil {
		returnedError = cErr.Unauthorized("no employee account for this identity")
		return nil, returnedError
	}
	if employee.Status != core.EmployeeActive {
		returnedError = cErr.Forbidden("employee account is inactive")
		return nil, returnedError
	}

	expiresAt := time.Now().Add(s.tokenTTL)
	claims := core.Claims{
		EmployeeID:  employee.ID,
		DisplayName: employee.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   employee.ID,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token, signError := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secretKey)
	if signError != nil {
		returnedError = cErr.InternalServer("failed to sign token")
		return nil, returnedError
	}

	return &LoginResult{
		Token:       token,
		EmployeeID:  employee.ID,
		DisplayName: employee.Name,
		ExpiresAt:   expiresAt,
	}, nil
}

// ParseToken 員工中介層驗證 JWT 用
func (s *AuthService) ParseToken(tokenString string) (*core.Claims, error) {
	claims := &core.Claims{}
	token, parseError := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, cErr.Unauthorized("unexpected signing method")
		}
		return s.secretKey, nil
	})
	if parseError != nil || !token.Valid {
		return nil, cErr.Unauthorized("invalid or expired token")
	}
	return claims, nil
}
