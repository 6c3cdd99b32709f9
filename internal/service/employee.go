package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"fieldforce/config"
	"fieldforce/internal/core"
	"fieldforce/internal/database/mongodb/model"
	mongoRepo "fieldforce/internal/database/mongodb/repository"
	redisRepo "fieldforce/internal/database/redis/repository"
	"fieldforce/internal/dto"
	"fieldforce/internal/identity"
	cErr "fieldforce/internal/pkg/error"
	"fieldforce/internal/pkg/request"
	"fieldforce/internal/telemetry"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type employeeStore interface {
	Create(contextValue context.Context, employee *model.Employee) (*model.Employee, error)
	GetByID(contextValue context.Context, employeeIdentifier string) (*model.Employee, error)
	List(contextValue context.Context, listOptions core.ListOptions) ([]*model.Employee, error)
	UpdateStatus(contextValue context.Context, employeeIdentifier string, status core.EmployeeStatus) (int64, error)
	UpdateLastSeen(contextValue context.Context, employeeIdentifier string, seenAt time.Time) (int64, error)
	DeleteByID(contextValue context.Context, employeeIdentifier string) error
}

type EmployeeService struct {
	trace        *telemetry.Trace
	logger       *zap.Logger
	employeeRepo employeeStore
	bridge       identity.Bridge
	cache        listingCache
	loginDomain  string
	listingTTL   time.Duration
}

func NewEmployeeService(
	trace *telemetry.Trace,
	logger *zap.Logger,
	conf *config.Configuration,
	employeeRepo *mongoRepo.EmployeeRepository,
	bridge identity.Bridge,
	cache *redisRepo.ListingCacheRepository,
) *EmployeeService {
	listingTTL := 60 * time.Second
	if conf != nil && conf.FormLimit.ListingTTLSeconds > 0 {
		listingTTL = time.Duration(conf.FormLimit.ListingTTLSeconds) * time.Second
	}
	return &EmployeeService{
		trace:        trace,
		logger:       logger,
		employeeRepo: employeeRepo,
		bridge:       bridge,
		cache:        cache,
		loginDomain:  conf.Identity.LoginDomain,
		listingTTL:   listingTTL,
	}
}

// Register 兩階段註冊：先開 Identity Bridge 帳號，再落員工文件。
// 網域檢查不過不會碰到橋接端（零副作用）。第二階段失敗時
// best-effort 刪掉剛開的帳號做補償，刪失敗記 log 留人工對帳。
func (s *EmployeeService) Register(ctx context.Context, registerDto *dto.RegisterEmployeeDto) (_ *model.Employee, returnedError error) {
	ctx, span, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	if s.loginDomain != "" && !strings.HasSuffix(registerDto.UserID, s.loginDomain) {
		returnedError = request.FieldError("userId", "login id must end with "+s.loginDomain)
		return nil, returnedError
	}

	account, createAccountError := s.bridge.CreateAccount(ctx, registerDto.UserID, registerDto.Password)
	if createAccountError != nil {
		returnedError = s.mapBridgeError(createAccountError)
		return nil, returnedError
	}

	s.trace.ApplyTraceAttributes(span, core.TraceIdentityMeta{Op: "create", LoginID: registerDto.UserID, UID: account.UID})

	employee := &model.Employee{
		ID:            account.UID,
		Name:          registerDto.Name,
		UserID:        registerDto.UserID,
		Mobile:        registerDto.Mobile,
		PersonalEmail: registerDto.PersonalEmail,
		District:      registerDto.District,
		State:         registerDto.State,
		Pincode:       registerDto.Pincode,
		Status:        core.EmployeeActive,
		CreatedAt:     time.Now().UTC(),
	}

	created, createError := s.employeeRepo.Create(ctx, employee)
	if createError != nil {
		// 補償清理：避免留下無對應文件的孤兒帳號
		if deleteError := s.bridge.DeleteAccount(ctx, account.UID); deleteError != nil {
			s.logger.Error("registration compensation failed, orphan identity account left behind",
				zap.String("uid", account.UID),
				zap.String("userId", registerDto.UserID),
				zap.Error(deleteError))
		}
		returnedError = cErr.DatabaseError("database Register error")
		return nil, returnedError
	}

	_ = s.cache.Invalidate(ctx, core.RedisKeyListingEmployees)

	return created, nil
}

func (s *EmployeeService) mapBridgeError(err error) error {
	switch {
	case errors.Is(err, identity.ErrAccountExists):
		return cErr.IdentityExists("this login id is already in use")
	case errors.Is(err, identity.ErrWeakPassword):
		return cErr.WeakCredential("password does not meet the policy")
	default:
		return cErr.IdentityBridgeError("identity service error")
	}
}

func (s *EmployeeService) GetByID(ctx context.Context, employeeID string) (_ *model.Employee, returnedError error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	employee, getError := s.employeeRepo.GetByID(ctx, employeeID)
	if getError != nil {
		if errors.Is(getError, mongo.ErrNoDocuments) {
			returnedError = cErr.NotFound("employee not found")
			return nil, returnedError
		}
		returnedError = cErr.DatabaseError("database GetByID error")
		return nil, returnedError
	}
	return employee, nil
}

// List 後台員工列表，createdAt desc；第一頁走快取
func (s *EmployeeService) List(ctx context.Context, page, size int64) (_ []*model.Employee, returnedError error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	cacheable := page == 1

	if cacheable {
		var cached []*model.Employee
		if hit, _ := s.cache.Get(ctx, core.RedisKeyListingEmployees, &cached); hit {
			return cached, nil
		}
	}

	employees, listError := s.employeeRepo.List(ctx, core.ListOptions{Page: page, Size: size})
	if listError != nil {
		returnedError = cErr.DatabaseError("database List error")
		return nil, returnedError
	}

	if cacheable {
		_ = s.cache.Set(ctx, core.RedisKeyListingEmployees, employees, s.listingTTL)
	}

	return employees, nil
}

// UpdateStatus 管理端啟用/停用
func (s *EmployeeService) UpdateStatus(ctx context.Context, employeeID string, status core.EmployeeStatus) (returnedError error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	if _, updateError := s.employeeRepo.UpdateStatus(ctx, employeeID, status); updateError != nil {
		if errors.Is(updateError, mongo.ErrNoDocuments) {
			returnedError = cErr.NotFound("employee not found")
			return returnedError
		}
		returnedError = cErr.DatabaseError("database UpdateStatus error")
		return returnedError
	}

	_ = s.cache.Invalidate(ctx, core.RedisKeyListingEmployees)
	return nil
}

// TouchLastSeen 員工中介層每次放行時更新 lastSeen；失敗不影響請求
func (s *EmployeeService) TouchLastSeen(ctx context.Context, employeeID string) error {
	_, updateError := s.employeeRepo.UpdateLastSeen(ctx, employeeID, time.Now().UTC())
	return updateError
}
