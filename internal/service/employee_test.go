package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"fieldforce/internal/core"
	"fieldforce/internal/database/mongodb/model"
	"fieldforce/internal/dto"
	"fieldforce/internal/identity"
	cErr "fieldforce/internal/pkg/error"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type fakeEmployeeStore struct {
	createError error
	created     []*model.Employee
	employees   map[string]*model.Employee
}

func (s *fakeEmployeeStore) Create(contextValue context.Context, employee *model.Employee) (*model.Employee, error) {
	if s.createError != nil {
		return nil, s.createError
	}
	s.created = append(s.created, employee)
	return employee, nil
}

func (s *fakeEmployeeStore) GetByID(contextValue context.Context, employeeIdentifier string) (*model.Employee, error) {
	if employee, ok := s.employees[employeeIdentifier]; ok {
		return employee, nil
	}
	return nil, mongo.ErrNoDocuments
}

func (s *fakeEmployeeStore) List(contextValue context.Context, listOptions core.ListOptions) ([]*model.Employee, error) {
	return nil, nil
}

func (s *fakeEmployeeStore) UpdateStatus(contextValue context.Context, employeeIdentifier string, status core.EmployeeStatus) (int64, error) {
	return 1, nil
}

func (s *fakeEmployeeStore) UpdateLastSeen(contextValue context.Context, employeeIdentifier string, seenAt time.Time) (int64, error) {
	return 1, nil
}

func (s *fakeEmployeeStore) DeleteByID(contextValue context.Context, employeeIdentifier string) error {
	return nil
}

func newEmployeeServiceForTest(store *fakeEmployeeStore, bridge *fakeBridge, loginDomain string) *EmployeeService {
	return &EmployeeService{
		trace:        newTestTrace(),
		logger:       zap.NewNop(),
		employeeRepo: store,
		bridge:       bridge,
		cache:        noopCache{},
		loginDomain:  loginDomain,
		listingTTL:   time.Minute,
	}
}

func registerDto(userID string) *dto.RegisterEmployeeDto {
	return &dto.RegisterEmployeeDto{
		Name:          "Asha",
		UserID:        userID,
		Password:      "secret-pass",
		Mobile:        "9876543210",
		PersonalEmail: "asha@example.com",
		District:      "Pune",
		State:         "MH",
		Pincode:       "411001",
	}
}

// 網域不符要在動到橋接端之前就擋下（零副作用）
func TestRegisterRejectsWrongDomainBeforeBridge(t *testing.T) {
	store := &fakeEmployeeStore{}
	bridge := &fakeBridge{}
	svc := newEmployeeServiceForTest(store, bridge, "@fieldforce.in")

	_, err := svc.Register(context.Background(), registerDto("asha@gmail.com"))
	if err == nil {
		t.Fatalf("expected domain validation error")
	}
	if len(bridge.createdUIDs) != 0 {
		t.Fatalf("bridge must not be called on domain mismatch")
	}
	if len(store.created) != 0 {
		t.Fatalf("no employee document expected")
	}
}

func TestRegisterCreatesAccountThenDocument(t *testing.T) {
	store := &fakeEmployeeStore{}
	bridge := &fakeBridge{}
	svc := newEmployeeServiceForTest(store, bridge, "@fieldforce.in")

	employee, err := svc.Register(context.Background(), registerDto("asha@fieldforce.in"))
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if len(bridge.createdUIDs) != 1 {
		t.Fatalf("expected one bridge account, got %d", len(bridge.createdUIDs))
	}
	if employee.ID != bridge.createdUIDs[0] {
		t.Fatalf("employee _id must equal the bridge UID, got %q vs %q", employee.ID, bridge.createdUIDs[0])
	}
	if employee.Status != core.EmployeeActive {
		t.Fatalf("new employee must start active")
	}
}

// 第二階段落地失敗 → best-effort 刪掉剛開的帳號
func TestRegisterCompensatesWhenDocumentWriteFails(t *testing.T) {
	store := &fakeEmployeeStore{createError: errors.New("write refused")}
	bridge := &fakeBridge{}
	svc := newEmployeeServiceForTest(store, bridge, "@fieldforce.in")

	_, err := svc.Register(context.Background(), registerDto("asha@fieldforce.in"))
	appErr, ok := err.(*cErr.Error)
	if !ok || appErr.ErrorCode() != cErr.DATABASE_ERROR {
		t.Fatalf("expected database error, got %v", err)
	}
	if len(bridge.deletedUIDs) != 1 || bridge.deletedUIDs[0] != bridge.createdUIDs[0] {
		t.Fatalf("expected compensation delete of %v, got %v", bridge.createdUIDs, bridge.deletedUIDs)
	}
}

// 補償刪除失敗只記 log，不改變對外錯誤
func TestRegisterCompensationFailureKeepsOriginalError(t *testing.T) {
	store := &fakeEmployeeStore{createError: errors.New("write refused")}
	bridge := &fakeBridge{deleteError: errors.New("bridge unavailable")}
	svc := newEmployeeServiceForTest(store, bridge, "@fieldforce.in")

	_, err := svc.Register(context.Background(), registerDto("asha@fieldforce.in"))
	appErr, ok := err.(*cErr.Error)
	if !ok || appErr.ErrorCode() != cErr.DATABASE_ERROR {
		t.Fatalf("expected database error, got %v", err)
	}
}

func TestRegisterMapsBridgeConflict(t *testing.T) {
	store := &fakeEmployeeStore{}
	bridge := &fakeBridge{createError: identity.ErrAccountExists}
	svc := newEmployeeServiceForTest(store, bridge, "@fieldforce.in")

	_, err := svc.Register(context.Background(), registerDto("asha@fieldforce.in"))
	appErr, ok := err.(*cErr.Error)
	if !ok || appErr.ErrorCode() != cErr.IDENTITY_EXISTS {
		t.Fatalf("expected IDENTITY_EXISTS, got %v", err)
	}
	if len(store.created) != 0 {
		t.Fatalf("no employee document expected when bridge rejects")
	}
}
