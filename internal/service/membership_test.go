package service

import (
	"context"
	"testing"

	"fieldforce/internal/core"
	"fieldforce/internal/database/mongodb/model"
	"fieldforce/internal/identity"
	cErr "fieldforce/internal/pkg/error"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type fakeMembershipStore struct {
	membership  *model.Membership
	markedCount int
	modified    int64
}

func (s *fakeMembershipStore) Create(contextValue context.Context, membership *model.Membership) (*model.Membership, error) {
	return membership, nil
}

func (s *fakeMembershipStore) GetByID(contextValue context.Context, membershipIdentifier primitive.ObjectID) (*model.Membership, error) {
	if s.membership == nil {
		return nil, mongo.ErrNoDocuments
	}
	return s.membership, nil
}

func (s *fakeMembershipStore) List(contextValue context.Context) ([]*model.Membership, error) {
	return nil, nil
}

func (s *fakeMembershipStore) MarkVerified(contextValue context.Context, membershipIdentifier primitive.ObjectID) (int64, error) {
	s.markedCount++
	return s.modified, nil
}

func newMembershipServiceForTest(store *fakeMembershipStore, bridge *fakeBridge) *MembershipService {
	return &MembershipService{
		trace:          newTestTrace(),
		logger:         zap.NewNop(),
		membershipRepo: store,
		bridge:         bridge,
		cache:          noopCache{},
	}
}

func pendingMembership() *model.Membership {
	return &model.Membership{
		ID:     primitive.NewObjectID(),
		Name:   "Ravi",
		Email:  "ravi@example.com",
		Phone:  "9876543210",
		Status: core.MembershipPending,
	}
}

func TestVerifyMembershipCreatesAccountAndMarksVerified(t *testing.T) {
	store := &fakeMembershipStore{membership: pendingMembership(), modified: 1}
	bridge := &fakeBridge{}
	svc := newMembershipServiceForTest(store, bridge)

	verified, err := svc.Verify(context.Background(), store.membership.ID)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if verified.Status != core.MembershipVerified {
		t.Fatalf("expected verified status, got %v", verified.Status)
	}
	if len(bridge.createdUIDs) != 1 {
		t.Fatalf("expected one bridge account")
	}
	if store.markedCount != 1 {
		t.Fatalf("expected MarkVerified call")
	}
}

// 帳號已存在是良性情況：照樣轉 verified，重複呼叫結果一致
func TestVerifyMembershipIdempotentWhenAccountExists(t *testing.T) {
	membership := pendingMembership()
	membership.Status = core.MembershipVerified
	store := &fakeMembershipStore{membership: membership, modified: 0}
	bridge := &fakeBridge{createError: identity.ErrAccountExists}
	svc := newMembershipServiceForTest(store, bridge)

	verified, err := svc.Verify(context.Background(), membership.ID)
	if err != nil {
		t.Fatalf("repeat verify must succeed: %v", err)
	}
	if verified.Status != core.MembershipVerified {
		t.Fatalf("expected verified status, got %v", verified.Status)
	}
}

func TestVerifyMembershipNotFound(t *testing.T) {
	store := &fakeMembershipStore{}
	svc := newMembershipServiceForTest(store, &fakeBridge{})

	_, err := svc.Verify(context.Background(), primitive.NewObjectID())
	appErr, ok := err.(*cErr.Error)
	if !ok || appErr.ErrorCode() != cErr.NOT_FOUND {
		t.Fatalf("expected NOT_FOUND, got %v", err)
	}
}

func TestVerifyMembershipBridgeOutage(t *testing.T) {
	store := &fakeMembershipStore{membership: pendingMembership()}
	bridge := &fakeBridge{createError: identity.ErrInvalidToken}
	svc := newMembershipServiceForTest(store, bridge)

	_, err := svc.Verify(context.Background(), store.membership.ID)
	appErr, ok := err.(*cErr.Error)
	if !ok || appErr.ErrorCode() != cErr.IDENTITY_BRIDGE_ERROR {
		t.Fatalf("expected IDENTITY_BRIDGE_ERROR, got %v", err)
	}
	if store.markedCount != 0 {
		t.Fatalf("must not mark verified when bridge fails")
	}
}
