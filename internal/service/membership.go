package service

import (
	"context"
	"errors"
	"time"

	"fieldforce/internal/core"
	"fieldforce/internal/database/mongodb/model"
	mongoRepo "fieldforce/internal/database/mongodb/repository"
	redisRepo "fieldforce/internal/database/redis/repository"
	"fieldforce/internal/dto"
	"fieldforce/internal/identity"
	cErr "fieldforce/internal/pkg/error"
	"fieldforce/internal/telemetry"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type membershipStore interface {
	Create(contextValue context.Context, membership *model.Membership) (*model.Membership, error)
	GetByID(contextValue context.Context, membershipIdentifier primitive.ObjectID) (*model.Membership, error)
	List(contextValue context.Context) ([]*model.Membership, error)
	MarkVerified(contextValue context.Context, membershipIdentifier primitive.ObjectID) (int64, error)
}

type MembershipService struct {
	trace          *telemetry.Trace
	logger         *zap.Logger
	membershipRepo membershipStore
	bridge         identity.Bridge
	cache          listingCache
}

func NewMembershipService(
	trace *telemetry.Trace,
	logger *zap.Logger,
	membershipRepo *mongoRepo.MembershipRepository,
	bridge identity.Bridge,
	cache *redisRepo.ListingCacheRepository,
) *MembershipService {
	return &MembershipService{
		trace:          trace,
		logger:         logger,
		membershipRepo: membershipRepo,
		bridge:         bridge,
		cache:          cache,
	}
}

// Apply 公開會員申請，進來一律 pending
func (s *MembershipService) Apply(ctx context.Context, applyDto *dto.ApplyMembershipDto) (_ *model.Membership, returnedError error) {
	ctx, span, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	s.trace.ApplyTraceAttributes(span, core.TraceSubmissionMeta{Form: "membership"})

	membership := &model.Membership{
		Name:        applyDto.Name,
		Email:       applyDto.Email,
		Phone:       applyDto.Phone,
		District:    applyDto.District,
		State:       applyDto.State,
		UTR:         applyDto.UTR,
		Status:      core.MembershipPending,
		SubmittedAt: time.Now().UTC(),
	}

	created, createError := s.membershipRepo.Create(ctx, membership)
	if createError != nil {
		returnedError = cErr.DatabaseError("database Apply error")
		return nil, returnedError
	}

	_ = s.cache.Invalidate(ctx, core.RedisKeyListingMemberships)

	return created, nil
}

func (s *MembershipService) List(ctx context.Context) (_ []*model.Membership, returnedError error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	memberships, listError := s.membershipRepo.List(ctx)
	if listError != nil {
		returnedError = cErr.DatabaseError("database List error")
		return nil, returnedError
	}
	return memberships, nil
}

// Verify 兩階段：先在 Identity Bridge 開帳號（email / phone 當密碼），
// 再把狀態轉 verified。帳號已存在視為良性，照樣轉 verified，
// 重複呼叫結果一致。
func (s *MembershipService) Verify(ctx context.Context, membershipID primitive.ObjectID) (_ *model.Membership, returnedError error) {
	ctx, span, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	membership, getError := s.membershipRepo.GetByID(ctx, membershipID)
	if getError != nil {
		if errors.Is(getError, mongo.ErrNoDocuments) {
			returnedError = cErr.NotFound("membership not found")
			return nil, returnedError
		}
		returnedError = cErr.DatabaseError("database Verify error")
		return nil, returnedError
	}

	if _, createAccountError := s.bridge.CreateAccount(ctx, membership.Email, membership.Phone); createAccountError != nil {
		if !errors.Is(createAccountError, identity.ErrAccountExists) {
			if errors.Is(createAccountError, identity.ErrWeakPassword) {
				returnedError = cErr.WeakCredential("member phone number does not satisfy the password policy")
				return nil, returnedError
			}
			returnedError = cErr.IdentityBridgeError("identity service error")
			return nil, returnedError
		}
		// 帳號已存在：良性情況，繼續轉狀態
		s.logger.Info("membership identity already exists, proceeding to verify",
			zap.String("membershipId", membershipID.Hex()),
			zap.String("email", membership.Email))
	}

	s.trace.ApplyTraceAttributes(span, core.TraceIdentityMeta{Op: "create", LoginID: membership.Email})

	// filter 帶 pending 條件，已 verified 時 modified=0，同樣視為成功
	if _, markError := s.membershipRepo.MarkVerified(ctx, membershipID); markError != nil {
		returnedError = cErr.DatabaseError("database Verify error")
		return nil, returnedError
	}

	membership.Status = core.MembershipVerified

	_ = s.cache.Invalidate(ctx, core.RedisKeyListingMemberships)

	return membership, nil
}
