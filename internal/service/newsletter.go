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
	cErr "fieldforce/internal/pkg/error"
	"fieldforce/internal/telemetry"

	"go.mongodb.org/mongo-driver/mongo"
)

type newsletterStore interface {
	FindByEmail(contextValue context.Context, email string) (*model.NewsletterSubscriber, error)
	Create(contextValue context.Context, subscriber *model.NewsletterSubscriber) (*model.NewsletterSubscriber, error)
	IsDuplicate(err error) bool
	List(contextValue context.Context) ([]*model.NewsletterSubscriber, error)
}

type NewsletterService struct {
	trace          *telemetry.Trace
	newsletterRepo newsletterStore
	cache          listingCache
}

func NewNewsletterService(trace *telemetry.Trace, newsletterRepo *mongoRepo.NewsletterRepository, cache *redisRepo.ListingCacheRepository) *NewsletterService {
	return &NewsletterService{trace: trace, newsletterRepo: newsletterRepo, cache: cache}
}

// Subscribe 以 email 冪等：已訂閱者回成功但不重複建檔。
// 先查再插，插入撞唯一索引（併發同信箱）也視為已訂閱。
func (s *NewsletterService) Subscribe(ctx context.Context, subscribeDto *dto.SubscribeNewsletterDto) (_ *model.NewsletterSubscriber, returnedError error) {
	ctx, span, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	s.trace.ApplyTraceAttributes(span, core.TraceSubmissionMeta{Form: "newsletter"})

	existing, findError := s.newsletterRepo.FindByEmail(ctx, subscribeDto.Email)
	if findError == nil {
		return existing, nil
	}
	if !errors.Is(findError, mongo.ErrNoDocuments) {
		returnedError = cErr.DatabaseError("database Subscribe error")
		return nil, returnedError
	}

	subscriber := &model.NewsletterSubscriber{
		Email:        subscribeDto.Email,
		SubscribedAt: time.Now().UTC(),
	}

	created, createError := s.newsletterRepo.Create(ctx, subscriber)
	if createError != nil {
		if s.newsletterRepo.IsDuplicate(createError) {
			if existing, retryError := s.newsletterRepo.FindByEmail(ctx, subscribeDto.Email); retryError == nil {
				return existing, nil
			}
		}
		returnedError = cErr.DatabaseError("database Subscribe error")
		return nil, returnedError
	}

	_ = s.cache.Invalidate(ctx, core.RedisKeyListingNewsletter)

	return created, nil
}

func (s *NewsletterService) List(ctx context.Context) (_ []*model.NewsletterSubscriber, returnedError error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	subscribers, listError := s.newsletterRepo.List(ctx)
	if listError != nil {
		returnedError = cErr.DatabaseError("database List error")
		return nil, returnedError
	}
	return subscribers, nil
}
