package service

import (
	"context"
	"errors"
	"testing"

	"fieldforce/internal/database/mongodb/model"
	"fieldforce/internal/dto"

	"go.mongodb.org/mongo-driver/mongo"
)

type fakeNewsletterStore struct {
	existing    *model.NewsletterSubscriber
	createError error
	created     int
	findCalls   int
}

func (s *fakeNewsletterStore) FindByEmail(contextValue context.Context, email string) (*model.NewsletterSubscriber, error) {
	s.findCalls++
	if s.existing != nil {
		return s.existing, nil
	}
	return nil, mongo.ErrNoDocuments
}

func (s *fakeNewsletterStore) Create(contextValue context.Context, subscriber *model.NewsletterSubscriber) (*model.NewsletterSubscriber, error) {
	if s.createError != nil {
		return nil, s.createError
	}
	s.created++
	return subscriber, nil
}

func (s *fakeNewsletterStore) IsDuplicate(err error) bool {
	return errors.Is(err, errDuplicateKey)
}

func (s *fakeNewsletterStore) List(contextValue context.Context) ([]*model.NewsletterSubscriber, error) {
	return nil, nil
}

var errDuplicateKey = errors.New("duplicate key")

func TestSubscribeReturnsExistingWithoutCreating(t *testing.T) {
	store := &fakeNewsletterStore{existing: &model.NewsletterSubscriber{Email: "a@example.com"}}
	svc := &NewsletterService{trace: newTestTrace(), newsletterRepo: store, cache: noopCache{}}

	subscriber, err := svc.Subscribe(context.Background(), &dto.SubscribeNewsletterDto{Email: "a@example.com"})
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}
	if subscriber.Email != "a@example.com" {
		t.Fatalf("unexpected subscriber: %+v", subscriber)
	}
	if store.created != 0 {
		t.Fatalf("expected no new document for existing email")
	}
}

func TestSubscribeCreatesNewSubscriber(t *testing.T) {
	store := &fakeNewsletterStore{}
	svc := &NewsletterService{trace: newTestTrace(), newsletterRepo: store, cache: noopCache{}}

	subscriber, err := svc.Subscribe(context.Background(), &dto.SubscribeNewsletterDto{Email: "new@example.com"})
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}
	if subscriber.Email != "new@example.com" || subscriber.SubscribedAt.IsZero() {
		t.Fatalf("unexpected subscriber: %+v", subscriber)
	}
	if store.created != 1 {
		t.Fatalf("expected one insert, got %d", store.created)
	}
}

// 併發同信箱：插入撞唯一索引時重查一次，回已存在那筆
func TestSubscribeDuplicateRaceResolvesToExisting(t *testing.T) {
	store := &raceNewsletterStore{winner: &model.NewsletterSubscriber{Email: "race@example.com"}}
	svc := &NewsletterService{trace: newTestTrace(), newsletterRepo: store, cache: noopCache{}}

	subscriber, err := svc.Subscribe(context.Background(), &dto.SubscribeNewsletterDto{Email: "race@example.com"})
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}
	if subscriber != store.winner {
		t.Fatalf("expected the winning document to be returned")
	}
}

// raceNewsletterStore 模擬 find miss 之後插入撞索引，重查命中
type raceNewsletterStore struct {
	winner    *model.NewsletterSubscriber
	findCalls int
}

func (s *raceNewsletterStore) FindByEmail(contextValue context.Context, email string) (*model.NewsletterSubscriber, error) {
	s.findCalls++
	if s.findCalls == 1 {
		return nil, mongo.ErrNoDocuments
	}
	return s.winner, nil
}

func (s *raceNewsletterStore) Create(contextValue context.Context, subscriber *model.NewsletterSubscriber) (*model.NewsletterSubscriber, error) {
	return nil, errDuplicateKey
}

func (s *raceNewsletterStore) IsDuplicate(err error) bool {
	return errors.Is(err, errDuplicateKey)
}

func (s *raceNewsletterStore) List(contextValue context.Context) ([]*model.NewsletterSubscriber, error) {
	return nil, nil
}
