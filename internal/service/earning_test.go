package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"fieldforce/internal/database/mongodb/model"
	"fieldforce/internal/dto"
	cErr "fieldforce/internal/pkg/error"
)

type fakeEarningStore struct {
	mu       sync.Mutex
	created  []*model.Earning
	earnings []*model.Earning
	err      error
}

func (s *fakeEarningStore) Create(contextValue context.Context, earning *model.Earning) (*model.Earning, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	s.created = append(s.created, earning)
	return earning, nil
}

func (s *fakeEarningStore) ListByEmployee(contextValue context.Context, employeeIdentifier string) ([]*model.Earning, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.earnings, nil
}

func (s *fakeEarningStore) CountByEmployee(contextValue context.Context, employeeIdentifier string) (int64, error) {
	return int64(len(s.earnings)), nil
}

func TestSubmitBatchRejectsWholeBatchOnInvalidItem(t *testing.T) {
	store := &fakeEarningStore{}
	svc := &EarningService{trace: newTestTrace(), earningRepo: store}

	_, err := svc.SubmitBatch(context.Background(), "emp-1", "Asha", &dto.SubmitEarningsDto{
		Items: []dto.EarningItemDto{
			{Description: "commission", Amount: "1500"},
			{Description: "bonus", Amount: "-20"},
		},
	})
	if err == nil {
		t.Fatalf("expected validation error")
	}
	if len(store.created) != 0 {
		t.Fatalf("expected nothing written before validation passes, got %d", len(store.created))
	}
}

func TestSubmitBatchRejectsEmptyBatch(t *testing.T) {
	store := &fakeEarningStore{}
	svc := &EarningService{trace: newTestTrace(), earningRepo: store}

	if _, err := svc.SubmitBatch(context.Background(), "emp-1", "Asha", &dto.SubmitEarningsDto{}); err == nil {
		t.Fatalf("expected error for empty batch")
	}
}

func TestSubmitBatchWritesOneDocumentPerItem(t *testing.T) {
	store := &fakeEarningStore{}
	svc := &EarningService{trace: newTestTrace(), earningRepo: store}

	created, err := svc.SubmitBatch(context.Background(), "emp-1", "Asha", &dto.SubmitEarningsDto{
		Items: []dto.EarningItemDto{
			{Description: "commission", Amount: "1500"},
			{Description: "incentive", Amount: "300.25"},
			{Description: "bonus", Amount: "99"},
		},
	})
	if err != nil {
		t.Fatalf("submit batch: %v", err)
	}
	if len(created) != 3 || len(store.created) != 3 {
		t.Fatalf("expected 3 documents, got %d returned / %d written", len(created), len(store.created))
	}
	for _, earning := range created {
		if earning.EmployeeID != "emp-1" || earning.Amount <= 0 {
			t.Fatalf("unexpected document: %+v", earning)
		}
	}
}

func TestSubmitBatchFailsWhenAnyWriteFails(t *testing.T) {
	store := &fakeEarningStore{err: errors.New("write refused")}
	svc := &EarningService{trace: newTestTrace(), earningRepo: store}

	_, err := svc.SubmitBatch(context.Background(), "emp-1", "Asha", &dto.SubmitEarningsDto{
		Items: []dto.EarningItemDto{{Description: "commission", Amount: "1500"}},
	})
	appErr, ok := err.(*cErr.Error)
	if !ok || appErr.ErrorCode() != cErr.DATABASE_ERROR {
		t.Fatalf("expected database error, got %v", err)
	}
}

func TestSumMineFoldsAmounts(t *testing.T) {
	store := &fakeEarningStore{earnings: []*model.Earning{
		{Amount: 100.5},
		{Amount: 200},
		{Amount: 0.5},
	}}
	svc := &EarningService{trace: newTestTrace(), earningRepo: store}

	total, err := svc.SumMine(context.Background(), "emp-1")
	if err != nil {
		t.Fatalf("sum: %v", err)
	}
	if total != 301 {
		t.Fatalf("expected 301, got %v", total)
	}
}
