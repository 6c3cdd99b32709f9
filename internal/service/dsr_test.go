package service

import (
	"context"
	"errors"
	"testing"

	"fieldforce/internal/database/mongodb/model"
	"fieldforce/internal/dto"
	cErr "fieldforce/internal/pkg/error"
)

type fakeDSRStore struct {
	created []*model.DSR
	reports []*model.DSR
	err     error
}

func (s *fakeDSRStore) Create(contextValue context.Context, report *model.DSR) (*model.DSR, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.created = append(s.created, report)
	return report, nil
}

func (s *fakeDSRStore) ListByEmployee(contextValue context.Context, employeeIdentifier string) ([]*model.DSR, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.reports, nil
}

func (s *fakeDSRStore) CountByEmployee(contextValue context.Context, employeeIdentifier string) (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	return int64(len(s.reports)), nil
}

func TestDSRSubmitRequiresKmPairWhenTravelled(t *testing.T) {
	store := &fakeDSRStore{}
	svc := &DSRService{trace: newTestTrace(), dsrRepo: store}

	cases := []struct {
		name      string
		submitDto dto.SubmitDSRDto
	}{
		{"missing opening", dto.SubmitDSRDto{Description: "visited dealer", HasTravelled: true, ClosingKm: "120"}},
		{"missing closing", dto.SubmitDSRDto{Description: "visited dealer", HasTravelled: true, OpeningKm: "100"}},
		{"non numeric", dto.SubmitDSRDto{Description: "visited dealer", HasTravelled: true, OpeningKm: "abc", ClosingKm: "120"}},
		{"closing not greater", dto.SubmitDSRDto{Description: "visited dealer", HasTravelled: true, OpeningKm: "120", ClosingKm: "120"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Submit(context.Background(), "emp-1", "Asha", &tc.submitDto); err == nil {
				t.Fatalf("expected validation error")
			}
			if len(store.created) != 0 {
				t.Fatalf("expected no document written, got %d", len(store.created))
			}
		})
	}
}

func TestDSRSubmitTravelledStoresKmPair(t *testing.T) {
	store := &fakeDSRStore{}
	svc := &DSRService{trace: newTestTrace(), dsrRepo: store}

	report, err := svc.Submit(context.Background(), "emp-1", "Asha", &dto.SubmitDSRDto{
		Description:  "visited dealer",
		HasTravelled: true,
		OpeningKm:    "100.5",
		ClosingKm:    "142",
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if report.OpeningKm == nil || *report.OpeningKm != 100.5 {
		t.Fatalf("unexpected opening km: %v", report.OpeningKm)
	}
	if report.ClosingKm == nil || *report.ClosingKm != 142 {
		t.Fatalf("unexpected closing km: %v", report.ClosingKm)
	}
}

func TestDSRSubmitWithoutTravelSkipsKm(t *testing.T) {
	store := &fakeDSRStore{}
	svc := &DSRService{trace: newTestTrace(), dsrRepo: store}

	report, err := svc.Submit(context.Background(), "emp-1", "Asha", &dto.SubmitDSRDto{
		Description: "office day",
		// KM 欄位就算帶了也不落地
		OpeningKm: "100",
		ClosingKm: "120",
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if report.OpeningKm != nil || report.ClosingKm != nil {
		t.Fatalf("expected km fields to stay empty")
	}
}

func TestDeriveDistance(t *testing.T) {
	opening, closing := 100.0, 142.5
	if d := DeriveDistance(&model.DSR{HasTravelled: true, OpeningKm: &opening, ClosingKm: &closing}); d == nil || *d != 42.5 {
		t.Fatalf("unexpected distance: %v", d)
	}
	if d := DeriveDistance(&model.DSR{HasTravelled: false, OpeningKm: &opening, ClosingKm: &closing}); d != nil {
		t.Fatalf("expected nil distance when not travelled")
	}
	if d := DeriveDistance(&model.DSR{HasTravelled: true, OpeningKm: &opening}); d != nil {
		t.Fatalf("expected nil distance without closing km")
	}
	if d := DeriveDistance(nil); d != nil {
		t.Fatalf("expected nil distance for nil report")
	}
}

func TestDSRListMineWrapsStoreError(t *testing.T) {
	store := &fakeDSRStore{err: errors.New("boom")}
	svc := &DSRService{trace: newTestTrace(), dsrRepo: store}

	_, err := svc.ListMine(context.Background(), "emp-1")
	appErr, ok := err.(*cErr.Error)
	if !ok || appErr.ErrorCode() != cErr.DATABASE_ERROR {
		t.Fatalf("expected database error, got %v", err)
	}
}
