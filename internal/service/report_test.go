package service

import (
	"context"
	"errors"
	"testing"

	"fieldforce/internal/database/mongodb/model"
	cErr "fieldforce/internal/pkg/error"
)

type fakeCallLogStore struct {
	callLogs []*model.CallLog
	err      error
}

func (s *fakeCallLogStore) Create(contextValue context.Context, callLog *model.CallLog) (*model.CallLog, error) {
	return callLog, nil
}

func (s *fakeCallLogStore) ListByEmployee(contextValue context.Context, employeeIdentifier string) ([]*model.CallLog, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.callLogs, nil
}

func (s *fakeCallLogStore) CountByEmployee(contextValue context.Context, employeeIdentifier string) (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	return int64(len(s.callLogs)), nil
}

func TestAssembleReportAggregatesAllCollections(t *testing.T) {
	opening, closing := 100.0, 150.0
	svc := &ReportService{
		trace: newTestTrace(),
		employeeRepo: &fakeEmployeeStore{employees: map[string]*model.Employee{
			"emp-1": {ID: "emp-1", Name: "Asha"},
		}},
		dsrRepo: &fakeDSRStore{reports: []*model.DSR{
			{EmployeeID: "emp-1", HasTravelled: true, OpeningKm: &opening, ClosingKm: &closing},
			{EmployeeID: "emp-1"},
		}},
		callLogRepo: &fakeCallLogStore{callLogs: []*model.CallLog{
			{EmployeeID: "emp-1", ClientName: "Dealer A"},
		}},
		earningRepo: &fakeEarningStore{earnings: []*model.Earning{
			{Amount: 1500}, {Amount: 250.5},
		}},
	}

	report, err := svc.Assemble(context.Background(), "emp-1")
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	if report.Employee == nil || report.Employee.ID != "emp-1" {
		t.Fatalf("missing employee in report")
	}
	if report.DSRCount != 2 || report.CallCount != 1 {
		t.Fatalf("unexpected counts: %d / %d", report.DSRCount, report.CallCount)
	}
	if report.EarningsTotal != 1750.5 {
		t.Fatalf("unexpected earnings total: %v", report.EarningsTotal)
	}
	if report.DSRs[0].Distance == nil || *report.DSRs[0].Distance != 50 {
		t.Fatalf("expected derived distance 50, got %v", report.DSRs[0].Distance)
	}
	if report.DSRs[1].Distance != nil {
		t.Fatalf("expected nil distance for office day")
	}
}

// 查無員工是 not found，不是資料庫故障
func TestAssembleReportUnknownEmployeeIsNotFound(t *testing.T) {
	svc := &ReportService{
		trace:        newTestTrace(),
		employeeRepo: &fakeEmployeeStore{},
		dsrRepo:      &fakeDSRStore{},
		callLogRepo:  &fakeCallLogStore{},
		earningRepo:  &fakeEarningStore{},
	}

	_, err := svc.Assemble(context.Background(), "emp-missing")
	appErr, ok := err.(*cErr.Error)
	if !ok || appErr.ErrorCode() != cErr.NOT_FOUND {
		t.Fatalf("expected NOT_FOUND for unknown employee, got %v", err)
	}
}

// 任何一路失敗整份報表就是失敗，不做部分渲染
func TestAssembleReportFailsWhenAnyBranchFails(t *testing.T) {
	svc := &ReportService{
		trace: newTestTrace(),
		employeeRepo: &fakeEmployeeStore{employees: map[string]*model.Employee{
			"emp-1": {ID: "emp-1"},
		}},
		dsrRepo:     &fakeDSRStore{},
		callLogRepo: &fakeCallLogStore{err: errors.New("cursor lost")},
		earningRepo: &fakeEarningStore{},
	}

	if _, err := svc.Assemble(context.Background(), "emp-1"); err == nil {
		t.Fatalf("expected assemble to fail")
	}
}

func TestCountsZeroIsNotAnError(t *testing.T) {
	svc := &ReportService{
		trace:       newTestTrace(),
		dsrRepo:     &fakeDSRStore{},
		callLogRepo: &fakeCallLogStore{},
		earningRepo: &fakeEarningStore{},
	}

	dsrCount, callCount, earningCount, err := svc.Counts(context.Background(), "emp-1")
	if err != nil {
		t.Fatalf("counts: %v", err)
	}
	if dsrCount != 0 || callCount != 0 || earningCount != 0 {
		t.Fatalf("expected zero counts, got %d/%d/%d", dsrCount, callCount, earningCount)
	}
}
