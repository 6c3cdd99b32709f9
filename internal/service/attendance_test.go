package service

import (
	"context"
	"errors"
	"testing"

	"fieldforce/internal/core"
	"fieldforce/internal/database/mongodb/model"
	"fieldforce/internal/dto"
	cErr "fieldforce/internal/pkg/error"
)

type fakeAttendanceStore struct {
	createError error
	duplicate   bool
	created     []*model.Attendance
	records     []*model.Attendance
	counts      map[core.AttendanceStatus]int64
}

func (s *fakeAttendanceStore) Create(contextValue context.Context, attendance *model.Attendance) (*model.Attendance, error) {
	if s.createError != nil {
		return nil, s.createError
	}
	s.created = append(s.created, attendance)
	return attendance, nil
}

func (s *fakeAttendanceStore) IsDuplicate(err error) bool {
	return s.duplicate
}

func (s *fakeAttendanceStore) ListByEmployee(contextValue context.Context, employeeIdentifier string) ([]*model.Attendance, error) {
	return s.records, nil
}

func (s *fakeAttendanceStore) ListByDate(contextValue context.Context, date string) ([]*model.Attendance, error) {
	return s.records, nil
}

func (s *fakeAttendanceStore) CountByStatusOnDate(contextValue context.Context, date string, status core.AttendanceStatus) (int64, error) {
	return s.counts[status], nil
}

func TestMarkAttendanceSetsTodayUTC(t *testing.T) {
	store := &fakeAttendanceStore{}
	svc := &AttendanceService{trace: newTestTrace(), attendanceRepo: store}

	attendance, err := svc.Mark(context.Background(), "emp-1", "Asha", &dto.MarkAttendanceDto{Status: "working", Tasks: "dealer visits"})
	if err != nil {
		t.Fatalf("mark: %v", err)
	}
	if attendance.Date == "" || len(attendance.Date) != len("2006-01-02") {
		t.Fatalf("expected YYYY-MM-DD date, got %q", attendance.Date)
	}
	if attendance.Status != core.AttendanceWorking {
		t.Fatalf("unexpected status: %v", attendance.Status)
	}
}

// 唯一索引撞擊轉成 409，不是 500
func TestMarkAttendanceDuplicateBecomesConflict(t *testing.T) {
	store := &fakeAttendanceStore{createError: errors.New("E11000 duplicate key"), duplicate: true}
	svc := &AttendanceService{trace: newTestTrace(), attendanceRepo: store}

	_, err := svc.Mark(context.Background(), "emp-1", "Asha", &dto.MarkAttendanceDto{Status: "working"})
	appErr, ok := err.(*cErr.Error)
	if !ok {
		t.Fatalf("expected app error, got %v", err)
	}
	if appErr.ErrorCode() != cErr.ATTENDANCE_ALREADY_MARKED {
		t.Fatalf("expected ATTENDANCE_ALREADY_MARKED, got %d", appErr.ErrorCode())
	}
	if appErr.HttpCode() != 409 {
		t.Fatalf("expected 409, got %d", appErr.HttpCode())
	}
}

func TestMarkAttendanceOtherErrorsStayInternal(t *testing.T) {
	store := &fakeAttendanceStore{createError: errors.New("socket closed"), duplicate: false}
	svc := &AttendanceService{trace: newTestTrace(), attendanceRepo: store}

	_, err := svc.Mark(context.Background(), "emp-1", "Asha", &dto.MarkAttendanceDto{Status: "working"})
	appErr, ok := err.(*cErr.Error)
	if !ok || appErr.ErrorCode() != cErr.DATABASE_ERROR {
		t.Fatalf("expected database error, got %v", err)
	}
}

func TestSummarizeCountsByStatus(t *testing.T) {
	store := &fakeAttendanceStore{counts: map[core.AttendanceStatus]int64{
		core.AttendanceWorking: 7,
		core.AttendanceLeave:   2,
	}}
	svc := &AttendanceService{trace: newTestTrace(), attendanceRepo: store}

	summary, err := svc.Summarize(context.Background(), "2026-08-27")
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}
	if summary.Working != 7 || summary.Leave != 2 || summary.Date != "2026-08-27" {
		t.Fatalf("unexpected summary: %+v", summary)
	}
}
