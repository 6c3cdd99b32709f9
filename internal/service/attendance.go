package service

import (
	"context"
	"time"

	"fieldforce/internal/core"
	"fieldforce/internal/database/mongodb/model"
	mongoRepo "fieldforce/internal/database/mongodb/repository"
	"fieldforce/internal/dto"
	cErr "fieldforce/internal/pkg/error"
	"fieldforce/internal/telemetry"
)

type attendanceStore interface {
	Create(contextValue context.Context, attendance *model.Attendance) (*model.Attendance, error)
	IsDuplicate(err error) bool
	ListByEmployee(contextValue context.Context, employeeIdentifier string) ([]*model.Attendance, error)
	ListByDate(contextValue context.Context, date string) ([]*model.Attendance, error)
	CountByStatusOnDate(contextValue context.Context, date string, status core.AttendanceStatus) (int64, error)
}

type AttendanceService struct {
	trace          *telemetry.Trace
	attendanceRepo attendanceStore
}

func NewAttendanceService(trace *telemetry.Trace, attendanceRepo *mongoRepo.AttendanceRepository) *AttendanceService {
	return &AttendanceService{trace: trace, attendanceRepo: attendanceRepo}
}

// Mark 打卡；一人一天一筆由唯一索引保證，
// 撞索引轉成 AttendanceAlreadyMarked 回給前端
func (s *AttendanceService) Mark(ctx context.Context, employeeID, employeeName string, markDto *dto.MarkAttendanceDto) (_ *model.Attendance, returnedError error) {
	ctx, span, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	s.trace.ApplyTraceAttributes(span, core.TraceSubmissionMeta{Form: "attendance", EmployeeID: employeeID})

	attendance := &model.Attendance{
		EmployeeID:   employeeID,
		EmployeeName: employeeName,
		Status:       core.AttendanceStatus(markDto.Status),
		Tasks:        markDto.Tasks,
		Date:         time.Now().UTC().Format("2006-01-02"),
	}

	created, createError := s.attendanceRepo.Create(ctx, attendance)
	if createError != nil {
		if s.attendanceRepo.IsDuplicate(createError) {
			returnedError = cErr.AttendanceAlreadyMarked("attendance already marked for today")
			return nil, returnedError
		}
		returnedError = cErr.DatabaseError("database Mark error")
		return nil, returnedError
	}
	return created, nil
}

func (s *AttendanceService) ListMine(ctx context.Context, employeeID string) (_ []*model.Attendance, returnedError error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	records, listError := s.attendanceRepo.ListByEmployee(ctx, employeeID)
	if listError != nil {
		returnedError = cErr.DatabaseError("database ListMine error")
		return nil, returnedError
	}
	return records, nil
}

// ListByDate 管理端出勤日誌；date 空字串代表今天
func (s *AttendanceService) ListByDate(ctx context.Context, date string) (_ []*model.Attendance, returnedError error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	if date == "" {
		date = time.Now().UTC().Format("2006-01-02")
	}

	records, listError := s.attendanceRepo.ListByDate(ctx, date)
	if listError != nil {
		returnedError = cErr.DatabaseError("database ListByDate error")
		return nil, returnedError
	}
	return records, nil
}

// DailySummary 出勤摘要信的素材
type DailySummary struct {
	Date    string
	Working int64
	Leave   int64
}

func (s *AttendanceService) Summarize(ctx context.Context, date string) (_ *DailySummary, returnedError error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	working, workingError := s.attendanceRepo.CountByStatusOnDate(ctx, date, core.AttendanceWorking)
	if workingError != nil {
		returnedError = cErr.DatabaseError("database Summarize error")
		return nil, returnedError
	}
	leave, leaveError := s.attendanceRepo.CountByStatusOnDate(ctx, date, core.AttendanceLeave)
	if leaveError != nil {
		returnedError = cErr.DatabaseError("database Summarize error")
		return nil, returnedError
	}

	return &DailySummary{Date: date, Working: working, Leave: leave}, nil
}
