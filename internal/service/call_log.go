package service

import (
	"context"
	"strconv"
	"time"

	"fieldforce/internal/core"
	"fieldforce/internal/database/mongodb/model"
	mongoRepo "fieldforce/internal/database/mongodb/repository"
	"fieldforce/internal/dto"
	cErr "fieldforce/internal/pkg/error"
	"fieldforce/internal/pkg/request"
	"fieldforce/internal/telemetry"
)

type callLogStore interface {
	Create(contextValue context.Context, callLog *model.CallLog) (*model.CallLog, error)
	ListByEmployee(contextValue context.Context, employeeIdentifier string) ([]*model.CallLog, error)
	CountByEmployee(contextValue context.Context, employeeIdentifier string) (int64, error)
}

type CallLogService struct {
	trace       *telemetry.Trace
	callLogRepo callLogStore
}

func NewCallLogService(trace *telemetry.Trace, callLogRepo *mongoRepo.CallLogRepository) *CallLogService {
	return &CallLogService{trace: trace, callLogRepo: callLogRepo}
}

// Submit 通話紀錄；duration 以分鐘計且至少 1
func (s *CallLogService) Submit(ctx context.Context, employeeID, employeeName string, submitDto *dto.SubmitCallLogDto) (_ *model.CallLog, returnedError error) {
	ctx, span, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	duration, parseError := strconv.Atoi(submitDto.Duration)
	if parseError != nil {
		returnedError = request.FieldError("duration", "duration must be a number")
		return nil, returnedError
	}
	if duration < 1 {
		returnedError = request.FieldError("duration", "duration must be at least 1 minute")
		return nil, returnedError
	}

	s.trace.ApplyTraceAttributes(span, core.TraceSubmissionMeta{Form: "call_log", EmployeeID: employeeID})

	callLog := &model.CallLog{
		EmployeeID:   employeeID,
		EmployeeName: employeeName,
		ClientName:   submitDto.ClientName,
		ClientMobile: submitDto.ClientMobile,
		Topic:        submitDto.Topic,
		Duration:     duration,
		Date:         time.Now().UTC(),
	}

	created, createError := s.callLogRepo.Create(ctx, callLog)
	if createError != nil {
		returnedError = cErr.DatabaseError("database Submit error")
		return nil, returnedError
	}
	return created, nil
}

func (s *CallLogService) ListMine(ctx context.Context, employeeID string) (_ []*model.CallLog, returnedError error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	callLogs, listError := s.callLogRepo.ListByEmployee(ctx, employeeID)
	if listError != nil {
		returnedError = cErr.DatabaseError("database ListMine error")
		return nil, returnedError
	}
	return callLogs, nil
}
