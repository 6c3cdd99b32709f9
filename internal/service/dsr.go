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

type dsrStore interface {
	Create(contextValue context.Context, report *model.DSR) (*model.DSR, error)
	ListByEmployee(contextValue context.Context, employeeIdentifier string) ([]*model.DSR, error)
	CountByEmployee(contextValue context.Context, employeeIdentifier string) (int64, error)
}

type DSRService struct {
	trace   *telemetry.Trace
	dsrRepo dsrStore
}

func NewDSRService(trace *telemetry.Trace, dsrRepo *mongoRepo.DSRRepository) *DSRService {
	return &DSRService{trace: trace, dsrRepo: dsrRepo}
}

// Submit 每日工作報告；hasTravelled 時 KM 欄位成對必填且 closing > opening
func (s *DSRService) Submit(ctx context.Context, employeeID, employeeName string, submitDto *dto.SubmitDSRDto) (_ *model.DSR, returnedError error) {
	ctx, span, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	report := &model.DSR{
		EmployeeID:   employeeID,
		EmployeeName: employeeName,
		Description:  submitDto.Description,
		HasTravelled: submitDto.HasTravelled,
		Date:         time.Now().UTC(),
	}

	if submitDto.HasTravelled {
		if submitDto.OpeningKm == "" {
			returnedError = request.FieldError("openingKm", "opening km is required when travelled")
			return nil, returnedError
		}
		if submitDto.ClosingKm == "" {
			returnedError = request.FieldError("closingKm", "closing km is required when travelled")
			return nil, returnedError
		}

		openingKm, openingError := strconv.ParseFloat(submitDto.OpeningKm, 64)
		if openingError != nil {
			returnedError = request.FieldError("openingKm", "opening km must be a number")
			return nil, returnedError
		}
		closingKm, closingError := strconv.ParseFloat(submitDto.ClosingKm, 64)
		if closingError != nil {
			returnedError = request.FieldError("closingKm", "closing km must be a number")
			return nil, returnedError
		}
		if closingKm <= openingKm {
			returnedError = request.FieldError("closingKm", "closing km must be greater than opening km")
			return nil, returnedError
		}

		report.OpeningKm = &openingKm
		report.ClosingKm = &closingKm
	}

	s.trace.ApplyTraceAttributes(span, core.TraceSubmissionMeta{Form: "dsr", EmployeeID: employeeID})

	created, createError := s.dsrRepo.Create(ctx, report)
	if createError != nil {
		returnedError = cErr.DatabaseError("database Submit error")
		return nil, returnedError
	}
	return created, nil
}

// DSRView 列表用，附衍生的行駛距離；未出差時 distance 缺省
type DSRView struct {
	*model.DSR
	Distance *float64 `json:"distance,omitempty"`
}

// ListMine 員工自己的報告，date desc
func (s *DSRService) ListMine(ctx context.Context, employeeID string) (_ []*DSRView, returnedError error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	reports, listError := s.dsrRepo.ListByEmployee(ctx, employeeID)
	if listError != nil {
		returnedError = cErr.DatabaseError("database ListMine error")
		return nil, returnedError
	}

	views := make([]*DSRView, len(reports))
	for i, report := range reports {
		views[i] = &DSRView{DSR: report, Distance: DeriveDistance(report)}
	}
	return views, nil
}

// DeriveDistance 只有出差且 KM 成對存在才算距離，其餘回 nil
func DeriveDistance(report *model.DSR) *float64 {
	if report == nil || !report.HasTravelled || report.OpeningKm == nil || report.ClosingKm == nil {
		return nil
	}
	distance := *report.ClosingKm - *report.OpeningKm
	return &distance
}
