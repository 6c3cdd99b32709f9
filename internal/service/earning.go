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

	"golang.org/x/sync/errgroup"
)

type earningStore interface {
	Create(contextValue context.Context, earning *model.Earning) (*model.Earning, error)
	ListByEmployee(contextValue context.Context, employeeIdentifier string) ([]*model.Earning, error)
	CountByEmployee(contextValue context.Context, employeeIdentifier string) (int64, error)
}

type EarningService struct {
	trace       *telemetry.Trace
	earningRepo earningStore
}

func NewEarningService(trace *telemetry.Trace, earningRepo *mongoRepo.EarningRepository) *EarningService {
	return &EarningService{trace: trace, earningRepo: earningRepo}
}

// SubmitBatch 批次提交：先整批驗證（任何一筆失敗整批不寫），
// 通過後每筆各自併發落一份文件，全部成功才算成功。
// 個別寫入失敗時已落的文件不回滾，以整體失敗回報。
func (s *EarningService) SubmitBatch(ctx context.Context, employeeID, employeeName string, submitDto *dto.SubmitEarningsDto) (_ []*model.Earning, returnedError error) {
	ctx, span, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	if len(submitDto.Items) == 0 {
		returnedError = request.FieldError("items", "at least one earning item is required")
		return nil, returnedError
	}

	now := time.Now().UTC()
	earnings := make([]*model.Earning, len(submitDto.Items))
	for i, item := range submitDto.Items {
		amount, parseError := strconv.ParseFloat(item.Amount, 64)
		if parseError != nil {
			returnedError = request.FieldError("amount", "amount must be a number")
			return nil, returnedError
		}
		if amount <= 0 {
			returnedError = request.FieldError("amount", "amount must be greater than zero")
			return nil, returnedError
		}
		earnings[i] = &model.Earning{
			EmployeeID:   employeeID,
			EmployeeName: employeeName,
			Description:  item.Description,
			Amount:       amount,
			Date:         now,
		}
	}

	s.trace.ApplyTraceAttributes(span, core.TraceSubmissionMeta{
		Form:       "earnings",
		EmployeeID: employeeID,
		Documents:  len(earnings),
	})

	// fan-out/join：每筆獨立寫入，單一 join point
	group, groupContext := errgroup.WithContext(ctx)
	for _, earning := range earnings {
		earning := earning
		group.Go(func() error {
			_, createError := s.earningRepo.Create(groupContext, earning)
			return createError
		})
	}
	if waitError := group.Wait(); waitError != nil {
		returnedError = cErr.DatabaseError("database SubmitBatch error")
		return nil, returnedError
	}

	return earnings, nil
}

func (s *EarningService) ListMine(ctx context.Context, employeeID string) (_ []*model.Earning, returnedError error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	earnings, listError := s.earningRepo.ListByEmployee(ctx, employeeID)
	if listError != nil {
		returnedError = cErr.DatabaseError("database ListMine error")
		return nil, returnedError
	}
	return earnings, nil
}

// SumMine 金額合計；資料庫端沒有 sum 能力，撈回後在這裡 fold
func (s *EarningService) SumMine(ctx context.Context, employeeID string) (_ float64, returnedError error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	earnings, listError := s.earningRepo.ListByEmployee(ctx, employeeID)
	if listError != nil {
		returnedError = cErr.DatabaseError("database SumMine error")
		return 0, returnedError
	}

	var total float64
	for _, earning := range earnings {
		total += earning.Amount
	}
	return total, nil
}
