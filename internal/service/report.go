package service

import (
	"context"
	"errors"

	"fieldforce/internal/core"
	"fieldforce/internal/database/mongodb/model"
	mongoRepo "fieldforce/internal/database/mongodb/repository"
	cErr "fieldforce/internal/pkg/error"
	"fieldforce/internal/telemetry"

	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/sync/errgroup"
)

// EmployeeReport 單一員工的跨集合彙整視圖
type EmployeeReport struct {
	Employee      *model.Employee  `json:"employee"`
	DSRs          []*DSRView       `json:"dsrs"`
	CallLogs      []*model.CallLog `json:"callLogs"`
	Earnings      []*model.Earning `json:"earnings"`
	DSRCount      int64            `json:"dsrCount"`
	CallCount     int64            `json:"callCount"`
	EarningsTotal float64          `json:"earningsTotal"`
}

// ReportService 跨集合報表引擎：讀時計算，不做物化視圖。
// 任何一路抓取失敗整份報表就是失敗，不做部分渲染、不重試。
type ReportService struct {
	trace        *telemetry.Trace
	employeeRepo employeeStore
	dsrRepo      dsrStore
	callLogRepo  callLogStore
	earningRepo  earningStore
}

func NewReportService(
	trace *telemetry.Trace,
	employeeRepo *mongoRepo.EmployeeRepository,
	dsrRepo *mongoRepo.DSRRepository,
	callLogRepo *mongoRepo.CallLogRepository,
	earningRepo *mongoRepo.EarningRepository,
) *ReportService {
	return &ReportService{
		trace:        trace,
		employeeRepo: employeeRepo,
		dsrRepo:      dsrRepo,
		callLogRepo:  callLogRepo,
		earningRepo:  earningRepo,
	}
}

// Assemble 員工報表：Employee 文件與三個集合併發抓取（fan-out/join），
// 全部完成才組裝；計數走伺服器端 count，金額在本地 fold
func (s *ReportService) Assemble(ctx context.Context, employeeID string) (_ *EmployeeReport, returnedError error) {
	ctx, span, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	report := &EmployeeReport{}

	group, groupContext := errgroup.WithContext(ctx)

	group.Go(func() error {
		employee, err := s.employeeRepo.GetByID(groupContext, employeeID)
		if err != nil {
			return err
		}
		report.Employee = employee
		return nil
	})
	group.Go(func() error {
		dsrs, err := s.dsrRepo.ListByEmployee(groupContext, employeeID)
		if err != nil {
			return err
		}
		views := make([]*DSRView, len(dsrs))
		for i, dsr := range dsrs {
			views[i] = &DSRView{DSR: dsr, Distance: DeriveDistance(dsr)}
		}
		report.DSRs = views
		return nil
	})
	group.Go(func() error {
		callLogs, err := s.callLogRepo.ListByEmployee(groupContext, employeeID)
		if err != nil {
			return err
		}
		report.CallLogs = callLogs
		return nil
	})
	group.Go(func() error {
		earnings, err := s.earningRepo.ListByEmployee(groupContext, employeeID)
		if err != nil {
			return err
		}
		report.Earnings = earnings
		return nil
	})

	if waitError := group.Wait(); waitError != nil {
		if errors.Is(waitError, mongo.ErrNoDocuments) {
			returnedError = cErr.NotFound("employee not found")
			return nil, returnedError
		}
		returnedError = cErr.DatabaseError("database Assemble error")
		return nil, returnedError
	}

	report.DSRCount = int64(len(report.DSRs))
	report.CallCount = int64(len(report.CallLogs))
	for _, earning := range report.Earnings {
		report.EarningsTotal += earning.Amount
	}

	s.trace.ApplyTraceAttributes(span, core.TraceReportMeta{
		EmployeeID: employeeID,
		DSRCount:   int(report.DSRCount),
		CallCount:  int(report.CallCount),
		Earnings:   report.EarningsTotal,
	})

	return report, nil
}

// Counts 儀表板計數；零筆回 0 不是錯誤，走伺服器端 count 不撈文件
func (s *ReportService) Counts(ctx context.Context, employeeID string) (dsrCount, callCount, earningCount int64, returnedError error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	group, groupContext := errgroup.WithContext(ctx)

	group.Go(func() error {
		count, err := s.dsrRepo.CountByEmployee(groupContext, employeeID)
		if err != nil {
			return err
		}
		dsrCount = count
		return nil
	})
	group.Go(func() error {
		count, err := s.callLogRepo.CountByEmployee(groupContext, employeeID)
		if err != nil {
			return err
		}
		callCount = count
		return nil
	})
	group.Go(func() error {
		count, err := s.earningRepo.CountByEmployee(groupContext, employeeID)
		if err != nil {
			return err
		}
		earningCount = count
		return nil
	})

	if waitError := group.Wait(); waitError != nil {
		returnedError = cErr.DatabaseError("database Counts error")
		return 0, 0, 0, returnedError
	}

	return dsrCount, callCount, earningCount, nil
}
