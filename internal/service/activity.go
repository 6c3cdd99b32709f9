package service

import (
	"context"

	"fieldforce/internal/database/fluentd/model"
	fluentdRepo "fieldforce/internal/database/fluentd/repository"
	mongoModel "fieldforce/internal/database/mongodb/model"
	mongoRepo "fieldforce/internal/database/mongodb/repository"
	cErr "fieldforce/internal/pkg/error"
	"fieldforce/internal/telemetry"
)

type activityLogStore interface {
	ListRecent(contextValue context.Context, limit int64) ([]*mongoModel.ActivityLog, error)
}

type activityShipper interface {
	LogActivity(ctx context.Context, activity model.ActivityLog) error
}

// ActivityService 後台最近動態 + 事件出貨到 Fluentd
type ActivityService struct {
	trace        *telemetry.Trace
	activityRepo activityLogStore
	shipper      activityShipper
}

func NewActivityService(trace *telemetry.Trace, activityRepo *mongoRepo.ActivityLogRepository, shipper *fluentdRepo.LogRepository) *ActivityService {
	return &ActivityService{trace: trace, activityRepo: activityRepo, shipper: shipper}
}

// ListRecent 後台首頁最近動態，固定 10 筆
func (s *ActivityService) ListRecent(ctx context.Context) (_ []*mongoModel.ActivityLog, returnedError error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	logs, listError := s.activityRepo.ListRecent(ctx, 10)
	if listError != nil {
		returnedError = cErr.DatabaseError("database ListRecent error")
		return nil, returnedError
	}
	return logs, nil
}

// Ship 業務事件送 Fluentd；失敗不影響主流程，呼叫端自行忽略錯誤
func (s *ActivityService) Ship(ctx context.Context, actor, action, entity, entityID, detail string) error {
	return s.shipper.LogActivity(ctx, model.ActivityLog{
		Actor:    actor,
		Action:   action,
		Entity:   entity,
		EntityID: entityID,
		Detail:   detail,
	})
}
