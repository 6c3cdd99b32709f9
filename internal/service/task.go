package service

import (
	"context"
	"errors"
	"time"

	"fieldforce/internal/core"
	"fieldforce/internal/database/mongodb/model"
	mongoRepo "fieldforce/internal/database/mongodb/repository"
	"fieldforce/internal/dto"
	cErr "fieldforce/internal/pkg/error"
	"fieldforce/internal/telemetry"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type taskStore interface {
	Create(contextValue context.Context, task *model.Task) (*model.Task, error)
	UpdateStatus(contextValue context.Context, taskIdentifier primitive.ObjectID, employeeIdentifier string, status core.TaskStatus) (int64, error)
	ListPendingByEmployee(contextValue context.Context, employeeIdentifier string) ([]*model.Task, error)
	WatchPendingByEmployee(contextValue context.Context, employeeIdentifier string) (<-chan []*model.Task, error)
}

type TaskService struct {
	trace    *telemetry.Trace
	taskRepo taskStore
}

func NewTaskService(trace *telemetry.Trace, taskRepo *mongoRepo.TaskRepository) *TaskService {
	return &TaskService{trace: trace, taskRepo: taskRepo}
}

// Assign 管理端指派工作給員工
func (s *TaskService) Assign(ctx context.Context, assignDto *dto.AssignTaskDto) (_ *model.Task, returnedError error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	task := &model.Task{
		EmployeeID:  assignDto.EmployeeID,
		Title:       assignDto.Title,
		Description: assignDto.Description,
		Priority:    core.TaskPriority(assignDto.Priority),
		Status:      core.TaskStatusPending,
		AssignedAt:  time.Now().UTC(),
	}

	created, createError := s.taskRepo.Create(ctx, task)
	if createError != nil {
		returnedError = cErr.DatabaseError("database Assign error")
		return nil, returnedError
	}
	return created, nil
}

// UpdateStatus 依 _id + employeeId 更新；不是自己的工作一律回 not found
func (s *TaskService) UpdateStatus(ctx context.Context, taskID primitive.ObjectID, employeeID string, status core.TaskStatus) (returnedError error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	if _, updateError := s.taskRepo.UpdateStatus(ctx, taskID, employeeID, status); updateError != nil {
		if errors.Is(updateError, mongo.ErrNoDocuments) {
			returnedError = cErr.NotFound("task not found")
			return returnedError
		}
		returnedError = cErr.DatabaseError("database UpdateStatus error")
		return returnedError
	}
	return nil
}

// ListPending 員工未完成工作
func (s *TaskService) ListPending(ctx context.Context, employeeID string) (_ []*model.Task, returnedError error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	tasks, listError := s.taskRepo.ListPendingByEmployee(ctx, employeeID)
	if listError != nil {
		returnedError = cErr.DatabaseError("database ListPending error")
		return nil, returnedError
	}
	return tasks, nil
}

// WatchPending 即時清單：訂閱後先收到完整快照，之後每次異動
// 重送整份清單；取消 ctx 即結束訂閱並釋放資源
func (s *TaskService) WatchPending(ctx context.Context, employeeID string) (_ <-chan []*model.Task, returnedError error) {
	ctx, span, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	s.trace.ApplyTraceAttributes(span, core.TraceWatchMeta{Collection: string(core.MongoCollectionTasks), EmployeeID: employeeID})

	snapshots, watchError := s.taskRepo.WatchPendingByEmployee(ctx, employeeID)
	if watchError != nil {
		returnedError = cErr.DatabaseError("database WatchPending error")
		return nil, returnedError
	}
	return snapshots, nil
}
