package service

import (
	"context"
	"testing"

	"fieldforce/internal/core"
	"fieldforce/internal/database/mongodb/model"
	cErr "fieldforce/internal/pkg/error"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// owners 對應 repository 的 {_id, employeeId} 條件：兩者都吻合才算命中
type fakeTaskStore struct {
	owners  map[primitive.ObjectID]string
	updated map[primitive.ObjectID]core.TaskStatus
}

func (s *fakeTaskStore) Create(contextValue context.Context, task *model.Task) (*model.Task, error) {
	return task, nil
}

func (s *fakeTaskStore) UpdateStatus(contextValue context.Context, taskIdentifier primitive.ObjectID, employeeIdentifier string, status core.TaskStatus) (int64, error) {
	owner, ok := s.owners[taskIdentifier]
	if !ok || owner != employeeIdentifier {
		return 0, mongo.ErrNoDocuments
	}
	if s.updated == nil {
		s.updated = map[primitive.ObjectID]core.TaskStatus{}
	}
	s.updated[taskIdentifier] = status
	return 1, nil
}

func (s *fakeTaskStore) ListPendingByEmployee(contextValue context.Context, employeeIdentifier string) ([]*model.Task, error) {
	return nil, nil
}

func (s *fakeTaskStore) WatchPendingByEmployee(contextValue context.Context, employeeIdentifier string) (<-chan []*model.Task, error) {
	return nil, nil
}

func TestUpdateTaskStatusOwnTask(t *testing.T) {
	taskID := primitive.NewObjectID()
	store := &fakeTaskStore{owners: map[primitive.ObjectID]string{taskID: "emp-1"}}
	svc := &TaskService{trace: newTestTrace(), taskRepo: store}

	if err := svc.UpdateStatus(context.Background(), taskID, "emp-1", core.TaskStatusDone); err != nil {
		t.Fatalf("update own task: %v", err)
	}
	if store.updated[taskID] != core.TaskStatusDone {
		t.Fatalf("status not written: %v", store.updated)
	}
}

// 不是自己的工作對呼叫者而言等同不存在，不能改、也不能探知存在
func TestUpdateTaskStatusForeignTaskIsNotFound(t *testing.T) {
	taskID := primitive.NewObjectID()
	store := &fakeTaskStore{owners: map[primitive.ObjectID]string{taskID: "emp-1"}}
	svc := &TaskService{trace: newTestTrace(), taskRepo: store}

	err := svc.UpdateStatus(context.Background(), taskID, "emp-2", core.TaskStatusDone)
	appErr, ok := err.(*cErr.Error)
	if !ok || appErr.ErrorCode() != cErr.NOT_FOUND {
		t.Fatalf("expected NOT_FOUND for a foreign task, got %v", err)
	}
	if len(store.updated) != 0 {
		t.Fatalf("foreign task must not be modified: %v", store.updated)
	}
}

func TestUpdateTaskStatusUnknownTaskIsNotFound(t *testing.T) {
	store := &fakeTaskStore{}
	svc := &TaskService{trace: newTestTrace(), taskRepo: store}

	err := svc.UpdateStatus(context.Background(), primitive.NewObjectID(), "emp-1", core.TaskStatusInProgress)
	appErr, ok := err.(*cErr.Error)
	if !ok || appErr.ErrorCode() != cErr.NOT_FOUND {
		t.Fatalf("expected NOT_FOUND, got %v", err)
	}
}
