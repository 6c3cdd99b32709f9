package repository

import (
	"context"
	"time"

	"fieldforce/internal/core"
	client "fieldforce/internal/database/client"
	"fieldforce/internal/database/mongodb/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type TaskRepository struct {
	collection *mongo.Collection
}

func NewTaskRepository(mongoClient *client.MongoClient) *TaskRepository {
	repository := &TaskRepository{
		collection: mongoClient.Client().Database(string(core.MongoDBFieldforce)).Collection(string(core.MongoCollectionTasks)),
	}
	_ = repository.ensureIndexes(context.Background())
	return repository
}

func (repository *TaskRepository) ensureIndexes(contextValue context.Context) error {
	_, _ = repository.collection.Indexes().CreateMany(contextValue, model.TaskIndexes)
	return nil
}

func (repository *TaskRepository) Create(contextValue context.Context, task *model.Task) (_ *model.Task, returnedError error) {
	if task.ID.IsZero() {
		task.ID = primitive.NewObjectID()
	}
	if task.AssignedAt.IsZero() {
		task.AssignedAt = time.Now().UTC()
	}
	if task.Status == "" {
		task.Status = core.TaskStatusPending
	}

	if _, insertError := repository.collection.InsertOne(contextValue, task); insertError != nil {
		return nil, insertError
	}
	return task, nil
}

// UpdateStatus 只允許被指派的員工改自己的工作，條件含 employeeId；
// 別人的工作從呼叫者角度等同不存在
func (repository *TaskRepository) UpdateStatus(contextValue context.Context, taskIdentifier primitive.ObjectID, employeeIdentifier string, status core.TaskStatus) (int64, error) {
	updateResult, updateError := repository.collection.UpdateOne(contextValue,
		bson.M{"_id": taskIdentifier, "employeeId": employeeIdentifier},
		bson.M{"$set": bson.M{"status": status}},
	)
	if updateError != nil {
		return 0, updateError
	}
	if updateResult.MatchedCount == 0 {
		return 0, mongo.ErrNoDocuments
	}
	return updateResult.ModifiedCount, nil
}

// ListPendingByEmployee 未完成（pending + in-progress）工作，依指派時間由新到舊
func (repository *TaskRepository) ListPendingByEmployee(contextValue context.Context, employeeIdentifier string) (_ []*model.Task, returnedError error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "assignedAt", Value: -1}})
	filter := pendingTaskFilter(employeeIdentifier)

	cursor, findError := repository.collection.Find(contextValue, filter, findOptions)
	if findError != nil {
		return nil, findError
	}
	defer cursor.Close(contextValue)

	var results []*model.Task
	for cursor.Next(contextValue) {
		var task model.Task
		if decodeError := cursor.Decode(&task); decodeError != nil {
			return nil, decodeError
		}
		results = append(results, &task)
	}
	if cursorError := cursor.Err(); cursorError != nil {
		return nil, cursorError
	}

	return results, nil
}

// WatchPendingByEmployee 訂閱後先收到一次完整快照，之後每次異動
// 重送整份清單；ctx 取消即關閉 channel
func (repository *TaskRepository) WatchPendingByEmployee(contextValue context.Context, employeeIdentifier string) (<-chan []*model.Task, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{
			"fullDocument.employeeId": employeeIdentifier,
		}}},
	}
	requery := func(requeryContext context.Context) ([]*model.Task, error) {
		return repository.ListPendingByEmployee(requeryContext, employeeIdentifier)
	}
	return watchFullList(contextValue, repository.collection, pipeline, requery)
}

func pendingTaskFilter(employeeIdentifier string) bson.M {
	return bson.M{
		"employeeId": employeeIdentifier,
		"status":     bson.M{"$in": []core.TaskStatus{core.TaskStatusPending, core.TaskStatusInProgress}},
	}
}
