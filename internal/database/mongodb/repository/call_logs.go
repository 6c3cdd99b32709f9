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

type CallLogRepository struct {
	collection *mongo.Collection
}

func NewCallLogRepository(mongoClient *client.MongoClient) *CallLogRepository {
	repository := &CallLogRepository{
		collection: mongoClient.Client().Database(string(core.MongoDBFieldforce)).Collection(string(core.MongoCollectionCallLogs)),
	}
	_ = repository.ensureIndexes(context.Background())
	return repository
}

func (repository *CallLogRepository) ensureIndexes(contextValue context.Context) error {
	_, _ = repository.collection.Indexes().CreateMany(contextValue, model.CallLogIndexes)
	return nil
}

func (repository *CallLogRepository) Create(contextValue context.Context, callLog *model.CallLog) (_ *model.CallLog, returnedError error) {
	if callLog.ID.IsZero() {
		callLog.ID = primitive.NewObjectID()
	}
	if callLog.Date.IsZero() {
		callLog.Date = time.Now().UTC()
	}

	if _, insertError := repository.collection.InsertOne(contextValue, callLog); insertError != nil {
		return nil, insertError
	}
	return callLog, nil
}

// ListByEmployee 依 date 由新到舊
func (repository *CallLogRepository) ListByEmployee(contextValue context.Context, employeeIdentifier string) (_ []*model.CallLog, returnedError error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})

	cursor, findError := repository.collection.Find(contextValue, bson.M{"employeeId": employeeIdentifier}, findOptions)
	if findError != nil {
		return nil, findError
	}
	defer cursor.Close(contextValue)

	var results []*model.CallLog
	for cursor.Next(contextValue) {
		var callLog model.CallLog
		if decodeError := cursor.Decode(&callLog); decodeError != nil {
			return nil, decodeError
		}
		results = append(results, &callLog)
	}
	if cursorError := cursor.Err(); cursorError != nil {
		return nil, cursorError
	}

	return results, nil
}

func (repository *CallLogRepository) CountByEmployee(contextValue context.Context, employeeIdentifier string) (int64, error) {
	return repository.collection.CountDocuments(contextValue, bson.M{"employeeId": employeeIdentifier})
}
