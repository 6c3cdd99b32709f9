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

type ActivityLogRepository struct {
	collection *mongo.Collection
}

func NewActivityLogRepository(mongoClient *client.MongoClient) *ActivityLogRepository {
	repository := &ActivityLogRepository{
		collection: mongoClient.Client().Database(string(core.MongoDBFieldforce)).Collection(string(core.MongoCollectionActivityLogs)),
	}
	_ = repository.ensureIndexes(context.Background())
	return repository
}

func (repository *ActivityLogRepository) ensureIndexes(contextValue context.Context) error {
	_, _ = repository.collection.Indexes().CreateMany(contextValue, model.ActivityLogIndexes)
	return nil
}

func (repository *ActivityLogRepository) Create(contextValue context.Context, activityLog *model.ActivityLog) (_ *model.ActivityLog, returnedError error) {
	if activityLog.ID.IsZero() {
		activityLog.ID = primitive.NewObjectID()
	}
	if activityLog.Timestamp.IsZero() {
		activityLog.Timestamp = time.Now().UTC()
	}

	if _, insertError := repository.collection.InsertOne(contextValue, activityLog); insertError != nil {
		return nil, insertError
	}
	return activityLog, nil
}

// ListRecent 管理後台首頁的最近動態，固定小筆數
func (repository *ActivityLogRepository) ListRecent(contextValue context.Context, limit int64) (_ []*model.ActivityLog, returnedError error) {
	if limit <= 0 {
		limit = 10
	}
	findOptions := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(limit)

	cursor, findError := repository.collection.Find(contextValue, bson.M{}, findOptions)
	if findError != nil {
		return nil, findError
	}
	defer cursor.Close(contextValue)

	var results []*model.ActivityLog
	for cursor.Next(contextValue) {
		var activityLog model.ActivityLog
		if decodeError := cursor.Decode(&activityLog); decodeError != nil {
			return nil, decodeError
		}
		results = append(results, &activityLog)
	}
	if cursorError := cursor.Err(); cursorError != nil {
		return nil, cursorError
	}

	return results, nil
}
