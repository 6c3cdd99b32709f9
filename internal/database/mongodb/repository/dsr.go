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

type DSRRepository struct {
	collection *mongo.Collection
}

func NewDSRRepository(mongoClient *client.MongoClient) *DSRRepository {
	repository := &DSRRepository{
		collection: mongoClient.Client().Database(string(core.MongoDBFieldforce)).Collection(string(core.MongoCollectionDSR)),
	}
	_ = repository.ensureIndexes(context.Background())
	return repository
}

func (repository *DSRRepository) ensureIndexes(contextValue context.Context) error {
	_, _ = repository.collection.Indexes().CreateMany(contextValue, model.DSRIndexes)
	return nil
}

func (repository *DSRRepository) Create(contextValue context.Context, report *model.DSR) (_ *model.DSR, returnedError error) {
	if report.ID.IsZero() {
		report.ID = primitive.NewObjectID()
	}
	if report.Date.IsZero() {
		report.Date = time.Now().UTC()
	}

	if _, insertError := repository.collection.InsertOne(contextValue, report); insertError != nil {
		return nil, insertError
	}
	return report, nil
}

// ListByEmployee 依 date 由新到舊
func (repository *DSRRepository) ListByEmployee(contextValue context.Context, employeeIdentifier string) (_ []*model.DSR, returnedError error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})

	cursor, findError := repository.collection.Find(contextValue, bson.M{"employeeId": employeeIdentifier}, findOptions)
	if findError != nil {
		return nil, findError
	}
	defer cursor.Close(contextValue)

	var results []*model.DSR
	for cursor.Next(contextValue) {
		var report model.DSR
		if decodeError := cursor.Decode(&report); decodeError != nil {
			return nil, decodeError
		}
		results = append(results, &report)
	}
	if cursorError := cursor.Err(); cursorError != nil {
		return nil, cursorError
	}

	return results, nil
}

// CountByEmployee 伺服器端計數，不撈整份文件
func (repository *DSRRepository) CountByEmployee(contextValue context.Context, employeeIdentifier string) (int64, error) {
	return repository.collection.CountDocuments(contextValue, bson.M{"employeeId": employeeIdentifier})
}
