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

type EarningRepository struct {
	collection *mongo.Collection
}

func NewEarningRepository(mongoClient *client.MongoClient) *EarningRepository {
	repository := &EarningRepository{
		collection: mongoClient.Client().Database(string(core.MongoDBFieldforce)).Collection(string(core.MongoCollectionEarnings)),
	}
	_ = repository.ensureIndexes(context.Background())
	return repository
}

func (repository *EarningRepository) ensureIndexes(contextValue context.Context) error {
	_, _ = repository.collection.Indexes().CreateMany(contextValue, model.EarningIndexes)
	return nil
}

func (repository *EarningRepository) Create(contextValue context.Context, earning *model.Earning) (_ *model.Earning, returnedError error) {
	if earning.ID.IsZero() {
		earning.ID = primitive.NewObjectID()
	}
	if earning.Date.IsZero() {
		earning.Date = time.Now().UTC()
	}

	if _, insertError := repository.collection.InsertOne(contextValue, earning); insertError != nil {
		return nil, insertError
	}
	return earning, nil
}

// ListByEmployee 依 date 由新到舊；金額加總在 service 層 fold
func (repository *EarningRepository) ListByEmployee(contextValue context.Context, employeeIdentifier string) (_ []*model.Earning, returnedError error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})

	cursor, findError := repository.collection.Find(contextValue, bson.M{"employeeId": employeeIdentifier}, findOptions)
	if findError != nil {
		return nil, findError
	}
	defer cursor.Close(contextValue)

	var results []*model.Earning
	for cursor.Next(contextValue) {
		var earning model.Earning
		if decodeError := cursor.Decode(&earning); decodeError != nil {
			return nil, decodeError
		}
		results = append(results, &earning)
	}
	if cursorError := cursor.Err(); cursorError != nil {
		return nil, cursorError
	}

	return results, nil
}

func (repository *EarningRepository) CountByEmployee(contextValue context.Context, employeeIdentifier string) (int64, error) {
	return repository.collection.CountDocuments(contextValue, bson.M{"employeeId": employeeIdentifier})
}
