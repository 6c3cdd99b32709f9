package repository

import (
	"context"
	"fmt"
	"time"

	"fieldforce/internal/core"
	client "fieldforce/internal/database/client"
	"fieldforce/internal/database/mongodb/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ApplicationRepository struct {
	collection *mongo.Collection
}

func NewApplicationRepository(mongoClient *client.MongoClient) *ApplicationRepository {
	repository := &ApplicationRepository{
		collection: mongoClient.Client().Database(string(core.MongoDBFieldforce)).Collection(string(core.MongoCollectionApplications)),
	}
	_ = repository.ensureIndexes(context.Background())
	return repository
}

func (repository *ApplicationRepository) ensureIndexes(contextValue context.Context) error {
	_, _ = repository.collection.Indexes().CreateMany(contextValue, model.ApplicationIndexes)
	return nil
}

func (repository *ApplicationRepository) Create(contextValue context.Context, application *model.Application) (_ *model.Application, returnedError error) {
	if application.ID.IsZero() {
		application.ID = primitive.NewObjectID()
	}
	if application.SubmittedAt.IsZero() {
		application.SubmittedAt = time.Now().UTC()
	}

	insertResult, insertError := repository.collection.InsertOne(contextValue, application)
	if insertError != nil {
		return nil, insertError
	}
	objectID, ok := insertResult.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("unexpected InsertedID type: %T", insertResult.InsertedID)
	}
	application.ID = objectID
	return application, nil
}

// ListByJob 依 submittedAt 由新到舊
func (repository *ApplicationRepository) ListByJob(contextValue context.Context, jobIdentifier primitive.ObjectID) (_ []*model.Application, returnedError error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "submittedAt", Value: -1}})

	cursor, findError := repository.collection.Find(contextValue, bson.M{"jobId": jobIdentifier}, findOptions)
	if findError != nil {
		return nil, findError
	}
	defer cursor.Close(contextValue)

	var results []*model.Application
	for cursor.Next(contextValue) {
		var application model.Application
		if decodeError := cursor.Decode(&application); decodeError != nil {
			return nil, decodeError
		}
		results = append(results, &application)
	}
	if cursorError := cursor.Err(); cursorError != nil {
		return nil, cursorError
	}

	return results, nil
}

func (repository *ApplicationRepository) CountByJob(contextValue context.Context, jobIdentifier primitive.ObjectID) (int64, error) {
	return repository.collection.CountDocuments(contextValue, bson.M{"jobId": jobIdentifier})
}
