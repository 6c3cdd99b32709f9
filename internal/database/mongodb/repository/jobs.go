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

type JobRepository struct {
	collection *mongo.Collection
}

func NewJobRepository(mongoClient *client.MongoClient) *JobRepository {
	repository := &JobRepository{
		collection: mongoClient.Client().Database(string(core.MongoDBFieldforce)).Collection(string(core.MongoCollectionJobs)),
	}
	_ = repository.ensureIndexes(context.Background())
	return repository
}

func (repository *JobRepository) ensureIndexes(contextValue context.Context) error {
	_, _ = repository.collection.Indexes().CreateMany(contextValue, model.JobIndexes)
	return nil
}

func (repository *JobRepository) Create(contextValue context.Context, job *model.Job) (_ *model.Job, returnedError error) {
	if job.ID.IsZero() {
		job.ID = primitive.NewObjectID()
	}
	if job.PostedAt.IsZero() {
		job.PostedAt = time.Now().UTC()
	}

	insertResult, insertError := repository.collection.InsertOne(contextValue, job)
	if insertError != nil {
		return nil, insertError
	}
	objectID, ok := insertResult.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("unexpected InsertedID type: %T", insertResult.InsertedID)
	}
	job.ID = objectID
	return job, nil
}

func (repository *JobRepository) GetByID(contextValue context.Context, jobIdentifier primitive.ObjectID) (_ *model.Job, returnedError error) {
	var job model.Job
	if returnedError = repository.collection.FindOne(contextValue, bson.M{"_id": jobIdentifier}).Decode(&job); returnedError != nil {
		return nil, returnedError
	}
	return &job, nil
}

// List 依 postedAt 由新到舊
func (repository *JobRepository) List(contextValue context.Context, opts core.ListOptions) (_ []*model.Job, returnedError error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "postedAt", Value: -1}})
	if opts.Size > 0 {
		findOptions = findOptions.SetSkip(opts.Skip()).SetLimit(opts.Size)
	}
	filter := opts.Filter
	if filter == nil {
		filter = bson.M{}
	}

	cursor, findError := repository.collection.Find(contextValue, filter, findOptions)
	if findError != nil {
		return nil, findError
	}
	defer cursor.Close(contextValue)

	var results []*model.Job
	for cursor.Next(contextValue) {
		var job model.Job
		if decodeError := cursor.Decode(&job); decodeError != nil {
			return nil, decodeError
		}
		results = append(results, &job)
	}
	if cursorError := cursor.Err(); cursorError != nil {
		return nil, cursorError
	}

	return results, nil
}
