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

type NewsletterRepository struct {
	collection *mongo.Collection
}

func NewNewsletterRepository(mongoClient *client.MongoClient) *NewsletterRepository {
	repository := &NewsletterRepository{
		collection: mongoClient.Client().Database(string(core.MongoDBFieldforce)).Collection(string(core.MongoCollectionNewsletterSubscribers)),
	}
	_ = repository.ensureIndexes(context.Background())
	return repository
}

func (repository *NewsletterRepository) ensureIndexes(contextValue context.Context) error {
	_, _ = repository.collection.Indexes().CreateMany(contextValue, model.NewsletterSubscriberIndexes)
	return nil
}

// FindByEmail 查無回傳 mongo.ErrNoDocuments
func (repository *NewsletterRepository) FindByEmail(contextValue context.Context, email string) (_ *model.NewsletterSubscriber, returnedError error) {
	var subscriber model.NewsletterSubscriber
	if findError := repository.collection.FindOne(contextValue, bson.M{"email": email}).Decode(&subscriber); findError != nil {
		return nil, findError
	}
	return &subscriber, nil
}

func (repository *NewsletterRepository) Create(contextValue context.Context, subscriber *model.NewsletterSubscriber) (_ *model.NewsletterSubscriber, returnedError error) {
	if subscriber.ID.IsZero() {
		subscriber.ID = primitive.NewObjectID()
	}
	if subscriber.SubscribedAt.IsZero() {
		subscriber.SubscribedAt = time.Now().UTC()
	}

	if _, insertError := repository.collection.InsertOne(contextValue, subscriber); insertError != nil {
		return nil, insertError
	}
	return subscriber, nil
}

func (repository *NewsletterRepository) IsDuplicate(err error) bool {
	return mongo.IsDuplicateKeyError(err)
}

func (repository *NewsletterRepository) List(contextValue context.Context) (_ []*model.NewsletterSubscriber, returnedError error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "subscribedAt", Value: -1}})

	cursor, findError := repository.collection.Find(contextValue, bson.M{}, findOptions)
	if findError != nil {
		return nil, findError
	}
	defer cursor.Close(contextValue)

	var results []*model.NewsletterSubscriber
	for cursor.Next(contextValue) {
		var subscriber model.NewsletterSubscriber
		if decodeError := cursor.Decode(&subscriber); decodeError != nil {
			return nil, decodeError
		}
		results = append(results, &subscriber)
	}
	if cursorError := cursor.Err(); cursorError != nil {
		return nil, cursorError
	}

	return results, nil
}
