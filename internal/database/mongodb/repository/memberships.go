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

type MembershipRepository struct {
	collection *mongo.Collection
}

func NewMembershipRepository(mongoClient *client.MongoClient) *MembershipRepository {
	repository := &MembershipRepository{
		collection: mongoClient.Client().Database(string(core.MongoDBFieldforce)).Collection(string(core.MongoCollectionMemberships)),
	}
	_ = repository.ensureIndexes(context.Background())
	return repository
}

func (repository *MembershipRepository) ensureIndexes(contextValue context.Context) error {
	_, _ = repository.collection.Indexes().CreateMany(contextValue, model.MembershipIndexes)
	return nil
}

func (repository *MembershipRepository) Create(contextValue context.Context, membership *model.Membership) (_ *model.Membership, returnedError error) {
	if membership.ID.IsZero() {
		membership.ID = primitive.NewObjectID()
	}
	if membership.SubmittedAt.IsZero() {
		membership.SubmittedAt = time.Now().UTC()
	}
	if membership.Status == "" {
		membership.Status = core.MembershipPending
	}

	if _, insertError := repository.collection.InsertOne(contextValue, membership); insertError != nil {
		return nil, insertError
	}
	return membership, nil
}

func (repository *MembershipRepository) GetByID(contextValue context.Context, membershipIdentifier primitive.ObjectID) (_ *model.Membership, returnedError error) {
	var membership model.Membership
	if findError := repository.collection.FindOne(contextValue, bson.M{"_id": membershipIdentifier}).Decode(&membership); findError != nil {
		return nil, findError
	}
	return &membership, nil
}

// List 依 submittedAt 由新到舊
func (repository *MembershipRepository) List(contextValue context.Context) (_ []*model.Membership, returnedError error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "submittedAt", Value: -1}})

	cursor, findError := repository.collection.Find(contextValue, bson.M{}, findOptions)
	if findError != nil {
		return nil, findError
	}
	defer cursor.Close(contextValue)

	var results []*model.Membership
	for cursor.Next(contextValue) {
		var membership model.Membership
		if decodeError := cursor.Decode(&membership); decodeError != nil {
			return nil, decodeError
		}
		results = append(results, &membership)
	}
	if cursorError := cursor.Err(); cursorError != nil {
		return nil, cursorError
	}

	return results, nil
}

// MarkVerified 只允許 pending → verified；filter 帶 status 條件，
// 已 verified 的文件不會被再次改寫
func (repository *MembershipRepository) MarkVerified(contextValue context.Context, membershipIdentifier primitive.ObjectID) (int64, error) {
	updateResult, updateError := repository.collection.UpdateOne(contextValue,
		bson.M{"_id": membershipIdentifier, "status": core.MembershipPending},
		bson.M{"$set": bson.M{"status": core.MembershipVerified}},
	)
	if updateError != nil {
		return 0, updateError
	}
	return updateResult.ModifiedCount, nil
}
