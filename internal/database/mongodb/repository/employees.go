package repository

import (
	"context"
	"time"

	"fieldforce/internal/core"
	client "fieldforce/internal/database/client"
	"fieldforce/internal/database/mongodb/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type EmployeeRepository struct {
	collection *mongo.Collection
}

func NewEmployeeRepository(mongoClient *client.MongoClient) *EmployeeRepository {
	repository := &EmployeeRepository{
		collection: mongoClient.Client().Database(string(core.MongoDBFieldforce)).Collection(string(core.MongoCollectionEmployees)),
	}
	_ = repository.ensureIndexes(context.Background())
	return repository
}

func (repository *EmployeeRepository) ensureIndexes(contextValue context.Context) error {
	_, _ = repository.collection.Indexes().CreateMany(contextValue, model.EmployeeIndexes)
	return nil
}

// Create 的 _id 由 Identity Bridge 發出的 UID 決定，不在這裡產生
func (repository *EmployeeRepository) Create(contextValue context.Context, employee *model.Employee) (_ *model.Employee, returnedError error) {
	if employee.CreatedAt.IsZero() {
		employee.CreatedAt = time.Now().UTC()
	}

	if _, insertError := repository.collection.InsertOne(contextValue, employee); insertError != nil {
		return nil, insertError
	}
	return employee, nil
}

func (repository *EmployeeRepository) GetByID(contextValue context.Context, employeeIdentifier string) (_ *model.Employee, returnedError error) {
	var employee model.Employee
	if returnedError = repository.collection.FindOne(contextValue, bson.M{"_id": employeeIdentifier}).Decode(&employee); returnedError != nil {
		return nil, returnedError
	}
	return &employee, nil
}

// List 依 createdAt 由新到舊
func (repository *EmployeeRepository) List(contextValue context.Context, opts core.ListOptions) (_ []*model.Employee, returnedError error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
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

	var results []*model.Employee
	for cursor.Next(contextValue) {
		var employee model.Employee
		if decodeError := cursor.Decode(&employee); decodeError != nil {
			return nil, decodeError
		}
		results = append(results, &employee)
	}
	if cursorError := cursor.Err(); cursorError != nil {
		return nil, cursorError
	}

	return results, nil
}

func (repository *EmployeeRepository) UpdateStatus(contextValue context.Context, employeeIdentifier string, status core.EmployeeStatus) (returnedCount int64, returnedError error) {
	result, updateError := repository.collection.UpdateOne(contextValue,
		bson.M{"_id": employeeIdentifier},
		bson.M{"$set": bson.M{"status": status}})
	if updateError != nil {
		return 0, updateError
	}
	if result.MatchedCount == 0 {
		return 0, mongo.ErrNoDocuments
	}
	return result.MatchedCount, nil
}

func (repository *EmployeeRepository) UpdateLastSeen(contextValue context.Context, employeeIdentifier string, seenAt time.Time) (returnedCount int64, returnedError error) {
	result, updateError := repository.collection.UpdateOne(contextValue,
		bson.M{"_id": employeeIdentifier},
		bson.M{"$set": bson.M{"lastSeen": seenAt}})
	if updateError != nil {
		return 0, updateError
	}
	return result.MatchedCount, nil
}

// DeleteByID 僅供註冊第二階段失敗時的補償清理
func (repository *EmployeeRepository) DeleteByID(contextValue context.Context, employeeIdentifier string) (returnedError error) {
	_, returnedError = repository.collection.DeleteOne(contextValue, bson.M{"_id": employeeIdentifier})
	return returnedError
}
