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

type AttendanceRepository struct {
	collection *mongo.Collection
}

func NewAttendanceRepository(mongoClient *client.MongoClient) *AttendanceRepository {
	repository := &AttendanceRepository{
		collection: mongoClient.Client().Database(string(core.MongoDBFieldforce)).Collection(string(core.MongoCollectionAttendance)),
	}
	_ = repository.ensureIndexes(context.Background())
	return repository
}

func (repository *AttendanceRepository) ensureIndexes(contextValue context.Context) error {
	_, _ = repository.collection.Indexes().CreateMany(contextValue, model.AttendanceIndexes)
	return nil
}

// Create 一人一天一筆由 uniq_employeeId_date 保證；撞索引時回傳原始
// duplicate key error，由 service 層轉成業務錯誤
func (repository *AttendanceRepository) Create(contextValue context.Context, attendance *model.Attendance) (_ *model.Attendance, returnedError error) {
	if attendance.ID.IsZero() {
		attendance.ID = primitive.NewObjectID()
	}
	if attendance.CreatedAt.IsZero() {
		attendance.CreatedAt = time.Now().UTC()
	}

	if _, insertError := repository.collection.InsertOne(contextValue, attendance); insertError != nil {
		return nil, insertError
	}
	return attendance, nil
}

// IsDuplicate 判斷是否為唯一索引衝突
func (repository *AttendanceRepository) IsDuplicate(err error) bool {
	return mongo.IsDuplicateKeyError(err)
}

// ListByEmployee 依 date 由新到舊
func (repository *AttendanceRepository) ListByEmployee(contextValue context.Context, employeeIdentifier string) (_ []*model.Attendance, returnedError error) {
	return repository.list(contextValue, bson.M{"employeeId": employeeIdentifier})
}

// ListByDate 管理端依日期撈全員出勤
func (repository *AttendanceRepository) ListByDate(contextValue context.Context, date string) (_ []*model.Attendance, returnedError error) {
	return repository.list(contextValue, bson.M{"date": date})
}

func (repository *AttendanceRepository) list(contextValue context.Context, filter bson.M) (_ []*model.Attendance, returnedError error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})

	cursor, findError := repository.collection.Find(contextValue, filter, findOptions)
	if findError != nil {
		return nil, findError
	}
	defer cursor.Close(contextValue)

	var results []*model.Attendance
	for cursor.Next(contextValue) {
		var attendance model.Attendance
		if decodeError := cursor.Decode(&attendance); decodeError != nil {
			return nil, decodeError
		}
		results = append(results, &attendance)
	}
	if cursorError := cursor.Err(); cursorError != nil {
		return nil, cursorError
	}

	return results, nil
}

// CountByStatusOnDate 每日摘要信用：working / leave 各自計數
func (repository *AttendanceRepository) CountByStatusOnDate(contextValue context.Context, date string, status core.AttendanceStatus) (int64, error) {
	return repository.collection.CountDocuments(contextValue, bson.M{"date": date, "status": status})
}
