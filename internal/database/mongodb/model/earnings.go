package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Earning 批次提交時一行一筆，各自獨立，共用 employeeId
type Earning struct {
	ID           primitive.ObjectID `json:"id" bson:"_id"`
	EmployeeID   string             `json:"employeeId" bson:"employeeId"`
	EmployeeName string             `json:"employeeName" bson:"employeeName"`
	Description  string             `json:"description" bson:"description"`
	Amount       float64            `json:"amount" bson:"amount"` // > 0
	Date         time.Time          `json:"date" bson:"date"`
}

var EarningIndexes = []mongo.IndexModel{
	{
		Keys:    bson.D{{Key: "employeeId", Value: 1}, {Key: "date", Value: -1}},
		Options: options.Index().SetName("idx_employeeId_date"),
	},
}
