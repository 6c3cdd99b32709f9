package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DSR 每日工作報告；HasTravelled 時 KM 欄位必須成對且 closing > opening
type DSR struct {
	ID           primitive.ObjectID `json:"id" bson:"_id"`
	EmployeeID   string             `json:"employeeId" bson:"employeeId"`
	EmployeeName string             `json:"employeeName" bson:"employeeName"`
	Description  string             `json:"description" bson:"description"`
	HasTravelled bool               `json:"hasTravelled" bson:"hasTravelled"`
	OpeningKm    *float64           `json:"openingKm,omitempty" bson:"openingKm,omitempty"`
	ClosingKm    *float64           `json:"closingKm,omitempty" bson:"closingKm,omitempty"`
	Date         time.Time          `json:"date" bson:"date"`
}

var DSRIndexes = []mongo.IndexModel{
	{
		Keys:    bson.D{{Key: "employeeId", Value: 1}, {Key: "date", Value: -1}},
		Options: options.Index().SetName("idx_employeeId_date"),
	},
}
