package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type CallLog struct {
	ID           primitive.ObjectID `json:"id" bson:"_id"`
	EmployeeID   string             `json:"employeeId" bson:"employeeId"`
	EmployeeName string             `json:"employeeName" bson:"employeeName"`
	ClientName   string             `json:"clientName" bson:"clientName"`
	ClientMobile string             `json:"clientMobile" bson:"clientMobile"`
	Topic        string             `json:"topic" bson:"topic"`
	Duration     int                `json:"duration" bson:"duration"` // 分鐘，≥1
	Date         time.Time          `json:"date" bson:"date"`
}

var CallLogIndexes = []mongo.IndexModel{
	{
		Keys:    bson.D{{Key: "employeeId", Value: 1}, {Key: "date", Value: -1}},
		Options: options.Index().SetName("idx_employeeId_date"),
	},
}
