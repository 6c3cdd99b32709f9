package model

import (
	"time"

	"fieldforce/internal/core"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Attendance 一人一天一筆，由 uniq_employeeId_date 保證
type Attendance struct {
	ID           primitive.ObjectID    `json:"id" bson:"_id"`
	EmployeeID   string                `json:"employeeId" bson:"employeeId"`
	EmployeeName string                `json:"employeeName" bson:"employeeName"`
	Status       core.AttendanceStatus `json:"status" bson:"status"`
	Tasks        string                `json:"tasks,omitempty" bson:"tasks,omitempty"`
	Date         string                `json:"date" bson:"date"` // YYYY-MM-DD
	CreatedAt    time.Time             `json:"createdAt" bson:"createdAt"`
}

var AttendanceIndexes = []mongo.IndexModel{
	{
		Keys:    bson.D{{Key: "employeeId", Value: 1}, {Key: "date", Value: -1}},
		Options: options.Index().SetName("uniq_employeeId_date").SetUnique(true),
	},
	{
		Keys:    bson.D{{Key: "date", Value: -1}},
		Options: options.Index().SetName("idx_date_desc"),
	},
}
