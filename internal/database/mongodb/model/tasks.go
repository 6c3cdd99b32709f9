package model

import (
	"time"

	"fieldforce/internal/core"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Task struct {
	ID          primitive.ObjectID `json:"id" bson:"_id"`
	EmployeeID  string             `json:"employeeId" bson:"employeeId"`
	Title       string             `json:"title" bson:"title"`
	Description string             `json:"description" bson:"description"`
	Priority    core.TaskPriority  `json:"priority" bson:"priority"`
	Status      core.TaskStatus    `json:"status" bson:"status"`
	AssignedAt  time.Time          `json:"assignedAt" bson:"assignedAt"`
}

var TaskIndexes = []mongo.IndexModel{
	{
		Keys:    bson.D{{Key: "employeeId", Value: 1}, {Key: "status", Value: 1}},
		Options: options.Index().SetName("idx_employeeId_status"),
	},
}
