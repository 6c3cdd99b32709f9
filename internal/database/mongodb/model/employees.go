package model

import (
	"time"

	"fieldforce/internal/core"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Employee 的 _id 即 Identity Bridge 發出的 UID，1:1 綁定帳號
type Employee struct {
	ID            string              `json:"id" bson:"_id"`
	Name          string              `json:"name" bson:"name"`
	UserID        string              `json:"userId" bson:"userId"`
	Mobile        string              `json:"mobile" bson:"mobile"`
	PersonalEmail string              `json:"personalEmail" bson:"personalEmail"`
	District      string              `json:"district" bson:"district"`
	State         string              `json:"state" bson:"state"`
	Pincode       string              `json:"pincode" bson:"pincode"`
	Status        core.EmployeeStatus `json:"status" bson:"status"`
	CreatedAt     time.Time           `json:"createdAt" bson:"createdAt"`
	LastSeen      *time.Time          `json:"lastSeen,omitempty" bson:"lastSeen,omitempty"`
}

var EmployeeIndexes = []mongo.IndexModel{
	{
		Keys:    bson.D{{Key: "userId", Value: 1}},
		Options: options.Index().SetName("uniq_userId").SetUnique(true),
	},
	{
		Keys:    bson.D{{Key: "createdAt", Value: -1}},
		Options: options.Index().SetName("idx_createdAt_desc"),
	},
	{
		Keys:    bson.D{{Key: "status", Value: 1}},
		Options: options.Index().SetName("idx_status"),
	},
}
