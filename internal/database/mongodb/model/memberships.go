package model

import (
	"time"

	"fieldforce/internal/core"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Membership 狀態單向：pending → verified，永不回退
type Membership struct {
	ID          primitive.ObjectID    `json:"id" bson:"_id"`
	Name        string                `json:"name" bson:"name"`
	Email       string                `json:"email" bson:"email"`
	Phone       string                `json:"phone" bson:"phone"`
	District    string                `json:"district" bson:"district"`
	State       string                `json:"state" bson:"state"`
	UTR         string                `json:"utr" bson:"utr"`
	Status      core.MembershipStatus `json:"status" bson:"status"`
	SubmittedAt time.Time             `json:"submittedAt" bson:"submittedAt"`
}

var MembershipIndexes = []mongo.IndexModel{
	{
		Keys:    bson.D{{Key: "submittedAt", Value: -1}},
		Options: options.Index().SetName("idx_submittedAt_desc"),
	},
	{
		Keys:    bson.D{{Key: "status", Value: 1}},
		Options: options.Index().SetName("idx_status"),
	},
}
