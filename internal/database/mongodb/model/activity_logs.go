package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ActivityLog 由外部 pipeline 寫入，後台僅讀取
type ActivityLog struct {
	ID        primitive.ObjectID `json:"id" bson:"_id"`
	Actor     string             `json:"actor,omitempty" bson:"actor,omitempty"`
	Action    string             `json:"action" bson:"action"`
	Detail    string             `json:"detail,omitempty" bson:"detail,omitempty"`
	Timestamp time.Time          `json:"timestamp" bson:"timestamp"`
}

var ActivityLogIndexes = []mongo.IndexModel{
	{
		Keys:    bson.D{{Key: "timestamp", Value: -1}},
		Options: options.Index().SetName("idx_timestamp_desc"),
	},
}
