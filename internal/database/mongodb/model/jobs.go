package model

import (
	"time"

	"fieldforce/internal/core"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Job struct {
	ID            primitive.ObjectID `json:"id" bson:"_id"`
	Title         string             `json:"title" bson:"title"`
	Company       string             `json:"company" bson:"company"`
	Location      string             `json:"location" bson:"location"`
	Type          core.JobType       `json:"type" bson:"type"`
	WorkMode      core.WorkMode      `json:"workMode" bson:"workMode"`
	ExperienceMin int                `json:"experienceMin" bson:"experienceMin"`
	ExperienceMax int                `json:"experienceMax" bson:"experienceMax"`
	SalaryMin     int                `json:"salaryMin" bson:"salaryMin"`
	SalaryMax     int                `json:"salaryMax" bson:"salaryMax"`
	Department    string             `json:"department" bson:"department"`
	Tags          []string           `json:"tags" bson:"tags"`
	Description   string             `json:"description" bson:"description"`
	PostedAt      time.Time          `json:"postedAt" bson:"postedAt"`
}

var JobIndexes = []mongo.IndexModel{
	{
		Keys:    bson.D{{Key: "postedAt", Value: -1}},
		Options: options.Index().SetName("idx_postedAt_desc"),
	},
	{
		Keys:    bson.D{{Key: "department", Value: 1}},
		Options: options.Index().SetName("idx_department"),
	},
}
