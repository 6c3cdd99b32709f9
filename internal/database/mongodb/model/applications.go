package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Application 送出後不可變；jobId 只是 back-reference，不是所有權
type Application struct {
	ID             primitive.ObjectID `json:"id" bson:"_id"`
	JobID          primitive.ObjectID `json:"jobId" bson:"jobId"`
	FullName       string             `json:"fullName" bson:"fullName"`
	Email          string             `json:"email" bson:"email"`
	Mobile         string             `json:"mobile" bson:"mobile"`
	HighestDegree  string             `json:"highestDegree" bson:"highestDegree"`
	Institution    string             `json:"institution" bson:"institution"`
	GraduationYear int                `json:"graduationYear" bson:"graduationYear"`
	ExperienceYrs  int                `json:"experienceYears" bson:"experienceYears"`
	CurrentCompany string             `json:"currentCompany,omitempty" bson:"currentCompany,omitempty"`
	Skills         []string           `json:"skills" bson:"skills"`
	Languages      []string           `json:"languages" bson:"languages"`
	ResumeURL      string             `json:"resumeUrl,omitempty" bson:"resumeUrl,omitempty"`
	ConfirmInfo    bool               `json:"confirmInfo" bson:"confirmInfo"`
	AgreeTerms     bool               `json:"agreeTerms" bson:"agreeTerms"`
	SubmittedAt    time.Time          `json:"submittedAt" bson:"submittedAt"`
}

var ApplicationIndexes = []mongo.IndexModel{
	{
		Keys:    bson.D{{Key: "jobId", Value: 1}, {Key: "submittedAt", Value: -1}},
		Options: options.Index().SetName("idx_jobId_submittedAt"),
	},
}
