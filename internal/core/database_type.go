package core

import "go.mongodb.org/mongo-driver/bson"

// ─── Database Types ────────────────────────────────────────────────────────────

// DatabaseType defines the type of database
type DatabaseType string

const (
	Mongo DatabaseType = "mongo"
	Redis DatabaseType = "redis"
)

// Databases contains all supported database types
var Databases = []DatabaseType{Mongo, Redis}

type MongoDatabaseName string
type MongoCollection string
type RedisKey string
type FluentdSubTag string

// ─── MongoDB ───────────────────────────────────────────────────────────────────
const (
	MongoDBFieldforce MongoDatabaseName = "fieldforce"
)

// MongoDB collections
const (
	MongoCollectionJobs                  MongoCollection = "jobs"
	MongoCollectionApplications          MongoCollection = "applications"
	MongoCollectionEmployees             MongoCollection = "employees"
	MongoCollectionDSR                   MongoCollection = "dsr"
	MongoCollectionCallLogs              MongoCollection = "call_logs"
	MongoCollectionEarnings              MongoCollection = "earnings"
	MongoCollectionAttendance            MongoCollection = "attendance"
	MongoCollectionTasks                 MongoCollection = "tasks"
	MongoCollectionMemberships           MongoCollection = "memberships"
	MongoCollectionNewsletterSubscribers MongoCollection = "newsletter_subscribers"
	MongoCollectionActivityLogs          MongoCollection = "activity_logs"
)

// ─── Redis Keys ────────────────────────────────────────────────────────────────

const (
	RedisKeyListingJobs        RedisKey = "listing:jobs"        // 職缺列表快取
	RedisKeyListingEmployees   RedisKey = "listing:employees"   // 員工列表快取
	RedisKeyListingMemberships RedisKey = "listing:memberships" // 會員申請列表快取
	RedisKeyListingNewsletter  RedisKey = "listing:newsletter"  // 電子報訂閱列表快取
	RedisKeyFormLimit          RedisKey = "form_limit"          // 公開表單限流
	RedisKeyServerName         RedisKey = "fieldforce"          // 伺服器名稱
)

const (
	FluentdRequest  FluentdSubTag = "request_log"
	FluentdResponse FluentdSubTag = "response_log"
	FluentdActivity FluentdSubTag = "fieldforce_activity_log"
)

type ListOptions struct {
	Filter bson.M `json:"filter,omitempty" bson:"filter,omitempty"`
	Sort   bson.D `json:"sort,omitempty" bson:"sort,omitempty"`
	Page   int64  `json:"page,omitempty" bson:"page,omitempty"`
	Size   int64  `json:"size,omitempty" bson:"size,omitempty"`
}

// Skip 頁碼從 1 起算，page=1 不略過任何文件
func (listOptions ListOptions) Skip() int64 {
	if listOptions.Page <= 1 {
		return 0
	}
	return (listOptions.Page - 1) * listOptions.Size
}
