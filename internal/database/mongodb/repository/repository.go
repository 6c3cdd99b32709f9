package repository

import (
	"github.com/google/wire"
)

// 統一管理所有 MongoDB repository
type MongoDBRepository struct {
	jobRepo         *JobRepository
	applicationRepo *ApplicationRepository
	employeeRepo    *EmployeeRepository
	dsrRepo         *DSRRepository
	callLogRepo     *CallLogRepository
	earningRepo     *EarningRepository
	attendanceRepo  *AttendanceRepository
	taskRepo        *TaskRepository
	membershipRepo  *MembershipRepository
	newsletterRepo  *NewsletterRepository
	activityRepo    *ActivityLogRepository
}

// 建立 MongoDB repository 物件
func NewMongoDBRepository(
	jobRepo *JobRepository,
	applicationRepo *ApplicationRepository,
	employeeRepo *EmployeeRepository,
	dsrRepo *DSRRepository,
	callLogRepo *CallLogRepository,
	earningRepo *EarningRepository,
	attendanceRepo *AttendanceRepository,
	taskRepo *TaskRepository,
	membershipRepo *MembershipRepository,
	newsletterRepo *NewsletterRepository,
	activityRepo *ActivityLogRepository,
) *MongoDBRepository {
	return &MongoDBRepository{
		jobRepo:         jobRepo,
		applicationRepo: applicationRepo,
		employeeRepo:    employeeRepo,
		dsrRepo:         dsrRepo,
		callLogRepo:     callLogRepo,
		earningRepo:     earningRepo,
		attendanceRepo:  attendanceRepo,
		taskRepo:        taskRepo,
		membershipRepo:  membershipRepo,
		newsletterRepo:  newsletterRepo,
		activityRepo:    activityRepo,
	}
}

// Wire 依賴提供
var ProviderSet = wire.NewSet(
	NewJobRepository,
	NewApplicationRepository,
	NewEmployeeRepository,
	NewDSRRepository,
	NewCallLogRepository,
	NewEarningRepository,
	NewAttendanceRepository,
	NewTaskRepository,
	NewMembershipRepository,
	NewNewsletterRepository,
	NewActivityLogRepository,
	NewMongoDBRepository)
