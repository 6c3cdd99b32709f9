package core

// EmployeeStatus
type EmployeeStatus string

const (
	EmployeeActive   EmployeeStatus = "active"   // 在職可用
	EmployeeInactive EmployeeStatus = "inactive" // 停用（離職或凍結）
)

// AttendanceStatus
type AttendanceStatus string

const (
	AttendanceWorking AttendanceStatus = "working"
	AttendanceLeave   AttendanceStatus = "leave"
)

// TaskPriority
type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "Low"
	TaskPriorityMedium TaskPriority = "Medium"
	TaskPriorityHigh   TaskPriority = "High"
)

// TaskStatus
type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in-progress"
	TaskStatusDone       TaskStatus = "done"
)

// MembershipStatus 只允許 pending → verified，不可逆
type MembershipStatus string

const (
	MembershipPending  MembershipStatus = "pending"
	MembershipVerified MembershipStatus = "verified"
)

// JobType / WorkMode 公開職缺欄位
type JobType string

const (
	JobTypeFullTime   JobType = "full-time"
	JobTypePartTime   JobType = "part-time"
	JobTypeContract   JobType = "contract"
	JobTypeInternship JobType = "internship"
)

type WorkMode string

const (
	WorkModeOnSite WorkMode = "on-site"
	WorkModeRemote WorkMode = "remote"
	WorkModeHybrid WorkMode = "hybrid"
)
