package service

import (
	"github.com/google/wire"
)

// Wire 依賴提供
var ProviderSet = wire.NewSet(
	NewHealthService,
	NewJobService,
	NewApplicationService,
	NewEmployeeService,
	NewAuthService,
	NewDSRService,
	NewCallLogService,
	NewEarningService,
	NewAttendanceService,
	NewTaskService,
	NewMembershipService,
	NewNewsletterService,
	NewReportService,
	NewActivityService,
)
