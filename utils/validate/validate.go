package validate

import (
	"strconv"

	"fieldforce/internal/core"
	cErr "fieldforce/internal/pkg/error"
	"fieldforce/internal/pkg/request"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func ParseObjectID(c *gin.Context, key string) (id primitive.ObjectID, cause error, responseErr error) {
	id, err := primitive.ObjectIDFromHex(c.Param(key))
	if err != nil {
		return primitive.NilObjectID, err, cErr.ValidatePathParamsErr("invalid " + key)
	}
	return id, nil, nil
}

// BindAndValidate JSON body 綁定 + 驗證；錯誤整理為欄位→訊息列表
func BindAndValidate(c *gin.Context, req any) (cause error, responseErr error) {
	if err := c.ShouldBindJSON(req); err != nil {
		if _, ok := err.(validator.ValidationErrors); ok {
			return err, request.GetError(req, err)
		}
		// 數值欄位給了非數字等解析失敗，一律當驗證錯誤，不靜默歸零
		return err, cErr.ValidateErr(err.Error())
	}
	return nil, nil
}

// BindQueryAndValidate query string 綁定 + 驗證
func BindQueryAndValidate(c *gin.Context, req any) (cause error, responseErr error) {
	if err := c.ShouldBindQuery(req); err != nil {
		if _, ok := err.(validator.ValidationErrors); ok {
			return err, request.GetError(req, err)
		}
		return err, cErr.ValidateErr(err.Error())
	}
	return nil, nil
}

// BindFormAndValidate multipart/form 綁定 + 驗證（履歷上傳表單用）
func BindFormAndValidate(c *gin.Context, req any) (cause error, responseErr error) {
	if err := c.ShouldBind(req); err != nil {
		if _, ok := err.(validator.ValidationErrors); ok {
			return err, request.GetError(req, err)
		}
		return err, cErr.ValidateErr(err.Error())
	}
	return nil, nil
}

func GetInt64Query(c *gin.Context, key string, defaultVal int64) (int64, error) {
	if v := c.Query(key); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0, err
		}
		return n, nil
	}
	return defaultVal, nil
}

// ===== EmployeeStatus =====
var validEmployeeStatuses = []core.EmployeeStatus{
	core.EmployeeActive,
	core.EmployeeInactive,
}

func IsValidEmployeeStatus(status string) bool {
	for _, v := range validEmployeeStatuses {
		if core.EmployeeStatus(status) == v {
			return true
		}
	}
	return false
}

// ===== AttendanceStatus =====
var validAttendanceStatuses = []core.AttendanceStatus{
	core.AttendanceWorking,
	core.AttendanceLeave,
}

func IsValidAttendanceStatus(status string) bool {
	for _, v := range validAttendanceStatuses {
		if core.AttendanceStatus(status) == v {
			return true
		}
	}
	return false
}

// ===== TaskPriority =====
var validTaskPriorities = []core.TaskPriority{
	core.TaskPriorityLow,
	core.TaskPriorityMedium,
	core.TaskPriorityHigh,
}

func IsValidTaskPriority(priority string) bool {
	for _, v := range validTaskPriorities {
		if core.TaskPriority(priority) == v {
			return true
		}
	}
	return false
}
