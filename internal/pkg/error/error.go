package error

import "net/http"

type Error struct {
	httpCode    int
	errorCode   int
	errorMsg    string
	errorDesc   string
	fieldErrors map[string][]string
}

func New(httpCode, errorCode int, errorMsg string, errorDesc string) *Error {
	return &Error{
		httpCode:  httpCode,
		errorCode: errorCode,
		errorMsg:  errorMsg,
		errorDesc: errorDesc,
	}
}

func From(err error) *Error {
	if appErr, ok := err.(*Error); ok {
		return appErr
	}
	return InternalServer(err.Error())
}

// ✅ 驗證錯誤 (400 系列)：欄位層級錯誤以資料形式帶回，不往外丟例外
func ValidateErr(errorDesc string) *Error {
	return New(http.StatusBadRequest, BAD_REQUEST_BODY, "bad-request/body", errorDesc)
}

func ValidatePathParamsErr(errorDesc string) *Error {
	return New(http.StatusBadRequest, BAD_REQUEST_PARAMS, "bad-request/params", errorDesc)
}

// ValidationFailed 帶欄位→訊息列表的驗證錯誤
func ValidationFailed(errorDesc string, fields map[string][]string) *Error {
	e := New(http.StatusBadRequest, VALIDATION_FAILED, "validation-failed", errorDesc)
	e.fieldErrors = fields
	return e
}

func BadRequest(errorDesc string, errorCode ...int) *Error {
	errCode := BAD_REQUEST_BODY
	if len(errorCode) > 0 {
		errCode = errorCode[0]
	}
	return New(http.StatusBadRequest, errCode, "bad-request", errorDesc)
}

func BadRequestHeaders(errorDesc string) *Error {
	return New(http.StatusBadRequest, BAD_REQUEST_HEADERS, "bad-request-headers", errorDesc)
}

// AttendanceAlreadyMarked 一天只允許一筆出勤
func AttendanceAlreadyMarked(errorDesc string) *Error {
	return New(http.StatusConflict, ATTENDANCE_ALREADY_MARKED, "attendance-already-marked", errorDesc)
}

// ✅ 伺服器內部錯誤 (500 系列)
func InternalServer(errorDesc string) *Error {
	return New(http.StatusInternalServerError, INTERNAL_ERROR, "internal-server-error", errorDesc)
}

func DatabaseError(errorDesc string) *Error {
	return New(http.StatusInternalServerError, DATABASE_ERROR, "database-error", errorDesc)
}

func ServiceUnavailable(errorDesc string) *Error {
	return New(http.StatusServiceUnavailable, SERVICE_UNAVAILABLE, "service-unavailable", errorDesc)
}

func FormLimiterUnavailable(desc string) *Error {
	return New(http.StatusServiceUnavailable, SERVICE_UNAVAILABLE, "form-limiter-unavailable", desc)
}

// ✅ 外部協作者錯誤：Identity Bridge / 物件儲存
func IdentityExists(errorDesc string) *Error {
	return New(http.StatusConflict, IDENTITY_EXISTS, "identity-exists", errorDesc)
}

func WeakCredential(errorDesc string) *Error {
	return New(http.StatusBadRequest, WEAK_CREDENTIAL, "weak-credential", errorDesc)
}

func IdentityBridgeError(errorDesc string) *Error {
	return New(http.StatusBadGateway, IDENTITY_BRIDGE_ERROR, "identity-bridge-failed", errorDesc)
}

func UploadError(errorDesc string) *Error {
	return New(http.StatusBadGateway, UPLOAD_ERROR, "resume-upload-failed", errorDesc)
}

// ✅ 權限錯誤 (401, 403)
func Unauthorized(errorDesc string, errorCode ...int) *Error {
	errCode := UNAUTHORIZED
	if len(errorCode) > 0 {
		errCode = errorCode[0]
	}
	return New(http.StatusUnauthorized, errCode, "unauthorized", errorDesc)
}

func InvalidSession(errorDesc string) *Error {
	return New(http.StatusUnauthorized, INVALID_SESSION, "invalid-session", errorDesc)
}

func UnauthorizedAdminKey(errorDesc string) *Error {
	return New(http.StatusForbidden, UNAUTHORIZED_ADMIN_KEY, "unauthorized-admin-key", errorDesc)
}

func Forbidden(errorDesc string, errorCode ...int) *Error {
	errCode := FORBIDDEN
	if len(errorCode) > 0 {
		errCode = errorCode[0]
	}
	return New(http.StatusForbidden, errCode, "forbidden", errorDesc)
}

func RateLimitExceeded(errorDesc string) *Error {
	return New(http.StatusTooManyRequests, RATE_LIMIT_EXCEEDED, "rate-limit-exceeded", errorDesc)
}

// ✅ 資源找不到 (404)
func NotFound(errorDesc string, errorCode ...int) *Error {
	errCode := NOT_FOUND
	if len(errorCode) > 0 {
		errCode = errorCode[0]
	}
	return New(http.StatusNotFound, errCode, "not-found", errorDesc)
}

func (e *Error) HttpCode() int {
	return e.httpCode
}

func (e *Error) ErrorCode() int {
	return e.errorCode
}

func (e *Error) ErrorDesc() string {
	return e.errorDesc
}

// FieldErrors 欄位→訊息列表；非驗證錯誤回傳 nil
func (e *Error) FieldErrors() map[string][]string {
	return e.fieldErrors
}

func (e *Error) Error() string {
	return e.errorMsg
}

func MapHttpStatusToError(status int, desc string) *Error {
	switch status {
	case http.StatusBadRequest:
		return BadRequest(desc)
	case http.StatusUnauthorized:
		return Unauthorized(desc)
	case http.StatusForbidden:
		return Forbidden(desc)
	case http.StatusNotFound:
		return NotFound(desc)
	case http.StatusInternalServerError:
		return InternalServer(desc)
	case http.StatusServiceUnavailable:
		return ServiceUnavailable(desc)
	default:
		return InternalServer(desc)
	}
}
