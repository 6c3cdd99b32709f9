package error

const (
	// 0 ~ 999: 成功類別
	SUCCESS = 0 // 200 OK

	// 40000 ~ 49999: 用戶請求錯誤 (400 系列)
	BAD_REQUEST_BODY          = 40000 // 400 - 無效的請求體
	BAD_REQUEST_PARAMS        = 40001 // 400 - 無效的請求參數
	BAD_REQUEST_HEADERS       = 40002 // 400 - 無效的請求標頭
	VALIDATION_FAILED         = 40003 // 400 - 欄位驗證失敗（errors 帶欄位明細）
	WEAK_CREDENTIAL           = 40004 // 400 - 密碼強度不足
	ATTENDANCE_ALREADY_MARKED = 40900 // 409 - 今日出勤已登錄
	IDENTITY_EXISTS           = 40901 // 409 - 登入帳號已被使用

	// 40100 ~ 40399: 驗證與權限錯誤 (401 403 系列)
	UNAUTHORIZED           = 40100 // 401 - 未授權
	INVALID_SESSION        = 40101 // 401 - 會話失效
	UNAUTHORIZED_ADMIN_KEY = 40300 // 403 - 管理端 API Key 無權限
	FORBIDDEN              = 40301 // 403 - 禁止訪問

	// 40400 ~ 40499: 資源錯誤 (404 系列)
	NOT_FOUND = 40400 // 404 - 資源未找到

	// 42900 ~ 42999: 流量限制錯誤 (429 系列)
	RATE_LIMIT_EXCEEDED = 42900 // 429 - 公開表單提交過於頻繁

	// 50000 ~ 50199: 伺服器內部錯誤 (500 系列)
	INTERNAL_ERROR      = 50000 // 500 - 內部錯誤
	DATABASE_ERROR      = 50001 // 500 - 資料庫錯誤
	SERVICE_UNAVAILABLE = 50002 // 503 - 服務暫停 (維護模式)

	// 50200 ~ 50499: 外部協作者錯誤 (502 系列)
	IDENTITY_BRIDGE_ERROR = 50200 // 502 - Identity Bridge 呼叫失敗
	UPLOAD_ERROR          = 50201 // 502 - 履歷上傳失敗
)
