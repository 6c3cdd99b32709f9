package core

const ContextTraceKey = "telemetry_trace_ctx"

// ==== 型別安全 span name ====
// 專案全域建議都寫這裡，方便集中管理
type TraceSpanName string

const (
	SpanHttpRequest        TraceSpanName = "http_request"
	SpanLoggerMiddleware   TraceSpanName = "logger_middleware"
	SpanRecoveryMiddleware TraceSpanName = "recovery_middleware"
	SpanCorsMiddleware     TraceSpanName = "cors_middleware"
	SpanResponseMiddleware TraceSpanName = "response_middleware"
	SpanAdminKeyMiddleware TraceSpanName = "admin_key_middleware"
	SpanFormLimitMiddlware TraceSpanName = "form_limit_middleware"
	SpanEmployeeMiddleware TraceSpanName = "employee_middleware"
)

// 指標名稱常數
type MetricName string

const (
	MetricHttpRequestsTotal    MetricName = "requests_total"
	MetricHttpRequestDuration  MetricName = "request_duration_seconds"
	MetricSubmissionsTotal     MetricName = "submissions_total"
	MetricSubmissionsFailTotal MetricName = "submissions_fail_total"
	MetricFormLimitTotal       MetricName = "form_limited_total"
	MetricLiveSubscribersGauge MetricName = "live_subscribers_gauge"
)

// label name 常數
type MetricLabelName string

const (
	MetricLabelEndpoint MetricLabelName = "endpoint"
	MetricLabelStatus   MetricLabelName = "status"
	MetricLabelForm     MetricLabelName = "form"
	MetricLabelReason   MetricLabelName = "reason"
)

type LoggerRequestMeta struct {
	Method     string            `trace:"request.method"`
	Path       string            `trace:"request.path"`
	FullPath   string            `trace:"request.full_path"`
	Query      string            `trace:"request.query"`
	Body       string            `trace:"request.body"`
	Scheme     string            `trace:"http.scheme"`
	Host       string            `trace:"http.host"`
	UserAgent  string            `trace:"http.user_agent"`
	ContentLen int64             `trace:"http.request_content_length"`
	Proto      string            `trace:"http.flavor"`
	ClientIP   string            `trace:"net.peer.ip"`
	Headers    map[string]string `trace:"http.request.header"`
	Params     map[string]string `trace:"http.request.param"`
}

type TraceResponseMeta struct {
	Path       string  `trace:"http.path"`
	Method     string  `trace:"http.method"`
	Status     int     `trace:"http.status_code"`
	Message    string  `trace:"response.message"`
	Code       int     `trace:"response.code"`
	DurationMs float64 `trace:"response.latency_ms"`
	Data       string  `trace:"response.data_preview"`
}

type TracePanicMeta struct {
	Path       string  `trace:"http.path"`
	Method     string  `trace:"http.method"`
	ClientIP   string  `trace:"net.peer.ip"`
	UserAgent  string  `trace:"http.user_agent"`
	DurationMs float64 `trace:"response.latency_ms"`
	Status     int     `trace:"http.status_code"`
	Message    string  `trace:"error.message"`
	Stack      string  `trace:"error.stack"`
}

type TraceHttpServerMeta struct {
	ClientAddr        string `trace:"client.address"`
	HttpRequestMethod string `trace:"http.request.method"`
	HttpRoute         string `trace:"http.route"`
	UrlPath           string `trace:"http.request.path"`
	UrlScheme         string `trace:"http.request.url.scheme"`
	UserAgent         string `trace:"user_agent.original"`
	ServerAddress     string `trace:"server.address"`
	NetworkPeerAddr   string `trace:"network.peer.address"`
	NetworkPeerPort   int    `trace:"network.peer.port"`
	NetworkProtoVer   string `trace:"network.protocol.version"`
	SpanKind          string `trace:"span.kind"`
	SpanTraceID       string `trace:"span.trace_id"`
	HttpStatusCode    int    `trace:"http.response.status_code"`
}

type TraceRequestLogMeta struct {
	RequestID   string `trace:"http.request.request_id"`
	Path        string `trace:"http.request.path"`
	Method      string `trace:"http.request.method"`
	ProjectName string `trace:"project.name"`
	Body        string `trace:"http.request.body,omitempty"`
	IPHash      string `trace:"http.request.net.peer.ip_hash"`
	UserAgent   string `trace:"http.request.user_agent"`
	Version     string `trace:"log.version"`
	RequestTS   string `trace:"http.request_ts"`
	LoggedAt    string `trace:"http.logged_at"`
}

// 供各 Submission Handler 使用
type TraceSubmissionMeta struct {
	Form        string  `trace:"submission.form"`
	EmployeeID  string  `trace:"submission.employee_id,omitempty"`
	JobID       string  `trace:"submission.job_id,omitempty"`
	Documents   int     `trace:"submission.documents,omitempty"`
	ResumeBytes int64   `trace:"submission.resume_bytes,omitempty"`
	Error       *string `trace:"error,omitempty"`
}

// 供 Aggregation / Report 使用
type TraceReportMeta struct {
	EmployeeID string  `trace:"report.employee_id"`
	DSRCount   int     `trace:"report.dsr_count,omitempty"`
	CallCount  int     `trace:"report.call_count,omitempty"`
	Earnings   float64 `trace:"report.earnings_total,omitempty"`
	Error      *string `trace:"error,omitempty"`
}

// 供 Redis 列表快取使用
type TraceListingCacheMeta struct {
	Key    string `trace:"cache.key"`
	Op     string `trace:"cache.op"` // "get" / "set" / "invalidate"
	Hit    bool   `trace:"cache.hit,omitempty"`
	TTLSec int64  `trace:"cache.ttl_sec,omitempty"`
}

// 供公開表單限流使用
type TraceFormLimitMeta struct {
	Form      string `trace:"form_limit.form"`
	ClientIP  string `trace:"form_limit.client_ip"`
	Limit     int    `trace:"form_limit.limit_count"`
	WindowSec int64  `trace:"form_limit.window_sec"`
	Remaining int    `trace:"form_limit.remaining,omitempty"`
	Blocked   bool   `trace:"form_limit.blocked"`
	Op        string `trace:"form_limit.op"` // "consume" / "get"
}

// 供 Identity Bridge（Firebase Auth）使用
type TraceIdentityMeta struct {
	Op      string  `trace:"identity.op"` // "create" / "delete"
	LoginID string  `trace:"identity.login_id,omitempty"`
	UID     string  `trace:"identity.uid,omitempty"`
	Error   *string `trace:"error,omitempty"`
}

// 供履歷上傳（GCS）使用
type TraceUploadMeta struct {
	Object string  `trace:"upload.object"`
	Bytes  int64   `trace:"upload.bytes"`
	Error  *string `trace:"error,omitempty"`
}

// 供 change stream 即時列表使用
type TraceWatchMeta struct {
	Collection string `trace:"watch.collection"`
	EmployeeID string `trace:"watch.employee_id,omitempty"`
	Snapshots  int    `trace:"watch.snapshots,omitempty"`
}

type TraceEmployeeMiddlewareMeta struct {
	EmployeeID      string `trace:"auth.employee_id,omitempty"`
	EmployeeStatus  string `trace:"auth.employee_status,omitempty"`
	UpdatedLastSeen bool   `trace:"employee.updated_last_seen"`
	Status          string `trace:"auth.status,omitempty"`
}

type TraceAdminKeyMeta struct {
	AdminID  string `trace:"auth.admin_id,omitempty"`
	Where    string `trace:"auth.where"`
	ClientIP string `trace:"net.peer.ip,omitempty"`
	Status   string `trace:"auth.status,omitempty"`
}
