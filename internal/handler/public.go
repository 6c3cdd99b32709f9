package handler

import (
	"fieldforce/internal/dto"
	"fieldforce/internal/pkg/response"
	"fieldforce/internal/service"
	"fieldforce/internal/telemetry"
	"fieldforce/utils/validate"

	"github.com/gin-gonic/gin"
)

// PublicHandler 不需登入的對外端點：職缺、求職、會員申請、電子報
type PublicHandler struct {
	trace             *telemetry.Trace
	metric            *telemetry.Metric
	jobService        *service.JobService
	appService        *service.ApplicationService
	membershipService *service.MembershipService
	newsletterService *service.NewsletterService
	activityService   *service.ActivityService
}

func NewPublicHandler(
	trace *telemetry.Trace,
	metric *telemetry.Metric,
	jobService *service.JobService,
	appService *service.ApplicationService,
	membershipService *service.MembershipService,
	newsletterService *service.NewsletterService,
	activityService *service.ActivityService,
) *PublicHandler {
	return &PublicHandler{
		trace:             trace,
		metric:            metric,
		jobService:        jobService,
		appService:        appService,
		membershipService: membershipService,
		newsletterService: newsletterService,
		activityService:   activityService,
	}
}

// ListJobs 公開職缺列表
// @Summary 職缺列表
// @Tags Public
// @Produce json
// @Param page query int false "頁碼"
// @Param size query int false "每頁筆數"
// @Success 200 {array} model.Job
// @Router /jobs [get]
func (h *PublicHandler) ListJobs(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	page, _ := validate.GetInt64Query(c, "page", 1)
	size, _ := validate.GetInt64Query(c, "size", 20)

	jobs, err := h.jobService.ListJobs(ctx, page, size)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, jobs)
}

// GetJob 單一職缺
// @Summary 取得職缺
// @Tags Public
// @Produce json
// @Param jobID path string true "Job ID"
// @Success 200 {object} model.Job
// @Failure 404 {object} response.Response
// @Router /jobs/{jobID} [get]
func (h *PublicHandler) GetJob(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	jobID, cause, err := validate.ParseObjectID(c, "jobID")
	if err != nil {
		end(cause)
		response.AbortWithError(c, err)
		return
	}

	job, err := h.jobService.GetJob(ctx, jobID)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, job)
}

// SubmitApplication 求職表單（multipart，可附履歷）
// @Summary 送出求職申請
// @Tags Public
// @Accept mpfd
// @Produce json
// @Param jobId formData string true "Job ID"
// @Param fullName formData string true "姓名"
// @Param resume formData file false "履歷檔"
// @Success 201 {object} model.Application
// @Failure 400 {object} response.Response
// @Router /applications [post]
func (h *PublicHandler) SubmitApplication(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	var req dto.SubmitApplicationDto
	if cause, err := validate.BindFormAndValidate(c, &req); err != nil {
		h.countFail("application", "validation")
		end(cause)
		response.AbortWithError(c, err)
		return
	}

	application, err := h.appService.SubmitApplication(ctx, &req)
	if err != nil {
		h.countFail("application", "rejected")
		end(err)
		response.AbortWithError(c, err)
		return
	}

	h.countSuccess("application")
	_ = h.activityService.Ship(ctx, "", "submitted", "application", application.ID.Hex(), application.FullName)
	response.Create(c, application)
}

// ApplyMembership 會員申請
// @Summary 送出會員申請
// @Tags Public
// @Accept json
// @Produce json
// @Param body body dto.ApplyMembershipDto true "申請內容"
// @Success 201 {object} model.Membership
// @Failure 400 {object} response.Response
// @Router /memberships [post]
func (h *PublicHandler) ApplyMembership(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	var req dto.ApplyMembershipDto
	if cause, err := validate.BindAndValidate(c, &req); err != nil {
		h.countFail("membership", "validation")
		end(cause)
		response.AbortWithError(c, err)
		return
	}

	membership, err := h.membershipService.Apply(ctx, &req)
	if err != nil {
		h.countFail("membership", "rejected")
		end(err)
		response.AbortWithError(c, err)
		return
	}

	h.countSuccess("membership")
	_ = h.activityService.Ship(ctx, "", "submitted", "membership", membership.ID.Hex(), membership.Name)
	response.Create(c, membership)
}

// SubscribeNewsletter 電子報訂閱（冪等）
// @Summary 訂閱電子報
// @Tags Public
// @Accept json
// @Produce json
// @Param body body dto.SubscribeNewsletterDto true "訂閱信箱"
// @Success 200 {object} model.NewsletterSubscriber
// @Failure 400 {object} response.Response
// @Router /newsletter [post]
func (h *PublicHandler) SubscribeNewsletter(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	var req dto.SubscribeNewsletterDto
	if cause, err := validate.BindAndValidate(c, &req); err != nil {
		h.countFail("newsletter", "validation")
		end(cause)
		response.AbortWithError(c, err)
		return
	}

	subscriber, err := h.newsletterService.Subscribe(ctx, &req)
	if err != nil {
		h.countFail("newsletter", "rejected")
		end(err)
		response.AbortWithError(c, err)
		return
	}

	h.countSuccess("newsletter")
	response.Success(c, subscriber)
}

func (h *PublicHandler) countSuccess(form string) {
	if h.metric.SubmissionsTotal != nil {
		h.metric.SubmissionsTotal.WithLabelValues(form).Inc()
	}
}

func (h *PublicHandler) countFail(form, reason string) {
	if h.metric.SubmissionsFailTotal != nil {
		h.metric.SubmissionsFailTotal.WithLabelValues(form, reason).Inc()
	}
}
