package cron

import (
	"context"
	"fmt"
	"time"

	"fieldforce/config"
	"fieldforce/internal/mail"
	"fieldforce/internal/service"

	"go.uber.org/zap"
)

// DigestJob 每日出勤摘要：統計當天 working / leave 人數寄給營運信箱
type DigestJob struct {
	logger            *zap.Logger
	mailer            *mail.Mailer
	attendanceService *service.AttendanceService
	recipient         string
}

func NewDigestJob(logger *zap.Logger, conf *config.Configuration, mailer *mail.Mailer, attendanceService *service.AttendanceService) *DigestJob {
	return &DigestJob{
		logger:            logger,
		mailer:            mailer,
		attendanceService: attendanceService,
		recipient:         conf.Mail.DigestTo,
	}
}

func (job *DigestJob) Run() {
	if job.recipient == "" {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	date := time.Now().UTC().Format("2006-01-02")
	summary, summarizeError := job.attendanceService.Summarize(ctx, date)
	if summarizeError != nil {
		job.logger.Error("attendance digest aggregation failed", zap.String("date", date), zap.Error(summarizeError))
		return
	}

	subject := fmt.Sprintf("Attendance digest %s", summary.Date)
	body := fmt.Sprintf(
		"<h3>Attendance digest for %s</h3><ul><li>Working: %d</li><li>On leave: %d</li></ul>",
		summary.Date, summary.Working, summary.Leave)

	if sendError := job.mailer.Send(job.recipient, subject, body); sendError != nil {
		job.logger.Error("attendance digest mail failed", zap.String("date", date), zap.Error(sendError))
		return
	}
	job.logger.Info("attendance digest sent",
		zap.String("date", date),
		zap.Int64("working", summary.Working),
		zap.Int64("leave", summary.Leave))
}
