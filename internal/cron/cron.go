package cron

import (
	"context"

	"github.com/google/wire"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

var ProviderSet = wire.NewSet(NewCron, NewDigestJob)

type Cron struct {
	logger    *zap.Logger
	server    *cron.Cron
	digestJob *DigestJob
}

// NewCron .
func NewCron(logger *zap.Logger, digestJob *DigestJob) *Cron {
	server := cron.New(
		cron.WithSeconds(),
	)

	return &Cron{
		logger:    logger,
		server:    server,
		digestJob: digestJob,
	}
}

func (c *Cron) Run() error {
	// 每天 18:05 UTC 寄出勤摘要
	if _, err := c.server.AddFunc("0 5 18 * * *", c.digestJob.Run); err != nil {
		return err
	}

	c.server.Start()
	return nil
}

func (c *Cron) Stop(ctx context.Context) error {
	c.server.Stop()
	return nil
}
