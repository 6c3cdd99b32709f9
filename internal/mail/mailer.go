package mail

import (
	"fmt"

	"fieldforce/config"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

// Mailer 每日出勤摘要等營運信件的寄送端
type Mailer struct {
	dialer *gomail.Dialer
	from   string
	logger *zap.Logger
}

func NewMailer(logger *zap.Logger, conf *config.Configuration) *Mailer {
	dialer := gomail.NewDialer(conf.Mail.Host, conf.Mail.Port, conf.Mail.Username, conf.Mail.Password)
	return &Mailer{
		dialer: dialer,
		from:   conf.Mail.Username,
		logger: logger,
	}
}

// Send 寄出單封 HTML 信件
func (mailer *Mailer) Send(to string, subject string, htmlBody string) error {
	if to == "" {
		return fmt.Errorf("mail: empty recipient")
	}

	message := gomail.NewMessage()
	message.SetHeader("From", mailer.from)
	message.SetHeader("To", to)
	message.SetHeader("Subject", subject)
	message.SetBody("text/html", htmlBody)

	if sendError := mailer.dialer.DialAndSend(message); sendError != nil {
		mailer.logger.Error("failed to send mail",
			zap.String("to", to),
			zap.String("subject", subject),
			zap.Error(sendError))
		return sendError
	}
	return nil
}
