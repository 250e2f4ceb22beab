package email

import (
	"fmt"

	"github.com/resendlabs/resend-go"
	"go.uber.org/zap"
)

type EmailService struct {
	client     *resend.Client
	from       string
	appBaseURL string
	logger     *zap.SugaredLogger
}

func NewEmailService(apiKey, from, appBaseURL string, logger *zap.SugaredLogger) *EmailService {
	return &EmailService{
		client:     resend.NewClient(apiKey),
		from:       from,
		appBaseURL: appBaseURL,
		logger:     logger,
	}
}

func (s *EmailService) SendPasswordResetEmail(email string, resetToken string) error {
	resetLink := s.appBaseURL + "/admin/reset-password?token=" + resetToken

	html := fmt.Sprintf(`
		<h2>Reset your password</h2>
		<p>We received a request to reset the password for %s.</p>
		<p><a href="%s">Reset password</a></p>
		<p>The link is valid for 15 minutes. If you did not request this, you can ignore this email.</p>
	`, email, resetLink)

	params := &resend.SendEmailRequest{
		From:    "FitFolio <" + s.from + ">",
		To:      []string{email},
		Subject: "Reset Your Password",
		Html:    html,
	}

	resp, err := s.client.Emails.Send(params)
	if err != nil {
		s.logger.Errorw("failed to send reset password email", "email", email, "error", err)
		return err
	}

	s.logger.Infow("sent reset password email", "email", email, "id", resp.Id)
	return nil
}
