package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"

	pkglogger "github.com/Jeevaranjani21/vdart-backend/pkg/logger"
)

// EmailSender delivers a one-time code to a user. Callers depend only
// on the success/failure outcome; transport is an external concern.
type EmailSender interface {
	SendOTPEmail(ctx context.Context, toAddress, displayName, code string, expiry time.Duration) error
}

// AWSSESEmailService sends OTP emails using AWS SES
type AWSSESEmailService struct {
	sesClient   *ses.Client
	fromAddress string
	fromName    string
	logger      *slog.Logger
}

// NewAWSSESEmailService creates a new AWS SES email service
func NewAWSSESEmailService(region, fromAddress, fromName string, logger *slog.Logger) (*AWSSESEmailService, error) {
	cfg, err := config.LoadDefaultConfig(context.Background(), config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &AWSSESEmailService{
		sesClient:   ses.NewFromConfig(cfg),
		fromAddress: fromAddress,
		fromName:    fromName,
		logger:      logger,
	}, nil
}

// SendOTPEmail sends the verification code to the user
func (s *AWSSESEmailService) SendOTPEmail(ctx context.Context, toAddress, displayName, code string, expiry time.Duration) error {
	firstName := displayName
	if i := strings.IndexByte(displayName, ' '); i > 0 {
		firstName = displayName[:i]
	}
	expiryMinutes := int(expiry.Minutes())

	htmlBody := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 560px; margin: 0 auto; padding: 20px; }
        .header { background-color: #0a1628; color: #fff; padding: 24px; text-align: center; border-radius: 4px; }
        .content { padding: 20px 0; }
        .otp-box { background-color: #f0f4ff; border: 2px dashed #1a6fff; border-radius: 8px; text-align: center; padding: 24px; margin: 24px 0; }
        .otp-code { font-size: 36px; font-weight: bold; letter-spacing: 10px; font-family: monospace; }
        .warning { background-color: #fff3cd; padding: 10px; border-left: 4px solid #ffc107; margin: 10px 0; }
        .footer { color: #666; font-size: 12px; margin-top: 20px; padding-top: 20px; border-top: 1px solid #eee; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>Verify Your Account</h1>
        </div>
        <div class="content">
            <p>Hi %s,</p>
            <p>We received a request to verify your account. Use the code below to complete verification:</p>
            <div class="otp-box">
                <div class="otp-code">%s</div>
            </div>
            <div class="warning">
                This code expires in <strong>%d minutes</strong>. Do not share it with anyone.
            </div>
            <p>If you didn't request this, you can safely ignore this email.</p>
        </div>
        <div class="footer">
            <p>This is an automated message. Please do not reply to this email.</p>
        </div>
    </div>
</body>
</html>
`, firstName, code, expiryMinutes)

	textBody := fmt.Sprintf(`Hi %s, your verification code is: %s. It expires in %d minutes.

If you didn't request this, you can safely ignore this email.
`, firstName, code, expiryMinutes)

	input := &ses.SendEmailInput{
		Source: aws.String(fmt.Sprintf("%s <%s>", s.fromName, s.fromAddress)),
		Destination: &types.Destination{
			ToAddresses: []string{toAddress},
		},
		Message: &types.Message{
			Subject: &types.Content{
				Data: aws.String("Your verification code"),
			},
			Body: &types.Body{
				Html: &types.Content{
					Data: aws.String(htmlBody),
				},
				Text: &types.Content{
					Data: aws.String(textBody),
				},
			},
		},
	}

	result, err := s.sesClient.SendEmail(ctx, input)
	if err != nil {
		s.logger.Error("failed to send otp email via SES",
			slog.String("email", pkglogger.SanitizedEmail(toAddress)),
			slog.Any("error", err))
		return fmt.Errorf("failed to send email: %w", err)
	}

	s.logger.Info("otp email sent",
		slog.String("email", pkglogger.SanitizedEmail(toAddress)),
		slog.String("message_id", *result.MessageId))

	return nil
}
