package service

import (
	"context"
	"fmt"
	"log"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"spelltest/internal/models"
)

// EmailService sends spelling test results via Amazon SES. When no sender
// address is configured the service stays disabled and every send becomes
// a logged no-op.
type EmailService struct {
	client    *sesv2.Client
	fromEmail string
	fromName  string
	enabled   bool
}

// NewEmailService creates a new email service
func NewEmailService(awsRegion, fromEmail, fromName string) (*EmailService, error) {
	if fromEmail == "" {
		log.Println("Email service disabled: SES_FROM_EMAIL not configured")
		return &EmailService{enabled: false}, nil
	}

	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(awsRegion),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := sesv2.NewFromConfig(cfg)

	log.Printf("Email service enabled: from=%s, region=%s", fromEmail, awsRegion)

	return &EmailService{
		client:    client,
		fromEmail: fromEmail,
		fromName:  fromName,
		enabled:   true,
	}, nil
}

// IsEnabled returns whether the email service is enabled
func (s *EmailService) IsEnabled() bool {
	return s.enabled
}

// SendTestResultEmail mails a summary of a completed spelling test
func (s *EmailService) SendTestResultEmail(ctx context.Context, toEmail string, user *models.User, list *models.SpellingList, stat *models.SpellingListStat) error {
	if !s.enabled {
		log.Printf("Skipping email send (service disabled): test result to %s", toEmail)
		return nil
	}

	subject := fmt.Sprintf("Spelling test result: %s", list.Name)

	htmlBody := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
	<meta charset="UTF-8">
	<style>
		body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
		.container { max-width: 600px; margin: 0 auto; padding: 20px; }
		.header { background-color: #4a90e2; color: white; padding: 20px; text-align: center; border-radius: 5px 5px 0 0; }
		.content { background-color: #f9f9f9; padding: 30px; border-radius: 0 0 5px 5px; }
		.score { font-size: 32px; font-weight: bold; text-align: center; }
	</style>
</head>
<body>
	<div class="container">
		<div class="header">
			<h1>Spelling Test Complete</h1>
		</div>
		<div class="content">
			<p>%s finished the list "%s".</p>
			<p class="score">%d%%</p>
			<p>Correct: %d<br>Incorrect: %d<br>Time taken: %.1f seconds</p>
		</div>
	</div>
</body>
</html>
`, user.FullName(), list.Name, stat.ScorePercent(), stat.NumberCorrect, stat.NumberIncorrect, float64(stat.ElapsedTime)/1000)

	textBody := fmt.Sprintf(`%s finished the list "%s".

Score: %d%%
Correct: %d
Incorrect: %d
Time taken: %.1f seconds
`, user.FullName(), list.Name, stat.ScorePercent(), stat.NumberCorrect, stat.NumberIncorrect, float64(stat.ElapsedTime)/1000)

	return s.sendEmail(ctx, toEmail, subject, htmlBody, textBody)
}

// sendEmail sends an email using Amazon SES
func (s *EmailService) sendEmail(ctx context.Context, toEmail, subject, htmlBody, textBody string) error {
	fromAddress := s.fromEmail
	if s.fromName != "" {
		fromAddress = fmt.Sprintf("%s <%s>", s.fromName, s.fromEmail)
	}

	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(fromAddress),
		Destination: &types.Destination{
			ToAddresses: []string{toEmail},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{
					Data:    aws.String(subject),
					Charset: aws.String("UTF-8"),
				},
				Body: &types.Body{
					Html: &types.Content{
						Data:    aws.String(htmlBody),
						Charset: aws.String("UTF-8"),
					},
					Text: &types.Content{
						Data:    aws.String(textBody),
						Charset: aws.String("UTF-8"),
					},
				},
			},
		},
	}

	if _, err := s.client.SendEmail(ctx, input); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", toEmail, err)
	}

	log.Printf("Email sent successfully: to=%s, subject=%s", toEmail, subject)
	return nil
}
