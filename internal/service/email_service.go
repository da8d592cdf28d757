package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	htmltemplate "html/template"
	"strings"
	texttemplate "text/template"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"magicwriting/internal/logger"
	"magicwriting/internal/models"
)

// ErrEmailDisabled is returned when SES_FROM_EMAIL is not configured
var ErrEmailDisabled = errors.New("email service disabled")

// sesSender is the part of the SES client the service uses
type sesSender interface {
	SendEmail(ctx context.Context, params *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error)
}

// EmailService sends evaluation reports to a parent through Amazon SES
type EmailService struct {
	client     sesSender
	fromEmail  string
	fromName   string
	appBaseURL string
	enabled    bool
	log        *logger.Logger
}

// NewEmailService creates the email service; it is disabled when fromEmail is empty
func NewEmailService(ctx context.Context, awsRegion, fromEmail, fromName, appBaseURL string, log *logger.Logger) (*EmailService, error) {
	if log == nil {
		log = logger.NewNop()
	}
	if fromEmail == "" {
		log.Info("Email service disabled: SES_FROM_EMAIL not configured")
		return &EmailService{enabled: false, log: log}, nil
	}

	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(awsRegion))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	log.Info("Email service enabled", "from", fromEmail, "region", awsRegion)
	return newEmailService(sesv2.NewFromConfig(cfg), fromEmail, fromName, appBaseURL, log), nil
}

func newEmailService(client sesSender, fromEmail, fromName, appBaseURL string, log *logger.Logger) *EmailService {
	return &EmailService{
		client:     client,
		fromEmail:  fromEmail,
		fromName:   fromName,
		appBaseURL: strings.TrimRight(appBaseURL, "/"),
		enabled:    true,
		log:        log,
	}
}

// IsEnabled returns whether the email service is enabled
func (s *EmailService) IsEnabled() bool {
	return s.enabled
}

type reportData struct {
	Result     models.EvaluationResult
	AppBaseURL string
}

var reportHTML = htmltemplate.Must(htmltemplate.New("report").Parse(`<!DOCTYPE html>
<html>
<head>
	<meta charset="UTF-8">
	<style>
		body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
		.container { max-width: 600px; margin: 0 auto; padding: 20px; }
		.header { background-color: #6bcf7f; color: white; padding: 20px; text-align: center; border-radius: 5px 5px 0 0; }
		.content { background-color: #f9f9f9; padding: 30px; border-radius: 0 0 5px 5px; }
		.score { font-size: 48px; font-weight: bold; color: #4caf50; text-align: center; }
		.feedback { white-space: pre-wrap; }
		.footer { text-align: center; margin-top: 20px; font-size: 12px; color: #666; }
	</style>
</head>
<body>
	<div class="container">
		<div class="header"><h1>作文评价报告</h1></div>
		<div class="content">
			<p>主题：{{.Result.Topic}}（{{.Result.Grade}}）</p>
			<div class="score">{{.Result.TotalScore}}/100</div>
			<ul>
			{{range .Result.CategoryScores}}<li>{{.Name}}: {{.Score}}/{{.Max}}</li>
			{{end}}</ul>
			<div class="feedback">{{.Result.Feedback}}</div>
		</div>
		<div class="footer"><p>Magic Writing · {{.AppBaseURL}}</p></div>
	</div>
</body>
</html>
`))

var reportText = texttemplate.Must(texttemplate.New("report").Parse(`作文评价报告

主题：{{.Result.Topic}}（{{.Result.Grade}}）
总评分：{{.Result.TotalScore}}/100
{{range .Result.CategoryScores}}{{.Name}}: {{.Score}}/{{.Max}}
{{end}}
{{.Result.Feedback}}

---
Magic Writing · {{.AppBaseURL}}
`))

// SendEvaluationReport emails one evaluation result to toEmail
func (s *EmailService) SendEvaluationReport(ctx context.Context, toEmail string, result models.EvaluationResult) error {
	if !s.enabled {
		s.log.Info("Skipping email send (service disabled)", "to", toEmail)
		return ErrEmailDisabled
	}

	data := reportData{Result: result, AppBaseURL: s.appBaseURL}
	var htmlBody, textBody bytes.Buffer
	if err := reportHTML.Execute(&htmlBody, data); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}
	if err := reportText.Execute(&textBody, data); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}

	subject := fmt.Sprintf("作文评价报告：%s", result.Topic)
	return s.sendEmail(ctx, toEmail, subject, htmlBody.String(), textBody.String())
}

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
				Subject: &types.Content{Data: aws.String(subject), Charset: aws.String("UTF-8")},
				Body: &types.Body{
					Html: &types.Content{Data: aws.String(htmlBody), Charset: aws.String("UTF-8")},
					Text: &types.Content{Data: aws.String(textBody), Charset: aws.String("UTF-8")},
				},
			},
		},
	}

	result, err := s.client.SendEmail(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to send email to %s: %w", toEmail, err)
	}

	s.log.Info("Email sent", "to", toEmail, "subject", subject, "message_id", aws.ToString(result.MessageId))
	return nil
}
