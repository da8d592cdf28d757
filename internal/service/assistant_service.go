package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v5"

	"magicwriting/internal/llm"
	"magicwriting/internal/logger"
	"magicwriting/internal/models"
)

// Mode reports whether the assistant talks to the text generation service
type Mode string

const (
	ModeOnline  Mode = "online"
	ModeOffline Mode = "offline"
)

// Completer returns text for a chat prompt; *llm.Client satisfies it
type Completer interface {
	Complete(ctx context.Context, messages []llm.Message) (string, error)
}

// AssistantOptions tunes the retry policy
type AssistantOptions struct {
	// MaxAttempts caps the total number of calls for a rate-limited request
	MaxAttempts int
	// InitialBackoff is the first delay after a rate-limited or timed-out call
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

// AssistantService produces example essays, recommendations and evaluations.
// Every call returns renderable text: failures fall back to local templates.
type AssistantService struct {
	client Completer
	opts   AssistantOptions
	log    *logger.Logger
	now    func() time.Time
}

// NewAssistantService creates the assistant. A nil client puts it in offline mode for good.
func NewAssistantService(client Completer, opts AssistantOptions, log *logger.Logger) *AssistantService {
	if opts.MaxAttempts < 1 {
		opts.MaxAttempts = 3
	}
	if opts.InitialBackoff <= 0 {
		opts.InitialBackoff = time.Second
	}
	if opts.MaxBackoff <= 0 {
		opts.MaxBackoff = 8 * opts.InitialBackoff
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &AssistantService{client: client, opts: opts, log: log.With("component", "assistant"), now: time.Now}
}

// Mode returns the process-wide generation mode
func (s *AssistantService) Mode() Mode {
	if s.client == nil {
		return ModeOffline
	}
	return ModeOnline
}

// Generate runs task for req
func (s *AssistantService) Generate(ctx context.Context, task models.Task, req GenerationRequest) models.Generation {
	gen, _ := s.generate(ctx, task, req)
	return gen
}

// Evaluate scores an essay. Text that came from the fallback template is never
// scanned for a score; it always reports DefaultScore.
func (s *AssistantService) Evaluate(ctx context.Context, req GenerationRequest) models.EvaluationResult {
	gen, online := s.generate(ctx, models.TaskEvaluateEssay, req)

	total := DefaultScore
	if online {
		total = ExtractScore(gen.Text)
	}
	return models.EvaluationResult{
		TotalScore:     total,
		CategoryScores: CategoryScores(gen.Text, total),
		Feedback:       gen.Text,
		Timestamp:      s.now(),
		Topic:          req.Topic,
		Grade:          string(req.Grade),
		Warnings:       gen.Warnings,
	}
}

// generate returns the generation and whether its text came from the service
func (s *AssistantService) generate(ctx context.Context, task models.Task, req GenerationRequest) (models.Generation, bool) {
	gen := models.Generation{Task: task}
	if s.client == nil {
		gen.Text = fallbackText(task, req)
		return gen, false
	}

	text, err := s.completeWithRetry(ctx, task, buildMessages(task, req), &gen)
	if err == nil && strings.TrimSpace(text) != "" {
		gen.Text = text
		return gen, true
	}

	s.log.Warn("Text generation failed, using fallback",
		"task", task.String(),
		"kind", llm.KindOf(err).String(),
		"error", err,
	)
	gen.Text = fallbackText(task, req)
	return gen, false
}

// completeWithRetry retries rate-limited calls up to MaxAttempts in total and a
// timed-out call once. Other failures end the loop immediately.
func (s *AssistantService) completeWithRetry(ctx context.Context, task models.Task, messages []llm.Message, gen *models.Generation) (string, error) {
	attempts := 0
	timeoutRetried := false

	op := func() (string, error) {
		attempts++
		text, err := s.client.Complete(ctx, messages)
		if err == nil {
			if strings.TrimSpace(text) == "" {
				return "", backoff.Permanent(&llm.Error{Kind: llm.KindMalformed, Err: errors.New("empty completion")})
			}
			return text, nil
		}
		if ctx.Err() != nil {
			return "", backoff.Permanent(err)
		}

		switch llm.KindOf(err) {
		case llm.KindRateLimited:
			if attempts < s.opts.MaxAttempts {
				return "", err
			}
		case llm.KindTimeout:
			if !timeoutRetried && attempts < s.opts.MaxAttempts {
				timeoutRetried = true
				return "", err
			}
		}
		return "", backoff.Permanent(err)
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = s.opts.InitialBackoff
	b.MaxInterval = s.opts.MaxBackoff
	b.Multiplier = 2
	b.RandomizationFactor = 0.1

	return backoff.Retry(ctx, op,
		backoff.WithBackOff(b),
		backoff.WithMaxTries(uint(s.opts.MaxAttempts)),
		backoff.WithNotify(func(err error, wait time.Duration) {
			msg := retryWarning(llm.KindOf(err), attempts, wait)
			gen.Warnings = append(gen.Warnings, msg)
			s.log.Warn("Retrying text generation",
				"task", task.String(),
				"attempt", attempts,
				"wait", wait,
				"error", err,
			)
		}),
	)
}

func retryWarning(kind llm.Kind, attempt int, wait time.Duration) string {
	reason := "服务繁忙"
	if kind == llm.KindTimeout {
		reason = "请求超时"
	}
	return fmt.Sprintf("%s，%.1f秒后进行第%d次重试", reason, wait.Seconds(), attempt+1)
}
