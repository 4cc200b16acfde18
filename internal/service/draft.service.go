package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"emailgenie/internal/domain"
	"emailgenie/internal/repository"

	"go.uber.org/zap"
)

const (
	FallbackSubject = "Error generating email"
	FallbackBody    = "Please try again."
)

// DraftService turns an instruction into a (subject, body) draft.
type DraftService interface {
	// GenerateDraft never fails: on any service or parse error it logs and
	// returns FallbackSubject and FallbackBody.
	GenerateDraft(ctx context.Context, prompt string) (subject string, body string)

	// TryGenerateDraft returns the underlying error instead. Errors match
	// domain.ErrService or domain.ErrParse.
	TryGenerateDraft(ctx context.Context, prompt string) (subject string, body string, err error)
}

type draftServiceHandler struct {
	CompletionRepository repository.CompletionRepository
	Logger               *zap.SugaredLogger
}

func NewDraftService(completionRepository repository.CompletionRepository, log *zap.SugaredLogger) DraftService {
	return draftServiceHandler{
		CompletionRepository: completionRepository,
		Logger:               log,
	}
}

func (h draftServiceHandler) GenerateDraft(ctx context.Context, prompt string) (string, string) {
	subject, body, err := h.TryGenerateDraft(ctx, prompt)
	if repository.IsAuthError(err) {
		h.Logger.Errorw("completion api key was rejected, check GROQ_API_KEY", "error", err)
		return FallbackSubject, FallbackBody
	}
	if err != nil {
		h.Logger.Errorw("failed to generate email", "error", err)
		return FallbackSubject, FallbackBody
	}
	return subject, body
}

func (h draftServiceHandler) TryGenerateDraft(ctx context.Context, prompt string) (string, string, error) {
	endSpan := domain.StartSpan(ctx, "completion")
	content, err := h.CompletionRepository.Complete(ctx, prompt)
	endSpan()
	if err != nil {
		return "", "", err
	}

	subject, body, err := parseDraft(content)
	if err != nil {
		return "", "", err
	}

	h.Logger.Infow("email generated successfully", "subjectLength", len(subject), "bodyLength", len(body))
	return subject, body, nil
}

type draftResponse struct {
	Subject *string `json:"subject"`
	Body    *string `json:"body"`
}

func parseDraft(content string) (string, string, error) {
	out := draftResponse{}
	err := json.Unmarshal([]byte(content), &out)
	if err != nil {
		return "", "", fmt.Errorf("%w: completion was not a json object: %w", domain.ErrParse, err)
	}
	if out.Subject == nil || strings.TrimSpace(*out.Subject) == "" {
		return "", "", fmt.Errorf("%w: completion is missing subject", domain.ErrParse)
	}
	if out.Body == nil || strings.TrimSpace(*out.Body) == "" {
		return "", "", fmt.Errorf("%w: completion is missing body", domain.ErrParse)
	}
	return *out.Subject, *out.Body, nil
}
