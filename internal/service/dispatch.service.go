package service

import (
	"bytes"
	"context"
	"fmt"

	"emailgenie/internal/db/models/postgres/public/model"
	"emailgenie/internal/domain"
	"emailgenie/internal/repository"
	"emailgenie/internal/util"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
	goldmarkutil "github.com/yuin/goldmark/util"
	"go.uber.org/zap"
)

const crmNoteExcerptLength = 100

type SendInput struct {
	FromName         string
	FromEmail        string
	To               string
	Subject          string
	Body             string
	RecipientName    string
	RecipientCompany string
}

// SendResult carries either the provider's delivery id or a failure
// message, never both.
type SendResult struct {
	EmailID string `json:"emailId,omitempty"`
	Message string `json:"message"`
}

func (r SendResult) Ok() bool {
	return r.EmailID != ""
}

// DispatchService sends a finalized draft. It never returns an error:
// every failure is folded into SendResult.Message.
type DispatchService interface {
	Send(ctx context.Context, in SendInput) SendResult
	// RenderHtml converts a plain-text body into sanitized HTML
	RenderHtml(body string) (string, error)
}

type dispatchServiceHandler struct {
	EmailRepository     repository.EmailRepository
	SentEmailRepository repository.SentEmailRepository
	// CrmRepository is optional, nil disables contact updates
	CrmRepository repository.CrmRepository
	Logger        *zap.SugaredLogger

	md     goldmark.Markdown
	policy *bluemonday.Policy
}

func NewDispatchService(
	emailRepository repository.EmailRepository,
	sentEmailRepository repository.SentEmailRepository,
	crmRepository repository.CrmRepository,
	log *zap.SugaredLogger,
) DispatchService {
	return &dispatchServiceHandler{
		EmailRepository:     emailRepository,
		SentEmailRepository: sentEmailRepository,
		CrmRepository:       crmRepository,
		Logger:              log,
		md:                  newPlainTextMarkdown(),
		policy:              bluemonday.UGCPolicy(),
	}
}

// newPlainTextMarkdown only recognizes paragraphs. Headings, lists, code
// blocks, emphasis, links and raw html are left as literal text, so the
// body is sent as the user saw it on Preview. Blank lines separate
// paragraphs and single newlines become <br>.
func newPlainTextMarkdown() goldmark.Markdown {
	return goldmark.New(
		goldmark.WithParser(parser.NewParser(
			parser.WithBlockParsers(
				goldmarkutil.Prioritized(parser.NewParagraphParser(), 1000),
			),
			parser.WithInlineParsers(),
			parser.WithParagraphTransformers(),
		)),
		goldmark.WithRendererOptions(
			html.WithHardWraps(),
		),
	)
}

func (h *dispatchServiceHandler) RenderHtml(body string) (string, error) {
	var buf bytes.Buffer
	if err := h.md.Convert([]byte(body), &buf); err != nil {
		return "", fmt.Errorf("failed to render email body: %w", err)
	}
	return h.policy.Sanitize(buf.String()), nil
}

func (h *dispatchServiceHandler) Send(ctx context.Context, in SendInput) SendResult {
	bodyHtml, err := h.RenderHtml(in.Body)
	if err != nil {
		h.Logger.Errorw("failed to send email", "to", in.To, "error", err)
		return SendResult{Message: fmt.Sprintf("Failed to send email: %s", err.Error())}
	}

	endSpan := domain.StartSpan(ctx, "dispatch")
	emailID, err := h.EmailRepository.SendEmail(ctx, repository.SendEmailInput{
		FromName:  in.FromName,
		FromEmail: in.FromEmail,
		To:        in.To,
		Subject:   in.Subject,
		Html:      bodyHtml,
	})
	endSpan()
	if err != nil {
		h.Logger.Errorw("failed to send email", "to", in.To, "error", err)
		return SendResult{Message: fmt.Sprintf("Failed to send email: %s", err.Error())}
	}
	h.Logger.Infow("email sent successfully", "to", in.To, "emailID", emailID)

	h.recordSent(ctx, in)

	return SendResult{
		EmailID: emailID,
		Message: "Email sent successfully",
	}
}

// recordSent runs only after a successful dispatch. Failures here are
// logged and do not change the send result.
func (h *dispatchServiceHandler) recordSent(ctx context.Context, in SendInput) {
	if h.SentEmailRepository != nil {
		_, err := h.SentEmailRepository.Add(model.SentEmails{
			Recipient: in.To,
			Subject:   in.Subject,
			Content:   in.Body,
		})
		if err != nil {
			h.Logger.Errorw("failed to log sent email", "to", in.To, "error", err)
		}
	}

	if h.CrmRepository != nil {
		endSpan := domain.StartSpan(ctx, "crm")
		note := fmt.Sprintf("Sent email: %s...", util.Excerpt(in.Body, crmNoteExcerptLength))
		err := h.CrmRepository.UpsertContact(ctx, in.RecipientName, in.RecipientCompany, in.To, note)
		endSpan()
		if err != nil {
			h.Logger.Warnw("failed to update crm", "recipient", in.RecipientName, "company", in.RecipientCompany, "error", err)
			return
		}
		h.Logger.Infow("crm updated", "recipient", in.RecipientName, "company", in.RecipientCompany)
	}
}
