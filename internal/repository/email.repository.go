package repository

//go:generate mockgen -source=email.repository.go -destination=mocks/mock_email.repository.go

import (
	"context"
	"fmt"

	"emailgenie/internal/domain"

	"github.com/resend/resend-go/v3"
)

// EmailRepository is responsible for sending emails.
// It's a thin wrapper around Resend - it only sends pre-rendered HTML.
// Rendering is handled by DispatchService.
type EmailRepository interface {
	// SendEmail sends exactly one email and returns the provider's
	// delivery id. There are no retries and no idempotency key.
	SendEmail(ctx context.Context, in SendEmailInput) (string, error)
}

type SendEmailInput struct {
	FromName  string
	FromEmail string
	To        string
	Subject   string
	Html      string
}

type resendEmails interface {
	SendWithContext(ctx context.Context, params *resend.SendEmailRequest) (*resend.SendEmailResponse, error)
}

type emailRepositoryHandler struct {
	Emails resendEmails
	// VerifiedFromEmail, when set, replaces the sender address. The
	// sender's own address becomes the reply-to.
	VerifiedFromEmail string
}

func NewEmailRepository(apiKey string, verifiedFromEmail string) EmailRepository {
	client := resend.NewClient(apiKey)
	return &emailRepositoryHandler{
		Emails:            client.Emails,
		VerifiedFromEmail: verifiedFromEmail,
	}
}

func (h *emailRepositoryHandler) request(in SendEmailInput) *resend.SendEmailRequest {
	fromEmail := in.FromEmail
	replyTo := ""
	if h.VerifiedFromEmail != "" {
		fromEmail = h.VerifiedFromEmail
		replyTo = in.FromEmail
	}

	from := fromEmail
	if in.FromName != "" {
		from = fmt.Sprintf("%s <%s>", in.FromName, fromEmail)
	}

	return &resend.SendEmailRequest{
		From:    from,
		To:      []string{in.To},
		Subject: in.Subject,
		Html:    in.Html,
		ReplyTo: replyTo,
	}
}

func (h *emailRepositoryHandler) SendEmail(ctx context.Context, in SendEmailInput) (string, error) {
	result, err := h.Emails.SendWithContext(ctx, h.request(in))
	if err != nil {
		return "", fmt.Errorf("%w: failed to send email via resend: %w", domain.ErrService, err)
	}
	if result == nil || result.Id == "" {
		return "", fmt.Errorf("%w: resend returned no email id", domain.ErrService)
	}

	return result.Id, nil
}
