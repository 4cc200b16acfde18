package domain

import (
	"fmt"
	"strings"
)

// Draft is the generated email awaiting review. It only ever lives in
// a Session and is never persisted on its own.
type Draft struct {
	RecipientEmail   string `json:"recipientEmail"`
	RecipientName    string `json:"recipientName"`
	RecipientCompany string `json:"recipientCompany"`
	Subject          string `json:"subject"`
	Body             string `json:"body"`
	SenderName       string `json:"senderName"`
	SenderCompany    string `json:"senderCompany"`
	SenderEmail      string `json:"senderEmail"`
}

// Sendable reports whether the draft may be dispatched: subject and body
// must both be non-empty.
func (d Draft) Sendable() error {
	if strings.TrimSpace(d.Subject) == "" {
		return ValidationError("subject is required before sending")
	}
	if strings.TrimSpace(d.Body) == "" {
		return ValidationError("email body is required before sending")
	}
	if strings.TrimSpace(d.RecipientEmail) == "" {
		return ValidationError("recipient email is required before sending")
	}
	return nil
}

func (d Draft) FromLine() string {
	if d.SenderEmail == "" {
		return ""
	}
	return fmt.Sprintf("%s (%s) <%s>", d.SenderName, d.SenderCompany, d.SenderEmail)
}

// DraftEdit carries Preview screen edits. Nil fields are left unchanged.
type DraftEdit struct {
	RecipientEmail *string `json:"recipientEmail"`
	Subject        *string `json:"subject"`
	Body           *string `json:"body"`
}

func (d *Draft) Apply(edit DraftEdit) {
	if edit.RecipientEmail != nil {
		d.RecipientEmail = *edit.RecipientEmail
	}
	if edit.Subject != nil {
		d.Subject = *edit.Subject
	}
	if edit.Body != nil {
		d.Body = *edit.Body
	}
}
