package service

import (
	"fmt"

	"emailgenie/internal/domain"
)

type PromptInput struct {
	Purpose        domain.Purpose
	Recipient      domain.Recipient
	Industry       string
	TargetAudience string
	Background     string
	SenderName     string
	SenderCompany  string
}

// NewPromptInput fills the sender context from a saved profile.
func NewPromptInput(purpose domain.Purpose, recipient domain.Recipient, profile domain.Profile) PromptInput {
	return PromptInput{
		Purpose:        purpose,
		Recipient:      recipient,
		Industry:       profile.Industry,
		TargetAudience: profile.TargetAudience,
		Background:     profile.Background,
		SenderName:     profile.SenderName,
		SenderCompany:  profile.SenderCompany,
	}
}

// field values are interpolated as-is, nothing is escaped
const promptTemplate = `You are EmailGenie, an assistant that writes personalized cold outreach emails. Write an engaging, professional email from the details below.
Sender's Name: %s
Sender's Company/Role: %s
Recipient's Name: %s
Recipient's Company/Role: %s (%s)
Industry: %s
Purpose of Outreach: %s
Key Points to Include:
- Target Audience: %s
- Sender's Background: %s
Keep the email concise and tailored to the recipient, with a clear subject line and a well-structured body.
Respond with a JSON object that has exactly two keys:
1. "subject": the subject line of the email
2. "body": the body of the email
`

func BuildPrompt(in PromptInput) string {
	return fmt.Sprintf(
		promptTemplate,
		in.SenderName,
		in.SenderCompany,
		in.Recipient.Name,
		in.Recipient.Company,
		in.Recipient.Designation,
		in.Industry,
		in.Purpose,
		in.TargetAudience,
		in.Background,
	)
}
