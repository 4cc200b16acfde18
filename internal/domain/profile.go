package domain

import (
	"fmt"
	"strings"
)

// Profile is a reusable set of sender and context fields used to
// parameterize prompt construction. Name is the only identifier.
type Profile struct {
	Name           string `csv:"Profile Name" json:"name"`
	Industry       string `csv:"Industry" json:"industry"`
	TargetAudience string `csv:"Target Audience" json:"targetAudience"`
	Background     string `csv:"Background" json:"background"`
	SenderName     string `csv:"Sender Name" json:"senderName"`
	SenderCompany  string `csv:"Sender Company" json:"senderCompany"`
	SenderEmail    string `csv:"Sender Email" json:"senderEmail"`
}

// ProfileColumns is the fixed header of the profile store file.
var ProfileColumns = []string{
	"Profile Name",
	"Industry",
	"Target Audience",
	"Background",
	"Sender Name",
	"Sender Company",
	"Sender Email",
}

func (p Profile) Validate() error {
	fields := []struct {
		label string
		value string
	}{
		{"profile name", p.Name},
		{"industry", p.Industry},
		{"target audience", p.TargetAudience},
		{"background", p.Background},
		{"sender name", p.SenderName},
		{"sender company", p.SenderCompany},
		{"sender email", p.SenderEmail},
	}

	missing := []string{}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.label)
		}
	}
	if len(missing) > 0 {
		return ValidationError(fmt.Sprintf("please fill in all fields before saving the profile - missing %s", strings.Join(missing, ", ")))
	}

	return nil
}

var lineEndings = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// Normalize converts CRLF and lone CR line endings to LF. The profile file
// stores LF only, so a normalized profile reads back unchanged.
func (p Profile) Normalize() Profile {
	return Profile{
		Name:           lineEndings.Replace(p.Name),
		Industry:       lineEndings.Replace(p.Industry),
		TargetAudience: lineEndings.Replace(p.TargetAudience),
		Background:     lineEndings.Replace(p.Background),
		SenderName:     lineEndings.Replace(p.SenderName),
		SenderCompany:  lineEndings.Replace(p.SenderCompany),
		SenderEmail:    lineEndings.Replace(p.SenderEmail),
	}
}
