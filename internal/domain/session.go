package domain

import "fmt"

type Tab string

const (
	TabProfileSetup Tab = "User Profile Setup"
	TabGenerate     Tab = "Generate Email"
	TabPreview      Tab = "Email Preview"
)

var Tabs = []Tab{TabProfileSetup, TabGenerate, TabPreview}

func ParseTab(s string) (Tab, error) {
	for _, t := range Tabs {
		if string(t) == s {
			return t, nil
		}
	}
	return "", ValidationError(fmt.Sprintf("unknown tab %q", s))
}

// Session is the transient state shared by the three screens. One is
// created at process start and lives until the process exits.
type Session struct {
	ActiveTab           Tab    `json:"activeTab"`
	Draft               Draft  `json:"draft"`
	SelectedProfileName string `json:"selectedProfileName"`
}

func NewSession() *Session {
	return &Session{
		ActiveTab: TabProfileSetup,
	}
}

type Purpose string

const (
	PurposeSalesPitch          Purpose = "Sales Pitch"
	PurposeJobApplication      Purpose = "Job Application"
	PurposeServiceOffer        Purpose = "Service Offer"
	PurposePartnershipProposal Purpose = "Partnership Proposal"
	PurposeEventInvitation     Purpose = "Event Invitation"
)

var Purposes = []Purpose{
	PurposeSalesPitch,
	PurposeJobApplication,
	PurposeServiceOffer,
	PurposePartnershipProposal,
	PurposeEventInvitation,
}

func ParsePurpose(s string) (Purpose, error) {
	for _, p := range Purposes {
		if string(p) == s {
			return p, nil
		}
	}
	return "", ValidationError(fmt.Sprintf("unknown email purpose %q", s))
}

type Recipient struct {
	Name        string `json:"name"`
	Company     string `json:"company"`
	Designation string `json:"designation"`
	Email       string `json:"email"`
}
