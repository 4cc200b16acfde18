package app

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"emailgenie/internal/db/models/postgres/public/model"
	"emailgenie/internal/domain"
	"emailgenie/internal/repository"
	"emailgenie/internal/service"

	"go.uber.org/zap"
)

type GenerateInput struct {
	ProfileName string           `json:"profileName"`
	Purpose     string           `json:"purpose"`
	Recipient   domain.Recipient `json:"recipient"`
}

// SessionApp drives the three screens. All operations are serialized so
// the session behaves as if driven by a single user.
type SessionApp interface {
	// Snapshot copies the session under the lock. Readers outside the
	// app must use the copy instead of the live session.
	Snapshot(session *domain.Session) domain.Session
	Navigate(session *domain.Session, tab string) error

	SaveProfile(profile domain.Profile) error
	ListProfiles() ([]domain.Profile, error)
	DeleteProfile(name string) error

	Generate(ctx context.Context, session *domain.Session, in GenerateInput) error
	UpdateDraft(session *domain.Session, edit domain.DraftEdit) error
	Send(ctx context.Context, session *domain.Session) (*service.SendResult, error)

	SaveTemplate(session *domain.Session, name string) (*model.EmailTemplates, error)
	ListTemplates() ([]model.EmailTemplates, error)
	ListSentEmails() ([]model.SentEmails, error)
}

type sessionAppHandler struct {
	mu sync.Mutex

	ProfileRepository       repository.ProfileRepository
	EmailTemplateRepository repository.EmailTemplateRepository
	SentEmailRepository     repository.SentEmailRepository
	DraftService            service.DraftService
	DispatchService         service.DispatchService
	Logger                  *zap.SugaredLogger
}

func NewSessionApp(
	profileRepository repository.ProfileRepository,
	emailTemplateRepository repository.EmailTemplateRepository,
	sentEmailRepository repository.SentEmailRepository,
	draftService service.DraftService,
	dispatchService service.DispatchService,
	log *zap.SugaredLogger,
) SessionApp {
	return &sessionAppHandler{
		ProfileRepository:       profileRepository,
		EmailTemplateRepository: emailTemplateRepository,
		SentEmailRepository:     sentEmailRepository,
		DraftService:            draftService,
		DispatchService:         dispatchService,
		Logger:                  log,
	}
}

func (h *sessionAppHandler) Snapshot(session *domain.Session) domain.Session {
	h.mu.Lock()
	defer h.mu.Unlock()

	return *session
}

func (h *sessionAppHandler) Navigate(session *domain.Session, tab string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	t, err := domain.ParseTab(tab)
	if err != nil {
		return err
	}
	session.ActiveTab = t
	return nil
}

func (h *sessionAppHandler) SaveProfile(profile domain.Profile) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if err := profile.Validate(); err != nil {
		return err
	}
	if err := h.ProfileRepository.Save(profile); err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	h.Logger.Infow("profile saved", "profile", profile.Name)
	return nil
}

func (h *sessionAppHandler) ListProfiles() ([]domain.Profile, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	profiles, err := h.ProfileRepository.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	return profiles, nil
}

func (h *sessionAppHandler) DeleteProfile(name string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if err := h.ProfileRepository.Delete(name); err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}
	h.Logger.Infow("profile deleted", "profile", name)
	return nil
}

// Generate builds the instruction from the selected profile and the
// recipient, asks for a draft and moves the session to Preview. A failed
// completion still lands on Preview with the fallback draft.
func (h *sessionAppHandler) Generate(ctx context.Context, session *domain.Session, in GenerateInput) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if in.ProfileName == "" {
		return domain.ValidationError("please create and select a profile first")
	}
	profile, err := h.ProfileRepository.Get(in.ProfileName)
	if err != nil {
		return fmt.Errorf("failed to get profile: %w", err)
	}
	if profile == nil {
		return domain.ValidationError(fmt.Sprintf("profile %q does not exist", in.ProfileName))
	}

	purpose, err := domain.ParsePurpose(in.Purpose)
	if err != nil {
		return err
	}

	recipient := domain.Recipient{
		Name:        strings.TrimSpace(in.Recipient.Name),
		Company:     strings.TrimSpace(in.Recipient.Company),
		Designation: strings.TrimSpace(in.Recipient.Designation),
		Email:       strings.TrimSpace(in.Recipient.Email),
	}

	prompt := service.BuildPrompt(service.NewPromptInput(purpose, recipient, *profile))
	subject, body := h.DraftService.GenerateDraft(ctx, prompt)

	session.SelectedProfileName = profile.Name
	session.Draft = domain.Draft{
		RecipientEmail:   recipient.Email,
		RecipientName:    recipient.Name,
		RecipientCompany: recipient.Company,
		Subject:          subject,
		Body:             body,
		SenderName:       profile.SenderName,
		SenderCompany:    profile.SenderCompany,
		SenderEmail:      profile.SenderEmail,
	}
	session.ActiveTab = domain.TabPreview

	return nil
}

func (h *sessionAppHandler) UpdateDraft(session *domain.Session, edit domain.DraftEdit) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if session.Draft.SenderEmail == "" {
		return domain.ValidationError("no email generated yet")
	}
	session.Draft.Apply(edit)
	return nil
}

// Send dispatches the current draft. An empty subject or body is rejected
// before the dispatch client is called. The session stays on Preview.
func (h *sessionAppHandler) Send(ctx context.Context, session *domain.Session) (*service.SendResult, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	draft := session.Draft
	if err := draft.Sendable(); err != nil {
		return nil, err
	}

	result := h.DispatchService.Send(ctx, service.SendInput{
		FromName:         draft.SenderName,
		FromEmail:        draft.SenderEmail,
		To:               draft.RecipientEmail,
		Subject:          draft.Subject,
		Body:             draft.Body,
		RecipientName:    draft.RecipientName,
		RecipientCompany: draft.RecipientCompany,
	})
	session.ActiveTab = domain.TabPreview

	return &result, nil
}

func (h *sessionAppHandler) SaveTemplate(session *domain.Session, name string) (*model.EmailTemplates, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.EmailTemplateRepository == nil {
		return nil, fmt.Errorf("failed to save template: %w: database is not configured", domain.ErrConfig)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.ValidationError("template name is required")
	}
	if strings.TrimSpace(session.Draft.Body) == "" {
		return nil, domain.ValidationError("no email body to save")
	}

	profile, err := h.ProfileRepository.Get(session.SelectedProfileName)
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	if profile == nil {
		return nil, domain.ValidationError("please select a profile first")
	}

	template, err := h.EmailTemplateRepository.Add(name, session.Draft.Body, *profile)
	if err != nil {
		return nil, fmt.Errorf("failed to save template: %w", err)
	}
	return template, nil
}

func (h *sessionAppHandler) ListTemplates() ([]model.EmailTemplates, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.EmailTemplateRepository == nil {
		return []model.EmailTemplates{}, nil
	}
	return h.EmailTemplateRepository.List()
}

func (h *sessionAppHandler) ListSentEmails() ([]model.SentEmails, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.SentEmailRepository == nil {
		return []model.SentEmails{}, nil
	}
	return h.SentEmailRepository.List()
}
