package repository

//go:generate mockgen -source=crm.repository.go -destination=mocks/mock_crm.repository.go

import (
	"context"
	"fmt"
	"net/http"

	"emailgenie/internal/domain"
	"emailgenie/pkg/hubspot"
)

// CrmRepository records outreach against a contact in the CRM.
type CrmRepository interface {
	UpsertContact(ctx context.Context, name, company, email, note string) error
}

type crmRepositoryHandler struct {
	Client hubspot.Client
}

func NewCrmRepository(apiKey string) CrmRepository {
	return crmRepositoryHandler{
		Client: hubspot.Client{
			HttpClient: http.DefaultClient,
			ApiKey:     apiKey,
		},
	}
}

func (h crmRepositoryHandler) UpsertContact(ctx context.Context, name, company, email, note string) error {
	_, err := h.Client.UpsertContact(ctx, hubspot.ContactProperties{
		Email:    email,
		LastName: name,
		Company:  company,
		Notes:    note,
	})
	if err != nil {
		return fmt.Errorf("%w: failed to upsert crm contact: %w", domain.ErrService, err)
	}
	return nil
}
