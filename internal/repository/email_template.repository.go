package repository

//go:generate mockgen -source=email_template.repository.go -destination=mocks/mock_email_template.repository.go

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"emailgenie/internal/db/models/postgres/public/model"
	"emailgenie/internal/db/models/postgres/public/table"
	"emailgenie/internal/domain"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
)

// EmailTemplateRepository stores user-saved templates. The associated
// profile is kept as a JSON snapshot, there is no foreign key.
type EmailTemplateRepository interface {
	Add(name string, content string, profile domain.Profile) (*model.EmailTemplates, error)
	List() ([]model.EmailTemplates, error)
}

type emailTemplateRepositoryHandler struct {
	Db *sql.DB
}

func NewEmailTemplateRepository(db *sql.DB) EmailTemplateRepository {
	return emailTemplateRepositoryHandler{Db: db}
}

func addEmailTemplateQuery(m model.EmailTemplates) postgres.InsertStatement {
	t := table.EmailTemplates
	return t.INSERT(t.MutableColumns).
		MODEL(m).
		RETURNING(t.AllColumns)
}

func (h emailTemplateRepositoryHandler) Add(name string, content string, profile domain.Profile) (*model.EmailTemplates, error) {
	profileJson, err := json.Marshal(profile)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal template profile: %w", err)
	}

	m := model.EmailTemplates{
		Name:        name,
		Content:     content,
		ProfileJSON: string(profileJson),
		CreatedAt:   time.Now().UTC(),
	}

	out := model.EmailTemplates{}
	err = addEmailTemplateQuery(m).Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert email template: %w", err)
	}

	return &out, nil
}

func (h emailTemplateRepositoryHandler) List() ([]model.EmailTemplates, error) {
	t := table.EmailTemplates
	query := t.SELECT(t.AllColumns).
		ORDER_BY(t.ID.ASC())

	out := []model.EmailTemplates{}
	err := query.Query(h.Db, &out)
	if errors.Is(err, qrm.ErrNoRows) {
		return []model.EmailTemplates{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list email templates: %w", err)
	}

	return out, nil
}
