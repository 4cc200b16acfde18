package repository

//go:generate mockgen -source=sent_email.repository.go -destination=mocks/mock_sent_email.repository.go

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"emailgenie/internal/db/models/postgres/public/model"
	"emailgenie/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
)

// SentEmailRepository is the append-only log of dispatched emails.
type SentEmailRepository interface {
	Add(m model.SentEmails) (*model.SentEmails, error)
	List() ([]model.SentEmails, error)
}

type sentEmailRepositoryHandler struct {
	Db *sql.DB
}

func NewSentEmailRepository(db *sql.DB) SentEmailRepository {
	return sentEmailRepositoryHandler{Db: db}
}

func addSentEmailQuery(m model.SentEmails) postgres.InsertStatement {
	t := table.SentEmails
	return t.INSERT(t.MutableColumns).
		MODEL(m).
		RETURNING(t.AllColumns)
}

func (h sentEmailRepositoryHandler) Add(m model.SentEmails) (*model.SentEmails, error) {
	if m.SentAt.IsZero() {
		m.SentAt = time.Now().UTC()
	}

	out := model.SentEmails{}
	err := addSentEmailQuery(m).Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert sent email: %w", err)
	}

	return &out, nil
}

func listSentEmailsQuery() postgres.SelectStatement {
	t := table.SentEmails
	return t.SELECT(t.AllColumns).
		ORDER_BY(t.SentAt.DESC(), t.ID.DESC())
}

func (h sentEmailRepositoryHandler) List() ([]model.SentEmails, error) {
	out := []model.SentEmails{}
	err := listSentEmailsQuery().Query(h.Db, &out)
	if errors.Is(err, qrm.ErrNoRows) {
		return []model.SentEmails{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list sent emails: %w", err)
	}

	return out, nil
}
