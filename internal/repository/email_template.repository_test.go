package repository

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	dbmigrate "emailgenie/internal/db"
	"emailgenie/internal/db/models/postgres/public/model"
	"emailgenie/internal/domain"
	"emailgenie/internal/util"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func Test_addEmailTemplateQuery(t *testing.T) {
	sql := addEmailTemplateQuery(model.EmailTemplates{
		Name:        "follow up",
		Content:     "Hi there",
		ProfileJSON: `{"name":"Acme-Sales"}`,
		CreatedAt:   time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}).DebugSql()

	require.Contains(t, sql, "INSERT INTO public.email_templates")
	require.Contains(t, sql, "profile_json")
	require.Contains(t, sql, "'follow up'")
}

func Test_emailTemplateRepositoryHandler_AddList(t *testing.T) {
	db, ok, err := util.NewTestDb()
	if !ok {
		t.Skip("set " + util.TestDatabaseUrlEnv + " to run database tests")
	}
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, dbmigrate.Migrate(context.Background(), db, zap.NewNop().Sugar()))

	repo := NewEmailTemplateRepository(db)
	profile := newTestProfile("Acme-Sales")
	added, err := repo.Add("follow up", "Hi there", profile)
	require.NoError(t, err)

	got := domain.Profile{}
	require.NoError(t, json.Unmarshal([]byte(added.ProfileJSON), &got))
	require.Equal(t, profile, got)

	templates, err := repo.List()
	require.NoError(t, err)
	require.NotEmpty(t, templates)
}
