package db

import (
	"io/fs"
	"testing"

	"emailgenie/internal/db/migrations"

	"github.com/stretchr/testify/require"
)

func TestMigrationsEmbedded(t *testing.T) {
	files, err := fs.Glob(migrations.FS, "*.sql")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	contents, err := fs.ReadFile(migrations.FS, files[0])
	require.NoError(t, err)
	require.Contains(t, string(contents), "CREATE TABLE IF NOT EXISTS sent_emails")
	require.Contains(t, string(contents), "CREATE TABLE IF NOT EXISTS email_templates")
}
