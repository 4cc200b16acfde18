package cmd

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"emailgenie/internal/domain"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestInitializeDependencies(t *testing.T) {
	t.Run("runs without credentials or database", func(t *testing.T) {
		t.Setenv("GROQ_API_KEY", "")
		t.Setenv("RESEND_API_KEY", "")
		t.Setenv("HUBSPOT_API_KEY", "")
		core, logs := observer.New(zapcore.InfoLevel)
		log := zap.New(core).Sugar()

		deps, err := InitializeDependencies(context.Background(), Config{
			Port:         3009,
			ProfilesPath: filepath.Join(t.TempDir(), "user_profiles.csv"),
		}, log)
		require.NoError(t, err)
		require.Nil(t, deps.Db)
		require.NotNil(t, deps.ApiHandler)
		require.Equal(t, domain.TabProfileSetup, deps.ApiHandler.Session.ActiveTab)

		require.Equal(t, 3, logs.FilterMessage("configuration error").Len())

		templates, err := deps.SessionApp.ListTemplates()
		require.NoError(t, err)
		require.Empty(t, templates)

		CloseDependencies(deps, log)
	})
}

func Test_logConfigErrors(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	log := zap.New(core).Sugar()

	logConfigErrors(nil, log)
	require.Equal(t, 0, logs.Len())

	logConfigErrors(errors.Join(domain.ErrConfig, domain.ErrConfig), log)
	require.Equal(t, 2, logs.Len())
}

func TestConfigFromViper(t *testing.T) {
	viper.Set("port", 8080)
	viper.Set("profiles.path", "/tmp/p.csv")
	viper.Set("crm.enabled", true)
	t.Cleanup(viper.Reset)

	cfg := ConfigFromViper()
	require.Equal(t, 8080, cfg.Port)
	require.Equal(t, "/tmp/p.csv", cfg.ProfilesPath)
	require.True(t, cfg.CrmEnabled)
	require.Equal(t, "", cfg.DatabaseURL)
}
