package cmd

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"emailgenie/api"
	"emailgenie/internal/app"
	"emailgenie/internal/db"
	"emailgenie/internal/domain"
	"emailgenie/internal/repository"
	"emailgenie/internal/service"
	"emailgenie/internal/util"

	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Config holds the runtime settings resolved by viper from flags and
// EMAILGENIE_* environment variables.
type Config struct {
	Port         int
	DatabaseURL  string
	ProfilesPath string
	CrmEnabled   bool
}

func ConfigFromViper() Config {
	return Config{
		Port:         viper.GetInt("port"),
		DatabaseURL:  viper.GetString("database.url"),
		ProfilesPath: viper.GetString("profiles.path"),
		CrmEnabled:   viper.GetBool("crm.enabled"),
	}
}

type Dependencies struct {
	Db         *sql.DB
	ApiHandler *api.ApiHandler
	SessionApp app.SessionApp
}

func CloseDependencies(deps *Dependencies, log *zap.SugaredLogger) {
	if deps.Db == nil {
		return
	}
	if err := deps.Db.Close(); err != nil {
		log.Errorw("failed to close db", "error", err)
	}
}

// logConfigErrors reports each missing credential once. The process keeps
// running so the screens can still be used.
func logConfigErrors(err error, log *zap.SugaredLogger) {
	if err == nil {
		return
	}
	var joined interface{ Unwrap() []error }
	if errors.As(err, &joined) {
		for _, e := range joined.Unwrap() {
			log.Errorw("configuration error", "error", e)
		}
		return
	}
	log.Errorw("configuration error", "error", err)
}

// OpenDb connects and migrates. A nil db with a nil error means no
// database is configured; templates and the sent log are then disabled.
func OpenDb(ctx context.Context, databaseURL string, log *zap.SugaredLogger) (*sql.DB, error) {
	if databaseURL == "" {
		log.Warnw("no database configured, templates and sent email log are disabled")
		return nil, nil
	}

	dbConn, err := util.NewDb(databaseURL)
	if err != nil {
		return nil, err
	}
	if err := dbConn.PingContext(ctx); err != nil {
		dbConn.Close()
		return nil, fmt.Errorf("failed to ping db: %w", err)
	}
	if err := db.Migrate(ctx, dbConn, log); err != nil {
		dbConn.Close()
		return nil, err
	}

	return dbConn, nil
}

func InitializeDependencies(ctx context.Context, cfg Config, log *zap.SugaredLogger) (*Dependencies, error) {
	secrets, err := util.LoadSecrets()
	if err != nil {
		return nil, fmt.Errorf("failed to load secrets: %w", err)
	}
	logConfigErrors(secrets.Validate(), log)

	dbConn, err := OpenDb(ctx, cfg.DatabaseURL, log)
	if err != nil {
		return nil, err
	}

	var (
		sentEmailRepository     repository.SentEmailRepository
		emailTemplateRepository repository.EmailTemplateRepository
		crmRepository           repository.CrmRepository
	)
	if dbConn != nil {
		sentEmailRepository = repository.NewSentEmailRepository(dbConn)
		emailTemplateRepository = repository.NewEmailTemplateRepository(dbConn)
	}
	if cfg.CrmEnabled {
		crmRepository = repository.NewCrmRepository(secrets.HubSpot.ApiKey)
	}

	profileRepository := repository.NewProfileRepository(cfg.ProfilesPath)
	completionRepository := repository.NewCompletionRepository(
		secrets.Completion.ApiKey,
		secrets.Completion.BaseURL,
		secrets.Completion.Model,
	)
	emailRepository := repository.NewEmailRepository(secrets.Resend.ApiKey, secrets.Resend.FromEmail)

	draftService := service.NewDraftService(completionRepository, log)
	dispatchService := service.NewDispatchService(
		emailRepository,
		sentEmailRepository,
		crmRepository,
		log,
	)

	sessionApp := app.NewSessionApp(
		profileRepository,
		emailTemplateRepository,
		sentEmailRepository,
		draftService,
		dispatchService,
		log,
	)

	apiHandler := &api.ApiHandler{
		SessionApp: sessionApp,
		Session:    domain.NewSession(),
		Logger:     log,
	}

	return &Dependencies{
		Db:         dbConn,
		ApiHandler: apiHandler,
		SessionApp: sessionApp,
	}, nil
}
