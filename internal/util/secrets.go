package util

import (
	"errors"
	"fmt"

	"emailgenie/internal/domain"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Secrets struct {
	Completion struct {
		ApiKey  string `env:"GROQ_API_KEY"`
		BaseURL string `env:"COMPLETION_BASE_URL" envDefault:"https://api.groq.com/openai/v1"`
		Model   string `env:"COMPLETION_MODEL" envDefault:"gemma2-9b-it"`
	}
	Resend struct {
		ApiKey    string `env:"RESEND_API_KEY"`
		FromEmail string `env:"RESEND_FROM_EMAIL"`
	}
	HubSpot struct {
		ApiKey string `env:"HUBSPOT_API_KEY"`
	}
}

// LoadSecrets reads credentials from the process environment, loading a
// .env file first when one is present.
func LoadSecrets() (*Secrets, error) {
	// a missing .env is fine, keys may come from the real environment
	_ = godotenv.Load()

	secrets := Secrets{}
	if err := env.Parse(&secrets); err != nil {
		return nil, fmt.Errorf("%w: failed to parse env: %w", domain.ErrConfig, err)
	}

	return &secrets, nil
}

// Validate reports every missing credential. A non-nil result is meant
// to be shown once at startup, not to stop the process.
func (s Secrets) Validate() error {
	errs := []error{}
	if s.Completion.ApiKey == "" {
		errs = append(errs, fmt.Errorf("%w: GROQ_API_KEY is not set", domain.ErrConfig))
	}
	if s.Resend.ApiKey == "" {
		errs = append(errs, fmt.Errorf("%w: RESEND_API_KEY is not set", domain.ErrConfig))
	}
	if s.HubSpot.ApiKey == "" {
		errs = append(errs, fmt.Errorf("%w: HUBSPOT_API_KEY is not set", domain.ErrConfig))
	}
	return errors.Join(errs...)
}
