package config

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the relay.
type Config struct {
	Environment string
	Port        string

	// Administrate provider API.
	ProviderEndpoint string
	ProviderToken    string

	// Optional: enables contact auto-create when a learner's email is unknown.
	DefaultAccountID string
	// Optional: custom-field definition key the public URL is written to.
	// The provider addresses custom fields by definition key, not display name.
	CustomFieldKey string
	// Optional: base URL for computed public event URLs. When empty the
	// requesting origin is used.
	SiteBase string

	// Origins allowed by CORS. "*" allows any origin.
	AllowedOrigins []string

	Email EmailConfig
}

// EmailConfig holds settings for the registration confirmation mailer.
// Provider "ses" sends via AWS SES; anything else is a no-op.
type EmailConfig struct {
	Provider        string
	FromAddress     string
	FromName        string
	AWSRegion       string
	AWSAccessKeyID  string
	AWSSecretKey    string
}

// Load loads configuration from environment variables.
// It attempts to load from .env file if not in production.
func Load() (*Config, error) {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	// In production we rely on system environment variables; a missing .env
	// file is only worth a warning elsewhere.
	if env != "production" {
		if err := godotenv.Load(); err != nil {
			log.Printf("Warning: .env file not found or couldn't be loaded: %v", err)
		}
	}

	cfg := &Config{
		Environment:      env,
		Port:             os.Getenv("PORT"),
		ProviderEndpoint: os.Getenv("ADMINISTRATE_GRAPHQL_ENDPOINT"),
		ProviderToken:    os.Getenv("ADMINISTRATE_API_TOKEN"),
		DefaultAccountID: os.Getenv("DEFAULT_ACCOUNT_ID"),
		CustomFieldKey:   os.Getenv("PUBLIC_URL_CF_DEFINITION_KEY"),
		SiteBase:         strings.TrimSuffix(os.Getenv("PUBLIC_SITE_BASE"), "/"),
		AllowedOrigins:   splitOrigins(os.Getenv("ALLOWED_ORIGIN")),
		Email: EmailConfig{
			Provider:       os.Getenv("EMAIL_PROVIDER"),
			FromAddress:    os.Getenv("EMAIL_FROM_ADDRESS"),
			FromName:       os.Getenv("EMAIL_FROM_NAME"),
			AWSRegion:      os.Getenv("AWS_REGION"),
			AWSAccessKeyID: os.Getenv("AWS_ACCESS_KEY_ID"),
			AWSSecretKey:   os.Getenv("AWS_SECRET_ACCESS_KEY"),
		},
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if len(cfg.AllowedOrigins) == 0 {
		cfg.AllowedOrigins = []string{"*"}
	}

	return cfg, nil
}

// Validate reports missing required configuration. The relay fails fast at
// startup instead of re-checking the environment on every request.
func (c *Config) Validate() error {
	var missing []string
	if c.ProviderEndpoint == "" {
		missing = append(missing, "ADMINISTRATE_GRAPHQL_ENDPOINT")
	}
	if c.ProviderToken == "" {
		missing = append(missing, "ADMINISTRATE_API_TOKEN")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}
	return nil
}

func splitOrigins(s string) []string {
	var out []string
	for _, o := range strings.Split(s, ",") {
		o = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(o), "/"))
		if o != "" {
			out = append(out, o)
		}
	}
	return out
}
