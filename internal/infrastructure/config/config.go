package config

import (
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds every runtime setting, read from the environment.
type Config struct {
	Port string `env:"PORT" env-default:"8080"`

	AWS struct {
		Region           string `env:"AWS_REGION" env-default:"us-east-1"`
		AccessKeyID      string `env:"AWS_ACCESS_KEY_ID" env-default:"local"`
		SecretAccessKey  string `env:"AWS_SECRET_ACCESS_KEY" env-default:"local"`
		DynamoDBEndpoint string `env:"DYNAMODB_ENDPOINT"`
	}

	Auth struct {
		JWTSecret string `env:"AUTH_JWT_SECRET" env-default:"dev-secret"`
	}

	Analysis struct {
		// WaitTimeout bounds how long a goal submission blocks waiting
		// for its decision result before answering "processando".
		WaitTimeout      time.Duration `env:"ANALYSIS_WAIT_TIMEOUT" env-default:"20s"`
		ProcessingDelay  time.Duration `env:"ANALYSIS_PROCESSING_DELAY" env-default:"2s"`
		ReevaluationCron string        `env:"REEVALUATION_CRON" env-default:"@every 30m"`
	}

	Partner struct {
		// WebhookURL is the partner network endpoint notified on each
		// registered interest. Empty disables delivery.
		WebhookURL string        `env:"PARTNER_WEBHOOK_URL"`
		Timeout    time.Duration `env:"PARTNER_WEBHOOK_TIMEOUT" env-default:"5s"`
	}
}

// Load reads the configuration from environment variables, applying
// defaults suitable for local development.
func Load() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
