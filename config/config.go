package config

import (
	"fmt"
	"time"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
)

// Config carries everything the server needs from the environment. The USDA
// key is the only hard requirement; a missing key is a startup failure, not
// something discovered on the first lookup.
type Config struct {
	Port string `env:"PORT,default=8080"`

	USDAAPIKey  string `env:"USDA_API_KEY,required"`
	USDABaseURL string `env:"USDA_BASE_URL,default=https://api.nal.usda.gov/fdc/v1"`

	// Optional LLM-assisted candidate selection. Left empty, search falls
	// back to the first hit.
	OpenAIAPIKey  string `env:"OPENAI_API_KEY"`
	OpenAIModel   string `env:"OPENAI_MODEL,default=gpt-4.1-nano"`
	OpenAIBaseURL string `env:"OPENAI_BASE_URL,default=https://api.openai.com/v1"`

	// When set, all endpoints require a bearer JWT signed with this secret.
	JWTSecret string `env:"JWT_SECRET"`

	HTTPTimeout   time.Duration `env:"HTTP_TIMEOUT,default=10s"`
	LookupWorkers int           `env:"LOOKUP_WORKERS,default=4"`
}

// Load reads an optional .env file and decodes the environment into a Config.
func Load() (*Config, error) {
	// .env is a local-dev convenience; deployments set the environment
	// directly.
	_ = godotenv.Load()

	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("configuration: %w", err)
	}
	return &cfg, nil
}
