package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds the storefront's runtime settings. Everything comes from the
// environment (optionally via a .env file) with sensible development
// defaults for a single-device setup.
type Config struct {
	Port     string `envconfig:"PORT" default:"8081"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// Path of the on-device catalog storage file.
	StoragePath string `envconfig:"STORAGE_PATH" default:"storefront.db"`

	StoreName string `envconfig:"STORE_NAME" default:"Açaí Real"`

	// Destination for the order handoff deep link.
	WhatsAppNumber string `envconfig:"WHATSAPP_NUMBER" default:"5587999279050"`

	// Plaintext operator access code, or a bcrypt hash of it. The hash wins
	// when both are set.
	OperatorCode     string `envconfig:"OPERATOR_CODE" default:"1234"`
	OperatorCodeHash string `envconfig:"OPERATOR_CODE_HASH"`

	CORSOrigins []string `envconfig:"CORS_ORIGINS" default:"http://localhost:5173"`
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("storefront", &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}
