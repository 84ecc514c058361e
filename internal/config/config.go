package config

import (
	"errors"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

var (
	ErrInvalidBucketCount = errors.New("the bucket count has to be a positive integer")
	ErrInvalidMaxEntries  = errors.New("the entry limit must not be negative")
	ErrInvalidStackSize   = errors.New("the stack size has to be a positive integer")
)

// Config represents the application configuration structure
type Config struct {
	Environment string `default:"development"`
	BucketCount int    `default:"20" split_words:"true"`
	MaxEntries  int    `default:"0" split_words:"true"`
	StackSize   int    `default:"10" split_words:"true"`
}

// IsEnvProduction returns whether the application runs in production mode
func (config *Config) IsEnvProduction() bool {
	return config.Environment == "production"
}

// Validate checks the sizes and limits configured for the data structures
func (config *Config) Validate() error {
	if config.BucketCount <= 0 {
		return ErrInvalidBucketCount
	}
	if config.MaxEntries < 0 {
		return ErrInvalidMaxEntries
	}
	if config.StackSize <= 0 {
		return ErrInvalidStackSize
	}
	return nil
}

// LoadFromEnv loads a new configuration structure using environment variables and an optional .env file
func LoadFromEnv() (*Config, error) {
	// Load a .env file if it exists
	_ = godotenv.Overload()

	// Load a new configuration structure using environment variables
	config := new(Config)
	if err := envconfig.Process("classics", config); err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}
