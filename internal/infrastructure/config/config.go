package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// DataSource selects where engagements are read from and written to.
type DataSource string

const (
	DataSourceDynamoDB DataSource = "dynamodb"
	DataSourcePostgres DataSource = "postgres"
	DataSourceFixture  DataSource = "fixture"
)

func (d DataSource) Valid() bool {
	switch d {
	case DataSourceDynamoDB, DataSourcePostgres, DataSourceFixture:
		return true
	}
	return false
}

// Config is the application configuration read from the environment.
type Config struct {
	HTTPPort int    `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	DataSource      DataSource `env:"DATA_SOURCE" envDefault:"dynamodb"`
	FixtureFallback bool       `env:"FIXTURE_FALLBACK" envDefault:"false"`

	DeadlineDefaultMaxDays int `env:"DEADLINE_DEFAULT_MAX_DAYS" envDefault:"30"`

	DynamoDB DynamoDBConfig
	Postgres PostgresConfig
}

type DynamoDBConfig struct {
	Region          string `env:"AWS_REGION" envDefault:"us-east-1"`
	AccessKeyID     string `env:"AWS_ACCESS_KEY_ID" envDefault:"local"`
	SecretAccessKey string `env:"AWS_SECRET_ACCESS_KEY" envDefault:"local"`
	Endpoint        string `env:"DYNAMODB_ENDPOINT"`
	TableName       string `env:"ENGAGEMENTS_TABLE" envDefault:"engagements"`
}

type PostgresConfig struct {
	DSN string `env:"DATABASE_DSN"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load parses and validates the application configuration.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if !c.DataSource.Valid() {
		return fmt.Errorf("unknown DATA_SOURCE %q", c.DataSource)
	}
	if c.HTTPPort <= 0 || c.HTTPPort > 65535 {
		return fmt.Errorf("HTTP_PORT out of range: %d", c.HTTPPort)
	}
	if c.DeadlineDefaultMaxDays < 0 {
		return fmt.Errorf("DEADLINE_DEFAULT_MAX_DAYS must not be negative")
	}
	if c.DataSource == DataSourcePostgres && c.Postgres.DSN == "" {
		return fmt.Errorf("DATABASE_DSN is required when DATA_SOURCE=postgres")
	}
	return nil
}
