// Package config loads runtime configuration from config.yaml, .env and the
// environment, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	CatalogEmbedded = "embedded"
	CatalogDatabase = "database"

	SinkLog      = "log"
	SinkDatabase = "database"
)

type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Log        LogConfig        `mapstructure:"log"`
	CORS       CORSConfig       `mapstructure:"cors"`
	Catalog    CatalogConfig    `mapstructure:"catalog"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Submission SubmissionConfig `mapstructure:"submission"`
	LLM        LLMConfig        `mapstructure:"llm"`
	Gmail      GmailConfig      `mapstructure:"gmail"`
}

type ServerConfig struct {
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type CatalogConfig struct {
	Source string `mapstructure:"source"`
}

type DatabaseConfig struct {
	DSN string `mapstructure:"dsn"`
}

// SubmissionConfig holds the simulated network latency of the two forms and
// where accepted submissions are handed off to.
type SubmissionConfig struct {
	PostDelay    time.Duration `mapstructure:"post_delay"`
	ContactDelay time.Duration `mapstructure:"contact_delay"`
	Sink         string        `mapstructure:"sink"`
}

type LLMConfig struct {
	APIKey string `mapstructure:"api_key"`
	Model  string `mapstructure:"model"`
}

// GmailConfig enables delivery of contact messages to Inbox. Empty Inbox
// disables it.
type GmailConfig struct {
	CredentialsFile string `mapstructure:"credentials_file"`
	TokenFile       string `mapstructure:"token_file"`
	Inbox           string `mapstructure:"inbox"`
	Sender          string `mapstructure:"sender"`
}

// Load reads configuration. configPaths are searched for config.yaml; a
// missing file is not an error.
func Load(configPaths ...string) (*Config, error) {
	// .env is optional; real environment variables win over it.
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if len(configPaths) == 0 {
		configPaths = []string{"./configs", "."}
	}
	for _, p := range configPaths {
		v.AddConfigPath(p)
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// Keep the key name the original deployment used.
	_ = v.BindEnv("llm.api_key", "LLM_API_KEY", "GEMINI_API_KEY")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("cors.allowed_origins", []string{"*"})
	v.SetDefault("catalog.source", CatalogEmbedded)
	v.SetDefault("database.dsn", "")
	v.SetDefault("submission.post_delay", 1500*time.Millisecond)
	v.SetDefault("submission.contact_delay", time.Second)
	v.SetDefault("submission.sink", SinkLog)
	v.SetDefault("llm.api_key", "")
	v.SetDefault("llm.model", "gemini-2.5-flash")
	v.SetDefault("gmail.credentials_file", "credential.json")
	v.SetDefault("gmail.token_file", "token.json")
	v.SetDefault("gmail.inbox", "")
	v.SetDefault("gmail.sender", "me")
}

func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}

	switch c.Catalog.Source {
	case CatalogEmbedded:
	case CatalogDatabase:
		if c.Database.DSN == "" {
			return errors.New("database.dsn is required when catalog.source is database")
		}
	default:
		return fmt.Errorf("catalog.source must be %q or %q, got %q", CatalogEmbedded, CatalogDatabase, c.Catalog.Source)
	}

	switch c.Submission.Sink {
	case SinkLog:
	case SinkDatabase:
		if c.Database.DSN == "" {
			return errors.New("database.dsn is required when submission.sink is database")
		}
	default:
		return fmt.Errorf("submission.sink must be %q or %q, got %q", SinkLog, SinkDatabase, c.Submission.Sink)
	}

	if c.Submission.PostDelay < 0 || c.Submission.ContactDelay < 0 {
		return errors.New("submission delays must not be negative")
	}
	return nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

// UsesDatabase reports whether any component needs a database connection.
func (c *Config) UsesDatabase() bool {
	return c.Catalog.Source == CatalogDatabase || c.Submission.Sink == SinkDatabase
}
