package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

const (
	StoreDriverDynamoDB = "dynamodb"
	StoreDriverPostgres = "postgres"
	StoreDriverRedis    = "redis"
	StoreDriverMemory   = "memory"
)

var (
	ErrMissingVerificationKey = errors.New("auth verification key is required")
	ErrMissingTableName       = errors.New("store table name is required")
	ErrMissingIndexName       = errors.New("store index name is required")
	ErrMissingBucketName      = errors.New("attachment bucket name is required")
	ErrInvalidURLExpiry       = errors.New("attachment url expiry must be positive")
	ErrUnknownStoreDriver     = errors.New("unknown store driver")
)

type Config struct {
	Server struct {
		Env      string `envconfig:"ENV" default:"development"`
		LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
		Port     string `envconfig:"PORT" default:"8080"`
		Host     string `envconfig:"HOST" default:"0.0.0.0"`
		Shutdown struct {
			CleanupPeriodSeconds int64 `envconfig:"CLEANUP_PERIOD_SECONDS" default:"5"`
			GracePeriodSeconds   int64 `envconfig:"GRACE_PERIOD_SECONDS" default:"5"`
		} `envconfig:"SHUTDOWN"`
	} `envconfig:"SERVER"`

	App struct {
		Name     string `envconfig:"NAME" default:"todos"`
		Timezone string `envconfig:"TIMEZONE" default:"UTC"`
		CORS     struct {
			AllowCredentials bool     `envconfig:"ALLOW_CREDENTIALS" default:"false"`
			AllowedHeaders   []string `envconfig:"ALLOWED_HEADERS" default:"Accept,Authorization,Content-Type,X-Request-ID"`
			AllowedMethods   []string `envconfig:"ALLOWED_METHODS" default:"GET,POST,PATCH,DELETE,OPTIONS"`
			AllowedOrigins   []string `envconfig:"ALLOWED_ORIGINS" default:"*"`
			MaxAgeSeconds    int      `envconfig:"MAX_AGE_SECONDS" default:"300"`
		} `envconfig:"CORS"`
	} `envconfig:"APP"`

	Auth struct {
		// PEM encoded certificate or PKIX public key used to verify RS256 tokens.
		VerificationKey     string `envconfig:"VERIFICATION_KEY"`
		VerificationKeyFile string `envconfig:"VERIFICATION_KEY_FILE"`
		Issuer              string `envconfig:"ISSUER"`
		Audience            string `envconfig:"AUDIENCE"`
	} `envconfig:"AUTH"`

	Store struct {
		Driver    string `envconfig:"DRIVER" default:"dynamodb"`
		TableName string `envconfig:"TABLE_NAME" default:"Todos"`
		IndexName string `envconfig:"INDEX_NAME" default:"CreatedAtIndex"`
		// Global secondary index keyed by todoId alone, used to locate an item
		// whatever its owner.
		TodoIndexName string `envconfig:"TODO_INDEX_NAME" default:"TodoIdIndex"`
	} `envconfig:"STORE"`

	Cache struct {
		Redis struct {
			Primary struct {
				Host     string `envconfig:"HOST" default:"localhost"`
				Port     string `envconfig:"PORT" default:"6379"`
				Password string `envconfig:"PASSWORD"`
				DB       int    `envconfig:"DB"`
			} `envconfig:"PRIMARY"`
		} `envconfig:"REDIS"`
	} `envconfig:"CACHE"`

	DB struct {
		Postgres struct {
			MaxRetry       int    `envconfig:"MAX_RETRY" default:"3"`
			RetryWaitTime  int    `envconfig:"RETRY_WAIT_TIME" default:"2"`
			MigrationTable string `envconfig:"MIGRATION_TABLE" default:"schema_migrations"`
			AutoMigrate    bool   `envconfig:"AUTO_MIGRATE"`
			Host           string `envconfig:"HOST" default:"localhost"`
			Port           string `envconfig:"PORT" default:"5432"`
			Username       string `envconfig:"USER"`
			Password       string `envconfig:"PASSWORD"`
			Name           string `envconfig:"NAME" default:"todos"`
			SSLMode        string `envconfig:"SSL_MODE" default:"disable"`
		} `envconfig:"POSTGRES"`
	} `envconfig:"DB"`

	AWS struct {
		Region          string `envconfig:"REGION" default:"us-east-1"`
		Endpoint        string `envconfig:"ENDPOINT"`
		AccessKeyID     string `envconfig:"ACCESS_KEY_ID"`
		SecretAccessKey string `envconfig:"SECRET_ACCESS_KEY"`
	} `envconfig:"AWS"`

	Attachment struct {
		BucketName       string `envconfig:"BUCKET_NAME"`
		URLExpirySeconds int    `envconfig:"URL_EXPIRY_SECONDS" default:"300"`
		PublicDomain     string `envconfig:"PUBLIC_DOMAIN"`
	} `envconfig:"ATTACHMENT"`

	Kafka struct {
		Brokers []string `envconfig:"BROKERS"`
		Topic   string   `envconfig:"TOPIC" default:"todo-events"`
		// Sync makes writes block until the brokers acknowledge them.
		Sync bool `envconfig:"SYNC"`
		SASL struct {
			Username string `envconfig:"USERNAME"`
			Password string `envconfig:"PASSWORD"`
		} `envconfig:"SASL"`
	} `envconfig:"KAFKA"`

	External struct {
		Otel struct {
			Endpoint string `envconfig:"ENDPOINT"`
		} `envconfig:"OTEL"`
	} `envconfig:"EXTERNAL"`
}

// Load reads the configuration and validates what the API server needs.
func Load() (*Config, error) {
	conf, err := Read()
	if err != nil {
		return nil, err
	}

	if err := conf.Validate(); err != nil {
		return nil, err
	}

	log.Info().Str("store", conf.Store.Driver).Msg("Service configuration initialized successfully")

	return conf, nil
}

// Read reads the optional .env file and then the process environment without
// validating the result.
func Read() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Warn().Err(err).Msg("Could not load .env file, continuing with existing environment variables")
	} else {
		log.Info().Msg("Successfully loaded variables from .env file into environment")
	}

	var conf Config
	if err := envconfig.Process("", &conf); err != nil {
		return nil, fmt.Errorf("processing environment variables: %w", err)
	}

	if conf.Auth.VerificationKey == "" && conf.Auth.VerificationKeyFile != "" {
		key, err := os.ReadFile(conf.Auth.VerificationKeyFile)
		if err != nil {
			return nil, fmt.Errorf("reading verification key file: %w", err)
		}

		conf.Auth.VerificationKey = string(key)
	}

	return &conf, nil
}

// Validate checks the settings every deployment needs regardless of driver.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Auth.VerificationKey) == "" {
		return ErrMissingVerificationKey
	}

	switch c.Store.Driver {
	case StoreDriverDynamoDB:
		if c.Store.TableName == "" {
			return ErrMissingTableName
		}

		if c.Store.IndexName == "" || c.Store.TodoIndexName == "" {
			return ErrMissingIndexName
		}
	case StoreDriverPostgres, StoreDriverRedis, StoreDriverMemory:
	default:
		return fmt.Errorf("%w: %s", ErrUnknownStoreDriver, c.Store.Driver)
	}

	if c.Attachment.BucketName == "" {
		return ErrMissingBucketName
	}

	if c.Attachment.URLExpirySeconds <= 0 {
		return ErrInvalidURLExpiry
	}

	return nil
}
