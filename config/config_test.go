package config_test

import (
	"errors"
	"testing"

	"todos/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Auth.VerificationKey = "-----BEGIN PUBLIC KEY-----"
	cfg.Store.Driver = config.StoreDriverDynamoDB
	cfg.Store.TableName = "Todos"
	cfg.Store.IndexName = "CreatedAtIndex"
	cfg.Store.TodoIndexName = "TodoIdIndex"
	cfg.Attachment.BucketName = "attachments"
	cfg.Attachment.URLExpirySeconds = 300

	return cfg
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *config.Config)
		wantErr error
	}{
		{
			name:   "valid",
			mutate: func(_ *config.Config) {},
		},
		{
			name:    "missing verification key",
			mutate:  func(cfg *config.Config) { cfg.Auth.VerificationKey = "  " },
			wantErr: config.ErrMissingVerificationKey,
		},
		{
			name:    "missing table name",
			mutate:  func(cfg *config.Config) { cfg.Store.TableName = "" },
			wantErr: config.ErrMissingTableName,
		},
		{
			name:    "missing index name",
			mutate:  func(cfg *config.Config) { cfg.Store.IndexName = "" },
			wantErr: config.ErrMissingIndexName,
		},
		{
			name:    "missing todo index name",
			mutate:  func(cfg *config.Config) { cfg.Store.TodoIndexName = "" },
			wantErr: config.ErrMissingIndexName,
		},
		{
			name: "table name not needed for memory driver",
			mutate: func(cfg *config.Config) {
				cfg.Store.Driver = config.StoreDriverMemory
				cfg.Store.TableName = ""
			},
		},
		{
			name:    "unknown driver",
			mutate:  func(cfg *config.Config) { cfg.Store.Driver = "cassandra" },
			wantErr: config.ErrUnknownStoreDriver,
		},
		{
			name:    "missing bucket",
			mutate:  func(cfg *config.Config) { cfg.Attachment.BucketName = "" },
			wantErr: config.ErrMissingBucketName,
		},
		{
			name:    "non positive expiry",
			mutate:  func(cfg *config.Config) { cfg.Attachment.URLExpirySeconds = 0 },
			wantErr: config.ErrInvalidURLExpiry,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)

				return
			}

			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("AUTH_VERIFICATION_KEY", "-----BEGIN PUBLIC KEY-----")
	t.Setenv("ATTACHMENT_BUCKET_NAME", "attachments")
	t.Setenv("ATTACHMENT_URL_EXPIRY_SECONDS", "120")
	t.Setenv("STORE_DRIVER", config.StoreDriverMemory)
	t.Setenv("SERVER_SHUTDOWN_GRACE_PERIOD_SECONDS", "0")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, config.StoreDriverMemory, cfg.Store.Driver)
	assert.Equal(t, "attachments", cfg.Attachment.BucketName)
	assert.Equal(t, 120, cfg.Attachment.URLExpirySeconds)
	assert.Equal(t, int64(0), cfg.Server.Shutdown.GracePeriodSeconds)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, []string{"*"}, cfg.App.CORS.AllowedOrigins)
}

func TestLoad_MissingKey(t *testing.T) {
	t.Setenv("AUTH_VERIFICATION_KEY", "")
	t.Setenv("AUTH_VERIFICATION_KEY_FILE", "")
	t.Setenv("ATTACHMENT_BUCKET_NAME", "attachments")

	_, err := config.Load()
	assert.ErrorIs(t, err, config.ErrMissingVerificationKey)
}
