package helper_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todos/config"
	"todos/helper"
)

func TestDatabaseURL(t *testing.T) {
	cfg := &config.Config{}
	cfg.DB.Postgres.Host = "db"
	cfg.DB.Postgres.Port = "5432"
	cfg.DB.Postgres.Username = "todos"
	cfg.DB.Postgres.Password = "p@ss"
	cfg.DB.Postgres.Name = "todos"
	cfg.DB.Postgres.SSLMode = "disable"
	cfg.DB.Postgres.MigrationTable = "schema_migrations"

	got, err := helper.DatabaseURL(cfg)
	require.NoError(t, err)

	assert.Equal(t, "postgres://todos:p%40ss@db:5432/todos?sslmode=disable&x-migrations-table=schema_migrations", got)
}

func TestRunner_RejectsUnknownAction(t *testing.T) {
	err := helper.Runner(&config.Config{}, helper.DefaultSource, "sideways")

	assert.ErrorIs(t, err, helper.ErrUnknownAction)
}

func TestValidAction(t *testing.T) {
	for _, action := range []string{helper.ActionUp, helper.ActionDown, helper.ActionStepUp, helper.ActionDrop} {
		assert.True(t, helper.ValidAction(action), action)
	}

	assert.False(t, helper.ValidAction(""))
}
