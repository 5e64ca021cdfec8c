package helper

//nolint:revive
import (
	"errors"
	"fmt"
	"net/url"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog/log"

	"todos/config"
	"todos/infras/postgres"
)

const DefaultSource = "file://migrations/postgres"

const (
	ActionUp     = "up"
	ActionDown   = "down"
	ActionStepUp = "step-up"
	ActionDrop   = "drop"
)

var ErrUnknownAction = errors.New("unknown migration action")

// DatabaseURL is the store DSN with the migration bookkeeping table attached.
func DatabaseURL(config *config.Config) (string, error) {
	dsn, err := url.Parse(postgres.DSN(config))
	if err != nil {
		return "", fmt.Errorf("invalid postgres dsn: %w", err)
	}

	query := dsn.Query()
	query.Set("x-migrations-table", config.DB.Postgres.MigrationTable)
	dsn.RawQuery = query.Encode()

	return dsn.String(), nil
}

func getConnection(config *config.Config, source string) (*migrate.Migrate, error) {
	databaseURL, err := DatabaseURL(config)
	if err != nil {
		return nil, err
	}

	mig, err := migrate.New(source, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("error creating migrate instance: %w", err)
	}

	return mig, nil
}

func apply(mig *migrate.Migrate, action string) error {
	var err error

	switch action {
	case ActionUp:
		err = mig.Up()
	case ActionDown:
		err = mig.Steps(-1)
	case ActionStepUp:
		err = mig.Steps(1)
	case ActionDrop:
		err = mig.Down()
	default:
		return fmt.Errorf("%w: %s", ErrUnknownAction, action)
	}

	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("error running %s migrations: %w", action, err)
	}

	return nil
}

func Runner(config *config.Config, source, action string) error {
	if !ValidAction(action) {
		return fmt.Errorf("%w: %s", ErrUnknownAction, action)
	}

	mig, err := getConnection(config, source)
	if err != nil {
		return err
	}

	defer mig.Close()

	if err := apply(mig, action); err != nil {
		return err
	}

	log.Info().Str("action", action).Msg("Database migrations completed successfully")

	return nil
}

func ValidAction(action string) bool {
	switch action {
	case ActionUp, ActionDown, ActionStepUp, ActionDrop:
		return true
	default:
		return false
	}
}

func Up(config *config.Config) error {
	return Runner(config, DefaultSource, ActionUp)
}
