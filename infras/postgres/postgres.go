package postgres

//nolint:revive
import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"todos/config"
)

const (
	postgresMaxIdleConnection = 10
	postgresMaxOpenConnection = 10
)

var ErrConnectionFailed = errors.New("could not connect to postgres")

// Connection keeps separate pools for reads and writes. Both point at the same
// database unless a replica is placed in front of Read.
type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

func New(config *config.Config) (*Connection, error) {
	pg := config.DB.Postgres

	write, err := CreatePostgresConnection("write", DSN(config), pg.MaxRetry, pg.RetryWaitTime)
	if err != nil {
		return nil, err
	}

	read, err := CreatePostgresConnection("read", DSN(config), pg.MaxRetry, pg.RetryWaitTime)
	if err != nil {
		_ = write.Close()

		return nil, err
	}

	return &Connection{Read: read, Write: write}, nil
}

// NewWithDB wraps an existing handle for both pools.
func NewWithDB(db *sqlx.DB) *Connection {
	return &Connection{Read: db, Write: db}
}

func (c *Connection) Close() error {
	return errors.Join(c.Read.Close(), c.Write.Close())
}

// DSN builds the lib/pq connection URL from the DB_POSTGRES_* settings.
func DSN(config *config.Config) string {
	pg := config.DB.Postgres

	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(pg.Username, pg.Password),
		Host:     net.JoinHostPort(pg.Host, pg.Port),
		Path:     pg.Name,
		RawQuery: "sslmode=" + url.QueryEscape(pg.SSLMode),
	}

	return dsn.String()
}

// CreatePostgresConnection creates a database connection, retrying up to
// maxRetry times.
func CreatePostgresConnection(name, dsn string, maxRetry, waitTime int) (*sqlx.DB, error) {
	var lastErr error

	for retry := range max(maxRetry, 1) {
		sqlDB, err := sqlx.Connect("postgres", dsn)
		if err == nil {
			log.
				Info().
				Str("name", name).
				Msg("Connected to database")
			sqlDB.SetMaxIdleConns(postgresMaxIdleConnection)
			sqlDB.SetMaxOpenConns(postgresMaxOpenConnection)

			return sqlDB, nil
		}

		lastErr = err

		log.
			Error().
			Err(err).
			Str("name", name).
			Int("attempt", retry+1).
			Msg("Failed connecting to database, retrying")

		time.Sleep(time.Duration(waitTime) * time.Second)
	}

	return nil, fmt.Errorf("%w (%s): %w", ErrConnectionFailed, name, lastErr)
}
