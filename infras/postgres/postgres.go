package postgres

//nolint:revive
import (
	"errors"
	"fmt"
	"net"
	"realty/config"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	postgresMaxIdleConnection = 10
	postgresMaxOpenConnection = 10
	postgresConnMaxLifetime   = 30 * time.Minute
)

// Connection splits reads and writes so a replica can serve listings
// and the reminder scan while the primary takes bookings.
type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

type endpoint struct {
	name     string
	username string
	password string
	host     string
	port     string
	dbName   string
	sslMode  string
	timezone string
}

func (e endpoint) dsn() string {
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s/%s?sslmode=%s",
		e.username,
		e.password,
		net.JoinHostPort(e.host, e.port),
		e.dbName,
		e.sslMode,
	)

	if e.timezone != "" {
		dsn += "&timezone=" + e.timezone
	}

	return dsn
}

func New(config *config.Config) *Connection {
	pg := config.DB.Postgres

	read := endpoint{
		name:     "read",
		username: pg.Read.Username,
		password: pg.Read.Password,
		host:     pg.Read.Host,
		port:     pg.Read.Port,
		dbName:   prefixed(pg.Prefix, pg.Read.Name),
		sslMode:  pg.Read.SSLMode,
		timezone: pg.Read.Timezone,
	}

	write := endpoint{
		name:     "write",
		username: pg.Write.Username,
		password: pg.Write.Password,
		host:     pg.Write.Host,
		port:     pg.Write.Port,
		dbName:   prefixed(pg.Prefix, pg.Write.Name),
		sslMode:  pg.Write.SSLMode,
		timezone: pg.Write.Timezone,
	}

	return &Connection{
		Read:  connect(read, pg.MaxRetry, pg.RetryWaitTime),
		Write: connect(write, pg.MaxRetry, pg.RetryWaitTime),
	}
}

// Close releases both pools. Nil pools are skipped.
func (c *Connection) Close() error {
	var errs []error

	for _, db := range []*sqlx.DB{c.Read, c.Write} {
		if db == nil {
			continue
		}

		if err := db.Close(); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

func prefixed(prefix, name string) string {
	return prefix + name
}

// connect dials until the database answers or maxRetry attempts are spent.
// It returns nil on exhaustion and leaves the caller to decide whether that is fatal.
func connect(e endpoint, maxRetry, waitTime int) *sqlx.DB {
	logger := log.With().
		Str("name", e.name).
		Str("host", e.host).
		Str("port", e.port).
		Str("dbName", e.dbName).
		Logger()

	for retry := range max(maxRetry, 1) {
		sqlDB, err := sqlx.Connect("postgres", e.dsn())
		if err == nil {
			logger.Info().Msg("Connected to database")

			sqlDB.SetMaxIdleConns(postgresMaxIdleConnection)
			sqlDB.SetMaxOpenConns(postgresMaxOpenConnection)
			sqlDB.SetConnMaxLifetime(postgresConnMaxLifetime)

			return sqlDB
		}

		logger.Error().Err(err).Int("attempt", retry+1).Msg("Failed connecting to database, retrying")

		time.Sleep(time.Duration(waitTime) * time.Second)
	}

	logger.Error().Msg("Giving up connecting to database")

	return nil
}
