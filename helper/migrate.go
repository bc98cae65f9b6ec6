package helper

//nolint:revive
import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"realty/config"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog/log"
)

const migrationSource = "file://migrations/postgres"

const (
	ActionUp      = "up"
	ActionDown    = "down"
	ActionStepUp  = "step-up"
	ActionDrop    = "drop"
	ActionVersion = "version"
)

var ErrUnknownAction = errors.New("unknown migration action")

func connectionString(config *config.Config) string {
	write := config.DB.Postgres.Write

	query := url.Values{}
	query.Set("sslmode", write.SSLMode)

	if config.DB.Postgres.MigrationTable != "" {
		query.Set("x-migrations-table", config.DB.Postgres.MigrationTable)
	}

	return fmt.Sprintf("postgres://%s:%s@%s/%s?%s",
		url.QueryEscape(write.Username),
		url.QueryEscape(write.Password),
		net.JoinHostPort(write.Host, write.Port),
		config.DB.Postgres.Prefix+write.Name,
		query.Encode(),
	)
}

// Runner applies a single migration action against the write database.
func Runner(config *config.Config, action string) error {
	mig, err := migrate.New(migrationSource, connectionString(config))
	if err != nil {
		return fmt.Errorf("error creating migrate instance: %w", err)
	}

	defer mig.Close()

	var run func() error

	switch action {
	case ActionUp:
		run = mig.Up
	case ActionDown:
		run = func() error { return mig.Steps(-1) }
	case ActionStepUp:
		run = func() error { return mig.Steps(1) }
	case ActionDrop:
		run = mig.Down
	case ActionVersion:
		version, dirty, err := mig.Version()
		if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
			return fmt.Errorf("error reading migration version: %w", err)
		}

		log.Info().Uint("version", version).Bool("dirty", dirty).Msg("Database migration version")

		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownAction, action)
	}

	if err := run(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("error running migration %s: %w", action, err)
	}

	log.Info().Str("action", action).Msg("Database migration completed successfully")

	return nil
}

func Up(config *config.Config) error {
	return Runner(config, ActionUp)
}
