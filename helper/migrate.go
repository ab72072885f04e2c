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
	"todolist/config"
	"todolist/infras/postgres"
)

const (
	ActionUp   = "up"
	ActionDown = "down"
	ActionStep = "step"
	ActionDrop = "drop"

	migrationsSource = "file://migrations/postgres"
)

var ErrInvalidSteps = errors.New("steps must not be zero")

func connectionString(config *config.Config) string {
	write := config.DB.Postgres.Write

	return postgres.DSN(write.Username, write.Password, write.Host, write.Port, write.Name, url.Values{
		"sslmode":            {write.SSLMode},
		"x-migrations-table": {config.DB.Postgres.MigrationTable},
	})
}

func getConnection(config *config.Config) (*migrate.Migrate, error) {
	mig, err := migrate.New(migrationsSource, connectionString(config))
	if err != nil {
		return nil, fmt.Errorf("error creating migrate instance: %w", err)
	}

	return mig, nil
}

// Runner applies one migration action. steps is only read by ActionStep; negative values roll back.
func Runner(config *config.Config, action string, steps int) error {
	if action == ActionStep && steps == 0 {
		return ErrInvalidSteps
	}

	mig, err := getConnection(config)
	if err != nil {
		return err
	}

	defer func() {
		if srcErr, dbErr := mig.Close(); srcErr != nil || dbErr != nil {
			log.Warn().AnErr("source", srcErr).AnErr("database", dbErr).Msg("failed to close migrate instance")
		}
	}()

	switch action {
	case ActionUp:
		err = mig.Up()
	case ActionDown:
		err = mig.Steps(-1)
	case ActionStep:
		err = mig.Steps(steps)
	case ActionDrop:
		err = mig.Down()
	default:
		return fmt.Errorf("unknown migration action %q", action)
	}

	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("error running %s migration: %w", action, err)
	}

	version, dirty, verErr := mig.Version()
	if verErr != nil && !errors.Is(verErr, migrate.ErrNilVersion) {
		return fmt.Errorf("error reading migration version: %w", verErr)
	}

	log.Info().Str("action", action).Uint("version", version).Bool("dirty", dirty).Msg("Database migrations completed successfully")

	return nil
}

func Up(config *config.Config) error {
	return Runner(config, ActionUp, 0)
}

func Down(config *config.Config) error {
	return Runner(config, ActionDown, 0)
}

func Step(config *config.Config, steps int) error {
	return Runner(config, ActionStep, steps)
}

func Drop(config *config.Config) error {
	return Runner(config, ActionDrop, 0)
}
