package commands

import (
	"context"
	"database/sql"

	"github.com/spf13/cobra"

	"github.com/teranos/parkour/am"
	"github.com/teranos/parkour/db"
	"github.com/teranos/parkour/errors"
	"github.com/teranos/parkour/leaderboard"
	"github.com/teranos/parkour/location"
	"github.com/teranos/parkour/logger"
	"github.com/teranos/parkour/world"
)

// loadConfig loads and validates configuration.
func loadConfig() (*am.Config, error) {
	cfg, err := am.Load()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.WithHint(
			errors.Wrap(err, "configuration validation failed"),
			"run 'parkour am validate' or fix the value with 'parkour am set'")
	}
	return cfg, nil
}

// openDatabase opens and migrates the score database. The --db flag wins
// over database.path.
func openDatabase(cmd *cobra.Command, cfg *am.Config) (*sql.DB, error) {
	dbPath, _ := cmd.Flags().GetString("db")
	if dbPath == "" {
		dbPath = cfg.GetDatabasePath()
	}

	database, err := db.OpenWithMigrations(dbPath, logger.ComponentLogger("db"))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open database at %s", dbPath)
	}
	return database, nil
}

// openBoard opens the database and loads the leaderboard from it. Callers
// close the returned database.
func openBoard(ctx context.Context, cmd *cobra.Command, cfg *am.Config) (*leaderboard.Persistent, *sql.DB, error) {
	database, err := openDatabase(cmd, cfg)
	if err != nil {
		return nil, nil, err
	}
	board := leaderboard.NewPersistent(
		leaderboard.NewBoard(),
		leaderboard.NewSQLStore(database),
		logger.ComponentLogger("leaderboard"),
	)
	if err := board.Reload(ctx); err != nil {
		database.Close()
		return nil, nil, err
	}
	return board, database, nil
}

// newCodec builds a location codec over the configured worlds.
func newCodec(cfg *am.Config) *location.Codec {
	registry := world.NewRegistry(cfg.DefaultWorld(), cfg.WorldNames()...)
	return location.NewCodec(registry, logger.ComponentLogger("location"))
}
