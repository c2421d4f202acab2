package db

import (
	"database/sql"
	"embed"
	"path"
	"slices"
	"strings"

	"go.uber.org/zap"

	"github.com/teranos/parkour/errors"
)

//go:embed sqlite/migrations/*.sql
var migrations embed.FS

const migrationsDir = "sqlite/migrations"

// migration is one embedded schema file, versioned by its numeric prefix.
type migration struct {
	version string
	file    string
}

func embeddedMigrations() ([]migration, error) {
	entries, err := migrations.ReadDir(migrationsDir)
	if err != nil {
		return nil, errors.Wrap(err, "read migrations")
	}
	var out []migration
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".sql") {
			continue
		}
		version, _, _ := strings.Cut(name, "_")
		out = append(out, migration{version: version, file: name})
	}
	// 000_create_schema_migrations.sql must run first
	slices.SortFunc(out, func(a, b migration) int { return strings.Compare(a.file, b.file) })
	return out, nil
}

// Migrate runs all pending migrations, each in its own transaction.
// If logger is provided, logs migration progress; otherwise operates silently.
func Migrate(db *sql.DB, logger *zap.SugaredLogger) error {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	pending, err := embeddedMigrations()
	if err != nil {
		return err
	}

	applied := 0
	for _, m := range pending {
		var exists bool
		err := db.QueryRow("SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE version = ?)", m.version).Scan(&exists)
		if err != nil {
			if IsDatabaseClosed(err) {
				return errors.Wrap(ErrDatabaseClosed, "migrate")
			}
			// schema_migrations does not exist until 000 has run
			if m.version != "000" {
				return errors.Newf("schema_migrations table missing, but migration is not 000: %s", m.file)
			}
		} else if exists {
			logger.Debugw("Skipping migration (already applied)", "migration", m.file, "version", m.version)
			continue
		}

		if err := apply(db, m); err != nil {
			return err
		}
		applied++
		logger.Infow("Applied migration", "migration", m.file, "version", m.version)
	}

	logger.Debugw("Migrations complete", "total_migrations", len(pending), "applied", applied)
	return nil
}

func apply(db *sql.DB, m migration) error {
	body, err := migrations.ReadFile(path.Join(migrationsDir, m.file))
	if err != nil {
		return errors.Wrapf(err, "read %s", m.file)
	}

	tx, err := db.Begin()
	if err != nil {
		return errors.Wrapf(err, "begin tx for %s", m.file)
	}
	if _, err := tx.Exec(string(body)); err != nil {
		tx.Rollback()
		return errors.Wrapf(err, "execute %s", m.file)
	}
	// 000 creates the table, then records itself
	if _, err := tx.Exec("INSERT INTO schema_migrations (version) VALUES (?)", m.version); err != nil {
		tx.Rollback()
		return errors.Wrapf(err, "record %s", m.file)
	}
	if err := tx.Commit(); err != nil {
		return errors.Wrapf(err, "commit %s", m.file)
	}
	return nil
}

// AppliedVersions lists recorded migration versions in ascending order.
func AppliedVersions(db *sql.DB) ([]string, error) {
	rows, err := db.Query("SELECT version FROM schema_migrations ORDER BY version")
	if err != nil {
		return nil, errors.Wrap(err, "query schema_migrations")
	}
	defer rows.Close()

	var versions []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, errors.Wrap(err, "scan migration version")
		}
		versions = append(versions, v)
	}
	return versions, errors.Wrap(rows.Err(), "iterate schema_migrations")
}
