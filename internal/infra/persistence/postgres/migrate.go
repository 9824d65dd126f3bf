package postgres

import (
	"context"
	"embed"
	"io/fs"
	"log/slog"
	"path"
	"sort"
	"strings"

	"carmarket/internal/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

const migrationDir = "migrations"

type schemaMigration struct {
	Version string `gorm:"primaryKey"`
}

func (schemaMigration) TableName() string {
	return "schema_migrations"
}

// Migrate applies every embedded migration not yet recorded in schema_migrations.
// Each file runs in its own transaction together with its bookkeeping row.
// It returns the versions applied by this call.
func Migrate(ctx context.Context, db *gorm.DB, logger *slog.Logger) ([]string, error) {
	return migrate(ctx, db, migrationFS, logger)
}

func migrate(ctx context.Context, db *gorm.DB, migrations fs.FS, logger *slog.Logger) ([]string, error) {
	db = db.WithContext(ctx)
	if err := db.Exec(`CREATE TABLE IF NOT EXISTS schema_migrations (
		version    TEXT PRIMARY KEY,
		applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`).Error; err != nil {
		return nil, errors.Wrap(err, "ensure schema_migrations")
	}

	files, err := migrationFiles(migrations)
	if err != nil {
		return nil, err
	}

	var done []schemaMigration
	if err := db.Find(&done).Error; err != nil {
		return nil, errors.Wrap(err, "list applied migrations")
	}
	applied := make(map[string]struct{}, len(done))
	for _, m := range done {
		applied[m.Version] = struct{}{}
	}

	var versions []string
	for _, name := range files {
		version := strings.TrimSuffix(name, path.Ext(name))
		if _, ok := applied[version]; ok {
			continue
		}

		body, err := fs.ReadFile(migrations, path.Join(migrationDir, name))
		if err != nil {
			return versions, errors.Wrapf(err, "read migration %s", name)
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Exec(string(body)).Error; err != nil {
				return errors.Wrapf(err, "exec migration %s", name)
			}

			return tx.Clauses(clause.OnConflict{DoNothing: true}).
				Create(&schemaMigration{Version: version}).Error
		})
		if err != nil {
			return versions, err
		}

		if logger != nil {
			logger.InfoContext(ctx, "Migration applied", slog.String("version", version))
		}
		versions = append(versions, version)
	}

	return versions, nil
}

func migrationFiles(migrations fs.FS) ([]string, error) {
	entries, err := fs.ReadDir(migrations, migrationDir)
	if err != nil {
		return nil, errors.Wrap(err, "read migrations dir")
	}

	files := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(strings.ToLower(e.Name()), ".sql") {
			continue
		}
		files = append(files, e.Name())
	}
	sort.Strings(files)

	return files, nil
}
