package migration

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go.uber.org/zap"
)

type migrationStep struct {
	Name string
	SQL  string
}

// sentinelTable is created by the last table step; its presence means the schema is current.
const sentinelTable = "public.folder_words"

var steps = []migrationStep{
	{
		Name: "create_extension_uuid_ossp",
		SQL:  `CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	},
	{
		Name: "create_table_users",
		SQL: `CREATE TABLE IF NOT EXISTS users (
  id         UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  email      TEXT        NOT NULL UNIQUE,
  name       TEXT        NOT NULL DEFAULT '',
  created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_folders",
		SQL: `CREATE TABLE IF NOT EXISTS folders (
  id          UUID         PRIMARY KEY DEFAULT uuid_generate_v4(),
  user_id     UUID         NOT NULL,
  name        VARCHAR(100) NOT NULL CHECK (length(btrim(name)) > 0),
  description VARCHAR(500),
  color       VARCHAR(7)   NOT NULL,
  icon        VARCHAR(32)  NOT NULL,
  created_at  TIMESTAMPTZ  NOT NULL DEFAULT now(),
  updated_at  TIMESTAMPTZ  NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_folders_user_created_at",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_folders_user_created_at ON folders (user_id, created_at DESC);`,
	},
	{
		Name: "create_table_words",
		SQL: `CREATE TABLE IF NOT EXISTS words (
  id         UUID          PRIMARY KEY DEFAULT uuid_generate_v4(),
  word_id    VARCHAR(50)   NOT NULL,
  word       VARCHAR(100)  NOT NULL,
  definition VARCHAR(1000) NOT NULL,
  example    VARCHAR(500),
  image_url  TEXT,
  created_at TIMESTAMPTZ   NOT NULL DEFAULT now(),
  updated_at TIMESTAMPTZ   NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_unique_index_words_word_id",
		SQL:  `CREATE UNIQUE INDEX IF NOT EXISTS uq_words_word_id ON words (word_id);`,
	},
	{
		// No foreign key to folders: deleting a folder leaves its assignments in place
		// unless the caller asks for a cascading delete.
		Name: "create_table_folder_words",
		SQL: `CREATE TABLE IF NOT EXISTS folder_words (
  id         UUID          PRIMARY KEY DEFAULT uuid_generate_v4(),
  user_id    UUID          NOT NULL,
  folder_id  UUID          NOT NULL,
  word_id    VARCHAR(50)   NOT NULL,
  word       VARCHAR(100)  NOT NULL,
  definition VARCHAR(1000) NOT NULL,
  example    VARCHAR(500),
  image_url  TEXT,
  created_at TIMESTAMPTZ   NOT NULL DEFAULT now(),
  updated_at TIMESTAMPTZ   NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_unique_index_folder_words_triple",
		SQL:  `CREATE UNIQUE INDEX IF NOT EXISTS uq_folder_words_user_folder_word ON folder_words (user_id, folder_id, word_id);`,
	},
	{
		Name: "create_index_folder_words_listing",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_folder_words_listing ON folder_words (user_id, folder_id, word, id);`,
	},
	{
		Name: "create_index_folder_words_word_id",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_folder_words_word_id ON folder_words (word_id);`,
	},
}

// EnsureMigrated checks if the sentinel table exists and runs migrations if it doesn't.
func EnsureMigrated(ctx context.Context, db *sql.DB, log *zap.Logger, dbHost string) error {
	start := time.Now()
	log = log.With(zap.String("component", "database"), zap.String("db_host", dbHost))

	log.Info("db_migration_check", zap.String("status", "starting"))

	var exists bool
	query := "SELECT to_regclass($1) IS NOT NULL"
	if err := db.QueryRowContext(ctx, query, sentinelTable).Scan(&exists); err != nil {
		log.Error("db_migration_failed",
			zap.String("status", "error"),
			zap.Error(err),
			zap.Int64("duration_ms", time.Since(start).Milliseconds()),
		)
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		log.Info("db_migration_skip",
			zap.String("status", "success"),
			zap.String("reason", "schema already exists"),
			zap.Int64("duration_ms", time.Since(start).Milliseconds()),
		)
		return nil
	}

	log.Info("db_migration_start", zap.String("status", "in_progress"), zap.Int("steps", len(steps)))

	for _, step := range steps {
		stepStart := time.Now()
		if _, err := db.ExecContext(ctx, step.SQL); err != nil {
			log.Error("db_migration_failed",
				zap.String("status", "error"),
				zap.String("migration_step", step.Name),
				zap.Error(err),
				zap.Int64("duration_ms", time.Since(start).Milliseconds()),
				zap.Int64("step_duration_ms", time.Since(stepStart).Milliseconds()),
			)
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		log.Debug("db_migration_step",
			zap.String("status", "success"),
			zap.String("migration_step", step.Name),
			zap.Int64("step_duration_ms", time.Since(stepStart).Milliseconds()),
		)
	}

	log.Info("db_migration_success",
		zap.String("status", "success"),
		zap.Int64("duration_ms", time.Since(start).Milliseconds()),
	)

	return nil
}
