package migration

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

type migrationStep struct {
	Name string
	SQL  string
}

var steps = []migrationStep{
	{
		Name: "create_extension_uuid_ossp",
		SQL:  `CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	},
	{
		Name: "create_table_contact_submissions",
		SQL: `CREATE TABLE IF NOT EXISTS contact_submissions (
  id          UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  first_name  TEXT        NOT NULL,
  last_name   TEXT        NOT NULL,
  email       TEXT        NOT NULL,
  phone       TEXT        NOT NULL,
  position    TEXT        NOT NULL DEFAULT 'other'
              CHECK (position IN ('clinic_owner', 'lab_owner', 'self_employed', 'buyer', 'dealer', 'agent', 'other')),
  city        TEXT        NOT NULL,
  province    TEXT        NOT NULL,
  country     TEXT        NOT NULL,
  message     TEXT,
  days        TEXT,
  privacy1    BOOLEAN     NOT NULL DEFAULT false,
  privacy2    BOOLEAN     NOT NULL DEFAULT false,
  form_id     TEXT,
  ip_address  TEXT,
  user_agent  TEXT,
  created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_contact_submissions_created_at",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_contact_submissions_created_at ON contact_submissions (created_at);`,
	},
	{
		Name: "create_index_contact_submissions_position",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_contact_submissions_position ON contact_submissions (position);`,
	},
	{
		Name: "create_index_contact_submissions_country",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_contact_submissions_country ON contact_submissions (country);`,
	},
	{
		Name: "create_table_job_applications",
		SQL: `CREATE TABLE IF NOT EXISTS job_applications (
  id          UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  name        TEXT        NOT NULL,
  surname     TEXT        NOT NULL,
  email       TEXT        NOT NULL,
  phone       TEXT        NOT NULL,
  position    TEXT        NOT NULL DEFAULT 'other'
              CHECK (position IN ('implantologists_speakers', 'italy_abroad_agents', 'dealer_distributors', 'other')),
  hours       TEXT,
  message     TEXT,
  cv_file     TEXT,
  privacy     BOOLEAN     NOT NULL DEFAULT false,
  form_id     TEXT,
  ip_address  TEXT,
  user_agent  TEXT,
  created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_job_applications_created_at",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_job_applications_created_at ON job_applications (created_at);`,
	},
	{
		Name: "create_index_job_applications_position",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_job_applications_position ON job_applications (position);`,
	},
}

// sentinelQuery is true once every table created by steps exists.
const sentinelQuery = `SELECT to_regclass('public.contact_submissions') IS NOT NULL
  AND to_regclass('public.job_applications') IS NOT NULL`

// EnsureMigrated checks whether the submission tables exist and runs migrations if they don't.
func EnsureMigrated(ctx context.Context, db *sql.DB, logger zerolog.Logger, dbHost string) error {
	start := time.Now()
	log := logger.With().Str("component", "database").Str("db_host", dbHost).Logger()

	log.Info().Str("event", "db_migration_check").Str("status", "starting").Send()

	var exists bool
	if err := db.QueryRowContext(ctx, sentinelQuery).Scan(&exists); err != nil {
		log.Error().
			Str("event", "db_migration_failed").
			Str("status", "error").
			Str("error_message", fmt.Sprintf("failed to check sentinel table: %v", err)).
			Int64("duration_ms", time.Since(start).Milliseconds()).
			Send()
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		log.Info().
			Str("event", "db_migration_skip").
			Str("status", "success").
			Int64("duration_ms", time.Since(start).Milliseconds()).
			Msg("schema already exists, skipping migration")
		return nil
	}

	log.Info().Str("event", "db_migration_start").Str("status", "in_progress").Send()

	for _, step := range steps {
		stepStart := time.Now()
		if _, err := db.ExecContext(ctx, step.SQL); err != nil {
			log.Error().
				Str("event", "db_migration_failed").
				Str("status", "error").
				Str("migration_step", step.Name).
				Str("error_message", err.Error()).
				Int64("duration_ms", time.Since(start).Milliseconds()).
				Int64("step_duration_ms", time.Since(stepStart).Milliseconds()).
				Send()
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		log.Info().
			Str("event", "db_migration_step").
			Str("status", "success").
			Str("migration_step", step.Name).
			Int64("step_duration_ms", time.Since(stepStart).Milliseconds()).
			Send()
	}

	log.Info().
		Str("event", "db_migration_success").
		Str("status", "success").
		Int64("duration_ms", time.Since(start).Milliseconds()).
		Send()

	return nil
}
