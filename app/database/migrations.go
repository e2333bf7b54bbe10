package database

import (
	"database/sql"
	"fmt"

	"go.uber.org/zap"
)

// The schema sticks to SQL accepted by both PostgreSQL and SQLite so the same
// statements bootstrap production and local databases.
var schema = []struct {
	name  string
	query string
}{
	{"teachers", `
		CREATE TABLE IF NOT EXISTS teachers (
			id         VARCHAR(64)  PRIMARY KEY,
			name       VARCHAR(255) NOT NULL DEFAULT '',
			status     VARCHAR(32)  NOT NULL DEFAULT 'PRESENT',
			updated_at TIMESTAMP    NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`},
	{"slots", `
		CREATE TABLE IF NOT EXISTS slots (
			id         INTEGER     PRIMARY KEY,
			time_range VARCHAR(64) NOT NULL DEFAULT ''
		)`},
	{"subjects", `
		CREATE TABLE IF NOT EXISTS subjects (
			code VARCHAR(64)  PRIMARY KEY,
			name VARCHAR(255) NOT NULL DEFAULT ''
		)`},
	{"teacher_subjects", `
		CREATE TABLE IF NOT EXISTS teacher_subjects (
			teacher_id   VARCHAR(64) NOT NULL,
			subject_code VARCHAR(64) NOT NULL,
			PRIMARY KEY (teacher_id, subject_code)
		)`},
	{"timetable_entries", `
		CREATE TABLE IF NOT EXISTS timetable_entries (
			teacher_id VARCHAR(64) NOT NULL,
			day        VARCHAR(8)  NOT NULL,
			slot_id    INTEGER     NOT NULL,
			activity   TEXT        NOT NULL DEFAULT '',
			room       VARCHAR(64) NOT NULL DEFAULT '',
			is_free    BOOLEAN     NOT NULL DEFAULT FALSE,
			PRIMARY KEY (teacher_id, day, slot_id)
		)`},
	{"idx_timetable_day_slot", `
		CREATE INDEX IF NOT EXISTS idx_timetable_day_slot ON timetable_entries (day, slot_id)`},
}

// RunMigrations creates any missing tables. It is safe to run on every start.
func RunMigrations(db *sql.DB, logger *zap.Logger) error {
	logger.Info("Running database migrations...")

	for _, step := range schema {
		if _, err := db.Exec(step.query); err != nil {
			logger.Error("Migration failed", zap.String("step", step.name), zap.Error(err))
			return fmt.Errorf("migrate %s: %w", step.name, err)
		}
	}

	logger.Info("Database migrations completed successfully", zap.Int("steps", len(schema)))
	return nil
}
