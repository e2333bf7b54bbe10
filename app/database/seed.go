package database

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"strings"

	"teacher-substitution/app/models"
	"teacher-substitution/app/services/substitution"

	"gopkg.in/yaml.v3"
)

// Seed is a YAML fixture describing slots, subjects, teachers and timetables.
type Seed struct {
	Slots     []models.Slot    `yaml:"slots"`
	Subjects  []models.Subject `yaml:"subjects"`
	Teachers  []SeedTeacher    `yaml:"teachers"`
	Timetable []SeedEntry      `yaml:"timetable"`
}

type SeedTeacher struct {
	ID       string   `yaml:"id"`
	Name     string   `yaml:"name"`
	Status   string   `yaml:"status"`
	Subjects []string `yaml:"subjects"`
}

type SeedEntry struct {
	Teacher  string `yaml:"teacher"`
	Day      string `yaml:"day"`
	Slot     int    `yaml:"slot"`
	Activity string `yaml:"activity"`
	Room     string `yaml:"room"`
	Free     bool   `yaml:"free"`
}

// ParseSeed decodes a seed document, rejecting unknown keys.
func ParseSeed(r io.Reader) (*Seed, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var seed Seed
	if err := dec.Decode(&seed); err != nil {
		return nil, fmt.Errorf("decode seed: %w", err)
	}
	for i, e := range seed.Timetable {
		if strings.TrimSpace(e.Teacher) == "" || substitution.NormalizeDay(e.Day) == "" {
			return nil, fmt.Errorf("timetable entry %d: teacher and day are required", i)
		}
	}
	return &seed, nil
}

// LoadSeed upserts the seed in a single transaction. Days are stored in
// normalized form and teacher statuses upper-cased.
func LoadSeed(ctx context.Context, db *sql.DB, seed *Seed) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed transaction: %w", err)
	}
	defer tx.Rollback()

	for _, sl := range seed.Slots {
		_, err := tx.ExecContext(ctx, `INSERT INTO slots (id, time_range) VALUES ($1, $2)
			ON CONFLICT (id) DO UPDATE SET time_range = excluded.time_range`,
			sl.ID, sl.TimeRange)
		if err != nil {
			return fmt.Errorf("seed slot %d: %w", sl.ID, err)
		}
	}

	for _, sub := range seed.Subjects {
		_, err := tx.ExecContext(ctx, `INSERT INTO subjects (code, name) VALUES ($1, $2)
			ON CONFLICT (code) DO UPDATE SET name = excluded.name`,
			strings.ToUpper(strings.TrimSpace(sub.Code)), sub.Name)
		if err != nil {
			return fmt.Errorf("seed subject %s: %w", sub.Code, err)
		}
	}

	for _, t := range seed.Teachers {
		status := strings.ToUpper(strings.TrimSpace(t.Status))
		if status == "" {
			status = string(models.Present)
		}
		_, err := tx.ExecContext(ctx, `INSERT INTO teachers (id, name, status, updated_at)
			VALUES ($1, $2, $3, CURRENT_TIMESTAMP)
			ON CONFLICT (id) DO UPDATE SET name = excluded.name, status = excluded.status, updated_at = CURRENT_TIMESTAMP`,
			t.ID, t.Name, status)
		if err != nil {
			return fmt.Errorf("seed teacher %s: %w", t.ID, err)
		}

		for _, code := range t.Subjects {
			_, err := tx.ExecContext(ctx, `INSERT INTO teacher_subjects (teacher_id, subject_code)
				VALUES ($1, $2) ON CONFLICT (teacher_id, subject_code) DO NOTHING`,
				t.ID, strings.ToUpper(strings.TrimSpace(code)))
			if err != nil {
				return fmt.Errorf("seed subject %s for teacher %s: %w", code, t.ID, err)
			}
		}
	}

	for _, e := range seed.Timetable {
		_, err := tx.ExecContext(ctx, `INSERT INTO timetable_entries (teacher_id, day, slot_id, activity, room, is_free)
			VALUES ($1, $2, $3, $4, $5, $6)
			ON CONFLICT (teacher_id, day, slot_id)
			DO UPDATE SET activity = excluded.activity, room = excluded.room, is_free = excluded.is_free`,
			e.Teacher, substitution.NormalizeDay(e.Day), e.Slot, e.Activity, e.Room, e.Free)
		if err != nil {
			return fmt.Errorf("seed timetable %s/%s/%d: %w", e.Teacher, e.Day, e.Slot, err)
		}
	}

	return tx.Commit()
}
