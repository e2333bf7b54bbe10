package database

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"teacher-substitution/app/models"
	"teacher-substitution/app/services/substitution"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", filepath.Join(t.TempDir(), "cover.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, RunMigrations(db, zap.NewNop()))
	return db
}

func seededStore(t *testing.T) (*Store, *sql.DB) {
	t.Helper()

	db := openTestDB(t)
	f, err := os.Open("testdata/seed.yaml")
	require.NoError(t, err)
	defer f.Close()

	seed, err := ParseSeed(f)
	require.NoError(t, err)
	require.NoError(t, LoadSeed(context.Background(), db, seed))
	return NewStore(db), db
}

func TestRunMigrations_Idempotent(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, RunMigrations(db, zap.NewNop()))
}

func TestLoadSeed_Upserts(t *testing.T) {
	_, db := seededStore(t)

	f, err := os.Open("testdata/seed.yaml")
	require.NoError(t, err)
	defer f.Close()
	seed, err := ParseSeed(f)
	require.NoError(t, err)
	require.NoError(t, LoadSeed(context.Background(), db, seed))

	var entries, teachers int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM timetable_entries`).Scan(&entries))
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM teachers`).Scan(&teachers))
	assert.Equal(t, 6, entries)
	assert.Equal(t, 5, teachers)

	var day string
	require.NoError(t, db.QueryRow(`SELECT day FROM timetable_entries WHERE teacher_id = 'T01' AND slot_id = 2 AND is_free = $1`, false).Scan(&day))
	assert.Equal(t, "THUR", day)
}

func TestParseSeed_RejectsUnknownFields(t *testing.T) {
	_, err := ParseSeed(strings.NewReader("teachers:\n  - id: T1\n    nickname: x\n"))
	require.Error(t, err)

	_, err = ParseSeed(strings.NewReader("timetable:\n  - {teacher: T1, slot: 1}\n"))
	require.Error(t, err)
}

func TestStore_FindTeacher(t *testing.T) {
	store, _ := seededStore(t)
	ctx := context.Background()

	teacher, err := store.FindTeacher(ctx, " t01 ")
	require.NoError(t, err)
	require.NotNil(t, teacher)
	assert.Equal(t, "T01", teacher.ID)
	assert.Equal(t, "Alice Okello", teacher.Name)
	assert.True(t, teacher.StatusIs(models.Absent))

	missing, err := store.FindTeacher(ctx, "nobody")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestStore_SubjectAssignments(t *testing.T) {
	store, _ := seededStore(t)

	subjects, err := store.SubjectAssignments(context.Background(), "t02")
	require.NoError(t, err)
	assert.Equal(t, "ENG - English | MATH101 - Algebra", substitution.SummarizeSubjects(subjects))

	none, err := store.SubjectAssignments(context.Background(), "T04")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestStore_CoverageEntries(t *testing.T) {
	store, _ := seededStore(t)

	entries, err := store.CoverageEntries(context.Background(), "T01", "MON")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, 1, entries[0].SlotID)
	assert.Equal(t, "08:00-08:40", entries[0].TimeRange)
	assert.Equal(t, "MATH101 - Algebra", entries[0].Activity)
	assert.Equal(t, 3, entries[1].SlotID)
	assert.Equal(t, "Lab 2", entries[1].Room)
	for _, e := range entries {
		assert.False(t, e.IsFree)
	}
}

func TestStore_CandidateRows(t *testing.T) {
	store, _ := seededStore(t)

	rows, err := store.CandidateRows(context.Background(), "T01", "MON")
	require.NoError(t, err)

	bySlot := make(map[int]map[string]bool)
	for _, r := range rows {
		if bySlot[r.SlotID] == nil {
			bySlot[r.SlotID] = make(map[string]bool)
		}
		bySlot[r.SlotID][r.TeacherID] = true
	}

	assert.Equal(t, map[string]bool{"T02": true, "T03": true, "T04": true}, bySlot[1],
		"explicitly free and row-less teachers both qualify")
	assert.Equal(t, map[string]bool{"T03": true, "T04": true}, bySlot[3],
		"a teacher busy in the slot is excluded")
	assert.NotContains(t, bySlot, 2, "free slots of the absent teacher need no cover")
}

func TestStore_ResolveEndToEnd(t *testing.T) {
	store, _ := seededStore(t)
	r := substitution.NewResolver(store, nil)

	report, err := r.Resolve(context.Background(), "t01", "thursday")
	require.NoError(t, err)
	assert.Equal(t, "THUR", report.Day)
	assert.Equal(t, "MATH101 - Algebra", report.AbsentTeacherSubjects)
	require.Len(t, report.Schedule, 1)

	slot := report.Schedule[0]
	assert.Equal(t, 2, slot.SlotID)
	assert.Equal(t, "ENG", slot.SubjectCode)
	require.Len(t, slot.Candidates, 3)
	assert.Equal(t, "Brian Mugisha", slot.Candidates[0].Name)
	assert.Equal(t, models.BestFit, slot.Candidates[0].Fit)
	assert.Equal(t, "ENG - English | MATH101 - Algebra", slot.Candidates[0].Subjects)
	assert.Equal(t, "Aaron Kato", slot.Candidates[1].Name)
	assert.Equal(t, "Carol Nansubuga", slot.Candidates[2].Name)

	report, err = r.Resolve(context.Background(), "T01", "MON")
	require.NoError(t, err)
	require.Len(t, report.Schedule, 2)
	assert.Equal(t, "Carol Nansubuga", report.Schedule[1].Candidates[0].Name)
	assert.Equal(t, models.BestFit, report.Schedule[1].Candidates[0].Fit)
}

func TestStore_UpdateTeacherAttendance(t *testing.T) {
	store, _ := seededStore(t)
	ctx := context.Background()

	ok, err := store.UpdateTeacherAttendance(ctx, "t04", models.Absent)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = store.UpdateTeacherAttendance(ctx, "ghost", models.Absent)
	require.NoError(t, err)
	assert.False(t, ok)

	absent, err := store.ListAbsentTeachers(ctx)
	require.NoError(t, err)
	var ids []string
	for _, a := range absent {
		ids = append(ids, a.ID)
	}
	assert.Equal(t, []string{"T04", "T01"}, ids, "ordered by name")
}

func TestStore_TeacherTimetable(t *testing.T) {
	store, _ := seededStore(t)
	ctx := context.Background()

	week, err := store.TeacherTimetable(ctx, "T01", "")
	require.NoError(t, err)
	assert.Len(t, week, 4)

	monday, err := store.TeacherTimetable(ctx, "T01", "MON")
	require.NoError(t, err)
	require.Len(t, monday, 3)
	assert.True(t, monday[1].IsFree)
}
