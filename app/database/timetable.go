package database

import (
	"context"
	"database/sql"
	"strings"

	"teacher-substitution/app/models"
)

// CoverageEntries returns the teacher's busy entries for a day joined to slot
// times, ordered by slot.
func (s *Store) CoverageEntries(ctx context.Context, teacherID, day string) ([]models.TimetableEntry, error) {
	query := `SELECT e.teacher_id, e.day, e.slot_id, COALESCE(sl.time_range, ''),
				 e.activity, e.room, e.is_free
			  FROM timetable_entries e
			  LEFT JOIN slots sl ON sl.id = e.slot_id
			  WHERE UPPER(e.teacher_id) = UPPER($1) AND e.day = $2 AND NOT e.is_free
			  ORDER BY e.slot_id`

	rows, err := s.db.QueryContext(ctx, query, strings.TrimSpace(teacherID), day)
	if err != nil {
		return nil, err
	}
	return scanEntries(rows)
}

// CandidateRows lists, for every busy slot of the absent teacher on day, the
// present teachers who are not busy in that slot. A teacher with no entry for
// the slot counts as free. One row is returned per candidate subject.
func (s *Store) CandidateRows(ctx context.Context, teacherID, day string) ([]models.CandidateRow, error) {
	query := `SELECT e.slot_id, e.activity, t.id, t.name,
				 COALESCE(ts.subject_code, ''), COALESCE(sub.name, '')
			  FROM timetable_entries e
			  JOIN teachers t ON UPPER(t.id) <> UPPER(e.teacher_id)
			  LEFT JOIN teacher_subjects ts ON UPPER(ts.teacher_id) = UPPER(t.id)
			  LEFT JOIN subjects sub ON UPPER(sub.code) = UPPER(ts.subject_code)
			  WHERE UPPER(e.teacher_id) = UPPER($1) AND e.day = $2 AND NOT e.is_free
			  AND UPPER(TRIM(t.status)) = 'PRESENT'
			  AND NOT EXISTS (
				  SELECT 1 FROM timetable_entries b
				  WHERE UPPER(b.teacher_id) = UPPER(t.id)
				  AND b.day = e.day AND b.slot_id = e.slot_id AND NOT b.is_free
			  )
			  ORDER BY e.slot_id, t.name, t.id, ts.subject_code`

	rows, err := s.db.QueryContext(ctx, query, strings.TrimSpace(teacherID), day)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.CandidateRow
	for rows.Next() {
		var r models.CandidateRow
		if err := rows.Scan(&r.SlotID, &r.Activity, &r.TeacherID, &r.Name, &r.SubjectCode, &r.SubjectName); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// TeacherTimetable returns all entries, free or busy, for a teacher. An empty
// day returns the whole week.
func (s *Store) TeacherTimetable(ctx context.Context, teacherID, day string) ([]models.TimetableEntry, error) {
	query := `SELECT e.teacher_id, e.day, e.slot_id, COALESCE(sl.time_range, ''),
				 e.activity, e.room, e.is_free
			  FROM timetable_entries e
			  LEFT JOIN slots sl ON sl.id = e.slot_id
			  WHERE UPPER(e.teacher_id) = UPPER($1)`
	args := []interface{}{strings.TrimSpace(teacherID)}

	if day != "" {
		query += " AND e.day = $2"
		args = append(args, day)
	}
	query += " ORDER BY e.day, e.slot_id"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return scanEntries(rows)
}

func scanEntries(rows *sql.Rows) ([]models.TimetableEntry, error) {
	defer rows.Close()

	var out []models.TimetableEntry
	for rows.Next() {
		var e models.TimetableEntry
		if err := rows.Scan(&e.TeacherID, &e.Day, &e.SlotID, &e.TimeRange, &e.Activity, &e.Room, &e.IsFree); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
