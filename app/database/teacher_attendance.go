package database

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"teacher-substitution/app/models"
	"teacher-substitution/app/services/substitution"
)

// Store reads and updates teachers, subjects and timetables over database/sql.
// Queries use $n placeholders in first-use order so they run unchanged on
// PostgreSQL and SQLite.
type Store struct {
	db *sql.DB
}

var _ substitution.Store = (*Store)(nil)

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Ping checks the connection pool.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// FindTeacher looks a teacher up by case-insensitive ID. It returns nil, nil
// when there is no such teacher.
func (s *Store) FindTeacher(ctx context.Context, id string) (*models.Teacher, error) {
	query := `SELECT id, name, status, updated_at
			  FROM teachers
			  WHERE UPPER(id) = UPPER($1)
			  ORDER BY id
			  LIMIT 1`

	teacher := &models.Teacher{}
	err := s.db.QueryRowContext(ctx, query, strings.TrimSpace(id)).Scan(
		&teacher.ID, &teacher.Name, &teacher.Status, &teacher.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return teacher, nil
}

// ListTeachers returns every teacher ordered by name.
func (s *Store) ListTeachers(ctx context.Context) ([]*models.Teacher, error) {
	query := `SELECT id, name, status, updated_at FROM teachers ORDER BY name, id`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	teachers := make([]*models.Teacher, 0)
	for rows.Next() {
		t := &models.Teacher{}
		if err := rows.Scan(&t.ID, &t.Name, &t.Status, &t.UpdatedAt); err != nil {
			return nil, err
		}
		teachers = append(teachers, t)
	}
	return teachers, rows.Err()
}

// ListAbsentTeachers returns teachers whose status is ABSENT.
func (s *Store) ListAbsentTeachers(ctx context.Context) ([]*models.Teacher, error) {
	all, err := s.ListTeachers(ctx)
	if err != nil {
		return nil, err
	}
	absent := make([]*models.Teacher, 0)
	for _, t := range all {
		if t.StatusIs(models.Absent) {
			absent = append(absent, t)
		}
	}
	return absent, nil
}

// UpdateTeacherAttendance stores a new attendance status. It reports false
// when no teacher matched the ID.
func (s *Store) UpdateTeacherAttendance(ctx context.Context, id string, status models.AttendanceStatus) (bool, error) {
	query := `UPDATE teachers
			  SET status = $1, updated_at = CURRENT_TIMESTAMP
			  WHERE UPPER(id) = UPPER($2)`

	res, err := s.db.ExecContext(ctx, query, string(status), strings.TrimSpace(id))
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// SubjectAssignments returns a teacher's subjects with their display names.
func (s *Store) SubjectAssignments(ctx context.Context, teacherID string) ([]models.SubjectAssignment, error) {
	query := `SELECT ts.teacher_id, ts.subject_code, COALESCE(s.name, '')
			  FROM teacher_subjects ts
			  LEFT JOIN subjects s ON UPPER(s.code) = UPPER(ts.subject_code)
			  WHERE UPPER(ts.teacher_id) = UPPER($1)
			  ORDER BY ts.subject_code`

	rows, err := s.db.QueryContext(ctx, query, strings.TrimSpace(teacherID))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.SubjectAssignment
	for rows.Next() {
		var a models.SubjectAssignment
		if err := rows.Scan(&a.TeacherID, &a.SubjectCode, &a.SubjectName); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
