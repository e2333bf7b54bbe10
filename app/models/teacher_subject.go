package models

// Subject is a teachable subject keyed by its short code (e.g. MATH101).
type Subject struct {
	Code string `json:"code" db:"code" yaml:"code"`
	Name string `json:"name" db:"name" yaml:"name"`
}

// SubjectAssignment links a teacher to a subject they are qualified to teach.
type SubjectAssignment struct {
	TeacherID   string `json:"teacher_id" db:"teacher_id"`
	SubjectCode string `json:"subject_code" db:"subject_code"`
	SubjectName string `json:"subject_name" db:"subject_name"`
}
