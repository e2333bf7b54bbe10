package models

// Slot is a fixed period of the school day. Slots are global and ordered by ID.
type Slot struct {
	ID        int    `json:"id" db:"id" yaml:"id"`
	TimeRange string `json:"time_range" db:"time_range" yaml:"time_range"`
}

// TimetableEntry is one teacher's commitment (or free period) in one slot on
// one day. (TeacherID, Day, SlotID) is unique.
type TimetableEntry struct {
	TeacherID string `json:"teacher_id" db:"teacher_id"`
	Day       string `json:"day" db:"day"`
	SlotID    int    `json:"slot_id" db:"slot_id"`
	TimeRange string `json:"time_range"`
	Activity  string `json:"activity" db:"activity"`
	Room      string `json:"room" db:"room"`
	IsFree    bool   `json:"is_free" db:"is_free"`
}

// CandidateRow is a raw row from the candidate query: one per
// (absent teacher's slot, candidate, candidate subject).
type CandidateRow struct {
	SlotID      int
	Activity    string
	TeacherID   string
	Name        string
	SubjectCode string
	SubjectName string
}
