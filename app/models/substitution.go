package models

// SubstituteCandidate is a present teacher who can cover a slot.
type SubstituteCandidate struct {
	TeacherID string  `json:"teacher_id"`
	Name      string  `json:"name"`
	Fit       FitTier `json:"fit"`
	Subjects  string  `json:"subjects"`
}

// CoverageSlot is one class of the absent teacher that needs a substitute.
type CoverageSlot struct {
	SlotID           int                   `json:"slot_id"`
	TimeRange        string                `json:"time_range"`
	ClassDescription string                `json:"class_description"`
	Room             string                `json:"room"`
	SubjectCode      string                `json:"subject_code"`
	IsLab            bool                  `json:"is_lab"`
	Candidates       []SubstituteCandidate `json:"candidates"`
}

// Report is the result of resolving substitutes for one teacher on one day.
type Report struct {
	AbsentTeacherName     string         `json:"absent_teacher_name"`
	AbsentTeacherSubjects string         `json:"absent_teacher_subjects"`
	Day                   string         `json:"day"`
	Schedule              []CoverageSlot `json:"schedule"`
	Note                  string         `json:"note,omitempty"`
}
