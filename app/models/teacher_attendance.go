package models

import (
	"strings"
	"time"
)

// Teacher is a staff member whose attendance decides whether they need cover
// or can give it. IDs are matched case-insensitively.
type Teacher struct {
	ID        string    `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Status    string    `json:"status" db:"status"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// StatusIs compares the stored status against s after trimming and upper-casing.
func (t *Teacher) StatusIs(s AttendanceStatus) bool {
	return strings.ToUpper(strings.TrimSpace(t.Status)) == string(s)
}

// DisplayName falls back to the ID when no name is recorded.
func (t *Teacher) DisplayName() string {
	return DisplayName(t.Name, t.ID)
}

// DisplayName returns name, or id when name is blank.
func DisplayName(name, id string) string {
	if strings.TrimSpace(name) == "" {
		return id
	}
	return name
}

// AttendanceUpdate is the body accepted when marking a teacher's attendance.
type AttendanceUpdate struct {
	Status string `json:"status" validate:"required,oneof=PRESENT ABSENT LEAVE LATE"`
}
