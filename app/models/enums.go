package models

// AttendanceStatus is the attendance marker stored on a teacher. Values other
// than the constants below are kept and echoed verbatim.
type AttendanceStatus string

const (
	Present AttendanceStatus = "PRESENT"
	Absent  AttendanceStatus = "ABSENT"
	Leave   AttendanceStatus = "LEAVE"
	Late    AttendanceStatus = "LATE"
)

// FitTier ranks a substitute candidate against the class they would cover.
type FitTier string

const (
	BestFit FitTier = "BEST FIT (Same Subject)"
	GoodFit FitTier = "GOOD FIT (Free, Any Subject)"
)

// Rank orders tiers so that lower values sort first.
func (f FitTier) Rank() int {
	if f == BestFit {
		return 0
	}
	return 1
}
