package substitution

import (
	"fmt"
	"sort"
	"strings"

	"teacher-substitution/app/models"
)

const (
	noteTeacherNotFound = "Teacher not found"
	subjectsNotAssigned = "Subject(s) Not Assigned"
)

// SummarizeSubjects joins a teacher's subject assignments into one display
// string. "CODE - Name" details are preferred; bare codes are used when no
// subject has a name. The result is sorted and de-duplicated.
func SummarizeSubjects(assignments []models.SubjectAssignment) string {
	codes := make(map[string]struct{})
	details := make(map[string]struct{})
	for _, a := range assignments {
		code := strings.ToUpper(strings.TrimSpace(a.SubjectCode))
		if code == "" {
			continue
		}
		codes[code] = struct{}{}
		if name := strings.TrimSpace(a.SubjectName); name != "" {
			details[code+" - "+name] = struct{}{}
		}
	}

	if len(details) > 0 {
		return strings.Join(sortedKeys(details), " | ")
	}
	if len(codes) > 0 {
		return strings.Join(sortedKeys(codes), ", ")
	}
	return subjectsNotAssigned
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func notFoundReport(teacherID, day string) *models.Report {
	return &models.Report{
		AbsentTeacherName:     "Teacher ID: " + teacherID,
		AbsentTeacherSubjects: NotApplicable,
		Day:                   day,
		Schedule:              []models.CoverageSlot{},
		Note:                  noteTeacherNotFound,
	}
}

func notAbsentReport(teacher *models.Teacher, subjects, day string) *models.Report {
	return &models.Report{
		AbsentTeacherName:     teacher.DisplayName(),
		AbsentTeacherSubjects: subjects,
		Day:                   day,
		Schedule:              []models.CoverageSlot{},
		Note:                  fmt.Sprintf("Teacher is not marked as ABSENT (current status: %s)", strings.TrimSpace(teacher.Status)),
	}
}
