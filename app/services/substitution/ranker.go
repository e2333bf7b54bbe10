package substitution

import (
	"sort"
	"strings"

	"teacher-substitution/app/models"
)

type candidateAcc struct {
	teacherID string
	name      string
}

// rankCandidates groups candidate rows by slot identity and orders each group:
// BEST FIT before GOOD FIT, then by name, then by teacher ID.
func rankCandidates(absentID string, seeds []models.CoverageSlot, rows []models.CandidateRow) map[slotKey][]models.SubstituteCandidate {
	subjectCodes := make(map[slotKey]string, len(seeds))
	for _, s := range seeds {
		k := keyFor(s.SlotID, s.ClassDescription)
		if _, ok := subjectCodes[k]; !ok {
			subjectCodes[k] = s.SubjectCode
		}
	}

	// Subjects are per teacher, independent of the slot the row was returned for.
	subjects := make(map[string][]models.SubjectAssignment)
	seenSubject := make(map[string]map[string]struct{})
	perSlot := make(map[slotKey]map[string]candidateAcc)

	for _, row := range rows {
		if strings.EqualFold(strings.TrimSpace(row.TeacherID), absentID) {
			continue
		}
		k := keyFor(row.SlotID, row.Activity)
		if _, ok := subjectCodes[k]; !ok {
			continue
		}
		id := strings.ToUpper(strings.TrimSpace(row.TeacherID))

		if row.SubjectCode != "" {
			if seenSubject[id] == nil {
				seenSubject[id] = make(map[string]struct{})
			}
			sk := strings.ToUpper(strings.TrimSpace(row.SubjectCode))
			if _, dup := seenSubject[id][sk]; !dup {
				seenSubject[id][sk] = struct{}{}
				subjects[id] = append(subjects[id], models.SubjectAssignment{
					TeacherID:   row.TeacherID,
					SubjectCode: row.SubjectCode,
					SubjectName: row.SubjectName,
				})
			}
		}

		if perSlot[k] == nil {
			perSlot[k] = make(map[string]candidateAcc)
		}
		if _, ok := perSlot[k][id]; !ok {
			perSlot[k][id] = candidateAcc{teacherID: row.TeacherID, name: models.DisplayName(row.Name, row.TeacherID)}
		}
	}

	ranked := make(map[slotKey][]models.SubstituteCandidate, len(perSlot))
	for k, accs := range perSlot {
		list := make([]models.SubstituteCandidate, 0, len(accs))
		for id, acc := range accs {
			list = append(list, models.SubstituteCandidate{
				TeacherID: acc.teacherID,
				Name:      acc.name,
				Fit:       fitFor(subjectCodes[k], subjects[id]),
				Subjects:  SummarizeSubjects(subjects[id]),
			})
		}
		sortCandidates(list)
		ranked[k] = list
	}
	return ranked
}

func fitFor(code string, assignments []models.SubjectAssignment) models.FitTier {
	if code == "" || code == NotApplicable {
		return models.GoodFit
	}
	for _, a := range assignments {
		if strings.ToUpper(strings.TrimSpace(a.SubjectCode)) == code {
			return models.BestFit
		}
	}
	return models.GoodFit
}

func sortCandidates(list []models.SubstituteCandidate) {
	sort.Slice(list, func(i, j int) bool {
		a, b := list[i], list[j]
		if a.Fit.Rank() != b.Fit.Rank() {
			return a.Fit.Rank() < b.Fit.Rank()
		}
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		return a.TeacherID < b.TeacherID
	})
}
