package substitution

import "teacher-substitution/app/models"

type slotKey struct {
	slotID      int
	description string
}

func keyFor(slotID int, description string) slotKey {
	return slotKey{slotID: slotID, description: normalizeDescription(description)}
}

// buildCoverage turns the absent teacher's busy entries into coverage seeds.
// Free entries are skipped even if the store returned them.
func buildCoverage(entries []models.TimetableEntry) []models.CoverageSlot {
	seeds := make([]models.CoverageSlot, 0, len(entries))
	for _, e := range entries {
		if e.IsFree {
			continue
		}
		seeds = append(seeds, models.CoverageSlot{
			SlotID:           e.SlotID,
			TimeRange:        e.TimeRange,
			ClassDescription: e.Activity,
			Room:             e.Room,
			SubjectCode:      ExtractSubjectCode(e.Activity),
			IsLab:            IsLab(e.Activity),
			Candidates:       []models.SubstituteCandidate{},
		})
	}
	return seeds
}
