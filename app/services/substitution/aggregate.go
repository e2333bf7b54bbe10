package substitution

import (
	"sort"

	"teacher-substitution/app/models"
)

// aggregate keeps one coverage slot per identity key (first seed wins),
// attaches its ranked candidates and orders the schedule by slot ID.
func aggregate(seeds []models.CoverageSlot, ranked map[slotKey][]models.SubstituteCandidate) []models.CoverageSlot {
	seen := make(map[slotKey]struct{}, len(seeds))
	schedule := make([]models.CoverageSlot, 0, len(seeds))
	for _, s := range seeds {
		k := keyFor(s.SlotID, s.ClassDescription)
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		if c, ok := ranked[k]; ok {
			s.Candidates = c
		} else {
			s.Candidates = []models.SubstituteCandidate{}
		}
		schedule = append(schedule, s)
	}

	sort.SliceStable(schedule, func(i, j int) bool {
		return schedule[i].SlotID < schedule[j].SlotID
	})
	return schedule
}
