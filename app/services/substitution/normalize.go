package substitution

import (
	"regexp"
	"strings"
)

// NotApplicable is returned when no subject code can be read from a description.
const NotApplicable = "N/A"

// Thursday is the only day stored with a four-letter code.
const Thursday = "THUR"

var thursdaySpellings = map[string]struct{}{
	"THU":      {},
	"THUR":     {},
	"THURS":    {},
	"THURSDAY": {},
}

var (
	subjectCodePattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)
	leadingCodePattern = regexp.MustCompile(`^[A-Za-z0-9_]+`)
)

// NormalizeDay canonicalizes a day token to the form used in the timetable:
// MON, TUE, WED, THUR, FRI, SAT, SUN. Unknown tokens are truncated to their
// first three characters. Empty input stays empty.
func NormalizeDay(input string) string {
	day := strings.ToUpper(strings.TrimSpace(input))
	if day == "" {
		return ""
	}
	if _, ok := thursdaySpellings[day]; ok {
		return Thursday
	}
	r := []rune(day)
	if len(r) > 3 {
		r = r[:3]
	}
	return string(r)
}

// ExtractSubjectCode reads the subject code from a class description such as
// "MATH101 - Algebra". When there is no "CODE - " prefix the leading run of
// letters, digits and underscores is used instead.
func ExtractSubjectCode(description string) string {
	description = strings.TrimSpace(description)
	if description == "" {
		return NotApplicable
	}

	first := strings.TrimSpace(strings.SplitN(description, " - ", 2)[0])
	if subjectCodePattern.MatchString(first) {
		return strings.ToUpper(first)
	}

	if m := leadingCodePattern.FindString(description); m != "" {
		return strings.ToUpper(m)
	}
	return NotApplicable
}

// IsLab reports whether a class description names a lab session.
func IsLab(description string) bool {
	return strings.Contains(strings.ToUpper(description), "LAB")
}

// normalizeDescription produces the text half of a slot identity key.
func normalizeDescription(description string) string {
	return strings.ToUpper(strings.Join(strings.Fields(description), " "))
}
