package ledger

import (
	"fmt"
	"strings"
)

// GenerateStudentID derives a stable identifier from a cohort label and a
// 1-based enrollment sequence: PREFIX + cohort digits (at least two,
// zero-padded) + sequence (at least three, zero-padded). Both fields widen
// instead of truncating, so distinct (cohort, sequence) pairs can never
// collapse onto the same identifier. The function is pure; deduplication of
// sequence numbers is the caller's job.
func GenerateStudentID(prefix, cohortLabel string, sequence int) (string, error) {
	if sequence <= 0 {
		return "", fmt.Errorf("sequence must be positive, got %d", sequence)
	}

	var digits strings.Builder
	for _, r := range cohortLabel {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}

	cohort := digits.String()
	for len(cohort) < 2 {
		cohort = "0" + cohort
	}

	return fmt.Sprintf("%s%s%03d", prefix, cohort, sequence), nil
}
