package ledger

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateStudentID(t *testing.T) {
	tests := []struct {
		name     string
		cohort   string
		sequence int
		want     string
	}{
		{name: "plain cohort and sequence", cohort: "10", sequence: 7, want: "STU10007"},
		{name: "cohort label with letters", cohort: "Grade 7B", sequence: 12, want: "STU07012"},
		{name: "single digit cohort is padded", cohort: "9", sequence: 1, want: "STU09001"},
		{name: "no digits in cohort", cohort: "Nursery", sequence: 3, want: "STU00003"},
		{name: "three digit cohort keeps all digits", cohort: "Y2024", sequence: 5, want: "STU2024005"},
		{name: "sequence widens past three digits", cohort: "10", sequence: 1234, want: "STU101234"},
		{name: "max three digit sequence", cohort: "10", sequence: 999, want: "STU10999"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := GenerateStudentID("STU", tt.cohort, tt.sequence)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGenerateStudentID_Deterministic(t *testing.T) {
	first, err := GenerateStudentID("STU", "Grade 10", 42)
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		again, err := GenerateStudentID("STU", "Grade 10", 42)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestGenerateStudentID_InjectiveOverDomain(t *testing.T) {
	// Distinct (cohort digits, sequence) pairs in the 2-digit/3-digit
	// domain must never collide.
	seen := make(map[string]string)
	for cohort := 0; cohort < 100; cohort += 7 {
		for seq := 1; seq < 1000; seq += 41 {
			label := fmt.Sprintf("%02d", cohort)
			id, err := GenerateStudentID("STU", label, seq)
			require.NoError(t, err)

			key := fmt.Sprintf("%s/%d", label, seq)
			if prev, ok := seen[id]; ok {
				t.Fatalf("identifier %q produced by both %s and %s", id, prev, key)
			}
			seen[id] = key
		}
	}
}

func TestGenerateStudentID_RejectsNonPositiveSequence(t *testing.T) {
	_, err := GenerateStudentID("STU", "10", 0)
	assert.Error(t, err)

	_, err = GenerateStudentID("STU", "10", -3)
	assert.Error(t, err)
}
