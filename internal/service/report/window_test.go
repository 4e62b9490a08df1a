package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayWindow(t *testing.T) {
	now := time.Date(2024, 3, 10, 14, 22, 5, 0, time.UTC)
	start, end := DayWindow(now, time.UTC)

	assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC), end)
}

func TestDayWindow_RespectsTimeZone(t *testing.T) {
	kampala, err := time.LoadLocation("Africa/Kampala")
	require.NoError(t, err)

	// 23:30 UTC on March 10 is already March 11 in UTC+3.
	now := time.Date(2024, 3, 10, 23, 30, 0, 0, time.UTC)
	start, end := DayWindow(now, kampala)

	assert.Equal(t, time.Date(2024, 3, 11, 0, 0, 0, 0, kampala), start)
	assert.Equal(t, time.Date(2024, 3, 12, 0, 0, 0, 0, kampala), end)
}

func TestMonthWindow(t *testing.T) {
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	start, end := MonthWindow(now, time.UTC)

	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC), end)
}

func TestMonthWindow_DecemberRollsOver(t *testing.T) {
	now := time.Date(2024, 12, 31, 23, 59, 0, 0, time.UTC)
	start, end := MonthWindow(now, time.UTC)

	assert.Equal(t, time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), end)
}
