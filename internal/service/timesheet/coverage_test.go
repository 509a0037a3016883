package timesheet

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/workflowhq/workforce-backend-go/internal/domain/timesheet"
)

func timePtr(t time.Time) *time.Time { return &t }

func TestEvaluateCoverage_NoEntries(t *testing.T) {
	shiftStart := time.Date(2026, 3, 9, 9, 0, 0, 0, time.UTC)
	shiftEnd := time.Date(2026, 3, 9, 17, 0, 0, 0, time.UTC)

	result := EvaluateCoverage(nil, shiftStart, shiftEnd, shiftEnd)

	assert.False(t, result.IsAdequate)
	assert.Equal(t, "No check-in found", result.Reason)
	assert.Equal(t, 0, result.CoveragePercent)
	assert.Equal(t, 0.0, result.WorkedHours)
	assert.Equal(t, 8.0, result.RequiredHours)
}

func TestEvaluateCoverage_HalfShiftWorked(t *testing.T) {
	shiftStart := time.Date(2026, 3, 9, 9, 0, 0, 0, time.UTC)
	shiftEnd := time.Date(2026, 3, 9, 17, 0, 0, 0, time.UTC)

	entries := []timesheet.TimeEntry{
		{
			ClockIn:  shiftStart,
			ClockOut: timePtr(time.Date(2026, 3, 9, 13, 0, 0, 0, time.UTC)),
		},
	}

	result := EvaluateCoverage(entries, shiftStart, shiftEnd, shiftEnd)

	assert.False(t, result.IsAdequate)
	assert.Equal(t, "Only 50.0% coverage", result.Reason)
	assert.Equal(t, 50, result.CoveragePercent)
	assert.Equal(t, 4.0, result.WorkedHours)
	assert.Equal(t, 8.0, result.RequiredHours)
}

func TestEvaluateCoverage_NeverClockedOut(t *testing.T) {
	shiftStart := time.Date(2026, 3, 9, 9, 0, 0, 0, time.UTC)
	shiftEnd := time.Date(2026, 3, 9, 17, 0, 0, 0, time.UTC)

	entries := []timesheet.TimeEntry{
		{ClockIn: shiftStart},
	}

	// Evaluated after the window closed with the entry still open.
	result := EvaluateCoverage(entries, shiftStart, shiftEnd, shiftEnd.Add(time.Hour))

	assert.False(t, result.IsAdequate)
	assert.Equal(t, "Never clocked out", result.Reason)
	assert.Equal(t, 0, result.CoveragePercent)
	assert.Equal(t, 0.0, result.WorkedHours)
}

func TestEvaluateCoverage_OngoingEntryCountsUpToNow(t *testing.T) {
	shiftStart := time.Date(2026, 3, 9, 9, 0, 0, 0, time.UTC)
	shiftEnd := time.Date(2026, 3, 9, 17, 0, 0, 0, time.UTC)
	now := time.Date(2026, 3, 9, 12, 0, 0, 0, time.UTC)

	entries := []timesheet.TimeEntry{
		{ClockIn: shiftStart},
	}

	// Mid-shift the open entry is provisional: covered up to now, and the
	// requirement shrinks to the elapsed window.
	result := EvaluateCoverage(entries, shiftStart, shiftEnd, now)

	assert.True(t, result.IsAdequate)
	assert.Equal(t, "Adequate coverage", result.Reason)
	assert.Equal(t, 100, result.CoveragePercent)
	assert.Equal(t, 3.0, result.WorkedHours)
	assert.Equal(t, 3.0, result.RequiredHours)
}

func TestEvaluateCoverage_AtThresholdIsAdequate(t *testing.T) {
	shiftStart := time.Date(2026, 3, 9, 9, 0, 0, 0, time.UTC)
	shiftEnd := time.Date(2026, 3, 9, 17, 0, 0, 0, time.UTC)

	entries := []timesheet.TimeEntry{
		{
			ClockIn:  shiftStart,
			ClockOut: timePtr(time.Date(2026, 3, 9, 15, 0, 0, 0, time.UTC)),
		},
	}

	// 6 of 8 hours is exactly 75%.
	result := EvaluateCoverage(entries, shiftStart, shiftEnd, shiftEnd)

	assert.True(t, result.IsAdequate)
	assert.Equal(t, "Adequate coverage", result.Reason)
	assert.Equal(t, 75, result.CoveragePercent)
}

func TestEvaluateCoverage_EntryClippedToShiftWindow(t *testing.T) {
	shiftStart := time.Date(2026, 3, 9, 9, 0, 0, 0, time.UTC)
	shiftEnd := time.Date(2026, 3, 9, 17, 0, 0, 0, time.UTC)

	// Clocked in early and out late; only the shift window counts.
	entries := []timesheet.TimeEntry{
		{
			ClockIn:  time.Date(2026, 3, 9, 8, 0, 0, 0, time.UTC),
			ClockOut: timePtr(time.Date(2026, 3, 9, 18, 0, 0, 0, time.UTC)),
		},
	}

	result := EvaluateCoverage(entries, shiftStart, shiftEnd, shiftEnd)

	assert.True(t, result.IsAdequate)
	assert.Equal(t, 100, result.CoveragePercent)
	assert.Equal(t, 8.0, result.WorkedHours)
}

func TestEvaluateCoverage_MultipleEntriesSummed(t *testing.T) {
	shiftStart := time.Date(2026, 3, 9, 9, 0, 0, 0, time.UTC)
	shiftEnd := time.Date(2026, 3, 9, 17, 0, 0, 0, time.UTC)

	entries := []timesheet.TimeEntry{
		{
			ClockIn:  shiftStart,
			ClockOut: timePtr(time.Date(2026, 3, 9, 12, 0, 0, 0, time.UTC)),
		},
		{
			ClockIn:  time.Date(2026, 3, 9, 13, 0, 0, 0, time.UTC),
			ClockOut: timePtr(shiftEnd),
		},
	}

	result := EvaluateCoverage(entries, shiftStart, shiftEnd, shiftEnd)

	assert.True(t, result.IsAdequate)
	assert.Equal(t, 88, result.CoveragePercent)
	assert.Equal(t, 7.0, result.WorkedHours)
}

func TestEvaluateCoverage_ZeroLengthWindow(t *testing.T) {
	at := time.Date(2026, 3, 9, 9, 0, 0, 0, time.UTC)

	entries := []timesheet.TimeEntry{
		{ClockIn: at, ClockOut: timePtr(at.Add(time.Hour))},
	}

	result := EvaluateCoverage(entries, at, at, at)

	assert.False(t, result.IsAdequate)
	assert.Equal(t, 0, result.CoveragePercent)
	assert.Equal(t, 0.0, result.RequiredHours)
}
