package timesheet

import (
	"fmt"
	"math"
	"time"

	"github.com/workflowhq/workforce-backend-go/internal/domain/timesheet"
)

// MinCoveragePercent is the fraction of a shift that must be covered by
// clocked-in time for the shift to count as attended.
const MinCoveragePercent = 75

// MissedShiftGrace is how long after a shift's scheduled start we wait
// before the shift becomes eligible to be flagged as missed.
const MissedShiftGrace = 15 * time.Minute

// EvaluateCoverage measures how much of the shift window [shiftStart,
// shiftEnd] is covered by the given time entries, as seen at evaluationTime.
//
// An entry without a clock-out is treated as still running (its provisional
// end is evaluationTime) while the shift is ongoing; once the shift window
// has closed, a single unclosed entry invalidates the whole evaluation.
//
// Overlapping entries are summed without interval merging, so double-counted
// minutes inflate the percentage. Entries are expected not to overlap in
// practice (one open session at a time is enforced at clock-in).
func EvaluateCoverage(entries []timesheet.TimeEntry, shiftStart, shiftEnd, evaluationTime time.Time) timesheet.CoverageResult {
	fullShiftHours := shiftEnd.Sub(shiftStart).Hours()

	// No entries at all: definitely inadequate.
	if len(entries) == 0 {
		return timesheet.CoverageResult{
			IsAdequate:      false,
			Reason:          "No check-in found",
			CoveragePercent: 0,
			WorkedHours:     0,
			RequiredHours:   round2(fullShiftHours),
		}
	}

	windowEnd := shiftEnd
	if evaluationTime.Before(windowEnd) {
		windowEnd = evaluationTime
	}

	var totalWorkedMinutes float64
	for _, entry := range entries {
		var effectiveEnd time.Time
		switch {
		case entry.ClockOut != nil:
			effectiveEnd = *entry.ClockOut
		case evaluationTime.Before(shiftEnd):
			// Still ongoing, count up to now.
			effectiveEnd = evaluationTime
		default:
			// Shift window closed but the entry was never clocked out.
			return timesheet.CoverageResult{
				IsAdequate:      false,
				Reason:          "Never clocked out",
				CoveragePercent: 0,
				WorkedHours:     0,
				RequiredHours:   round2(fullShiftHours),
			}
		}

		overlapStart := entry.ClockIn
		if overlapStart.Before(shiftStart) {
			overlapStart = shiftStart
		}
		overlapEnd := effectiveEnd
		if overlapEnd.After(windowEnd) {
			overlapEnd = windowEnd
		}
		if overlapEnd.After(overlapStart) {
			totalWorkedMinutes += overlapEnd.Sub(overlapStart).Minutes()
		}
	}

	workedHours := totalWorkedMinutes / 60
	requiredHours := windowEnd.Sub(shiftStart).Hours()

	// A zero-length window cannot be covered; report 0% instead of
	// dividing by zero.
	var coveragePercent float64
	if requiredHours > 0 {
		coveragePercent = workedHours / requiredHours * 100
	}

	isAdequate := coveragePercent >= MinCoveragePercent

	reason := "Adequate coverage"
	if !isAdequate {
		reason = fmt.Sprintf("Only %.1f%% coverage", coveragePercent)
	}

	return timesheet.CoverageResult{
		IsAdequate:      isAdequate,
		Reason:          reason,
		CoveragePercent: int(math.Round(coveragePercent)),
		WorkedHours:     round2(workedHours),
		RequiredHours:   round2(requiredHours),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
