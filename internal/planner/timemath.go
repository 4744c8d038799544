// Package planner implements the allocation and plan-health engine.
//
// Every function in this package is pure: inputs are in-memory snapshots of
// goals, scenarios and transactions, outputs are plain result structs. The
// engine never reads or writes storage and keeps no state between calls;
// callers own persistence and hand the engine a consistent snapshot.
package planner

import (
	"math"
	"time"

	"github.com/mdekker/Goal-Planner-Backend/internal/model"
)

// daysPerMonth is the fixed month length used for amortization. Deadlines are
// user-picked dates, so calendar-exact month arithmetic buys nothing over a
// stable 30-day bucket.
const daysPerMonth = 30

// DateOnly strips the time-of-day component, keeping the calendar day in UTC.
// All plan date comparisons are date-only.
func DateOnly(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// EffectiveStart returns the date a goal's schedule is amortized from: its
// declared start date, or today when none was set.
func EffectiveStart(g model.Goal, today time.Time) time.Time {
	if g.StartDate != nil {
		return DateOnly(*g.StartDate)
	}
	return DateOnly(today)
}

// HasStarted reports whether the goal's schedule is running as of today.
// Goals without a start date always count as started.
func HasStarted(g model.Goal, today time.Time) bool {
	return !EffectiveStart(g, today).After(DateOnly(today))
}

// MonthsBetween returns the number of 30-day months from one date to another,
// rounded up and floored at zero.
func MonthsBetween(from, to time.Time) int {
	days := DateOnly(to).Sub(DateOnly(from)).Hours() / 24
	if days <= 0 {
		return 0
	}
	return int(math.Ceil(days / daysPerMonth))
}

// MonthsRemaining returns how many months the goal's schedule spans, measured
// from its effective start to its deadline.
func MonthsRemaining(g model.Goal, today time.Time) int {
	return MonthsBetween(EffectiveStart(g, today), g.Deadline)
}

// MonthBounds returns the inclusive first and last day of a calendar month.
func MonthBounds(year, month int) (start, end time.Time) {
	start = time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end = start.AddDate(0, 1, -1)
	return start, end
}

// InMonth reports whether a date falls inside the given calendar month.
func InMonth(t time.Time, year, month int) bool {
	d := DateOnly(t)
	return d.Year() == year && int(d.Month()) == month
}

// round2 rounds a monetary value to two decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
