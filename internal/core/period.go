package core

import (
	"fmt"
	"time"
)

// Period identifies a goal evaluation window.
type Period string

const (
	PeriodDaily   Period = "daily"
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
)

// Periods returns all periods in evaluation priority order: the daily
// goal is checked first, then weekly, then monthly.
func Periods() [3]Period {
	return [3]Period{PeriodDaily, PeriodWeekly, PeriodMonthly}
}

// Valid reports whether p names a known period.
func (p Period) Valid() bool {
	switch p {
	case PeriodDaily, PeriodWeekly, PeriodMonthly:
		return true
	}
	return false
}

// StartOf returns the inclusive lower bound of the period instance
// containing now, in now's location:
//   - daily: local midnight of the current date
//   - weekly: local midnight of the most recent Monday (ISO week start)
//   - monthly: local midnight of the 1st of the current month
func (p Period) StartOf(now time.Time) time.Time {
	year, month, day := now.Date()
	midnight := time.Date(year, month, day, 0, 0, 0, 0, now.Location())
	switch p {
	case PeriodWeekly:
		// Monday=0 ... Sunday=6
		offset := (int(now.Weekday()) + 6) % 7
		return midnight.AddDate(0, 0, -offset)
	case PeriodMonthly:
		return time.Date(year, month, 1, 0, 0, 0, 0, now.Location())
	default:
		return midnight
	}
}

// InstanceID returns the canonical label for the period instance
// containing now. These labels key the persisted achievement marks:
//   - daily: "2025-08-30"
//   - weekly: "2025-W35" (ISO-8601 week numbering)
//   - monthly: "2025-8"
func (p Period) InstanceID(now time.Time) string {
	switch p {
	case PeriodWeekly:
		isoYear, isoWeek := now.ISOWeek()
		return fmt.Sprintf("%04d-W%02d", isoYear, isoWeek)
	case PeriodMonthly:
		return fmt.Sprintf("%d-%d", now.Year(), int(now.Month()))
	default:
		return p.StartOf(now).Format("2006-01-02")
	}
}

// PreviousInstanceID returns the label of the period instance
// immediately before the one containing now.
func (p Period) PreviousInstanceID(now time.Time) string {
	start := p.StartOf(now)
	switch p {
	case PeriodWeekly:
		return p.InstanceID(start.AddDate(0, 0, -7))
	case PeriodMonthly:
		return p.InstanceID(start.AddDate(0, -1, 0))
	default:
		return p.InstanceID(start.AddDate(0, 0, -1))
	}
}
