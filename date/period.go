package date

import (
	"fmt"
	"strings"
	"time"
)

// Period is a calendar period used to group the days of reports.
type Period int

const (
	Daily Period = iota
	Weekly
	Monthly
	Yearly
)

var periodNames = [...]string{Daily: "daily", Weekly: "weekly", Monthly: "monthly", Yearly: "yearly"}

func (p Period) String() string {
	if p < 0 || int(p) >= len(periodNames) {
		return fmt.Sprintf("Period(%d)", int(p))
	}
	return periodNames[p]
}

// ParsePeriod accepts a period name, its noun ("week") or its first letter ("w").
func ParsePeriod(p string) (Period, error) {
	switch strings.ToLower(strings.TrimSpace(p)) {
	case "daily", "day", "d":
		return Daily, nil
	case "weekly", "week", "w":
		return Weekly, nil
	case "monthly", "month", "m":
		return Monthly, nil
	case "yearly", "year", "y":
		return Yearly, nil
	}
	return Daily, fmt.Errorf("unknown period %q, want day, week, month or year", p)
}

// StartOf returns the first day of the period containing d. Weeks start on Monday.
func (d Date) StartOf(period Period) Date {
	switch period {
	case Weekly:
		// days since Monday, Sunday being the 7th day of the week
		since := (int(d.Weekday()) + 6) % 7
		return d.Add(-since)
	case Monthly:
		return New(d.Year(), d.Month(), 1)
	case Yearly:
		return New(d.Year(), time.January, 1)
	}
	return d
}

// EndOf returns the last day of the period containing d.
func (d Date) EndOf(period Period) Date {
	switch period {
	case Weekly:
		return d.StartOf(Weekly).Add(6)
	case Monthly:
		// day 0 of the next month normalizes to the last day of this one
		return New(d.Year(), d.Month()+1, 0)
	case Yearly:
		return New(d.Year(), time.December, 31)
	}
	return d
}
