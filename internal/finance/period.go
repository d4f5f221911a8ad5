package finance

import "strings"

// Period selects transactions by calendar year and, optionally, month.
// Matching is a prefix match on the ISO date string, so "2025" covers the
// whole year and "2025-05" covers May.
type Period struct {
	Year  string
	Month string // zero-padded key; empty or All means the whole year
}

// YearPeriod covers every day of year.
func YearPeriod(year string) Period {
	return Period{Year: year}
}

// MonthPeriod covers a single month. month must be a zero-padded key.
func MonthPeriod(year, month string) Period {
	return Period{Year: year, Month: month}
}

// Prefix returns the date prefix matched by the period.
func (p Period) Prefix() string {
	if p.Month == "" || p.Month == All {
		return p.Year
	}
	return p.Year + "-" + p.Month
}

// Contains reports whether the YYYY-MM-DD date falls inside the period.
func (p Period) Contains(date string) bool {
	if p.Year == "" {
		return false
	}
	return strings.HasPrefix(date, p.Prefix())
}

// MonthOf returns the YYYY-MM part of a date.
func MonthOf(date string) string {
	if len(date) < 7 {
		return date
	}
	return date[:7]
}
