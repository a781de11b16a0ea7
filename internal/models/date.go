package models

import "fmt"

// Date is a calendar day without time-of-day or location.
// No calendar validation is performed: 31.02.2025 is a valid Date.
type Date struct {
	Day   int `json:"day" yaml:"day"`
	Month int `json:"month" yaml:"month"`
	Year  int `json:"year" yaml:"year"`
}

// NewDate creates a Date from its day, month and year components
func NewDate(day, month, year int) Date {
	return Date{Day: day, Month: month, Year: year}
}

// Compare orders dates by year, then month, then day.
// Returns -1 if d is before other, 0 if equal, 1 if after.
func (d Date) Compare(other Date) int {
	switch {
	case d.Year != other.Year:
		return cmpInt(d.Year, other.Year)
	case d.Month != other.Month:
		return cmpInt(d.Month, other.Month)
	default:
		return cmpInt(d.Day, other.Day)
	}
}

// Before reports whether d comes strictly before other
func (d Date) Before(other Date) bool {
	return d.Compare(other) < 0
}

// After reports whether d comes strictly after other
func (d Date) After(other Date) bool {
	return d.Compare(other) > 0
}

// Within reports whether start <= d <= end
func (d Date) Within(start, end Date) bool {
	return d.Compare(start) >= 0 && d.Compare(end) <= 0
}

// InMonth reports whether d falls in the given month of the given year
func (d Date) InMonth(month, year int) bool {
	return d.Month == month && d.Year == year
}

// String returns the date as D/M/YYYY
func (d Date) String() string {
	return fmt.Sprintf("%d/%d/%d", d.Day, d.Month, d.Year)
}

// ISO returns the date as YYYY-MM-DD
func (d Date) ISO() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

func cmpInt(a, b int) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}
