// Package dateutils converts user supplied date and month strings into
// models.Date values.
package dateutils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"fjacquet/expense-ledger/internal/models"
)

// Accepted layouts, described for error messages and help text
const (
	LayoutDayFirst = "D/M/YYYY"
	LayoutDotted   = "D.M.YYYY"
	LayoutISO      = "YYYY-MM-DD"
	LayoutMonth    = "MM/YYYY"
)

var (
	dayFirstPattern   = regexp.MustCompile(`^(\d{1,2})[./-](\d{1,2})[./-](\d{4})$`)
	isoPattern        = regexp.MustCompile(`^(\d{4})-(\d{1,2})-(\d{1,2})$`)
	monthFirstPattern = regexp.MustCompile(`^(\d{1,2})[./-](\d{4})$`)
	isoMonthPattern   = regexp.MustCompile(`^(\d{4})-(\d{1,2})$`)
	whitespace        = regexp.MustCompile(`\s+`)
)

// ParseDate parses D/M/YYYY, D.M.YYYY, D-M-YYYY or YYYY-MM-DD.
// The keyword "today" yields the current local date. Components are only
// checked for being numbers: 31/2/2025 is accepted as written.
func ParseDate(dateStr string) (models.Date, error) {
	s := CleanDateString(dateStr)
	if strings.EqualFold(s, "today") {
		return FromTime(time.Now()), nil
	}

	if m := isoPattern.FindStringSubmatch(s); m != nil {
		return models.NewDate(atoi(m[3]), atoi(m[2]), atoi(m[1])), nil
	}
	if m := dayFirstPattern.FindStringSubmatch(s); m != nil {
		return models.NewDate(atoi(m[1]), atoi(m[2]), atoi(m[3])), nil
	}

	return models.Date{}, fmt.Errorf("unable to parse date: %q (expected %s, %s or %s)",
		dateStr, LayoutDayFirst, LayoutDotted, LayoutISO)
}

// ParseMonth parses MM/YYYY, M.YYYY or YYYY-MM and returns month and year
func ParseMonth(monthStr string) (month, year int, err error) {
	s := CleanDateString(monthStr)

	if m := isoMonthPattern.FindStringSubmatch(s); m != nil {
		return atoi(m[2]), atoi(m[1]), nil
	}
	if m := monthFirstPattern.FindStringSubmatch(s); m != nil {
		return atoi(m[1]), atoi(m[2]), nil
	}

	return 0, 0, fmt.Errorf("unable to parse month: %q (expected %s)", monthStr, LayoutMonth)
}

// FromTime converts a time.Time into a Date in the time's own location
func FromTime(t time.Time) models.Date {
	return models.NewDate(t.Day(), int(t.Month()), t.Year())
}

// CleanDateString trims and collapses whitespace
func CleanDateString(dateStr string) string {
	return whitespace.ReplaceAllString(strings.TrimSpace(dateStr), " ")
}

// atoi is only called on regexp groups of digits
func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
