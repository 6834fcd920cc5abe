// Package dateutils provides common date and month-string operations used
// throughout the application.
package dateutils

import (
	"regexp"
	"time"
)

// Layout constants for the two string forms the application stores.
const (
	DateLayoutISO  = "2006-01-02"
	MonthLayoutISO = "2006-01"
)

var (
	dateRe  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	monthRe = regexp.MustCompile(`^\d{4}-\d{2}$`)
)

// CurrentMonth returns the current calendar month as YYYY-MM.
func CurrentMonth() string {
	return time.Now().Format(MonthLayoutISO)
}

// MonthOf extracts the YYYY-MM prefix from an ISO date string. Returns the
// input unchanged when it is too short to carry a month prefix.
func MonthOf(isoDate string) string {
	if len(isoDate) < len(MonthLayoutISO) {
		return isoDate
	}
	return isoDate[:len(MonthLayoutISO)]
}

// ValidDate reports whether s has the YYYY-MM-DD shape and parses as a date.
func ValidDate(s string) bool {
	if !dateRe.MatchString(s) {
		return false
	}
	_, err := time.Parse(DateLayoutISO, s)
	return err == nil
}

// ValidMonth reports whether s has the YYYY-MM shape and parses as a month.
func ValidMonth(s string) bool {
	if !monthRe.MatchString(s) {
		return false
	}
	_, err := time.Parse(MonthLayoutISO, s)
	return err == nil
}

// NowISO returns the current instant in RFC 3339 form, used for the
// createdAt/updatedAt timestamps set at the persistence boundary.
func NowISO() string {
	return time.Now().UTC().Format(time.RFC3339)
}
