package utils

import (
	"fmt"
	"time"

	"github.com/elC0mpa/costexplorer-mcp/model"
)

const dateLayout = "2006-01-02"

// ValidateDate checks that s is a parseable YYYY-MM-DD calendar date and
// returns it unchanged.
func ValidateDate(s string) (string, error) {
	if _, err := time.Parse(dateLayout, s); err != nil {
		return "", &model.InvalidInputError{
			Message: fmt.Sprintf("Invalid date format: %s. Expected YYYY-MM-DD", s),
		}
	}
	return s, nil
}

// DefaultDateRange computes the default time period for a cost query.
// DAILY looks back 30 days from today; MONTHLY starts at the first day of
// the current month. End is always today (exclusive on the AWS side).
func DefaultDateRange(granularity string) (string, string) {
	today := time.Now()
	if granularity == "DAILY" {
		return isoDate(today.AddDate(0, 0, -30)), isoDate(today)
	}
	return isoDate(firstDayOfMonth(today)), isoDate(today)
}

// DefaultLookbackRange returns a range ending today and starting days ago.
func DefaultLookbackRange(days int) (string, string) {
	today := time.Now()
	return isoDate(today.AddDate(0, 0, -days)), isoDate(today)
}

func isoDate(t time.Time) string {
	return t.Format(dateLayout)
}

func firstDayOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}
