package ui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrDateFormat reports an earth date that is not a parseable YYYY-MM-DD
// value.
var ErrDateFormat = errors.New("malformed earth date")

var monthNames = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// FormatEarthDate renders an ISO YYYY-MM-DD date in long human-readable
// form, e.g. "2021-07-04" becomes "July 4, 2021". Malformed input (wrong
// field count, non-numeric parts, out-of-range month or day) returns
// ErrDateFormat.
func FormatEarthDate(date string) (string, error) {
	parts := strings.Split(date, "-")
	if len(parts) != 3 {
		return "", fmt.Errorf("%w: %q", ErrDateFormat, date)
	}
	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrDateFormat, date)
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrDateFormat, date)
	}
	day, err := strconv.Atoi(parts[2])
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrDateFormat, date)
	}
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return "", fmt.Errorf("%w: %q", ErrDateFormat, date)
	}
	return fmt.Sprintf("%s %d, %d", monthNames[month-1], day, year), nil
}

// formatEarthDateOrRaw keeps the view total: the raw string stands in when
// formatting fails.
func formatEarthDateOrRaw(date string) string {
	formatted, err := FormatEarthDate(date)
	if err != nil {
		return date
	}
	return formatted
}
